package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/haatos/algosnip/internal"
	"github.com/haatos/algosnip/internal/service"
	"github.com/haatos/algosnip/internal/settings"
	"github.com/haatos/algosnip/internal/snippet"
	"github.com/haatos/algosnip/internal/store"
	"golang.org/x/term"

	_ "modernc.org/sqlite"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "extract":
		err = runExtract(os.Args[2:])
	case "install":
		err = runInstall(os.Args[2:])
	case "keygen":
		err = runKeygen()
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: algosnip <command> [flags]

commands:
  extract  render snippets from source directories into a code-snippets file
  install  render snippets and upload the file to a remote host over sftp
  keygen   create an api key for the algosnipd http api`)
}

func runExtract(args []string) error {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	manifestPath := fs.String("manifest", internal.DefaultManifestPath, "path to the manifest file")
	output := fs.String("o", "", "output path, overrides the manifest")
	force := fs.Bool("force", false, "overwrite an existing output file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	data, m, err := renderSnippets(*manifestPath)
	if err != nil {
		return err
	}
	out := m.Output
	if *output != "" {
		out = *output
	}

	if err := service.NewInstallService().InstallLocal(out, data, *force); err != nil {
		return err
	}
	log.Printf("wrote %s", out)
	return nil
}

func runInstall(args []string) error {
	fs := flag.NewFlagSet("install", flag.ExitOnError)
	manifestPath := fs.String("manifest", internal.DefaultManifestPath, "path to the manifest file")
	host := fs.String("host", "", "remote host, host:port")
	username := fs.String("user", "", "remote username")
	keyPath := fs.String("key", "", "path to the ssh private key")
	remotePath := fs.String("remote-path", "", "remote output path, overrides the manifest")
	askPassphrase := fs.Bool("ask-passphrase", false, "prompt for the private key passphrase")
	force := fs.Bool("force", false, "overwrite an existing remote file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *host == "" || *username == "" || *keyPath == "" {
		return errors.New("install requires -host, -user and -key")
	}

	data, m, err := renderSnippets(*manifestPath)
	if err != nil {
		return err
	}
	out := m.Output
	if *remotePath != "" {
		out = *remotePath
	}

	privateKey, err := os.ReadFile(*keyPath)
	if err != nil {
		return err
	}

	var passphrase []byte
	if *askPassphrase {
		fmt.Fprint(os.Stderr, "passphrase: ")
		passphrase, err = term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return err
		}
	}

	if err := service.NewInstallService().InstallRemote(
		*host, *username, privateKey, passphrase, out, data, *force,
	); err != nil {
		return err
	}
	log.Printf("uploaded %s to %s", out, *host)
	return nil
}

func runKeygen() error {
	settings.ReadDotenv(internal.DotEnvPath)
	settings.Settings = settings.NewSettings()
	rwdb := store.InitDatabase(false)
	defer rwdb.Close()
	store.RunMigrations(rwdb)

	apiKeySvc := service.NewAPIKeyService(
		store.NewAPIKeySQLiteStore(rwdb, rwdb),
		service.NewUUIDGen(),
	)
	ak, err := apiKeySvc.CreateAPIKey(context.Background())
	if err != nil {
		return err
	}
	fmt.Println(ak.Value)
	return nil
}

func renderSnippets(manifestPath string) ([]byte, *snippet.Manifest, error) {
	m, err := snippet.ReadManifest(manifestPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, nil, err
		}
		m = &snippet.Manifest{
			Dirs:   []string{"."},
			Output: "algosnip.code-snippets",
			Scope:  "go",
		}
	}

	fragments, err := snippet.ExtractDirs(m.Dirs)
	if err != nil {
		return nil, nil, err
	}
	graph, err := snippet.NewGraph(fragments)
	if err != nil {
		return nil, nil, err
	}
	snips, err := graph.VSCode(m.Scope)
	if err != nil {
		return nil, nil, err
	}

	if m.ExtraSnippets != "" {
		extraJSON, err := os.ReadFile(m.ExtraSnippets)
		if err != nil {
			return nil, nil, err
		}
		snips, err = snippet.MergeExtra(snips, extraJSON)
		if err != nil {
			return nil, nil, err
		}
	}

	data, err := snippet.EncodeVSCode(snips)
	if err != nil {
		return nil, nil, err
	}
	return data, m, nil
}
