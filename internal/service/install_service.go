package service

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

func NewInstallService() *InstallService {
	return &InstallService{}
}

type InstallService struct{}

// InstallLocal writes the snippets file to a local path. An existing file
// is only replaced when force is set.
func (s *InstallService) InstallLocal(outputPath string, data []byte, force bool) error {
	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return NewErrOutputExists(outputPath)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return err
		}
	}
	return os.WriteFile(outputPath, data, 0o644)
}

// InstallRemote uploads the snippets file to a remote host over sftp. An
// existing remote file is only replaced when force is set.
func (s *InstallService) InstallRemote(
	host, username string,
	privateKey, passphrase []byte,
	remotePath string,
	data []byte,
	force bool,
) error {
	auth, err := s.getAuth(privateKey, passphrase)
	if err != nil {
		return err
	}
	config := s.getConfig(username, auth, 30*time.Second)

	client, err := ssh.Dial("tcp", host, config)
	if err != nil {
		return fmt.Errorf("err dialing %s: %w", host, err)
	}
	defer client.Close()

	sftpClient, err := sftp.NewClient(client)
	if err != nil {
		return fmt.Errorf("err creating sftp client: %w", err)
	}
	defer sftpClient.Close()

	if !force {
		if _, err := sftpClient.Stat(remotePath); err == nil {
			return NewErrOutputExists(remotePath)
		}
	}

	if dir := path.Dir(remotePath); dir != "." {
		if err := sftpClient.MkdirAll(dir); err != nil {
			return err
		}
	}

	remoteFile, err := sftpClient.Create(remotePath)
	if err != nil {
		return err
	}
	defer remoteFile.Close()

	if _, err := remoteFile.Write(data); err != nil {
		return err
	}
	return nil
}

func (s *InstallService) getAuth(privateKey, passphrase []byte) (ssh.AuthMethod, error) {
	var signer ssh.Signer
	var err error
	if len(passphrase) > 0 {
		signer, err = ssh.ParsePrivateKeyWithPassphrase(privateKey, passphrase)
	} else {
		signer, err = ssh.ParsePrivateKey(privateKey)
	}
	if err != nil {
		return nil, err
	}
	return ssh.PublicKeys(signer), nil
}

func (s *InstallService) getConfig(
	username string,
	auth ssh.AuthMethod,
	timeout time.Duration,
) *ssh.ClientConfig {
	cc := &ssh.ClientConfig{
		User:            username,
		Auth:            []ssh.AuthMethod{auth},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         timeout,
	}
	return cc
}
