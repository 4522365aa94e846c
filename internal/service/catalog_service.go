package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/haatos/algosnip/internal/snippet"
	"github.com/haatos/algosnip/internal/store"
)

type CatalogServicer interface {
	Rescan(ctx context.Context) (*RescanResult, error)
	GetSnippet(ctx context.Context, name string) (*store.Snippet, error)
	ListSnippets(ctx context.Context) ([]*store.Snippet, error)
	RenderBundle(ctx context.Context, name string) (string, error)
	RenderVSCode(ctx context.Context, scope string) ([]byte, error)
}

type RescanResult struct {
	Upserted int   `json:"upserted"`
	Removed  int64 `json:"removed"`
}

func NewCatalogService(store store.SnippetStore, dirs []string) *CatalogService {
	return &CatalogService{store: store, dirs: dirs}
}

type CatalogService struct {
	store store.SnippetStore
	dirs  []string
}

// Rescan extracts snippets from the configured source directories,
// validates their include graph and syncs the result into the store.
// Snippets no longer present in the sources are removed.
func (s *CatalogService) Rescan(ctx context.Context) (*RescanResult, error) {
	fragments, err := snippet.ExtractDirs(s.dirs)
	if err != nil {
		return nil, err
	}
	graph, err := snippet.NewGraph(fragments)
	if err != nil {
		return nil, err
	}

	names := graph.Names()
	for _, name := range names {
		sn, _ := graph.Get(name)
		sum := sha256.Sum256([]byte(sn.Body))
		if _, err := s.store.UpsertSnippet(
			ctx,
			sn.Name,
			strings.Join(sn.Includes, " "),
			sn.Body,
			sn.Path,
			hex.EncodeToString(sum[:]),
		); err != nil {
			return nil, err
		}
	}

	removed, err := s.store.DeleteSnippetsNotIn(ctx, names)
	if err != nil {
		return nil, err
	}

	return &RescanResult{Upserted: len(names), Removed: removed}, nil
}

func (s *CatalogService) GetSnippet(ctx context.Context, name string) (*store.Snippet, error) {
	return s.store.ReadSnippetByName(ctx, name)
}

func (s *CatalogService) ListSnippets(ctx context.Context) ([]*store.Snippet, error) {
	return s.store.ListSnippets(ctx)
}

// RenderBundle renders the named snippet with its transitive includes
// inlined, rebuilt from the stored catalog.
func (s *CatalogService) RenderBundle(ctx context.Context, name string) (string, error) {
	graph, err := s.graphFromStore(ctx)
	if err != nil {
		return "", err
	}
	return graph.Bundle(name)
}

// RenderVSCode renders the whole catalog as a VSCode *.code-snippets
// document.
func (s *CatalogService) RenderVSCode(ctx context.Context, scope string) ([]byte, error) {
	graph, err := s.graphFromStore(ctx)
	if err != nil {
		return nil, err
	}
	snips, err := graph.VSCode(scope)
	if err != nil {
		return nil, err
	}
	return snippet.EncodeVSCode(snips)
}

func (s *CatalogService) graphFromStore(ctx context.Context) (*snippet.Graph, error) {
	rows, err := s.store.ListSnippets(ctx)
	if err != nil {
		return nil, err
	}
	fragments := make([]snippet.Fragment, 0, len(rows))
	for _, row := range rows {
		fragments = append(fragments, snippet.Fragment{
			Name:     row.Name,
			Includes: strings.Fields(row.Includes),
			Body:     row.Body,
			Path:     row.SourcePath,
		})
	}
	return snippet.NewGraph(fragments)
}

// NewScheduler constructs the scheduler the periodic rescan job runs on.
func NewScheduler() gocron.Scheduler {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}
	return scheduler
}

func (s *CatalogService) ScheduleRescan(
	scheduler gocron.Scheduler,
	interval time.Duration,
) (gocron.Job, error) {
	return scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			res, err := s.Rescan(context.Background())
			if err != nil {
				log.Printf("err rescanning snippet sources: %+v\n", err)
				return
			}
			log.Printf("rescan complete: %d snippets, %d removed\n", res.Upserted, res.Removed)
		}),
	)
}
