package store

import (
	"context"
	"time"
)

type Snippet struct {
	ID         int64
	Name       string
	Includes   string
	Body       string
	SourcePath string
	Checksum   string
	CreatedOn  time.Time
	UpdatedOn  time.Time
}

type SnippetStore interface {
	UpsertSnippet(ctx context.Context, name, includes, body, sourcePath, checksum string) (*Snippet, error)
	ReadSnippetByName(context.Context, string) (*Snippet, error)
	ListSnippets(context.Context) ([]*Snippet, error)
	DeleteSnippetsNotIn(context.Context, []string) (int64, error)
}
