package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/georgysavva/scany/v2/sqlscan"
)

func NewSnippetSQLiteStore(rdb, rwdb *sql.DB) *SnippetSQLiteStore {
	return &SnippetSQLiteStore{rdb, rwdb}
}

type SnippetSQLiteStore struct {
	rdb, rwdb *sql.DB
}

func (store *SnippetSQLiteStore) UpsertSnippet(
	ctx context.Context,
	name, includes, body, sourcePath, checksum string,
) (*Snippet, error) {
	s := new(Snippet)
	query := `
		insert into snippets (name, includes, body, source_path, checksum)
		values ($1, $2, $3, $4, $5)
		on conflict (name) do update set
			includes = excluded.includes,
			body = excluded.body,
			source_path = excluded.source_path,
			checksum = excluded.checksum,
			updated_on = CURRENT_TIMESTAMP
		returning *`
	err := sqlscan.Get(ctx, store.rwdb, s, query, name, includes, body, sourcePath, checksum)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (store *SnippetSQLiteStore) ReadSnippetByName(
	ctx context.Context,
	name string,
) (*Snippet, error) {
	s := new(Snippet)
	query := `select * from snippets where name = $1`
	err := sqlscan.Get(ctx, store.rdb, s, query, name)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (store *SnippetSQLiteStore) ListSnippets(ctx context.Context) ([]*Snippet, error) {
	snippets := []*Snippet{}
	query := `select * from snippets order by name`
	err := sqlscan.Select(ctx, store.rdb, &snippets, query)
	if err != nil {
		return nil, err
	}
	return snippets, nil
}

func (store *SnippetSQLiteStore) DeleteSnippetsNotIn(
	ctx context.Context,
	names []string,
) (int64, error) {
	if len(names) == 0 {
		res, err := store.rwdb.ExecContext(ctx, `delete from snippets`)
		if err != nil {
			return 0, err
		}
		return res.RowsAffected()
	}

	placeholders := make([]string, len(names))
	args := make([]any, len(names))
	for i, name := range names {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = name
	}
	query := fmt.Sprintf(
		`delete from snippets where name not in (%s)`,
		strings.Join(placeholders, ", "),
	)
	res, err := store.rwdb.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
