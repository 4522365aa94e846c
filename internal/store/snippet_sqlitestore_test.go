package store

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	_ "modernc.org/sqlite"
)

var snippetStore *SnippetSQLiteStore
var apiKeyStore *APIKeySQLiteStore

func TestMain(m *testing.M) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	if _, err = db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		log.Fatal(err)
	}

	RunMigrations(db)

	snippetStore = NewSnippetSQLiteStore(db, db)
	apiKeyStore = NewAPIKeySQLiteStore(db, db)
	code := m.Run()
	os.Exit(code)
}

func createSnippet(t *testing.T, name string) *Snippet {
	t.Helper()
	s, err := snippetStore.UpsertSnippet(
		context.Background(),
		name,
		"gcd",
		"func "+name+"() {}",
		"mathx/"+name+".go",
		uuid.NewString(),
	)
	assert.NoError(t, err)
	return s
}

func TestSnippetSQLiteStore_UpsertSnippet(t *testing.T) {
	t.Run("success - snippet is inserted", func(t *testing.T) {
		// arrange
		name := uuid.NewString()

		// act
		s, err := snippetStore.UpsertSnippet(
			context.Background(), name, "", "body", "a.go", "c1",
		)

		// assert
		assert.NoError(t, err)
		assert.NotNil(t, s)
		assert.Equal(t, name, s.Name)
		assert.Equal(t, "body", s.Body)
		assert.NotZero(t, s.ID)
	})
	t.Run("success - upsert by name replaces the body", func(t *testing.T) {
		// arrange
		name := uuid.NewString()
		first, err := snippetStore.UpsertSnippet(
			context.Background(), name, "", "old", "a.go", "c1",
		)
		assert.NoError(t, err)

		// act
		second, err := snippetStore.UpsertSnippet(
			context.Background(), name, "gcd", "new", "b.go", "c2",
		)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "new", second.Body)
		assert.Equal(t, "gcd", second.Includes)
		assert.Equal(t, "c2", second.Checksum)
	})
}

func TestSnippetSQLiteStore_ReadSnippetByName(t *testing.T) {
	t.Run("success - snippet is found by name", func(t *testing.T) {
		// arrange
		expected := createSnippet(t, uuid.NewString())

		// act
		s, err := snippetStore.ReadSnippetByName(context.Background(), expected.Name)

		// assert
		assert.NoError(t, err)
		assert.NotNil(t, s)
		assert.Equal(t, expected.ID, s.ID)
		assert.Equal(t, expected.Body, s.Body)
	})
	t.Run("failure - snippet is not found by name", func(t *testing.T) {
		// act
		s, err := snippetStore.ReadSnippetByName(context.Background(), uuid.NewString())

		// assert
		assert.Error(t, err)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, s)
	})
}

func TestSnippetSQLiteStore_ListSnippets(t *testing.T) {
	t.Run("success - snippets are listed in name order", func(t *testing.T) {
		// arrange
		a := createSnippet(t, "a-"+uuid.NewString())
		b := createSnippet(t, "b-"+uuid.NewString())

		// act
		snippets, err := snippetStore.ListSnippets(context.Background())

		// assert
		assert.NoError(t, err)
		names := make([]string, 0, len(snippets))
		for _, s := range snippets {
			names = append(names, s.Name)
		}
		assert.Contains(t, names, a.Name)
		assert.Contains(t, names, b.Name)
		assert.IsIncreasing(t, names)
	})
}

func TestSnippetSQLiteStore_DeleteSnippetsNotIn(t *testing.T) {
	t.Run("success - snippets outside the kept set are removed", func(t *testing.T) {
		// arrange
		kept := createSnippet(t, uuid.NewString())
		stale := createSnippet(t, uuid.NewString())
		existing, err := snippetStore.ListSnippets(context.Background())
		assert.NoError(t, err)
		keep := []string{}
		for _, s := range existing {
			if s.Name != stale.Name {
				keep = append(keep, s.Name)
			}
		}

		// act
		n, err := snippetStore.DeleteSnippetsNotIn(context.Background(), keep)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, int64(1), n)
		_, err = snippetStore.ReadSnippetByName(context.Background(), stale.Name)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		_, err = snippetStore.ReadSnippetByName(context.Background(), kept.Name)
		assert.NoError(t, err)
	})
	t.Run("success - empty kept set clears the table", func(t *testing.T) {
		// arrange
		createSnippet(t, uuid.NewString())

		// act
		_, err := snippetStore.DeleteSnippetsNotIn(context.Background(), nil)

		// assert
		assert.NoError(t, err)
		snippets, err := snippetStore.ListSnippets(context.Background())
		assert.NoError(t, err)
		assert.Empty(t, snippets)
	})
}
