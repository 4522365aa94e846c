package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstallService_InstallLocal(t *testing.T) {
	t.Run("success - snippets file is written", func(t *testing.T) {
		// arrange
		path := filepath.Join(t.TempDir(), "algosnip.code-snippets")
		installService := NewInstallService()

		// act
		err := installService.InstallLocal(path, []byte("{}"), false)

		// assert
		assert.NoError(t, err)
		data, err := os.ReadFile(path)
		assert.NoError(t, err)
		assert.Equal(t, "{}", string(data))
	})
	t.Run("success - missing parent directories are created", func(t *testing.T) {
		// arrange
		path := filepath.Join(t.TempDir(), ".vscode", "algosnip.code-snippets")
		installService := NewInstallService()

		// act
		err := installService.InstallLocal(path, []byte("{}"), false)

		// assert
		assert.NoError(t, err)
		assert.FileExists(t, path)
	})
	t.Run("success - existing file is replaced with force", func(t *testing.T) {
		// arrange
		path := filepath.Join(t.TempDir(), "algosnip.code-snippets")
		assert.NoError(t, os.WriteFile(path, []byte("old"), 0o644))
		installService := NewInstallService()

		// act
		err := installService.InstallLocal(path, []byte("new"), true)

		// assert
		assert.NoError(t, err)
		data, err := os.ReadFile(path)
		assert.NoError(t, err)
		assert.Equal(t, "new", string(data))
	})
	t.Run("failure - existing file is not replaced without force", func(t *testing.T) {
		// arrange
		path := filepath.Join(t.TempDir(), "algosnip.code-snippets")
		assert.NoError(t, os.WriteFile(path, []byte("old"), 0o644))
		installService := NewInstallService()

		// act
		err := installService.InstallLocal(path, []byte("new"), false)

		// assert
		assert.Error(t, err)
		var exists *ErrOutputExists
		assert.ErrorAs(t, err, &exists)
		assert.Equal(t, path, exists.Path)
		data, readErr := os.ReadFile(path)
		assert.NoError(t, readErr)
		assert.Equal(t, "old", string(data))
	})
}
