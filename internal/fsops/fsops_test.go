package fsops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "subdir"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "file1.txt"), []byte(""), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".hidden"), []byte(""), 0644))

	t.Run("lists names and kinds", func(t *testing.T) {
		entries, err := List(tmpDir)
		require.NoError(t, err)
		require.Len(t, entries, 3)

		byName := map[string]bool{}
		for _, e := range entries {
			byName[e.Name] = e.IsDir
		}
		assert.True(t, byName["subdir"])
		assert.False(t, byName["file1.txt"])
		assert.False(t, byName[".hidden"])
	})

	t.Run("missing directory fails", func(t *testing.T) {
		_, err := List(filepath.Join(tmpDir, "nope"))
		assert.Error(t, err)
	})
}

func TestCreateFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "new.go")

	require.NoError(t, CreateFile(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	t.Run("collision fails", func(t *testing.T) {
		assert.Error(t, CreateFile(path))
	})
}

func TestCreateDir(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "newdir")

	require.NoError(t, CreateDir(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	t.Run("collision fails", func(t *testing.T) {
		assert.Error(t, CreateDir(path))
	})
}

func TestRename(t *testing.T) {
	tmpDir := t.TempDir()
	old := filepath.Join(tmpDir, "old.txt")
	require.NoError(t, os.WriteFile(old, []byte("content"), 0644))

	t.Run("moves the file", func(t *testing.T) {
		renamed := filepath.Join(tmpDir, "renamed.txt")
		require.NoError(t, Rename(old, renamed))

		_, err := os.Stat(old)
		assert.True(t, os.IsNotExist(err))
		data, err := os.ReadFile(renamed)
		require.NoError(t, err)
		assert.Equal(t, "content", string(data))
	})

	t.Run("refuses to clobber", func(t *testing.T) {
		a := filepath.Join(tmpDir, "a.txt")
		b := filepath.Join(tmpDir, "b.txt")
		require.NoError(t, os.WriteFile(a, []byte("a"), 0644))
		require.NoError(t, os.WriteFile(b, []byte("b"), 0644))

		assert.Error(t, Rename(a, b))
		data, _ := os.ReadFile(b)
		assert.Equal(t, "b", string(data))
	})
}

func TestTrash(t *testing.T) {
	fakeHome := t.TempDir()
	orig := userHomeDir
	userHomeDir = func() (string, error) { return fakeHome, nil }
	t.Cleanup(func() { userHomeDir = orig })

	tmpDir := t.TempDir()
	victim := filepath.Join(tmpDir, "victim.txt")
	require.NoError(t, os.WriteFile(victim, []byte("bye"), 0644))

	require.NoError(t, Trash(victim))

	_, err := os.Stat(victim)
	assert.True(t, os.IsNotExist(err))

	trashed, err := os.ReadDir(filepath.Join(fakeHome, ".local", "share", "treetop", "trash"))
	require.NoError(t, err)
	require.Len(t, trashed, 1)
	assert.Contains(t, trashed[0].Name(), "victim.txt")

	t.Run("same name twice never collides", func(t *testing.T) {
		again := filepath.Join(tmpDir, "victim.txt")
		require.NoError(t, os.WriteFile(again, []byte("bye again"), 0644))
		require.NoError(t, Trash(again))

		trashed, err := os.ReadDir(filepath.Join(fakeHome, ".local", "share", "treetop", "trash"))
		require.NoError(t, err)
		assert.Len(t, trashed, 2)
	})
}
