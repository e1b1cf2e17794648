package adapter

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/ggrep/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("visits entries in lexical order", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "b.txt"), "b\n")
		writeTestFile(t, filepath.Join(root, "a.txt"), "a\n")
		mustMkdir(t, filepath.Join(root, "c"))
		writeTestFile(t, filepath.Join(root, "c", "z.txt"), "z\n")
		writeTestFile(t, filepath.Join(root, "c", "y.txt"), "y\n")

		files := collectFiles(t, adapter, root, 0)

		assert.Equal(t, []string{
			filepath.Join(root, "a.txt"),
			filepath.Join(root, "b.txt"),
			filepath.Join(root, "c", "y.txt"),
			filepath.Join(root, "c", "z.txt"),
		}, files)
	})

	t.Run("max depth prunes nested directories", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "top.txt"), "top\n")
		nested := filepath.Join(root, "one", "two")
		require.NoError(t, os.MkdirAll(nested, 0o755))
		writeTestFile(t, filepath.Join(root, "one", "mid.txt"), "mid\n")
		writeTestFile(t, filepath.Join(nested, "deep.txt"), "deep\n")

		assert.Equal(t, []string{filepath.Join(root, "top.txt")}, collectFiles(t, adapter, root, 1))
		assert.Equal(t, []string{
			filepath.Join(root, "one", "mid.txt"),
			filepath.Join(root, "top.txt"),
		}, collectFiles(t, adapter, root, 2))
		assert.Len(t, collectFiles(t, adapter, root, 0), 3)
	})

	t.Run("symlinked files report target info", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		target := filepath.Join(root, "target.txt")
		writeTestFile(t, target, "hello\n")
		link := filepath.Join(root, "link.txt")
		if err := os.Symlink(target, link); err != nil {
			t.Skipf("symlinks unsupported: %v", err)
		}

		assert.Equal(t, []string{link, target}, collectFiles(t, adapter, root, 0))
	})

	t.Run("symlinked directories are not descended", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		real := filepath.Join(root, "real")
		mustMkdir(t, real)
		writeTestFile(t, filepath.Join(real, "inner.txt"), "inner\n")
		if err := os.Symlink(root, filepath.Join(real, "loop")); err != nil {
			t.Skipf("symlinks unsupported: %v", err)
		}

		assert.Equal(t, []string{filepath.Join(real, "inner.txt")}, collectFiles(t, adapter, root, 0))
	})

	t.Run("symlinked root is walked", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		base := t.TempDir()
		real := filepath.Join(base, "real")
		mustMkdir(t, real)
		writeTestFile(t, filepath.Join(real, "a.txt"), "a\n")
		link := filepath.Join(base, "link")
		if err := os.Symlink(real, link); err != nil {
			t.Skipf("symlinks unsupported: %v", err)
		}

		assert.Equal(t, []string{filepath.Join(link, "a.txt")}, collectFiles(t, adapter, link, 0))
	})

	t.Run("missing root reports error to callback", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		missing := filepath.Join(t.TempDir(), "missing")

		var gotErr error
		err := adapter.Walk(m.Path(missing), 0, func(_ string, info os.FileInfo, err error) error {
			assert.Nil(t, info)
			gotErr = err
			return err
		})

		require.Error(t, err)
		assert.True(t, errors.Is(gotErr, os.ErrNotExist))
	})
}

func TestLocalSourceFSAdapter_Open(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "notes.txt")
	writeTestFile(t, path, "foo\nbar\n")

	rc, err := adapter.Open(m.Path(path))
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "foo\nbar\n", string(got))

	_, err = adapter.Open(m.Path(filepath.Join(root, "missing.txt")))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.txt")
	writeTestFile(t, path, "text\n")

	info, err := adapter.FileInfo(m.Path(path))
	require.NoError(t, err)

	assert.False(t, info.IsDir(), "FileInfo() reported file as directory")

	dirInfo, err := adapter.FileInfo(m.Path(root))
	require.NoError(t, err)
	assert.True(t, dirInfo.IsDir(), "FileInfo() reported directory as file")
}

func collectFiles(t *testing.T, adapter *LocalSourceFSAdapter, root string, maxDepth int) []string {
	t.Helper()

	var files []string
	err := adapter.Walk(m.Path(root), maxDepth, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	require.NoError(t, err)

	return files
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}
