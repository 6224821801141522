package local_fs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFS(t *testing.T) *LocalFS {
	t.Helper()
	fs, err := NewClient(&Config{
		SavePath: t.TempDir(),
		BaseURL:  "https://notes.example.com",
	})
	require.NoError(t, err)
	return fs
}

func TestSendFileAndDelete(t *testing.T) {
	fs := newTestFS(t)

	dst, err := fs.SendFile("notes/1/123_foto.png", strings.NewReader("image-bytes"), "image/png", time.Time{})
	require.NoError(t, err)

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(content))

	require.NoError(t, fs.Delete("notes/1/123_foto.png"))
	_, err = os.Stat(dst)
	assert.True(t, os.IsNotExist(err))

	// Deleting again is a no-op.
	require.NoError(t, fs.Delete("notes/1/123_foto.png"))
}

func TestSendContentCreatesParents(t *testing.T) {
	fs := newTestFS(t)

	dst, err := fs.SendContent("notes/7/456_a.txt", []byte("x"), time.Time{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(fs.Config.SavePath, "notes/7/456_a.txt"), filepath.Clean(dst))
}

func TestPublicURL(t *testing.T) {
	fs := newTestFS(t)
	assert.Equal(t,
		"https://notes.example.com/uploads/notes/1/123_foto.png",
		fs.PublicURL("notes/1/123_foto.png"))

	fs.Config.BaseURL = "https://notes.example.com/"
	assert.Equal(t,
		"https://notes.example.com/uploads/notes/1/123_foto.png",
		fs.PublicURL("notes/1/123_foto.png"))

	fs.Config.BaseURL = ""
	assert.Equal(t, "/uploads/notes/1/123_foto.png", fs.PublicURL("notes/1/123_foto.png"))
}
