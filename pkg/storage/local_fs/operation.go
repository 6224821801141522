package local_fs

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
)

func (p *LocalFS) getSavePath() string {
	path := p.Config.SavePath
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}
	return path
}

// SendFile writes the reader to SavePath/pathKey, creating parents.
func (p *LocalFS) SendFile(pathKey string, file io.Reader, cType string, modTime time.Time) (string, error) {
	dst := p.getSavePath() + pathKey

	if err := os.MkdirAll(filepath.Dir(dst), 0754); err != nil {
		return "", errors.Wrap(err, "local_fs")
	}

	out, err := os.Create(dst)
	if err != nil {
		return "", errors.Wrap(err, "local_fs")
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		return "", errors.Wrap(err, "local_fs")
	}

	if !modTime.IsZero() {
		_ = os.Chtimes(dst, modTime, modTime)
	}

	return dst, nil
}

// SendContent writes raw bytes to SavePath/pathKey.
func (p *LocalFS) SendContent(pathKey string, content []byte, modTime time.Time) (string, error) {
	dst := p.getSavePath() + pathKey

	if err := os.MkdirAll(filepath.Dir(dst), 0754); err != nil {
		return "", errors.Wrap(err, "local_fs")
	}

	if err := os.WriteFile(dst, content, 0644); err != nil {
		return "", errors.Wrap(err, "local_fs")
	}

	if !modTime.IsZero() {
		_ = os.Chtimes(dst, modTime, modTime)
	}

	return dst, nil
}

// PublicURL maps a path key to the httpfs route serving SavePath.
func (p *LocalFS) PublicURL(pathKey string) string {
	base := strings.TrimSuffix(p.Config.BaseURL, "/")
	return base + "/uploads/" + pathKey
}
