// Package fileurl groups the path and file helpers used by the upload
// and config paths.
package fileurl

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// IsDir reports whether the path is a directory.
func IsDir(p string) bool {
	s, err := os.Stat(p)
	if err != nil {
		return false
	}
	return s.IsDir()
}

// IsFile reports whether the path is a regular file.
func IsFile(p string) bool {
	return !IsDir(p)
}

// IsExist reports whether the path exists.
func IsExist(p string) bool {
	_, err := os.Stat(p)
	return err == nil || os.IsExist(err)
}

// GetFileExt returns the file extension including the dot.
func GetFileExt(name string) string {
	return path.Ext(name)
}

// GetFileNameOrRandom returns a safe upload name. Clipboard uploads all
// arrive as "image.png", so those get a random prefix to avoid collisions.
func GetFileNameOrRandom(fileName string) string {
	fileName = filepath.Base(fileName)
	if fileName == "image.png" {
		fileName = uuid.New().String() + ".png"
	}
	return fileName
}

// CreatePath creates the parent directories of p.
func CreatePath(p string, perm os.FileMode) error {
	return os.MkdirAll(filepath.Dir(p), perm)
}

// PathSuffixCheckAdd appends suffix to p unless p is empty or already
// ends with it.
func PathSuffixCheckAdd(p string, suffix string) string {
	if p == "" {
		return p
	}
	if !strings.HasSuffix(p, suffix) {
		return p + suffix
	}
	return p
}

// GetExePath returns the directory of the running binary.
func GetExePath() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
