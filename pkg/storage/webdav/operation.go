package webdav

import (
	"io"
	"path"
	"strings"
	"time"

	"github.com/marcomarassi/note-keeper-service/pkg/fileurl"

	"github.com/pkg/errors"
)

func (p *WebDAV) SendFile(pathKey string, file io.Reader, cType string, modTime time.Time) (string, error) {
	pathKey = fileurl.PathSuffixCheckAdd(p.Config.CustomPath, "/") + pathKey

	if dir := path.Dir(pathKey); dir != "." && dir != "/" {
		if err := p.Client.MkdirAll(dir, 0755); err != nil {
			return "", errors.Wrap(err, "webdav")
		}
	}

	if err := p.Client.WriteStream(pathKey, file, 0644); err != nil {
		return "", errors.Wrap(err, "webdav")
	}

	return pathKey, nil
}

func (p *WebDAV) SendContent(pathKey string, content []byte, modTime time.Time) (string, error) {
	pathKey = fileurl.PathSuffixCheckAdd(p.Config.CustomPath, "/") + pathKey

	if dir := path.Dir(pathKey); dir != "." && dir != "/" {
		if err := p.Client.MkdirAll(dir, 0755); err != nil {
			return "", errors.Wrap(err, "webdav")
		}
	}

	if err := p.Client.Write(pathKey, content, 0644); err != nil {
		return "", errors.Wrap(err, "webdav")
	}

	return pathKey, nil
}

func (p *WebDAV) PublicURL(pathKey string) string {
	pathKey = fileurl.PathSuffixCheckAdd(p.Config.CustomPath, "/") + pathKey
	base := p.Config.BaseURL
	if base == "" {
		base = p.Config.URL
	}
	return strings.TrimSuffix(base, "/") + "/" + pathKey
}
