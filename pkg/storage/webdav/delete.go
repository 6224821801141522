package webdav

import (
	"github.com/marcomarassi/note-keeper-service/pkg/fileurl"
)

func (p *WebDAV) Delete(pathKey string) error {
	pathKey = fileurl.PathSuffixCheckAdd(p.Config.CustomPath, "/") + pathKey
	return p.Client.Remove(pathKey)
}
