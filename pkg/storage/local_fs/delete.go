package local_fs

import (
	"os"

	"github.com/marcomarassi/note-keeper-service/pkg/fileurl"
)

func (p *LocalFS) Delete(pathKey string) error {
	dst := p.getSavePath() + pathKey
	if fileurl.IsExist(dst) {
		return os.Remove(dst)
	}
	return nil
}
