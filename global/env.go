package global

import (
	"github.com/marcomarassi/note-keeper-service/pkg/fileurl"
)

var (
	// ROOT is the directory the binary runs from.
	ROOT    string
	Name    string = "Note Keeper Service"
	Version string = "dev"
)

func init() {
	filename := fileurl.GetExePath()
	ROOT = filename + "/"
}
