package main

import (
	_ "embed"

	"github.com/marcomarassi/note-keeper-service/cmd"
)

//go:embed config/config.yaml
var c string

func main() {
	cmd.Execute(c)
}
