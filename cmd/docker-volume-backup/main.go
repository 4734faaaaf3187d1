package main

import (
	"os"

	"github.com/vientorepublic/docker-volume-backup/src/cli"
)

func main() {
	os.Exit(cli.Execute())
}
