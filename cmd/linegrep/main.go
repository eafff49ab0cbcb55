package main

import (
	"os"

	"github.com/coregx/linegrep/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
