package main

import (
	"github.com/schemaforge/schemaforge/lib"
)

func main() {
	// correlates to bin/schemaforge
	lib.GlobalForge = lib.NewForge()
	lib.GlobalForge.ArgParse()
	lib.GlobalForge.Notice("Done")
}
