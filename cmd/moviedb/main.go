// filepath: cmd/moviedb/main.go
package main

import (
	"moviedb/internal/cli"
)

// @title MovieDB Catalog API
// @version 1.0.0
// @description Read-only query endpoint over a catalog of movie and series files.
// @BasePath /api
// @schemes http

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
