package main

import (
	"embed"

	"github.com/renzovm/bancli/cmd"
)

//go:embed migrations
var migrationsFS embed.FS

func main() {
	cmd.Execute(migrationsFS)
}
