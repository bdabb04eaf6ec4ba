// Package migrations embute as migrações goose de cada dialeto suportado.
package migrations

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed sqlite/*.sql postgres/*.sql
var files embed.FS

// FS devolve o diretório de migrações do driver ("sqlite" ou "postgres").
func FS(driver string) (fs.FS, error) {
	switch driver {
	case "sqlite", "postgres":
		return fs.Sub(files, driver)
	default:
		return nil, fmt.Errorf("sem migrações para o driver %q", driver)
	}
}
