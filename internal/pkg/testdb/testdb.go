// Package testdb abre bancos SQLite migrados para os testes de integração.
package testdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"catalogo/internal/pkg/database"
	"catalogo/internal/pkg/logger"
)

// New devolve um *gorm.DB sobre um arquivo em t.TempDir() com o schema aplicado.
func New(t testing.TB) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, database.Options{
		Driver: "sqlite",
		DSN:    filepath.Join(t.TempDir(), "app.db"),
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	require.NoError(t, database.Migrate(ctx, db, "sqlite", logger.Nop()))
	return db
}
