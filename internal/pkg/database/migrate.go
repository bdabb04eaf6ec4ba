package database

import (
	"context"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"catalogo/internal/pkg/logger"
	"catalogo/internal/pkg/migrations"
)

// Dialect traduz o driver configurado para o dialeto do goose.
func Dialect(driver string) (goose.Dialect, error) {
	switch driver {
	case "sqlite":
		return goose.DialectSQLite3, nil
	case "postgres":
		return goose.DialectPostgres, nil
	default:
		return "", fmt.Errorf("driver de banco não suportado: %q", driver)
	}
}

// Migrate aplica as migrações pendentes do driver.
func Migrate(ctx context.Context, db *gorm.DB, driver string, log logger.Logger) error {
	dialect, err := Dialect(driver)
	if err != nil {
		return err
	}
	fsys, err := migrations.FS(driver)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("falha ao obter o pool de conexões: %w", err)
	}

	provider, err := goose.NewProvider(dialect, sqlDB, fsys)
	if err != nil {
		return fmt.Errorf("falha ao preparar as migrações: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("falha ao aplicar as migrações: %w", err)
	}
	for _, r := range results {
		log.Info("Migração aplicada.", map[string]interface{}{
			"version":  r.Source.Version,
			"duration": r.Duration.String(),
		})
	}
	return nil
}
