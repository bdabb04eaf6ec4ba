package database

import (
	"context"
	"database/sql"
	"fmt"

	// Driver pq para PostgreSQL; o pool *sql.DB é entregue ao dialector do gorm.
	_ "github.com/lib/pq"
)

// NewPostgresDB abre e testa a conexão com o PostgreSQL.
func NewPostgresDB(ctx context.Context, dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir a conexão com o DB: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("falha ao realizar o ping inicial no DB: %w", err)
	}

	return db, nil
}
