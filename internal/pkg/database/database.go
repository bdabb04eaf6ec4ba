package database

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"catalogo/internal/pkg/logger"
)

// Options reúne o necessário para abrir o contexto de armazenamento.
type Options struct {
	Driver       string // "sqlite" ou "postgres"
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
	SecretID     string // PostgreSQL: credenciais no AWS Secrets Manager
	Debug        bool   // gorm em modo Info (SQL no log)
}

// Open devolve o *gorm.DB com o pool de conexões configurado.
// Cada operação do repositório adquire e devolve uma conexão desse pool.
func Open(ctx context.Context, opts Options, log logger.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Error),
	}
	if opts.Debug {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Info)
	}

	var (
		db  *gorm.DB
		err error
	)
	switch opts.Driver {
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(opts.DSN), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("falha ao abrir o SQLite: %w", err)
		}
		// SQLite aceita um único escritor; serializar evita "database is locked".
		opts.MaxOpenConns, opts.MaxIdleConns = 1, 1
	case "postgres":
		dsn := opts.DSN
		if opts.SecretID != "" {
			dsn, err = withSecretCredentials(ctx, dsn, opts.SecretID)
			if err != nil {
				return nil, err
			}
		}
		sqlDB, err := NewPostgresDB(ctx, dsn)
		if err != nil {
			return nil, err
		}
		db, err = gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormCfg)
		if err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("falha ao inicializar o gorm sobre o PostgreSQL: %w", err)
		}
	default:
		return nil, fmt.Errorf("driver de banco não suportado: %q", opts.Driver)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("falha ao obter o pool de conexões: %w", err)
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(2 * time.Minute)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("falha ao realizar o ping inicial no DB: %w", err)
	}

	log.Info("Pool de conexões configurado.", map[string]interface{}{
		"driver":         opts.Driver,
		"max_open_conns": sqlDB.Stats().MaxOpenConnections,
	})
	return db, nil
}

// Close fecha o pool subjacente ao *gorm.DB.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
