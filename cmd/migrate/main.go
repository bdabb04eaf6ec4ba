package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"catalogo/config"
	"catalogo/internal/pkg/database"
	"catalogo/internal/pkg/logger"
	"catalogo/internal/pkg/migrations"
)

// gooseLogger encaminha a saída do goose para o logger JSON.
type gooseLogger struct {
	log logger.Logger
}

func (g gooseLogger) Printf(format string, v ...interface{}) {
	g.log.Info(fmt.Sprintf(format, v...), nil)
}

func (g gooseLogger) Fatalf(format string, v ...interface{}) {
	g.log.Fatal("goose", fmt.Errorf(format, v...))
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️ Warning: .env file not found or failed to read. Loading configs from system environment only: %v", err)
	}

	cfg := config.LoadConfig()
	appLog := logger.NewLogger(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		appLog.Fatal("Configuração inválida.", err)
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "uso: migrate [up|up-by-one|down|redo|reset|status|version]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	ctx := context.Background()
	db, err := database.Open(ctx, database.Options{
		Driver:   cfg.DBDriver,
		DSN:      cfg.DatabaseURL,
		SecretID: cfg.DBSecretID,
	}, appLog)
	if err != nil {
		appLog.Fatal("goose: failed to connect to DB", err)
	}
	defer database.Close(db)

	sqlDB, err := db.DB()
	if err != nil {
		appLog.Fatal("goose: failed to get sql.DB", err)
	}

	fsys, err := migrations.FS(cfg.DBDriver)
	if err != nil {
		appLog.Fatal("goose: migrations", err)
	}
	dialect, err := database.Dialect(cfg.DBDriver)
	if err != nil {
		appLog.Fatal("goose: dialect", err)
	}

	goose.SetBaseFS(fsys)
	goose.SetLogger(gooseLogger{log: appLog})
	if err := goose.SetDialect(string(dialect)); err != nil {
		appLog.Fatal("goose: dialect", err)
	}

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"} // Default to 'up' if no command is provided
	}

	command := arguments[0]
	if err := goose.RunContext(ctx, command, sqlDB, ".", arguments[1:]...); err != nil {
		appLog.Fatal(fmt.Sprintf("goose %s", command), err)
	}

	appLog.Info(fmt.Sprintf("goose %s success", command), nil)
}
