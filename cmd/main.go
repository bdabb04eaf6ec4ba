package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Nossos pacotes de infraestrutura e utilitários
	"catalogo/config"
	"catalogo/internal/pkg/cache"
	"catalogo/internal/pkg/database"
	"catalogo/internal/pkg/logger"
	"catalogo/internal/pkg/middleware"
	"catalogo/internal/pkg/token"

	// Camadas do Produto para Injeção de Dependências
	"catalogo/internal/api/gql"
	"catalogo/internal/api/produto"
	"catalogo/internal/api/router"
	"catalogo/internal/domain"
	"catalogo/internal/repository/baserepo"
	"catalogo/internal/service/produtoservice"
	"catalogo/internal/validator"
)

func main() {
	// 0. Variáveis de ambiente (.env é opcional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	cfg := config.LoadConfig()
	log := logger.NewLogger(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		log.Fatal("Configuração inválida.", err)
	}
	log.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment, "driver": cfg.DBDriver})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Banco de Dados
	db, err := database.Open(ctx, database.Options{
		Driver:       cfg.DBDriver,
		DSN:          cfg.DatabaseURL,
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
		SecretID:     cfg.DBSecretID,
		Debug:        cfg.LogLevel == "debug",
	}, log)
	if err != nil {
		log.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer database.Close(db)

	if cfg.DBAutoMigrate {
		if err := database.Migrate(ctx, db, cfg.DBDriver, log); err != nil {
			log.Fatal("Falha ao aplicar as migrações.", err)
		}
	}

	// 2. Rate limiting: Redis quando configurado, memória local caso contrário
	var limiter middleware.Limiter
	if cfg.RedisAddr != "" {
		cacheClient, err := cache.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			log.Fatal("Falha ao conectar ao Redis.", err)
		}
		defer cacheClient.Close()
		limiter = middleware.NewRedisLimiter(cacheClient, cfg.RateLimitMaxRequests, cfg.RateLimitPeriod)
		log.Info("Conexão Redis estabelecida.", map[string]interface{}{"addr": cfg.RedisAddr})
	} else {
		memLimiter := middleware.NewMemoryLimiter(cfg.RateLimitMaxRequests, cfg.RateLimitPeriod)
		memLimiter.StartJanitor(ctx, cfg.RateLimitPeriod)
		limiter = memLimiter
	}

	// 3. Autenticação das rotas de escrita (opcional)
	var tokenSvc middleware.TokenService
	if cfg.AuthEnabled() {
		pub, err := token.LoadPublicKeyFile(cfg.AuthPublicKeyFile)
		if err != nil {
			log.Fatal("Falha ao carregar a chave pública.", err)
		}
		tokenSvc = token.NewService(nil, pub, 0)
		log.Info("Autenticação JWT habilitada para rotas de escrita.", nil)
	} else {
		log.Warn("AUTH_PUBLIC_KEY_FILE não definido: rotas de escrita estão públicas.", nil)
	}

	// 4. Injeção de dependências: Repository -> Service -> Handler
	produtoRepo := baserepo.New[domain.Produto](db, cfg.DBTimeout, log, "Produto")
	produtoSvc := produtoservice.NewService(produtoRepo, validator.NewProdutoValidator(), log)
	produtoHandler := produto.NewHandler(produtoSvc, log)

	schema, err := gql.NewSchema(db)
	if err != nil {
		log.Fatal("Falha ao montar o schema GraphQL.", err)
	}
	gqlHandler := gql.NewHandler(schema, log)

	r := router.NewRouter(produtoHandler, gqlHandler, log, router.Options{
		Limiter:        limiter,
		TokenService:   tokenSvc,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	go func() {
		log.Info("Servidor ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Servidor falhou.", err)
		}
	}()

	<-ctx.Done()
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}

	log.Info("Servidor encerrado com sucesso.", nil)
}
