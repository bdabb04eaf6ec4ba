package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "catalogo/docs" // registra o documento Swagger
	"catalogo/internal/api/gql"
	"catalogo/internal/api/produto"
	"catalogo/internal/pkg/logger"
	"catalogo/internal/pkg/middleware"
)

// Options reúne as dependências opcionais do roteador.
type Options struct {
	// Limiter nil desabilita o rate limiting.
	Limiter middleware.Limiter
	// TokenService nil deixa as rotas de escrita públicas.
	TokenService middleware.TokenService
	// AllowedOrigins vazio equivale a "*".
	AllowedOrigins []string
}

// NewRouter configura e retorna o roteador HTTP principal.
// Recebe os Handlers já inicializados por injeção de dependências.
func NewRouter(produtoHandler *produto.Handler, gqlHandler *gql.Handler, log logger.Logger, opts Options) http.Handler {
	r := mux.NewRouter()

	// --- 1. Health Check ---
	r.HandleFunc("/ping", PingHandler).Methods(http.MethodGet)

	// --- 2. Documentação ---
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// --- 3. API ---
	api := r.PathPrefix("/api").Subrouter()
	if opts.Limiter != nil {
		api.Use(middleware.RateLimiter(opts.Limiter, log))
	}

	write := func(h http.Handler) http.Handler { return h }
	if opts.TokenService != nil {
		write = middleware.NewAuthMiddleware(opts.TokenService)
	}
	produtoHandler.RegisterRoutes(api, write)
	api.Handle("/graphql", gqlHandler).Methods(http.MethodPost)

	// --- 4. Middlewares Globais ---
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader, "Retry-After", "X-RateLimit-Remaining"},
	})

	return middleware.RequestID(log)(c.Handler(r))
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
