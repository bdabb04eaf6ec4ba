package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Drivers de banco suportados.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config armazena todas as configurações do serviço de catálogo.
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string

	// Banco de Dados (SQLite local por padrão, PostgreSQL opcional)
	DBDriver       string
	DatabaseURL    string
	DBTimeout      time.Duration
	DBMaxOpenConns int
	DBMaxIdleConns int
	DBAutoMigrate  bool
	DBSecretID     string // Credenciais do PostgreSQL no AWS Secrets Manager

	// Cache (Redis) - usado apenas pelo rate limiting
	RedisAddr string

	// Rate Limiting
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration

	// Segurança (JWT RS256)
	AuthPublicKeyFile string

	// CORS
	CORSAllowedOrigins []string
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
func LoadConfig() *Config {
	cfg := &Config{
		// 1. Geral
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		// 2. Banco de Dados
		DBDriver:       strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		DatabaseURL:    getEnv("DATABASE_URL", "app.db"),
		DBTimeout:      getDurationEnv("DB_TIMEOUT_SEC", 5) * time.Second, // 5s padrão
		DBMaxOpenConns: getIntEnv("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns: getIntEnv("DB_MAX_IDLE_CONNS", 10),
		DBAutoMigrate:  getBoolEnv("DB_AUTO_MIGRATE", true),
		DBSecretID:     getEnv("DB_SECRET_ID", ""),

		// 3. Cache (Redis)
		RedisAddr: getEnv("REDIS_ADDR", ""),

		// 4. Rate Limiting
		RateLimitMaxRequests: getIntEnv("RATE_LIMIT_MAX_REQUESTS", 100),
		RateLimitPeriod:      getDurationEnv("RATE_LIMIT_PERIOD_MIN", 1) * time.Minute, // 1 min padrão

		// 5. Segurança
		AuthPublicKeyFile: getEnv("AUTH_PUBLIC_KEY_FILE", ""),

		// 6. CORS
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	return cfg
}

// Validate rejeita combinações que impediriam o serviço de subir.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("DB_DRIVER inválido %q: use %q ou %q", c.DBDriver, DriverSQLite, DriverPostgres)
	}
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL não pode ser vazio")
	}
	if c.DBTimeout <= 0 {
		return fmt.Errorf("DB_TIMEOUT_SEC deve ser positivo")
	}
	if c.RateLimitMaxRequests <= 0 || c.RateLimitPeriod <= 0 {
		return fmt.Errorf("RATE_LIMIT_MAX_REQUESTS e RATE_LIMIT_PERIOD_MIN devem ser positivos")
	}
	return nil
}

// AuthEnabled indica se as rotas de escrita exigem bearer token.
func (c *Config) AuthEnabled() bool {
	return c.AuthPublicKeyFile != ""
}

// Funções Helpers (Auxiliares)

// getEnv lê a variável de ambiente ou retorna um valor padrão.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getDurationEnv lê uma variável de ambiente numérica e retorna-a como time.Duration.
func getDurationEnv(key string, defaultValue int) time.Duration {
	return time.Duration(getIntEnv(key, defaultValue))
}

// getIntEnv lê uma variável de ambiente numérica e retorna-a como int.
func getIntEnv(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um número inteiro válido. Usando padrão (%d).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func getBoolEnv(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é booleano. Usando padrão (%t).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
