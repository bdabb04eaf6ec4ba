package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// Valores vazios caem no padrão dos helpers numéricos/booleanos.
	for _, key := range []string{"DB_TIMEOUT_SEC", "DB_AUTO_MIGRATE", "AUTH_PUBLIC_KEY_FILE"} {
		t.Setenv(key, "")
	}
	t.Setenv("PORT", "8080")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "app.db")
	t.Setenv("CORS_ALLOWED_ORIGINS", "*")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "app.db", cfg.DatabaseURL)
	assert.Equal(t, 5*time.Second, cfg.DBTimeout)
	assert.True(t, cfg.DBAutoMigrate)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.AuthEnabled())
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "POSTGRES")
	t.Setenv("DATABASE_URL", "postgres://catalogo@localhost/catalogo?sslmode=disable")
	t.Setenv("DB_TIMEOUT_SEC", "2")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "10")
	t.Setenv("RATE_LIMIT_PERIOD_MIN", "3")
	t.Setenv("AUTH_PUBLIC_KEY_FILE", "/etc/catalogo/public.pem")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:8081, https://app.example.com")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, 2*time.Second, cfg.DBTimeout)
	assert.False(t, cfg.DBAutoMigrate)
	assert.Equal(t, 10, cfg.RateLimitMaxRequests)
	assert.Equal(t, 3*time.Minute, cfg.RateLimitPeriod)
	assert.True(t, cfg.AuthEnabled())
	assert.Equal(t, []string{"http://localhost:8081", "https://app.example.com"}, cfg.CORSAllowedOrigins)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_InvalidNumberFallsBack(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "muitas")

	cfg := LoadConfig()

	assert.Equal(t, 25, cfg.DBMaxOpenConns)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			DBDriver:             DriverSQLite,
			DatabaseURL:          "app.db",
			DBTimeout:            time.Second,
			RateLimitMaxRequests: 1,
			RateLimitPeriod:      time.Minute,
		}
	}

	cfg := base()
	cfg.DBDriver = "mysql"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.DatabaseURL = " "
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.RateLimitMaxRequests = 0
	assert.Error(t, cfg.Validate())

	assert.NoError(t, base().Validate())
}
