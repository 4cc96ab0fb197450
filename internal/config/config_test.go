package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "event_booking", cfg.Database.Name)
	require.Equal(t, int32(5), cfg.Database.MaxConns)
	require.Equal(t, 12, cfg.Auth.BcryptCost)
	require.True(t, cfg.GraphQL.EnableGraphiQL)
	require.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("BCRYPT_COST", "10")
	t.Setenv("JWT_ACCESS_TTL", "1h")
	t.Setenv("GRAPHQL_ENABLE_GRAPHIQL", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.Server.Port)
	require.Equal(t, 10, cfg.Auth.BcryptCost)
	require.Equal(t, time.Hour, cfg.JWT.AccessTokenTTL)
	require.False(t, cfg.GraphQL.EnableGraphiQL)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestValidate(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("BCRYPT_COST", "99")

	_, err = Load()
	require.Error(t, err)
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:        "db.local",
			Port:        "5433",
			User:        "app",
			Password:    "pw",
			Name:        "events",
			SSLMode:     "require",
			ConnTimeout: 10 * time.Second,
		},
	}
	require.Equal(t,
		"postgres://app:pw@db.local:5433/events?sslmode=require&connect_timeout=10",
		cfg.GetDSN(),
	)
}
