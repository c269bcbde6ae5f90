package config

import (
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverMySQL, cfg.DBDriver)
	assert.Equal(t, UserStoreMemory, cfg.UserStore)
	assert.Equal(t, 30, cfg.RateLimitMax)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Empty(t, cfg.TrustedProxies)
	assert.Equal(t, "fitness:fitness_pass@tcp(localhost:3306)/fitness?parseTime=true&charset=utf8mb4", cfg.DSN())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/fit.db")
	t.Setenv("USER_STORE", "sql")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 192.168.1.7")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, UserStoreSQL, cfg.UserStore)
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow)
	assert.Equal(t, "/tmp/fit.db?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.DSN())

	prefixes, err := cfg.TrustedProxyPrefixes()
	require.NoError(t, err)
	assert.Equal(t, []netip.Prefix{
		netip.MustParsePrefix("10.0.0.0/8"),
		netip.MustParsePrefix("192.168.1.7/32"),
	}, prefixes)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"DB_DRIVER", "postgres"},
		{"USER_STORE", "redis"},
		{"RATE_LIMIT_MAX", "0"},
		{"RATE_LIMIT_WINDOW", "soon"},
		{"TRUSTED_PROXIES", "10.0.0.0/8,proxy.internal"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
