package config_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/torneo-pingpong/internal/config"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv(config.APIBaseURLVar, "")
	t.Setenv(config.TokenStoreVar, "")
	t.Setenv(config.LogLevelVar, "")

	c := config.New()
	require.Equal(t, "Torneo PingPong", c.GetAppName())
	require.Equal(t, "http://localhost:5000", c.GetAPIBaseURL())
	require.Equal(t, config.StoreFile, c.GetTokenStore())
	require.Equal(t, "token", c.GetTokenKey())
	require.Equal(t, "warn", c.GetLogLevel())
	require.Equal(t, 10*time.Second, c.GetProfileFetchTimeout())
	require.NotEmpty(t, c.GetDataFolder())
}

func TestConfig_Production(t *testing.T) {
	t.Setenv("ENV", "PROD")
	t.Setenv(config.APIBaseURLVar, "")

	require.Equal(t, "https://ping-pong-backend-venxdb.onrender.com", config.New().GetAPIBaseURL())
}

func TestConfig_Overrides(t *testing.T) {
	t.Setenv(config.APIBaseURLVar, "http://from-env:5000")
	t.Setenv(config.RedisAddrVar, "redis-env:6379")

	c := config.New(
		config.WithValue(config.APIBaseURLVar, "http://from-flag:5000"),
		config.WithValue(config.RedisAddrVar, ""),
	)
	require.Equal(t, "http://from-flag:5000", c.GetAPIBaseURL())
	require.Equal(t, "redis-env:6379", c.GetRedisAddr(), "empty flag falls through to the environment")
	require.Equal(t, "http://from-env:5000", config.New().GetAPIBaseURL())
}
