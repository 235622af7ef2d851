package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/avkit/extronctl/internal/config"
)

func TestInitDefaults(t *testing.T) {
	cfg, err := config.Init()
	require.NoError(t, err)

	require.Equal(t, "extronctl", cfg.App.ServiceName)
	require.Equal(t, "0.0.0.0", cfg.GRPCServer.Host)
	require.Equal(t, uint(14000), cfg.GRPCServer.Port)
	require.Equal(t, 30*time.Second, cfg.GRPCServer.ShutdownTimeout)
	require.Equal(t, 10*time.Second, cfg.GRPCServer.DrainTimeout)
	require.Equal(t, []string{"/dev/serial/by-id/*Extron*"}, cfg.Discovery.PortGlobs)
	require.Equal(t, 2*time.Second, cfg.Discovery.QueryTimeout)
	require.Equal(t, "127.0.0.1:14000", cfg.GRPCClient.Address)
	require.True(t, cfg.Breaker.Enabled)
	require.Equal(t, uint(3), cfg.Breaker.FailureThreshold)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "json", cfg.Logging.Format)
	require.True(t, cfg.Logging.AccessLog.Enabled)
	require.False(t, cfg.Logging.AccessLog.LogHealthChecks)
}

func TestInitEnvironmentOverrides(t *testing.T) {
	t.Setenv("GRPC_SERVER_PORT", "15000")
	t.Setenv("DISCOVERY_PORT_GLOBS", "/dev/ttyUSB*,/dev/ttyACM*")
	t.Setenv("BREAKER_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Init()
	require.NoError(t, err)

	require.Equal(t, uint(15000), cfg.GRPCServer.Port)
	require.Equal(t, []string{"/dev/ttyUSB*", "/dev/ttyACM*"}, cfg.Discovery.PortGlobs)
	require.False(t, cfg.Breaker.Enabled)
	require.Equal(t, "debug", cfg.Logging.Level)
}

func TestInitRejectsBadValues(t *testing.T) {
	t.Setenv("GRPC_SERVER_PORT", "not-a-port")

	_, err := config.Init()
	require.Error(t, err)
}
