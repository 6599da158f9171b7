package main

import (
	"net"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	err := run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load configuration")
}

func TestRunReturnsListenError(t *testing.T) {
	taken, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer taken.Close()
	port := taken.Addr().(*net.TCPAddr).Port

	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "hub.db"))
	t.Setenv("PORT", strconv.Itoa(port))
	t.Setenv("NATS_URL", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("EMAIL_API_KEY", "")

	err = run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server:")
}
