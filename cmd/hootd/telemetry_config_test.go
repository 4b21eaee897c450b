package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestParsePort tests port string parsing bounds
func TestParsePort(t *testing.T) {
	require.Equal(t, 26660, parsePort("26660"))
	require.Equal(t, 1, parsePort(" 1 "))
	require.Equal(t, 0, parsePort(""))
	require.Equal(t, 0, parsePort("not-a-port"))
	require.Equal(t, 0, parsePort("0"))
	require.Equal(t, 0, parsePort("-1"))
	require.Equal(t, 0, parsePort("65536"))
}

// TestSanitizeHostPort tests wildcard host rewriting
func TestSanitizeHostPort(t *testing.T) {
	require.Equal(t, "localhost:26657", sanitizeHostPort("0.0.0.0:26657"))
	require.Equal(t, "localhost:26657", sanitizeHostPort(":26657"))
	require.Equal(t, "127.0.0.1:26657", sanitizeHostPort("127.0.0.1:26657"))
	require.Equal(t, "", sanitizeHostPort("  "))
	// Not host:port shaped, returned untouched.
	require.Equal(t, "justahost", sanitizeHostPort("justahost"))
}

// TestResolveNodeHome tests the env var and flag precedence
func TestResolveNodeHome(t *testing.T) {
	t.Setenv("HOOT_HOME", "/tmp/hoot-env")
	require.Equal(t, "/tmp/hoot-env", resolveNodeHome([]string{"--home", "/tmp/hoot-flag"}))

	t.Setenv("HOOT_HOME", "")
	require.Equal(t, "/tmp/hoot-flag", resolveNodeHome([]string{"--home", "/tmp/hoot-flag"}))
	require.Equal(t, "/tmp/hoot-eq", resolveNodeHome([]string{"--home=/tmp/hoot-eq"}))
}
