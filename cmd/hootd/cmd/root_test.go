package cmd_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hoot-chain/hoot/cmd/hootd/cmd"
)

// TestNewRootCmd_HasCoreCommands tests that the daemon exposes the node
// lifecycle and client subcommands
func TestNewRootCmd_HasCoreCommands(t *testing.T) {
	rootCmd := cmd.NewRootCmd(true)
	require.Equal(t, "hootd", rootCmd.Use)

	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{
		"init", "validate-genesis", "add-genesis-account", "gentx", "collect-gentxs",
		"start", "status", "query", "tx", "keys", "export",
	} {
		require.True(t, names[want], "missing subcommand %q", want)
	}
}
