package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/hoot-chain/hoot/x/compute/types"
)

// GetQueryCmd returns the query commands for the compute module
func GetQueryCmd() *cobra.Command {
	computeQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the compute module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	computeQueryCmd.AddCommand(
		CmdQueryPending(),
		CmdQueryEvaluator(),
	)

	return computeQueryCmd
}

// CmdQueryPending returns a CLI command handler for querying a pending computation
func CmdQueryPending() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pending [computation-id]",
		Short: "Query a pending computation by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid computation id %q: %w", args[0], err)
			}

			bz, _, err := clientCtx.QueryStore(types.PendingComputationKey(id), types.StoreKey)
			if err != nil {
				return err
			}
			if bz == nil {
				return fmt.Errorf("computation %d not found or already consumed", id)
			}

			var pending types.PendingComputation
			if err := json.Unmarshal(bz, &pending); err != nil {
				return err
			}
			out, err := json.MarshalIndent(pending, "", "  ")
			if err != nil {
				return err
			}
			return clientCtx.PrintString(string(out) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryEvaluator returns a CLI command handler for querying an evaluator
func CmdQueryEvaluator() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluator [address]",
		Short: "Query an evaluator registry entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, _, err := clientCtx.QueryStore(types.EvaluatorKey(args[0]), types.StoreKey)
			if err != nil {
				return err
			}
			if bz == nil {
				return fmt.Errorf("evaluator %s not registered", args[0])
			}

			var evaluator types.Evaluator
			if err := json.Unmarshal(bz, &evaluator); err != nil {
				return err
			}
			out, err := json.MarshalIndent(evaluator, "", "  ")
			if err != nil {
				return err
			}
			return clientCtx.PrintString(string(out) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
