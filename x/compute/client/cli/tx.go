package cli

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/hoot-chain/hoot/x/compute/types"
)

// GetTxCmd returns the transaction commands for the compute module
func GetTxCmd() *cobra.Command {
	computeTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Compute transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	computeTxCmd.AddCommand(
		CmdDeliverResult(),
		CmdRegisterEvaluator(),
		CmdSetEvaluatorStatus(),
	)

	return computeTxCmd
}

// CmdDeliverResult returns a CLI command handler for delivering a computation result
func CmdDeliverResult() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deliver-result [computation-id] [output-hex]",
		Short: "Deliver a successful computation result",
		Long: `Deliver the evaluator cluster's result for a queued computation.
Pass --aborted to report a failed computation instead of an output.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			computationID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid computation id %q: %w", args[0], err)
			}
			aborted, err := cmd.Flags().GetBool(FlagAborted)
			if err != nil {
				return err
			}

			var output []byte
			if !aborted {
				if len(args) < 2 {
					return fmt.Errorf("output required unless --aborted is set")
				}
				output, err = hex.DecodeString(args[1])
				if err != nil {
					return fmt.Errorf("invalid output: %w", err)
				}
			}

			msg := types.NewMsgDeliverResult(clientCtx.GetFromAddress().String(), computationID, !aborted, output)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Bool(FlagAborted, false, "Report the computation as aborted")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRegisterEvaluator returns a CLI command handler for registering an evaluator
func CmdRegisterEvaluator() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register-evaluator [address] [moniker]",
		Short: "Register an evaluator cluster member (authority only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgRegisterEvaluator(clientCtx.GetFromAddress().String(), args[0], args[1])
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetEvaluatorStatus returns a CLI command handler for toggling evaluator status
func CmdSetEvaluatorStatus() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-evaluator-status [address] [active]",
		Short: "Activate or deactivate an evaluator (authority only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			active, err := strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("invalid active flag %q: %w", args[1], err)
			}

			msg := types.NewMsgSetEvaluatorStatus(clientCtx.GetFromAddress().String(), args[0], active)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
