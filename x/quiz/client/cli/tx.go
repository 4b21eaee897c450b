package cli

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/hoot-chain/hoot/x/quiz/types"
)

// GetTxCmd returns the transaction commands for the quiz module
func GetTxCmd() *cobra.Command {
	quizTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Quiz transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	quizTxCmd.AddCommand(
		CmdCreateTopic(),
		CmdUpdateTopic(),
		CmdCreateQuizSet(),
		CmdAddQuestionBlock(),
		CmdSubmitAnswer(),
		CmdClaimReward(),
	)

	return quizTxCmd
}

// CmdCreateTopic returns a CLI command handler for creating a topic
func CmdCreateTopic() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-topic [name]",
		Short: "Create a quiz topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			minReward, err := cmd.Flags().GetString(FlagMinReward)
			if err != nil {
				return err
			}
			minRewardAmount, ok := math.NewIntFromString(minReward)
			if !ok {
				return fmt.Errorf("invalid minimum reward %q", minReward)
			}
			minQuestions, err := cmd.Flags().GetUint32(FlagMinQuestions)
			if err != nil {
				return err
			}

			msg := types.NewMsgCreateTopic(clientCtx.GetFromAddress().String(), args[0], minRewardAmount, minQuestions)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagMinReward, "0", "Minimum reward amount for quiz sets under this topic")
	cmd.Flags().Uint32(FlagMinQuestions, 0, "Minimum question count for quiz sets under this topic")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdUpdateTopic returns a CLI command handler for topic updates
func CmdUpdateTopic() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-topic [name]",
		Short: "Transfer topic ownership or toggle its active flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			newOwner, err := cmd.Flags().GetString(FlagNewOwner)
			if err != nil {
				return err
			}
			active, err := cmd.Flags().GetBool(FlagActive)
			if err != nil {
				return err
			}

			msg := types.NewMsgUpdateTopic(clientCtx.GetFromAddress().String(), args[0], newOwner, active)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagNewOwner, "", "Transfer the topic to this address")
	cmd.Flags().Bool(FlagActive, true, "Whether the topic accepts new quiz sets")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCreateQuizSet returns a CLI command handler for creating a quiz set
func CmdCreateQuizSet() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-quiz-set [name] [question-count] [reward-amount] [unique-id]",
		Short: "Create a quiz set and escrow its reward",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			questionCount, err := strconv.ParseUint(args[1], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid question count %q: %w", args[1], err)
			}
			reward, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid reward amount %q", args[2])
			}
			uniqueID, err := strconv.ParseUint(args[3], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid unique id %q: %w", args[3], err)
			}
			topic, err := cmd.Flags().GetString(FlagTopic)
			if err != nil {
				return err
			}

			msg := types.NewMsgCreateQuizSet(
				clientCtx.GetFromAddress().String(), topic, args[0],
				uint32(questionCount), reward, uint32(uniqueID),
			)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagTopic, "", "Topic to file the quiz set under")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdAddQuestionBlock returns a CLI command handler for adding a question block
func CmdAddQuestionBlock() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-question-block [quiz-id] [question-index] [encrypted-x-hex] [encrypted-y-hex] [evaluator-pubkey-hex] [nonce-hex]",
		Short: "Store the ciphertext of one question",
		Args:  cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			quizID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid quiz id %q: %w", args[0], err)
			}
			questionIndex, err := strconv.ParseUint(args[1], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid question index %q: %w", args[1], err)
			}
			encryptedX, err := hex.DecodeString(args[2])
			if err != nil {
				return fmt.Errorf("invalid encrypted-x: %w", err)
			}
			encryptedY, err := hex.DecodeString(args[3])
			if err != nil {
				return fmt.Errorf("invalid encrypted-y: %w", err)
			}
			pubkey, err := hex.DecodeString(args[4])
			if err != nil {
				return fmt.Errorf("invalid evaluator pubkey: %w", err)
			}
			nonce, err := hex.DecodeString(args[5])
			if err != nil {
				return fmt.Errorf("invalid nonce: %w", err)
			}

			msg := &types.MsgAddQuestionBlock{
				Authority:       clientCtx.GetFromAddress().String(),
				QuizId:          quizID,
				QuestionIndex:   uint32(questionIndex),
				EncryptedX:      encryptedX,
				EncryptedY:      encryptedY,
				EvaluatorPubkey: pubkey,
				Nonce:           nonce,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSubmitAnswer returns a CLI command handler for submitting an answer
func CmdSubmitAnswer() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit-answer [quiz-id] [question-index] [answer]",
		Short: "Submit an answer for confidential validation",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			quizID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid quiz id %q: %w", args[0], err)
			}
			questionIndex, err := strconv.ParseUint(args[1], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid question index %q: %w", args[1], err)
			}

			msg := types.NewMsgSubmitAnswer(
				clientCtx.GetFromAddress().String(), quizID, uint32(questionIndex), args[2],
			)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdClaimReward returns a CLI command handler for claiming a reward
func CmdClaimReward() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim-reward [quiz-id]",
		Short: "Claim the reward of a quiz you won",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			quizID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid quiz id %q: %w", args[0], err)
			}

			msg := types.NewMsgClaimReward(clientCtx.GetFromAddress().String(), quizID)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
