package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/hoot-chain/hoot/x/quiz/types"
)

// GetQueryCmd returns the query commands for the quiz module
func GetQueryCmd() *cobra.Command {
	quizQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the quiz module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	quizQueryCmd.AddCommand(
		CmdQueryQuizSet(),
		CmdQueryTopic(),
		CmdQueryQuestionBlock(),
		CmdQueryParams(),
	)

	return quizQueryCmd
}

// CmdQueryQuizSet returns a CLI command handler for querying a quiz set
func CmdQueryQuizSet() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quiz-set [id]",
		Short: "Query a quiz set by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid quiz id %q: %w", args[0], err)
			}

			bz, _, err := clientCtx.QueryStore(types.QuizSetKey(id), types.StoreKey)
			if err != nil {
				return err
			}
			if bz == nil {
				return fmt.Errorf("quiz set %d not found", id)
			}

			var quiz types.QuizSet
			if err := json.Unmarshal(bz, &quiz); err != nil {
				return err
			}
			return printJSON(clientCtx, quiz)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryTopic returns a CLI command handler for querying a topic
func CmdQueryTopic() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topic [name]",
		Short: "Query a topic by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, _, err := clientCtx.QueryStore(types.TopicKey(args[0]), types.StoreKey)
			if err != nil {
				return err
			}
			if bz == nil {
				return fmt.Errorf("topic %q not found", args[0])
			}

			var topic types.Topic
			if err := json.Unmarshal(bz, &topic); err != nil {
				return err
			}
			return printJSON(clientCtx, topic)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryQuestionBlock returns a CLI command handler for querying a question block
func CmdQueryQuestionBlock() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "question-block [quiz-id] [question-index]",
		Short: "Query one encrypted question block",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
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

			bz, _, err := clientCtx.QueryStore(types.QuestionBlockKey(quizID, uint32(questionIndex)), types.StoreKey)
			if err != nil {
				return err
			}
			if bz == nil {
				return fmt.Errorf("question block %d/%d not found", quizID, questionIndex)
			}

			var block types.QuestionBlock
			if err := json.Unmarshal(bz, &block); err != nil {
				return err
			}
			return printJSON(clientCtx, block)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryParams returns a CLI command handler for querying module parameters
func CmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query quiz module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, _, err := clientCtx.QueryStore(types.ParamsKey, types.StoreKey)
			if err != nil {
				return err
			}
			params := types.DefaultParams()
			if bz != nil {
				if err := json.Unmarshal(bz, &params); err != nil {
					return err
				}
			}
			return printJSON(clientCtx, params)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func printJSON(clientCtx client.Context, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return clientCtx.PrintString(string(out) + "\n")
}
