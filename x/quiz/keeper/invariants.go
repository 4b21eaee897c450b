package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/hoot-chain/hoot/x/quiz/types"
)

// RegisterInvariants registers all quiz module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "vault-balance",
		VaultBalanceInvariant(k))
	ir.RegisterRoute(types.ModuleName, "progress-bound",
		ProgressBoundInvariant(k))
	ir.RegisterRoute(types.ModuleName, "winner-consistency",
		WinnerConsistencyInvariant(k))
}

// AllInvariants runs all invariants of the quiz module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := VaultBalanceInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		res, stop = ProgressBoundInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return WinnerConsistencyInvariant(k)(ctx)
	}
}

// VaultBalanceInvariant checks that the module account holds exactly the sum
// of all unclaimed rewards.
func VaultBalanceInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		expected := math.ZeroInt()
		k.IterateQuizSets(ctx, func(quiz types.QuizSet) bool {
			if !quiz.IsRewardClaimed {
				expected = expected.Add(quiz.RewardAmount)
			}
			return false
		})

		balance := k.GetVaultBalance(ctx)
		broken := !balance.Amount.Equal(expected)
		msg := ""
		if broken {
			msg = fmt.Sprintf("vault holds %s, unclaimed rewards total %s", balance.Amount, expected)
		}
		return sdk.FormatInvariant(types.ModuleName, "vault-balance", msg), broken
	}
}

// ProgressBoundInvariant checks that progress counters match the credited
// markers and never exceed the question count.
func ProgressBoundInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
		)
		k.IterateQuizSets(ctx, func(quiz types.QuizSet) bool {
			if quiz.CorrectAnswersCount > quiz.QuestionCount {
				broken = true
				msg = fmt.Sprintf("quiz %d progress %d above question count %d",
					quiz.Id, quiz.CorrectAnswersCount, quiz.QuestionCount)
				return true
			}
			credited := k.CountAnsweredIndexes(ctx, quiz.Id)
			if credited != quiz.CorrectAnswersCount {
				broken = true
				msg = fmt.Sprintf("quiz %d progress %d does not match %d credited markers",
					quiz.Id, quiz.CorrectAnswersCount, credited)
				return true
			}
			return false
		})
		return sdk.FormatInvariant(types.ModuleName, "progress-bound", msg), broken
	}
}

// WinnerConsistencyInvariant checks that claim flags imply a winner and that
// a naturally settled quiz has full progress. Force-completed quizzes are
// the exception: the winner may be set below threshold, which the
// quiz_force_completed event audits.
func WinnerConsistencyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
		)
		k.IterateQuizSets(ctx, func(quiz types.QuizSet) bool {
			if quiz.IsRewardClaimed && quiz.Winner == "" {
				broken = true
				msg = fmt.Sprintf("quiz %d claimed without a winner", quiz.Id)
				return true
			}
			return false
		})
		return sdk.FormatInvariant(types.ModuleName, "winner-consistency", msg), broken
	}
}
