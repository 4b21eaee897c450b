package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/hoot-chain/hoot/x/quiz/types"
)

// fundVault moves the reward from the quiz authority into the module
// account. Called exactly once per quiz set, at creation.
func (k Keeper) fundVault(ctx sdk.Context, from sdk.AccAddress, amount math.Int) error {
	params := k.GetParams(ctx)
	coins := sdk.NewCoins(sdk.NewCoin(params.RewardDenom, amount))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, from, types.ModuleName, coins); err != nil {
		return err
	}
	k.metrics.VaultDeposits.WithLabelValues(params.RewardDenom).Add(float64(amount.Int64()))
	return nil
}

// payoutVault moves a claimed reward from the module account to the winner.
// The claim flag is already persisted when this runs; a transfer failure
// here means the vault does not hold what the ledger says it escrowed, which
// is an invariant violation, not a user error.
func (k Keeper) payoutVault(ctx sdk.Context, to sdk.AccAddress, amount math.Int) {
	params := k.GetParams(ctx)
	coins := sdk.NewCoins(sdk.NewCoin(params.RewardDenom, amount))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, to, coins); err != nil {
		panic(fmt.Sprintf("quiz: vault payout of %s to %s failed: %v", coins, to, err))
	}
}

// GetVaultBalance returns the module account balance in the reward denom.
func (k Keeper) GetVaultBalance(ctx sdk.Context) sdk.Coin {
	params := k.GetParams(ctx)
	moduleAddr := k.accountKeeper.GetModuleAddress(types.ModuleName)
	return k.bankKeeper.GetBalance(ctx, moduleAddr, params.RewardDenom)
}

// ClaimReward pays the vault out to the winner of a completed quiz. The
// claim flag is written before the transfer so the payout can never repeat.
func (k Keeper) ClaimReward(ctx sdk.Context, claimer sdk.AccAddress, quizID uint64) error {
	quiz, found := k.GetQuizSet(ctx, quizID)
	if !found {
		return types.ErrQuizSetNotFound.Wrapf("id %d", quizID)
	}
	if !quiz.IsCompleted() {
		return types.ErrQuizNotCompleted.Wrapf("quiz %d", quizID)
	}
	if quiz.IsRewardClaimed {
		return types.ErrRewardAlreadyClaimed.Wrapf("quiz %d", quizID)
	}
	if quiz.Winner != claimer.String() {
		return types.ErrNotWinner.Wrapf("quiz %d was won by %s", quizID, quiz.Winner)
	}

	quiz.IsRewardClaimed = true
	k.SetQuizSet(ctx, quiz)
	k.payoutVault(ctx, claimer, quiz.RewardAmount)

	params := k.GetParams(ctx)
	k.metrics.RewardsClaimed.WithLabelValues(params.RewardDenom).Add(float64(quiz.RewardAmount.Int64()))

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRewardClaimed,
			sdk.NewAttribute(types.AttributeKeyQuizID, fmt.Sprintf("%d", quizID)),
			sdk.NewAttribute(types.AttributeKeyClaimer, claimer.String()),
			sdk.NewAttribute(types.AttributeKeyRewardAmount, quiz.RewardAmount.String()),
		),
	)
	return nil
}
