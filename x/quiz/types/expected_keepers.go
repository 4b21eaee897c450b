package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	computetypes "github.com/hoot-chain/hoot/x/compute/types"
)

// BankKeeper defines the expected bank keeper interface. The quiz module
// account acts as the reward vault; funds move through it and nowhere else.
type BankKeeper interface {
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SpendableCoins(ctx context.Context, addr sdk.AccAddress) sdk.Coins
}

// AccountKeeper defines the expected account keeper interface.
type AccountKeeper interface {
	GetModuleAddress(name string) sdk.AccAddress
	GetModuleAccount(ctx context.Context, moduleName string) sdk.ModuleAccountI
}

// ComputeKeeper defines the slice of the compute gateway the quiz module
// drives: queueing work for the evaluator cluster. Results come back through
// the gateway's handler router, not through this interface.
type ComputeKeeper interface {
	Queue(ctx sdk.Context, req computetypes.QueueRequest) (uint64, error)
}
