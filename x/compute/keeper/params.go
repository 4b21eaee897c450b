package keeper

import (
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/hoot-chain/hoot/x/compute/types"
)

// GetParams returns the current compute module parameters.
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	store := k.getStore(ctx)
	bz := store.Get(types.ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}
	var params types.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		panic(fmt.Sprintf("compute: corrupt params: %v", err))
	}
	return params
}

// SetParams stores the compute module parameters.
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return types.ErrInvalidParams.Wrap(err.Error())
	}
	store := k.getStore(ctx)
	bz, err := json.Marshal(params)
	if err != nil {
		return types.ErrInvalidParams.Wrap(err.Error())
	}
	store.Set(types.ParamsKey, bz)
	return nil
}

// UpdateParams replaces the parameters, authority-gated.
func (k Keeper) UpdateParams(ctx sdk.Context, authority string, params types.Params) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", k.authority, authority)
	}
	return k.SetParams(ctx, params)
}
