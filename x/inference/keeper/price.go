package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/infera-chain/infera/x/inference/types"
)

// GetModelPrice returns the floor price for a model.
func (k Keeper) GetModelPrice(ctx context.Context, modelHash string) (math.Int, bool) {
	bz := k.getStore(ctx).Get(ModelPriceKey(modelHash))
	if bz == nil {
		return math.ZeroInt(), false
	}

	var price math.Int
	if err := json.Unmarshal(bz, &price); err != nil {
		return math.ZeroInt(), false
	}
	return price, true
}

// SetModelPrice sets the floor price for a model. Admin-only; the caller
// enforces the authority check.
func (k Keeper) SetModelPrice(ctx context.Context, modelHash string, price math.Int) error {
	bz, err := json.Marshal(price)
	if err != nil {
		return fmt.Errorf("SetModelPrice: marshal: %w", err)
	}
	k.getStore(ctx).Set(ModelPriceKey(modelHash), bz)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeModelPriceSet,
			sdk.NewAttribute(types.AttributeKeyModelHash, modelHash),
			sdk.NewAttribute(types.AttributeKeyPrice, price.String()),
		),
	)

	return nil
}

// IterateModelPrices iterates over all model prices.
func (k Keeper) IterateModelPrices(ctx context.Context, cb func(mp types.ModelPrice) (stop bool, err error)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, ModelPriceKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		modelHash := string(iterator.Key()[len(ModelPriceKeyPrefix):])

		var price math.Int
		if err := json.Unmarshal(iterator.Value(), &price); err != nil {
			return err
		}

		stop, err := cb(types.ModelPrice{ModelHash: modelHash, Price: price})
		if err != nil {
			return err
		}
		if stop {
			break
		}
	}

	return nil
}

// GetModelVerifyingKey returns the serialized Groth16 verifying key for a model.
func (k Keeper) GetModelVerifyingKey(ctx context.Context, modelHash string) ([]byte, bool) {
	bz := k.getStore(ctx).Get(ModelVKKey(modelHash))
	if bz == nil {
		return nil, false
	}
	return bz, true
}

// SetModelVerifyingKey stores the serialized verifying key for a model.
func (k Keeper) SetModelVerifyingKey(ctx context.Context, modelHash string, vk []byte) error {
	if len(vk) == 0 {
		return fmt.Errorf("SetModelVerifyingKey: empty key for model %s", modelHash)
	}
	k.getStore(ctx).Set(ModelVKKey(modelHash), vk)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeModelVKSet,
			sdk.NewAttribute(types.AttributeKeyModelHash, modelHash),
		),
	)

	return nil
}

// IterateModelVerifyingKeys iterates over all stored verifying keys.
func (k Keeper) IterateModelVerifyingKeys(ctx context.Context, cb func(vk types.ModelVerifyingKey) (stop bool, err error)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, ModelVKKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		entry := types.ModelVerifyingKey{
			ModelHash:    string(iterator.Key()[len(ModelVKKeyPrefix):]),
			VerifyingKey: iterator.Value(),
		}

		stop, err := cb(entry)
		if err != nil {
			return err
		}
		if stop {
			break
		}
	}

	return nil
}
