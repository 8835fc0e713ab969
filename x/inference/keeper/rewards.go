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

// GetRewardCredit returns an address's withdrawable reward balance.
func (k Keeper) GetRewardCredit(ctx context.Context, addr sdk.AccAddress) math.Int {
	bz := k.getStore(ctx).Get(RewardCreditKey(addr))
	if bz == nil {
		return math.ZeroInt()
	}

	var credit math.Int
	if err := json.Unmarshal(bz, &credit); err != nil {
		return math.ZeroInt()
	}
	return credit
}

func (k Keeper) setRewardCredit(ctx context.Context, addr sdk.AccAddress, amount math.Int) error {
	store := k.getStore(ctx)
	if amount.IsZero() {
		store.Delete(RewardCreditKey(addr))
		return nil
	}

	bz, err := json.Marshal(amount)
	if err != nil {
		return fmt.Errorf("setRewardCredit: marshal: %w", err)
	}
	store.Set(RewardCreditKey(addr), bz)
	return nil
}

// IterateRewardCredits iterates over all pending reward credits.
func (k Keeper) IterateRewardCredits(ctx context.Context, cb func(addr sdk.AccAddress, amount math.Int) (stop bool, err error)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, RewardCreditKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		addr := sdk.AccAddress(iterator.Key()[len(RewardCreditKeyPrefix):])

		var amount math.Int
		if err := json.Unmarshal(iterator.Value(), &amount); err != nil {
			return err
		}

		stop, err := cb(addr, amount)
		if err != nil {
			return err
		}
		if stop {
			break
		}
	}

	return nil
}

// creditResponders splits the escrowed reward evenly across all responders.
// Integer division; the remainder goes to the last responder, the one whose
// submission completed the quorum.
func (k Keeper) creditResponders(ctx context.Context, request types.Request) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	n := int64(len(request.Responses))
	if n == 0 {
		return fmt.Errorf("creditResponders: request %s has no responses", request.ID)
	}

	count := math.NewInt(n)
	perNode := request.Reward.Quo(count)
	remainder := request.Reward.Sub(perNode.Mul(count))

	for i, resp := range request.Responses {
		node, err := sdk.AccAddressFromBech32(resp.Node)
		if err != nil {
			return fmt.Errorf("creditResponders: invalid responder %s: %w", resp.Node, err)
		}

		share := perNode
		if i == len(request.Responses)-1 {
			share = share.Add(remainder)
		}

		credit := k.GetRewardCredit(ctx, node)
		if err := k.setRewardCredit(ctx, node, credit.Add(share)); err != nil {
			return err
		}

		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeRewardsCredited,
				sdk.NewAttribute(types.AttributeKeyRequestID, request.ID),
				sdk.NewAttribute(types.AttributeKeyNode, resp.Node),
				sdk.NewAttribute(types.AttributeKeyAmount, share.String()),
			),
		)
	}

	return nil
}

// ClaimRewards pays out the caller's full reward credit from the module
// account. The credit is cleared only after the transfer succeeds.
func (k Keeper) ClaimRewards(ctx context.Context, node sdk.AccAddress) (math.Int, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	credit := k.GetRewardCredit(ctx, node)
	if !credit.IsPositive() {
		return math.ZeroInt(), types.ErrNothingToClaim.Wrapf("node %s", node)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}

	coins := sdk.NewCoins(sdk.NewCoin(params.StakeDenom, credit))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, node, coins); err != nil {
		return math.ZeroInt(), types.ErrTransfer.Wrapf("reward payout: %s", err)
	}

	if err := k.setRewardCredit(ctx, node, math.ZeroInt()); err != nil {
		return math.ZeroInt(), err
	}

	k.metrics.RewardsClaimed.Inc()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRewardsClaimed,
			sdk.NewAttribute(types.AttributeKeyNode, node.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, credit.String()),
		),
	)

	return credit, nil
}
