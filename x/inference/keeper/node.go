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

// GetNodeAccount retrieves a node account by address.
func (k Keeper) GetNodeAccount(ctx context.Context, node sdk.AccAddress) (types.NodeAccount, bool) {
	store := k.getStore(ctx)
	bz := store.Get(NodeKey(node))
	if bz == nil {
		return types.NodeAccount{}, false
	}

	var account types.NodeAccount
	if err := json.Unmarshal(bz, &account); err != nil {
		return types.NodeAccount{}, false
	}
	return account, true
}

// SetNodeAccount stores a node account.
func (k Keeper) SetNodeAccount(ctx context.Context, account types.NodeAccount) error {
	addr, err := sdk.AccAddressFromBech32(account.Address)
	if err != nil {
		return fmt.Errorf("invalid node address: %w", err)
	}

	bz, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("SetNodeAccount: marshal: %w", err)
	}

	k.getStore(ctx).Set(NodeKey(addr), bz)
	return nil
}

// IterateNodeAccounts iterates over all node accounts.
func (k Keeper) IterateNodeAccounts(ctx context.Context, cb func(account types.NodeAccount) (stop bool, err error)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, NodeKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var account types.NodeAccount
		if err := json.Unmarshal(iterator.Value(), &account); err != nil {
			return err
		}

		stop, err := cb(account)
		if err != nil {
			return err
		}
		if stop {
			break
		}
	}

	return nil
}

// AuthorizeNode admits a node to the responder set, escrowing stake from the
// node's own balance. Repeated calls top up the existing stake.
func (k Keeper) AuthorizeNode(ctx context.Context, node sdk.AccAddress, stake math.Int) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	coins := sdk.NewCoins(sdk.NewCoin(params.StakeDenom, stake))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, node, types.ModuleName, coins); err != nil {
		return types.ErrTransfer.Wrapf("stake escrow: %s", err)
	}

	now := sdkCtx.BlockTime()
	account, found := k.GetNodeAccount(ctx, node)
	if !found {
		account = types.NodeAccount{
			Address:      node.String(),
			Stake:        math.ZeroInt(),
			Reputation:   0,
			JoinedAt:     now,
			LastActivity: now,
		}
	}
	account.Stake = account.Stake.Add(stake)
	account.Authorized = true
	account.LastActivity = now

	if err := k.SetNodeAccount(ctx, account); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeNodeAuthorized,
			sdk.NewAttribute(types.AttributeKeyNode, node.String()),
			sdk.NewAttribute(types.AttributeKeyStake, account.Stake.String()),
		),
	)

	return nil
}

// SlashNode penalizes a node: reputation drops by the configured penalty and
// the slashed stake is burned. A node with no standing left to lose cannot be
// slashed again.
func (k Keeper) SlashNode(ctx context.Context, node sdk.AccAddress, penalty math.Int) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	account, found := k.GetNodeAccount(ctx, node)
	if !found {
		return types.ErrNodeNotFound.Wrapf("node %s", node)
	}

	if account.Reputation <= 0 {
		return types.ErrNoReputation.Wrapf("node %s has reputation %d", node, account.Reputation)
	}

	if penalty.GT(account.Stake) {
		return types.ErrInsufficientStake.Wrapf("penalty %s exceeds stake %s", penalty, account.Stake)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	coins := sdk.NewCoins(sdk.NewCoin(params.StakeDenom, penalty))
	if err := k.bankKeeper.BurnCoins(ctx, types.ModuleName, coins); err != nil {
		return types.ErrTransfer.Wrapf("burn slashed stake: %s", err)
	}

	account.Reputation -= params.ReputationPenalty
	account.Stake = account.Stake.Sub(penalty)

	if err := k.SetNodeAccount(ctx, account); err != nil {
		return err
	}

	k.Logger(sdkCtx).Info("slashed node",
		"node", node.String(),
		"penalty", penalty.String(),
		"remaining_stake", account.Stake.String(),
		"reputation", account.Reputation,
	)
	k.metrics.NodesSlashed.Inc()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeNodeSlashed,
			sdk.NewAttribute(types.AttributeKeyNode, node.String()),
			sdk.NewAttribute(types.AttributeKeyPenalty, penalty.String()),
			sdk.NewAttribute(types.AttributeKeyStake, account.Stake.String()),
			sdk.NewAttribute(types.AttributeKeyReputation, fmt.Sprintf("%d", account.Reputation)),
		),
	)

	return nil
}

// WithdrawStake returns part of a node's escrowed stake. Dropping below the
// minimum stake leaves the node authorized but ineligible to respond.
func (k Keeper) WithdrawStake(ctx context.Context, node sdk.AccAddress, amount math.Int) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	account, found := k.GetNodeAccount(ctx, node)
	if !found {
		return types.ErrNodeNotFound.Wrapf("node %s", node)
	}

	if amount.GT(account.Stake) {
		return types.ErrInsufficientStake.Wrapf("withdraw %s exceeds stake %s", amount, account.Stake)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	coins := sdk.NewCoins(sdk.NewCoin(params.StakeDenom, amount))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, node, coins); err != nil {
		return types.ErrTransfer.Wrapf("stake withdrawal: %s", err)
	}

	account.Stake = account.Stake.Sub(amount)
	if err := k.SetNodeAccount(ctx, account); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeStakeWithdrawn,
			sdk.NewAttribute(types.AttributeKeyNode, node.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyStake, account.Stake.String()),
		),
	)

	return nil
}

// CheckEligibility verifies that a node is authorized and fully staked.
func (k Keeper) CheckEligibility(ctx context.Context, node sdk.AccAddress) error {
	account, found := k.GetNodeAccount(ctx, node)
	if !found {
		return types.ErrUnauthorized.Wrapf("node %s not registered", node)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	if !account.Eligible(params.MinStake) {
		return types.ErrUnauthorized.Wrapf("node %s: authorized=%t stake=%s min=%s",
			node, account.Authorized, account.Stake, params.MinStake)
	}

	return nil
}
