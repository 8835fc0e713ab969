package keeper

import (
	"context"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/infera-chain/infera/x/inference/types"
)

// EndBlocker sweeps open requests whose rolling response window has elapsed.
// Errors are logged, never returned, so block production cannot halt on a
// single bad record.
func (k Keeper) EndBlocker(ctx context.Context) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if err := k.ExpireRequests(ctx); err != nil {
		k.Logger(sdkCtx).Error("failed to expire requests", "error", err)
	}

	return nil
}

// ExpireRequests moves timed-out open requests to the expired terminal state
// and refunds the escrowed reward to the requester.
func (k Keeper) ExpireRequests(ctx context.Context) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime()

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	window := time.Duration(params.ResponseWindowSeconds) * time.Second

	var expired []types.Request
	err = k.IterateRequests(ctx, func(request types.Request) (bool, error) {
		if request.Status == types.RequestStatusOpen && !now.Before(request.WindowDeadline(window)) {
			expired = append(expired, request)
		}
		return false, nil
	})
	if err != nil {
		return err
	}

	for _, request := range expired {
		requester, err := sdk.AccAddressFromBech32(request.Requester)
		if err != nil {
			k.Logger(sdkCtx).Error("expired request has invalid requester",
				"request_id", request.ID, "requester", request.Requester, "error", err)
			continue
		}

		coins := sdk.NewCoins(sdk.NewCoin(params.StakeDenom, request.Reward))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, requester, coins); err != nil {
			k.Logger(sdkCtx).Error("failed to refund expired request",
				"request_id", request.ID, "error", err)
			continue
		}

		request.Status = types.RequestStatusExpired
		if err := k.SetRequest(ctx, request); err != nil {
			return err
		}

		k.metrics.RequestsExpired.Inc()

		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeRequestExpired,
				sdk.NewAttribute(types.AttributeKeyRequestID, request.ID),
				sdk.NewAttribute(types.AttributeKeyRequester, request.Requester),
				sdk.NewAttribute(types.AttributeKeyReward, request.Reward.String()),
			),
		)
	}

	return nil
}
