package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/infera-chain/infera/x/inference/types"
)

// CreateRequest validates payment against the model's floor price, escrows the
// reward and opens a new request. Returns the derived request ID.
func (k Keeper) CreateRequest(
	ctx context.Context,
	requester sdk.AccAddress,
	modelHash string,
	inputData []byte,
	minConsensus uint32,
	reward math.Int,
) (string, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if minConsensus < types.MinConsensusFloor {
		return "", types.ErrInvalidConsensusThreshold.Wrapf("got %d, minimum %d", minConsensus, types.MinConsensusFloor)
	}

	price, found := k.GetModelPrice(ctx, modelHash)
	if !found {
		return "", types.ErrModelNotFound.Wrapf("model %s", modelHash)
	}
	if reward.LT(price) {
		return "", types.ErrInsufficientPayment.Wrapf("reward %s below price %s", reward, price)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return "", err
	}

	coins := sdk.NewCoins(sdk.NewCoin(params.StakeDenom, reward))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, requester, types.ModuleName, coins); err != nil {
		return "", types.ErrTransfer.Wrapf("reward escrow: %s", err)
	}

	now := sdkCtx.BlockTime()
	nonce := k.nextRequesterNonce(ctx, requester)
	requestID := types.DeriveRequestID(requester, nonce, now)

	request := types.Request{
		ID:           requestID,
		Requester:    requester.String(),
		ModelHash:    modelHash,
		InputData:    inputData,
		MinConsensus: minConsensus,
		Reward:       reward,
		Status:       types.RequestStatusOpen,
		CreatedAt:    now,
		LastActivity: now,
	}

	if err := k.SetRequest(ctx, request); err != nil {
		return "", err
	}

	k.metrics.RequestsCreated.Inc()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRequestCreated,
			sdk.NewAttribute(types.AttributeKeyRequestID, requestID),
			sdk.NewAttribute(types.AttributeKeyRequester, requester.String()),
			sdk.NewAttribute(types.AttributeKeyModelHash, modelHash),
			sdk.NewAttribute(types.AttributeKeyMinConsensus, fmt.Sprintf("%d", minConsensus)),
			sdk.NewAttribute(types.AttributeKeyReward, reward.String()),
		),
	)

	return requestID, nil
}

// GetRequest retrieves a request by ID.
func (k Keeper) GetRequest(ctx context.Context, requestID string) (*types.Request, error) {
	store := k.getStore(ctx)
	bz := store.Get(RequestKey(requestID))
	if bz == nil {
		return nil, types.ErrRequestNotFound.Wrapf("request %s", requestID)
	}

	var request types.Request
	if err := json.Unmarshal(bz, &request); err != nil {
		return nil, fmt.Errorf("GetRequest: unmarshal: %w", err)
	}
	return &request, nil
}

// SetRequest stores a request record.
func (k Keeper) SetRequest(ctx context.Context, request types.Request) error {
	bz, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("SetRequest: marshal: %w", err)
	}

	k.getStore(ctx).Set(RequestKey(request.ID), bz)
	return nil
}

// IterateRequests iterates over all requests.
func (k Keeper) IterateRequests(ctx context.Context, cb func(request types.Request) (stop bool, err error)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, RequestKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var request types.Request
		if err := json.Unmarshal(iterator.Value(), &request); err != nil {
			return err
		}

		stop, err := cb(request)
		if err != nil {
			return err
		}
		if stop {
			break
		}
	}

	return nil
}

// nextRequesterNonce returns and increments the requester's counter. The
// counter disambiguates multiple requests from one account in a single block.
func (k Keeper) nextRequesterNonce(ctx context.Context, requester sdk.AccAddress) uint64 {
	store := k.getStore(ctx)
	key := NonceKey(requester)

	var nonce uint64
	if bz := store.Get(key); bz != nil {
		nonce = binary.BigEndian.Uint64(bz)
	}

	next := make([]byte, 8)
	binary.BigEndian.PutUint64(next, nonce+1)
	store.Set(key, next)

	return nonce
}

// GetRequesterNonce reads a requester's current counter without mutating it.
func (k Keeper) GetRequesterNonce(ctx context.Context, requester sdk.AccAddress) uint64 {
	bz := k.getStore(ctx).Get(NonceKey(requester))
	if bz == nil {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

// setRequesterNonce seeds a requester's counter; used by genesis import.
func (k Keeper) setRequesterNonce(ctx context.Context, requester sdk.AccAddress, nonce uint64) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, nonce)
	k.getStore(ctx).Set(NonceKey(requester), bz)
}

// iterateRequesterNonces iterates over all requester counters; used by
// genesis export.
func (k Keeper) iterateRequesterNonces(ctx context.Context, cb func(requester sdk.AccAddress, nonce uint64) (stop bool, err error)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, NonceKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		requester := sdk.AccAddress(iterator.Key()[len(NonceKeyPrefix):])
		nonce := binary.BigEndian.Uint64(iterator.Value())

		stop, err := cb(requester, nonce)
		if err != nil {
			return err
		}
		if stop {
			break
		}
	}

	return nil
}
