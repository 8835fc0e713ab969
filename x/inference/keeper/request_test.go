package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/infera-chain/infera/testutil/keeper"
	"github.com/infera-chain/infera/x/inference/types"
)

func TestCreateRequest(t *testing.T) {
	f := testkeeper.NewInferenceFixture(t)

	modelHash := hashOf("model")
	require.NoError(t, f.Keeper.SetModelPrice(f.Ctx, modelHash, math.NewInt(100)))

	requester := sdk.AccAddress([]byte("request-creator-0001"))
	f.FundAccount(t, requester, math.NewInt(10_000))

	t.Run("threshold below floor", func(t *testing.T) {
		_, err := f.Keeper.CreateRequest(f.Ctx, requester, modelHash, []byte("in"), 2, math.NewInt(500))
		require.ErrorIs(t, err, types.ErrInvalidConsensusThreshold)
	})

	t.Run("unpriced model", func(t *testing.T) {
		_, err := f.Keeper.CreateRequest(f.Ctx, requester, hashOf("unknown"), []byte("in"), 3, math.NewInt(500))
		require.ErrorIs(t, err, types.ErrModelNotFound)
	})

	t.Run("reward below price", func(t *testing.T) {
		_, err := f.Keeper.CreateRequest(f.Ctx, requester, modelHash, []byte("in"), 3, math.NewInt(99))
		require.ErrorIs(t, err, types.ErrInsufficientPayment)
	})

	t.Run("unfunded requester", func(t *testing.T) {
		broke := sdk.AccAddress([]byte("unfunded-requester-1"))
		_, err := f.Keeper.CreateRequest(f.Ctx, broke, modelHash, []byte("in"), 3, math.NewInt(500))
		require.ErrorIs(t, err, types.ErrTransfer)
	})

	t.Run("escrows reward and opens request", func(t *testing.T) {
		moduleBefore := f.ModuleBalance(t)

		requestID, err := f.Keeper.CreateRequest(f.Ctx, requester, modelHash, []byte("prompt"), 3, math.NewInt(500))
		require.NoError(t, err)
		require.Len(t, requestID, 64)

		require.Equal(t, moduleBefore.AddRaw(500), f.ModuleBalance(t))
		require.Equal(t, math.NewInt(9_500), f.Balance(t, requester))

		request, err := f.Keeper.GetRequest(f.Ctx, requestID)
		require.NoError(t, err)
		require.Equal(t, requester.String(), request.Requester)
		require.Equal(t, modelHash, request.ModelHash)
		require.Equal(t, []byte("prompt"), request.InputData)
		require.Equal(t, uint32(3), request.MinConsensus)
		require.Equal(t, math.NewInt(500), request.Reward)
		require.Equal(t, types.RequestStatusOpen, request.Status)
		require.Empty(t, request.Responses)
		require.Empty(t, request.FinalResult)

		// The response window starts from creation.
		require.Equal(t, f.Ctx.BlockTime(), request.CreatedAt)
		require.Equal(t, request.CreatedAt, request.LastActivity)
	})

	t.Run("same block yields distinct ids", func(t *testing.T) {
		id1, err := f.Keeper.CreateRequest(f.Ctx, requester, modelHash, []byte("a"), 3, math.NewInt(100))
		require.NoError(t, err)
		id2, err := f.Keeper.CreateRequest(f.Ctx, requester, modelHash, []byte("b"), 3, math.NewInt(100))
		require.NoError(t, err)
		require.NotEqual(t, id1, id2)
	})
}

func TestRequesterNonceAdvances(t *testing.T) {
	f := testkeeper.NewInferenceFixture(t)

	modelHash := hashOf("model")
	require.NoError(t, f.Keeper.SetModelPrice(f.Ctx, modelHash, math.ZeroInt()))

	requester := sdk.AccAddress([]byte("nonce-test-requester"))
	f.FundAccount(t, requester, math.NewInt(1_000))

	require.Zero(t, f.Keeper.GetRequesterNonce(f.Ctx, requester))

	for i := 0; i < 3; i++ {
		_, err := f.Keeper.CreateRequest(f.Ctx, requester, modelHash, []byte("in"), 3, math.NewInt(10))
		require.NoError(t, err)
	}

	require.Equal(t, uint64(3), f.Keeper.GetRequesterNonce(f.Ctx, requester))
}

func TestGetRequestNotFound(t *testing.T) {
	f := testkeeper.NewInferenceFixture(t)

	_, err := f.Keeper.GetRequest(f.Ctx, hashOf("missing"))
	require.ErrorIs(t, err, types.ErrRequestNotFound)
}
