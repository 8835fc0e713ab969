package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/infera-chain/infera/testutil/keeper"
	"github.com/infera-chain/infera/x/inference/types"
)

func TestExpireRequestsRefundsRequester(t *testing.T) {
	f := testkeeper.NewInferenceFixture(t)
	f.Keeper.SetProofVerifier(stubVerifier{})

	requestID, requester, _ := openTestRequest(t, f, math.NewInt(500), 3)
	require.True(t, f.Balance(t, requester).IsZero())

	// Inside the window nothing happens.
	require.NoError(t, f.Keeper.EndBlocker(f.Ctx))
	request, err := f.Keeper.GetRequest(f.Ctx, requestID)
	require.NoError(t, err)
	require.Equal(t, types.RequestStatusOpen, request.Status)

	f.Ctx = f.Ctx.WithBlockTime(f.Ctx.BlockTime().Add(31 * time.Minute))
	require.NoError(t, f.Keeper.EndBlocker(f.Ctx))

	request, err = f.Keeper.GetRequest(f.Ctx, requestID)
	require.NoError(t, err)
	require.Equal(t, types.RequestStatusExpired, request.Status)

	// Escrow returned to the requester in full.
	require.Equal(t, math.NewInt(500), f.Balance(t, requester))
	require.True(t, f.ModuleBalance(t).IsZero())

	// The expired state is terminal for responders.
	node := newTestNode()
	authorizeTestNode(t, f, node)
	_, err = submitSigned(t, f, node, requestID, hashOf("late"))
	require.ErrorIs(t, err, types.ErrRequestExpired)
}

func TestExpireRequestsSkipsFulfilled(t *testing.T) {
	f := testkeeper.NewInferenceFixture(t)
	f.Keeper.SetProofVerifier(stubVerifier{})

	nodes := []testNode{newTestNode(), newTestNode(), newTestNode()}
	for _, n := range nodes {
		authorizeTestNode(t, f, n)
	}

	requestID, requester, _ := openTestRequest(t, f, math.NewInt(900), 3)
	resultHash := hashOf("result")
	for _, n := range nodes {
		_, err := submitSigned(t, f, n, requestID, resultHash)
		require.NoError(t, err)
	}

	f.Ctx = f.Ctx.WithBlockTime(f.Ctx.BlockTime().Add(2 * time.Hour))
	require.NoError(t, f.Keeper.EndBlocker(f.Ctx))

	request, err := f.Keeper.GetRequest(f.Ctx, requestID)
	require.NoError(t, err)
	require.Equal(t, types.RequestStatusFulfilled, request.Status)

	// No refund: the reward belongs to the responders' credits.
	require.True(t, f.Balance(t, requester).IsZero())
}

func TestExpireRequestsRespectsRollingActivity(t *testing.T) {
	f := testkeeper.NewInferenceFixture(t)
	f.Keeper.SetProofVerifier(stubVerifier{})

	node := newTestNode()
	authorizeTestNode(t, f, node)

	requestID, _, _ := openTestRequest(t, f, math.NewInt(500), 3)

	// A response 25 minutes in extends the window past the original deadline.
	f.Ctx = f.Ctx.WithBlockTime(f.Ctx.BlockTime().Add(25 * time.Minute))
	_, err := submitSigned(t, f, node, requestID, hashOf("result"))
	require.NoError(t, err)

	f.Ctx = f.Ctx.WithBlockTime(f.Ctx.BlockTime().Add(10 * time.Minute))
	require.NoError(t, f.Keeper.EndBlocker(f.Ctx))

	request, err := f.Keeper.GetRequest(f.Ctx, requestID)
	require.NoError(t, err)
	require.Equal(t, types.RequestStatusOpen, request.Status, "activity must extend the expiry deadline")
}
