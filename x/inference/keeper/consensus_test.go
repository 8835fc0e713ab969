package keeper_test

import (
	"errors"
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/infera-chain/infera/testutil/keeper"
	"github.com/infera-chain/infera/x/inference/types"
)

// submitSigned submits a correctly signed response for the node.
func submitSigned(t *testing.T, f *testkeeper.InferenceFixture, node testNode, requestID, resultHash string) (bool, error) {
	t.Helper()
	return f.Keeper.SubmitResponse(f.Ctx, node.addr, requestID, resultHash,
		[]byte("proof"), node.pubKey(), node.sign(t, requestID, resultHash))
}

func TestSubmitResponseQuorumFlow(t *testing.T) {
	f := testkeeper.NewInferenceFixture(t)
	f.Keeper.SetProofVerifier(stubVerifier{})

	nodes := []testNode{newTestNode(), newTestNode(), newTestNode()}
	for _, n := range nodes {
		authorizeTestNode(t, f, n)
	}

	// 1000 does not divide by 3; the remainder goes to the quorum trigger.
	requestID, requester, _ := openTestRequest(t, f, math.NewInt(1000), 3)
	resultHash := hashOf("result")

	fulfilled, err := submitSigned(t, f, nodes[0], requestID, resultHash)
	require.NoError(t, err)
	require.False(t, fulfilled)

	fulfilled, err = submitSigned(t, f, nodes[1], requestID, resultHash)
	require.NoError(t, err)
	require.False(t, fulfilled)

	fulfilled, err = submitSigned(t, f, nodes[2], requestID, resultHash)
	require.NoError(t, err)
	require.True(t, fulfilled)

	request, err := f.Keeper.GetRequest(f.Ctx, requestID)
	require.NoError(t, err)
	require.Equal(t, types.RequestStatusFulfilled, request.Status)
	require.Equal(t, resultHash, request.FinalResult)
	require.Len(t, request.Responses, 3)

	require.Equal(t, math.NewInt(333), f.Keeper.GetRewardCredit(f.Ctx, nodes[0].addr))
	require.Equal(t, math.NewInt(333), f.Keeper.GetRewardCredit(f.Ctx, nodes[1].addr))
	require.Equal(t, math.NewInt(334), f.Keeper.GetRewardCredit(f.Ctx, nodes[2].addr))

	// Each accepted response earns reputation.
	for _, n := range nodes {
		account, found := f.Keeper.GetNodeAccount(f.Ctx, n.addr)
		require.True(t, found)
		require.Equal(t, int64(types.DefaultReputationReward), account.Reputation)
		require.Equal(t, f.Ctx.BlockTime(), account.LastActivity)
	}

	// The escrow stays with the module until responders claim.
	_ = requester
	stakes := types.DefaultMinStake.MulRaw(3)
	require.Equal(t, stakes.AddRaw(1000), f.ModuleBalance(t))
}

func TestSubmitResponseGates(t *testing.T) {
	f := testkeeper.NewInferenceFixture(t)
	f.Keeper.SetProofVerifier(stubVerifier{})

	node := newTestNode()
	authorizeTestNode(t, f, node)

	requestID, _, _ := openTestRequest(t, f, math.NewInt(900), 3)
	resultHash := hashOf("result")

	t.Run("ineligible node", func(t *testing.T) {
		_, err := submitSigned(t, f, newTestNode(), requestID, resultHash)
		require.ErrorIs(t, err, types.ErrUnauthorized)
	})

	t.Run("unknown request", func(t *testing.T) {
		_, err := submitSigned(t, f, node, hashOf("missing"), resultHash)
		require.ErrorIs(t, err, types.ErrRequestNotFound)
	})

	t.Run("rejected proof", func(t *testing.T) {
		f.Keeper.SetProofVerifier(stubVerifier{err: errors.New("trace does not open commitment")})
		_, err := submitSigned(t, f, node, requestID, resultHash)
		require.ErrorIs(t, err, types.ErrInvalidProof)
		f.Keeper.SetProofVerifier(stubVerifier{})

		request, err := f.Keeper.GetRequest(f.Ctx, requestID)
		require.NoError(t, err)
		require.Empty(t, request.Responses, "rejected proof must not record a response")
	})

	t.Run("foreign public key", func(t *testing.T) {
		other := newTestNode()
		_, err := f.Keeper.SubmitResponse(f.Ctx, node.addr, requestID, resultHash,
			[]byte("proof"), other.pubKey(), other.sign(t, requestID, resultHash))
		require.ErrorIs(t, err, types.ErrInvalidSignature)
	})

	t.Run("signature over wrong message", func(t *testing.T) {
		_, err := f.Keeper.SubmitResponse(f.Ctx, node.addr, requestID, resultHash,
			[]byte("proof"), node.pubKey(), node.sign(t, requestID, hashOf("other")))
		require.ErrorIs(t, err, types.ErrInvalidSignature)
	})

	t.Run("duplicate response", func(t *testing.T) {
		_, err := submitSigned(t, f, node, requestID, resultHash)
		require.NoError(t, err)

		_, err = submitSigned(t, f, node, requestID, hashOf("second-try"))
		require.ErrorIs(t, err, types.ErrDuplicateResponse)

		request, err := f.Keeper.GetRequest(f.Ctx, requestID)
		require.NoError(t, err)
		require.Len(t, request.Responses, 1)
	})

	t.Run("already fulfilled", func(t *testing.T) {
		extra := []testNode{newTestNode(), newTestNode(), newTestNode()}
		for _, n := range extra {
			authorizeTestNode(t, f, n)
		}

		_, err := submitSigned(t, f, extra[0], requestID, resultHash)
		require.NoError(t, err)
		fulfilled, err := submitSigned(t, f, extra[1], requestID, resultHash)
		require.NoError(t, err)
		require.True(t, fulfilled)

		_, err = submitSigned(t, f, extra[2], requestID, resultHash)
		require.ErrorIs(t, err, types.ErrAlreadyFulfilled)
	})
}

func TestSubmitResponseRollingWindow(t *testing.T) {
	f := testkeeper.NewInferenceFixture(t)
	f.Keeper.SetProofVerifier(stubVerifier{})

	nodes := []testNode{newTestNode(), newTestNode(), newTestNode()}
	for _, n := range nodes {
		authorizeTestNode(t, f, n)
	}

	requestID, _, _ := openTestRequest(t, f, math.NewInt(900), 3)
	resultHash := hashOf("result")

	// 25 minutes in: inside the 30 minute window.
	f.Ctx = f.Ctx.WithBlockTime(f.Ctx.BlockTime().Add(25 * time.Minute))
	_, err := submitSigned(t, f, nodes[0], requestID, resultHash)
	require.NoError(t, err)

	// Another 25 minutes: 50 past creation, but only 25 past the last
	// accepted response, so the rolling window is still open.
	f.Ctx = f.Ctx.WithBlockTime(f.Ctx.BlockTime().Add(25 * time.Minute))
	_, err = submitSigned(t, f, nodes[1], requestID, resultHash)
	require.NoError(t, err)

	// 30 minutes of silence closes the window.
	f.Ctx = f.Ctx.WithBlockTime(f.Ctx.BlockTime().Add(30 * time.Minute))
	_, err = submitSigned(t, f, nodes[2], requestID, resultHash)
	require.ErrorIs(t, err, types.ErrWindowClosed)
}

func TestSubmitResponseExpiredRequest(t *testing.T) {
	f := testkeeper.NewInferenceFixture(t)
	f.Keeper.SetProofVerifier(stubVerifier{})

	node := newTestNode()
	authorizeTestNode(t, f, node)

	requestID, _, _ := openTestRequest(t, f, math.NewInt(900), 3)

	request, err := f.Keeper.GetRequest(f.Ctx, requestID)
	require.NoError(t, err)
	request.Status = types.RequestStatusExpired
	require.NoError(t, f.Keeper.SetRequest(f.Ctx, *request))

	_, err = submitSigned(t, f, node, requestID, hashOf("result"))
	require.ErrorIs(t, err, types.ErrRequestExpired)
}

func TestSubmitResponseStrictAgreement(t *testing.T) {
	f := testkeeper.NewInferenceFixture(t)
	f.Keeper.SetProofVerifier(stubVerifier{})

	params, err := f.Keeper.GetParams(f.Ctx)
	require.NoError(t, err)
	params.RequireMatchingResults = true
	require.NoError(t, f.Keeper.SetParams(f.Ctx, params))

	nodes := []testNode{newTestNode(), newTestNode(), newTestNode(), newTestNode()}
	for _, n := range nodes {
		authorizeTestNode(t, f, n)
	}

	requestID, _, _ := openTestRequest(t, f, math.NewInt(1000), 3)
	agreed := hashOf("agreed")
	outlier := hashOf("outlier")

	fulfilled, err := submitSigned(t, f, nodes[0], requestID, agreed)
	require.NoError(t, err)
	require.False(t, fulfilled)

	fulfilled, err = submitSigned(t, f, nodes[1], requestID, agreed)
	require.NoError(t, err)
	require.False(t, fulfilled)

	// Third response disagrees: three responses total, but only two match,
	// so strict agreement keeps the request open.
	fulfilled, err = submitSigned(t, f, nodes[2], requestID, outlier)
	require.NoError(t, err)
	require.False(t, fulfilled)

	fulfilled, err = submitSigned(t, f, nodes[3], requestID, agreed)
	require.NoError(t, err)
	require.True(t, fulfilled)

	request, err := f.Keeper.GetRequest(f.Ctx, requestID)
	require.NoError(t, err)
	require.Equal(t, agreed, request.FinalResult)
	require.Len(t, request.Responses, 4)

	// All recorded responders share the reward, the outlier included.
	require.Equal(t, math.NewInt(250), f.Keeper.GetRewardCredit(f.Ctx, nodes[2].addr))
}
