package keeper_test

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/crypto/keys/ed25519"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/infera-chain/infera/testutil/keeper"
	"github.com/infera-chain/infera/x/inference/types"
)

// stubVerifier accepts or rejects every proof; tests that exercise the real
// Groth16 path are in zk_verifier_test.go.
type stubVerifier struct {
	err error
}

func (s stubVerifier) VerifyProof(_ sdk.Context, _ string, _ []byte, _ string, _ []byte) error {
	return s.err
}

// testNode is a responder with a signing key.
type testNode struct {
	priv *ed25519.PrivKey
	addr sdk.AccAddress
}

func newTestNode() testNode {
	priv := ed25519.GenPrivKey()
	return testNode{
		priv: priv,
		addr: sdk.AccAddress(priv.PubKey().Address()),
	}
}

func (n testNode) pubKey() []byte {
	return n.priv.PubKey().Bytes()
}

func (n testNode) sign(t testing.TB, requestID, resultHash string) []byte {
	sig, err := n.priv.Sign(types.ResponseSigningHash(requestID, resultHash))
	require.NoError(t, err)
	return sig
}

func hashOf(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}

// authorizeTestNode funds a node and admits it with the default minimum stake.
func authorizeTestNode(t testing.TB, f *testkeeper.InferenceFixture, node testNode) {
	f.FundAccount(t, node.addr, types.DefaultMinStake)
	require.NoError(t, f.Keeper.AuthorizeNode(f.Ctx, node.addr, types.DefaultMinStake))
}

// openTestRequest prices a model, funds a requester and opens a request.
func openTestRequest(t testing.TB, f *testkeeper.InferenceFixture, reward math.Int, minConsensus uint32) (string, sdk.AccAddress, string) {
	modelHash := hashOf("test-model")
	require.NoError(t, f.Keeper.SetModelPrice(f.Ctx, modelHash, math.NewInt(100)))

	requester := sdk.AccAddress([]byte("requester-for-tests1"))
	f.FundAccount(t, requester, reward)

	requestID, err := f.Keeper.CreateRequest(f.Ctx, requester, modelHash, []byte("input"), minConsensus, reward)
	require.NoError(t, err)

	return requestID, requester, modelHash
}
