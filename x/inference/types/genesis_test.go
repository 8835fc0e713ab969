package types_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/infera-chain/infera/x/inference/types"
)

func validGenesisRequest(id byte) types.Request {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return types.Request{
		ID:           testHash(string([]byte{id})),
		Requester:    testAddr(id),
		ModelHash:    testHash("model"),
		InputData:    []byte("input"),
		MinConsensus: 3,
		Reward:       math.NewInt(100),
		Status:       types.RequestStatusOpen,
		CreatedAt:    now,
		LastActivity: now,
	}
}

func TestDefaultGenesisValidates(t *testing.T) {
	require.NoError(t, types.DefaultGenesis().Validate())
}

func TestGenesisValidate(t *testing.T) {
	t.Run("valid populated state", func(t *testing.T) {
		gs := types.GenesisState{
			Params:   types.DefaultParams(),
			Requests: []types.Request{validGenesisRequest(1), validGenesisRequest(2)},
			Nodes: []types.NodeAccount{{
				Address:    testAddr(10),
				Stake:      math.NewInt(1_000_000),
				Reputation: 30,
				Authorized: true,
			}},
			ModelPrices:   []types.ModelPrice{{ModelHash: testHash("model"), Price: math.NewInt(50)}},
			RewardCredits: []types.RewardCredit{{Address: testAddr(10), Amount: math.NewInt(33)}},
			Nonces:        []types.RequesterNonce{{Requester: testAddr(1), Nonce: 1}},
		}
		require.NoError(t, gs.Validate())
	})

	t.Run("duplicate request id", func(t *testing.T) {
		gs := types.GenesisState{
			Params:   types.DefaultParams(),
			Requests: []types.Request{validGenesisRequest(1), validGenesisRequest(1)},
		}
		require.ErrorContains(t, gs.Validate(), "duplicate request id")
	})

	t.Run("duplicate responder within request", func(t *testing.T) {
		req := validGenesisRequest(1)
		req.Responses = []types.ResponseRecord{
			{Node: testAddr(11), ResultHash: testHash("r")},
			{Node: testAddr(11), ResultHash: testHash("r")},
		}
		gs := types.GenesisState{Params: types.DefaultParams(), Requests: []types.Request{req}}
		require.ErrorContains(t, gs.Validate(), "duplicate responder")
	})

	t.Run("unknown status", func(t *testing.T) {
		req := validGenesisRequest(1)
		req.Status = "pending"
		gs := types.GenesisState{Params: types.DefaultParams(), Requests: []types.Request{req}}
		require.ErrorContains(t, gs.Validate(), "unknown status")
	})

	t.Run("threshold below floor", func(t *testing.T) {
		req := validGenesisRequest(1)
		req.MinConsensus = 1
		gs := types.GenesisState{Params: types.DefaultParams(), Requests: []types.Request{req}}
		require.ErrorContains(t, gs.Validate(), "below floor")
	})

	t.Run("duplicate node", func(t *testing.T) {
		node := types.NodeAccount{Address: testAddr(10), Stake: math.NewInt(1)}
		gs := types.GenesisState{Params: types.DefaultParams(), Nodes: []types.NodeAccount{node, node}}
		require.ErrorContains(t, gs.Validate(), "duplicate node")
	})

	t.Run("negative stake", func(t *testing.T) {
		gs := types.GenesisState{
			Params: types.DefaultParams(),
			Nodes:  []types.NodeAccount{{Address: testAddr(10), Stake: math.NewInt(-1)}},
		}
		require.ErrorContains(t, gs.Validate(), "non-negative")
	})

	t.Run("non-positive reward credit", func(t *testing.T) {
		gs := types.GenesisState{
			Params:        types.DefaultParams(),
			RewardCredits: []types.RewardCredit{{Address: testAddr(10), Amount: math.ZeroInt()}},
		}
		require.ErrorContains(t, gs.Validate(), "positive")
	})

	t.Run("invalid params", func(t *testing.T) {
		params := types.DefaultParams()
		params.ResponseWindowSeconds = -1
		gs := types.GenesisState{Params: params}
		require.ErrorContains(t, gs.Validate(), "invalid params")
	})
}
