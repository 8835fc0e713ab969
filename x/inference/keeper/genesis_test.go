package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/infera-chain/infera/testutil/keeper"
	"github.com/infera-chain/infera/x/inference/types"
)

func TestGenesisRoundTrip(t *testing.T) {
	f := testkeeper.NewInferenceFixture(t)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	node := newTestNode()
	requester := newTestNode()

	params := types.DefaultParams()
	params.RequireMatchingResults = true

	genState := types.GenesisState{
		Params: params,
		Requests: []types.Request{{
			ID:           hashOf("request-1"),
			Requester:    requester.addr.String(),
			ModelHash:    hashOf("model"),
			InputData:    []byte("prompt"),
			MinConsensus: 3,
			Reward:       math.NewInt(900),
			Responses: []types.ResponseRecord{{
				Node:        node.addr.String(),
				ResultHash:  hashOf("result"),
				Signature:   []byte("sig"),
				SubmittedAt: now,
			}},
			Status:       types.RequestStatusOpen,
			CreatedAt:    now,
			LastActivity: now,
		}},
		Nodes: []types.NodeAccount{{
			Address:      node.addr.String(),
			Stake:        types.DefaultMinStake,
			Reputation:   40,
			Authorized:   true,
			JoinedAt:     now,
			LastActivity: now,
		}},
		ModelPrices: []types.ModelPrice{{
			ModelHash: hashOf("model"),
			Price:     math.NewInt(100),
		}},
		VerifyingKeys: []types.ModelVerifyingKey{{
			ModelHash:    hashOf("model"),
			VerifyingKey: []byte{0xde, 0xad, 0xbe, 0xef},
		}},
		RewardCredits: []types.RewardCredit{{
			Address: node.addr.String(),
			Amount:  math.NewInt(450),
		}},
		Nonces: []types.RequesterNonce{{
			Requester: requester.addr.String(),
			Nonce:     7,
		}},
	}
	require.NoError(t, genState.Validate())

	require.NoError(t, f.Keeper.InitGenesis(f.Ctx, genState))

	exported, err := f.Keeper.ExportGenesis(f.Ctx)
	require.NoError(t, err)

	require.Equal(t, genState.Params, exported.Params)
	require.ElementsMatch(t, genState.Requests, exported.Requests)
	require.ElementsMatch(t, genState.Nodes, exported.Nodes)
	require.ElementsMatch(t, genState.ModelPrices, exported.ModelPrices)
	require.ElementsMatch(t, genState.VerifyingKeys, exported.VerifyingKeys)
	require.ElementsMatch(t, genState.RewardCredits, exported.RewardCredits)
	require.ElementsMatch(t, genState.Nonces, exported.Nonces)
}

func TestGenesisImportedStateIsLive(t *testing.T) {
	f := testkeeper.NewInferenceFixture(t)

	node := newTestNode()
	genState := types.GenesisState{
		Params: types.DefaultParams(),
		Nodes: []types.NodeAccount{{
			Address:    node.addr.String(),
			Stake:      types.DefaultMinStake,
			Reputation: 10,
			Authorized: true,
		}},
		Nonces: []types.RequesterNonce{{
			Requester: node.addr.String(),
			Nonce:     3,
		}},
	}
	require.NoError(t, f.Keeper.InitGenesis(f.Ctx, genState))

	require.NoError(t, f.Keeper.CheckEligibility(f.Ctx, node.addr))
	require.Equal(t, uint64(3), f.Keeper.GetRequesterNonce(f.Ctx, node.addr))
}

func TestExportDefaultState(t *testing.T) {
	f := testkeeper.NewInferenceFixture(t)

	exported, err := f.Keeper.ExportGenesis(f.Ctx)
	require.NoError(t, err)

	require.Equal(t, types.DefaultParams(), exported.Params)
	require.Empty(t, exported.Requests)
	require.Empty(t, exported.Nodes)
	require.Empty(t, exported.RewardCredits)
}
