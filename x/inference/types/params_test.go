package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/infera-chain/infera/x/inference/types"
)

func TestDefaultParamsValidate(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*types.Params)
		wantErr string
	}{
		{"negative min stake", func(p *types.Params) { p.MinStake = math.NewInt(-1) }, "min stake"},
		{"nil min stake", func(p *types.Params) { p.MinStake = math.Int{} }, "min stake"},
		{"bad denom", func(p *types.Params) { p.StakeDenom = "1bad!" }, "denom"},
		{"zero window", func(p *types.Params) { p.ResponseWindowSeconds = 0 }, "response window"},
		{"zero reward", func(p *types.Params) { p.ReputationReward = 0 }, "reputation reward"},
		{"negative penalty", func(p *types.Params) { p.ReputationPenalty = -1 }, "reputation penalty"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			params := types.DefaultParams()
			tc.mutate(&params)
			require.ErrorContains(t, params.Validate(), tc.wantErr)
		})
	}
}
