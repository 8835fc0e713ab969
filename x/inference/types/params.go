package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Default parameter values
var (
	DefaultMinStake   = math.NewInt(1_000_000)
	DefaultStakeDenom = "uinf"
)

const (
	DefaultResponseWindowSeconds = 1800 // 30 minutes, rolling from last activity
	DefaultReputationReward      = 10
	DefaultReputationPenalty     = 20
)

// Params defines the inference module parameters.
type Params struct {
	// MinStake is the stake a node must hold to be eligible to respond.
	MinStake math.Int `json:"min_stake"`
	// StakeDenom is the denomination used for stakes, rewards and escrow.
	StakeDenom string `json:"stake_denom"`
	// ResponseWindowSeconds is the rolling response window, measured from the
	// request's last activity.
	ResponseWindowSeconds int64 `json:"response_window_seconds"`
	// ReputationReward is granted per accepted response.
	ReputationReward int64 `json:"reputation_reward"`
	// ReputationPenalty is deducted per slash.
	ReputationPenalty int64 `json:"reputation_penalty"`
	// RequireMatchingResults counts only responses agreeing on a result hash
	// toward quorum instead of the raw response count.
	RequireMatchingResults bool `json:"require_matching_results"`
}

// DefaultParams returns the default inference parameters.
func DefaultParams() Params {
	return Params{
		MinStake:               DefaultMinStake,
		StakeDenom:             DefaultStakeDenom,
		ResponseWindowSeconds:  DefaultResponseWindowSeconds,
		ReputationReward:       DefaultReputationReward,
		ReputationPenalty:      DefaultReputationPenalty,
		RequireMatchingResults: false,
	}
}

// Validate checks the parameter set for internal consistency.
func (p Params) Validate() error {
	if p.MinStake.IsNil() || p.MinStake.IsNegative() {
		return fmt.Errorf("min stake must be non-negative: %s", p.MinStake)
	}
	if err := sdk.ValidateDenom(p.StakeDenom); err != nil {
		return fmt.Errorf("invalid stake denom: %w", err)
	}
	if p.ResponseWindowSeconds <= 0 {
		return fmt.Errorf("response window must be positive: %d", p.ResponseWindowSeconds)
	}
	if p.ReputationReward <= 0 {
		return fmt.Errorf("reputation reward must be positive: %d", p.ReputationReward)
	}
	if p.ReputationPenalty <= 0 {
		return fmt.Errorf("reputation penalty must be positive: %d", p.ReputationPenalty)
	}
	return nil
}
