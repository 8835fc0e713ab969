package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState defines the inference module's genesis state.
type GenesisState struct {
	Params        Params              `json:"params"`
	Requests      []Request           `json:"requests,omitempty"`
	Nodes         []NodeAccount       `json:"nodes,omitempty"`
	ModelPrices   []ModelPrice        `json:"model_prices,omitempty"`
	VerifyingKeys []ModelVerifyingKey `json:"verifying_keys,omitempty"`
	RewardCredits []RewardCredit      `json:"reward_credits,omitempty"`
	Nonces        []RequesterNonce    `json:"nonces,omitempty"`
}

// DefaultGenesis returns the default genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	requestIDs := make(map[string]struct{}, len(gs.Requests))
	for _, req := range gs.Requests {
		if _, seen := requestIDs[req.ID]; seen {
			return fmt.Errorf("duplicate request id %s", req.ID)
		}
		requestIDs[req.ID] = struct{}{}

		if _, err := sdk.AccAddressFromBech32(req.Requester); err != nil {
			return fmt.Errorf("request %s: invalid requester: %w", req.ID, err)
		}
		if err := ValidateModelHash(req.ModelHash); err != nil {
			return fmt.Errorf("request %s: %w", req.ID, err)
		}
		if req.MinConsensus < MinConsensusFloor {
			return fmt.Errorf("request %s: min consensus %d below floor %d", req.ID, req.MinConsensus, MinConsensusFloor)
		}
		if req.Reward.IsNil() || !req.Reward.IsPositive() {
			return fmt.Errorf("request %s: reward must be positive", req.ID)
		}
		switch req.Status {
		case RequestStatusOpen, RequestStatusFulfilled, RequestStatusExpired:
		default:
			return fmt.Errorf("request %s: unknown status %q", req.ID, req.Status)
		}
		responders := make(map[string]struct{}, len(req.Responses))
		for _, resp := range req.Responses {
			if _, seen := responders[resp.Node]; seen {
				return fmt.Errorf("request %s: duplicate responder %s", req.ID, resp.Node)
			}
			responders[resp.Node] = struct{}{}
		}
	}

	nodeAddrs := make(map[string]struct{}, len(gs.Nodes))
	for _, node := range gs.Nodes {
		if _, err := sdk.AccAddressFromBech32(node.Address); err != nil {
			return fmt.Errorf("node: invalid address: %w", err)
		}
		if _, seen := nodeAddrs[node.Address]; seen {
			return fmt.Errorf("duplicate node %s", node.Address)
		}
		nodeAddrs[node.Address] = struct{}{}
		if node.Stake.IsNil() || node.Stake.IsNegative() {
			return fmt.Errorf("node %s: stake must be non-negative", node.Address)
		}
	}

	priceModels := make(map[string]struct{}, len(gs.ModelPrices))
	for _, mp := range gs.ModelPrices {
		if err := ValidateModelHash(mp.ModelHash); err != nil {
			return err
		}
		if _, seen := priceModels[mp.ModelHash]; seen {
			return fmt.Errorf("duplicate model price %s", mp.ModelHash)
		}
		priceModels[mp.ModelHash] = struct{}{}
		if mp.Price.IsNil() || mp.Price.IsNegative() {
			return fmt.Errorf("model %s: price must be non-negative", mp.ModelHash)
		}
	}

	vkModels := make(map[string]struct{}, len(gs.VerifyingKeys))
	for _, vk := range gs.VerifyingKeys {
		if err := ValidateModelHash(vk.ModelHash); err != nil {
			return err
		}
		if _, seen := vkModels[vk.ModelHash]; seen {
			return fmt.Errorf("duplicate verifying key %s", vk.ModelHash)
		}
		vkModels[vk.ModelHash] = struct{}{}
		if len(vk.VerifyingKey) == 0 {
			return fmt.Errorf("model %s: empty verifying key", vk.ModelHash)
		}
	}

	creditAddrs := make(map[string]struct{}, len(gs.RewardCredits))
	for _, rc := range gs.RewardCredits {
		if _, err := sdk.AccAddressFromBech32(rc.Address); err != nil {
			return fmt.Errorf("reward credit: invalid address: %w", err)
		}
		if _, seen := creditAddrs[rc.Address]; seen {
			return fmt.Errorf("duplicate reward credit %s", rc.Address)
		}
		creditAddrs[rc.Address] = struct{}{}
		if rc.Amount.IsNil() || !rc.Amount.IsPositive() {
			return fmt.Errorf("reward credit %s: amount must be positive", rc.Address)
		}
	}

	nonceAddrs := make(map[string]struct{}, len(gs.Nonces))
	for _, n := range gs.Nonces {
		if _, err := sdk.AccAddressFromBech32(n.Requester); err != nil {
			return fmt.Errorf("nonce: invalid requester: %w", err)
		}
		if _, seen := nonceAddrs[n.Requester]; seen {
			return fmt.Errorf("duplicate nonce entry %s", n.Requester)
		}
		nonceAddrs[n.Requester] = struct{}{}
	}

	return nil
}
