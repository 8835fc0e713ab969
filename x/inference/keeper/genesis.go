package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/infera-chain/infera/x/inference/types"
)

// InitGenesis initializes the inference module state from a genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("init genesis: params: %w", err)
	}

	for _, request := range genState.Requests {
		if err := k.SetRequest(ctx, request); err != nil {
			return fmt.Errorf("init genesis: request %s: %w", request.ID, err)
		}
	}

	for _, node := range genState.Nodes {
		if err := k.SetNodeAccount(ctx, node); err != nil {
			return fmt.Errorf("init genesis: node %s: %w", node.Address, err)
		}
	}

	for _, mp := range genState.ModelPrices {
		if err := k.SetModelPrice(ctx, mp.ModelHash, mp.Price); err != nil {
			return fmt.Errorf("init genesis: model price %s: %w", mp.ModelHash, err)
		}
	}

	for _, vk := range genState.VerifyingKeys {
		if err := k.SetModelVerifyingKey(ctx, vk.ModelHash, vk.VerifyingKey); err != nil {
			return fmt.Errorf("init genesis: verifying key %s: %w", vk.ModelHash, err)
		}
	}

	for _, credit := range genState.RewardCredits {
		addr, err := sdk.AccAddressFromBech32(credit.Address)
		if err != nil {
			return fmt.Errorf("init genesis: reward credit: %w", err)
		}
		if err := k.setRewardCredit(ctx, addr, credit.Amount); err != nil {
			return err
		}
	}

	for _, nonce := range genState.Nonces {
		addr, err := sdk.AccAddressFromBech32(nonce.Requester)
		if err != nil {
			return fmt.Errorf("init genesis: nonce: %w", err)
		}
		k.setRequesterNonce(ctx, addr, nonce.Nonce)
	}

	return nil
}

// ExportGenesis exports the inference module state.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	genState := types.GenesisState{Params: params}

	err = k.IterateRequests(ctx, func(request types.Request) (bool, error) {
		genState.Requests = append(genState.Requests, request)
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	err = k.IterateNodeAccounts(ctx, func(node types.NodeAccount) (bool, error) {
		genState.Nodes = append(genState.Nodes, node)
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	err = k.IterateModelPrices(ctx, func(mp types.ModelPrice) (bool, error) {
		genState.ModelPrices = append(genState.ModelPrices, mp)
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	err = k.IterateModelVerifyingKeys(ctx, func(vk types.ModelVerifyingKey) (bool, error) {
		genState.VerifyingKeys = append(genState.VerifyingKeys, vk)
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	err = k.IterateRewardCredits(ctx, func(addr sdk.AccAddress, amount math.Int) (bool, error) {
		genState.RewardCredits = append(genState.RewardCredits, types.RewardCredit{
			Address: addr.String(),
			Amount:  amount,
		})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	err = k.iterateRequesterNonces(ctx, func(requester sdk.AccAddress, nonce uint64) (bool, error) {
		genState.Nonces = append(genState.Nonces, types.RequesterNonce{
			Requester: requester.String(),
			Nonce:     nonce,
		})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return &genState, nil
}
