package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/infera-chain/infera/x/inference/types"
)

// RegisterInvariants registers all inference module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "module-account-solvency", ModuleAccountInvariant(k))
	ir.RegisterRoute(types.ModuleName, "responder-uniqueness", ResponderUniquenessInvariant(k))
	ir.RegisterRoute(types.ModuleName, "terminal-state", TerminalStateInvariant(k))
}

// AllInvariants runs all invariants of the inference module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		if res, stop := ModuleAccountInvariant(k)(ctx); stop {
			return res, stop
		}
		if res, stop := ResponderUniquenessInvariant(k)(ctx); stop {
			return res, stop
		}
		return TerminalStateInvariant(k)(ctx)
	}
}

// ModuleAccountInvariant checks that the module account holds at least the
// sum of escrowed stakes, open request rewards and pending reward credits.
func ModuleAccountInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		params, err := k.GetParams(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "module-account-solvency",
				fmt.Sprintf("failed to load params: %v", err)), true
		}

		expected := math.ZeroInt()

		err = k.IterateNodeAccounts(ctx, func(node types.NodeAccount) (bool, error) {
			expected = expected.Add(node.Stake)
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "module-account-solvency",
				fmt.Sprintf("failed to iterate nodes: %v", err)), true
		}

		err = k.IterateRequests(ctx, func(request types.Request) (bool, error) {
			if request.Status == types.RequestStatusOpen {
				expected = expected.Add(request.Reward)
			}
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "module-account-solvency",
				fmt.Sprintf("failed to iterate requests: %v", err)), true
		}

		err = k.IterateRewardCredits(ctx, func(_ sdk.AccAddress, amount math.Int) (bool, error) {
			expected = expected.Add(amount)
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "module-account-solvency",
				fmt.Sprintf("failed to iterate reward credits: %v", err)), true
		}

		moduleAddr := k.accountKeeper.GetModuleAddress(types.ModuleName)
		balance := k.bankKeeper.GetBalance(ctx, moduleAddr, params.StakeDenom)

		broken := balance.Amount.LT(expected)
		return sdk.FormatInvariant(types.ModuleName, "module-account-solvency",
			fmt.Sprintf("module balance %s, obligations %s%s", balance.Amount, expected, params.StakeDenom)), broken
	}
}

// ResponderUniquenessInvariant checks that no request holds two responses
// from the same node.
func ResponderUniquenessInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var broken bool
		var msg string

		_ = k.IterateRequests(ctx, func(request types.Request) (bool, error) {
			seen := make(map[string]struct{}, len(request.Responses))
			for _, resp := range request.Responses {
				if _, dup := seen[resp.Node]; dup {
					broken = true
					msg = fmt.Sprintf("request %s has duplicate responder %s", request.ID, resp.Node)
					return true, nil
				}
				seen[resp.Node] = struct{}{}
			}
			return false, nil
		})

		return sdk.FormatInvariant(types.ModuleName, "responder-uniqueness", msg), broken
	}
}

// TerminalStateInvariant checks that fulfilled requests carry a final result
// backed by at least one response.
func TerminalStateInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var broken bool
		var msg string

		_ = k.IterateRequests(ctx, func(request types.Request) (bool, error) {
			if request.Fulfilled() {
				if request.FinalResult == "" || len(request.Responses) == 0 {
					broken = true
					msg = fmt.Sprintf("fulfilled request %s has no final result or responses", request.ID)
					return true, nil
				}
			}
			return false, nil
		})

		return sdk.FormatInvariant(types.ModuleName, "terminal-state", msg), broken
	}
}
