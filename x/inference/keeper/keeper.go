package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/infera-chain/infera/x/inference/types"
)

// Keeper of the inference store
type Keeper struct {
	storeKey      storetypes.StoreKey
	cdc           codec.Codec
	accountKeeper types.AccountKeeper
	bankKeeper    types.BankKeeper
	authority     string

	// verifier checks response proofs. Defaults to the Groth16 adapter backed
	// by per-model verifying keys in module state.
	verifier types.ProofVerifier

	metrics *Metrics
}

type kvStoreProvider interface {
	KVStore(key storetypes.StoreKey) storetypes.KVStore
}

// NewKeeper creates a new inference Keeper instance
func NewKeeper(
	cdc codec.Codec,
	key storetypes.StoreKey,
	accountKeeper types.AccountKeeper,
	bankKeeper types.BankKeeper,
	authority string,
) *Keeper {
	k := &Keeper{
		storeKey:      key,
		cdc:           cdc,
		accountKeeper: accountKeeper,
		bankKeeper:    bankKeeper,
		authority:     authority,
		metrics:       NewMetrics(),
	}
	k.verifier = NewGroth16Verifier(k)
	return k
}

// GetAuthority returns the module's authority (admin) address.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// SetProofVerifier swaps the proof verifier. Used by tests and by apps that
// plug in an alternative proof system.
func (k *Keeper) SetProofVerifier(v types.ProofVerifier) {
	k.verifier = v
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// getStore returns the KVStore for the inference module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	if provider, ok := ctx.(kvStoreProvider); ok {
		return provider.KVStore(k.storeKey)
	}

	unwrapped := sdk.UnwrapSDKContext(ctx)
	return unwrapped.KVStore(k.storeKey)
}
