package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Store key prefixes. One byte each; record keys are prefix + identifier.
var (
	ParamsKey             = []byte{0x01}
	RequestKeyPrefix      = []byte{0x02}
	NodeKeyPrefix         = []byte{0x03}
	ModelPriceKeyPrefix   = []byte{0x04}
	ModelVKKeyPrefix      = []byte{0x05}
	RewardCreditKeyPrefix = []byte{0x06}
	NonceKeyPrefix        = []byte{0x07}
)

// RequestKey returns the store key for a request by its hex ID.
func RequestKey(requestID string) []byte {
	return append(RequestKeyPrefix, []byte(requestID)...)
}

// NodeKey returns the store key for a node account.
func NodeKey(node sdk.AccAddress) []byte {
	return append(NodeKeyPrefix, node.Bytes()...)
}

// ModelPriceKey returns the store key for a model's price.
func ModelPriceKey(modelHash string) []byte {
	return append(ModelPriceKeyPrefix, []byte(modelHash)...)
}

// ModelVKKey returns the store key for a model's verifying key.
func ModelVKKey(modelHash string) []byte {
	return append(ModelVKKeyPrefix, []byte(modelHash)...)
}

// RewardCreditKey returns the store key for an address's reward credit.
func RewardCreditKey(addr sdk.AccAddress) []byte {
	return append(RewardCreditKeyPrefix, addr.Bytes()...)
}

// NonceKey returns the store key for a requester's nonce counter.
func NonceKey(requester sdk.AccAddress) []byte {
	return append(NonceKeyPrefix, requester.Bytes()...)
}
