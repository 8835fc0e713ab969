package types

const (
	// ModuleName defines the module name
	ModuleName = "inference"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for the inference module
	RouterKey = ModuleName
)

const (
	// MinConsensusFloor is the hard lower bound on a request's consensus
	// threshold, enforced at creation time.
	MinConsensusFloor = 3

	// ModelHashLength is the byte length of a model identifier (hex-encoded
	// SHA-256 digest of the registered model artifact).
	ModelHashLength = 32

	// ResultHashLength is the byte length of a result hash.
	ResultHashLength = 32
)

// Request status values. A request is created open and moves to exactly one
// terminal status.
const (
	RequestStatusOpen      = "open"
	RequestStatusFulfilled = "fulfilled"
	RequestStatusExpired   = "expired"
)

// KeyPrefix turns a string into a store key prefix.
func KeyPrefix(p string) []byte {
	return []byte(p)
}
