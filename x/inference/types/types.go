package types

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ResponseRecord is a single attested result appended to a request. The slice
// on Request is the only record of who responded; order is submission order.
type ResponseRecord struct {
	Node        string    `json:"node"`
	ResultHash  string    `json:"result_hash"`
	Signature   []byte    `json:"signature"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Request is an escrowed inference request awaiting consensus.
type Request struct {
	ID           string           `json:"id"`
	Requester    string           `json:"requester"`
	ModelHash    string           `json:"model_hash"`
	InputData    []byte           `json:"input_data"`
	MinConsensus uint32           `json:"min_consensus"`
	Reward       math.Int         `json:"reward"`
	Responses    []ResponseRecord `json:"responses,omitempty"`
	FinalResult  string           `json:"final_result,omitempty"`
	Status       string           `json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
	LastActivity time.Time        `json:"last_activity"`
}

// Fulfilled reports whether the request reached consensus.
func (r Request) Fulfilled() bool {
	return r.Status == RequestStatusFulfilled
}

// Terminal reports whether the request can no longer accept responses.
func (r Request) Terminal() bool {
	return r.Status != RequestStatusOpen
}

// HasResponder reports whether the node already appears in the response set.
func (r Request) HasResponder(node string) bool {
	for _, resp := range r.Responses {
		if resp.Node == node {
			return true
		}
	}
	return false
}

// AddResponse appends a response, rejecting a second submission from the same
// node. The caller is responsible for all other gates.
func (r *Request) AddResponse(rec ResponseRecord) error {
	if r.HasResponder(rec.Node) {
		return ErrDuplicateResponse.Wrapf("node %s", rec.Node)
	}
	r.Responses = append(r.Responses, rec)
	return nil
}

// CountMatching returns how many responses carry the given result hash.
func (r Request) CountMatching(resultHash string) int {
	n := 0
	for _, resp := range r.Responses {
		if resp.ResultHash == resultHash {
			n++
		}
	}
	return n
}

// WindowDeadline is the instant at which the rolling response window closes.
func (r Request) WindowDeadline(window time.Duration) time.Time {
	return r.LastActivity.Add(window)
}

// NodeAccount tracks a compute node's stake, reputation and authorization.
// Reputation can go negative: a slash applied at positive reputation always
// deducts the full penalty.
type NodeAccount struct {
	Address      string    `json:"address"`
	Stake        math.Int  `json:"stake"`
	Reputation   int64     `json:"reputation"`
	Authorized   bool      `json:"authorized"`
	JoinedAt     time.Time `json:"joined_at"`
	LastActivity time.Time `json:"last_activity"`
}

// Eligible reports whether the node may submit responses.
func (n NodeAccount) Eligible(minStake math.Int) bool {
	return n.Authorized && n.Stake.GTE(minStake)
}

// ModelPrice is the admin-managed floor price for a model.
type ModelPrice struct {
	ModelHash string   `json:"model_hash"`
	Price     math.Int `json:"price"`
}

// ModelVerifyingKey holds the serialized Groth16 verifying key for a model.
type ModelVerifyingKey struct {
	ModelHash    string `json:"model_hash"`
	VerifyingKey []byte `json:"verifying_key"`
}

// RewardCredit is a node's withdrawable balance in the pull-based payout ledger.
type RewardCredit struct {
	Address string   `json:"address"`
	Amount  math.Int `json:"amount"`
}

// RequesterNonce tracks the per-requester counter mixed into request IDs.
type RequesterNonce struct {
	Requester string `json:"requester"`
	Nonce     uint64 `json:"nonce"`
}

// DeriveRequestID computes the request identifier: hex-encoded SHA-256 over
// the requester address, the requester's nonce and the creation time. The
// nonce guarantees uniqueness for a requester within one block.
func DeriveRequestID(requester sdk.AccAddress, nonce uint64, createdAt time.Time) string {
	h := sha256.New()
	h.Write(requester.Bytes())

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], nonce)
	h.Write(buf[:])

	binary.BigEndian.PutUint64(buf[:], uint64(createdAt.UnixNano()))
	h.Write(buf[:])

	return hex.EncodeToString(h.Sum(nil))
}

// ResponseSigningHash is the canonical message a node signs when submitting a
// response: SHA-256 over the request ID and the result hash, length-prefixed
// so field boundaries are unambiguous.
func ResponseSigningHash(requestID, resultHash string) []byte {
	h := sha256.New()

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(len(requestID)))
	h.Write(buf[:])
	h.Write([]byte(requestID))

	binary.BigEndian.PutUint64(buf[:], uint64(len(resultHash)))
	h.Write(buf[:])
	h.Write([]byte(resultHash))

	return h.Sum(nil)
}
