package types

import (
	"context"
	"encoding/hex"
	"fmt"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/crypto/keys/ed25519"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgCreateRequest        = "create_request"
	TypeMsgSubmitResponse       = "submit_response"
	TypeMsgClaimRewards         = "claim_rewards"
	TypeMsgWithdrawStake        = "withdraw_stake"
	TypeMsgAuthorizeNode        = "authorize_node"
	TypeMsgSlashNode            = "slash_node"
	TypeMsgSetModelPrice        = "set_model_price"
	TypeMsgSetModelVerifyingKey = "set_model_verifying_key"
	TypeMsgUpdateParams         = "update_params"
)

// MsgCreateRequest escrows a reward and opens an inference request.
type MsgCreateRequest struct {
	Requester    string   `json:"requester"`
	ModelHash    string   `json:"model_hash"`
	InputData    []byte   `json:"input_data"`
	MinConsensus uint32   `json:"min_consensus"`
	Reward       math.Int `json:"reward"`
}

type MsgCreateRequestResponse struct {
	RequestId string `json:"request_id"`
}

// MsgSubmitResponse submits a node's attested result for an open request.
type MsgSubmitResponse struct {
	Node       string `json:"node"`
	RequestId  string `json:"request_id"`
	ResultHash string `json:"result_hash"`
	Proof      []byte `json:"proof"`
	PublicKey  []byte `json:"public_key"`
	Signature  []byte `json:"signature"`
}

type MsgSubmitResponseResponse struct {
	Fulfilled bool `json:"fulfilled"`
}

// MsgClaimRewards withdraws the sender's full reward credit.
type MsgClaimRewards struct {
	Node string `json:"node"`
}

type MsgClaimRewardsResponse struct {
	Amount math.Int `json:"amount"`
}

// MsgWithdrawStake returns part of a node's escrowed stake.
type MsgWithdrawStake struct {
	Node   string   `json:"node"`
	Amount math.Int `json:"amount"`
}

type MsgWithdrawStakeResponse struct{}

// MsgAuthorizeNode is the admin operation admitting a node to the responder
// set, escrowing the given stake from the node's balance.
type MsgAuthorizeNode struct {
	Authority string   `json:"authority"`
	Node      string   `json:"node"`
	Stake     math.Int `json:"stake"`
}

type MsgAuthorizeNodeResponse struct{}

// MsgSlashNode is the admin operation penalizing a misbehaving node.
type MsgSlashNode struct {
	Authority string   `json:"authority"`
	Node      string   `json:"node"`
	Penalty   math.Int `json:"penalty"`
}

type MsgSlashNodeResponse struct{}

// MsgSetModelPrice sets the floor price for a model.
type MsgSetModelPrice struct {
	Authority string   `json:"authority"`
	ModelHash string   `json:"model_hash"`
	Price     math.Int `json:"price"`
}

type MsgSetModelPriceResponse struct{}

// MsgSetModelVerifyingKey registers the Groth16 verifying key for a model.
type MsgSetModelVerifyingKey struct {
	Authority    string `json:"authority"`
	ModelHash    string `json:"model_hash"`
	VerifyingKey []byte `json:"verifying_key"`
}

type MsgSetModelVerifyingKeyResponse struct{}

// MsgUpdateParams replaces the module parameters.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

type MsgUpdateParamsResponse struct{}

var (
	_ sdk.Msg = &MsgCreateRequest{}
	_ sdk.Msg = &MsgSubmitResponse{}
	_ sdk.Msg = &MsgClaimRewards{}
	_ sdk.Msg = &MsgWithdrawStake{}
	_ sdk.Msg = &MsgAuthorizeNode{}
	_ sdk.Msg = &MsgSlashNode{}
	_ sdk.Msg = &MsgSetModelPrice{}
	_ sdk.Msg = &MsgSetModelVerifyingKey{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgServer is the transaction-handling surface of the module, implemented by
// the keeper's msgServer.
type MsgServer interface {
	CreateRequest(context.Context, *MsgCreateRequest) (*MsgCreateRequestResponse, error)
	SubmitResponse(context.Context, *MsgSubmitResponse) (*MsgSubmitResponseResponse, error)
	ClaimRewards(context.Context, *MsgClaimRewards) (*MsgClaimRewardsResponse, error)
	WithdrawStake(context.Context, *MsgWithdrawStake) (*MsgWithdrawStakeResponse, error)
	AuthorizeNode(context.Context, *MsgAuthorizeNode) (*MsgAuthorizeNodeResponse, error)
	SlashNode(context.Context, *MsgSlashNode) (*MsgSlashNodeResponse, error)
	SetModelPrice(context.Context, *MsgSetModelPrice) (*MsgSetModelPriceResponse, error)
	SetModelVerifyingKey(context.Context, *MsgSetModelVerifyingKey) (*MsgSetModelVerifyingKeyResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// ValidateModelHash checks the hex SHA-256 model identifier.
func ValidateModelHash(h string) error {
	raw, err := hex.DecodeString(h)
	if err != nil {
		return fmt.Errorf("model hash is not hex: %w", err)
	}
	if len(raw) != ModelHashLength {
		return fmt.Errorf("model hash must be %d bytes, got %d", ModelHashLength, len(raw))
	}
	return nil
}

// ValidateResultHash checks the hex SHA-256 result hash.
func ValidateResultHash(h string) error {
	raw, err := hex.DecodeString(h)
	if err != nil {
		return fmt.Errorf("result hash is not hex: %w", err)
	}
	if len(raw) != ResultHashLength {
		return fmt.Errorf("result hash must be %d bytes, got %d", ResultHashLength, len(raw))
	}
	return nil
}

// GetSigners implementations - these assume addresses are valid (validated in ValidateBasic)

func (msg *MsgCreateRequest) GetSigners() []sdk.AccAddress {
	requester, _ := sdk.AccAddressFromBech32(msg.Requester)
	return []sdk.AccAddress{requester}
}

func (msg *MsgSubmitResponse) GetSigners() []sdk.AccAddress {
	node, _ := sdk.AccAddressFromBech32(msg.Node)
	return []sdk.AccAddress{node}
}

func (msg *MsgClaimRewards) GetSigners() []sdk.AccAddress {
	node, _ := sdk.AccAddressFromBech32(msg.Node)
	return []sdk.AccAddress{node}
}

func (msg *MsgWithdrawStake) GetSigners() []sdk.AccAddress {
	node, _ := sdk.AccAddressFromBech32(msg.Node)
	return []sdk.AccAddress{node}
}

func (msg *MsgAuthorizeNode) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

func (msg *MsgSlashNode) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

func (msg *MsgSetModelPrice) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

func (msg *MsgSetModelVerifyingKey) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

func (msg *MsgUpdateParams) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// ValidateBasic performs stateless validation of MsgCreateRequest
func (msg *MsgCreateRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Requester); err != nil {
		return fmt.Errorf("invalid requester address: %w", err)
	}
	if err := ValidateModelHash(msg.ModelHash); err != nil {
		return err
	}
	if len(msg.InputData) == 0 {
		return fmt.Errorf("input data must not be empty")
	}
	if msg.MinConsensus < MinConsensusFloor {
		return fmt.Errorf("min consensus must be at least %d, got %d", MinConsensusFloor, msg.MinConsensus)
	}
	if msg.Reward.IsNil() || !msg.Reward.IsPositive() {
		return fmt.Errorf("reward must be positive")
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgSubmitResponse
func (msg *MsgSubmitResponse) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Node); err != nil {
		return fmt.Errorf("invalid node address: %w", err)
	}
	if _, err := hex.DecodeString(msg.RequestId); err != nil || len(msg.RequestId) != 64 {
		return fmt.Errorf("request id must be a 64-char hex string")
	}
	if err := ValidateResultHash(msg.ResultHash); err != nil {
		return err
	}
	if len(msg.Proof) == 0 {
		return fmt.Errorf("proof must not be empty")
	}
	if len(msg.PublicKey) != ed25519.PubKeySize {
		return fmt.Errorf("public key must be %d bytes, got %d", ed25519.PubKeySize, len(msg.PublicKey))
	}
	if len(msg.Signature) != ed25519.SignatureSize {
		return fmt.Errorf("signature must be %d bytes, got %d", ed25519.SignatureSize, len(msg.Signature))
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgClaimRewards
func (msg *MsgClaimRewards) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Node); err != nil {
		return fmt.Errorf("invalid node address: %w", err)
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgWithdrawStake
func (msg *MsgWithdrawStake) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Node); err != nil {
		return fmt.Errorf("invalid node address: %w", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return fmt.Errorf("withdraw amount must be positive")
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgAuthorizeNode
func (msg *MsgAuthorizeNode) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return fmt.Errorf("invalid authority address: %w", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Node); err != nil {
		return fmt.Errorf("invalid node address: %w", err)
	}
	if msg.Stake.IsNil() || !msg.Stake.IsPositive() {
		return fmt.Errorf("stake must be positive")
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgSlashNode
func (msg *MsgSlashNode) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return fmt.Errorf("invalid authority address: %w", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Node); err != nil {
		return fmt.Errorf("invalid node address: %w", err)
	}
	if msg.Penalty.IsNil() || !msg.Penalty.IsPositive() {
		return fmt.Errorf("penalty must be positive")
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgSetModelPrice
func (msg *MsgSetModelPrice) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return fmt.Errorf("invalid authority address: %w", err)
	}
	if err := ValidateModelHash(msg.ModelHash); err != nil {
		return err
	}
	if msg.Price.IsNil() || msg.Price.IsNegative() {
		return fmt.Errorf("price must be non-negative")
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgSetModelVerifyingKey
func (msg *MsgSetModelVerifyingKey) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return fmt.Errorf("invalid authority address: %w", err)
	}
	if err := ValidateModelHash(msg.ModelHash); err != nil {
		return err
	}
	if len(msg.VerifyingKey) == 0 {
		return fmt.Errorf("verifying key must not be empty")
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgUpdateParams
func (msg *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return fmt.Errorf("invalid authority address: %w", err)
	}
	return msg.Params.Validate()
}
