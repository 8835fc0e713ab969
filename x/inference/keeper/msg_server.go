package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/infera-chain/infera/x/inference/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the inference MsgServer
// interface for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (m msgServer) CreateRequest(ctx context.Context, msg *types.MsgCreateRequest) (*types.MsgCreateRequestResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrValidationBasic.Wrap(err.Error())
	}

	requester, err := sdk.AccAddressFromBech32(msg.Requester)
	if err != nil {
		return nil, types.ErrValidationBasic.Wrapf("invalid requester: %s", err)
	}

	requestID, err := m.Keeper.CreateRequest(ctx, requester, msg.ModelHash, msg.InputData, msg.MinConsensus, msg.Reward)
	if err != nil {
		return nil, err
	}

	return &types.MsgCreateRequestResponse{RequestId: requestID}, nil
}

func (m msgServer) SubmitResponse(ctx context.Context, msg *types.MsgSubmitResponse) (*types.MsgSubmitResponseResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrValidationBasic.Wrap(err.Error())
	}

	node, err := sdk.AccAddressFromBech32(msg.Node)
	if err != nil {
		return nil, types.ErrValidationBasic.Wrapf("invalid node: %s", err)
	}

	fulfilled, err := m.Keeper.SubmitResponse(ctx, node, msg.RequestId, msg.ResultHash, msg.Proof, msg.PublicKey, msg.Signature)
	if err != nil {
		return nil, err
	}

	return &types.MsgSubmitResponseResponse{Fulfilled: fulfilled}, nil
}

func (m msgServer) ClaimRewards(ctx context.Context, msg *types.MsgClaimRewards) (*types.MsgClaimRewardsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrValidationBasic.Wrap(err.Error())
	}

	node, err := sdk.AccAddressFromBech32(msg.Node)
	if err != nil {
		return nil, types.ErrValidationBasic.Wrapf("invalid node: %s", err)
	}

	amount, err := m.Keeper.ClaimRewards(ctx, node)
	if err != nil {
		return nil, err
	}

	return &types.MsgClaimRewardsResponse{Amount: amount}, nil
}

func (m msgServer) WithdrawStake(ctx context.Context, msg *types.MsgWithdrawStake) (*types.MsgWithdrawStakeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrValidationBasic.Wrap(err.Error())
	}

	node, err := sdk.AccAddressFromBech32(msg.Node)
	if err != nil {
		return nil, types.ErrValidationBasic.Wrapf("invalid node: %s", err)
	}

	if err := m.Keeper.WithdrawStake(ctx, node, msg.Amount); err != nil {
		return nil, err
	}

	return &types.MsgWithdrawStakeResponse{}, nil
}

func (m msgServer) AuthorizeNode(ctx context.Context, msg *types.MsgAuthorizeNode) (*types.MsgAuthorizeNodeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrValidationBasic.Wrap(err.Error())
	}

	if msg.Authority != m.GetAuthority() {
		return nil, types.ErrUnauthorized.Wrapf("expected authority %s, got %s", m.GetAuthority(), msg.Authority)
	}

	node, err := sdk.AccAddressFromBech32(msg.Node)
	if err != nil {
		return nil, types.ErrValidationBasic.Wrapf("invalid node: %s", err)
	}

	if err := m.Keeper.AuthorizeNode(ctx, node, msg.Stake); err != nil {
		return nil, err
	}

	return &types.MsgAuthorizeNodeResponse{}, nil
}

func (m msgServer) SlashNode(ctx context.Context, msg *types.MsgSlashNode) (*types.MsgSlashNodeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrValidationBasic.Wrap(err.Error())
	}

	if msg.Authority != m.GetAuthority() {
		return nil, types.ErrUnauthorized.Wrapf("expected authority %s, got %s", m.GetAuthority(), msg.Authority)
	}

	node, err := sdk.AccAddressFromBech32(msg.Node)
	if err != nil {
		return nil, types.ErrValidationBasic.Wrapf("invalid node: %s", err)
	}

	if err := m.Keeper.SlashNode(ctx, node, msg.Penalty); err != nil {
		return nil, err
	}

	return &types.MsgSlashNodeResponse{}, nil
}

func (m msgServer) SetModelPrice(ctx context.Context, msg *types.MsgSetModelPrice) (*types.MsgSetModelPriceResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrValidationBasic.Wrap(err.Error())
	}

	if msg.Authority != m.GetAuthority() {
		return nil, types.ErrUnauthorized.Wrapf("expected authority %s, got %s", m.GetAuthority(), msg.Authority)
	}

	if err := m.Keeper.SetModelPrice(ctx, msg.ModelHash, msg.Price); err != nil {
		return nil, err
	}

	return &types.MsgSetModelPriceResponse{}, nil
}

func (m msgServer) SetModelVerifyingKey(ctx context.Context, msg *types.MsgSetModelVerifyingKey) (*types.MsgSetModelVerifyingKeyResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrValidationBasic.Wrap(err.Error())
	}

	if msg.Authority != m.GetAuthority() {
		return nil, types.ErrUnauthorized.Wrapf("expected authority %s, got %s", m.GetAuthority(), msg.Authority)
	}

	if err := m.Keeper.SetModelVerifyingKey(ctx, msg.ModelHash, msg.VerifyingKey); err != nil {
		return nil, err
	}

	return &types.MsgSetModelVerifyingKeyResponse{}, nil
}

func (m msgServer) UpdateParams(ctx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrValidationBasic.Wrap(err.Error())
	}

	if msg.Authority != m.GetAuthority() {
		return nil, types.ErrUnauthorized.Wrapf("expected authority %s, got %s", m.GetAuthority(), msg.Authority)
	}

	if err := m.Keeper.SetParams(ctx, msg.Params); err != nil {
		return nil, err
	}

	return &types.MsgUpdateParamsResponse{}, nil
}
