package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
)

// RegisterLegacyAminoCodec registers the x/inference concrete message types on
// the provided LegacyAmino codec. These types are used for Amino JSON
// serialization.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreateRequest{}, "infera/inference/MsgCreateRequest", nil)
	cdc.RegisterConcrete(&MsgSubmitResponse{}, "infera/inference/MsgSubmitResponse", nil)
	cdc.RegisterConcrete(&MsgClaimRewards{}, "infera/inference/MsgClaimRewards", nil)
	cdc.RegisterConcrete(&MsgWithdrawStake{}, "infera/inference/MsgWithdrawStake", nil)
	cdc.RegisterConcrete(&MsgAuthorizeNode{}, "infera/inference/MsgAuthorizeNode", nil)
	cdc.RegisterConcrete(&MsgSlashNode{}, "infera/inference/MsgSlashNode", nil)
	cdc.RegisterConcrete(&MsgSetModelPrice{}, "infera/inference/MsgSetModelPrice", nil)
	cdc.RegisterConcrete(&MsgSetModelVerifyingKey{}, "infera/inference/MsgSetModelVerifyingKey", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "infera/inference/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the x/inference message types with the
// interface registry.
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCreateRequest{},
		&MsgSubmitResponse{},
		&MsgClaimRewards{},
		&MsgWithdrawStake{},
		&MsgAuthorizeNode{},
		&MsgSlashNode{},
		&MsgSetModelPrice{},
		&MsgSetModelVerifyingKey{},
		&MsgUpdateParams{},
	)

	registry.RegisterImplementations((*txtypes.MsgResponse)(nil),
		&MsgCreateRequestResponse{},
		&MsgSubmitResponseResponse{},
		&MsgClaimRewardsResponse{},
		&MsgWithdrawStakeResponse{},
		&MsgAuthorizeNodeResponse{},
		&MsgSlashNodeResponse{},
		&MsgSetModelPriceResponse{},
		&MsgSetModelVerifyingKeyResponse{},
		&MsgUpdateParamsResponse{},
	)
}

var amino = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(amino)
}
