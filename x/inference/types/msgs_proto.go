package types

import (
	"fmt"

	"github.com/cosmos/gogoproto/proto"
)

// Hand-rolled proto.Message implementations for the module's messages. The
// module ships no generated protobuf code; the interface registry only needs
// Reset/String/ProtoMessage plus a stable message name per type.

func init() {
	proto.RegisterType((*MsgCreateRequest)(nil), "infera.inference.v1.MsgCreateRequest")
	proto.RegisterType((*MsgCreateRequestResponse)(nil), "infera.inference.v1.MsgCreateRequestResponse")
	proto.RegisterType((*MsgSubmitResponse)(nil), "infera.inference.v1.MsgSubmitResponse")
	proto.RegisterType((*MsgSubmitResponseResponse)(nil), "infera.inference.v1.MsgSubmitResponseResponse")
	proto.RegisterType((*MsgClaimRewards)(nil), "infera.inference.v1.MsgClaimRewards")
	proto.RegisterType((*MsgClaimRewardsResponse)(nil), "infera.inference.v1.MsgClaimRewardsResponse")
	proto.RegisterType((*MsgWithdrawStake)(nil), "infera.inference.v1.MsgWithdrawStake")
	proto.RegisterType((*MsgWithdrawStakeResponse)(nil), "infera.inference.v1.MsgWithdrawStakeResponse")
	proto.RegisterType((*MsgAuthorizeNode)(nil), "infera.inference.v1.MsgAuthorizeNode")
	proto.RegisterType((*MsgAuthorizeNodeResponse)(nil), "infera.inference.v1.MsgAuthorizeNodeResponse")
	proto.RegisterType((*MsgSlashNode)(nil), "infera.inference.v1.MsgSlashNode")
	proto.RegisterType((*MsgSlashNodeResponse)(nil), "infera.inference.v1.MsgSlashNodeResponse")
	proto.RegisterType((*MsgSetModelPrice)(nil), "infera.inference.v1.MsgSetModelPrice")
	proto.RegisterType((*MsgSetModelPriceResponse)(nil), "infera.inference.v1.MsgSetModelPriceResponse")
	proto.RegisterType((*MsgSetModelVerifyingKey)(nil), "infera.inference.v1.MsgSetModelVerifyingKey")
	proto.RegisterType((*MsgSetModelVerifyingKeyResponse)(nil), "infera.inference.v1.MsgSetModelVerifyingKeyResponse")
	proto.RegisterType((*MsgUpdateParams)(nil), "infera.inference.v1.MsgUpdateParams")
	proto.RegisterType((*MsgUpdateParamsResponse)(nil), "infera.inference.v1.MsgUpdateParamsResponse")
}

func (msg *MsgCreateRequest) Reset()              { *msg = MsgCreateRequest{} }
func (msg *MsgCreateRequest) String() string      { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgCreateRequest) ProtoMessage()       {}
func (msg *MsgCreateRequest) XXX_MessageName() string {
	return "infera.inference.v1.MsgCreateRequest"
}

func (msg *MsgCreateRequestResponse) Reset()         { *msg = MsgCreateRequestResponse{} }
func (msg *MsgCreateRequestResponse) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgCreateRequestResponse) ProtoMessage()  {}
func (msg *MsgCreateRequestResponse) XXX_MessageName() string {
	return "infera.inference.v1.MsgCreateRequestResponse"
}

func (msg *MsgSubmitResponse) Reset()              { *msg = MsgSubmitResponse{} }
func (msg *MsgSubmitResponse) String() string      { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgSubmitResponse) ProtoMessage()       {}
func (msg *MsgSubmitResponse) XXX_MessageName() string {
	return "infera.inference.v1.MsgSubmitResponse"
}

func (msg *MsgSubmitResponseResponse) Reset()         { *msg = MsgSubmitResponseResponse{} }
func (msg *MsgSubmitResponseResponse) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgSubmitResponseResponse) ProtoMessage()  {}
func (msg *MsgSubmitResponseResponse) XXX_MessageName() string {
	return "infera.inference.v1.MsgSubmitResponseResponse"
}

func (msg *MsgClaimRewards) Reset()              { *msg = MsgClaimRewards{} }
func (msg *MsgClaimRewards) String() string      { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgClaimRewards) ProtoMessage()       {}
func (msg *MsgClaimRewards) XXX_MessageName() string {
	return "infera.inference.v1.MsgClaimRewards"
}

func (msg *MsgClaimRewardsResponse) Reset()         { *msg = MsgClaimRewardsResponse{} }
func (msg *MsgClaimRewardsResponse) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgClaimRewardsResponse) ProtoMessage()  {}
func (msg *MsgClaimRewardsResponse) XXX_MessageName() string {
	return "infera.inference.v1.MsgClaimRewardsResponse"
}

func (msg *MsgWithdrawStake) Reset()              { *msg = MsgWithdrawStake{} }
func (msg *MsgWithdrawStake) String() string      { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgWithdrawStake) ProtoMessage()       {}
func (msg *MsgWithdrawStake) XXX_MessageName() string {
	return "infera.inference.v1.MsgWithdrawStake"
}

func (msg *MsgWithdrawStakeResponse) Reset()         { *msg = MsgWithdrawStakeResponse{} }
func (msg *MsgWithdrawStakeResponse) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgWithdrawStakeResponse) ProtoMessage()  {}
func (msg *MsgWithdrawStakeResponse) XXX_MessageName() string {
	return "infera.inference.v1.MsgWithdrawStakeResponse"
}

func (msg *MsgAuthorizeNode) Reset()              { *msg = MsgAuthorizeNode{} }
func (msg *MsgAuthorizeNode) String() string      { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgAuthorizeNode) ProtoMessage()       {}
func (msg *MsgAuthorizeNode) XXX_MessageName() string {
	return "infera.inference.v1.MsgAuthorizeNode"
}

func (msg *MsgAuthorizeNodeResponse) Reset()         { *msg = MsgAuthorizeNodeResponse{} }
func (msg *MsgAuthorizeNodeResponse) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgAuthorizeNodeResponse) ProtoMessage()  {}
func (msg *MsgAuthorizeNodeResponse) XXX_MessageName() string {
	return "infera.inference.v1.MsgAuthorizeNodeResponse"
}

func (msg *MsgSlashNode) Reset()              { *msg = MsgSlashNode{} }
func (msg *MsgSlashNode) String() string      { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgSlashNode) ProtoMessage()       {}
func (msg *MsgSlashNode) XXX_MessageName() string {
	return "infera.inference.v1.MsgSlashNode"
}

func (msg *MsgSlashNodeResponse) Reset()         { *msg = MsgSlashNodeResponse{} }
func (msg *MsgSlashNodeResponse) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgSlashNodeResponse) ProtoMessage()  {}
func (msg *MsgSlashNodeResponse) XXX_MessageName() string {
	return "infera.inference.v1.MsgSlashNodeResponse"
}

func (msg *MsgSetModelPrice) Reset()              { *msg = MsgSetModelPrice{} }
func (msg *MsgSetModelPrice) String() string      { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgSetModelPrice) ProtoMessage()       {}
func (msg *MsgSetModelPrice) XXX_MessageName() string {
	return "infera.inference.v1.MsgSetModelPrice"
}

func (msg *MsgSetModelPriceResponse) Reset()         { *msg = MsgSetModelPriceResponse{} }
func (msg *MsgSetModelPriceResponse) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgSetModelPriceResponse) ProtoMessage()  {}
func (msg *MsgSetModelPriceResponse) XXX_MessageName() string {
	return "infera.inference.v1.MsgSetModelPriceResponse"
}

func (msg *MsgSetModelVerifyingKey) Reset()              { *msg = MsgSetModelVerifyingKey{} }
func (msg *MsgSetModelVerifyingKey) String() string      { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgSetModelVerifyingKey) ProtoMessage()       {}
func (msg *MsgSetModelVerifyingKey) XXX_MessageName() string {
	return "infera.inference.v1.MsgSetModelVerifyingKey"
}

func (msg *MsgSetModelVerifyingKeyResponse) Reset()         { *msg = MsgSetModelVerifyingKeyResponse{} }
func (msg *MsgSetModelVerifyingKeyResponse) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgSetModelVerifyingKeyResponse) ProtoMessage()  {}
func (msg *MsgSetModelVerifyingKeyResponse) XXX_MessageName() string {
	return "infera.inference.v1.MsgSetModelVerifyingKeyResponse"
}

func (msg *MsgUpdateParams) Reset()              { *msg = MsgUpdateParams{} }
func (msg *MsgUpdateParams) String() string      { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgUpdateParams) ProtoMessage()       {}
func (msg *MsgUpdateParams) XXX_MessageName() string {
	return "infera.inference.v1.MsgUpdateParams"
}

func (msg *MsgUpdateParamsResponse) Reset()         { *msg = MsgUpdateParamsResponse{} }
func (msg *MsgUpdateParamsResponse) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgUpdateParamsResponse) ProtoMessage()  {}
func (msg *MsgUpdateParamsResponse) XXX_MessageName() string {
	return "infera.inference.v1.MsgUpdateParamsResponse"
}
