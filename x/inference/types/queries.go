package types

import (
	"context"

	"cosmossdk.io/math"
)

// Query request/response types. These back the CLI and the keeper's query
// server; they are plain structs, not registered protobuf services.

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryRequestRequest struct {
	RequestId string `json:"request_id"`
}

type QueryRequestResponse struct {
	Request Request `json:"request"`
}

type QueryRequestsRequest struct {
	// Status filters by lifecycle state when non-empty.
	Status string `json:"status,omitempty"`
}

type QueryRequestsResponse struct {
	Requests []Request `json:"requests"`
}

type QueryNodeRequest struct {
	Address string `json:"address"`
}

type QueryNodeResponse struct {
	Node NodeAccount `json:"node"`
}

type QueryModelPriceRequest struct {
	ModelHash string `json:"model_hash"`
}

type QueryModelPriceResponse struct {
	Price math.Int `json:"price"`
}

type QueryRewardCreditRequest struct {
	Address string `json:"address"`
}

type QueryRewardCreditResponse struct {
	Amount math.Int `json:"amount"`
}

// QueryServer is the read-only surface of the module.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Request(context.Context, *QueryRequestRequest) (*QueryRequestResponse, error)
	Requests(context.Context, *QueryRequestsRequest) (*QueryRequestsResponse, error)
	Node(context.Context, *QueryNodeRequest) (*QueryNodeResponse, error)
	ModelPrice(context.Context, *QueryModelPriceRequest) (*QueryModelPriceResponse, error)
	RewardCredit(context.Context, *QueryRewardCreditRequest) (*QueryRewardCreditResponse, error)
}
