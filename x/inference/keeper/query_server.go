package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/infera-chain/infera/x/inference/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the inference QueryServer
// interface for the provided Keeper.
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

func (q queryServer) Params(ctx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("empty request")
	}

	params, err := q.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryParamsResponse{Params: params}, nil
}

func (q queryServer) Request(ctx context.Context, req *types.QueryRequestRequest) (*types.QueryRequestResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("empty request")
	}

	request, err := q.GetRequest(ctx, req.RequestId)
	if err != nil {
		return nil, err
	}
	return &types.QueryRequestResponse{Request: *request}, nil
}

func (q queryServer) Requests(ctx context.Context, req *types.QueryRequestsRequest) (*types.QueryRequestsResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("empty request")
	}

	var requests []types.Request
	err := q.IterateRequests(ctx, func(request types.Request) (bool, error) {
		if req.Status == "" || request.Status == req.Status {
			requests = append(requests, request)
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return &types.QueryRequestsResponse{Requests: requests}, nil
}

func (q queryServer) Node(ctx context.Context, req *types.QueryNodeRequest) (*types.QueryNodeResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("empty request")
	}

	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid address: %w", err)
	}

	node, found := q.GetNodeAccount(ctx, addr)
	if !found {
		return nil, types.ErrNodeNotFound.Wrapf("node %s", req.Address)
	}
	return &types.QueryNodeResponse{Node: node}, nil
}

func (q queryServer) ModelPrice(ctx context.Context, req *types.QueryModelPriceRequest) (*types.QueryModelPriceResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("empty request")
	}

	price, found := q.GetModelPrice(ctx, req.ModelHash)
	if !found {
		return nil, types.ErrModelNotFound.Wrapf("model %s", req.ModelHash)
	}
	return &types.QueryModelPriceResponse{Price: price}, nil
}

func (q queryServer) RewardCredit(ctx context.Context, req *types.QueryRewardCreditRequest) (*types.QueryRewardCreditResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("empty request")
	}

	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid address: %w", err)
	}

	return &types.QueryRewardCreditResponse{Amount: q.GetRewardCredit(ctx, addr)}, nil
}
