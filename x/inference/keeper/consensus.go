package keeper

import (
	"context"
	"fmt"
	"time"

	"github.com/cosmos/cosmos-sdk/crypto/keys/ed25519"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/infera-chain/infera/x/inference/types"
)

// SubmitResponse runs the response gate sequence for an open request and,
// when the triggering response completes a quorum, finalizes the request in
// the same transaction. Returns whether the request was fulfilled.
//
// Gate order matters and is load-bearing for callers distinguishing errors:
// eligibility, terminal state, response window, proof, signature, duplicate.
func (k Keeper) SubmitResponse(
	ctx context.Context,
	node sdk.AccAddress,
	requestID string,
	resultHash string,
	proof []byte,
	publicKey []byte,
	signature []byte,
) (bool, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime()

	if err := k.CheckEligibility(ctx, node); err != nil {
		return false, err
	}

	request, err := k.GetRequest(ctx, requestID)
	if err != nil {
		return false, err
	}

	if request.Fulfilled() {
		return false, types.ErrAlreadyFulfilled.Wrapf("request %s", requestID)
	}
	if request.Terminal() {
		return false, types.ErrRequestExpired.Wrapf("request %s is %s", requestID, request.Status)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return false, err
	}

	window := time.Duration(params.ResponseWindowSeconds) * time.Second
	if !now.Before(request.WindowDeadline(window)) {
		return false, types.ErrWindowClosed.Wrapf("request %s: window closed at %s", requestID, request.WindowDeadline(window))
	}

	if err := k.verifier.VerifyProof(sdkCtx, request.ModelHash, request.InputData, resultHash, proof); err != nil {
		k.metrics.ProofsRejected.Inc()
		return false, types.ErrInvalidProof.Wrap(err.Error())
	}

	if err := verifyResponseSignature(node, requestID, resultHash, publicKey, signature); err != nil {
		return false, err
	}

	if err := request.AddResponse(types.ResponseRecord{
		Node:        node.String(),
		ResultHash:  resultHash,
		Signature:   signature,
		SubmittedAt: now,
	}); err != nil {
		return false, err
	}
	request.LastActivity = now

	account, _ := k.GetNodeAccount(ctx, node)
	account.Reputation += params.ReputationReward
	account.LastActivity = now
	if err := k.SetNodeAccount(ctx, account); err != nil {
		return false, err
	}

	fulfilled := false
	if k.quorumReached(*request, resultHash, params) {
		if err := k.finalizeRequest(ctx, request, resultHash); err != nil {
			return false, err
		}
		fulfilled = true
	}

	if err := k.SetRequest(ctx, *request); err != nil {
		return false, err
	}

	k.metrics.ResponsesAccepted.Inc()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeResponseSubmitted,
			sdk.NewAttribute(types.AttributeKeyRequestID, requestID),
			sdk.NewAttribute(types.AttributeKeyNode, node.String()),
			sdk.NewAttribute(types.AttributeKeyResultHash, resultHash),
			sdk.NewAttribute(types.AttributeKeyResponseCount, fmt.Sprintf("%d", len(request.Responses))),
		),
	)

	return fulfilled, nil
}

// quorumReached applies the request's consensus threshold. The default counts
// all accepted responses; with RequireMatchingResults only responses agreeing
// on the triggering hash count.
func (k Keeper) quorumReached(request types.Request, resultHash string, params types.Params) bool {
	if params.RequireMatchingResults {
		return request.CountMatching(resultHash) >= int(request.MinConsensus)
	}
	return len(request.Responses) >= int(request.MinConsensus)
}

// finalizeRequest moves an open request to fulfilled and credits payouts. It
// mutates the request in place; the caller persists it.
func (k Keeper) finalizeRequest(ctx context.Context, request *types.Request, finalResult string) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	// Re-checked here so no future call path can finalize twice.
	if request.Terminal() {
		return types.ErrAlreadyFulfilled.Wrapf("request %s is %s", request.ID, request.Status)
	}

	request.Status = types.RequestStatusFulfilled
	request.FinalResult = finalResult

	if err := k.creditResponders(ctx, *request); err != nil {
		return err
	}

	k.metrics.RequestsFulfilled.Inc()

	k.Logger(sdkCtx).Info("request fulfilled",
		"request_id", request.ID,
		"final_result", finalResult,
		"responses", len(request.Responses),
	)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRequestFulfilled,
			sdk.NewAttribute(types.AttributeKeyRequestID, request.ID),
			sdk.NewAttribute(types.AttributeKeyFinalResult, finalResult),
			sdk.NewAttribute(types.AttributeKeyResponseCount, fmt.Sprintf("%d", len(request.Responses))),
		),
	)

	return nil
}

// verifyResponseSignature checks that the carried public key belongs to the
// submitting node and signs the canonical (requestID, resultHash) message.
func verifyResponseSignature(node sdk.AccAddress, requestID, resultHash string, publicKey, signature []byte) error {
	if len(publicKey) != ed25519.PubKeySize {
		return types.ErrInvalidSignature.Wrapf("public key must be %d bytes", ed25519.PubKeySize)
	}

	pubKey := &ed25519.PubKey{Key: publicKey}
	if !node.Equals(sdk.AccAddress(pubKey.Address())) {
		return types.ErrInvalidSignature.Wrapf("public key does not belong to node %s", node)
	}

	msg := types.ResponseSigningHash(requestID, resultHash)
	if !pubKey.VerifySignature(msg, signature) {
		return types.ErrInvalidSignature.Wrap("signature does not cover request and result")
	}

	return nil
}
