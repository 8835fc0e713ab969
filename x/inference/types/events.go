package types

// Event types for the inference module.
// All event types use lowercase with underscore separator (module_action format)
const (
	EventTypeRequestCreated    = "inference_request_created"
	EventTypeResponseSubmitted = "inference_response_submitted"
	EventTypeRequestFulfilled  = "inference_request_fulfilled"
	EventTypeRequestExpired    = "inference_request_expired"

	EventTypeNodeAuthorized = "inference_node_authorized"
	EventTypeNodeSlashed    = "inference_node_slashed"
	EventTypeStakeWithdrawn = "inference_stake_withdrawn"

	EventTypeRewardsCredited = "inference_rewards_credited"
	EventTypeRewardsClaimed  = "inference_rewards_claimed"

	EventTypeModelPriceSet = "inference_model_price_set"
	EventTypeModelVKSet    = "inference_model_verifying_key_set"
)

// Event attribute keys for the inference module
const (
	AttributeKeyRequestID    = "request_id"
	AttributeKeyRequester    = "requester"
	AttributeKeyModelHash    = "model_hash"
	AttributeKeyMinConsensus = "min_consensus"
	AttributeKeyReward       = "reward"

	AttributeKeyNode          = "node"
	AttributeKeyResultHash    = "result_hash"
	AttributeKeyResponseCount = "response_count"
	AttributeKeyFinalResult   = "final_result"

	AttributeKeyStake      = "stake"
	AttributeKeyReputation = "reputation"
	AttributeKeyPenalty    = "penalty"
	AttributeKeyAmount     = "amount"
	AttributeKeyPrice      = "price"
	AttributeKeyStatus     = "status"
)
