package types

// Event types
const (
	EventTypeProposalCreated     = "proposal_created"
	EventTypeProposalApproved    = "proposal_approved"
	EventTypeProposalExecuted    = "proposal_executed"
	EventTypeStreamCreated       = "stream_created"
	EventTypeStreamToppedUp      = "stream_topped_up"
	EventTypeSoulboundLocked     = "soulbound_locked"
	EventTypeStreamPaused        = "stream_paused"
	EventTypeStreamUnpaused      = "stream_unpaused"
	EventTypeStreamWithdrawn     = "stream_withdrawn"
	EventTypeStreamCancelled     = "stream_cancelled"
	EventTypeReceiverTransferred = "receiver_transferred"
	EventTypeRoleGranted         = "role_granted"
	EventTypeRoleRevoked         = "role_revoked"

	AttributeKeyStreamId    = "stream_id"
	AttributeKeyProposalId  = "proposal_id"
	AttributeKeySender      = "sender"
	AttributeKeyReceiver    = "receiver"
	AttributeKeyApprover    = "approver"
	AttributeKeyAmount      = "amount"
	AttributeKeyNewEndTime  = "new_end_time"
	AttributeKeyToReceiver  = "to_receiver"
	AttributeKeyToSender    = "to_sender"
	AttributeKeyPrincipal   = "principal"
	AttributeKeyRole        = "role"
	AttributeKeyTimestamp   = "timestamp"
	AttributeKeyApprovals   = "approvals"
	AttributeKeyNewReceiver = "new_receiver"
)
