package types

// DONTCOVER

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/streampay module sentinel errors
var (
	ErrInvalidSigner            = sdkerrors.Register(ModuleName, 1100, "expected gov account as only signer for proposal message")
	ErrInvalidTimeRange         = sdkerrors.Register(ModuleName, 1101, "end time must be after start time")
	ErrInvalidAmount            = sdkerrors.Register(ModuleName, 1102, "amount must be greater than zero")
	ErrInvalidApprovalThreshold = sdkerrors.Register(ModuleName, 1103, "required approvals must be at least one")
	ErrProposalExpired          = sdkerrors.Register(ModuleName, 1104, "proposal deadline has passed")
	ErrProposalNotFound         = sdkerrors.Register(ModuleName, 1105, "proposal with id not found")
	ErrProposalAlreadyExecuted  = sdkerrors.Register(ModuleName, 1106, "proposal already executed")
	ErrAlreadyApproved          = sdkerrors.Register(ModuleName, 1107, "approver already approved this proposal")
	ErrStreamNotFound           = sdkerrors.Register(ModuleName, 1108, "stream with id not found")
	ErrUnauthorized             = sdkerrors.Register(ModuleName, 1109, "caller not authorized for this operation")
	ErrAlreadyCancelled         = sdkerrors.Register(ModuleName, 1110, "stream already cancelled")
	ErrStreamEnded              = sdkerrors.Register(ModuleName, 1111, "stream already past its end time")
	ErrStreamPaused             = sdkerrors.Register(ModuleName, 1112, "stream is paused")
	ErrInsufficientBalance      = sdkerrors.Register(ModuleName, 1113, "no unlocked balance available")
	ErrStreamIsSoulbound        = sdkerrors.Register(ModuleName, 1114, "stream is soulbound")
	ErrZeroFlowRate             = sdkerrors.Register(ModuleName, 1115, "stream flow rate rounds to zero, cannot extend")
	ErrAlreadyInitialized       = sdkerrors.Register(ModuleName, 1116, "module already initialized")
	ErrAdminNotSet              = sdkerrors.Register(ModuleName, 1117, "admin not set, module not initialized")
	ErrVaultNotAllowed          = sdkerrors.Register(ModuleName, 1118, "vault is not on the allow-list")
	ErrInvalidMilestones        = sdkerrors.Register(ModuleName, 1119, "milestones must be ordered and positive")
)
