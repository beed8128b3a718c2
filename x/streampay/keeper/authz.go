package keeper

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/streampaynet/streampay/x/streampay/types"
)

// StreamOp identifies a lifecycle operation for authorization purposes.
type StreamOp int

const (
	OpTopUp StreamOp = iota
	OpPause
	OpUnpause
	OpWithdraw
	OpCancel
	OpTransferReceiver
)

func (op StreamOp) String() string {
	switch op {
	case OpTopUp:
		return "top_up"
	case OpPause:
		return "pause"
	case OpUnpause:
		return "unpause"
	case OpWithdraw:
		return "withdraw"
	case OpCancel:
		return "cancel"
	case OpTransferReceiver:
		return "transfer_receiver"
	}
	return "unknown"
}

// Authorize decides whether the caller may perform the operation on the
// stream. The sender controls funding-side operations and receiver
// reassignment, the receiver controls withdrawals, either party may cancel,
// and the pauser and treasury manager roles extend pause and top-up to
// operators.
func (k Keeper) Authorize(ctx sdk.Context, op StreamOp, caller string, stream *types.Stream) error {
	switch op {
	case OpTopUp:
		if caller == stream.Sender || k.HasRole(ctx, caller, types.Role_ROLE_TREASURY_MANAGER) {
			return nil
		}
	case OpPause, OpUnpause:
		if caller == stream.Sender || k.HasRole(ctx, caller, types.Role_ROLE_PAUSER) {
			return nil
		}
	case OpWithdraw:
		if caller == stream.Receiver {
			return nil
		}
	case OpCancel:
		if caller == stream.Sender || caller == stream.Receiver {
			return nil
		}
	case OpTransferReceiver:
		if caller == stream.Sender {
			return nil
		}
	}
	return errorsmod.Wrapf(types.ErrUnauthorized, "%s may not %s stream %d", caller, op, stream.Id)
}
