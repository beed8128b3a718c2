package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var _ sdk.Msg = &MsgTransferReceiver{}

func NewMsgTransferReceiver(creator string, streamId uint64, newReceiver string) *MsgTransferReceiver {
	return &MsgTransferReceiver{
		Creator:     creator,
		StreamId:    streamId,
		NewReceiver: newReceiver,
	}
}

func (msg *MsgTransferReceiver) ValidateBasic() error {
	_, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid creator address (%s)", err)
	}
	_, err = sdk.AccAddressFromBech32(msg.NewReceiver)
	if err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid new receiver address (%s)", err)
	}
	return nil
}
