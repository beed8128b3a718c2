package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var _ sdk.Msg = &MsgUnpauseStream{}

func NewMsgUnpauseStream(creator string, streamId uint64) *MsgUnpauseStream {
	return &MsgUnpauseStream{
		Creator:  creator,
		StreamId: streamId,
	}
}

func (msg *MsgUnpauseStream) ValidateBasic() error {
	_, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid creator address (%s)", err)
	}
	return nil
}
