package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var _ sdk.Msg = &MsgCancelStream{}

func NewMsgCancelStream(creator string, streamId uint64) *MsgCancelStream {
	return &MsgCancelStream{
		Creator:  creator,
		StreamId: streamId,
	}
}

func (msg *MsgCancelStream) ValidateBasic() error {
	_, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid creator address (%s)", err)
	}
	return nil
}
