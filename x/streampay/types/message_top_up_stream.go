package types

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var _ sdk.Msg = &MsgTopUpStream{}

func NewMsgTopUpStream(creator string, streamId uint64, amount math.Int) *MsgTopUpStream {
	return &MsgTopUpStream{
		Creator:  creator,
		StreamId: streamId,
		Amount:   amount,
	}
}

func (msg *MsgTopUpStream) ValidateBasic() error {
	_, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid creator address (%s)", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}
