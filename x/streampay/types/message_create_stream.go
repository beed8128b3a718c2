package types

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var _ sdk.Msg = &MsgCreateStream{}

func NewMsgCreateStream(creator string, receiver string, token string, amount math.Int, startTime int64, endTime int64) *MsgCreateStream {
	return &MsgCreateStream{
		Creator:   creator,
		Receiver:  receiver,
		Token:     token,
		Amount:    amount,
		StartTime: startTime,
		EndTime:   endTime,
	}
}

func (msg *MsgCreateStream) ValidateBasic() error {
	_, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid creator address (%s)", err)
	}
	_, err = sdk.AccAddressFromBech32(msg.Receiver)
	if err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid receiver address (%s)", err)
	}
	if err := sdk.ValidateDenom(msg.Token); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, "invalid token denom (%s)", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if msg.EndTime <= msg.StartTime {
		return ErrInvalidTimeRange
	}
	if msg.VaultAddress != "" {
		if _, err := sdk.AccAddressFromBech32(msg.VaultAddress); err != nil {
			return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid vault address (%s)", err)
		}
	}
	return nil
}
