package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var _ sdk.Msg = &MsgCreateStreamWithMilestones{}

func NewMsgCreateStreamWithMilestones(creator string, receiver string, token string, milestones []Milestone) *MsgCreateStreamWithMilestones {
	return &MsgCreateStreamWithMilestones{
		Creator:    creator,
		Receiver:   receiver,
		Token:      token,
		Milestones: milestones,
	}
}

func (msg *MsgCreateStreamWithMilestones) ValidateBasic() error {
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
	if len(msg.Milestones) == 0 {
		return ErrInvalidMilestones
	}
	var lastTimestamp int64
	for _, milestone := range msg.Milestones {
		if milestone.Amount.IsNil() || !milestone.Amount.IsPositive() {
			return errorsmod.Wrap(ErrInvalidMilestones, "milestone amount must be positive")
		}
		if milestone.Timestamp <= lastTimestamp {
			return errorsmod.Wrap(ErrInvalidMilestones, "milestone timestamps must be strictly increasing")
		}
		lastTimestamp = milestone.Timestamp
	}
	return nil
}
