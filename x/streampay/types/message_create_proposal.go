package types

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var _ sdk.Msg = &MsgCreateProposal{}

func NewMsgCreateProposal(creator string, receiver string, token string, totalAmount math.Int, startTime int64, endTime int64, approvers []string, requiredApprovals uint64, deadline int64) *MsgCreateProposal {
	return &MsgCreateProposal{
		Creator:           creator,
		Receiver:          receiver,
		Token:             token,
		TotalAmount:       totalAmount,
		StartTime:         startTime,
		EndTime:           endTime,
		Approvers:         approvers,
		RequiredApprovals: requiredApprovals,
		Deadline:          deadline,
	}
}

func (msg *MsgCreateProposal) ValidateBasic() error {
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
	if msg.TotalAmount.IsNil() || !msg.TotalAmount.IsPositive() {
		return ErrInvalidAmount
	}
	if msg.EndTime <= msg.StartTime {
		return ErrInvalidTimeRange
	}
	if msg.RequiredApprovals == 0 || msg.RequiredApprovals > uint64(len(msg.Approvers)) {
		return ErrInvalidApprovalThreshold
	}
	for _, approver := range msg.Approvers {
		if _, err := sdk.AccAddressFromBech32(approver); err != nil {
			return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid approver address (%s)", err)
		}
	}
	return nil
}
