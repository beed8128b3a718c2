package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var _ sdk.Msg = &MsgApproveProposal{}

func NewMsgApproveProposal(creator string, proposalId uint64) *MsgApproveProposal {
	return &MsgApproveProposal{
		Creator:    creator,
		ProposalId: proposalId,
	}
}

func (msg *MsgApproveProposal) ValidateBasic() error {
	_, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid creator address (%s)", err)
	}
	return nil
}
