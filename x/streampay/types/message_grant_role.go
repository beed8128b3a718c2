package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var _ sdk.Msg = &MsgGrantRole{}

func NewMsgGrantRole(creator string, principal string, role Role) *MsgGrantRole {
	return &MsgGrantRole{
		Creator:   creator,
		Principal: principal,
		Role:      role,
	}
}

func (msg *MsgGrantRole) ValidateBasic() error {
	_, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid creator address (%s)", err)
	}
	_, err = sdk.AccAddressFromBech32(msg.Principal)
	if err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid principal address (%s)", err)
	}
	if msg.Role == Role_ROLE_UNSPECIFIED {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "role must be specified")
	}
	return nil
}
