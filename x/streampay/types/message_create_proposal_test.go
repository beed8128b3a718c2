package types

import (
	"testing"

	"cosmossdk.io/math"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/streampaynet/streampay/testutil/sample"
	"github.com/stretchr/testify/require"
)

func TestMsgCreateProposal_ValidateBasic(t *testing.T) {
	approver := sample.AccAddress()
	tests := []struct {
		name string
		msg  MsgCreateProposal
		err  error
	}{
		{
			name: "invalid creator address",
			msg: MsgCreateProposal{
				Creator:           "invalid_address",
				Receiver:          sample.AccAddress(),
				Token:             "ustream",
				TotalAmount:       math.NewInt(1000),
				EndTime:           100,
				Approvers:         []string{approver},
				RequiredApprovals: 1,
			},
			err: sdkerrors.ErrInvalidAddress,
		}, {
			name: "threshold above approver count",
			msg: MsgCreateProposal{
				Creator:           sample.AccAddress(),
				Receiver:          sample.AccAddress(),
				Token:             "ustream",
				TotalAmount:       math.NewInt(1000),
				EndTime:           100,
				Approvers:         []string{approver},
				RequiredApprovals: 2,
			},
			err: ErrInvalidApprovalThreshold,
		}, {
			name: "zero threshold",
			msg: MsgCreateProposal{
				Creator:           sample.AccAddress(),
				Receiver:          sample.AccAddress(),
				Token:             "ustream",
				TotalAmount:       math.NewInt(1000),
				EndTime:           100,
				Approvers:         []string{approver},
				RequiredApprovals: 0,
			},
			err: ErrInvalidApprovalThreshold,
		}, {
			name: "invalid approver address",
			msg: MsgCreateProposal{
				Creator:           sample.AccAddress(),
				Receiver:          sample.AccAddress(),
				Token:             "ustream",
				TotalAmount:       math.NewInt(1000),
				EndTime:           100,
				Approvers:         []string{"invalid_address"},
				RequiredApprovals: 1,
			},
			err: sdkerrors.ErrInvalidAddress,
		}, {
			name: "valid message",
			msg: MsgCreateProposal{
				Creator:           sample.AccAddress(),
				Receiver:          sample.AccAddress(),
				Token:             "ustream",
				TotalAmount:       math.NewInt(1000),
				EndTime:           100,
				Approvers:         []string{approver, sample.AccAddress()},
				RequiredApprovals: 2,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.ValidateBasic()
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
		})
	}
}
