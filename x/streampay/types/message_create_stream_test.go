package types

import (
	"testing"

	"cosmossdk.io/math"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/streampaynet/streampay/testutil/sample"
	"github.com/stretchr/testify/require"
)

func TestMsgCreateStream_ValidateBasic(t *testing.T) {
	tests := []struct {
		name string
		msg  MsgCreateStream
		err  error
	}{
		{
			name: "invalid creator address",
			msg: MsgCreateStream{
				Creator:  "invalid_address",
				Receiver: sample.AccAddress(),
				Token:    "ustream",
				Amount:   math.NewInt(1000),
				EndTime:  100,
			},
			err: sdkerrors.ErrInvalidAddress,
		}, {
			name: "invalid receiver address",
			msg: MsgCreateStream{
				Creator:  sample.AccAddress(),
				Receiver: "invalid_address",
				Token:    "ustream",
				Amount:   math.NewInt(1000),
				EndTime:  100,
			},
			err: sdkerrors.ErrInvalidAddress,
		}, {
			name: "zero amount",
			msg: MsgCreateStream{
				Creator:  sample.AccAddress(),
				Receiver: sample.AccAddress(),
				Token:    "ustream",
				Amount:   math.ZeroInt(),
				EndTime:  100,
			},
			err: ErrInvalidAmount,
		}, {
			name: "end time not after start time",
			msg: MsgCreateStream{
				Creator:   sample.AccAddress(),
				Receiver:  sample.AccAddress(),
				Token:     "ustream",
				Amount:    math.NewInt(1000),
				StartTime: 100,
				EndTime:   100,
			},
			err: ErrInvalidTimeRange,
		}, {
			name: "valid message",
			msg: MsgCreateStream{
				Creator:   sample.AccAddress(),
				Receiver:  sample.AccAddress(),
				Token:     "ustream",
				Amount:    math.NewInt(1000),
				StartTime: 100,
				EndTime:   200,
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
