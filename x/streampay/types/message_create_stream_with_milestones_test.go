package types

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/streampaynet/streampay/testutil/sample"
	"github.com/stretchr/testify/require"
)

func TestMsgCreateStreamWithMilestones_ValidateBasic(t *testing.T) {
	tests := []struct {
		name string
		msg  MsgCreateStreamWithMilestones
		err  error
	}{
		{
			name: "no milestones",
			msg: MsgCreateStreamWithMilestones{
				Creator:  sample.AccAddress(),
				Receiver: sample.AccAddress(),
				Token:    "ustream",
			},
			err: ErrInvalidMilestones,
		}, {
			name: "unordered milestones",
			msg: MsgCreateStreamWithMilestones{
				Creator:  sample.AccAddress(),
				Receiver: sample.AccAddress(),
				Token:    "ustream",
				Milestones: []Milestone{
					{Timestamp: 200, Amount: math.NewInt(100)},
					{Timestamp: 100, Amount: math.NewInt(100)},
				},
			},
			err: ErrInvalidMilestones,
		}, {
			name: "non-positive milestone amount",
			msg: MsgCreateStreamWithMilestones{
				Creator:  sample.AccAddress(),
				Receiver: sample.AccAddress(),
				Token:    "ustream",
				Milestones: []Milestone{
					{Timestamp: 100, Amount: math.ZeroInt()},
				},
			},
			err: ErrInvalidMilestones,
		}, {
			name: "valid message",
			msg: MsgCreateStreamWithMilestones{
				Creator:  sample.AccAddress(),
				Receiver: sample.AccAddress(),
				Token:    "ustream",
				Milestones: []Milestone{
					{Timestamp: 100, Amount: math.NewInt(100)},
					{Timestamp: 200, Amount: math.NewInt(400)},
				},
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
