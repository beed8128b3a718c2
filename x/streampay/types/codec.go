package types

import (
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgInitialize{},
	)
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgGrantRole{},
	)
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgRevokeRole{},
	)
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCreateProposal{},
	)
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgApproveProposal{},
	)
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCreateStream{},
	)
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCreateStreamWithMilestones{},
	)
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgTopUpStream{},
	)
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgPauseStream{},
	)
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgUnpauseStream{},
	)
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgWithdraw{},
	)
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCancelStream{},
	)
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgTransferReceiver{},
	)

	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgUpdateParams{},
	)
}
