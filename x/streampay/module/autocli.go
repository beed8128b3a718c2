package streampay

import (
	autocliv1 "cosmossdk.io/api/cosmos/autocli/v1"
)

// AutoCLIOptions implements the autocli.HasAutoCLIConfig interface.
func (am AppModule) AutoCLIOptions() *autocliv1.ModuleOptions {
	return &autocliv1.ModuleOptions{
		Query: &autocliv1.ServiceCommandDescriptor{
			Service: "streampay.streampay.Query",
			RpcCommandOptions: []*autocliv1.RpcCommandOptions{
				{
					RpcMethod: "Params",
					Use:       "params",
					Short:     "Shows the parameters of the module",
				},
				{
					RpcMethod:      "Stream",
					Use:            "show-stream [id]",
					Short:          "Shows a stream with its unlocked and withdrawable balances",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{{ProtoField: "stream_id"}},
				},
				{
					RpcMethod: "Streams",
					Use:       "list-streams",
					Short:     "List all streams",
				},
				{
					RpcMethod:      "Proposal",
					Use:            "show-proposal [id]",
					Short:          "Shows a funding proposal",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{{ProtoField: "proposal_id"}},
				},
				{
					RpcMethod: "Admin",
					Use:       "admin",
					Short:     "Shows the bootstrap admin address",
				},
				{
					RpcMethod:      "CheckRole",
					Use:            "check-role [principal] [role]",
					Short:          "Checks whether an address holds a role",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{{ProtoField: "principal"}, {ProtoField: "role"}},
				},
				{
					RpcMethod:      "SoulboundStreams",
					Use:            "soulbound-streams [receiver]",
					Short:          "List soulbound streams, optionally filtered by receiver",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{{ProtoField: "receiver", Optional: true}},
				},
			},
		},
		Tx: &autocliv1.ServiceCommandDescriptor{
			Service: "streampay.streampay.Msg",
			RpcCommandOptions: []*autocliv1.RpcCommandOptions{
				{
					RpcMethod: "UpdateParams",
					Skip:      true, // authority gated
				},
				{
					RpcMethod:      "Initialize",
					Use:            "initialize [admin]",
					Short:          "Set the bootstrap admin, once",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{{ProtoField: "admin"}},
				},
				{
					RpcMethod:      "GrantRole",
					Use:            "grant-role [principal] [role]",
					Short:          "Grant a role to an address",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{{ProtoField: "principal"}, {ProtoField: "role"}},
				},
				{
					RpcMethod:      "RevokeRole",
					Use:            "revoke-role [principal] [role]",
					Short:          "Revoke a role from an address",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{{ProtoField: "principal"}, {ProtoField: "role"}},
				},
				{
					RpcMethod: "CreateProposal",
					Use:       "create-proposal [receiver] [token] [total-amount] [start-time] [end-time]",
					Short:     "Propose a stream that executes after enough approvals",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{
						{ProtoField: "receiver"}, {ProtoField: "token"}, {ProtoField: "total_amount"},
						{ProtoField: "start_time"}, {ProtoField: "end_time"},
					},
				},
				{
					RpcMethod:      "ApproveProposal",
					Use:            "approve-proposal [proposal-id]",
					Short:          "Approve a funding proposal",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{{ProtoField: "proposal_id"}},
				},
				{
					RpcMethod: "CreateStream",
					Use:       "create-stream [receiver] [token] [amount] [start-time] [end-time]",
					Short:     "Create a vesting stream",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{
						{ProtoField: "receiver"}, {ProtoField: "token"}, {ProtoField: "amount"},
						{ProtoField: "start_time"}, {ProtoField: "end_time"},
					},
				},
				{
					RpcMethod:      "CreateStreamWithMilestones",
					Use:            "create-milestone-stream [receiver] [token]",
					Short:          "Create a stream that unlocks at fixed milestones",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{{ProtoField: "receiver"}, {ProtoField: "token"}},
				},
				{
					RpcMethod:      "TopUpStream",
					Use:            "top-up-stream [stream-id] [amount]",
					Short:          "Add funds to a stream, extending its end time",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{{ProtoField: "stream_id"}, {ProtoField: "amount"}},
				},
				{
					RpcMethod:      "PauseStream",
					Use:            "pause-stream [stream-id]",
					Short:          "Pause vesting on a stream",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{{ProtoField: "stream_id"}},
				},
				{
					RpcMethod:      "UnpauseStream",
					Use:            "unpause-stream [stream-id]",
					Short:          "Resume vesting on a paused stream",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{{ProtoField: "stream_id"}},
				},
				{
					RpcMethod:      "Withdraw",
					Use:            "withdraw [stream-id]",
					Short:          "Withdraw the vested balance of a stream",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{{ProtoField: "stream_id"}},
				},
				{
					RpcMethod:      "CancelStream",
					Use:            "cancel-stream [stream-id]",
					Short:          "Cancel a stream and settle both sides",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{{ProtoField: "stream_id"}},
				},
				{
					RpcMethod:      "TransferReceiver",
					Use:            "transfer-receiver [stream-id] [new-receiver]",
					Short:          "Hand the receiving side of a stream to another address",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{{ProtoField: "stream_id"}, {ProtoField: "new_receiver"}},
				},
			},
		},
	}
}
