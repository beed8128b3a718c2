package types

import (
	"fmt"
)

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Streams:    []Stream{},
		Proposals:  []StreamProposal{},
		Receipts:   []StreamReceipt{},
		RoleGrants: []RoleGrant{},
		Params:     DefaultParams(),
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	// Check for duplicated id in stream
	streamIdMap := make(map[uint64]struct{})
	for _, elem := range gs.Streams {
		if _, ok := streamIdMap[elem.Id]; ok {
			return fmt.Errorf("duplicated id for stream")
		}
		if elem.Id > gs.StreamCount {
			return fmt.Errorf("stream id %d is greater than the stream count %d", elem.Id, gs.StreamCount)
		}
		streamIdMap[elem.Id] = struct{}{}
	}
	// Check for duplicated id in proposal
	proposalIdMap := make(map[uint64]struct{})
	for _, elem := range gs.Proposals {
		if _, ok := proposalIdMap[elem.Id]; ok {
			return fmt.Errorf("duplicated id for proposal")
		}
		if elem.Id > gs.ProposalCount {
			return fmt.Errorf("proposal id %d is greater than the proposal count %d", elem.Id, gs.ProposalCount)
		}
		proposalIdMap[elem.Id] = struct{}{}
	}
	// Receipts must reference a persisted stream
	receiptIdMap := make(map[uint64]struct{})
	for _, elem := range gs.Receipts {
		if _, ok := receiptIdMap[elem.StreamId]; ok {
			return fmt.Errorf("duplicated stream id for receipt")
		}
		if _, ok := streamIdMap[elem.StreamId]; !ok {
			return fmt.Errorf("receipt for unknown stream id %d", elem.StreamId)
		}
		receiptIdMap[elem.StreamId] = struct{}{}
	}
	// Check for duplicated (principal, role) grants
	grantMap := make(map[string]struct{})
	for _, elem := range gs.RoleGrants {
		if elem.Role == Role_ROLE_UNSPECIFIED {
			return fmt.Errorf("role grant for %s has unspecified role", elem.Principal)
		}
		key := string(RoleKey(elem.Role, elem.Principal))
		if _, ok := grantMap[key]; ok {
			return fmt.Errorf("duplicated role grant for %s", elem.Principal)
		}
		grantMap[key] = struct{}{}
	}

	return gs.Params.Validate()
}
