package types

import "encoding/binary"

const (
	// ModuleName defines the module name
	ModuleName = "streampay"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_streampay"
)

var (
	ParamsKey = []byte("p_streampay")

	// StreamKeyPrefix is the prefix for stored streams, keyed by id
	StreamKeyPrefix = []byte("stream/value/")

	// StreamCountKey holds the id counter for streams
	StreamCountKey = []byte("stream/count")

	// ProposalKeyPrefix is the prefix for stored stream proposals, keyed by id
	ProposalKeyPrefix = []byte("proposal/value/")

	// ProposalCountKey holds the id counter for proposals
	ProposalCountKey = []byte("proposal/count")

	// ReceiptKeyPrefix is the prefix for stream receipts, keyed by stream id
	ReceiptKeyPrefix = []byte("receipt/value/")

	// RoleKeyPrefix is the prefix for role grants, keyed by (role, principal)
	RoleKeyPrefix = []byte("role/value/")

	// AdminKey holds the bootstrap admin address
	AdminKey = []byte("role/admin")

	// SoulboundIndexKey holds the append-only list of soulbound stream ids
	SoulboundIndexKey = []byte("stream/soulbound")

	// VaultSharesKeyPrefix is the prefix for vault share records, keyed by stream id
	VaultSharesKeyPrefix = []byte("vault/shares/")
)

func KeyPrefix(p string) []byte {
	return []byte(p)
}

// StreamKey returns the store key for a stream id
func StreamKey(streamId uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, streamId)
	return append(StreamKeyPrefix, bz...)
}

// ProposalKey returns the store key for a proposal id
func ProposalKey(proposalId uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, proposalId)
	return append(ProposalKeyPrefix, bz...)
}

// ReceiptKey returns the store key for the receipt minted for a stream
func ReceiptKey(streamId uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, streamId)
	return append(ReceiptKeyPrefix, bz...)
}

// RoleKey returns the store key for a (role, principal) grant
func RoleKey(role Role, principal string) []byte {
	key := append(RoleKeyPrefix, byte(role))
	return append(key, []byte(principal)...)
}

// VaultSharesKey returns the store key for the shares held for a stream
func VaultSharesKey(streamId uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, streamId)
	return append(VaultSharesKeyPrefix, bz...)
}
