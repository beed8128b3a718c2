package types

const (
	// ModuleName defines the module name
	ModuleName = "vault"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

var (
	// TotalSharesKeyPrefix is the prefix for outstanding shares, keyed by
	// (vault address, denom)
	TotalSharesKeyPrefix = []byte("shares/total/")
)

// TotalSharesKey returns the store key for the shares outstanding against a
// vault for one denom
func TotalSharesKey(vaultAddr, denom string) []byte {
	key := append(TotalSharesKeyPrefix, []byte(vaultAddr)...)
	key = append(key, '/')
	return append(key, []byte(denom)...)
}
