package types

const (
	// ModuleName defines the module name
	ModuleName = "custody"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)
