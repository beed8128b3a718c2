package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	paramtypes "github.com/cosmos/cosmos-sdk/x/params/types"
)

var _ paramtypes.ParamSet = (*Params)(nil)

// Default parameter values
var (
	DefaultAllowedVaults     []string = nil
	DefaultMinStreamDuration          = uint64(1) // seconds
)

// Parameter store keys
var (
	KeyAllowedVaults     = []byte("AllowedVaults")
	KeyMinStreamDuration = []byte("MinStreamDuration")
)

// ParamKeyTable the param key table for launch module
func ParamKeyTable() paramtypes.KeyTable {
	return paramtypes.NewKeyTable().RegisterParamSet(&Params{})
}

// NewParams creates a new Params instance
func NewParams(allowedVaults []string, minStreamDuration uint64) Params {
	return Params{
		AllowedVaults:     allowedVaults,
		MinStreamDuration: minStreamDuration,
	}
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return NewParams(DefaultAllowedVaults, DefaultMinStreamDuration)
}

// ParamSetPairs get the params.ParamSet
func (p *Params) ParamSetPairs() paramtypes.ParamSetPairs {
	return paramtypes.ParamSetPairs{
		paramtypes.NewParamSetPair(KeyAllowedVaults, &p.AllowedVaults, validateAllowedVaults),
		paramtypes.NewParamSetPair(KeyMinStreamDuration, &p.MinStreamDuration, validateMinStreamDuration),
	}
}

// Validate validates the set of params
func (p Params) Validate() error {
	if err := validateAllowedVaults(p.AllowedVaults); err != nil {
		return err
	}
	if err := validateMinStreamDuration(p.MinStreamDuration); err != nil {
		return err
	}
	return nil
}

// validateAllowedVaults validates the AllowedVaults param
func validateAllowedVaults(v interface{}) error {
	allowedVaults, ok := v.([]string)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", v)
	}

	seen := make(map[string]struct{}, len(allowedVaults))
	for _, vault := range allowedVaults {
		if _, err := sdk.AccAddressFromBech32(vault); err != nil {
			return fmt.Errorf("invalid vault address %s: %w", vault, err)
		}
		if _, ok := seen[vault]; ok {
			return fmt.Errorf("duplicate vault address: %s", vault)
		}
		seen[vault] = struct{}{}
	}

	return nil
}

// validateMinStreamDuration validates the MinStreamDuration param
func validateMinStreamDuration(v interface{}) error {
	minStreamDuration, ok := v.(uint64)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", v)
	}

	if minStreamDuration == 0 {
		return fmt.Errorf("minimum stream duration must be positive")
	}

	return nil
}
