package types

import (
	json "github.com/goccy/go-json"
)

// ValidateAddressFunc checks a human readable address against the hosting
// environment's rules (bech32 or otherwise). The returned uint64 is the gas
// cost reported by the host; callers here ignore it.
type ValidateAddressFunc func(HumanAddress) (uint64, error)

// GoAPI is the set of host callbacks a contract may use.
type GoAPI struct {
	ValidateAddress ValidateAddressFunc
}

// AddrValidate is the only way to obtain an Addr. It runs the configured
// address rule and wraps any failure as InvalidAddress.
func (api GoAPI) AddrValidate(human HumanAddress) (Addr, error) {
	if api.ValidateAddress == nil {
		return Addr{}, InvalidAddress{Value: human, Reason: "no address rule configured"}
	}
	if _, err := api.ValidateAddress(human); err != nil {
		return Addr{}, InvalidAddress{Value: human, Reason: err.Error()}
	}
	return Addr{human: human}, nil
}

// Addr is an address that passed GoAPI.AddrValidate.
//
// The zero value is the empty, invalid address. Addr intentionally has no
// JSON unmarshaler: values decoded from a message are HumanAddress strings
// until validated.
type Addr struct {
	human string
}

func (a Addr) String() string {
	return a.human
}

// Empty is true for the zero Addr.
func (a Addr) Empty() bool {
	return a.human == ""
}

// Equals compares against an unvalidated string without trusting it.
func (a Addr) Equals(human HumanAddress) bool {
	return !a.Empty() && a.human == human
}

func (a Addr) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.human)
}
