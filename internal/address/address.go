// Package address provides address rules for types.GoAPI.
//
// The format an address must have is defined by the hosting chain, so the
// rules are interchangeable ValidateAddressFunc values rather than a single
// hard-coded encoding.
package address

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/cosmos/cosmos-sdk/types/bech32"

	"github.com/factorykit/offspring/types"
)

const (
	// MinAddressLength and MaxAddressLength bound every rule. 90 is the
	// bech32 limit.
	MinAddressLength = 3
	MaxAddressLength = 90

	// GasCostHumanAddress is the SDK gas cost to convert a canonical address to a human-readable address.
	GasCostHumanAddress uint64 = 5
	// GasCostCanonicalAddress is the SDK gas cost to convert a human address to canonical form.
	GasCostCanonicalAddress uint64 = 4
	// GasCostValidateAddress is the SDK gas cost to validate an address (humanize + canonicalize).
	GasCostValidateAddress uint64 = GasCostHumanAddress + GasCostCanonicalAddress
)

var (
	ErrEmpty         = errors.New("empty address")
	ErrTooShort      = fmt.Errorf("address shorter than %d characters", MinAddressLength)
	ErrTooLong       = fmt.Errorf("address longer than %d characters", MaxAddressLength)
	ErrNotNormalized = errors.New("address not normalized")
	ErrUnknownFormat = errors.New("address format not recognized")
)

var (
	bech32Shape = regexp.MustCompile(`^[a-z]{1,83}1[0-9a-z]+$`)
	hexShape    = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	legacyShape = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

func checkLength(human string) error {
	switch {
	case human == "":
		return ErrEmpty
	case len(human) < MinAddressLength:
		return ErrTooShort
	case len(human) > MaxAddressLength:
		return ErrTooLong
	}
	return nil
}

// Bech32 accepts checksummed bech32 addresses carrying a 20 or 32 byte
// payload. With a non-empty prefix the human readable part must match it.
// Upper case input is rejected as not normalized, the same way a chain's
// addr_validate refuses anything that does not round-trip unchanged.
func Bech32(prefix string) types.ValidateAddressFunc {
	return func(human types.HumanAddress) (uint64, error) {
		if err := checkLength(human); err != nil {
			return 0, err
		}
		if human != strings.ToLower(human) {
			return GasCostValidateAddress, ErrNotNormalized
		}
		hrp, bz, err := bech32.DecodeAndConvert(human)
		if err != nil {
			return GasCostValidateAddress, fmt.Errorf("decoding bech32 failed: %w", err)
		}
		if prefix != "" && hrp != prefix {
			return GasCostValidateAddress, fmt.Errorf("invalid bech32 prefix; expected %s, got %s", prefix, hrp)
		}
		if len(bz) != 20 && len(bz) != 32 {
			return GasCostValidateAddress, fmt.Errorf("invalid address payload length %d", len(bz))
		}
		return GasCostValidateAddress, nil
	}
}

// Basic checks the shape of an address without decoding it: bech32-like
// strings ("hrp1data"), 0x-prefixed 20 byte hex, or legacy identifiers
// containing '-' or '_'. Intended for local tooling and tests.
func Basic() types.ValidateAddressFunc {
	return func(human types.HumanAddress) (uint64, error) {
		if err := checkLength(human); err != nil {
			return 0, err
		}
		switch {
		case strings.HasPrefix(human, "0x"):
			if !hexShape.MatchString(human) {
				return GasCostValidateAddress, fmt.Errorf("%w: malformed hex address", ErrUnknownFormat)
			}
		case bech32Shape.MatchString(human):
		case legacyShape.MatchString(human) && strings.ContainsAny(human, "-_"):
		default:
			return GasCostValidateAddress, ErrUnknownFormat
		}
		return GasCostValidateAddress, nil
	}
}

// Failing rejects every address.
func Failing() types.ValidateAddressFunc {
	return func(types.HumanAddress) (uint64, error) {
		return 0, errors.New("mock failure - validate_address")
	}
}

// Rule names accepted by ByName.
const (
	RuleBech32 = "bech32"
	RuleBasic  = "basic"
)

// ByName builds a rule from configuration. prefix only applies to bech32.
func ByName(name, prefix string) (types.ValidateAddressFunc, error) {
	switch strings.ToLower(name) {
	case RuleBech32:
		return Bech32(prefix), nil
	case RuleBasic:
		return Basic(), nil
	default:
		return nil, fmt.Errorf("unknown address rule %q (expected %s or %s)", name, RuleBech32, RuleBasic)
	}
}
