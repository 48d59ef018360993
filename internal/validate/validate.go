// Package validate turns a raw InstantiateMsg into a trusted types.Config.
//
// Validation is a pure, single pass over the message. Checks run in a fixed
// order so that a message with several problems always reports the same one:
//
//  1. presence of count, factory, label, owner
//  2. count is an int32
//  3. factory is a ContractInfo with non-empty address and code_hash
//  4. label and owner are strings
//  5. owner (and factory.address) pass the host's address rule
//  6. description, when present, is a string or null
package validate

import (
	"bytes"
	"strconv"
	"strings"
	"unicode/utf8"

	json "github.com/goccy/go-json"

	"github.com/factorykit/offspring/types"
)

// RequiredFields lists the mandatory top level keys in the order they are checked.
var RequiredFields = []string{"count", "factory", "label", "owner"}

const (
	fieldCount       = "count"
	fieldFactory     = "factory"
	fieldLabel       = "label"
	fieldOwner       = "owner"
	fieldDescription = "description"

	fieldFactoryAddress  = "factory.address"
	fieldFactoryCodeHash = "factory.code_hash"
)

// Validator validates instantiate messages against one host's address rule.
type Validator struct {
	api types.GoAPI
}

// New returns a Validator that checks addresses with api's rule.
func New(api types.GoAPI) *Validator {
	return &Validator{api: api}
}

// Validate decodes raw and returns the validated record, or one of
// types.MissingField, types.TypeMismatch, types.InvalidAddress.
func (v *Validator) Validate(raw []byte) (types.Config, error) {
	if kindOf(raw) != kindObject {
		return types.Config{}, types.TypeMismatch{Expected: "object"}
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return types.Config{}, types.TypeMismatch{Expected: "object"}
	}

	for _, name := range RequiredFields {
		if !present(fields, name) {
			return types.Config{}, types.MissingField{Field: name}
		}
	}

	count, err := decodeInt32(fieldCount, fields[fieldCount])
	if err != nil {
		return types.Config{}, err
	}
	factory, err := decodeContractInfo(fields[fieldFactory])
	if err != nil {
		return types.Config{}, err
	}
	label, err := decodeString(fieldLabel, fields[fieldLabel])
	if err != nil {
		return types.Config{}, err
	}
	owner, err := decodeString(fieldOwner, fields[fieldOwner])
	if err != nil {
		return types.Config{}, err
	}

	ownerAddr, err := v.addr(fieldOwner, owner)
	if err != nil {
		return types.Config{}, err
	}
	factoryAddr, err := v.addr(fieldFactoryAddress, factory.Address)
	if err != nil {
		return types.Config{}, err
	}

	description, err := decodeDescription(fields)
	if err != nil {
		return types.Config{}, err
	}

	return types.Config{
		Count: count,
		Factory: types.ContractInfo{
			Address:  factoryAddr,
			CodeHash: factory.CodeHash,
		},
		Label:       label,
		Owner:       ownerAddr,
		Description: description,
	}, nil
}

// ValidateMsg validates a message that was already decoded into its wire
// type, e.g. one built in Go by a caller. Only the checks that the type
// system cannot express are run.
func (v *Validator) ValidateMsg(msg types.InstantiateMsg) (types.Config, error) {
	if msg.Factory.Address == "" {
		return types.Config{}, types.MissingField{Field: fieldFactoryAddress}
	}
	if msg.Factory.CodeHash == "" {
		return types.Config{}, types.MissingField{Field: fieldFactoryCodeHash}
	}
	ownerAddr, err := v.addr(fieldOwner, msg.Owner)
	if err != nil {
		return types.Config{}, err
	}
	factoryAddr, err := v.addr(fieldFactoryAddress, msg.Factory.Address)
	if err != nil {
		return types.Config{}, err
	}
	return types.Config{
		Count: msg.Count,
		Factory: types.ContractInfo{
			Address:  factoryAddr,
			CodeHash: msg.Factory.CodeHash,
		},
		Label:       msg.Label,
		Owner:       ownerAddr,
		Description: msg.Description,
	}, nil
}

func (v *Validator) addr(field string, human types.HumanAddress) (types.Addr, error) {
	addr, err := v.api.AddrValidate(human)
	if err != nil {
		ia, ok := err.(types.InvalidAddress)
		if !ok {
			ia = types.InvalidAddress{Value: human, Reason: err.Error()}
		}
		ia.Field = field
		return types.Addr{}, ia
	}
	return addr, nil
}

func decodeInt32(field string, raw json.RawMessage) (int32, error) {
	if kindOf(raw) != kindNumber {
		return 0, types.TypeMismatch{Field: field, Expected: "int32"}
	}
	s := string(bytes.TrimSpace(raw))
	// The decoder lets leading zeros through but JSON does not allow them.
	if digits := strings.TrimPrefix(s, "-"); len(digits) > 1 && digits[0] == '0' {
		return 0, types.TypeMismatch{Field: field, Expected: "int32"}
	}
	// ParseInt refuses fractions and exponents, so 3.0 and 3e0 are rejected
	// like any other non-integer.
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, types.TypeMismatch{Field: field, Expected: "int32"}
	}
	return int32(n), nil
}

func decodeString(field string, raw json.RawMessage) (string, error) {
	if kindOf(raw) != kindString {
		return "", types.TypeMismatch{Field: field, Expected: "string"}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", types.TypeMismatch{Field: field, Expected: "string"}
	}
	// Invalid UTF-8 is copied through by the decoder and would come back
	// as U+FFFD once the record is encoded again.
	if !utf8.ValidString(s) {
		return "", types.TypeMismatch{Field: field, Expected: "string"}
	}
	return s, nil
}

func decodeContractInfo(raw json.RawMessage) (types.RawContractInfo, error) {
	if kindOf(raw) != kindObject {
		return types.RawContractInfo{}, types.TypeMismatch{Field: fieldFactory, Expected: "object"}
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return types.RawContractInfo{}, types.TypeMismatch{Field: fieldFactory, Expected: "object"}
	}
	for _, name := range []string{fieldFactoryAddress, fieldFactoryCodeHash} {
		if !present(fields, name[len(fieldFactory)+1:]) {
			return types.RawContractInfo{}, types.MissingField{Field: name}
		}
	}
	address, err := decodeString(fieldFactoryAddress, fields["address"])
	if err != nil {
		return types.RawContractInfo{}, err
	}
	if address == "" {
		return types.RawContractInfo{}, types.MissingField{Field: fieldFactoryAddress}
	}
	codeHash, err := decodeString(fieldFactoryCodeHash, fields["code_hash"])
	if err != nil {
		return types.RawContractInfo{}, err
	}
	if codeHash == "" {
		return types.RawContractInfo{}, types.MissingField{Field: fieldFactoryCodeHash}
	}
	return types.RawContractInfo{Address: address, CodeHash: codeHash}, nil
}

func decodeDescription(fields map[string]json.RawMessage) (types.OptionalString, error) {
	raw, ok := fields[fieldDescription]
	if !ok || kindOf(raw) == kindNull {
		return types.NewOptionalStringUnset(), nil
	}
	s, err := decodeString(fieldDescription, raw)
	if err != nil {
		return types.OptionalString{}, types.TypeMismatch{Field: fieldDescription, Expected: "string or null"}
	}
	return types.NewOptionalStringSet(s), nil
}

// present treats an explicit null like a missing key.
func present(fields map[string]json.RawMessage, name string) bool {
	raw, ok := fields[name]
	return ok && kindOf(raw) != kindNull
}

type kind int

const (
	kindInvalid kind = iota
	kindNull
	kindBool
	kindNumber
	kindString
	kindArray
	kindObject
)

// kindOf classifies a JSON value by its first significant byte. The value
// itself is checked by the decoder afterwards.
func kindOf(raw []byte) kind {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return kindInvalid
	}
	switch c := raw[0]; {
	case c == '{':
		return kindObject
	case c == '[':
		return kindArray
	case c == '"':
		return kindString
	case c == 't' || c == 'f':
		return kindBool
	case c == 'n':
		return kindNull
	case c == '-' || (c >= '0' && c <= '9'):
		return kindNumber
	default:
		return kindInvalid
	}
}

// Validate is shorthand for New(api).Validate(raw).
func Validate(api types.GoAPI, raw []byte) (types.Config, error) {
	return New(api).Validate(raw)
}

// ValidateMsg is shorthand for New(api).ValidateMsg(msg).
func ValidateMsg(api types.GoAPI, msg types.InstantiateMsg) (types.Config, error) {
	return New(api).ValidateMsg(msg)
}
