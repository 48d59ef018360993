package types

import (
	"errors"
	"fmt"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrorMessages(t *testing.T) {
	assert.Equal(t, "missing field `owner`", MissingField{Field: "owner"}.Error())
	assert.Equal(t, "invalid type for field `count`: expected int32",
		TypeMismatch{Field: "count", Expected: "int32"}.Error())
	assert.Equal(t, "invalid message: expected object", TypeMismatch{Expected: "object"}.Error())
	assert.Equal(t, `invalid address "" for field `+"`owner`"+`: empty address`,
		InvalidAddress{Field: "owner", Value: "", Reason: "empty address"}.Error())
}

func TestToValidationError(t *testing.T) {
	require.Nil(t, ToValidationError(nil))
	require.Nil(t, ToValidationError(errors.New("other")))

	ve := ToValidationError(MissingField{Field: "label"})
	require.NotNil(t, ve)
	assert.Equal(t, "missing_field", ve.Kind())
	assert.Equal(t, "label", ve.MissingField.Field)

	wrapped := fmt.Errorf("instantiate: %w", TypeMismatch{Field: "count", Expected: "int32"})
	ve = ToValidationError(wrapped)
	require.NotNil(t, ve)
	assert.Equal(t, "type_mismatch", ve.Kind())
	assert.Equal(t, wrapped.Error(), "instantiate: "+ve.Error())

	ve = ToValidationError(InvalidAddress{Field: "owner", Value: "bad"})
	require.NotNil(t, ve)
	assert.Equal(t, "invalid_address", ve.Kind())

	// already converted
	again := ToValidationError(*ve)
	assert.Equal(t, ve, again)
}

func TestValidationErrorJSON(t *testing.T) {
	ve := ValidationError{MissingField: &MissingField{Field: "factory.code_hash"}}
	bz, err := json.Marshal(ve)
	require.NoError(t, err)
	assert.JSONEq(t, `{"missing_field":{"field":"factory.code_hash"}}`, string(bz))

	var decoded ValidationError
	require.NoError(t, json.Unmarshal(bz, &decoded))
	assert.Equal(t, ve, decoded)
}

func TestAddrValidate(t *testing.T) {
	rejectEmpty := GoAPI{ValidateAddress: func(h HumanAddress) (uint64, error) {
		if h == "" {
			return 0, errors.New("empty address")
		}
		return 0, nil
	}}

	addr, err := rejectEmpty.AddrValidate("secret1xyz")
	require.NoError(t, err)
	assert.Equal(t, "secret1xyz", addr.String())
	assert.False(t, addr.Empty())
	assert.True(t, addr.Equals("secret1xyz"))
	assert.False(t, addr.Equals("secret1abc"))

	_, err = rejectEmpty.AddrValidate("")
	var ia InvalidAddress
	require.ErrorAs(t, err, &ia)
	assert.Equal(t, "empty address", ia.Reason)

	// no rule configured is never trusted
	_, err = GoAPI{}.AddrValidate("secret1xyz")
	require.ErrorAs(t, err, &ia)

	var zero Addr
	assert.True(t, zero.Empty())
	assert.False(t, zero.Equals(""))

	bz, err := json.Marshal(addr)
	require.NoError(t, err)
	assert.Equal(t, `"secret1xyz"`, string(bz))
}
