package types

import (
	json "github.com/goccy/go-json"
)

// OptionalString is a type that is able to represent JSON's null or string.
// It allows us to differentiate between a null field and an empty string.
// The zero value is unset, so an absent field and an explicit null decode
// to the same value.
type OptionalString struct {
	Set bool
	// Value is the string value when Set is true. When Set is false it is empty.
	Value string
}

func NewOptionalStringUnset() OptionalString {
	return OptionalString{}
}

func NewOptionalStringSet(value string) OptionalString {
	return OptionalString{
		Set:   true,
		Value: value,
	}
}

// MarshalJSON encodes a set OptionalString to a JSON string and an unset OptionalString to a JSON null
func (os OptionalString) MarshalJSON() ([]byte, error) {
	if !os.Set {
		return []byte("null"), nil
	}
	return json.Marshal(os.Value)
}

// UnmarshalJSON decodes a JSON string to a set OptionalString and null to an unset OptionalString
func (os *OptionalString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*os = NewOptionalStringUnset()
		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*os = NewOptionalStringSet(value)
	return nil
}
