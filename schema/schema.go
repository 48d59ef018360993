// Package schema holds the JSON Schema of the offspring's instantiate message.
package schema

import (
	_ "embed"

	json "github.com/goccy/go-json"
)

//go:embed instantiate_msg.json
var instantiateMsg []byte

// InstantiateMsg returns a copy of the JSON Schema document.
func InstantiateMsg() []byte {
	return append([]byte(nil), instantiateMsg...)
}

type document struct {
	Required    []string `json:"required"`
	Definitions map[string]struct {
		Required []string `json:"required"`
	} `json:"definitions"`
}

// Required lists the required top level properties in document order.
func Required() ([]string, error) {
	var doc document
	if err := json.Unmarshal(instantiateMsg, &doc); err != nil {
		return nil, err
	}
	return doc.Required, nil
}

// RequiredOf lists the required properties of a definition.
func RequiredOf(definition string) ([]string, error) {
	var doc document
	if err := json.Unmarshal(instantiateMsg, &doc); err != nil {
		return nil, err
	}
	return doc.Definitions[definition].Required, nil
}
