//go:build go1.18

package gofuzz

import (
	"bytes"

	json "github.com/goccy/go-json"

	"github.com/factorykit/offspring"
	"github.com/factorykit/offspring/internal/address"
	"github.com/factorykit/offspring/types"
)

const (
	MOCK_FACTORY_ADDR = "secret1abc"
	MOCK_OWNER        = "secret1xyz"
	MOCK_VIEWING_KEY  = "api_key_owner"
)

const INIT_MSG = `{"count":3,"factory":{"address":"secret1abc","code_hash":"deadbeef"},"label":"mygroup","owner":"secret1xyz"}`

func newVM() *offspring.VM {
	return offspring.NewVM(types.GoAPI{ValidateAddress: address.Basic()})
}

func mockEnv(contractAddr string) types.Env {
	return types.Env{
		Block:    types.BlockInfo{Height: 1337, Time: 1578939743_987654321, ChainID: "foobar"},
		Contract: types.EnvContractInfo{Address: contractAddr},
	}
}

// factoryQuerier accepts MOCK_VIEWING_KEY for any address.
var factoryQuerier = types.QuerierFunc(func(request types.QueryRequest) ([]byte, error) {
	var q types.FactoryQueryMsg
	if err := json.Unmarshal(bytes.TrimRight(request.Wasm.Smart.Msg, " "), &q); err != nil {
		return nil, err
	}
	valid := q.IsKeyValid != nil && q.IsKeyValid.ViewingKey == MOCK_VIEWING_KEY
	return json.Marshal(types.IsKeyValidWrapper{IsKeyValid: types.IsKeyValid{IsValid: valid}})
})

// Helper function to check if a byte slice is valid JSON
func isValidJSON(data []byte) bool {
	var js any
	return json.Unmarshal(data, &js) == nil
}
