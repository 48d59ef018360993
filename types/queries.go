package types

//-------- Queries --------

// Querier lets a contract make read-only queries on other contracts.
type Querier interface {
	Query(request QueryRequest) ([]byte, error)
}

// QuerierFunc adapts a function to Querier.
type QuerierFunc func(request QueryRequest) ([]byte, error)

func (f QuerierFunc) Query(request QueryRequest) ([]byte, error) {
	return f(request)
}

// QueryRequest is the subset of chain queries an offspring makes.
type QueryRequest struct {
	Wasm *WasmQuery `json:"wasm,omitempty"`
}

type WasmQuery struct {
	Smart *SmartQuery `json:"smart,omitempty"`
}

// SmartQuery response is raw bytes ([]byte)
type SmartQuery struct {
	ContractAddr string `json:"contract_addr"`
	CodeHash     string `json:"code_hash"`
	Msg          []byte `json:"msg"`
}
