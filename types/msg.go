package types

//------- Instantiate -------------

// InstantiateMsg is the one-time initialization payload of an offspring,
// sent by its factory. It is the wire form: addresses are unvalidated.
type InstantiateMsg struct {
	// Count is the initial value of the counter
	Count int32 `json:"count"`
	// Factory is the code hash and address of the factory contract
	Factory RawContractInfo `json:"factory"`
	// Label used when initializing the offspring
	Label string `json:"label"`
	// Owner of this offspring
	Owner HumanAddress `json:"owner"`
	// Description is optional free-form text; absent and null mean the same
	Description OptionalString `json:"description"`
}

// RawContractInfo is ContractInfo as it arrives in a message.
type RawContractInfo struct {
	Address  HumanAddress `json:"address"`
	CodeHash string       `json:"code_hash"`
}

// ContractInfo identifies one deployed contract by address and code hash
// together.
type ContractInfo struct {
	Address  Addr   `json:"address"`
	CodeHash string `json:"code_hash"`
}

// Config is the validated, immutable form of an InstantiateMsg.
type Config struct {
	Count       int32          `json:"count"`
	Factory     ContractInfo   `json:"factory"`
	Label       string         `json:"label"`
	Owner       Addr           `json:"owner"`
	Description OptionalString `json:"description"`
}

// Msg converts the record back into its wire form.
func (c Config) Msg() InstantiateMsg {
	return InstantiateMsg{
		Count: c.Count,
		Factory: RawContractInfo{
			Address:  c.Factory.Address.String(),
			CodeHash: c.Factory.CodeHash,
		},
		Label:       c.Label,
		Owner:       c.Owner.String(),
		Description: c.Description,
	}
}

// State is the persisted counter state of an offspring.
type State struct {
	Label       string         `json:"label"`
	Description OptionalString `json:"description"`
	Count       int32          `json:"count"`
}

//------- Execute / Query -------------

// ExecuteMsg is the set of handle messages. Exactly one field should be set.
type ExecuteMsg struct {
	Increment  *IncrementMsg  `json:"increment,omitempty"`
	Reset      *ResetMsg      `json:"reset,omitempty"`
	Deactivate *DeactivateMsg `json:"deactivate,omitempty"`
}

// IncrementMsg increases the counter by one. Anyone may send it.
type IncrementMsg struct{}

// ResetMsg sets the counter. Owner only.
type ResetMsg struct {
	Count int32 `json:"count"`
}

// DeactivateMsg deactivates the offspring and tells the factory. Owner only.
type DeactivateMsg struct{}

// QueryMsg is the set of queries. Exactly one field should be set.
type QueryMsg struct {
	GetCount *GetCountQuery `json:"get_count,omitempty"`
}

// GetCountQuery returns the counter to the owner, authenticated with the
// viewing key registered in the factory.
type GetCountQuery struct {
	Address    HumanAddress `json:"address"`
	ViewingKey string       `json:"viewing_key"`
}

type QueryAnswer struct {
	CountResponse *CountResponse `json:"count_response,omitempty"`
}

type CountResponse struct {
	Count int32 `json:"count"`
}

//------- Results / Msgs -------------

// Response defines the return value on a successful instantiate/execute.
type Response struct {
	// Messages the contract asks the host to dispatch after execution
	Messages Array[CosmosMsg] `json:"messages"`
	// attributes for a log event to return over abci interface
	Attributes Array[EventAttribute] `json:"attributes"`
}

type EventAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// CosmosMsg is the subset of chain messages an offspring emits.
type CosmosMsg struct {
	Wasm *WasmMsg `json:"wasm,omitempty"`
}

type WasmMsg struct {
	Execute *WasmExecuteMsg `json:"execute,omitempty"`
}

// WasmExecuteMsg calls another contract. Code hash is required so the
// callee is pinned to a known bytecode.
type WasmExecuteMsg struct {
	ContractAddr string `json:"contract_addr"`
	CodeHash     string `json:"code_hash"`
	// Msg is the json-encoded handle message of the callee
	Msg   []byte      `json:"msg"`
	Funds Array[Coin] `json:"funds"`
}
