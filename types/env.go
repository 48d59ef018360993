package types

//---------- Env ---------

// Env represents the execution environment of the offspring contract.
// It must contain only trusted data supplied by the host, never values
// taken from the message itself.
type Env struct {
	Block    BlockInfo       `json:"block"`
	Contract EnvContractInfo `json:"contract"`
}

type BlockInfo struct {
	// block height this transaction is executed
	Height uint64 `json:"height"`
	// time in nanoseconds since unix epoch. Uses Uint64 to ensure JavaScript compatibility.
	Time    Uint64 `json:"time"`
	ChainID string `json:"chain_id"`
}

// EnvContractInfo identifies the contract being executed.
type EnvContractInfo struct {
	Address HumanAddress `json:"address"`
	// CodeHash of the running contract's bytecode. Hosts that do not track
	// code hashes leave it empty.
	CodeHash string `json:"code_hash,omitempty"`
}

// MessageInfo represents information about the message being executed.
type MessageInfo struct {
	// Address executing the contract, as authenticated by the host
	Sender HumanAddress `json:"sender"`
	// Amount of funds send to the contract along with this message
	Funds Array[Coin] `json:"funds"`
}
