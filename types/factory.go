package types

// FactoryExecuteMsg is the subset of factory handle messages an offspring sends.
type FactoryExecuteMsg struct {
	RegisterOffspring   *RegisterOffspring   `json:"register_offspring,omitempty"`
	DeactivateOffspring *DeactivateOffspring `json:"deactivate_offspring,omitempty"`
}

// RegisterOffspring is the callback an offspring sends right after
// instantiation so the factory can list it.
type RegisterOffspring struct {
	Owner     HumanAddress  `json:"owner"`
	Offspring OffspringInfo `json:"offspring"`
}

// OffspringInfo describes a freshly instantiated offspring.
type OffspringInfo struct {
	// label used when initializing offspring
	Label    string       `json:"label"`
	Owner    HumanAddress `json:"owner"`
	Address  HumanAddress `json:"address"`
	CodeHash string       `json:"code_hash"`
}

// DeactivateOffspring tells the factory that the offspring is inactive.
type DeactivateOffspring struct {
	Owner HumanAddress `json:"owner"`
}

// FactoryQueryMsg is the subset of factory queries an offspring calls.
type FactoryQueryMsg struct {
	IsKeyValid *IsKeyValidQuery `json:"is_key_valid,omitempty"`
}

// IsKeyValidQuery authenticates an address / viewing key pair.
type IsKeyValidQuery struct {
	Address    HumanAddress `json:"address"`
	ViewingKey string       `json:"viewing_key"`
}

type IsKeyValid struct {
	IsValid bool `json:"is_valid"`
}

// IsKeyValidWrapper is the factory's answer to IsKeyValidQuery.
type IsKeyValidWrapper struct {
	IsKeyValid IsKeyValid `json:"is_key_valid"`
}
