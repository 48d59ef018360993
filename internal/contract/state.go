package contract

import (
	"errors"

	"github.com/factorykit/offspring/internal/storage"
	"github.com/factorykit/offspring/types"
)

// BlockSize pads callback and query messages to multiples of this many
// bytes so their length does not leak their content.
const BlockSize = 256

var (
	// factory code hash and address
	factoryInfo = storage.NewItem[types.RawContractInfo]("factory_info")
	// owner of this offspring
	owner = storage.NewItem[types.HumanAddress]("owner")
	// address of this offspring, as given by the host at instantiation
	contractAddr = storage.NewItem[types.HumanAddress]("contract_addr")
	// whether the offspring still accepts execute messages
	active = storage.NewItem[bool]("active")
	// counter state
	state = storage.NewItem[types.State]("state")
)

// Info is everything an offspring keeps about itself.
type Info struct {
	Factory  types.ContractInfo `json:"factory"`
	Owner    types.Addr         `json:"owner"`
	Address  types.HumanAddress `json:"address"`
	IsActive bool               `json:"is_active"`
	State    types.State        `json:"state"`
}

// LoadState returns the counter state.
func LoadState(store storage.KVStore) (types.State, error) {
	return load(state, store)
}

// IsActive reports whether the offspring accepts execute messages.
func IsActive(store storage.KVStore) (bool, error) {
	return load(active, store)
}

// LoadInfo loads the whole stored record. Stored addresses are plain strings
// and go through the address rule of api again before they are returned as
// types.Addr.
func LoadInfo(store storage.KVStore, api types.GoAPI) (Info, error) {
	factory, err := load(factoryInfo, store)
	if err != nil {
		return Info{}, err
	}
	ownerHuman, err := load(owner, store)
	if err != nil {
		return Info{}, err
	}
	self, err := load(contractAddr, store)
	if err != nil {
		return Info{}, err
	}
	isActive, err := load(active, store)
	if err != nil {
		return Info{}, err
	}
	st, err := load(state, store)
	if err != nil {
		return Info{}, err
	}

	ownerAddr, err := api.AddrValidate(ownerHuman)
	if err != nil {
		return Info{}, err
	}
	factoryAddr, err := api.AddrValidate(factory.Address)
	if err != nil {
		return Info{}, err
	}
	return Info{
		Factory:  types.ContractInfo{Address: factoryAddr, CodeHash: factory.CodeHash},
		Owner:    ownerAddr,
		Address:  self,
		IsActive: isActive,
		State:    st,
	}, nil
}

// load maps a missing item to ErrNotInitialized. Every item is written by
// Instantiate, so a missing one means it never ran.
func load[T any](item storage.Item[T], store storage.KVStore) (T, error) {
	v, ok, err := item.MayLoad(store)
	if err != nil {
		return v, err
	}
	if !ok {
		return v, ErrNotInitialized.Wrapf("no %s", item.Key())
	}
	return v, nil
}

// update is Item.Update with a missing value reported like load does.
func update[T any](item storage.Item[T], store storage.KVStore, fn func(T) (T, error)) (T, error) {
	v, err := item.Update(store, fn)
	if errors.Is(err, storage.ErrNotFound) {
		return v, ErrNotInitialized.Wrapf("no %s", item.Key())
	}
	return v, err
}

// spacePad extends msg with spaces up to the next multiple of blockSize.
func spacePad(msg []byte, blockSize int) []byte {
	surplus := len(msg) % blockSize
	if surplus == 0 {
		return msg
	}
	padding := make([]byte, blockSize-surplus)
	for i := range padding {
		padding[i] = ' '
	}
	return append(msg, padding...)
}
