// Package contract is the offspring contract: a counter owned by one
// address, created by a factory contract that it reports back to.
package contract

import (
	"bytes"
	"math"

	errorsmod "cosmossdk.io/errors"
	json "github.com/goccy/go-json"

	"github.com/factorykit/offspring/internal/storage"
	"github.com/factorykit/offspring/internal/validate"
	"github.com/factorykit/offspring/types"
)

// Deps holds everything a contract call may touch outside its message.
type Deps struct {
	Storage storage.KVStore
	API     types.GoAPI
	Querier types.Querier
}

// Instantiate validates msg, stores the offspring's configuration and
// registers the new offspring with its factory.
func Instantiate(deps Deps, env types.Env, _ types.MessageInfo, msg []byte) (*types.Response, error) {
	cfg, err := validate.Validate(deps.API, msg)
	if err != nil {
		return nil, err
	}
	if env.Contract.Address == "" {
		return nil, ErrInvalidRequest.Wrap("env has no contract address")
	}
	if active.Exists(deps.Storage) {
		return nil, ErrInvalidRequest.Wrap("contract already instantiated")
	}

	factory := cfg.Msg().Factory
	if err := factoryInfo.Save(deps.Storage, factory); err != nil {
		return nil, err
	}
	if err := owner.Save(deps.Storage, cfg.Owner.String()); err != nil {
		return nil, err
	}
	if err := contractAddr.Save(deps.Storage, env.Contract.Address); err != nil {
		return nil, err
	}
	if err := active.Save(deps.Storage, true); err != nil {
		return nil, err
	}
	err = state.Save(deps.Storage, types.State{
		Label:       cfg.Label,
		Description: cfg.Description,
		Count:       cfg.Count,
	})
	if err != nil {
		return nil, err
	}

	register := types.FactoryExecuteMsg{
		RegisterOffspring: &types.RegisterOffspring{
			Owner: cfg.Owner.String(),
			Offspring: types.OffspringInfo{
				Label:    cfg.Label,
				Owner:    cfg.Owner.String(),
				Address:  env.Contract.Address,
				CodeHash: env.Contract.CodeHash,
			},
		},
	}
	callback, err := factoryCallback(factory, register)
	if err != nil {
		return nil, err
	}

	return &types.Response{
		Messages: types.Array[types.CosmosMsg]{callback},
		Attributes: types.Array[types.EventAttribute]{
			{Key: "action", Value: "instantiate"},
			{Key: "owner", Value: cfg.Owner.String()},
		},
	}, nil
}

// Execute runs one ExecuteMsg.
func Execute(deps Deps, _ types.Env, info types.MessageInfo, msg []byte) (*types.Response, error) {
	var em types.ExecuteMsg
	if err := json.Unmarshal(msg, &em); err != nil {
		return nil, errorsmod.Wrap(ErrInvalidRequest, err.Error())
	}
	if n := countSet(em.Increment != nil, em.Reset != nil, em.Deactivate != nil); n != 1 {
		return nil, ErrInvalidRequest.Wrapf("expected exactly one execute variant, got %d", n)
	}

	switch {
	case em.Increment != nil:
		return tryIncrement(deps)
	case em.Reset != nil:
		return tryReset(deps, info, em.Reset.Count)
	default:
		return tryDeactivate(deps, info)
	}
}

// Query runs one QueryMsg and returns the JSON answer.
func Query(deps Deps, _ types.Env, msg []byte) ([]byte, error) {
	var qm types.QueryMsg
	if err := json.Unmarshal(msg, &qm); err != nil {
		return nil, errorsmod.Wrap(ErrInvalidRequest, err.Error())
	}
	if qm.GetCount == nil {
		return nil, ErrInvalidRequest.Wrap("expected a get_count query")
	}

	answer, err := queryCount(deps, qm.GetCount.Address, qm.GetCount.ViewingKey)
	if err != nil {
		return nil, err
	}
	return json.Marshal(answer)
}

// Anyone may increment.
func tryIncrement(deps Deps) (*types.Response, error) {
	if err := enforceActive(deps.Storage); err != nil {
		return nil, err
	}
	_, err := update(state, deps.Storage, func(st types.State) (types.State, error) {
		if st.Count == math.MaxInt32 {
			return st, ErrOverflow
		}
		st.Count++
		return st, nil
	})
	if err != nil {
		return nil, err
	}
	return &types.Response{}, nil
}

func tryReset(deps Deps, info types.MessageInfo, count int32) (*types.Response, error) {
	if err := enforceActive(deps.Storage); err != nil {
		return nil, err
	}
	if err := enforceOwner(deps.Storage, info.Sender); err != nil {
		return nil, err
	}
	_, err := update(state, deps.Storage, func(st types.State) (types.State, error) {
		st.Count = count
		return st, nil
	})
	if err != nil {
		return nil, err
	}
	return &types.Response{}, nil
}

// tryDeactivate deactivates the offspring and lets the factory know.
func tryDeactivate(deps Deps, info types.MessageInfo) (*types.Response, error) {
	if err := enforceActive(deps.Storage); err != nil {
		return nil, err
	}
	if err := enforceOwner(deps.Storage, info.Sender); err != nil {
		return nil, err
	}
	if err := active.Save(deps.Storage, false); err != nil {
		return nil, err
	}

	factory, err := load(factoryInfo, deps.Storage)
	if err != nil {
		return nil, err
	}
	callback, err := factoryCallback(factory, types.FactoryExecuteMsg{
		DeactivateOffspring: &types.DeactivateOffspring{Owner: info.Sender},
	})
	if err != nil {
		return nil, err
	}
	return &types.Response{
		Messages: types.Array[types.CosmosMsg]{callback},
		Attributes: types.Array[types.EventAttribute]{
			{Key: "action", Value: "deactivate"},
		},
	}, nil
}

// queryCount answers only the owner, and only with a viewing key the
// factory accepts. Both failures return the same ErrPermission.
func queryCount(deps Deps, address types.HumanAddress, viewingKey string) (types.QueryAnswer, error) {
	addr, err := deps.API.AddrValidate(address)
	if err != nil {
		return types.QueryAnswer{}, err
	}
	ownerHuman, err := load(owner, deps.Storage)
	if err != nil {
		return types.QueryAnswer{}, err
	}
	if !addr.Equals(ownerHuman) {
		return types.QueryAnswer{}, ErrPermission
	}
	if err := enforceValidViewingKey(deps, addr, viewingKey); err != nil {
		return types.QueryAnswer{}, err
	}
	st, err := load(state, deps.Storage)
	if err != nil {
		return types.QueryAnswer{}, err
	}
	return types.QueryAnswer{CountResponse: &types.CountResponse{Count: st.Count}}, nil
}

// enforceValidViewingKey asks the factory whether viewingKey belongs to addr.
func enforceValidViewingKey(deps Deps, addr types.Addr, viewingKey string) error {
	if deps.Querier == nil {
		return ErrFactoryQuery.Wrap("no querier")
	}
	factory, err := load(factoryInfo, deps.Storage)
	if err != nil {
		return err
	}
	query, err := json.Marshal(types.FactoryQueryMsg{
		IsKeyValid: &types.IsKeyValidQuery{Address: addr.String(), ViewingKey: viewingKey},
	})
	if err != nil {
		return err
	}
	res, err := deps.Querier.Query(types.QueryRequest{
		Wasm: &types.WasmQuery{
			Smart: &types.SmartQuery{
				ContractAddr: factory.Address,
				CodeHash:     factory.CodeHash,
				Msg:          spacePad(query, BlockSize),
			},
		},
	})
	if err != nil {
		return errorsmod.Wrap(ErrFactoryQuery, err.Error())
	}
	var answer types.IsKeyValidWrapper
	if err := json.Unmarshal(bytes.TrimRight(res, " "), &answer); err != nil {
		return errorsmod.Wrap(ErrFactoryQuery, err.Error())
	}
	if !answer.IsKeyValid.IsValid {
		return ErrPermission
	}
	return nil
}

func enforceActive(store storage.KVStore) error {
	isActive, err := load(active, store)
	if err != nil {
		return err
	}
	if !isActive {
		return ErrInactive
	}
	return nil
}

func enforceOwner(store storage.KVStore, sender types.HumanAddress) error {
	ownerHuman, err := load(owner, store)
	if err != nil {
		return err
	}
	if sender != ownerHuman {
		return ErrUnauthorized
	}
	return nil
}

// factoryCallback wraps msg in a padded WasmMsg.Execute to the factory.
func factoryCallback(factory types.RawContractInfo, msg types.FactoryExecuteMsg) (types.CosmosMsg, error) {
	bz, err := json.Marshal(msg)
	if err != nil {
		return types.CosmosMsg{}, err
	}
	return types.CosmosMsg{
		Wasm: &types.WasmMsg{
			Execute: &types.WasmExecuteMsg{
				ContractAddr: factory.Address,
				CodeHash:     factory.CodeHash,
				Msg:          spacePad(bz, BlockSize),
				Funds:        types.Array[types.Coin]{},
			},
		},
	}, nil
}

func countSet(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}
