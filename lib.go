package offspring

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/factorykit/offspring/internal/contract"
	"github.com/factorykit/offspring/internal/metrics"
	"github.com/factorykit/offspring/internal/storage"
	"github.com/factorykit/offspring/internal/validate"
	"github.com/factorykit/offspring/types"
)

// KVStore is a reference to the storage of one offspring instance
type KVStore = storage.KVStore

// GoAPI is the set of host callbacks, e.g. the address rule
type GoAPI = types.GoAPI

// Querier lets the offspring make read-only queries on its factory
type Querier = types.Querier

// VM is the main entry point to this library.
// It hosts offspring contracts for one chain (one address rule); create an
// instance and call it for all offspring related actions. Each call gets the
// store of the instance it acts on.
type VM struct {
	api       GoAPI
	validator *validate.Validator
	logger    zerolog.Logger
	metrics   *metrics.Metrics
}

type Option func(*VM)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(vm *VM) {
		vm.logger = logger
	}
}

// WithMetrics records every call on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(vm *VM) {
		vm.metrics = m
	}
}

// NewVM creates a new VM.
//
// `api` carries the address rule of the hosting chain. Every address in
// an instantiate message or query is checked with it.
func NewVM(api GoAPI, opts ...Option) *VM {
	vm := &VM{
		api:       api,
		validator: validate.New(api),
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(vm)
	}
	return vm
}

// ValidateInstantiateMsg checks an instantiate message without touching any
// storage. It returns the record Instantiate would store.
func (vm *VM) ValidateInstantiateMsg(msg []byte) (types.Config, error) {
	start := time.Now()
	cfg, err := vm.validator.Validate(msg)
	vm.done(metrics.EntryValidate, start, err)
	return cfg, err
}

// Instantiate will create a new offspring on the given store.
// The returned response carries the callback that registers the offspring
// with its factory; the caller must dispatch it.
//
// Storage should be set with a KVStore that only this instance can access.
func (vm *VM) Instantiate(
	env types.Env,
	info types.MessageInfo,
	initMsg []byte,
	store KVStore,
	querier Querier,
) (*types.Response, error) {
	start := time.Now()
	res, err := contract.Instantiate(vm.deps(store, querier), env, info, initMsg)
	vm.done(metrics.EntryInstantiate, start, err)
	return res, err
}

// Execute calls a given offspring.
//
// The caller is responsible for passing the correct `store` (which must have been initialized exactly once),
// and setting the env with relevent info on this instance (address, code hash, etc)
func (vm *VM) Execute(
	env types.Env,
	info types.MessageInfo,
	executeMsg []byte,
	store KVStore,
	querier Querier,
) (*types.Response, error) {
	start := time.Now()
	res, err := contract.Execute(vm.deps(store, querier), env, info, executeMsg)
	vm.done(metrics.EntryExecute, start, err)
	return res, err
}

// Query allows a client to execute an offspring query. The result is
// json-encoded data to return to the client.
func (vm *VM) Query(
	env types.Env,
	queryMsg []byte,
	store KVStore,
	querier Querier,
) ([]byte, error) {
	start := time.Now()
	res, err := contract.Query(vm.deps(store, querier), env, queryMsg)
	vm.done(metrics.EntryQuery, start, err)
	return res, err
}

// Info returns what an offspring instance has stored about itself.
func (vm *VM) Info(store KVStore) (contract.Info, error) {
	return contract.LoadInfo(store, vm.api)
}

func (vm *VM) deps(store KVStore, querier Querier) contract.Deps {
	return contract.Deps{
		Storage: store,
		API:     vm.api,
		Querier: querier,
	}
}

func (vm *VM) done(entryPoint string, start time.Time, err error) {
	took := time.Since(start)
	vm.metrics.ObserveCall(entryPoint, took, err)

	if err == nil {
		vm.logger.Debug().Str("entry_point", entryPoint).Dur("took", took).Msg("call succeeded")
		return
	}
	kind := "contract"
	if ve := types.ToValidationError(err); ve != nil {
		kind = ve.Kind()
		if entryPoint == metrics.EntryValidate || entryPoint == metrics.EntryInstantiate {
			vm.metrics.AddValidationFailure(kind)
		}
	}
	vm.logger.Warn().Err(err).Str("entry_point", entryPoint).Str("kind", kind).Msg("call failed")
}
