package main

import (
	"fmt"
	"os"

	"github.com/factorykit/offspring"
	"github.com/factorykit/offspring/internal/address"
	"github.com/factorykit/offspring/internal/storage"
	"github.com/factorykit/offspring/types"
)

const (
	ContractAddr = "secret1offspring"
	FactoryAddr  = "secret1factory"
)

// This is just a demo running one instantiate message through an in-memory offspring
func main() {
	file := os.Args[1]
	fmt.Printf("Running %s...\n", file)
	bz, err := os.ReadFile(file)
	if err != nil {
		panic(err)
	}
	fmt.Println("Loaded!")

	vm := offspring.NewVM(types.GoAPI{ValidateAddress: address.Basic()})
	cfg, err := vm.ValidateInstantiateMsg(bz)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Owner: %s, factory: %s\n", cfg.Owner, cfg.Factory.Address)

	store := storage.NewMemStore()
	env := types.Env{Contract: types.EnvContractInfo{Address: ContractAddr}}
	res, err := vm.Instantiate(env, types.MessageInfo{Sender: FactoryAddr}, bz, store, nil)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Got %d callback(s) for the factory\n", len(res.Messages))

	fmt.Println("finished")
}
