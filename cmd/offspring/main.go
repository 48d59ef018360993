package main

import (
	"fmt"
	"os"

	"github.com/factorykit/offspring/cmd/offspring/cmd"
)

func main() {
	rootCmd := cmd.RootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
