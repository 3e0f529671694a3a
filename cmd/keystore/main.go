package main

import (
	"os"

	"github.com/bankofai/agent-wallet/cmd/keystore/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
