// main is the entry point for the sprintcast CLI.
package main

import (
	"github.com/sprintcast/sprintcast/cmd"
	"github.com/sprintcast/sprintcast/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("sprintcast exited", err)
	}
}
