package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	iconforge "github.com/menta2k/icon-forge"
	"github.com/menta2k/icon-forge/internal/cli"
)

func main() {
	root := cli.NewRootCmd()

	// Use fang for completions, manpages, --version and signal handling.
	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(iconforge.Version),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	); err != nil {
		os.Exit(1)
	}
}
