// Where: cli-rt/cmd/cli-rt/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/cli-rt/cli-rt/internal/command"
	"github.com/cli-rt/cli-rt/internal/infra/config"
	"github.com/cli-rt/cli-rt/internal/infra/interaction"
	"github.com/cli-rt/cli-rt/internal/infra/ui"
)

var (
	getwd          = os.Getwd
	userConfigPath = config.UserConfigPath
	isTerminal     = interaction.IsTerminal
)

// buildDependencies wires the terminal-facing pieces. Spinners and emoji
// are only used when stdout is a terminal; prompts follow stdin.
func buildDependencies() command.Dependencies {
	interactive := isTerminal(os.Stdout)

	deps := command.Dependencies{
		Out:      os.Stdout,
		ErrOut:   os.Stderr,
		Prompter: interaction.NewPrompter(os.Stdin, os.Stderr),
		Getwd:    getwd,
		Getenv:   os.Getenv,
		// Resolved lazily so CLI_RT_CONFIG from .env is honored.
		UserConfigPath: userConfigPath,
		EmojiEnabled:   interactive,
	}
	if interactive {
		deps.Progress = ui.SpinnerProgress{}
	} else {
		deps.Progress = ui.LineProgress{Out: os.Stdout}
	}
	return deps
}
