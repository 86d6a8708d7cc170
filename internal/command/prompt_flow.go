// Where: cli-rt/internal/command/prompt_flow.go
// What: Fixed-order prompt sequence.
// Why: Ask only the questions whose answers the flags left open.
package command

import (
	"context"
	"strings"

	"github.com/cli-rt/cli-rt/internal/domain/project"
	"github.com/cli-rt/cli-rt/internal/infra/interaction"
	"github.com/cli-rt/cli-rt/internal/meta"
)

const (
	templatePromptTitle = "What template do you want to use?"
	firebasePromptTitle = "Do you want to install firebase?"
	namePromptTitle     = "What's the name of your project?"
)

type promptStep int

const (
	stepTemplate promptStep = iota
	stepFirebase
	stepName
	stepDone
)

// Answers holds the values the prompt sequence settles.
type Answers struct {
	Template string
	Firebase bool
	Name     string
}

// answersFromOptions seeds Answers with whatever the flags supplied.
func answersFromOptions(opts project.CliOptions) Answers {
	return Answers{
		Template: strings.TrimSpace(opts.Template),
		Firebase: opts.Firebase,
		Name:     strings.TrimSpace(opts.Name),
	}
}

// known reports whether step already has an answer. Firebase only counts
// as known once requested; an absent flag still gets asked.
func (a Answers) known(step promptStep) bool {
	switch step {
	case stepTemplate:
		return a.Template != ""
	case stepFirebase:
		return a.Firebase
	case stepName:
		return a.Name != ""
	default:
		return true
	}
}

// collectAnswers walks template → firebase → name, prompting for each
// step that is not already known.
func collectAnswers(
	ctx context.Context,
	prompter interaction.Prompter,
	labels []string,
	opts project.CliOptions,
) (Answers, error) {
	answers := answersFromOptions(opts)
	for step := stepTemplate; step != stepDone; step++ {
		if answers.known(step) {
			continue
		}
		switch step {
		case stepTemplate:
			choice, err := prompter.Select(ctx, templatePromptTitle, labels, meta.DefaultTemplateLabel)
			if err != nil {
				return Answers{}, err
			}
			answers.Template = choice
		case stepFirebase:
			install, err := prompter.Confirm(ctx, firebasePromptTitle, false)
			if err != nil {
				return Answers{}, err
			}
			answers.Firebase = install
		case stepName:
			name, err := prompter.Input(ctx, namePromptTitle, meta.DefaultProjectName)
			if err != nil {
				return Answers{}, err
			}
			answers.Name = strings.TrimSpace(name)
			if answers.Name == "" {
				answers.Name = meta.DefaultProjectName
			}
		}
	}
	return answers, nil
}
