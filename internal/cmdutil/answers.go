package cmdutil

import (
	"context"

	"github.com/bistrokit/cli/internal/answers"
	oerrors "github.com/bistrokit/cli/internal/errors"
	"github.com/bistrokit/cli/internal/output"
	"github.com/bistrokit/cli/internal/settings"
	"github.com/bistrokit/cli/internal/templates"
	"github.com/bistrokit/cli/internal/wizard"
)

// AnswerSource describes where an answer set comes from.
type AnswerSource struct {
	// File is an answers file. When empty the interview is run.
	File string

	// ProjectName overrides the project-name answer.
	ProjectName string

	// Interactive allows running the interview.
	Interactive bool

	// Prompter asks the interview questions. Defaults to huh forms.
	Prompter wizard.Prompter
}

// LoadAnswers returns the answer set from the file or the interview.
func LoadAnswers(ctx context.Context, src AnswerSource) (settings.Answers, error) {
	seed := settings.Answers{}
	if src.ProjectName != "" {
		if err := templates.ValidateProjectName(src.ProjectName); err != nil {
			return nil, oerrors.NewValidationError(err.Error(), "", settings.KeyProjectName, "")
		}
		seed[settings.KeyProjectName] = src.ProjectName
	}

	if src.File != "" {
		loaded, err := answers.LoadAndValidate(src.File)
		if err != nil {
			return nil, err
		}
		for k, v := range seed {
			if old := loaded.String(k); old != "" && old != seed.String(k) {
				output.Warn("argument overrides answers file", "key", k, "file", old, "value", seed.String(k))
			}
			loaded[k] = v
		}
		output.Debug("answers loaded", "file", src.File, "keys", len(loaded))
		return loaded, nil
	}

	if !src.Interactive {
		return nil, oerrors.NewValidationError(
			"no answers provided",
			"", "",
			"Pass --answers with a YAML or JSON answers file, or run in a terminal.")
	}

	p := src.Prompter
	if p == nil {
		p = wizard.HuhPrompter{}
	}
	return wizard.Run(ctx, wizard.DefaultQuestions(), p, seed)
}
