package wizard

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/bistrokit/cli/internal/settings"
)

// CanPrompt reports whether stdin and stdout are terminals.
func CanPrompt() bool {
	return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd())
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Run asks each question in order and returns the collected answers.
// Answers already present in seed are kept and their questions skipped.
// Questions whose condition is not met are skipped and left unanswered.
func Run(ctx context.Context, questions []Question, p Prompter, seed settings.Answers) (settings.Answers, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	answers := seed.Clone()
	if answers == nil {
		answers = settings.Answers{}
	}

	for _, q := range questions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, ok := answers[q.ID]; ok {
			continue
		}
		if q.Condition != nil && !q.Condition(answers) {
			continue
		}

		v, err := p.Ask(ctx, q)
		if err != nil {
			return nil, err
		}
		answers[q.ID] = v
	}
	return answers, nil
}

// HuhPrompter asks questions with one huh form per question.
type HuhPrompter struct {
	Theme *huh.Theme
}

// Ask implements Prompter.
func (h HuhPrompter) Ask(ctx context.Context, q Question) (any, error) {
	var (
		field  huh.Field
		text   string
		yes    bool
		result func() any
	)

	switch q.Type {
	case QuestionTypeConfirm:
		if b, ok := q.Default.(bool); ok {
			yes = b
		}
		field = huh.NewConfirm().Title(q.Title).Value(&yes)
		result = func() any { return yes }
	case QuestionTypeSelect:
		opts := make([]huh.Option[string], len(q.Options))
		for i, o := range q.Options {
			opts[i] = huh.NewOption(o.Label, o.Value)
		}
		if s, ok := q.Default.(string); ok {
			text = s
		}
		field = huh.NewSelect[string]().Title(q.Title).Options(opts...).Value(&text)
		result = func() any { return text }
	default:
		if s, ok := q.Default.(string); ok {
			text = s
		}
		in := huh.NewInput().Title(q.Title).Value(&text)
		if q.Validate != nil {
			in = in.Validate(q.Validate)
		}
		field = in
		result = func() any { return strings.TrimSpace(text) }
	}

	theme := h.Theme
	if theme == nil {
		theme = huh.ThemeCharm()
	}
	form := huh.NewForm(huh.NewGroup(field)).WithTheme(theme)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrCancelled
		}
		return nil, fmt.Errorf("wizard error: %w", err)
	}
	return result(), nil
}

func required(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}
