// Package wizard runs the interactive interview that produces an answer set.
package wizard

import (
	"context"
	"errors"

	"github.com/bistrokit/cli/internal/settings"
)

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeInput is a free text question.
	QuestionTypeInput QuestionType = iota
	// QuestionTypeConfirm is a yes/no question.
	QuestionTypeConfirm
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect
)

// Question defines a single wizard question. ID is the answer key.
type Question struct {
	ID        string
	Type      QuestionType
	Title     string
	Options   []Option
	Default   any
	Validate  func(string) error
	Condition func(settings.Answers) bool
}

// Option represents a selectable option.
type Option struct {
	Label string
	Value string
}

// Prompter asks one question and returns its answer: a string for input and
// select questions, a bool for confirm questions.
type Prompter interface {
	Ask(ctx context.Context, q Question) (any, error)
}

var (
	// ErrCancelled is returned when the user aborts the interview.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
)
