package answers

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	oerrors "github.com/bistrokit/cli/internal/errors"
	"github.com/bistrokit/cli/internal/settings"
)

//go:embed schema.cue
var schemaCUE []byte

// FieldError is a single rejected answer.
type FieldError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FieldErrors collects every rejected answer of an answer set.
type FieldErrors []FieldError

// Error implements the error interface.
func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("answers validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Unwrap makes FieldErrors match oerrors.ErrValidation.
func (e FieldErrors) Unwrap() error { return oerrors.ErrValidation }

// Validator checks answer sets against the embedded #Answers schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator compiles the embedded schema.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	root := ctx.CompileBytes(schemaCUE, cue.Filename("schema.cue"))
	if root.Err() != nil {
		return nil, fmt.Errorf("compiling answers schema: %w", root.Err())
	}

	schema := root.LookupPath(cue.ParsePath("#Answers"))
	if !schema.Exists() {
		return nil, fmt.Errorf("answers schema has no #Answers definition")
	}

	return &Validator{ctx: ctx, schema: schema}, nil
}

// Validate reports unknown keys and illegal values. Missing answers are
// accepted; required-ness is checked by the resolver.
func (v *Validator) Validate(answers settings.Answers) error {
	keys := make([]string, 0, len(answers))
	for k := range answers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs FieldErrors
	for _, key := range keys {
		if !v.schema.Allows(cue.Str(key)) {
			errs = append(errs, FieldError{Field: key, Message: "unknown answer"})
			continue
		}

		field := v.schema.LookupPath(cue.MakePath(cue.Str(key).Optional()))
		if !field.Exists() {
			continue
		}

		unified := field.Unify(v.ctx.Encode(answers[key]))
		if err := unified.Validate(cue.Concrete(true)); err != nil {
			errs = append(errs, FieldError{Field: key, Message: describe(answers[key], err)})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func describe(value any, err error) string {
	var msgs []string
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		msgs = append(msgs, fmt.Sprintf(format, args...))
	}
	if len(msgs) == 0 {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("%v is not allowed (%s)", value, strings.Join(msgs, "; "))
}
