// Package answers reads and checks answer sets supplied without the
// interactive interview.
package answers

import (
	"encoding/json"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	oerrors "github.com/bistrokit/cli/internal/errors"
	"github.com/bistrokit/cli/internal/settings"
)

// Load reads a YAML or JSON answers file.
func Load(path string) (settings.Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oerrors.NewNotFoundError(
				fmt.Sprintf("answers file %s does not exist", path), path,
				"Check the --answers path.")
		}
		if os.IsPermission(err) {
			return nil, oerrors.NewPermissionError(
				fmt.Sprintf("cannot read answers file %s", path), path, "")
		}
		return nil, fmt.Errorf("reading answers file: %w", err)
	}
	return Parse(data, path)
}

// Parse decodes YAML or JSON answers. location names the source in errors.
func Parse(data []byte, location string) (settings.Answers, error) {
	raw, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("invalid answers document: %v", err), location, "", "")
	}

	var out settings.Answers
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, oerrors.NewValidationError(
			"answers must be a mapping of answer keys to values", location, "", "")
	}
	if out == nil {
		out = settings.Answers{}
	}
	return out, nil
}

// LoadAndValidate loads a file and checks it against the answers schema.
func LoadAndValidate(path string) (settings.Answers, error) {
	answers, err := Load(path)
	if err != nil {
		return nil, err
	}

	v, err := NewValidator()
	if err != nil {
		return nil, err
	}
	if err := v.Validate(answers); err != nil {
		return nil, err
	}
	return answers, nil
}
