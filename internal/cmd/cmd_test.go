package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/bistrokit/cli/internal/config"
)

// isolate points HOME at a temp dir and clears every BISTRO_* variable.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, name := range config.EnvVars {
		t.Setenv(name, "")
	}
	return home
}

// execute runs the root command with args and returns what it wrote to its
// output stream.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func reactAnswers() map[string]string {
	return map[string]string{
		"project-name":            "vitality",
		"project-organization":    "ekino",
		"project-acronym":         "v6y",
		"frontend-framework":      "react",
		"frontend-rendering-type": "csr",
	}
}
