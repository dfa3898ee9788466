package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bistrokit/cli/internal/cmdtypes"
	"github.com/bistrokit/cli/internal/testutil"
)

func TestCreateSkipInstall(t *testing.T) {
	isolate(t)
	root := t.TempDir()
	answers := testutil.WriteAnswers(t, t.TempDir(), reactAnswers())

	out, err := execute(t, "create", "--answers", answers, "--root", root, "--skip-install")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(root, "vitality", "package.json"))
	assert.FileExists(t, filepath.Join(root, "vitality", "vite.config.ts"))
	assert.NoFileExists(t, filepath.Join(root, "vitality", "pnpm-workspace.yaml"))
	assert.Contains(t, out, `Created project "vitality"`)
	assert.Contains(t, out, "skipped")
	assert.Regexp(t, `module\s+vitality\s+created`, out)
}

func TestCreateProjectNameArgument(t *testing.T) {
	isolate(t)
	root := t.TempDir()
	answers := testutil.WriteAnswers(t, t.TempDir(), reactAnswers())

	_, err := execute(t, "create", "dashboard", "-a", answers, "--root", root, "--skip-install")
	require.NoError(t, err)

	assert.DirExists(t, filepath.Join(root, "dashboard"))
	assert.NoDirExists(t, filepath.Join(root, "vitality"))
}

func TestCreateRejectsInvalidProjectNameArgument(t *testing.T) {
	isolate(t)
	answers := testutil.WriteAnswers(t, t.TempDir(), reactAnswers())

	_, err := execute(t, "create", "1st app", "-a", answers, "--dry-run")
	require.Error(t, err)

	var exitErr *cmdtypes.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, cmdtypes.ExitValidationError, exitErr.Code)
}

func TestCreateDryRun(t *testing.T) {
	isolate(t)
	root := t.TempDir()
	answers := testutil.WriteAnswers(t, t.TempDir(), reactAnswers())

	out, err := execute(t, "create", "--answers", answers, "--root", root, "--dry-run")
	require.NoError(t, err)

	assert.Empty(t, testutil.ListFiles(t, root))
	assert.Contains(t, out, "Dry run")
	assert.Contains(t, out, "Commands that would run:")
	assert.Contains(t, out, "pnpm --prefix="+root+"/vitality install")
}

func TestCreateRefusesNonEmptyDirectory(t *testing.T) {
	isolate(t)
	root := t.TempDir()
	testutil.WriteFile(t, filepath.Join(root, "vitality"), "README.md", "keep me")
	answers := testutil.WriteAnswers(t, t.TempDir(), reactAnswers())

	_, err := execute(t, "create", "-a", answers, "--root", root, "--skip-install")
	require.Error(t, err)

	var exitErr *cmdtypes.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, cmdtypes.ExitValidationError, exitErr.Code)

	_, statErr := os.Stat(filepath.Join(root, "vitality", "package.json"))
	assert.True(t, os.IsNotExist(statErr))

	_, err = execute(t, "create", "-a", answers, "--root", root, "--skip-install", "--force")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, "vitality", "package.json"))
}

func TestCreateInvalidAnswers(t *testing.T) {
	isolate(t)
	values := reactAnswers()
	values["frontend-styling-framework"] = "bootstrap"
	answers := testutil.WriteAnswers(t, t.TempDir(), values)

	_, err := execute(t, "create", "-a", answers, "--root", t.TempDir(), "--dry-run")
	require.Error(t, err)

	var exitErr *cmdtypes.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, cmdtypes.ExitValidationError, exitErr.Code)
	assert.True(t, exitErr.Printed)
}

func TestCreateMissingAnswersFile(t *testing.T) {
	isolate(t)

	_, err := execute(t, "create", "-a", filepath.Join(t.TempDir(), "nope.yaml"), "--dry-run")
	require.Error(t, err)

	var exitErr *cmdtypes.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, cmdtypes.ExitNotFound, exitErr.Code)
}

func TestCreateRejectsUnknownPackageManager(t *testing.T) {
	isolate(t)
	answers := testutil.WriteAnswers(t, t.TempDir(), reactAnswers())

	_, err := execute(t, "create", "-a", answers, "--package-manager", "bun", "--dry-run")
	require.Error(t, err)
}

func TestModuleNames(t *testing.T) {
	got := moduleNames(map[string]string{
		"a/package.json": "front",
		"b/package.json": "commons",
		"a/index.html":   "front",
	})
	assert.Equal(t, []string{"commons", "front"}, got)
}
