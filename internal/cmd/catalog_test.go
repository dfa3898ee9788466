package cmd

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bistrokit/cli/internal/cmdtypes"
	"github.com/bistrokit/cli/internal/settings"
)

func TestCatalogEmbeddedCheck(t *testing.T) {
	isolate(t)

	out, err := execute(t, "catalog", "--check")
	require.NoError(t, err)

	assert.Contains(t, out, "templates/react/base-project-structure")
	assert.Contains(t, out, "templates/angular/base-ssr-structure")
	assert.Contains(t, out, "templates/libs/ui/antd/csr")
	assert.NotContains(t, out, "missing")
	assert.Contains(t, out, "ok (")
}

func TestCatalogJSON(t *testing.T) {
	isolate(t)

	out, err := execute(t, "catalog", "-o", "json")
	require.NoError(t, err)

	var rows []catalogRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))

	frontends := len(settings.Frameworks) * len(settings.RenderingTypes)
	libs := len(settings.Frameworks) * len(settings.LibKinds)
	kits := len(settings.UILibraries) * 2
	assert.Len(t, rows, frontends+libs+kits)
	assert.Equal(t, "frontend", rows[0].Kind)
	assert.Equal(t, "react", rows[0].Framework)
	assert.Nil(t, rows[0].Present)
}

func TestCatalogCheckMissingTemplates(t *testing.T) {
	isolate(t)

	out, err := execute(t, "catalog", "--templates", t.TempDir(), "--check")
	require.Error(t, err)
	assert.Contains(t, out, "missing")

	var exitErr *cmdtypes.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, cmdtypes.ExitNotFound, exitErr.Code)
}
