package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bistrokit/cli/internal/settings"
)

func TestEmbeddedCatalogIsComplete(t *testing.T) {
	fsys := FS()
	catalog := settings.NewCatalog(Root)

	for _, entry := range catalog.Entries() {
		t.Run(entry.Path, func(t *testing.T) {
			files, err := ListFiles(fsys, entry.Path)
			require.NoError(t, err)
			assert.Contains(t, files, "package.json")
		})
	}

	for _, fw := range settings.Frameworks {
		for _, kind := range settings.LibKinds {
			tmpl, err := catalog.LibTemplate(fw, kind)
			require.NoError(t, err)
			ok, err := afero.Exists(fsys, tmpl.PackageJSONPath)
			require.NoError(t, err)
			assert.True(t, ok, tmpl.PackageJSONPath)
			if tmpl.HasBundlerConfig() {
				ok, err = afero.Exists(fsys, tmpl.BundlerConfigPath)
				require.NoError(t, err)
				assert.True(t, ok, tmpl.BundlerConfigPath)
			}
		}
	}
}

func TestEmbeddedUILibraries(t *testing.T) {
	fsys := FS()
	catalog := settings.NewCatalog(Root)

	for _, lib := range settings.UILibraries {
		for _, rt := range settings.RenderingTypes {
			ui, err := catalog.UILibrary(lib, rt)
			require.NoError(t, err)

			files, err := ListFiles(fsys, ui.TemplateFilesPath)
			require.NoError(t, err)
			assert.Contains(t, files, "AppThemeProvider.tsx", ui.TemplateFilesPath)
		}
	}
}

func TestEmbeddedRootFiles(t *testing.T) {
	fsys := FS()

	for _, name := range []string{RootPackageJSON, RootWorkspaceYAML, RootGitIgnore} {
		ok, err := afero.Exists(fsys, RootFile(Root, name))
		require.NoError(t, err)
		assert.True(t, ok, name)
	}
}

func TestListFiles(t *testing.T) {
	files, err := ListFiles(FS(), "templates/react/base-project-structure")
	require.NoError(t, err)

	assert.Contains(t, files, "package.json")
	assert.Contains(t, files, "vite.config.ts")
	assert.Contains(t, files, "src/main.tsx")
	assert.Contains(t, files, "src/infrastructure/providers/theme/.gitkeep")
	assert.IsIncreasing(t, files)

	_, err = ListFiles(FS(), "templates/vue/base-project-structure")
	assert.Error(t, err)
}

func TestSourceFromDisk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "react"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "react", "package.json"), []byte("{}"), 0o644))

	fsys, root := Source(dir)
	assert.Equal(t, dir, root)

	files, err := ListFiles(fsys, filepath.Join(root, "react"))
	require.NoError(t, err)
	assert.Equal(t, []string{"package.json"}, files)

	err = afero.WriteFile(fsys, filepath.Join(dir, "x"), []byte("x"), 0o644)
	assert.Error(t, err, "disk templates are read-only")

	fsys, root = Source("")
	assert.Equal(t, Root, root)
	assert.NotNil(t, fsys)
}

func TestListFilesUncleanRoot(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "tpl", "react", "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tpl", "react", "package.json"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tpl", "react", "src", "main.tsx"), nil, 0o644))
	t.Chdir(dir)

	fsys, root := Source("./tpl/")
	for _, d := range []string{root + "react", "./tpl/react/", "tpl//react"} {
		files, err := ListFiles(fsys, d)
		require.NoError(t, err, d)
		assert.Equal(t, []string{"package.json", "src/main.tsx"}, files, d)
	}
}

func TestRegistry(t *testing.T) {
	assert.NotEmpty(t, Describe("frontend", "csr"))
	assert.Empty(t, Describe("frontend", "isr"))

	tmpl, ok := Get("library", "storybook")
	require.True(t, ok)
	assert.Equal(t, "storybook", tmpl.Variant)
}
