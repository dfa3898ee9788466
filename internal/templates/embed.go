// Package templates provides the embedded project templates, placeholder
// rendering and template file listing.
package templates

import (
	"embed"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

//go:embed all:templates
var embedded embed.FS

// Root is the catalog root of the embedded templates.
const Root = "templates"

// Files shared by every project, relative to the template root.
const (
	RootPackageJSON   = "root/package.json"
	RootWorkspaceYAML = "root/pnpm-workspace.yaml"
	RootGitIgnore     = "root/.gitignore"
)

// FS returns the embedded templates as a read-only afero filesystem.
func FS() afero.Fs {
	return afero.FromIOFS{FS: embedded}
}

// Source returns the filesystem and catalog root to read templates from. An
// empty templateRoot selects the embedded templates; any other value reads
// from disk.
func Source(templateRoot string) (afero.Fs, string) {
	if templateRoot == "" {
		return FS(), Root
	}
	return afero.NewReadOnlyFs(afero.NewOsFs()), templateRoot
}

// RootFile returns the path of a shared root file below templateRoot.
func RootFile(templateRoot, name string) string {
	return strings.TrimSuffix(templateRoot, "/") + "/" + name
}

// ListFiles returns the files below dir, relative to dir and sorted.
func ListFiles(fsys afero.Fs, dir string) ([]string, error) {
	var files []string

	err := afero.Walk(fsys, dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(path.Clean(toSlash(p)), path.Clean(toSlash(dir))+"/")
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing template %s: %w", dir, err)
	}

	sort.Strings(files)
	return files, nil
}

func toSlash(p string) string {
	return strings.ReplaceAll(p, string(os.PathSeparator), "/")
}
