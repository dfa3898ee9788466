// Package structure creates a project's directory tree from templates.
package structure

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/spf13/afero"

	oerrors "github.com/bistrokit/cli/internal/errors"
	"github.com/bistrokit/cli/internal/output"
	"github.com/bistrokit/cli/internal/settings"
	"github.com/bistrokit/cli/internal/templates"
)

// Options configures a Materializer.
type Options struct {
	// Source holds the templates. Defaults to the embedded templates.
	Source afero.Fs

	// TemplateRoot is the catalog root inside Source.
	TemplateRoot string

	// Target receives the project. Defaults to the OS filesystem.
	Target afero.Fs

	// Force allows writing into a non-empty project directory.
	Force bool
}

// Materializer copies templates and rewrites placeholders for a resolved
// project configuration.
type Materializer struct {
	ops     FileOps
	catalog *settings.Catalog
	root    string
	force   bool
}

// Result lists what was written.
type Result struct {
	// ProjectPath is the project directory.
	ProjectPath string

	// Files are the written files, relative to ProjectPath and sorted.
	Files []string

	// Modules maps each written file to the module it belongs to.
	Modules map[string]string
}

// New creates a Materializer.
func New(opts Options) *Materializer {
	src, root := opts.Source, opts.TemplateRoot
	if src == nil {
		src, root = templates.Source(root)
	}
	if root == "" {
		root = templates.Root
	}
	dst := opts.Target
	if dst == nil {
		dst = afero.NewOsFs()
	}
	return &Materializer{
		ops:     FileOps{Src: src, Dst: dst},
		catalog: settings.NewCatalog(root),
		root:    root,
		force:   opts.Force,
	}
}

// Catalog returns the catalog the materializer reads templates from.
func (m *Materializer) Catalog() *settings.Catalog {
	return m.catalog
}

// Ops returns the file operations bound to the materializer's filesystems.
func (m *Materializer) Ops() FileOps {
	return m.ops
}

// Materialize writes the common structure and, for monorepos, the workspace
// files and every enabled shared module. Catalog lookups happen before the
// first write so an unknown framework leaves the target untouched.
func (m *Materializer) Materialize(ctx context.Context, cfg *settings.ProjectConfiguration) (*Result, error) {
	plan, err := m.plan(cfg)
	if err != nil {
		return nil, err
	}

	if err := m.CheckTarget(cfg.ProjectPath); err != nil {
		return nil, err
	}

	res := &Result{ProjectPath: cfg.ProjectPath, Modules: make(map[string]string)}

	if err := m.ops.EnsureDir(cfg.ProjectRootPath); err != nil {
		return nil, permissionAware(err, cfg.ProjectRootPath)
	}

	for _, step := range plan {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		output.ModuleLogger(step.module).Debug("creating module", "path", step.targetPath)
		files, err := step.run(m)
		for _, f := range files {
			rel := relTo(cfg.ProjectPath, f)
			res.Files = append(res.Files, rel)
			res.Modules[rel] = step.module
		}
		if err != nil {
			return nil, permissionAware(err, step.targetPath)
		}
	}

	res.Files = dedupe(res.Files)
	return res, nil
}

// CheckTarget refuses a non-empty project directory unless forced.
func (m *Materializer) CheckTarget(dir string) error {
	info, err := m.ops.Dst.Stat(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking target directory: %w", err)
	}

	if !info.IsDir() {
		return oerrors.NewValidationError(
			fmt.Sprintf("%s is not a directory", dir), dir, "", "Choose another project name")
	}

	empty, err := afero.IsEmpty(m.ops.Dst, dir)
	if err != nil {
		return fmt.Errorf("reading target directory: %w", err)
	}
	if !empty && !m.force {
		return oerrors.NewValidationError(
			fmt.Sprintf("directory %s is not empty", dir), dir, "",
			"Use --force to write into the existing directory")
	}
	return nil
}

type step struct {
	module     string
	targetPath string
	run        func(m *Materializer) ([]string, error)
}

// plan resolves every template location up front.
func (m *Materializer) plan(cfg *settings.ProjectConfiguration) ([]step, error) {
	frontend, err := m.catalog.FrontendTemplate(cfg.FrontendFramework, cfg.FrontendRenderingType)
	if err != nil {
		return nil, err
	}

	steps := []step{{
		module:     cfg.FrontendProjectName,
		targetPath: cfg.FrontendProjectPath,
		run: func(m *Materializer) ([]string, error) {
			return m.module(moduleSpec{
				sourceDir:         frontend.SourceDirPath,
				sourcePackageJSON: settings.JoinPath(frontend.SourceDirPath, settings.PackageJSONFile),
				targetDir:         cfg.FrontendProjectPath,
				packageJSONPath:   cfg.FrontendPackageJSONPath,
				bundlerConfigPath: cfg.FrontendBundlerConfigPath,
				replacements:      moduleReplacements(cfg, cfg.FrontendPackageName()),
			})
		},
	}, {
		module:     "root",
		targetPath: cfg.ProjectPath,
		run: func(m *Materializer) ([]string, error) {
			dst := settings.JoinPath(cfg.ProjectPath, ".gitignore")
			return m.ops.Copy(dst, templates.RootFile(m.root, templates.RootGitIgnore))
		},
	}}

	if !cfg.IsMonorepoProject {
		return steps, nil
	}

	steps = append(steps, step{
		module:     "root",
		targetPath: cfg.ProjectPath,
		run: func(m *Materializer) ([]string, error) {
			return m.workspace(cfg)
		},
	})

	for _, kind := range cfg.EnabledModules() {
		tmpl, err := m.catalog.LibTemplate(cfg.FrontendFramework, kind)
		if err != nil {
			return nil, err
		}
		mod := cfg.SharedModule(kind)
		steps = append(steps, step{
			module:     mod.ProjectName,
			targetPath: mod.ProjectPath,
			run: func(m *Materializer) ([]string, error) {
				return m.module(moduleSpec{
					sourceDir:         tmpl.SourceDirPath,
					sourcePackageJSON: tmpl.PackageJSONPath,
					targetDir:         mod.ProjectPath,
					packageJSONPath:   mod.PackageJSONPath,
					bundlerConfigPath: mod.BundlerConfigPath,
					replacements:      moduleReplacements(cfg, settings.PackageName(cfg.ProjectAcronym, mod.ProjectName)),
				})
			},
		})
	}

	return steps, nil
}

type moduleSpec struct {
	sourceDir         string
	sourcePackageJSON string
	targetDir         string
	packageJSONPath   string
	bundlerConfigPath string
	replacements      map[string]string
}

// module copies a template directory and rewrites its package descriptor
// and, when the template ships one, its bundler config.
func (m *Materializer) module(spec moduleSpec) ([]string, error) {
	files, err := m.ops.Copy(spec.targetDir, spec.sourceDir)
	if err != nil {
		return files, err
	}

	renderer := templates.NewRenderer(spec.replacements)

	descriptor, err := afero.ReadFile(m.ops.Src, spec.sourcePackageJSON)
	if err != nil {
		return files, fmt.Errorf("reading template %s: %w", spec.sourcePackageJSON, err)
	}
	if err := afero.WriteFile(m.ops.Dst, spec.packageJSONPath, renderer.RenderFile(descriptor), filePerm); err != nil {
		return files, fmt.Errorf("writing %s: %w", spec.packageJSONPath, err)
	}
	files = append(files, spec.packageJSONPath)

	if spec.bundlerConfigPath == "" {
		return files, nil
	}
	bundler, err := m.ops.ReadOrEmpty(spec.bundlerConfigPath)
	if err != nil {
		return files, err
	}
	if bundler != nil {
		if _, err := m.ops.WriteIfExists(spec.bundlerConfigPath, renderer.RenderFile(bundler)); err != nil {
			return files, err
		}
	}
	return files, nil
}

// workspace writes the monorepo root files: the pnpm workspace and the root
// package descriptor named after the lowercased project name.
func (m *Materializer) workspace(cfg *settings.ProjectConfiguration) ([]string, error) {
	files, err := m.ops.Copy(
		settings.JoinPath(cfg.ProjectPath, "pnpm-workspace.yaml"),
		templates.RootFile(m.root, templates.RootWorkspaceYAML),
	)
	if err != nil {
		return files, err
	}

	spec := descriptorSpec{
		module: "root",
		source: templates.RootFile(m.root, templates.RootPackageJSON),
		target: settings.JoinPath(cfg.ProjectPath, settings.PackageJSONFile),
		name:   rootPackageName(cfg),
	}
	_, content, err := m.renderDescriptor(cfg, spec)
	if err != nil {
		return files, err
	}
	dst := spec.target
	if err := afero.WriteFile(m.ops.Dst, dst, content, filePerm); err != nil {
		return files, fmt.Errorf("writing %s: %w", dst, err)
	}
	return append(files, dst), nil
}

func moduleReplacements(cfg *settings.ProjectConfiguration, name string) map[string]string {
	r := cfg.Replacements()
	r[settings.TokenName] = name
	return r
}

func permissionAware(err error, location string) error {
	if errors.Is(err, fs.ErrPermission) {
		return oerrors.NewPermissionError(err.Error(), location, "Check write access to the target directory")
	}
	return err
}

// relTo returns p relative to base, comparing cleaned slash paths.
func relTo(base, p string) string {
	b := path.Clean(toSlash(base))
	c := path.Clean(toSlash(p))
	if c == b {
		return "."
	}
	return strings.TrimPrefix(c, b+"/")
}

func dedupe(files []string) []string {
	sort.Strings(files)
	out := files[:0]
	for i, f := range files {
		if i > 0 && f == files[i-1] {
			continue
		}
		out = append(out, f)
	}
	return out
}
