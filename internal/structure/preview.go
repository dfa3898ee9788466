package structure

import (
	"fmt"

	"github.com/spf13/afero"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/bistrokit/cli/internal/settings"
	"github.com/bistrokit/cli/internal/templates"
)

// Descriptor is a package descriptor before and after placeholder rewriting.
type Descriptor struct {
	Module string
	Source string
	Target string
	Before []byte
	After  []byte
}

type descriptorSpec struct {
	module string
	source string
	target string
	name   string
}

// Descriptors renders every package descriptor the project gets, without
// writing anything.
func (m *Materializer) Descriptors(cfg *settings.ProjectConfiguration) ([]Descriptor, error) {
	specs, err := m.descriptorSpecs(cfg)
	if err != nil {
		return nil, err
	}

	out := make([]Descriptor, 0, len(specs))
	for _, s := range specs {
		before, after, err := m.renderDescriptor(cfg, s)
		if err != nil {
			return nil, err
		}
		out = append(out, Descriptor{
			Module: s.module,
			Source: s.source,
			Target: s.target,
			Before: before,
			After:  after,
		})
	}
	return out, nil
}

func (m *Materializer) descriptorSpecs(cfg *settings.ProjectConfiguration) ([]descriptorSpec, error) {
	frontend, err := m.catalog.FrontendTemplate(cfg.FrontendFramework, cfg.FrontendRenderingType)
	if err != nil {
		return nil, err
	}

	specs := []descriptorSpec{{
		module: cfg.FrontendProjectName,
		source: settings.JoinPath(frontend.SourceDirPath, settings.PackageJSONFile),
		target: cfg.FrontendPackageJSONPath,
		name:   cfg.FrontendPackageName(),
	}}
	if !cfg.IsMonorepoProject {
		return specs, nil
	}

	specs = append(specs, descriptorSpec{
		module: "root",
		source: templates.RootFile(m.root, templates.RootPackageJSON),
		target: settings.JoinPath(cfg.ProjectPath, settings.PackageJSONFile),
		name:   rootPackageName(cfg),
	})

	for _, kind := range cfg.EnabledModules() {
		tmpl, err := m.catalog.LibTemplate(cfg.FrontendFramework, kind)
		if err != nil {
			return nil, err
		}
		mod := cfg.SharedModule(kind)
		specs = append(specs, descriptorSpec{
			module: mod.ProjectName,
			source: tmpl.PackageJSONPath,
			target: mod.PackageJSONPath,
			name:   settings.PackageName(cfg.ProjectAcronym, mod.ProjectName),
		})
	}
	return specs, nil
}

func (m *Materializer) renderDescriptor(cfg *settings.ProjectConfiguration, s descriptorSpec) (before, after []byte, err error) {
	before, err = afero.ReadFile(m.ops.Src, s.source)
	if err != nil {
		return nil, nil, fmt.Errorf("reading template %s: %w", s.source, err)
	}
	after = templates.NewRenderer(moduleReplacements(cfg, s.name)).RenderFile(before)
	return before, after, nil
}

// rootPackageName is the monorepo root package name: the project name
// lowercased.
func rootPackageName(cfg *settings.ProjectConfiguration) string {
	return cases.Lower(language.Und).String(cfg.ProjectName)
}
