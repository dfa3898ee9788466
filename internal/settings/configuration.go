package settings

import "encoding/json"

// ModuleSettings holds the derived locations of one shared module.
type ModuleSettings struct {
	ProjectName       string
	ProjectPath       string
	PackageJSONPath   string
	BundlerConfigPath string
}

// SharedModules holds the optional shared modules of a monorepo. A nil entry
// means the module is disabled.
type SharedModules struct {
	UtilsLib  *ModuleSettings
	Storybook *ModuleSettings
	UILib     *ModuleSettings
}

// Get returns the settings for kind, or nil when the module is disabled.
func (s *SharedModules) Get(kind LibKind) *ModuleSettings {
	if s == nil {
		return nil
	}
	switch kind {
	case LibUtils:
		return s.UtilsLib
	case LibStorybook:
		return s.Storybook
	case LibUI:
		return s.UILib
	}
	return nil
}

// ProjectConfiguration is the resolved project layout. It is built once by
// Resolve and read by the structure and apply steps.
type ProjectConfiguration struct {
	IsMonorepoProject   bool
	ProjectPath         string
	ProjectRootPath     string
	ProjectName         string
	ProjectOrganization string
	ProjectAcronym      string
	ProjectRepository   string

	FrontendProjectName       string
	FrontendProjectPath       string
	FrontendPackageJSONPath   string
	FrontendBundlerConfigPath string
	FrontendFramework         Framework
	FrontendRenderingType     RenderingType

	FrontendStateManagementFramework  string
	FrontendStylingFramework          string
	FrontendE2EFramework              string
	FrontendSchemaValidationFramework string

	// Shared is nil for standalone projects.
	Shared *SharedModules
}

// SharedModule returns the settings for kind, or nil when the project is
// standalone or the module is disabled.
func (c *ProjectConfiguration) SharedModule(kind LibKind) *ModuleSettings {
	return c.Shared.Get(kind)
}

// HasSharedUtilsLib reports whether the shared utils module is enabled.
func (c *ProjectConfiguration) HasSharedUtilsLib() bool { return c.SharedModule(LibUtils) != nil }

// HasSharedStorybook reports whether the shared Storybook module is enabled.
func (c *ProjectConfiguration) HasSharedStorybook() bool { return c.SharedModule(LibStorybook) != nil }

// HasSharedUILib reports whether the shared UI module is enabled.
func (c *ProjectConfiguration) HasSharedUILib() bool { return c.SharedModule(LibUI) != nil }

// EnabledModules returns the enabled shared module kinds in creation order.
func (c *ProjectConfiguration) EnabledModules() []LibKind {
	var kinds []LibKind
	for _, kind := range LibKinds {
		if c.SharedModule(kind) != nil {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

// FrontendPackageName is the identifier written into the frontend package
// descriptor.
func (c *ProjectConfiguration) FrontendPackageName() string {
	return PackageName(c.ProjectAcronym, c.FrontendProjectName)
}

// Replacements returns the placeholder tokens found in template files mapped
// to their resolved values.
func (c *ProjectConfiguration) Replacements() map[string]string {
	return map[string]string{
		TokenOrganization: c.ProjectOrganization,
		TokenName:         c.ProjectName,
		TokenAcronym:      c.ProjectAcronym,
		TokenRepository:   c.ProjectRepository,
	}
}

// Placeholder tokens used in template package descriptors and bundler
// configs.
const (
	TokenOrganization = "project-organization"
	TokenName         = "project-name"
	TokenAcronym      = "project-acronym"
	TokenRepository   = "project-repo"
)

// Settings returns the configuration as a flat key/value view. Shared module
// keys are present only for monorepo projects; a disabled module has nil
// values for its path and name keys.
func (c *ProjectConfiguration) Settings() map[string]any {
	out := map[string]any{
		"isMonorepoProject":                 c.IsMonorepoProject,
		"projectPath":                       c.ProjectPath,
		"projectRootPath":                   c.ProjectRootPath,
		"projectName":                       c.ProjectName,
		"projectOrganization":               c.ProjectOrganization,
		"projectAcronym":                    c.ProjectAcronym,
		"projectRepository":                 c.ProjectRepository,
		"frontendProjectName":               c.FrontendProjectName,
		"frontendProjectPath":               c.FrontendProjectPath,
		"frontendPackageJsonPath":           c.FrontendPackageJSONPath,
		"frontendBundlerConfigPath":         c.FrontendBundlerConfigPath,
		"frontendFramework":                 string(c.FrontendFramework),
		"frontendRenderingType":             string(c.FrontendRenderingType),
		"frontendStateManagementFramework":  c.FrontendStateManagementFramework,
		"frontendStylingFramework":          c.FrontendStylingFramework,
		"frontendE2EFramework":              c.FrontendE2EFramework,
		"frontendSchemaValidationFramework": c.FrontendSchemaValidationFramework,
	}

	if !c.IsMonorepoProject {
		return out
	}

	for _, kind := range LibKinds {
		flag, stem := kind.settingsKeys()
		m := c.SharedModule(kind)
		out[flag] = m != nil
		if m == nil {
			out[stem+"ProjectName"] = nil
			out[stem+"ProjectPath"] = nil
			out[stem+"PackageJsonPath"] = nil
			out[stem+"BundlerConfigPath"] = nil
			continue
		}
		out[stem+"ProjectName"] = m.ProjectName
		out[stem+"ProjectPath"] = m.ProjectPath
		out[stem+"PackageJsonPath"] = m.PackageJSONPath
		out[stem+"BundlerConfigPath"] = m.BundlerConfigPath
	}
	return out
}

// MarshalJSON encodes the flat settings view.
func (c *ProjectConfiguration) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Settings())
}
