package settings

// Default layout roots.
const (
	DefaultRootPath = "."
	DefaultBasePath = "src"
)

// ResolverOptions configures where projects are laid out.
type ResolverOptions struct {
	// RootPath is the directory that receives the project directory.
	RootPath string

	// BasePath is the monorepo sub-directory that holds the modules.
	BasePath string
}

// Resolver turns answers into a ProjectConfiguration. It holds no mutable
// state and is safe for concurrent use.
type Resolver struct {
	rootPath string
	basePath string
}

// NewResolver returns a Resolver. Empty options fall back to
// DefaultRootPath and DefaultBasePath.
func NewResolver(opts ResolverOptions) *Resolver {
	r := &Resolver{rootPath: opts.RootPath, basePath: opts.BasePath}
	if r.rootPath == "" {
		r.rootPath = DefaultRootPath
	}
	if r.basePath == "" {
		r.basePath = DefaultBasePath
	}
	return r
}

// Resolve resolves answers with the default layout roots.
func Resolve(answers Answers) (*ProjectConfiguration, error) {
	return NewResolver(ResolverOptions{}).Resolve(answers)
}

// Resolve validates the required answers in order and derives the project
// layout. The first missing answer is returned as a *ValidationError.
func (r *Resolver) Resolve(answers Answers) (*ProjectConfiguration, error) {
	for _, key := range RequiredKeys {
		if answers.String(key) == "" {
			return nil, &ValidationError{Field: key}
		}
	}

	cfg := r.common(answers)
	if !cfg.IsMonorepoProject {
		return cfg, nil
	}

	cfg.Shared = &SharedModules{}
	for _, kind := range LibKinds {
		if !answers.Bool(kind.AnswerKey()) {
			continue
		}
		m := r.module(cfg, kind)
		switch kind {
		case LibUtils:
			cfg.Shared.UtilsLib = m
		case LibStorybook:
			cfg.Shared.Storybook = m
		case LibUI:
			cfg.Shared.UILib = m
		}
	}
	return cfg, nil
}

func (r *Resolver) common(answers Answers) *ProjectConfiguration {
	name := answers.String(KeyProjectName)
	acronym := answers.String(KeyProjectAcronym)
	monorepo := answers.Bool(KeyProjectMonorepo)

	projectPath := JoinPath(r.rootPath, name)
	rootPath := projectPath
	frontendPath := projectPath
	frontendName := name
	if monorepo {
		rootPath = JoinPath(projectPath, r.basePath)
		frontendPath = JoinPath(rootPath, ModuleDirName(acronym, "front"))
		frontendName = "front"
	}

	return &ProjectConfiguration{
		IsMonorepoProject:   monorepo,
		ProjectPath:         projectPath,
		ProjectRootPath:     rootPath,
		ProjectName:         name,
		ProjectOrganization: answers.String(KeyProjectOrganization),
		ProjectAcronym:      acronym,
		ProjectRepository:   name,

		FrontendProjectName:       frontendName,
		FrontendProjectPath:       frontendPath,
		FrontendPackageJSONPath:   JoinPath(frontendPath, PackageJSONFile),
		FrontendBundlerConfigPath: JoinPath(frontendPath, BundlerConfigFile),
		FrontendFramework:         Framework(answers.String(KeyFrontendFramework)),
		FrontendRenderingType:     RenderingType(answers.String(KeyFrontendRenderingType)),

		FrontendStateManagementFramework:  answers.String(KeyFrontendStateManagementFramework),
		FrontendStylingFramework:          answers.String(KeyFrontendStylingFramework),
		FrontendE2EFramework:              answers.String(KeyFrontendE2EFramework),
		FrontendSchemaValidationFramework: answers.String(KeyFrontendSchemaValidationFramework),
	}
}

func (r *Resolver) module(cfg *ProjectConfiguration, kind LibKind) *ModuleSettings {
	path := JoinPath(cfg.ProjectRootPath, ModuleDirName(cfg.ProjectAcronym, kind.ModuleName()))
	return &ModuleSettings{
		ProjectName:       kind.ModuleName(),
		ProjectPath:       path,
		PackageJSONPath:   JoinPath(path, PackageJSONFile),
		BundlerConfigPath: JoinPath(path, BundlerConfigFile),
	}
}
