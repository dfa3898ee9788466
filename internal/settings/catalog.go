package settings

// Framework identifies a frontend framework.
type Framework string

// Supported frameworks.
const (
	FrameworkReact   Framework = "react"
	FrameworkAngular Framework = "angular"
)

// RenderingType identifies a frontend rendering strategy.
type RenderingType string

// Supported rendering types.
const (
	RenderingCSR RenderingType = "csr"
	RenderingSSR RenderingType = "ssr"
	RenderingSSG RenderingType = "ssg"
)

// LibKind identifies a shared library module.
type LibKind string

// Supported shared library kinds.
const (
	LibUtils     LibKind = "utils"
	LibUI        LibKind = "ui"
	LibStorybook LibKind = "storybook"
)

// Frameworks lists the supported frameworks in display order.
var Frameworks = []Framework{FrameworkReact, FrameworkAngular}

// RenderingTypes lists the supported rendering types in display order.
var RenderingTypes = []RenderingType{RenderingCSR, RenderingSSR, RenderingSSG}

// LibKinds lists the shared library kinds in creation order.
var LibKinds = []LibKind{LibUtils, LibStorybook, LibUI}

// Valid reports whether f is a supported framework.
func (f Framework) Valid() bool {
	return f == FrameworkReact || f == FrameworkAngular
}

// Valid reports whether r is a supported rendering type.
func (r RenderingType) Valid() bool {
	_, ok := frontendTemplateDirs[r]
	return ok
}

// ModuleName is the module's name inside a monorepo and the suffix of its
// directory name.
func (k LibKind) ModuleName() string {
	switch k {
	case LibUtils:
		return "commons"
	case LibUI:
		return "ui-commons"
	case LibStorybook:
		return "storybook"
	}
	return ""
}

// AnswerKey is the boolean answer that enables the module.
func (k LibKind) AnswerKey() string {
	switch k {
	case LibUtils:
		return KeySharedUtilsLib
	case LibUI:
		return KeySharedUILib
	case LibStorybook:
		return KeySharedStorybook
	}
	return ""
}

// settingsKeys returns the flag key and the field stem used in the flat
// settings view.
func (k LibKind) settingsKeys() (flag, stem string) {
	switch k {
	case LibUtils:
		return "hasSharedUtilsLib", "sharedUtilsLib"
	case LibUI:
		return "hasSharedUiLib", "sharedUiLib"
	case LibStorybook:
		return "hasSharedStorybook", "sharedStorybook"
	}
	return "", ""
}

// Descriptor and bundler file names inside every module.
const (
	PackageJSONFile    = "package.json"
	BundlerConfigFile  = "vite.config.ts"
	DefaultTemplateDir = "templates"
)

var frontendTemplateDirs = map[RenderingType]string{
	RenderingCSR: "base-project-structure",
	RenderingSSR: "base-ssr-structure",
	RenderingSSG: "base-ssr-structure",
}

type libLayout struct {
	dir        string
	hasBundler bool
}

var libTemplateLayouts = map[LibKind]libLayout{
	LibUtils:     {dir: "base-lib-structure", hasBundler: true},
	LibUI:        {dir: "base-ui-lib-structure", hasBundler: true},
	LibStorybook: {dir: "base-storybook-structure"},
}

// FrontendTemplate locates the template for the frontend module.
type FrontendTemplate struct {
	SourceDirPath string `json:"sourceDirPath"`
}

// LibTemplate locates the template for a shared library module.
// BundlerConfigPath is empty when the module has no bundler.
type LibTemplate struct {
	SourceDirPath     string `json:"sourceDirPath"`
	PackageJSONPath   string `json:"packageJsonPath"`
	BundlerConfigPath string `json:"bundlerConfigPath,omitempty"`
}

// HasBundlerConfig reports whether the template ships a bundler config.
func (t LibTemplate) HasBundlerConfig() bool {
	return t.BundlerConfigPath != ""
}

// Catalog maps framework, rendering type and library kind to template
// locations below a template root.
type Catalog struct {
	root string
}

// NewCatalog returns a catalog rooted at templateRoot. An empty root falls
// back to DefaultTemplateDir.
func NewCatalog(templateRoot string) *Catalog {
	if templateRoot == "" {
		templateRoot = DefaultTemplateDir
	}
	return &Catalog{root: templateRoot}
}

// Root returns the template root.
func (c *Catalog) Root() string {
	return c.root
}

// FrontendTemplate returns the frontend template for a framework and
// rendering type.
func (c *Catalog) FrontendTemplate(framework Framework, renderingType RenderingType) (FrontendTemplate, error) {
	if !framework.Valid() {
		return FrontendTemplate{}, &CatalogLookupError{Table: "frontend", Key: string(framework), Subkey: string(renderingType)}
	}
	dir, ok := frontendTemplateDirs[renderingType]
	if !ok {
		return FrontendTemplate{}, &CatalogLookupError{Table: "frontend", Key: string(framework), Subkey: string(renderingType)}
	}
	return FrontendTemplate{SourceDirPath: JoinPath(c.root, string(framework), dir)}, nil
}

// LibTemplate returns the template for a shared library kind.
func (c *Catalog) LibTemplate(framework Framework, kind LibKind) (LibTemplate, error) {
	layout, ok := libTemplateLayouts[kind]
	if !ok || !framework.Valid() {
		return LibTemplate{}, &CatalogLookupError{Table: "library", Key: string(framework), Subkey: string(kind)}
	}

	dir := JoinPath(c.root, string(framework), layout.dir)
	tmpl := LibTemplate{
		SourceDirPath:   dir,
		PackageJSONPath: JoinPath(dir, PackageJSONFile),
	}
	if layout.hasBundler {
		tmpl.BundlerConfigPath = JoinPath(dir, BundlerConfigFile)
	}
	return tmpl, nil
}

// CatalogEntry is one row of the catalog listing.
type CatalogEntry struct {
	Framework Framework `json:"framework"`
	Kind      string    `json:"kind"`
	Variant   string    `json:"variant"`
	Path      string    `json:"path"`
}

// Entries lists every template directory the catalog can return, grouped
// by framework.
func (c *Catalog) Entries() []CatalogEntry {
	var entries []CatalogEntry
	for _, fw := range Frameworks {
		for _, rt := range RenderingTypes {
			t, _ := c.FrontendTemplate(fw, rt)
			entries = append(entries, CatalogEntry{Framework: fw, Kind: "frontend", Variant: string(rt), Path: t.SourceDirPath})
		}
		for _, kind := range LibKinds {
			t, _ := c.LibTemplate(fw, kind)
			entries = append(entries, CatalogEntry{Framework: fw, Kind: "library", Variant: string(kind), Path: t.SourceDirPath})
		}
	}
	return entries
}
