package settings

// Theme destinations, relative to the module that receives the theme files.
const (
	FrontendThemeDestination = "src/infrastructure/providers/theme"
	SharedUIThemeDestination = "src/commons/theme"
)

// UI kits known to the catalog.
const (
	UILibChakra = "chakra-ui"
	UILibAntd   = "antd"
)

// UILibSettings describes how a UI kit is wired into a project.
type UILibSettings struct {
	Name                         string        `json:"name"`
	RenderingType                RenderingType `json:"renderingType"`
	Dependencies                 []string      `json:"dependencies"`
	TemplateFilesPath            string        `json:"uiLibTemplateFilesPath"`
	FrontendThemeDestinationPath string        `json:"frontendModuleThemeFilesDestinationPath"`
	SharedUIThemeDestinationPath string        `json:"sharedUiModuleThemeFilesDestinationPath"`
}

var uiLibDependencies = map[string]map[RenderingType][]string{
	UILibChakra: {
		RenderingCSR: {"@chakra-ui/react", "@emotion/react", "@emotion/styled"},
		RenderingSSR: {"@chakra-ui/react", "@chakra-ui/next-js", "@emotion/react", "@emotion/styled"},
		RenderingSSG: {"@chakra-ui/react", "@chakra-ui/next-js", "@emotion/react", "@emotion/styled"},
	},
	UILibAntd: {
		RenderingCSR: {"@ant-design/icons", "antd"},
		RenderingSSR: {"@ant-design/icons", "antd", "@ant-design/nextjs-registry"},
		RenderingSSG: {"@ant-design/icons", "antd", "@ant-design/nextjs-registry"},
	},
}

// UILibraries lists the UI kits known to the catalog.
var UILibraries = []string{UILibChakra, UILibAntd}

// IsUILibrary reports whether name is a UI kit the catalog can set up.
func IsUILibrary(name string) bool {
	_, ok := uiLibDependencies[name]
	return ok
}

// UILibrary returns the settings for a UI kit and rendering type. Static
// generation reuses the server-rendered theme files.
func (c *Catalog) UILibrary(name string, renderingType RenderingType) (UILibSettings, error) {
	deps, ok := uiLibDependencies[name][renderingType]
	if !ok {
		return UILibSettings{}, &CatalogLookupError{Table: "ui library", Key: name, Subkey: string(renderingType)}
	}

	templateVariant := renderingType
	if renderingType == RenderingSSG {
		templateVariant = RenderingSSR
	}

	return UILibSettings{
		Name:                         name,
		RenderingType:                renderingType,
		Dependencies:                 append([]string(nil), deps...),
		TemplateFilesPath:            JoinPath(c.root, "libs", "ui", name, string(templateVariant)),
		FrontendThemeDestinationPath: FrontendThemeDestination,
		SharedUIThemeDestinationPath: SharedUIThemeDestination,
	}, nil
}
