package templates

// Template describes one template directory for listings.
type Template struct {
	// Kind is "frontend", "library" or "ui".
	Kind string

	// Variant is the rendering type, library kind or UI kit.
	Variant string

	// Description explains what the template produces.
	Description string
}

var registry = map[string]Template{
	"frontend/csr":      {Kind: "frontend", Variant: "csr", Description: "Client-side rendered application"},
	"frontend/ssr":      {Kind: "frontend", Variant: "ssr", Description: "Server-side rendered application"},
	"frontend/ssg":      {Kind: "frontend", Variant: "ssg", Description: "Static site, shares the server-rendered base"},
	"library/utils":     {Kind: "library", Variant: "utils", Description: "Shared utilities and helpers"},
	"library/ui":        {Kind: "library", Variant: "ui", Description: "Shared UI components"},
	"library/storybook": {Kind: "library", Variant: "storybook", Description: "Component documentation, initialized by Storybook"},
	"ui/chakra-ui":      {Kind: "ui", Variant: "chakra-ui", Description: "Chakra UI theme provider"},
	"ui/antd":           {Kind: "ui", Variant: "antd", Description: "Ant Design theme provider"},
}

// Describe returns the description of a template, or "" when unknown.
func Describe(kind, variant string) string {
	return registry[kind+"/"+variant].Description
}
