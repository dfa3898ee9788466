package output

import "strings"

// OutputFormat specifies the output format.
type OutputFormat string

const (
	// FormatText outputs human-readable text.
	FormatText OutputFormat = "text"

	// FormatYAML outputs in YAML format.
	FormatYAML OutputFormat = "yaml"

	// FormatJSON outputs in JSON format.
	FormatJSON OutputFormat = "json"
)

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// IsValid checks if the output format is valid.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatYAML, FormatJSON:
		return true
	default:
		return false
	}
}

// ParseOutputFormat parses a string into an OutputFormat. Unknown values are
// returned as-is so IsValid can reject them.
func ParseOutputFormat(s string) OutputFormat {
	switch strings.ToLower(s) {
	case "", "text":
		return FormatText
	case "yaml", "yml":
		return FormatYAML
	case "json":
		return FormatJSON
	default:
		return OutputFormat(s)
	}
}

// ValidFormats returns a slice of valid output format strings.
func ValidFormats() []string {
	return []string{"text", "yaml", "json"}
}
