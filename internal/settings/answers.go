package settings

import (
	"fmt"
	"strconv"
	"strings"
)

// Answer keys produced by the interview and read by the resolver.
const (
	KeyProjectName                       = "project-name"
	KeyProjectOrganization               = "project-organization"
	KeyProjectAcronym                    = "project-acronym"
	KeyFrontendFramework                 = "frontend-framework"
	KeyFrontendRenderingType             = "frontend-rendering-type"
	KeyProjectMonorepo                   = "project-monorepo"
	KeySharedUtilsLib                    = "shared-utils-lib"
	KeySharedStorybook                   = "shared-storybook"
	KeySharedUILib                       = "shared-ui-lib"
	KeyFrontendStateManagementFramework  = "frontend-state-management-framework"
	KeyFrontendStylingFramework          = "frontend-styling-framework"
	KeyFrontendE2EFramework              = "frontend-e2e-framework"
	KeyFrontendSchemaValidationFramework = "frontend-schema-validation-framework"
)

// RequiredKeys lists the answers that must be non-empty, in validation order.
var RequiredKeys = []string{
	KeyProjectName,
	KeyProjectOrganization,
	KeyProjectAcronym,
	KeyFrontendFramework,
	KeyFrontendRenderingType,
}

// Answers is the flat answer set collected from the user. Values are strings
// or booleans; missing keys read as "" or false.
type Answers map[string]any

// String returns the answer for key as a string. Booleans and numbers are
// formatted; nil and missing keys return "".
func (a Answers) String(key string) string {
	switch v := a[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// Bool returns the answer for key as a boolean. String values are parsed
// leniently ("true", "yes", "y", "1"); anything else reads as false.
func (a Answers) Bool(key string) bool {
	switch v := a[key].(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "y", "1":
			return true
		}
	}
	return false
}

// Clone returns a shallow copy of the answer set.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
