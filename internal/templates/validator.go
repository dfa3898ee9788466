package templates

import (
	"fmt"
	"unicode"
)

// ValidateProjectName checks that name can be used as a directory name and
// as a package name segment.
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name cannot be empty")
	}

	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' && r != '.' {
			return fmt.Errorf("invalid project name %q: contains invalid character %q", name, r)
		}
	}

	if !unicode.IsLetter([]rune(name)[0]) {
		return fmt.Errorf("invalid project name %q: must start with a letter", name)
	}

	return nil
}

// ValidateAcronym checks that acronym can prefix module directories and
// scope package names: lowercase ASCII letters and digits, starting with a
// letter.
func ValidateAcronym(acronym string) error {
	if acronym == "" {
		return fmt.Errorf("acronym cannot be empty")
	}

	for i, c := range acronym {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return fmt.Errorf("invalid acronym %q: use lowercase letters and digits, starting with a letter", acronym)
		}
	}

	return nil
}
