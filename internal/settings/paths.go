package settings

import "strings"

// JoinPath joins path segments with "/" without cleaning them, so that a
// leading "./" survives (filepath.Join would drop it).
func JoinPath(parts ...string) string {
	return strings.Join(parts, "/")
}

// ModuleDirName returns the directory name of a module inside a monorepo,
// e.g. ModuleDirName("v6y", "front") == "v6y-front".
func ModuleDirName(acronym, suffix string) string {
	return acronym + "-" + suffix
}

// PackageName returns the scoped package identifier written into a module's
// package descriptor, e.g. "@v6y/commons".
func PackageName(acronym, moduleName string) string {
	return "@" + acronym + "/" + moduleName
}
