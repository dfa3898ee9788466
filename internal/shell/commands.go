package shell

// Package managers accepted by the CLI.
const (
	PNPM = "pnpm"
	NPM  = "npm"
	Yarn = "yarn"
)

// PackageManagers lists the supported package managers.
var PackageManagers = []string{PNPM, NPM, Yarn}

// Install builds `<pm> --prefix=<path> install`.
func Install(pm, path string) Command {
	return Command{Name: pm, Args: []string{"--prefix=" + path, "install"}}
}

// AddDependency builds `<pm> --prefix <path> add <dep>`.
func AddDependency(pm, path, dep string) Command {
	return Command{Name: pm, Args: []string{"--prefix", path, "add", dep}}
}

// StorybookInit builds the Storybook initializer run inside dir. An empty
// builder selects vite.
func StorybookInit(pm, dir, framework, builder string) Command {
	if builder == "" {
		builder = "vite"
	}
	args := []string{"dlx", "storybook@latest"}
	if pm == NPM {
		args = []string{"exec", "--yes", "--", "storybook@latest"}
	}
	return Command{
		Name: pm,
		Args: append(args, "init", "--type", framework, "--builder", builder, "--yes", "--no-dev"),
		Dir:  dir,
	}
}
