package apply

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/bistrokit/cli/internal/errors"
	"github.com/bistrokit/cli/internal/settings"
	"github.com/bistrokit/cli/internal/shell"
	"github.com/bistrokit/cli/internal/structure"
	"github.com/bistrokit/cli/internal/templates"
)

func resolve(t *testing.T, extra settings.Answers) *settings.ProjectConfiguration {
	t.Helper()
	answers := settings.Answers{
		settings.KeyProjectName:           "vitality",
		settings.KeyProjectOrganization:   "ekino",
		settings.KeyProjectAcronym:        "v6y",
		settings.KeyFrontendFramework:     "react",
		settings.KeyFrontendRenderingType: "csr",
	}
	for k, v := range extra {
		answers[k] = v
	}
	cfg, err := settings.Resolve(answers)
	require.NoError(t, err)
	return cfg
}

type harness struct {
	runner *shell.RecordingRunner
	target afero.Fs
	lines  []string
	env    Env
}

func newHarness() *harness {
	h := &harness{runner: &shell.RecordingRunner{}, target: afero.NewMemMapFs()}
	h.env = Env{
		Runner:  h.runner,
		Log:     func(s string) { h.lines = append(h.lines, s) },
		Files:   structure.FileOps{Src: templates.FS(), Dst: h.target},
		Catalog: settings.NewCatalog(""),
	}
	return h
}

func TestFor(t *testing.T) {
	a, err := For(settings.FrameworkReact)
	require.NoError(t, err)
	assert.Equal(t, settings.FrameworkReact, a.Framework())

	a, err = For(settings.FrameworkAngular)
	require.NoError(t, err)
	assert.Equal(t, settings.FrameworkAngular, a.Framework())

	_, err = For("vue")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
}

func TestInstallTargets(t *testing.T) {
	standalone := resolve(t, nil)
	assert.Equal(t, []string{"./vitality"}, InstallTargets(standalone, shell.PNPM))

	mono := resolve(t, settings.Answers{
		settings.KeyProjectMonorepo: true,
		settings.KeySharedUtilsLib:  true,
		settings.KeySharedStorybook: false,
		settings.KeySharedUILib:     true,
	})
	assert.Equal(t, []string{"./vitality"}, InstallTargets(mono, ""))
	assert.Equal(t, []string{
		"./vitality/src/v6y-front",
		"./vitality/src/v6y-commons",
		"./vitality/src/v6y-ui-commons",
	}, InstallTargets(mono, shell.NPM))
}

func TestReactStandaloneInstallsOnly(t *testing.T) {
	h := newHarness()
	cfg := resolve(t, settings.Answers{settings.KeyFrontendStylingFramework: "tailwind"})

	require.NoError(t, React{}.Apply(context.Background(), cfg, h.env))
	assert.Equal(t, []string{"pnpm --prefix=./vitality install"}, h.runner.Lines())
}

func TestReactUILibraryMonorepo(t *testing.T) {
	h := newHarness()
	cfg := resolve(t, settings.Answers{
		settings.KeyProjectMonorepo:          true,
		settings.KeySharedUILib:              true,
		settings.KeySharedStorybook:          true,
		settings.KeyFrontendStylingFramework: "antd",
	})
	front := "./vitality/src/v6y-front"
	ui := "./vitality/src/v6y-ui-commons"
	require.NoError(t, afero.WriteFile(h.target, front+"/src/infrastructure/providers/theme/.gitkeep", nil, 0o644))
	require.NoError(t, afero.WriteFile(h.target, ui+"/src/commons/theme/.gitkeep", nil, 0o644))

	require.NoError(t, React{}.Apply(context.Background(), cfg, h.env))

	assert.Equal(t, []string{
		"pnpm --prefix " + front + " add @ant-design/icons",
		"pnpm --prefix " + ui + " add @ant-design/icons",
		"pnpm --prefix " + front + " add antd",
		"pnpm --prefix " + ui + " add antd",
		"pnpm dlx storybook@latest init --type react --builder vite --yes --no-dev",
		"pnpm --prefix=./vitality install",
	}, h.runner.Lines())
	assert.Equal(t, "./vitality/src/v6y-storybook", h.runner.Commands[4].Dir)

	for _, dir := range []string{front + "/src/infrastructure/providers/theme", ui + "/src/commons/theme"} {
		ok, err := afero.Exists(h.target, dir+"/AppThemeProvider.tsx")
		require.NoError(t, err)
		assert.True(t, ok, dir)

		ok, err = afero.Exists(h.target, dir+"/.gitkeep")
		require.NoError(t, err)
		assert.False(t, ok, dir)
	}
}

func TestReactUILibraryWithoutSharedModule(t *testing.T) {
	h := newHarness()
	cfg := resolve(t, settings.Answers{
		settings.KeyFrontendStylingFramework: "chakra-ui",
		settings.KeyFrontendRenderingType:    "ssg",
	})

	require.NoError(t, React{}.Apply(context.Background(), cfg, h.env))
	assert.Equal(t, []string{
		"pnpm --prefix ./vitality add @chakra-ui/react",
		"pnpm --prefix ./vitality add @chakra-ui/next-js",
		"pnpm --prefix ./vitality add @emotion/react",
		"pnpm --prefix ./vitality add @emotion/styled",
		"pnpm --prefix=./vitality install",
	}, h.runner.Lines())

	ok, err := afero.Exists(h.target, "./vitality/src/infrastructure/providers/theme/AppTheme.ts")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAngularDefaultsToWebpack(t *testing.T) {
	h := newHarness()
	cfg := resolve(t, settings.Answers{
		settings.KeyFrontendFramework:        "angular",
		settings.KeyProjectMonorepo:          true,
		settings.KeySharedStorybook:          true,
		settings.KeyFrontendStylingFramework: "antd",
	})

	require.NoError(t, Angular{}.Apply(context.Background(), cfg, h.env))
	assert.Equal(t, []string{
		"pnpm dlx storybook@latest init --type angular --builder webpack5 --yes --no-dev",
		"pnpm --prefix=./vitality install",
	}, h.runner.Lines())
	assert.Contains(t, h.lines, "antd targets React, skipping UI library setup")
}

func TestStorybookBuilderOverride(t *testing.T) {
	h := newHarness()
	h.env.StorybookBuilder = "webpack5"
	cfg := resolve(t, settings.Answers{
		settings.KeyProjectMonorepo: true,
		settings.KeySharedStorybook: true,
	})

	require.NoError(t, React{}.Apply(context.Background(), cfg, h.env))
	assert.Contains(t, h.runner.Lines()[0], "--builder webpack5")
}

func TestFailureAbortsPipeline(t *testing.T) {
	h := newHarness()
	h.runner.FailOn = map[string]int{"pnpm --prefix ./vitality add antd": 1}
	cfg := resolve(t, settings.Answers{settings.KeyFrontendStylingFramework: "antd"})

	err := React{}.Apply(context.Background(), cfg, h.env)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrCommand))

	var cmdErr *shell.CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, 1, cmdErr.ExitCode)

	lines := h.runner.Lines()
	assert.Equal(t, "pnpm --prefix ./vitality add antd", lines[len(lines)-1])
	assert.NotContains(t, lines, "pnpm --prefix=./vitality install")
}

func TestSkipInstallRunsNothing(t *testing.T) {
	h := newHarness()
	h.env.SkipInstall = true
	cfg := resolve(t, settings.Answers{settings.KeyFrontendStylingFramework: "antd"})

	require.NoError(t, React{}.Apply(context.Background(), cfg, h.env))
	assert.Empty(t, h.runner.Lines())
	assert.Contains(t, h.lines, "$ pnpm --prefix=./vitality install")

	ok, err := afero.Exists(h.target, "./vitality/src/infrastructure/providers/theme/AppThemeProvider.tsx")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPackageManagerOverride(t *testing.T) {
	h := newHarness()
	h.env.PackageManager = shell.Yarn
	cfg := resolve(t, nil)

	require.NoError(t, React{}.Apply(context.Background(), cfg, h.env))
	assert.Equal(t, []string{"yarn --prefix=./vitality install"}, h.runner.Lines())
}

func TestCancelledContext(t *testing.T) {
	h := newHarness()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := React{}.Apply(ctx, resolve(t, nil), h.env)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, h.runner.Lines())
}
