package output

import (
	"regexp"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusStyle(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		wantBold bool
		wantFG   lipgloss.TerminalColor
	}{
		{name: "created returns green", status: StatusCreated, wantFG: ColorGreen},
		{name: "skipped returns yellow", status: StatusSkipped, wantFG: ColorYellow},
		{name: "failed returns bold red", status: StatusFailed, wantBold: true, wantFG: ColorBoldRed},
		{name: "unknown returns unstyled", status: "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := StatusStyle(tt.status)
			assert.Equal(t, tt.wantBold, style.GetBold())
			if tt.wantFG != nil {
				assert.Equal(t, tt.wantFG, style.GetForeground())
			}
		})
	}
}

func TestFormatCheckmark(t *testing.T) {
	assert.Contains(t, stripAnsi(FormatCheckmark("Project created")), "✔ Project created")
}

func TestFormatStep(t *testing.T) {
	out := stripAnsi(FormatStep("Installing", "./vitality", StatusCreated))
	assert.Equal(t, "Installing ./vitality  created", out)
}

func TestFormatter(t *testing.T) {
	f := NewFormatter(false)

	assert.Equal(t, "hello", f.Info("hello"))
	assert.Equal(t, "done", f.Success("done"))
	assert.Equal(t, "boom", f.Failure("boom"))
	assert.Equal(t, "$ pnpm install", f.Command("pnpm install"))
}

func TestParseOutputFormat(t *testing.T) {
	assert.Equal(t, FormatText, ParseOutputFormat(""))
	assert.Equal(t, FormatYAML, ParseOutputFormat("yml"))
	assert.Equal(t, FormatJSON, ParseOutputFormat("JSON"))
	assert.False(t, ParseOutputFormat("table").IsValid())
	assert.Equal(t, []string{"text", "yaml", "json"}, ValidFormats())
}

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripAnsi(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}
