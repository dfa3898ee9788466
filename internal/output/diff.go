package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
)

// FileDiff is the rendered difference of one file.
type FileDiff struct {
	Path string
	Diff string
}

// RenderYAMLDiff compares two YAML or JSON documents structurally and
// renders the differences. It returns "" when the documents are equal.
func RenderYAMLDiff(from, to []byte, useColor bool) (string, error) {
	if len(bytes.TrimSpace(from)) == 0 && len(bytes.TrimSpace(to)) == 0 {
		return "", nil
	}

	fromInput, err := parseYAMLInput("template", from)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}
	toInput, err := parseYAMLInput("rendered", to)
	if err != nil {
		return "", fmt.Errorf("parsing rendered file: %w", err)
	}

	report, err := dyff.CompareInputFiles(fromInput, toInput)
	if err != nil {
		return "", fmt.Errorf("comparing documents: %w", err)
	}
	if len(report.Diffs) == 0 {
		return "", nil
	}

	return renderDyffReport(report, useColor)
}

func parseYAMLInput(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{Location: name}, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}
	return ytbx.InputFile{Location: name, Documents: docs}, nil
}

func renderDyffReport(report dyff.Report, useColor bool) (string, error) {
	var buf bytes.Buffer

	w := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}
	if err := w.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// RenderFileDiffs renders a list of file diffs with a summary line.
func RenderFileDiffs(diffs []FileDiff, styles *Styles) string {
	changed := 0
	var sb strings.Builder
	for _, d := range diffs {
		if d.Diff == "" {
			continue
		}
		changed++
		sb.WriteString(styles.Warning.Render("~ " + d.Path))
		sb.WriteString("\n")
		sb.WriteString(IndentDiff(d.Diff, "    "))
		sb.WriteString("\n\n")
	}

	if changed == 0 {
		return "No placeholders to rewrite."
	}
	sb.WriteString("Summary: ")
	sb.WriteString(pluralize(changed, "file"))
	sb.WriteString(" rewritten\n")
	return sb.String()
}

// IndentDiff indents every non-empty line of diff.
func IndentDiff(diff, indent string) string {
	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = indent + line
		}
	}
	return strings.Join(lines, "\n")
}

func pluralize(count int, label string) string {
	if count == 1 {
		return fmt.Sprintf("1 %s", label)
	}
	return fmt.Sprintf("%d %ss", count, label)
}
