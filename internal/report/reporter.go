// Package report renders scan and lint results for the terminal.
package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/acss-tools/atomscan"
)

// Reporter handles formatting and outputting results.
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a reporter for the given lint configuration.
func NewReporter(w io.Writer, config atomscan.LintConfig) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       ShouldUseColors(config.UseColors),
		printLines:      config.PrintIssuedLines,
		printLinterName: config.PrintLinterName,
	}
}

// ShouldUseColors determines if colors should be enabled.
func ShouldUseColors(forced bool) bool {
	// Explicit flag wins
	if forced {
		return true
	}

	// FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, _ := os.Stdout.Stat(); (fileInfo.Mode() & os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintTokens outputs one line per recognized token: location, token text
// and its decomposition.
func (r *Reporter) PrintTokens(refs []atomscan.TokenReference) {
	for _, ref := range refs {
		location := fmt.Sprintf("%s:%d:%d:", atomscan.GetRelativePath(ref.Location.File), ref.Location.Line, ref.Location.Column)
		fmt.Fprintf(r.w, "%s %s %s\n",
			RenderStyle(StyleCyan, location, r.useColors),
			ref.Match.Token,
			RenderStyle(StyleGray, describeMatch(ref.Match), r.useColors))
	}
}

// describeMatch renders the decomposition summary shown next to a token.
func describeMatch(m atomscan.TokenMatch) string {
	parts := []string{"property=" + m.Property}
	if m.RawValue != "" {
		parts = append(parts, "value="+m.RawValue)
	}
	if m.Parent != "" {
		parts = append(parts, "parent="+m.Parent+m.ParentPseudo+m.ParentSep)
	}
	if m.Important {
		parts = append(parts, "important")
	}
	if m.ValuePseudo != "" {
		if canonical, ok := atomscan.CanonicalPseudo(m.ValuePseudo); ok {
			parts = append(parts, "pseudo="+canonical)
		} else {
			parts = append(parts, "pseudo="+m.ValuePseudo)
		}
	}
	if m.Breakpoint != "" {
		parts = append(parts, "breakpoint="+m.Breakpoint)
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// PrintScanSummary outputs the scan statistics footer.
func (r *Reporter) PrintScanSummary(refs []atomscan.TokenReference, stats atomscan.ScanStats) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintf(r.w, "%s in %s (%s skipped)\n",
		pluralizeCount(len(refs), "token", "tokens"),
		pluralizeCount(stats.FilesScanned, "file", "files"),
		pluralizeCount(stats.FilesSkipped, "file", "files"))
}

// PrintIssues outputs issues in golangci-lint format, sorted by file, line
// and column.
func (r *Reporter) PrintIssues(issues []atomscan.Issue) {
	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})

	for _, issue := range issues {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue in golangci-lint style.
func (r *Reporter) printIssue(issue atomscan.Issue) {
	// Format: file:line:col: message (linter)
	location := fmt.Sprintf("%s:%d:%d:", atomscan.GetRelativePath(issue.Pos.Filename), issue.Pos.Line, issue.Pos.Column)

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		issue.Text,
		RenderStyle(StyleGray, linterSuffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}

		caret := buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.useColors))
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the column.
// Tabs in the source prefix are mirrored so the caret lines up under both
// tab and space indentation.
func buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintLintSummary outputs the issue count summary.
func (r *Reporter) PrintLintSummary(result atomscan.LintResult) {
	fmt.Fprintln(r.w, "")

	total := len(result.Issues)
	switch {
	case result.ErrorCount > 0 && result.WarningCount > 0:
		fmt.Fprintf(r.w, "%s (%s, %s)\n",
			pluralizeCount(total, "issue", "issues"),
			pluralizeCount(result.ErrorCount, "error", "errors"),
			pluralizeCount(result.WarningCount, "warning", "warnings"))
	default:
		fmt.Fprintf(r.w, "%s\n", pluralizeCount(total, "issue", "issues"))
	}
	if result.Truncated > 0 {
		fmt.Fprintf(r.w, "%s truncated\n", pluralizeCount(result.Truncated, "issue", "issues"))
	}

	if total == 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGreen, "No atomic token issues found", r.useColors))
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form.
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled.
func (r *Reporter) UseColors() bool {
	return r.useColors
}
