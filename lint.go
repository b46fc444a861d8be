package atomscan

import (
	"bufio"
	"fmt"
	"os"
)

// Issue represents a single linting violation in golangci-lint format.
type Issue struct {
	FromLinter  string   `json:"FromLinter"` // "atomscan"
	Text        string   `json:"Text"`       // `unknown property "Bgx" in token "Bgx(red)"`
	Severity    string   `json:"Severity"`   // "", "warning", "error"
	SourceLines []string `json:"SourceLines"`
	Pos         IssuePos `json:"Pos"`
}

// IssuePos specifies the exact location of an issue.
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"` // 1-based, exact start of the token
}

// Issue severity constants.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Issue message formats.
const (
	IssueUnknownProperty = "unknown property %q in token %q"
	IssueMalformedToken  = "malformed atomic token %q"
	IssueUnknownPseudo   = "unknown pseudo-state %q in token %q"
	IssueUnparsedValue   = "value %q of token %q matches no value shape"
)

// LintConfig holds linter configuration.
type LintConfig struct {
	ScanPaths []string // glob patterns of files to lint

	Strict    bool // exit non-zero on any issue (CI mode)
	MaxIssues int  // 0 = unlimited

	// Output configuration, consumed by internal/report.
	PrintIssuedLines bool
	PrintLinterName  bool
	UseColors        bool
}

// LintResult aggregates linting output.
type LintResult struct {
	Issues       []Issue
	FilesScanned int
	Candidates   int // fast-pattern candidates examined
	ValidTokens  int // candidates the precise pattern accepted

	ErrorCount   int
	WarningCount int
	Truncated    int // issues dropped by MaxIssues
}

// Lint scans the configured paths with the fast pattern and reports every
// candidate that looks like an atomic token but fails precise validation,
// plus tokens whose value payload matches no value shape. Bare words the
// fast pattern happens to match are not candidates unless they carry some
// atomic syntax or name a known property; without that restraint every
// English word would be flagged.
func Lint(g *Grammar, config LintConfig) (*LintResult, error) {
	files, stats, err := expandGlobPatterns(config.ScanPaths)
	if err != nil {
		return nil, fmt.Errorf("expanding lint paths: %w", err)
	}

	result := &LintResult{FilesScanned: stats.FilesScanned}
	for _, file := range files {
		if err := lintFile(g, file, result); err != nil {
			return nil, err
		}
	}

	if config.MaxIssues > 0 && len(result.Issues) > config.MaxIssues {
		result.Truncated = len(result.Issues) - config.MaxIssues
		result.Issues = result.Issues[:config.MaxIssues]
	}
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}
	return result, nil
}

// lintFile checks one file line by line.
func lintFile(g *Grammar, path string, result *LintResult) error {
	file, err := os.Open(path)
	if err != nil {
		// unreadable file, keep going
		return nil
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		for _, candidate := range g.FindAllFast(line) {
			if !isCandidate(g, candidate) {
				continue
			}
			result.Candidates++

			issue, valid := checkCandidate(g, candidate)
			if valid {
				result.ValidTokens++
			}
			if issue == nil {
				continue
			}
			issue.Pos = IssuePos{
				Filename: path,
				Line:     lineNum,
				Column:   candidate.Offset + 1,
			}
			issue.SourceLines = []string{line}
			result.Issues = append(result.Issues, *issue)
		}
	}
	return scanner.Err()
}

// isCandidate decides whether a fast-pattern match is worth validating:
// it must carry atomic syntax (payload, important marker, pseudo or
// breakpoint suffix, parent prefix) or name a helper, which legitimately
// stands alone. A bare rule identifier is not a candidate: many are single
// letters and would flag ordinary prose.
func isCandidate(g *Grammar, m TokenMatch) bool {
	if m.RawValue != "" || m.Important || m.ValuePseudo != "" || m.Breakpoint != "" || m.Parent != "" {
		return true
	}
	return g.HasHelper(m.Property)
}

// checkCandidate re-validates a fast candidate with the precise pattern
// and classifies the failure. valid reports whether the token as a whole
// is well formed; a valid token can still produce a value-shape warning.
func checkCandidate(g *Grammar, candidate TokenMatch) (issue *Issue, valid bool) {
	m, ok := g.MatchToken(candidate.Token)
	if ok {
		if m.RawValue != "" {
			if _, shaped := g.MatchValue(m.RawValue); !shaped {
				return newIssue(SeverityWarning, IssueUnparsedValue, m.RawValue, m.Token), true
			}
		}
		return nil, true
	}

	property := candidate.Property
	if !g.HasRule(property) && !g.HasHelper(property) {
		return newIssue(SeverityError, IssueUnknownProperty, property, candidate.Token), false
	}
	if ps := candidate.ValuePseudo; ps != "" {
		if _, known := CanonicalPseudo(ps); !known {
			return newIssue(SeverityError, IssueUnknownPseudo, ps, candidate.Token), false
		}
	}
	// Known property and plausible pseudo, so the token shape itself is
	// off (e.g. a helper-only identifier carrying a payload the precise
	// pattern rejects, or a rule identifier missing its payload).
	return newIssue(SeverityError, IssueMalformedToken, candidate.Token), false
}

// newIssue builds an Issue with formatted text; position is filled by the
// caller.
func newIssue(severity, format string, args ...any) *Issue {
	return &Issue{
		FromLinter: "atomscan",
		Severity:   severity,
		Text:       fmt.Sprintf(format, args...),
	}
}
