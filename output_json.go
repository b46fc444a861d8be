package atomscan

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema shared by the
// scan and lint commands.
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Tokens    []JSONToken `json:"tokens,omitempty"`
	Issues    []JSONIssue `json:"issues,omitempty"`
}

// JSONSummary contains high-level counts.
type JSONSummary struct {
	FilesScanned int `json:"files_scanned"`
	FilesSkipped int `json:"files_skipped"`
	TokensFound  int `json:"tokens_found"`
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
}

// JSONToken is one recognized token with its decomposition.
type JSONToken struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	Column       int    `json:"column"`
	Token        string `json:"token"`
	Parent       string `json:"parent,omitempty"`
	ParentPseudo string `json:"parent_pseudo,omitempty"`
	ParentSep    string `json:"parent_sep,omitempty"`
	Property     string `json:"property"`
	Value        string `json:"value,omitempty"`
	Important    bool   `json:"important,omitempty"`
	Pseudo       string `json:"pseudo,omitempty"`
	Breakpoint   string `json:"breakpoint,omitempty"`
	Helper       bool   `json:"helper,omitempty"`
}

// JSONIssue represents a single linting issue.
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"`
}

// WriteScanJSON writes scan results as JSON.
func WriteScanJSON(w io.Writer, refs []TokenReference, stats ScanStats) error {
	output := JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			FilesScanned: stats.FilesScanned,
			FilesSkipped: stats.FilesSkipped,
			TokensFound:  len(refs),
		},
		Tokens: make([]JSONToken, 0, len(refs)),
	}

	for _, ref := range refs {
		m := ref.Match
		output.Tokens = append(output.Tokens, JSONToken{
			File:         ref.Location.File,
			Line:         ref.Location.Line,
			Column:       ref.Location.Column,
			Token:        m.Token,
			Parent:       m.Parent,
			ParentPseudo: m.ParentPseudo,
			ParentSep:    m.ParentSep,
			Property:     m.Property,
			Value:        m.RawValue,
			Important:    m.Important,
			Pseudo:       m.ValuePseudo,
			Breakpoint:   m.Breakpoint,
			Helper:       m.Helper,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// WriteLintJSON writes a lint result as JSON.
func WriteLintJSON(w io.Writer, result *LintResult) error {
	output := JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			FilesScanned: result.FilesScanned,
			TotalIssues:  len(result.Issues),
			Errors:       result.ErrorCount,
			Warnings:     result.WarningCount,
		},
		Issues: make([]JSONIssue, 0, len(result.Issues)),
	}

	for _, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		output.Issues = append(output.Issues, JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
