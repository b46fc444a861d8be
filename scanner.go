package atomscan

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// TokenReference is an atomic class token found in a scanned file.
type TokenReference struct {
	Match       TokenMatch   // decomposed token
	Location    FileLocation // where it was found
	LineContent string       // the full line for context
}

// FileLocation tracks where a token was found.
type FileLocation struct {
	File   string
	Line   int
	Column int    // 1-based column of the token start
	Text   string // full line content for source display
}

// ScanStats tracks file scanning statistics.
type ScanStats struct {
	FilesDiscovered int // total files found by glob patterns
	FilesScanned    int // files actually scanned (after filtering)
	FilesSkipped    int // files skipped due to filtering
}

var (
	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// isMinified checks if a file is a minified asset. Minified bundles pack
// everything on one line and drown the scanner in false candidates.
func isMinified(path string) bool {
	return strings.Contains(filepath.Base(path), ".min.")
}

// loadGitIgnore loads the .gitignore file once (thread-safe).
// Gracefully degrades if .gitignore doesn't exist.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile determines if a file should be excluded from scanning.
//
// Two-layer filtering:
// 1. Pattern check (fast): skip minified assets
// 2. Gitignore check: skip gitignored files (only for relative paths)
func shouldSkipFile(path string) bool {
	if isMinified(path) {
		return true
	}

	// Absolute paths (like /tmp/...) are outside the project and should
	// not be affected by the project gitignore.
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// ScanFiles scans files matching the given glob patterns for atomic class
// tokens recognized by the grammar.
func ScanFiles(g *Grammar, patterns []string) ([]TokenReference, ScanStats, error) {
	files, stats, err := expandGlobPatterns(patterns)
	if err != nil {
		return nil, stats, err
	}

	var allRefs []TokenReference
	for _, file := range files {
		refs, err := scanFile(g, file)
		if err != nil {
			// unreadable file, keep going
			continue
		}
		allRefs = append(allRefs, refs...)
	}

	return allRefs, stats, nil
}

// expandGlobPatterns expands glob patterns to actual file paths, applying
// the skip filters and tracking statistics.
func expandGlobPatterns(patterns []string) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
			} else {
				allFiles = append(allFiles, match)
				seen[match] = true
				stats.FilesScanned++
			}
		}
	}

	return allFiles, stats, nil
}

// scanFile scans a single file line by line. The fast pattern acts as a
// cheap prefilter; only lines it flags are decomposed with the precise
// pattern.
func scanFile(g *Grammar, filePath string) ([]TokenReference, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var refs []TokenReference
	fast := g.Pattern(true)
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		if !fast.MatchString(line) {
			continue
		}

		for _, m := range g.FindAll(line) {
			refs = append(refs, TokenReference{
				Match: m,
				Location: FileLocation{
					File:   filePath,
					Line:   lineNum,
					Column: m.Offset + 1, // 1-based
					Text:   strings.TrimSpace(line),
				},
				LineContent: strings.TrimSpace(line),
			})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return refs, nil
}

// GetRelativePath returns a relative path from the current working directory.
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}

	return rel
}
