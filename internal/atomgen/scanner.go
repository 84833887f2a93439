package atomgen

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"go.uber.org/zap"
)

// CallReference is one CSS("...") call found in source code
type CallReference struct {
	Rules       string       // Unquoted literal: "color: red; margin: 0"
	Location    FileLocation // Where the literal starts
	LineContent string       // The full line for context
}

// FileLocation tracks where a call was found
type FileLocation struct {
	File   string
	Line   int
	Column int    // 1-based column of the first character inside the quotes
	Text   string // Full line content for source display (untrimmed, so columns line up)
}

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

var (
	// callPattern matches css("..."), CSS(`...`), atomcss.MustCSS("...") and
	// the like. Only literal arguments can be extracted statically.
	callPattern = regexp.MustCompile("\\b(?:MustCSS|CSS|css)\\(\\s*(\"(?:[^\"\\\\]|\\\\.)*\"|`[^`]*`)")

	// Comment patterns to skip
	commentPattern = regexp.MustCompile(`^\s*//`)

	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// isGenerated checks if a file is generated from a template and therefore
// duplicates calls already present in its source
func isGenerated(path string) bool {
	return strings.HasSuffix(path, "_templ.go") ||
		strings.HasSuffix(path, ".templ.go") ||
		strings.HasSuffix(path, ".gen.go")
}

// loadGitIgnore loads the .gitignore file once (thread-safe)
// Gracefully degrades if .gitignore doesn't exist
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
// Generated files are always skipped; relative paths are also checked
// against the project .gitignore.
func shouldSkipFile(path string) bool {
	if isGenerated(path) {
		return true
	}

	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// ScanFiles scans files matching the given patterns for CSS calls
func ScanFiles(scanPatterns []string, log *zap.Logger) ([]CallReference, ScanStats, error) {
	if log == nil {
		log = zap.NewNop()
	}

	files, stats, err := expandGlobPatterns(scanPatterns)
	if err != nil {
		return nil, stats, err
	}

	log.Debug("expanded scan patterns",
		zap.Int("discovered", stats.FilesDiscovered),
		zap.Int("scanned", stats.FilesScanned),
		zap.Int("skipped", stats.FilesSkipped))

	var allRefs []CallReference
	for _, file := range files {
		refs, err := scanFile(file)
		if err != nil {
			log.Warn("skipping unreadable file", zap.String("file", file), zap.Error(err))
			continue
		}
		allRefs = append(allRefs, refs...)
	}

	return allRefs, stats, nil
}

// expandGlobPatterns expands globs to regular files and tracks statistics
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

			seen[match] = true
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			allFiles = append(allFiles, match)
			stats.FilesScanned++
		}
	}

	return allFiles, stats, nil
}

// scanFile scans a single file for CSS calls
func scanFile(filePath string) ([]CallReference, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var refs []CallReference
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		refs = append(refs, extractCallsFromLine(scanner.Text(), lineNum, filePath)...)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return refs, nil
}

// extractCallsFromLine extracts all literal CSS calls from a line
func extractCallsFromLine(line string, lineNum int, file string) []CallReference {
	if commentPattern.MatchString(line) {
		return nil
	}

	var refs []CallReference
	for _, match := range callPattern.FindAllStringSubmatchIndex(line, -1) {
		if len(match) < 4 {
			continue
		}

		literal := line[match[2]:match[3]]
		rules, ok := unquoteLiteral(literal)
		if !ok {
			continue
		}

		refs = append(refs, CallReference{
			Rules: rules,
			Location: FileLocation{
				File:   file,
				Line:   lineNum,
				Column: match[2] + 2, // 1-based, past the opening quote
				Text:   line,
			},
			LineContent: strings.TrimSpace(line),
		})
	}

	return refs
}

// unquoteLiteral turns a Go/JS string literal into its value
func unquoteLiteral(literal string) (string, bool) {
	if strings.HasPrefix(literal, "`") {
		return strings.Trim(literal, "`"), true
	}
	s, err := strconv.Unquote(literal)
	if err != nil {
		return "", false
	}
	return s, true
}

// relativePath shortens an absolute path under the working directory
// for display. Relative paths and paths outside it are returned as is.
func relativePath(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	rel, err := filepath.Rel(cwd, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
