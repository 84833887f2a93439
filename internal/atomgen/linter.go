package atomgen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yacobolo/atomcss"
	"github.com/yacobolo/atomcss/internal/transform"
	"go.uber.org/zap"
)

// LintConfig holds linting configuration
type LintConfig struct {
	ScanPaths   []string // Patterns to scan (e.g., "web/**/*.templ")
	ClassPrefix string   // "z-"
	Verbose     bool
	Strict      bool // Exit with code 1 on warnings too

	// golangci-style output configuration
	MaxIssuesPerLinter int  // 0 = unlimited (default)
	MaxSameIssues      int  // 0 = unlimited (default)
	PrintIssuedLines   bool // Show source lines with issues (default: true)
	PrintLinterName    bool // Show (atomcss) suffix (default: true)
	UseColors          bool // Enable color output (default: auto-detect)

	Logger *zap.Logger
}

// LintResult contains linting analysis results
type LintResult struct {
	// Statistics
	FilesScanned          int
	CallsFound            int
	DeclarationsFound     int     // Every non-empty segment of every call
	UniqueDeclarations    int     // Distinct declarations, one class each
	DuplicateDeclarations int     // Occurrences served from the cache
	ReuseRatio            float64 // Percentage of occurrences served from the cache

	// Issues in golangci-lint format
	Issues         []Issue
	ErrorCount     int
	WarningCount   int
	TruncatedCount int // Issues removed due to limits

	// Summary
	TopDeclarations []DeclarationUsage // Most reused declarations first
	Warnings        []string
}

// DeclarationUsage counts how often one declaration appears in sources
type DeclarationUsage struct {
	Declaration string
	ClassName   string
	Occurrences int
}

// topDeclarationLimit caps LintResult.TopDeclarations
const topDeclarationLimit = 10

// Lint scans sources for literal CSS calls and checks each declaration
// the way the engine would split and compile it
func Lint(config LintConfig) (*LintResult, error) {
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}

	// Step 1: Scan files for calls
	refs, stats, err := ScanFiles(config.ScanPaths, log)
	if err != nil {
		return nil, fmt.Errorf("failed to scan files: %w", err)
	}

	// Step 2: Analyze every declaration
	engine, err := atomcss.New(atomcss.WithClassPrefix(config.ClassPrefix), atomcss.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	result := analyzeCalls(refs, engine)
	result.FilesScanned = stats.FilesScanned

	if result.CallsFound == 0 {
		result.Warnings = append(result.Warnings,
			"no CSS calls found in "+strings.Join(config.ScanPaths, ", "))
	}

	// Step 3: Apply issue limiting if configured
	if config.MaxIssuesPerLinter > 0 || config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, config)
	}

	log.Debug("lint complete",
		zap.Int("calls", result.CallsFound),
		zap.Int("errors", result.ErrorCount),
		zap.Int("warnings", result.WarningCount))

	return result, nil
}

// analyzeCalls builds the lint result for the given call references.
// engine only names classes; nothing is compiled.
func analyzeCalls(refs []CallReference, engine *atomcss.Engine) *LintResult {
	result := &LintResult{CallsFound: len(refs)}
	usage := make(map[string]int)
	var order []string

	for _, ref := range refs {
		inCall := make(map[string]bool)

		// Splitting ignores quotes, so every segment of such a call is
		// suspect. Report the call once and skip the per-declaration checks.
		quoted := hasQuotedSemicolon(ref.Rules)
		if quoted {
			result.addIssue(ref, declaration{Text: ref.Rules}, SeverityWarning, fmt.Sprintf(IssueQuotedSemicolon, ref.Rules))
		}

		for _, dec := range splitDeclarations(ref.Rules) {
			result.DeclarationsFound++
			if usage[dec.Text] == 0 {
				order = append(order, dec.Text)
			}
			usage[dec.Text]++

			if inCall[dec.Text] {
				result.addIssue(ref, dec, SeverityWarning, fmt.Sprintf(IssueDuplicateInCall, dec.Text))
				continue
			}
			inCall[dec.Text] = true

			if quoted {
				continue
			}

			if _, err := transform.Parse(dec.Text); err != nil {
				result.addIssue(ref, dec, SeverityError, err.Error())
			}
		}
	}

	result.UniqueDeclarations = len(usage)
	result.DuplicateDeclarations = result.DeclarationsFound - result.UniqueDeclarations
	if result.DeclarationsFound > 0 {
		result.ReuseRatio = float64(result.DuplicateDeclarations) / float64(result.DeclarationsFound) * 100
	}
	result.TopDeclarations = topDeclarations(order, usage, engine)

	return result
}

func (r *LintResult) addIssue(ref CallReference, dec declaration, severity, text string) {
	r.Issues = append(r.Issues, Issue{
		FromLinter:  LinterName,
		Text:        text,
		Severity:    severity,
		SourceLines: []string{ref.Location.Text},
		Pos: IssuePos{
			Filename: relativePath(ref.Location.File),
			Line:     ref.Location.Line,
			Column:   ref.Location.Column + dec.Offset,
		},
	})

	switch severity {
	case SeverityError:
		r.ErrorCount++
	case SeverityWarning:
		r.WarningCount++
	}
}

// hasQuotedSemicolon reports whether a ';' appears inside a quoted string
func hasQuotedSemicolon(s string) bool {
	var quote rune
	escaped := false
	for _, ch := range s {
		switch {
		case escaped:
			escaped = false
		case ch == '\\':
			escaped = true
		case quote != 0:
			switch ch {
			case quote:
				quote = 0
			case ';':
				return true
			}
		case ch == '"' || ch == '\'':
			quote = ch
		}
	}
	return false
}

// topDeclarations returns declarations used more than once, most used
// first, first-seen order breaking ties
func topDeclarations(order []string, usage map[string]int, engine *atomcss.Engine) []DeclarationUsage {
	var top []DeclarationUsage
	for _, dec := range order {
		if usage[dec] < 2 {
			continue
		}
		top = append(top, DeclarationUsage{
			Declaration: dec,
			ClassName:   engine.ClassName(dec),
			Occurrences: usage[dec],
		})
	}

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Occurrences > top[j].Occurrences
	})

	if len(top) > topDeclarationLimit {
		top = top[:topDeclarationLimit]
	}
	return top
}

// limitIssues applies max-issues-per-linter and max-same-issues constraints
func limitIssues(issues []Issue, config LintConfig) ([]Issue, int) {
	originalCount := len(issues)

	// Apply max-issues-per-linter
	if config.MaxIssuesPerLinter > 0 && len(issues) > config.MaxIssuesPerLinter {
		issues = issues[:config.MaxIssuesPerLinter]
	}

	// Apply max-same-issues (deduplication by message text)
	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	truncatedCount := originalCount - len(issues)
	return issues, truncatedCount
}

// deduplicateSameIssues keeps at most maxSame issues per message text
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		count := messageCounts[issue.Text]
		if count < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
