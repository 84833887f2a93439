package atomcss

import (
	"regexp"
	"strings"

	"github.com/yacobolo/atomcss/stylesheet"
	"go.uber.org/zap"
)

// RehydrateResult is the cache seed recovered from a server-rendered
// stylesheet.
type RehydrateResult struct {
	Entries []Entry
	Skipped []stylesheet.Rule // rules that do not follow the class name convention
}

// Rehydrate reads the designated style element of doc and converts its
// rules back into cache entries. A missing element yields an empty
// result.
//
// Only rules whose selector is exactly "." + prefix + lowercase hex and
// whose text starts with that selector are admitted; anything else
// (hand-written CSS, other generators) is reported in Skipped.
func Rehydrate(doc stylesheet.Document, id, prefix string, log *zap.Logger) RehydrateResult {
	var result RehydrateResult
	if doc == nil {
		return result
	}
	if log == nil {
		log = zap.NewNop()
	}

	el, ok := doc.StyleElement(id)
	if !ok {
		return result
	}

	selector := selectorPattern(prefix)
	for _, rule := range el.Sheet().Rules() {
		sel := strings.TrimSpace(rule.SelectorText)
		if !selector.MatchString(sel) || !strings.HasPrefix(rule.CSSText, sel) {
			log.Debug("skipping foreign rule", zap.String("selector", rule.SelectorText))
			result.Skipped = append(result.Skipped, rule)
			continue
		}

		result.Entries = append(result.Entries, Entry{
			ClassName: sel[1:],
			Body:      strings.TrimSpace(strings.Replace(rule.CSSText, sel, "", 1)),
		})
	}

	log.Debug("rehydrated stylesheet",
		zap.String("id", id),
		zap.Int("rules", len(result.Entries)),
		zap.Int("skipped", len(result.Skipped)))

	return result
}

func selectorPattern(prefix string) *regexp.Regexp {
	return regexp.MustCompile(`^\.` + regexp.QuoteMeta(prefix) + `[0-9a-f]+$`)
}
