// Package stylesheet abstracts the place compiled rules are inserted into.
//
// In an interactive context a Document exposes a designated <style>
// element whose live RuleList receives every new rule. In a
// non-interactive (server) context there is no Document and the NullSink
// silently accepts insertions.
package stylesheet

import "errors"

// DefaultElementID is the id of the designated style element. Servers
// embed Flush output under it and clients rehydrate from it.
const DefaultElementID = "__css__"

// ErrRuleRejected is returned when a RuleList refuses to insert a rule.
var ErrRuleRejected = errors.New("rule rejected by stylesheet")

// Rule is one parsed rule of a rule list.
type Rule struct {
	SelectorText string // ".z-1a2b3c"
	CSSText      string // ".z-1a2b3c{color:red}"
}

// RuleList is the live, mutable list of rules behind a style element.
type RuleList interface {
	// InsertRule appends rule to the list. Malformed rules are rejected
	// with an error wrapping ErrRuleRejected.
	InsertRule(rule string) error
	// Rules returns the current rules in list order.
	Rules() []Rule
}

// Element is a style element with an attached stylesheet.
type Element interface {
	Sheet() RuleList
}

// Document is the host document of an interactive context.
type Document interface {
	// StyleElement looks up the style element with the given id.
	StyleElement(id string) (Element, bool)
	// CreateStyleElement creates a style element with the given id and
	// attaches it to the document head so its sheet becomes live.
	CreateStyleElement(id string) (Element, error)
}
