package stylesheet

import "fmt"

// Sink receives compiled rules.
type Sink interface {
	Insert(rule string) error
}

// NullSink is the sink of a non-interactive context. Rules are dropped and
// only the engine's cache keeps them for a later flush.
type NullSink struct{}

// Insert implements Sink.
func (NullSink) Insert(string) error { return nil }

// SheetSink inserts rules into a live rule list.
type SheetSink struct {
	rules RuleList
}

// NewSheetSink binds a sink to rules.
func NewSheetSink(rules RuleList) *SheetSink {
	return &SheetSink{rules: rules}
}

// Insert implements Sink. Rejections from the rule list are returned as is.
func (s *SheetSink) Insert(rule string) error {
	return s.rules.InsertRule(rule)
}

// Rules exposes the bound rule list.
func (s *SheetSink) Rules() RuleList {
	return s.rules
}

// Ensure finds the designated style element in doc, creating it when
// absent, and returns its live rule list. A nil doc yields a nil list.
func Ensure(doc Document, id string) (RuleList, error) {
	if doc == nil {
		return nil, nil
	}
	if id == "" {
		id = DefaultElementID
	}

	el, ok := doc.StyleElement(id)
	if !ok {
		var err error
		el, err = doc.CreateStyleElement(id)
		if err != nil {
			return nil, fmt.Errorf("create style element #%s: %w", id, err)
		}
	}

	return el.Sheet(), nil
}

// SinkFor returns a SheetSink bound to the designated element of doc, or a
// NullSink when doc is nil.
func SinkFor(doc Document, id string) (Sink, error) {
	rules, err := Ensure(doc, id)
	if err != nil {
		return nil, err
	}
	if rules == nil {
		return NullSink{}, nil
	}
	return NewSheetSink(rules), nil
}
