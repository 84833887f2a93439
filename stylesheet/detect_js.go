//go:build js && wasm

package stylesheet

import (
	"fmt"
	"syscall/js"
)

// Detect returns the browser document when one is reachable from the
// global scope, nil otherwise (web workers, node without a DOM shim).
func Detect() Document {
	doc := js.Global().Get("document")
	if doc.IsUndefined() || doc.IsNull() {
		return nil
	}
	return browserDocument{doc: doc}
}

type browserDocument struct {
	doc js.Value
}

func (d browserDocument) StyleElement(id string) (Element, bool) {
	el := d.doc.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return nil, false
	}
	return browserElement{el: el}, true
}

func (d browserDocument) CreateStyleElement(id string) (el Element, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("append style element: %v", r)
		}
	}()

	node := d.doc.Call("createElement", "style")
	node.Set("id", id)
	d.doc.Get("head").Call("appendChild", node)
	return browserElement{el: node}, nil
}

type browserElement struct {
	el js.Value
}

func (e browserElement) Sheet() RuleList {
	return browserRuleList{sheet: e.el.Get("sheet")}
}

type browserRuleList struct {
	sheet js.Value
}

// detached reports a style element whose sheet is not attached yet, or
// was disabled
func (l browserRuleList) detached() bool {
	return l.sheet.IsNull() || l.sheet.IsUndefined()
}

// InsertRule appends at the end of cssRules. insertRule throws a
// SyntaxError for rules the CSS engine cannot parse; syscall/js turns the
// exception into a panic.
func (l browserRuleList) InsertRule(rule string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrRuleRejected, r)
		}
	}()

	if l.detached() {
		return fmt.Errorf("%w: style element has no sheet", ErrRuleRejected)
	}

	n := l.sheet.Get("cssRules").Length()
	l.sheet.Call("insertRule", rule, n)
	return nil
}

// Rules reads cssRules. Cross-origin sheets throw a SecurityError on
// access; both that and a missing sheet read as no rules.
func (l browserRuleList) Rules() (rules []Rule) {
	defer func() {
		if r := recover(); r != nil {
			rules = nil
		}
	}()

	if l.detached() {
		return nil
	}

	list := l.sheet.Get("cssRules")
	n := list.Length()
	rules = make([]Rule, 0, n)
	for i := 0; i < n; i++ {
		r := list.Index(i)
		sel := r.Get("selectorText")
		if sel.Type() != js.TypeString {
			// @media and friends carry no selectorText
			continue
		}
		rules = append(rules, Rule{
			SelectorText: sel.String(),
			CSSText:      r.Get("cssText").String(),
		})
	}
	return rules
}
