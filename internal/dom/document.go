// Package dom is a virtual HTML document implementing stylesheet.Document.
//
// It lets a server treat rendered markup the way a browser would: look up
// the designated style element, read its parsed rule list, insert rules
// into it, and render the document back with the element in sync.
package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/yacobolo/atomcss/internal/cssparse"
	"github.com/yacobolo/atomcss/stylesheet"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const emptyDocument = "<!DOCTYPE html><html><head></head><body></body></html>"

// Document wraps an HTML parse tree.
type Document struct {
	root   *html.Node
	sheets map[*html.Node]*RuleList
}

// New returns an empty document.
func New() *Document {
	doc, err := Parse(strings.NewReader(emptyDocument))
	if err != nil {
		// the constant above always parses
		panic(err)
	}
	return doc
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Document{root: root, sheets: make(map[*html.Node]*RuleList)}, nil
}

// StyleElement implements stylesheet.Document.
func (d *Document) StyleElement(id string) (stylesheet.Element, bool) {
	n := findStyle(d.root, id)
	if n == nil {
		return nil, false
	}
	return &Element{doc: d, node: n}, true
}

// CreateStyleElement implements stylesheet.Document. The element is
// appended to <head>.
func (d *Document) CreateStyleElement(id string) (stylesheet.Element, error) {
	head := findElement(d.root, atom.Head)
	if head == nil {
		return nil, fmt.Errorf("document has no <head>")
	}

	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Style,
		Data:     "style",
		Attr:     []html.Attribute{{Key: "id", Val: id}},
	}
	head.AppendChild(n)

	return &Element{doc: d, node: n}, nil
}

// SetStyleText replaces the body of the style element with id, creating
// the element when absent. The text is stored verbatim.
func (d *Document) SetStyleText(id, text string) error {
	n := findStyle(d.root, id)
	if n == nil {
		el, err := d.CreateStyleElement(id)
		if err != nil {
			return err
		}
		n = el.(*Element).node
	}

	setText(n, text)
	delete(d.sheets, n)
	return nil
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// Element is a <style> node of a Document.
type Element struct {
	doc  *Document
	node *html.Node
}

// Sheet implements stylesheet.Element. The rule list is parsed on first
// access and shared by later calls.
func (e *Element) Sheet() stylesheet.RuleList {
	if rl, ok := e.doc.sheets[e.node]; ok {
		return rl
	}

	rl := &RuleList{node: e.node}
	rules, err := cssparse.Parse(textOf(e.node))
	if err == nil {
		rl.rules = rules
	}
	// A sheet the parser cannot read starts empty, as a browser drops
	// what it cannot parse.
	e.doc.sheets[e.node] = rl
	return rl
}

// Text returns the current body of the element.
func (e *Element) Text() string {
	return textOf(e.node)
}

// RuleList is the live rule list of a style element.
type RuleList struct {
	node  *html.Node
	rules []cssparse.Rule
}

// InsertRule implements stylesheet.RuleList. rule must parse to exactly
// one rule.
func (l *RuleList) InsertRule(rule string) error {
	parsed, err := cssparse.Parse(rule)
	if err != nil {
		return fmt.Errorf("%w: %v", stylesheet.ErrRuleRejected, err)
	}
	if len(parsed) != 1 {
		return fmt.Errorf("%w: expected one rule, got %d", stylesheet.ErrRuleRejected, len(parsed))
	}

	l.rules = append(l.rules, parsed[0])
	l.sync()
	return nil
}

// Rules implements stylesheet.RuleList.
func (l *RuleList) Rules() []stylesheet.Rule {
	out := make([]stylesheet.Rule, len(l.rules))
	for i, r := range l.rules {
		out[i] = stylesheet.Rule{SelectorText: r.Selector, CSSText: r.Text()}
	}
	return out
}

// sync rewrites the element body from the rule list
func (l *RuleList) sync() {
	var b strings.Builder
	for _, r := range l.rules {
		b.WriteString(r.Text())
	}
	setText(l.node, b.String())
}

// InjectStyle copies the HTML document from r to w with the style element
// id holding css.
func InjectStyle(r io.Reader, w io.Writer, id, css string) error {
	doc, err := Parse(r)
	if err != nil {
		return err
	}
	if err := doc.SetStyleText(id, css); err != nil {
		return err
	}
	return doc.Render(w)
}

func findStyle(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Style && attr(n, "id") == id {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findStyle(c, id); found != nil {
			return found
		}
	}
	return nil
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textOf(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

func setText(n *html.Node, text string) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
	if text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

var _ stylesheet.Document = (*Document)(nil)
