// Package atomcss is an atomic CSS-in-Go engine.
//
// Every declaration passed to CSS becomes one class whose name is derived
// from a hash of the declaration text. The compiled rule is registered once
// per engine and the class names are returned for use in markup:
//
//	cls, err := atomcss.CSS("color: red; margin: 0")
//	// cls == "z-e8aae3a1 z-1c03b2bb"
//
// # Server rendering
//
// On a server there is no document: rules only accumulate in the engine's
// cache. Flush serializes them for the designated style element:
//
//	page := `<style id="__css__">` + atomcss.Flush() + `</style>`
//
// # Rehydration
//
// In a browser (GOOS=js) or on a virtual document, an engine built with
// WithDocument first reads the server-rendered style element back into its
// cache, so classes the server already emitted are never compiled or
// inserted a second time.
package atomcss

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/yacobolo/atomcss/internal/transform"
	"github.com/yacobolo/atomcss/stylesheet"
	"go.uber.org/zap"
)

// Transformer expands one declaration into a rule scoped under selector.
// With an empty selector the result is the bare body, e.g. "{color:red}".
type Transformer interface {
	Transform(selector, declaration string) (string, error)
}

// TransformerFunc adapts a function to Transformer.
type TransformerFunc func(selector, declaration string) (string, error)

// Transform implements Transformer.
func (f TransformerFunc) Transform(selector, declaration string) (string, error) {
	return f(selector, declaration)
}

// NewTransformer returns the built-in transformer.
func NewTransformer(vendorPrefix bool) Transformer {
	return transform.New(transform.Options{VendorPrefix: vendorPrefix})
}

// Stats counts cache activity of an engine.
type Stats struct {
	Hits       int // declarations served from the cache
	Misses     int // declarations compiled and inserted
	Rehydrated int // rules seeded from a server-rendered sheet
	Skipped    int // server-rendered rules rejected during rehydration
}

// Engine compiles declarations into atomic classes. It is safe for
// concurrent use.
type Engine struct {
	mu          sync.Mutex
	prefix      string
	elementID   string
	hasher      Hasher
	transformer Transformer
	sink        stylesheet.Sink
	cache       *RuleCache
	stats       Stats
	log         *zap.Logger
}

// New builds an engine. Without WithDocument or WithSink the engine runs in
// server mode: rules are cached but not inserted anywhere.
func New(opts ...Option) (*Engine, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{
		prefix:      o.classPrefix,
		elementID:   o.elementID,
		hasher:      o.hasher,
		transformer: o.transformer,
		cache:       NewRuleCache(),
		log:         o.log.Named("atomcss"),
	}
	if e.transformer == nil {
		e.transformer = NewTransformer(o.vendorPrefix)
	}

	// 1. Rehydrate before anything can be inserted
	if o.document != nil {
		seed := Rehydrate(o.document, e.elementID, e.prefix, e.log)
		for _, entry := range seed.Entries {
			e.cache.Set(entry.ClassName, entry.Body)
		}
		e.stats.Rehydrated = len(seed.Entries)
		e.stats.Skipped = len(seed.Skipped)
	}

	// 2. Bind the sink
	switch {
	case o.sink != nil:
		e.sink = o.sink
	default:
		sink, err := stylesheet.SinkFor(o.document, e.elementID)
		if err != nil {
			return nil, fmt.Errorf("bind stylesheet: %w", err)
		}
		e.sink = sink
	}

	return e, nil
}

// CSS compiles a ';'-separated declaration list and returns the class
// names, space separated, in input order. Repeated declarations repeat
// their class name but are compiled only once per engine.
func (e *Engine) CSS(rules string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var names []string
	for _, dec := range strings.Split(strings.TrimSpace(rules), ";") {
		dec = strings.TrimSpace(dec)
		if dec == "" {
			continue
		}

		cn := deriveClassName(e.prefix, e.hasher, dec)
		names = append(names, cn)

		if e.cache.Has(cn) {
			e.stats.Hits++
			continue
		}

		if err := e.process(cn, dec); err != nil {
			return "", err
		}
	}

	return strings.Join(names, " "), nil
}

// MustCSS is like CSS but panics on a malformed declaration. It suits
// templates built from literal declarations.
func (e *Engine) MustCSS(rules string) string {
	cls, err := e.CSS(rules)
	if err != nil {
		panic(err)
	}
	return cls
}

// process compiles one missing declaration, inserts it and caches it
func (e *Engine) process(cn, dec string) error {
	body, err := e.transformer.Transform("", dec)
	if err != nil {
		if !errors.Is(err, ErrMalformedDeclaration) {
			err = fmt.Errorf("%w: %w", ErrMalformedDeclaration, err)
		}
		return &DeclarationError{Declaration: dec, ClassName: cn, Err: err}
	}

	if err := e.sink.Insert("." + cn + body); err != nil {
		return &DeclarationError{Declaration: dec, ClassName: cn, Err: err}
	}

	e.cache.Set(cn, body)
	e.stats.Misses++
	e.log.Debug("compiled declaration", zap.String("class", cn), zap.String("declaration", dec))
	return nil
}

// ClassName returns the class a declaration compiles to, without
// compiling it.
func (e *Engine) ClassName(declaration string) string {
	return deriveClassName(e.prefix, e.hasher, strings.TrimSpace(declaration))
}

// Flush serializes every cached rule for embedding as the body of the
// designated style element.
func (e *Engine) Flush() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cache.Serialize()
}

// StyleElement returns Flush wrapped in the designated style element.
func (e *Engine) StyleElement() string {
	return `<style id="` + e.elementID + `">` + e.Flush() + `</style>`
}

// Rule returns the cached body of className.
func (e *Engine) Rule(className string) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cache.Get(className)
}

// Entries returns a copy of the cache in flush order.
func (e *Engine) Entries() []Entry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cache.Entries()
}

// Len returns the number of cached rules.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cache.Len()
}

// Stats returns a snapshot of the engine counters.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats
}

// ElementID returns the id of the designated style element.
func (e *Engine) ElementID() string {
	return e.elementID
}
