package atomcss

import (
	"sync"

	"github.com/yacobolo/atomcss/stylesheet"
)

var (
	defaultEngine *Engine
	defaultOnce   sync.Once
)

// Default returns the process-wide engine, built on first use from the
// detected execution context: rehydrating and inserting into the browser
// document under GOOS=js, server mode everywhere else.
func Default() *Engine {
	defaultOnce.Do(func() {
		e, err := New(WithDocument(stylesheet.Detect()))
		if err != nil {
			// the page refused the style element; keep working in server mode
			e, _ = New()
		}
		defaultEngine = e
	})
	return defaultEngine
}

// CSS compiles rules with the process-wide engine.
func CSS(rules string) (string, error) {
	return Default().CSS(rules)
}

// MustCSS compiles rules with the process-wide engine and panics on error.
func MustCSS(rules string) string {
	return Default().MustCSS(rules)
}

// Flush serializes the process-wide engine's rules.
func Flush() string {
	return Default().Flush()
}
