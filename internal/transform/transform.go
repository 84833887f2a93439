// Package transform expands a single CSS declaration into a rule body.
//
// The output is minified: `color: red` becomes `{color:red}` and, with
// vendor prefixing enabled, `user-select: none` becomes
// `{-webkit-user-select:none;-moz-user-select:none;-ms-user-select:none;user-select:none}`.
package transform

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ErrMalformed is wrapped by every error Transform returns for input it
// cannot expand.
var ErrMalformed = errors.New("malformed declaration")

// Options configures a Transformer.
type Options struct {
	VendorPrefix bool // Emit -webkit-/-moz-/-ms- variants (default: true in New callers)
}

// Transformer compiles declarations into rule bodies.
type Transformer struct {
	opts Options
}

// New creates a Transformer.
func New(opts Options) *Transformer {
	return &Transformer{opts: opts}
}

// Declaration is a parsed property:value pair.
type Declaration struct {
	Property string
	Value    string
}

// String renders the declaration without surrounding whitespace.
func (d Declaration) String() string {
	return d.Property + ":" + d.Value
}

// Transform scopes the compiled declaration under selector. An empty
// selector yields the bare body: Transform("", "color: red") == "{color:red}".
func (t *Transformer) Transform(selector, declaration string) (string, error) {
	decl, err := Parse(declaration)
	if err != nil {
		return "", err
	}

	decls := []Declaration{decl}
	if t.opts.VendorPrefix {
		decls = Prefix(decl)
	}

	var b strings.Builder
	b.WriteString(selector)
	b.WriteByte('{')
	for i, d := range decls {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(d.String())
	}
	b.WriteByte('}')

	return b.String(), nil
}

// Parse validates and normalizes one declaration.
func Parse(declaration string) (Declaration, error) {
	lexer := css.NewLexer(parse.NewInputString(declaration))

	var decl Declaration
	if err := readProperty(lexer, &decl); err != nil {
		return Declaration{}, fmt.Errorf("%w %q: %v", ErrMalformed, declaration, err)
	}

	value, err := readValue(lexer)
	if err != nil {
		return Declaration{}, fmt.Errorf("%w %q: %v", ErrMalformed, declaration, err)
	}
	decl.Value = value

	return decl, nil
}

// readProperty consumes `name :`
func readProperty(lexer *css.Lexer, decl *Declaration) error {
	for {
		tt, text := lexer.Next()

		switch tt {
		case css.ErrorToken:
			if err := lexer.Err(); err != nil && err != io.EOF {
				return err
			}
			if decl.Property == "" {
				return errors.New("missing property")
			}
			return errors.New("missing ':'")
		case css.WhitespaceToken, css.CommentToken:
			continue
		case css.IdentToken, css.CustomPropertyNameToken:
			if decl.Property != "" {
				return fmt.Errorf("unexpected %q after property", text)
			}
			name := string(text)
			if !strings.HasPrefix(name, "--") {
				name = strings.ToLower(name)
			}
			decl.Property = name
		case css.ColonToken:
			if decl.Property == "" {
				return errors.New("missing property")
			}
			return nil
		default:
			return fmt.Errorf("unexpected %q in property", text)
		}
	}
}

// readValue consumes the remaining tokens, collapsing whitespace
func readValue(lexer *css.Lexer) (string, error) {
	var b strings.Builder
	pendingSpace := false
	prev := css.ErrorToken

	for {
		tt, text := lexer.Next()

		switch tt {
		case css.ErrorToken:
			if err := lexer.Err(); err != nil && err != io.EOF {
				return "", err
			}
			if b.Len() == 0 {
				return "", errors.New("empty value")
			}
			return b.String(), nil
		case css.WhitespaceToken:
			pendingSpace = b.Len() > 0
			continue
		case css.CommentToken:
			continue
		case css.SemicolonToken:
			return "", errors.New("unexpected ';'")
		case css.LeftBraceToken, css.RightBraceToken:
			return "", errors.New("blocks are not allowed in a declaration")
		case css.BadStringToken:
			return "", errors.New("unterminated string")
		case css.BadURLToken:
			return "", errors.New("malformed url()")
		case css.CDOToken, css.CDCToken:
			return "", fmt.Errorf("unexpected %q", text)
		case css.DelimToken:
			if len(text) > 0 && text[0] == '<' {
				return "", errors.New("unexpected '<'")
			}
		case css.StringToken, css.URLToken:
			// the rule ends up inside a <style> element, where "</" can
			// close it early
			if bytes.Contains(text, []byte("</")) {
				return "", fmt.Errorf("markup in %s", strings.ToLower(tt.String()))
			}
		}

		if pendingSpace && !tightAfter(prev) && !tightBefore(tt) {
			b.WriteByte(' ')
		}
		pendingSpace = false

		b.Write(text)
		prev = tt
	}
}

func tightAfter(tt css.TokenType) bool {
	return tt == css.CommaToken || tt == css.LeftParenthesisToken || tt == css.FunctionToken
}

func tightBefore(tt css.TokenType) bool {
	return tt == css.CommaToken || tt == css.RightParenthesisToken
}
