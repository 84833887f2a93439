// Package cssparse splits stylesheet text into flat (selector, body) rules.
//
// It is the rule-list parser behind virtual stylesheets and rehydration:
// the input is expected to be a concatenation of `selector{...}` blocks as
// produced by a flush, but any well-formed stylesheet is accepted.
package cssparse

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Errors returned by Parse.
var (
	ErrUnterminatedBlock = errors.New("unterminated block")
	ErrUnexpectedBrace   = errors.New("unexpected '}'")
	ErrMissingSelector   = errors.New("block without selector")
)

// Rule is one top-level rule.
type Rule struct {
	Selector string // whitespace-collapsed prelude: ".z-1a"
	Body     string // block including braces: "{color:red}"
}

// Text returns the rule as it is serialized into a rule list.
func (r Rule) Text() string {
	return r.Selector + r.Body
}

// parserState holds the tokens of the rule currently being read
type parserState struct {
	prelude strings.Builder
	body    strings.Builder
	depth   int
	rules   []Rule
}

// Parse splits content into its top-level rules, in source order.
// Comments are dropped. Statements without a block (`@import x;`) are
// skipped.
func Parse(content string) ([]Rule, error) {
	state := &parserState{}
	lexer := css.NewLexer(parse.NewInputString(content))

	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && err != io.EOF {
				return nil, fmt.Errorf("lex stylesheet: %w", err)
			}
			break
		}

		if tt == css.CommentToken {
			continue
		}

		if state.depth == 0 {
			if err := state.handlePrelude(tt, data); err != nil {
				return nil, err
			}
			continue
		}

		state.handleBody(tt, data)
	}

	if state.depth > 0 {
		return nil, fmt.Errorf("%w after %q", ErrUnterminatedBlock, state.prelude.String())
	}

	return state.rules, nil
}

// handlePrelude collects selector tokens until a block opens
func (s *parserState) handlePrelude(tt css.TokenType, data []byte) error {
	switch tt {
	case css.LeftBraceToken:
		if strings.TrimSpace(s.prelude.String()) == "" {
			return ErrMissingSelector
		}
		s.depth = 1
		s.body.Reset()
		s.body.WriteByte('{')
	case css.RightBraceToken:
		return ErrUnexpectedBrace
	case css.SemicolonToken:
		// block-less at-rule
		s.prelude.Reset()
	case css.WhitespaceToken:
		if s.prelude.Len() > 0 {
			s.prelude.WriteByte(' ')
		}
	default:
		s.prelude.Write(data)
	}
	return nil
}

// handleBody copies block tokens verbatim, tracking nested braces
func (s *parserState) handleBody(tt css.TokenType, data []byte) {
	switch tt {
	case css.LeftBraceToken:
		s.depth++
	case css.RightBraceToken:
		s.depth--
	}

	s.body.Write(data)

	if s.depth == 0 {
		s.rules = append(s.rules, Rule{
			Selector: strings.TrimSpace(collapseSpaces(s.prelude.String())),
			Body:     s.body.String(),
		})
		s.prelude.Reset()
		s.body.Reset()
	}
}

// collapseSpaces folds runs of spaces left by consecutive whitespace tokens
func collapseSpaces(s string) string {
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return s
}
