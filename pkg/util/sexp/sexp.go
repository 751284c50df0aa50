// Package sexp is a small S-expression reader used to parse the model
// an external SMT decision procedure prints on stdout. It follows a
// List/Symbol SExp interface, trimmed to the read side only: this
// module's own formula-to-text rendering lives in pkg/smt and writes
// text directly, rather than building and re-walking an SExp tree for
// output.
package sexp

import (
	"fmt"
	"strings"
	"unicode"
)

// SExp is either a List of zero or more S-expressions or a Symbol.
type SExp interface {
	// AsList returns this value as a *List, or nil if it is a Symbol.
	AsList() *List
	// AsSymbol returns this value as a *Symbol, or nil if it is a List.
	AsSymbol() *Symbol
}

// Symbol is an atomic token.
type Symbol struct{ Value string }

// AsList always returns nil for a Symbol.
func (s *Symbol) AsList() *List { return nil }

// AsSymbol returns this Symbol.
func (s *Symbol) AsSymbol() *Symbol { return s }

// List is zero or more S-expressions.
type List struct{ Elements []SExp }

// AsList returns this List.
func (l *List) AsList() *List { return l }

// AsSymbol always returns nil for a List.
func (l *List) AsSymbol() *Symbol { return nil }

// Get returns the ith element, or nil if i is out of range.
func (l *List) Get(i int) SExp {
	if i < 0 || i >= len(l.Elements) {
		return nil
	}

	return l.Elements[i]
}

// Len returns the number of elements in this list.
func (l *List) Len() int { return len(l.Elements) }

// Parse reads the first complete S-expression from text, returning it
// and the number of runes consumed. It is a minimal recursive-descent
// reader sufficient for SMT-LIB v2 output: symbols, parenthesised
// lists, and whitespace; it does not support quoted strings or block
// comments, neither of which this module's solver output ever produces.
func Parse(text string) (SExp, int, error) {
	runes := []rune(text)
	pos := skipSpace(runes, 0)

	if pos >= len(runes) {
		return nil, pos, fmt.Errorf("sexp: unexpected end of input")
	}

	val, next, err := parseValue(runes, pos)
	if err != nil {
		return nil, next, err
	}

	return val, next, nil
}

// ParseAll reads every top-level S-expression in text.
func ParseAll(text string) ([]SExp, error) {
	var out []SExp

	runes := []rune(text)
	pos := 0

	for {
		pos = skipSpace(runes, pos)
		if pos >= len(runes) {
			return out, nil
		}

		val, next, err := parseValue(runes, pos)
		if err != nil {
			return out, err
		}

		out = append(out, val)
		pos = next
	}
}

func skipSpace(runes []rune, pos int) int {
	for pos < len(runes) && unicode.IsSpace(runes[pos]) {
		pos++
	}

	return pos
}

func parseValue(runes []rune, pos int) (SExp, int, error) {
	if runes[pos] == '(' {
		return parseList(runes, pos)
	}

	return parseSymbol(runes, pos)
}

func parseList(runes []rune, pos int) (SExp, int, error) {
	pos++ // consume '('

	var elements []SExp

	for {
		pos = skipSpace(runes, pos)
		if pos >= len(runes) {
			return nil, pos, fmt.Errorf("sexp: unterminated list")
		}

		if runes[pos] == ')' {
			return &List{Elements: elements}, pos + 1, nil
		}

		val, next, err := parseValue(runes, pos)
		if err != nil {
			return nil, next, err
		}

		elements = append(elements, val)
		pos = next
	}
}

func parseSymbol(runes []rune, pos int) (SExp, int, error) {
	start := pos

	for pos < len(runes) && !unicode.IsSpace(runes[pos]) && runes[pos] != '(' && runes[pos] != ')' {
		pos++
	}

	if pos == start {
		return nil, pos, fmt.Errorf("sexp: empty symbol at position %d", pos)
	}

	return &Symbol{Value: string(runes[start:pos])}, pos, nil
}

// String renders an SExp back to text.
func String(e SExp) string {
	if sym := e.AsSymbol(); sym != nil {
		return sym.Value
	}

	l := e.AsList()
	parts := make([]string, len(l.Elements))

	for i, el := range l.Elements {
		parts[i] = String(el)
	}

	return "(" + strings.Join(parts, " ") + ")"
}
