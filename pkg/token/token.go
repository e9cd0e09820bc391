// Package token defines the lexical tokens consumed by the syntax tree.
//
// Tokens are produced by the lexer and passed to node constructors; the tree
// itself never creates them. Tokens are always handled as *Token, so pointer
// identity can stand in for token identity when comparing spans.
package token

import (
	"fmt"

	"github.com/sable-lang/sable/pkg/diag"
)

// Kind enumerates the lexical classes of tokens.
type Kind uint8

// Possible Kind values.
const (
	Invalid Kind = iota
	EOF
	Ident
	Keyword
	Operator
	Int
	Float
	String
	Punct
)

// String returns a human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case EOF:
		return "EOF"
	case Ident:
		return "identifier"
	case Keyword:
		return "keyword"
	case Operator:
		return "operator"
	case Int:
		return "integer"
	case Float:
		return "float"
	case String:
		return "string"
	case Punct:
		return "punctuation"
	}
	return fmt.Sprintf("bad kind %d", uint8(k))
}

// Token is a single lexical token. The embedded [diag.Ranging] locates the
// token in the source text, making every token a [diag.Ranger].
//
// On a token that opens a bracketed construct, Closer points at the matching
// closing token. It is nil on all other tokens.
type Token struct {
	Kind Kind
	Text string
	diag.Ranging
	Closer *Token
}

// New returns a token of the given kind whose range starts at from and covers
// exactly text.
func New(k Kind, text string, from int) *Token {
	return &Token{
		Kind: k, Text: text,
		Ranging: diag.Ranging{From: from, To: from + len(text)},
	}
}

// String returns a representation of the token for debugging, like
// `identifier("foo")`.
func (t *Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
}
