package tree

import (
	"strconv"

	"github.com/sable-lang/sable/pkg/token"
)

// DecodeErrorHandler is called when the text of a literal token cannot be
// decoded as a value of the literal's type. It receives the offending token
// and a description of the failure.
//
// A handler may panic to abort the pass that is accessing the value, or
// record the failure and return, in which case the access yields the zero
// value of the literal's type.
type DecodeErrorHandler func(tok *token.Token, msg string)

func decodeError(h DecodeErrorHandler, tok *token.Token, msg string) {
	if h != nil {
		h(tok, msg)
	}
}

// LiteralInt is an integer literal.
type LiteralInt struct {
	node
	Token   *token.Token
	OnError DecodeErrorHandler
}

// LiteralInt returns a new LiteralInt over tok. The handler is invoked when
// Value is called on malformed token text; a nil handler ignores failures.
func (b *Builder) LiteralInt(tok *token.Token, h DecodeErrorHandler) *LiteralInt {
	return &LiteralInt{node: b.next(), Token: tok, OnError: h}
}

// Value decodes the token text as a decimal integer. It is computed anew on
// every call. On malformed text the handler is invoked and 0 is returned.
func (l *LiteralInt) Value() int64 {
	v, err := strconv.ParseInt(l.Token.Text, 10, 64)
	if err != nil {
		decodeError(l.OnError, l.Token, "invalid integer literal "+strconv.Quote(l.Token.Text))
		return 0
	}
	return v
}

func (l *LiteralInt) Begin() *token.Token   { return l.Token }
func (l *LiteralInt) End() *token.Token     { return l.Token }
func (l *LiteralInt) Accept(v Visitor)      { v.VisitLiteralInt(l) }
func (l *LiteralInt) VisitChildren(Visitor) {}

// LiteralFloat is a floating-point literal.
type LiteralFloat struct {
	node
	Token   *token.Token
	OnError DecodeErrorHandler
}

// LiteralFloat returns a new LiteralFloat over tok; the handler is treated
// like in LiteralInt.
func (b *Builder) LiteralFloat(tok *token.Token, h DecodeErrorHandler) *LiteralFloat {
	return &LiteralFloat{node: b.next(), Token: tok, OnError: h}
}

// Value decodes the token text as a floating-point number. It is computed
// anew on every call. On malformed text the handler is invoked and 0 is
// returned.
func (l *LiteralFloat) Value() float64 {
	v, err := strconv.ParseFloat(l.Token.Text, 64)
	if err != nil {
		decodeError(l.OnError, l.Token, "invalid floating-point literal "+strconv.Quote(l.Token.Text))
		return 0
	}
	return v
}

func (l *LiteralFloat) Begin() *token.Token   { return l.Token }
func (l *LiteralFloat) End() *token.Token     { return l.Token }
func (l *LiteralFloat) Accept(v Visitor)      { v.VisitLiteralFloat(l) }
func (l *LiteralFloat) VisitChildren(Visitor) {}

// LiteralBool is a boolean literal.
type LiteralBool struct {
	node
	Token   *token.Token
	OnError DecodeErrorHandler
}

// LiteralBool returns a new LiteralBool over tok; the handler is treated
// like in LiteralInt.
func (b *Builder) LiteralBool(tok *token.Token, h DecodeErrorHandler) *LiteralBool {
	return &LiteralBool{node: b.next(), Token: tok, OnError: h}
}

// Value decodes the token text as a boolean. Only the exact spellings "true"
// and "false" are valid; any other text invokes the handler and yields
// false.
func (l *LiteralBool) Value() bool {
	switch l.Token.Text {
	case "true":
		return true
	case "false":
		return false
	}
	decodeError(l.OnError, l.Token, "invalid boolean literal "+strconv.Quote(l.Token.Text))
	return false
}

func (l *LiteralBool) Begin() *token.Token   { return l.Token }
func (l *LiteralBool) End() *token.Token     { return l.Token }
func (l *LiteralBool) Accept(v Visitor)      { v.VisitLiteralBool(l) }
func (l *LiteralBool) VisitChildren(Visitor) {}

// LiteralString is a string literal. The token text is the raw source
// spelling including the quotes; this layer performs no unescaping.
type LiteralString struct {
	node
	Token *token.Token
}

// LiteralString returns a new LiteralString over tok.
func (b *Builder) LiteralString(tok *token.Token) *LiteralString {
	return &LiteralString{node: b.next(), Token: tok}
}

// Value returns the raw token text. It cannot fail.
func (l *LiteralString) Value() string { return l.Token.Text }

func (l *LiteralString) Begin() *token.Token   { return l.Token }
func (l *LiteralString) End() *token.Token     { return l.Token }
func (l *LiteralString) Accept(v Visitor)      { v.VisitLiteralString(l) }
func (l *LiteralString) VisitChildren(Visitor) {}

// LiteralNull is the null literal. It has no decodable payload; its logical
// value is always absent, whatever the token text.
type LiteralNull struct {
	node
	Token *token.Token
}

// LiteralNull returns a new LiteralNull over tok.
func (b *Builder) LiteralNull(tok *token.Token) *LiteralNull {
	return &LiteralNull{node: b.next(), Token: tok}
}

// Value returns nil, whatever the token text. It cannot fail.
func (l *LiteralNull) Value() any { return nil }

func (l *LiteralNull) Begin() *token.Token   { return l.Token }
func (l *LiteralNull) End() *token.Token     { return l.Token }
func (l *LiteralNull) Accept(v Visitor)      { v.VisitLiteralNull(l) }
func (l *LiteralNull) VisitChildren(Visitor) {}
