package tree

import (
	"github.com/sable-lang/sable/pkg/token"
)

// IndexOperator is the selector spelling of the index operator, as in a[i].
const IndexOperator = "[]"

// Identifier is a single name occurrence. Its value is the text of its
// token.
type Identifier struct {
	node
	Token *token.Token
}

// Identifier returns a new Identifier over tok.
func (b *Builder) Identifier(tok *token.Token) *Identifier {
	return &Identifier{node: b.next(), Token: tok}
}

func (i *Identifier) Begin() *token.Token   { return i.Token }
func (i *Identifier) End() *token.Token     { return i.Token }
func (i *Identifier) Accept(v Visitor)      { v.VisitIdentifier(i) }
func (i *Identifier) VisitChildren(Visitor) {}

// Operator has the same shape as Identifier but is dispatched separately, so
// that operator application can be told apart from ordinary selectors.
type Operator struct {
	node
	Token *token.Token
}

// Operator returns a new Operator over tok.
func (b *Builder) Operator(tok *token.Token) *Operator {
	return &Operator{node: b.next(), Token: tok}
}

func (o *Operator) Begin() *token.Token   { return o.Token }
func (o *Operator) End() *token.Token     { return o.Token }
func (o *Operator) Accept(v Visitor)      { v.VisitOperator(o) }
func (o *Operator) VisitChildren(Visitor) {}

// Send is the unified message-send node, representing property access,
// method and function calls, and operator application. The syntactic form is
// encoded in which fields are present rather than in an explicit tag:
//
//	property access      Receiver and Selector present, Arguments absent
//	call                 Arguments present without fixity
//	prefix unary (-x)    Selector is the operator, Arguments tagged Prefix
//	postfix unary (x++)  Selector is the operator, Arguments tagged Postfix
//
// Exactly one of the four forms holds for a well-formed Send.
type Send struct {
	node
	Receiver  Node
	Selector  Node
	Arguments *NodeList
}

// Send returns a new Send with the given receiver, selector and arguments.
// A nil arguments list makes the send a property access; a nil selector
// makes it a function object invocation.
func (b *Builder) Send(receiver, selector Node, arguments *NodeList) *Send {
	return &Send{node: b.next(), Receiver: receiver, Selector: selector, Arguments: arguments}
}

// PrefixSend returns a new Send applying op to receiver in prefix position.
// Its argument container is empty and tagged Prefix.
func (b *Builder) PrefixSend(receiver Node, op *Operator) *Send {
	return &Send{node: b.next(), Receiver: receiver, Selector: op, Arguments: b.PrefixList()}
}

// PostfixSend is the analogue of PrefixSend for postfix position.
func (b *Builder) PostfixSend(receiver Node, op *Operator) *Send {
	return &Send{node: b.next(), Receiver: receiver, Selector: op, Arguments: b.PostfixList()}
}

// IsPropertyAccess reports whether the send is a property access, that is,
// it has no argument container.
func (s *Send) IsPropertyAccess() bool { return s.Arguments == nil }

// IsFunctionObjectInvocation reports whether the send invokes the value of
// its receiver, that is, it has no selector.
func (s *Send) IsFunctionObjectInvocation() bool { return absent(s.Selector) }

// IsPrefix reports whether the send is a prefix unary operation.
func (s *Send) IsPrefix() bool { return s.Arguments != nil && s.Arguments.Fixity == Prefix }

// IsPostfix reports whether the send is a postfix unary operation.
func (s *Send) IsPostfix() bool { return s.Arguments != nil && s.Arguments.Fixity == Postfix }

// IsCall reports whether the send is an ordinary call with an argument list.
func (s *Send) IsCall() bool { return s.Arguments != nil && s.Arguments.Fixity == NoFixity }

// IsOperator reports whether the selector is an operator.
func (s *Send) IsOperator() bool {
	_, ok := s.Selector.(*Operator)
	return ok
}

// IsIndex reports whether the selector is the index operator.
func (s *Send) IsIndex() bool {
	op, ok := s.Selector.(*Operator)
	return ok && op != nil && op.Token != nil && op.Token.Text == IndexOperator
}

func (s *Send) Begin() *token.Token {
	if s.IsPrefix() && !s.IsIndex() {
		return beginOf(s.Selector)
	}
	return beginOf(s.Receiver, s.Selector)
}

func (s *Send) End() *token.Token {
	if s.IsPrefix() {
		return endOf(s.Selector, s.Receiver)
	}
	if !s.IsPostfix() && s.Arguments != nil {
		if t := s.Arguments.End(); t != nil {
			return t
		}
	}
	return endOf(s.Receiver, s.Selector)
}

func (s *Send) Accept(v Visitor) { v.VisitSend(s) }

func (s *Send) VisitChildren(v Visitor) {
	acceptPresent(v, s.Receiver, s.Selector, s.Arguments)
}

// SendSet is a Send that additionally carries an assignment or compound
// assignment operator, covering forms like x = 1, a.b += 2 and x++. The
// selector names the assigned property. For index assignment the selector is
// the index operator and the index expressions lead the argument list; for
// prefix and postfix increment forms the argument container carries the
// fixity tag and the operator is the assignment operator.
type SendSet struct {
	Send
	AssignmentOperator *Operator
}

// SendSet returns a new SendSet. The assignment operator must be present for
// the node to be well-formed.
func (b *Builder) SendSet(receiver, selector Node, op *Operator, arguments *NodeList) *SendSet {
	return &SendSet{
		Send:               Send{node: b.next(), Receiver: receiver, Selector: selector, Arguments: arguments},
		AssignmentOperator: op,
	}
}

// PrefixSendSet returns a new SendSet for a prefix increment form like ++x,
// with an empty Prefix argument container.
func (b *Builder) PrefixSendSet(receiver, selector Node, op *Operator) *SendSet {
	return &SendSet{
		Send:               Send{node: b.next(), Receiver: receiver, Selector: selector, Arguments: b.PrefixList()},
		AssignmentOperator: op,
	}
}

// PostfixSendSet is the analogue of PrefixSendSet for postfix forms like x++.
func (b *Builder) PostfixSendSet(receiver, selector Node, op *Operator) *SendSet {
	return &SendSet{
		Send:               Send{node: b.next(), Receiver: receiver, Selector: selector, Arguments: b.PostfixList()},
		AssignmentOperator: op,
	}
}

func (s *SendSet) Begin() *token.Token {
	if s.IsPrefix() {
		return beginOf(s.AssignmentOperator)
	}
	return s.Send.Begin()
}

func (s *SendSet) End() *token.Token {
	if s.IsPostfix() {
		return endOf(s.AssignmentOperator)
	}
	return s.Send.End()
}

func (s *SendSet) Accept(v Visitor) { v.VisitSendSet(s) }

func (s *SendSet) VisitChildren(v Visitor) {
	acceptPresent(v, s.Receiver, s.Selector, s.AssignmentOperator, s.Arguments)
}

// NewExpression = ('new' | 'const') Send
//
// NewExpression is a constructor invocation; the keyword token distinguishes
// the two allocation forms.
type NewExpression struct {
	node
	NewToken *token.Token
	Send     *Send
}

// New returns a new NewExpression with the given keyword token and
// constructor send.
func (b *Builder) New(newToken *token.Token, send *Send) *NewExpression {
	return &NewExpression{node: b.next(), NewToken: newToken, Send: send}
}

// IsConst reports whether the allocation uses the const form.
func (n *NewExpression) IsConst() bool {
	return n.NewToken != nil && n.NewToken.Text == "const"
}

func (n *NewExpression) Begin() *token.Token {
	if n.NewToken != nil {
		return n.NewToken
	}
	return beginOf(n.Send)
}

func (n *NewExpression) End() *token.Token {
	if t := endOf(n.Send); t != nil {
		return t
	}
	return n.NewToken
}

func (n *NewExpression) Accept(v Visitor) { v.VisitNewExpression(n) }

func (n *NewExpression) VisitChildren(v Visitor) {
	if !absent(n.Send) {
		n.Send.Accept(v)
	}
}

// Conditional = Expression '?' Expression ':' Expression
type Conditional struct {
	node
	Condition      Node
	ThenExpression Node
	ElseExpression Node
}

// Conditional returns a new Conditional.
func (b *Builder) Conditional(condition, thenExpr, elseExpr Node) *Conditional {
	return &Conditional{node: b.next(), Condition: condition, ThenExpression: thenExpr, ElseExpression: elseExpr}
}

func (c *Conditional) Begin() *token.Token {
	return beginOf(c.Condition, c.ThenExpression, c.ElseExpression)
}

func (c *Conditional) End() *token.Token {
	return endOf(c.Condition, c.ThenExpression, c.ElseExpression)
}

func (c *Conditional) Accept(v Visitor) { v.VisitConditional(c) }

func (c *Conditional) VisitChildren(v Visitor) {
	acceptPresent(v, c.Condition, c.ThenExpression, c.ElseExpression)
}

// ParenthesizedExpression = '(' Expression ')'
//
// Only the opening token is stored; the closing token is reached through the
// opening token's Closer link.
type ParenthesizedExpression struct {
	node
	BeginToken *token.Token
	Expression Node
}

// Parenthesized returns a new ParenthesizedExpression with the given opening
// token and inner expression.
func (b *Builder) Parenthesized(beginToken *token.Token, expr Node) *ParenthesizedExpression {
	return &ParenthesizedExpression{node: b.next(), BeginToken: beginToken, Expression: expr}
}

func (p *ParenthesizedExpression) Begin() *token.Token { return p.BeginToken }

func (p *ParenthesizedExpression) End() *token.Token {
	if p.BeginToken == nil {
		return endOf(p.Expression)
	}
	return p.BeginToken.Closer
}

func (p *ParenthesizedExpression) Accept(v Visitor) { v.VisitParenthesizedExpression(p) }

func (p *ParenthesizedExpression) VisitChildren(v Visitor) {
	acceptPresent(v, p.Expression)
}

// StringInterpolation = LiteralString { StringInterpolationPart }
//
// The leading string covers the source up to the first interpolated
// expression; each part pairs an expression with the string fragment that
// follows it, the last fragment carrying the closing quote.
type StringInterpolation struct {
	node
	String *LiteralString
	Parts  *NodeList
}

// StringInterpolation returns a new StringInterpolation.
func (b *Builder) StringInterpolation(str *LiteralString, parts *NodeList) *StringInterpolation {
	return &StringInterpolation{node: b.next(), String: str, Parts: parts}
}

func (s *StringInterpolation) Begin() *token.Token { return beginOf(s.String, s.Parts) }
func (s *StringInterpolation) End() *token.Token   { return endOf(s.String, s.Parts) }
func (s *StringInterpolation) Accept(v Visitor)    { v.VisitStringInterpolation(s) }

func (s *StringInterpolation) VisitChildren(v Visitor) {
	acceptPresent(v, s.String, s.Parts)
}

// StringInterpolationPart is one '${' Expression '}' fragment of a string
// interpolation, together with the literal text that follows it.
type StringInterpolationPart struct {
	node
	Expression Node
	String     *LiteralString
}

// StringInterpolationPart returns a new StringInterpolationPart.
func (b *Builder) StringInterpolationPart(expr Node, str *LiteralString) *StringInterpolationPart {
	return &StringInterpolationPart{node: b.next(), Expression: expr, String: str}
}

func (s *StringInterpolationPart) Begin() *token.Token { return beginOf(s.Expression, s.String) }
func (s *StringInterpolationPart) End() *token.Token   { return endOf(s.Expression, s.String) }
func (s *StringInterpolationPart) Accept(v Visitor)    { v.VisitStringInterpolationPart(s) }

func (s *StringInterpolationPart) VisitChildren(v Visitor) {
	acceptPresent(v, s.Expression, s.String)
}
