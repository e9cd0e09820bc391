package tree

import (
	"github.com/sable-lang/sable/pkg/token"
)

// Block = '{' { Statement } '}'
//
// The statement list carries the brace tokens as its boundaries.
type Block struct {
	node
	Statements *NodeList
}

// Block returns a new Block over the given statement list.
func (b *Builder) Block(statements *NodeList) *Block {
	return &Block{node: b.next(), Statements: statements}
}

func (bl *Block) Begin() *token.Token { return beginOf(bl.Statements) }
func (bl *Block) End() *token.Token   { return endOf(bl.Statements) }
func (bl *Block) Accept(v Visitor)    { v.VisitBlock(bl) }

func (bl *Block) VisitChildren(v Visitor) {
	acceptPresent(v, bl.Statements)
}

// If = 'if' ParenthesizedExpression Statement [ 'else' Statement ]
type If struct {
	node
	IfToken   *token.Token
	Condition *ParenthesizedExpression
	ThenPart  Node
	ElseToken *token.Token
	ElsePart  Node
}

// If returns a new If. ElseToken and elsePart may be absent together.
func (b *Builder) If(ifToken *token.Token, condition *ParenthesizedExpression, thenPart Node, elseToken *token.Token, elsePart Node) *If {
	return &If{node: b.next(), IfToken: ifToken, Condition: condition, ThenPart: thenPart, ElseToken: elseToken, ElsePart: elsePart}
}

// HasElsePart reports whether the else branch is present.
func (i *If) HasElsePart() bool { return !absent(i.ElsePart) }

func (i *If) Begin() *token.Token {
	if i.IfToken != nil {
		return i.IfToken
	}
	return beginOf(i.Condition, i.ThenPart, i.ElsePart)
}

func (i *If) End() *token.Token {
	if t := endOf(i.Condition, i.ThenPart, i.ElsePart); t != nil {
		return t
	}
	if i.ElseToken != nil {
		return i.ElseToken
	}
	return i.IfToken
}

func (i *If) Accept(v Visitor) { v.VisitIf(i) }

func (i *If) VisitChildren(v Visitor) {
	acceptPresent(v, i.Condition, i.ThenPart, i.ElsePart)
}

// For = 'for' '(' [ Node ] ';' [ Expression ] ';' [ Expression { ',' Expression } ] ')' Statement
//
// Initializer is a variable definition or an expression statement, or absent
// for a bare semicolon. Update holds the comma-separated update expressions.
type For struct {
	node
	ForToken    *token.Token
	Initializer Node
	Condition   Node
	Update      *NodeList
	Body        Node
}

// For returns a new For.
func (b *Builder) For(forToken *token.Token, initializer, condition Node, update *NodeList, body Node) *For {
	return &For{node: b.next(), ForToken: forToken, Initializer: initializer, Condition: condition, Update: update, Body: body}
}

func (f *For) Begin() *token.Token {
	if f.ForToken != nil {
		return f.ForToken
	}
	return beginOf(f.Initializer, f.Condition, f.Update, f.Body)
}

func (f *For) End() *token.Token {
	if t := endOf(f.Initializer, f.Condition, f.Update, f.Body); t != nil {
		return t
	}
	return f.ForToken
}

func (f *For) Accept(v Visitor) { v.VisitFor(f) }

func (f *For) VisitChildren(v Visitor) {
	acceptPresent(v, f.Initializer, f.Condition, f.Update, f.Body)
}

// While = 'while' ParenthesizedExpression Statement
type While struct {
	node
	WhileToken *token.Token
	Condition  *ParenthesizedExpression
	Body       Node
}

// While returns a new While.
func (b *Builder) While(whileToken *token.Token, condition *ParenthesizedExpression, body Node) *While {
	return &While{node: b.next(), WhileToken: whileToken, Condition: condition, Body: body}
}

func (w *While) Begin() *token.Token {
	if w.WhileToken != nil {
		return w.WhileToken
	}
	return beginOf(w.Condition, w.Body)
}

func (w *While) End() *token.Token {
	if t := endOf(w.Condition, w.Body); t != nil {
		return t
	}
	return w.WhileToken
}

func (w *While) Accept(v Visitor) { v.VisitWhile(w) }

func (w *While) VisitChildren(v Visitor) {
	acceptPresent(v, w.Condition, w.Body)
}

// DoWhile = 'do' Statement 'while' ParenthesizedExpression ';'
type DoWhile struct {
	node
	DoToken    *token.Token
	Body       Node
	WhileToken *token.Token
	Condition  *ParenthesizedExpression
	EndToken   *token.Token
}

// DoWhile returns a new DoWhile. EndToken is the terminating semicolon.
func (b *Builder) DoWhile(doToken *token.Token, body Node, whileToken *token.Token, condition *ParenthesizedExpression, endToken *token.Token) *DoWhile {
	return &DoWhile{node: b.next(), DoToken: doToken, Body: body, WhileToken: whileToken, Condition: condition, EndToken: endToken}
}

func (d *DoWhile) Begin() *token.Token {
	if d.DoToken != nil {
		return d.DoToken
	}
	return beginOf(d.Body, d.Condition)
}

func (d *DoWhile) End() *token.Token {
	if d.EndToken != nil {
		return d.EndToken
	}
	if t := endOf(d.Body, d.Condition); t != nil {
		return t
	}
	if d.WhileToken != nil {
		return d.WhileToken
	}
	return d.DoToken
}

func (d *DoWhile) Accept(v Visitor) { v.VisitDoWhile(d) }

func (d *DoWhile) VisitChildren(v Visitor) {
	acceptPresent(v, d.Body, d.Condition)
}

// Return = 'return' [ Expression ] ';'
type Return struct {
	node
	BeginToken *token.Token
	Expression Node
	EndToken   *token.Token
}

// Return returns a new Return. The expression may be absent.
func (b *Builder) Return(beginToken *token.Token, expr Node, endToken *token.Token) *Return {
	return &Return{node: b.next(), BeginToken: beginToken, Expression: expr, EndToken: endToken}
}

// HasExpression reports whether the return carries a value expression.
func (r *Return) HasExpression() bool { return !absent(r.Expression) }

func (r *Return) Begin() *token.Token {
	if r.BeginToken != nil {
		return r.BeginToken
	}
	return beginOf(r.Expression)
}

func (r *Return) End() *token.Token {
	if r.EndToken != nil {
		return r.EndToken
	}
	if t := endOf(r.Expression); t != nil {
		return t
	}
	return r.BeginToken
}

func (r *Return) Accept(v Visitor) { v.VisitReturn(r) }

func (r *Return) VisitChildren(v Visitor) {
	acceptPresent(v, r.Expression)
}

// ExpressionStatement = Expression ';'
type ExpressionStatement struct {
	node
	Expression Node
	EndToken   *token.Token
}

// ExpressionStatement returns a new ExpressionStatement.
func (b *Builder) ExpressionStatement(expr Node, endToken *token.Token) *ExpressionStatement {
	return &ExpressionStatement{node: b.next(), Expression: expr, EndToken: endToken}
}

func (e *ExpressionStatement) Begin() *token.Token {
	if t := beginOf(e.Expression); t != nil {
		return t
	}
	return e.EndToken
}

func (e *ExpressionStatement) End() *token.Token {
	if e.EndToken != nil {
		return e.EndToken
	}
	return endOf(e.Expression)
}

func (e *ExpressionStatement) Accept(v Visitor) { v.VisitExpressionStatement(e) }

func (e *ExpressionStatement) VisitChildren(v Visitor) {
	acceptPresent(v, e.Expression)
}

// Throw = 'throw' [ Expression ] ';'
//
// An absent expression rethrows the exception being handled.
type Throw struct {
	node
	ThrowToken *token.Token
	Expression Node
	EndToken   *token.Token
}

// Throw returns a new Throw.
func (b *Builder) Throw(throwToken *token.Token, expr Node, endToken *token.Token) *Throw {
	return &Throw{node: b.next(), ThrowToken: throwToken, Expression: expr, EndToken: endToken}
}

func (t *Throw) Begin() *token.Token {
	if t.ThrowToken != nil {
		return t.ThrowToken
	}
	return beginOf(t.Expression)
}

func (t *Throw) End() *token.Token {
	if t.EndToken != nil {
		return t.EndToken
	}
	if tok := endOf(t.Expression); tok != nil {
		return tok
	}
	return t.ThrowToken
}

func (t *Throw) Accept(v Visitor) { v.VisitThrow(t) }

func (t *Throw) VisitChildren(v Visitor) {
	acceptPresent(v, t.Expression)
}
