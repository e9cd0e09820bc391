package tree

// Visitor is the double-dispatch interface over the closed set of node
// types, with one method per concrete type. Abstract groupings like
// "expression" or "statement" are never dispatch targets.
//
// [Node.Accept] invokes the method matching the node's type, and
// [Node.VisitChildren] invokes Accept on each present child without
// recursing. A visitor that wants to descend recurses explicitly, typically
// by calling VisitChildren on the node it was given.
type Visitor interface {
	VisitIdentifier(n *Identifier)
	VisitOperator(n *Operator)
	VisitLiteralInt(n *LiteralInt)
	VisitLiteralFloat(n *LiteralFloat)
	VisitLiteralBool(n *LiteralBool)
	VisitLiteralString(n *LiteralString)
	VisitLiteralNull(n *LiteralNull)
	VisitSend(n *Send)
	VisitSendSet(n *SendSet)
	VisitNewExpression(n *NewExpression)
	VisitConditional(n *Conditional)
	VisitParenthesizedExpression(n *ParenthesizedExpression)
	VisitStringInterpolation(n *StringInterpolation)
	VisitStringInterpolationPart(n *StringInterpolationPart)
	VisitNodeList(n *NodeList)
	VisitBlock(n *Block)
	VisitIf(n *If)
	VisitFor(n *For)
	VisitWhile(n *While)
	VisitDoWhile(n *DoWhile)
	VisitReturn(n *Return)
	VisitExpressionStatement(n *ExpressionStatement)
	VisitThrow(n *Throw)
	VisitClass(n *Class)
	VisitFunctionExpression(n *FunctionExpression)
	VisitVariableDefinitions(n *VariableDefinitions)
	VisitTypeAnnotation(n *TypeAnnotation)
	VisitModifiers(n *Modifiers)
}

// VisitorFunc adapts a function into a Visitor that invokes the function for
// every node type, in the manner of http.HandlerFunc. It is useful for
// visitors that treat all node types alike.
type VisitorFunc func(Node)

func (f VisitorFunc) VisitIdentifier(n *Identifier)                   { f(n) }
func (f VisitorFunc) VisitOperator(n *Operator)                       { f(n) }
func (f VisitorFunc) VisitLiteralInt(n *LiteralInt)                   { f(n) }
func (f VisitorFunc) VisitLiteralFloat(n *LiteralFloat)               { f(n) }
func (f VisitorFunc) VisitLiteralBool(n *LiteralBool)                 { f(n) }
func (f VisitorFunc) VisitLiteralString(n *LiteralString)             { f(n) }
func (f VisitorFunc) VisitLiteralNull(n *LiteralNull)                 { f(n) }
func (f VisitorFunc) VisitSend(n *Send)                               { f(n) }
func (f VisitorFunc) VisitSendSet(n *SendSet)                         { f(n) }
func (f VisitorFunc) VisitNewExpression(n *NewExpression)             { f(n) }
func (f VisitorFunc) VisitConditional(n *Conditional)                 { f(n) }
func (f VisitorFunc) VisitParenthesizedExpression(n *ParenthesizedExpression) {
	f(n)
}
func (f VisitorFunc) VisitStringInterpolation(n *StringInterpolation) { f(n) }
func (f VisitorFunc) VisitStringInterpolationPart(n *StringInterpolationPart) {
	f(n)
}
func (f VisitorFunc) VisitNodeList(n *NodeList)                         { f(n) }
func (f VisitorFunc) VisitBlock(n *Block)                               { f(n) }
func (f VisitorFunc) VisitIf(n *If)                                     { f(n) }
func (f VisitorFunc) VisitFor(n *For)                                   { f(n) }
func (f VisitorFunc) VisitWhile(n *While)                               { f(n) }
func (f VisitorFunc) VisitDoWhile(n *DoWhile)                           { f(n) }
func (f VisitorFunc) VisitReturn(n *Return)                             { f(n) }
func (f VisitorFunc) VisitExpressionStatement(n *ExpressionStatement)   { f(n) }
func (f VisitorFunc) VisitThrow(n *Throw)                               { f(n) }
func (f VisitorFunc) VisitClass(n *Class)                               { f(n) }
func (f VisitorFunc) VisitFunctionExpression(n *FunctionExpression)     { f(n) }
func (f VisitorFunc) VisitVariableDefinitions(n *VariableDefinitions)   { f(n) }
func (f VisitorFunc) VisitTypeAnnotation(n *TypeAnnotation)             { f(n) }
func (f VisitorFunc) VisitModifiers(n *Modifiers)                       { f(n) }

// Walk traverses the tree rooted at n in depth-first preorder, calling f on
// each node. If f returns false the children of that node are skipped.
// Absent nodes are skipped silently.
func Walk(n Node, f func(Node) bool) {
	if absent(n) {
		return
	}
	if !f(n) {
		return
	}
	n.VisitChildren(VisitorFunc(func(child Node) {
		Walk(child, f)
	}))
}
