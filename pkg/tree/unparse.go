package tree

import (
	"fmt"
	"strings"

	"github.com/sable-lang/sable/pkg/logutil"
	"github.com/sable-lang/sable/pkg/token"
)

var logger = logutil.GetLogger("[tree] ")

// Unparse reconstructs source-shaped text from the tree rooted at n. Stored
// tokens are emitted verbatim and joined with the fixed punctuation of each
// form; whitespace and comments are not modeled, so the result is a
// best-effort rendering rather than an exact round trip.
//
// Unparse never panics, even on a malformed tree. When a required part of a
// node is absent the failure is contained: the result describes the first
// failure and quotes whatever partial output had been accumulated. A nil
// node yields the empty string.
func Unparse(n Node) string {
	if absent(n) {
		return ""
	}
	u := &unparser{}
	n.Accept(u)
	if u.failure != "" {
		logger.Printf("unparse of node %d failed: %s", n.ID(), u.failure)
		return fmt.Sprintf("(unparse error: %s; partial: %q)", u.failure, u.sb.String())
	}
	return u.sb.String()
}

// unparser is the Visitor behind Unparse. It accumulates output in sb and
// the first failure description in failure; once a failure is recorded the
// traversal keeps going but emits nothing for the failed part.
type unparser struct {
	sb      strings.Builder
	failure string
}

func (u *unparser) write(s string) { u.sb.WriteString(s) }

func (u *unparser) fail(desc string) {
	if u.failure == "" {
		u.failure = desc
	}
}

// token writes the text of a required token, or records a failure.
func (u *unparser) token(t *token.Token, what string) {
	if t == nil {
		u.fail(what + " is missing its token")
		return
	}
	u.write(t.Text)
}

// optToken writes the text of a token if it is present.
func (u *unparser) optToken(t *token.Token) {
	if t != nil {
		u.write(t.Text)
	}
}

// child unparses a required child, or records a failure.
func (u *unparser) child(n Node, what string) {
	if absent(n) {
		u.fail(what + " is absent")
		return
	}
	n.Accept(u)
}

// optChild unparses a child if it is present.
func (u *unparser) optChild(n Node) {
	if !absent(n) {
		n.Accept(u)
	}
}

// elements writes the present elements of a list joined by its delimiter,
// without the boundary tokens. A nil list writes nothing.
func (u *unparser) elements(l *NodeList) {
	if l == nil {
		return
	}
	sep := ""
	if l.Delimiter != nil {
		sep = l.Delimiter.Text + " "
	}
	first := true
	for _, child := range l.Nodes {
		if absent(child) {
			continue
		}
		if !first {
			u.write(sep)
		}
		first = false
		child.Accept(u)
	}
}

func presentNodes(nodes []Node) []Node {
	var present []Node
	for _, n := range nodes {
		if !absent(n) {
			present = append(present, n)
		}
	}
	return present
}

func hasElements(l *NodeList) bool { return l != nil && !l.IsEmpty() }

func hasModifiers(m *Modifiers) bool { return m != nil && hasElements(m.Nodes) }

func (u *unparser) VisitIdentifier(n *Identifier) { u.token(n.Token, "identifier") }

func (u *unparser) VisitOperator(n *Operator) { u.token(n.Token, "operator") }

func (u *unparser) VisitLiteralInt(n *LiteralInt) { u.token(n.Token, "integer literal") }

func (u *unparser) VisitLiteralFloat(n *LiteralFloat) { u.token(n.Token, "floating-point literal") }

func (u *unparser) VisitLiteralBool(n *LiteralBool) { u.token(n.Token, "boolean literal") }

func (u *unparser) VisitLiteralString(n *LiteralString) { u.token(n.Token, "string literal") }

func (u *unparser) VisitLiteralNull(n *LiteralNull) { u.token(n.Token, "null literal") }

func (u *unparser) VisitSend(n *Send) {
	switch {
	case n.IsPrefix():
		u.child(n.Selector, "prefix send operator")
		u.child(n.Receiver, "prefix send operand")
	case n.IsPostfix():
		u.child(n.Receiver, "postfix send operand")
		u.child(n.Selector, "postfix send operator")
	case n.IsPropertyAccess():
		if !absent(n.Receiver) {
			u.optChild(n.Receiver)
			u.write(".")
		}
		u.child(n.Selector, "property access selector")
	case n.IsIndex():
		// The selector spelling is never emitted; the argument list carries
		// the bracket tokens.
		u.child(n.Receiver, "index send receiver")
		u.child(n.Arguments, "index send arguments")
	case n.IsOperator():
		u.child(n.Receiver, "operator send receiver")
		u.write(" ")
		u.child(n.Selector, "operator send selector")
		u.write(" ")
		u.elements(n.Arguments)
	default:
		if !absent(n.Receiver) {
			u.optChild(n.Receiver)
			if !absent(n.Selector) {
				u.write(".")
			}
		}
		u.optChild(n.Selector)
		u.child(n.Arguments, "call arguments")
	}
}

func (u *unparser) VisitSendSet(n *SendSet) {
	switch {
	case n.IsPrefix():
		u.child(n.AssignmentOperator, "prefix assignment operator")
		u.assignmentTarget(n)
	case n.IsPostfix():
		u.assignmentTarget(n)
		u.child(n.AssignmentOperator, "postfix assignment operator")
	case n.IsIndex():
		// The index expressions lead the argument list and the assigned
		// value ends it.
		u.child(n.Receiver, "index assignment receiver")
		if n.Arguments == nil || n.Arguments.Len() < 2 {
			u.fail("index assignment is missing its index or value")
			return
		}
		present := presentNodes(n.Arguments.Nodes)
		u.write("[")
		for i, el := range present[:len(present)-1] {
			if i > 0 {
				u.write(", ")
			}
			el.Accept(u)
		}
		u.write("] ")
		u.child(n.AssignmentOperator, "assignment operator")
		u.write(" ")
		present[len(present)-1].Accept(u)
	default:
		u.assignmentTarget(n)
		u.write(" ")
		u.child(n.AssignmentOperator, "assignment operator")
		u.write(" ")
		u.elements(n.Arguments)
	}
}

// assignmentTarget writes the assigned property path of a SendSet: the
// receiver, and the selector or, for index forms, the bracketed index
// expressions.
func (u *unparser) assignmentTarget(n *SendSet) {
	if !absent(n.Receiver) {
		u.optChild(n.Receiver)
		if !absent(n.Selector) && !n.IsIndex() {
			u.write(".")
		}
	}
	if n.IsIndex() {
		u.write("[")
		u.elements(n.Arguments)
		u.write("]")
		return
	}
	u.child(n.Selector, "assignment target")
}

func (u *unparser) VisitNewExpression(n *NewExpression) {
	u.token(n.NewToken, "new expression")
	u.write(" ")
	u.child(n.Send, "constructor send")
}

func (u *unparser) VisitConditional(n *Conditional) {
	u.child(n.Condition, "conditional condition")
	u.write(" ? ")
	u.child(n.ThenExpression, "conditional then expression")
	u.write(" : ")
	u.child(n.ElseExpression, "conditional else expression")
}

func (u *unparser) VisitParenthesizedExpression(n *ParenthesizedExpression) {
	if n.BeginToken == nil {
		u.fail("parenthesized expression is missing its opening token")
		u.optChild(n.Expression)
		return
	}
	u.write(n.BeginToken.Text)
	u.child(n.Expression, "parenthesized expression body")
	if n.BeginToken.Closer == nil {
		u.fail("opening token has no matching closer")
		return
	}
	u.write(n.BeginToken.Closer.Text)
}

func (u *unparser) VisitStringInterpolation(n *StringInterpolation) {
	u.child(n.String, "interpolation leading string")
	u.child(n.Parts, "interpolation parts")
}

func (u *unparser) VisitStringInterpolationPart(n *StringInterpolationPart) {
	u.write("${")
	u.child(n.Expression, "interpolated expression")
	u.write("}")
	u.child(n.String, "interpolation fragment")
}

func (u *unparser) VisitNodeList(n *NodeList) {
	u.optToken(n.Left)
	u.elements(n)
	u.optToken(n.Right)
}

func (u *unparser) VisitBlock(n *Block) {
	u.child(n.Statements, "block statement list")
}

func (u *unparser) VisitIf(n *If) {
	u.token(n.IfToken, "if statement")
	u.write(" ")
	u.child(n.Condition, "if condition")
	u.write(" ")
	u.child(n.ThenPart, "then branch")
	if n.HasElsePart() {
		u.write(" ")
		u.token(n.ElseToken, "else branch")
		u.write(" ")
		u.optChild(n.ElsePart)
	}
}

func (u *unparser) VisitFor(n *For) {
	u.token(n.ForToken, "for statement")
	u.write(" (")
	u.optChild(n.Initializer)
	u.write("; ")
	u.optChild(n.Condition)
	u.write("; ")
	u.elements(n.Update)
	u.write(") ")
	u.child(n.Body, "for body")
}

func (u *unparser) VisitWhile(n *While) {
	u.token(n.WhileToken, "while statement")
	u.write(" ")
	u.child(n.Condition, "while condition")
	u.write(" ")
	u.child(n.Body, "while body")
}

func (u *unparser) VisitDoWhile(n *DoWhile) {
	u.token(n.DoToken, "do-while statement")
	u.write(" ")
	u.child(n.Body, "do-while body")
	u.write(" ")
	u.token(n.WhileToken, "do-while statement")
	u.write(" ")
	u.child(n.Condition, "do-while condition")
	u.optToken(n.EndToken)
}

func (u *unparser) VisitReturn(n *Return) {
	u.token(n.BeginToken, "return statement")
	if n.HasExpression() {
		u.write(" ")
		u.optChild(n.Expression)
	}
	u.optToken(n.EndToken)
}

func (u *unparser) VisitExpressionStatement(n *ExpressionStatement) {
	u.child(n.Expression, "expression statement body")
	u.optToken(n.EndToken)
}

func (u *unparser) VisitThrow(n *Throw) {
	u.token(n.ThrowToken, "throw statement")
	if !absent(n.Expression) {
		u.write(" ")
		u.optChild(n.Expression)
	}
	u.optToken(n.EndToken)
}

func (u *unparser) VisitClass(n *Class) {
	u.token(n.Keyword, "class declaration")
	u.write(" ")
	u.child(n.Name, "class name")
	if !absent(n.Extends) {
		u.write(" ")
		u.token(n.ExtendsToken, "extends clause")
		u.write(" ")
		u.optChild(n.Extends)
	}
	if hasElements(n.Interfaces) {
		u.write(" implements ")
		u.elements(n.Interfaces)
	}
}

func (u *unparser) VisitFunctionExpression(n *FunctionExpression) {
	if hasModifiers(n.Modifiers) {
		u.optChild(n.Modifiers)
		u.write(" ")
	}
	if !absent(n.ReturnType) {
		u.optChild(n.ReturnType)
		u.write(" ")
	}
	u.optChild(n.Name)
	u.child(n.Parameters, "function parameter list")
	if hasElements(n.Initializers) {
		u.write(" : ")
		u.elements(n.Initializers)
	}
	if !absent(n.Body) {
		u.write(" ")
		u.optChild(n.Body)
	}
}

func (u *unparser) VisitVariableDefinitions(n *VariableDefinitions) {
	if hasModifiers(n.Modifiers) {
		u.optChild(n.Modifiers)
		u.write(" ")
	}
	if !absent(n.Type) {
		u.optChild(n.Type)
		u.write(" ")
	}
	u.child(n.Definitions, "variable definition list")
	u.optToken(n.EndToken)
}

func (u *unparser) VisitTypeAnnotation(n *TypeAnnotation) {
	u.child(n.TypeName, "type name")
	u.optChild(n.TypeArguments)
}

// Modifier keywords are joined by single spaces, whatever the stored
// delimiter of the underlying list.
func (u *unparser) VisitModifiers(n *Modifiers) {
	if n.Nodes == nil {
		return
	}
	first := true
	for _, child := range n.Nodes.Nodes {
		if absent(child) {
			continue
		}
		if !first {
			u.write(" ")
		}
		first = false
		child.Accept(u)
	}
}
