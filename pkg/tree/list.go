package tree

import (
	"fmt"

	"github.com/sable-lang/sable/pkg/token"
)

// Fixity tags an argument container with the position of a unary operator
// relative to its operand. Ordinary containers carry NoFixity; the send
// predicates [Send.IsPrefix] and [Send.IsPostfix] read the tag.
type Fixity uint8

// Possible Fixity values.
const (
	NoFixity Fixity = iota
	Prefix
	Postfix
)

// String returns a human-readable name of the fixity.
func (f Fixity) String() string {
	switch f {
	case NoFixity:
		return "none"
	case Prefix:
		return "prefix"
	case Postfix:
		return "postfix"
	}
	return fmt.Sprintf("bad fixity %d", uint8(f))
}

// NodeList is an ordered sequence of nodes, used for argument lists,
// statement blocks, interface lists and the like. The order of Nodes is
// semantically significant and always equals construction order.
//
// Left and Right are the explicit boundary tokens when the source form has
// them, like the parentheses around an argument list. Delimiter is the token
// separating elements; it is used by the unparser to join elements and as a
// span fallback for otherwise token-less lists.
type NodeList struct {
	node
	Left      *token.Token
	Nodes     []Node
	Delimiter *token.Token
	Right     *token.Token
	Fixity    Fixity
}

// List returns a new NodeList with the given boundary tokens, elements and
// delimiter, any of which may be absent.
func (b *Builder) List(left *token.Token, nodes []Node, delimiter, right *token.Token) *NodeList {
	return &NodeList{
		node: b.next(),
		Left: left, Nodes: nodes, Delimiter: delimiter, Right: right,
	}
}

// EmptyList returns a new NodeList with no elements and no tokens.
func (b *Builder) EmptyList() *NodeList {
	return &NodeList{node: b.next()}
}

// SingletonList returns a new NodeList whose only element is n, with no
// tokens.
func (b *Builder) SingletonList(n Node) *NodeList {
	return &NodeList{node: b.next(), Nodes: []Node{n}}
}

// PrefixList returns a new NodeList tagged Prefix, holding the given
// elements. A Send whose arguments are such a list is a prefix unary
// operation.
func (b *Builder) PrefixList(nodes ...Node) *NodeList {
	return &NodeList{node: b.next(), Nodes: nodes, Fixity: Prefix}
}

// PostfixList is the analogue of PrefixList for postfix unary operations.
func (b *Builder) PostfixList(nodes ...Node) *NodeList {
	return &NodeList{node: b.next(), Nodes: nodes, Fixity: Postfix}
}

// Len returns the number of present elements.
func (l *NodeList) Len() int {
	count := 0
	for _, child := range l.Nodes {
		if !absent(child) {
			count++
		}
	}
	return count
}

// IsEmpty reports whether the list has no present elements.
func (l *NodeList) IsEmpty() bool { return l.Len() == 0 }

func (l *NodeList) Begin() *token.Token {
	if l.Left != nil {
		return l.Left
	}
	if t := beginOf(l.Nodes...); t != nil {
		return t
	}
	if l.Delimiter != nil {
		return l.Delimiter
	}
	return l.Right
}

func (l *NodeList) End() *token.Token {
	if l.Right != nil {
		return l.Right
	}
	if t := endOf(l.Nodes...); t != nil {
		return t
	}
	if l.Delimiter != nil {
		return l.Delimiter
	}
	return l.Left
}

func (l *NodeList) Accept(v Visitor) { v.VisitNodeList(l) }

func (l *NodeList) VisitChildren(v Visitor) {
	for _, child := range l.Nodes {
		if !absent(child) {
			child.Accept(v)
		}
	}
}
