// Package tree defines the syntax tree of Sable source code.
//
// The tree is produced by the parser and consumed by every later pass. Nodes
// are immutable once constructed and are always allocated through a
// [Builder], which assigns each of them a process-unique identity. A node's
// source extent is derived from the tokens it covers, and the [Visitor]
// interface provides double dispatch over the closed set of node types.
package tree

import (
	"reflect"
	"sync/atomic"

	"github.com/sable-lang/sable/pkg/diag"
	"github.com/sable-lang/sable/pkg/token"
)

// NodeID identifies a node among all nodes allocated by the same Builder.
// It is assigned at construction and never reused; the zero value is never
// assigned.
type NodeID uint64

// Node is implemented by all syntax tree nodes.
type Node interface {
	// ID returns the identity assigned to the node at construction.
	ID() NodeID
	// Begin returns the first token covered by the node, or nil if no
	// covered token can be determined.
	Begin() *token.Token
	// End returns the last token covered by the node, or nil if no covered
	// token can be determined.
	End() *token.Token
	// Accept calls the Visitor method corresponding to the node's type.
	Accept(v Visitor)
	// VisitChildren calls Accept with v on each present immediate child, in
	// source order. It does not recurse.
	VisitChildren(v Visitor)
	n() *node
}

// node is embedded in all Node implementations.
type node struct {
	id NodeID
}

func (n *node) ID() NodeID { return n.id }

func (n *node) n() *node { return n }

// Builder allocates nodes. All nodes of a tree must come from the same
// Builder, which gives each of them a distinct identity; two nodes are the
// same node only if they are the same pointer, never by structure. The zero
// value is ready to use, and a single Builder may be shared by concurrent
// parses.
type Builder struct {
	lastID uint64
}

func (b *Builder) next() node {
	return node{id: NodeID(atomic.AddUint64(&b.lastID, 1))}
}

// Range returns the extent of n in the source as a [diag.Ranging], suitable
// for use in a [diag.Context]. If n or either of its boundary tokens is
// absent, it returns [diag.UnknownRanging].
func Range(n Node) diag.Ranging {
	if absent(n) {
		return diag.UnknownRanging
	}
	begin, end := n.Begin(), n.End()
	if begin == nil || end == nil {
		return diag.UnknownRanging
	}
	return diag.Ranging{From: begin.From, To: end.To}
}

// absent reports whether a child node is absent, either as a nil interface
// or as a typed nil pointer inside a non-nil interface.
func absent(n Node) bool {
	return n == nil || reflect.ValueOf(n).IsNil()
}

// beginOf returns the begin token of the first of the given nodes that has
// one, preferring each node's begin token but falling back to its end token
// when the begin token is absent. Absent nodes are skipped. It returns nil
// when no node yields a token.
func beginOf(nodes ...Node) *token.Token {
	for _, n := range nodes {
		if absent(n) {
			continue
		}
		if t := n.Begin(); t != nil {
			return t
		}
		if t := n.End(); t != nil {
			return t
		}
	}
	return nil
}

// endOf is the analogue of beginOf for end tokens. It scans the nodes from
// last to first, preferring each node's end token.
func endOf(nodes ...Node) *token.Token {
	for i := len(nodes) - 1; i >= 0; i-- {
		n := nodes[i]
		if absent(n) {
			continue
		}
		if t := n.End(); t != nil {
			return t
		}
		if t := n.Begin(); t != nil {
			return t
		}
	}
	return nil
}

// acceptPresent dispatches v on each present node, in the given order. It is
// the shared implementation of most VisitChildren methods.
func acceptPresent(v Visitor, nodes ...Node) {
	for _, n := range nodes {
		if !absent(n) {
			n.Accept(v)
		}
	}
}
