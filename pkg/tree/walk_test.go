package tree

import (
	"reflect"
	"testing"
)

func TestWalk_Preorder(t *testing.T) {
	var b Builder
	// f(x);
	f := ident(&b, "f", 0)
	x := ident(&b, "x", 2)
	lp, rp := pair("(", 1, ")", 3)
	args := b.List(lp, []Node{x}, nil, rp)
	send := b.Send(nil, f, args)
	stmt := b.ExpressionStatement(send, punct(";", 4))

	var got []NodeID
	Walk(stmt, func(n Node) bool {
		got = append(got, n.ID())
		return true
	})
	want := []NodeID{stmt.ID(), send.ID(), f.ID(), args.ID(), x.ID()}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Walk visited %v, want %v", got, want)
	}
}

func TestWalk_Prune(t *testing.T) {
	var b Builder
	f := ident(&b, "f", 0)
	x := ident(&b, "x", 2)
	lp, rp := pair("(", 1, ")", 3)
	args := b.List(lp, []Node{x}, nil, rp)
	send := b.Send(nil, f, args)
	stmt := b.ExpressionStatement(send, punct(";", 4))

	var got []NodeID
	Walk(stmt, func(n Node) bool {
		got = append(got, n.ID())
		return !IsNodeList(n)
	})
	// Pruning at the argument list skips its elements but nothing else.
	want := []NodeID{stmt.ID(), send.ID(), f.ID(), args.ID()}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Walk visited %v, want %v", got, want)
	}
}

func TestWalk_AbsentRoot(t *testing.T) {
	calls := 0
	Walk(nil, func(Node) bool { calls++; return true })
	var typedNil *NodeList
	Walk(typedNil, func(Node) bool { calls++; return true })
	if calls != 0 {
		t.Errorf("Walk on absent roots made %d calls, want 0", calls)
	}
}
