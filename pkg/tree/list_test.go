package tree

import (
	"testing"

	"github.com/sable-lang/sable/pkg/tt"
)

func TestFixityString(t *testing.T) {
	tt.Test(t, Fixity.String,
		tt.Args(NoFixity).Rets("none"),
		tt.Args(Prefix).Rets("prefix"),
		tt.Args(Postfix).Rets("postfix"),
		tt.Args(Fixity(42)).Rets("bad fixity 42"),
	)
}

func TestNodeList_Len(t *testing.T) {
	var b Builder
	var typedNil *Identifier
	l := b.List(nil, []Node{ident(&b, "x", 0), nil, typedNil}, nil, nil)
	if n := l.Len(); n != 1 {
		t.Errorf("Len = %d, want 1; absent elements must not count", n)
	}
	if l.IsEmpty() {
		t.Errorf("IsEmpty = true for a list with a present element")
	}
	if !b.EmptyList().IsEmpty() {
		t.Errorf("IsEmpty = false for an empty list")
	}
}

func TestNodeList_Singleton(t *testing.T) {
	var b Builder
	x := ident(&b, "x", 0)
	l := b.SingletonList(x)
	if n := l.Len(); n != 1 {
		t.Errorf("Len = %d, want 1", n)
	}
	if len(l.Nodes) != 1 || l.Nodes[0] != x {
		t.Errorf("Nodes = %v, want exactly the one element", l.Nodes)
	}
}

func TestNodeList_SpanFallbacks(t *testing.T) {
	var b Builder

	// (x)
	lp, rp := pair("(", 0, ")", 2)
	full := b.List(lp, []Node{ident(&b, "x", 1)}, nil, rp)
	// x, y without boundary tokens
	bare := b.List(nil, []Node{ident(&b, "x", 0), ident(&b, "y", 3)}, punct(",", 1), nil)
	// A list whose only element is itself token-less.
	tokenless := b.List(nil, []Node{b.EmptyList()}, punct(",", 5), nil)
	// Only a right boundary.
	rightOnly := b.List(nil, nil, nil, punct(")", 7))

	tests := []struct {
		name       string
		list       *NodeList
		begin, end string
	}{
		{"boundary tokens win", full, "(", ")"},
		{"elements next", bare, "x", "y"},
		{"delimiter after elements", tokenless, ",", ","},
		{"right boundary as begin of last resort", rightOnly, ")", ")"},
	}
	for _, test := range tests {
		if tok := test.list.Begin(); tok == nil || tok.Text != test.begin {
			t.Errorf("%s: Begin = %v, want %q", test.name, tok, test.begin)
		}
		if tok := test.list.End(); tok == nil || tok.Text != test.end {
			t.Errorf("%s: End = %v, want %q", test.name, tok, test.end)
		}
	}

	if tok := b.EmptyList().Begin(); tok != nil {
		t.Errorf("Begin of fully token-less list = %v, want nil", tok)
	}
	if tok := b.EmptyList().End(); tok != nil {
		t.Errorf("End of fully token-less list = %v, want nil", tok)
	}
}

func TestNodeList_FixityTagging(t *testing.T) {
	var b Builder
	if f := b.EmptyList().Fixity; f != NoFixity {
		t.Errorf("EmptyList fixity = %v, want %v", f, NoFixity)
	}
	if f := b.PrefixList().Fixity; f != Prefix {
		t.Errorf("PrefixList fixity = %v, want %v", f, Prefix)
	}
	if f := b.PostfixList(ident(&b, "i", 0)).Fixity; f != Postfix {
		t.Errorf("PostfixList fixity = %v, want %v", f, Postfix)
	}
}
