package tree

import (
	"testing"

	"github.com/sable-lang/sable/pkg/diag"
	"github.com/sable-lang/sable/pkg/token"
)

// sendForm returns the single syntactic form of s, or a description of the
// violation if not exactly one form holds.
func sendForm(s *Send) string {
	var forms []string
	if s.IsPropertyAccess() {
		forms = append(forms, "property access")
	}
	if s.IsCall() {
		forms = append(forms, "call")
	}
	if s.IsPrefix() {
		forms = append(forms, "prefix")
	}
	if s.IsPostfix() {
		forms = append(forms, "postfix")
	}
	if len(forms) != 1 {
		return "violation: " + sprintForms(forms)
	}
	return forms[0]
}

func sprintForms(forms []string) string {
	if len(forms) == 0 {
		return "no form"
	}
	s := forms[0]
	for _, f := range forms[1:] {
		s += "+" + f
	}
	return s
}

func TestSend_Classification(t *testing.T) {
	var b Builder
	a := func() *Identifier { return ident(&b, "a", 0) }
	x := func() *Identifier { return ident(&b, "x", 0) }

	property := b.Send(a(), ident(&b, "b", 2), nil)
	bareCall := b.Send(nil, ident(&b, "f", 0), b.EmptyList())
	funObj := b.Send(bareCall, nil, b.EmptyList())
	operator := b.Send(x(), op(&b, "+", 2), b.SingletonList(ident(&b, "y", 4)))
	index := b.Send(a(), op(&b, IndexOperator, 1), b.SingletonList(ident(&b, "i", 2)))
	prefix := b.PrefixSend(x(), op(&b, "-", 0))
	postfix := b.PostfixSend(x(), op(&b, "++", 1))

	tests := []struct {
		name string
		send *Send
		form string
		// Orthogonal properties.
		funObj, operator, index bool
	}{
		{"property access", property, "property access", false, false, false},
		{"bare call", bareCall, "call", false, false, false},
		{"function object invocation", funObj, "call", true, false, false},
		{"operator", operator, "call", false, true, false},
		{"index", index, "call", false, true, true},
		{"prefix", prefix, "prefix", false, true, false},
		{"postfix", postfix, "postfix", false, true, false},
	}
	for _, test := range tests {
		s := test.send
		if form := sendForm(s); form != test.form {
			t.Errorf("%s: form is %s, want %s", test.name, form, test.form)
		}
		if got := s.IsFunctionObjectInvocation(); got != test.funObj {
			t.Errorf("%s: IsFunctionObjectInvocation = %v, want %v", test.name, got, test.funObj)
		}
		if got := s.IsOperator(); got != test.operator {
			t.Errorf("%s: IsOperator = %v, want %v", test.name, got, test.operator)
		}
		if got := s.IsIndex(); got != test.index {
			t.Errorf("%s: IsIndex = %v, want %v", test.name, got, test.index)
		}
	}
}

func TestSend_PrefixArgumentsAreEmpty(t *testing.T) {
	var b Builder
	prefix := b.PrefixSend(ident(&b, "x", 1), op(&b, "-", 0))
	if prefix.Arguments == nil {
		t.Fatalf("prefix send has no argument container")
	}
	if n := prefix.Arguments.Len(); n != 0 {
		t.Errorf("prefix send has %d arguments, want 0", n)
	}
	if f := prefix.Arguments.Fixity; f != Prefix {
		t.Errorf("prefix send argument fixity is %v, want %v", f, Prefix)
	}
}

func TestSend_Spans(t *testing.T) {
	var b Builder

	// a.b
	property := b.Send(ident(&b, "a", 0), ident(&b, "b", 2), nil)
	// -x
	prefix := b.PrefixSend(ident(&b, "x", 1), op(&b, "-", 0))
	// x++
	postfix := b.PostfixSend(ident(&b, "x", 0), op(&b, "++", 1))
	// f(x, y)
	lp, rp := pair("(", 1, ")", 6)
	call := b.Send(nil, ident(&b, "f", 0),
		b.List(lp, []Node{ident(&b, "x", 2), ident(&b, "y", 5)}, punct(",", 3), rp))
	// a[i]
	lb, rb := pair("[", 1, "]", 3)
	index := b.Send(ident(&b, "a", 0), op(&b, IndexOperator, 1),
		b.List(lb, []Node{ident(&b, "i", 2)}, nil, rb))

	tests := []struct {
		name string
		send *Send
		want diag.Ranging
	}{
		{"property access spans receiver to selector", property, diag.Ranging{From: 0, To: 3}},
		{"prefix begins at the operator", prefix, diag.Ranging{From: 0, To: 2}},
		{"postfix ends at the operator", postfix, diag.Ranging{From: 0, To: 3}},
		{"call ends at the argument list closer", call, diag.Ranging{From: 0, To: 7}},
		{"index ends at the closing bracket", index, diag.Ranging{From: 0, To: 4}},
	}
	for _, test := range tests {
		if r := Range(test.send); r != test.want {
			t.Errorf("%s: Range = %v, want %v", test.name, r, test.want)
		}
	}
}

func TestSendSet_Spans(t *testing.T) {
	var b Builder

	// ++x
	prefix := b.PrefixSendSet(nil, ident(&b, "x", 2), op(&b, "++", 0))
	// x++
	postfix := b.PostfixSendSet(nil, ident(&b, "x", 0), op(&b, "++", 1))
	// x = 1
	assign := b.SendSet(nil, ident(&b, "x", 0), op(&b, "=", 2),
		b.SingletonList(b.LiteralInt(token.New(token.Int, "1", 4), nil)))

	tests := []struct {
		name string
		send *SendSet
		want diag.Ranging
	}{
		{"prefix begins at the assignment operator", prefix, diag.Ranging{From: 0, To: 3}},
		{"postfix ends at the assignment operator", postfix, diag.Ranging{From: 0, To: 3}},
		{"plain assignment ends at the last argument", assign, diag.Ranging{From: 0, To: 5}},
	}
	for _, test := range tests {
		if r := Range(test.send); r != test.want {
			t.Errorf("%s: Range = %v, want %v", test.name, r, test.want)
		}
	}
}

func TestConditional_Spans(t *testing.T) {
	var b Builder

	// c ? t : e
	full := b.Conditional(ident(&b, "c", 0), ident(&b, "t", 4), ident(&b, "e", 8))
	if r := Range(full); r != (diag.Ranging{From: 0, To: 9}) {
		t.Errorf("Range = %v, want 0-9", r)
	}
	// Without an else operand the span falls back to the then operand.
	partial := b.Conditional(ident(&b, "c", 0), ident(&b, "t", 4), nil)
	if r := Range(partial); r != (diag.Ranging{From: 0, To: 5}) {
		t.Errorf("Range without else = %v, want 0-5", r)
	}
}
