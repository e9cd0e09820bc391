package token

import (
	"testing"

	"github.com/sable-lang/sable/pkg/diag"
	"github.com/sable-lang/sable/pkg/tt"
)

func TestNew(t *testing.T) {
	tok := New(Ident, "point", 4)
	if tok.Kind != Ident {
		t.Errorf("New returns token of kind %v, want %v", tok.Kind, Ident)
	}
	if want := (diag.Ranging{From: 4, To: 9}); tok.Range() != want {
		t.Errorf("New returns token with range %v, want %v", tok.Range(), want)
	}
	if tok.Closer != nil {
		t.Errorf("New returns token with non-nil Closer")
	}
}

func TestCloser(t *testing.T) {
	left := New(Punct, "(", 0)
	right := New(Punct, ")", 5)
	left.Closer = right
	if left.Closer != right {
		t.Errorf("Closer is %v, want %v", left.Closer, right)
	}
}

func TestKindString(t *testing.T) {
	tt.Test(t, Kind.String,
		tt.Args(Invalid).Rets("invalid"),
		tt.Args(EOF).Rets("EOF"),
		tt.Args(Ident).Rets("identifier"),
		tt.Args(Keyword).Rets("keyword"),
		tt.Args(Operator).Rets("operator"),
		tt.Args(Int).Rets("integer"),
		tt.Args(Float).Rets("float"),
		tt.Args(String).Rets("string"),
		tt.Args(Punct).Rets("punctuation"),
		tt.Args(Kind(42)).Rets("bad kind 42"),
	)
}

func TestTokenString(t *testing.T) {
	tt.Test(t, (*Token).String,
		tt.Args(New(Ident, "foo", 0)).Rets(`identifier("foo")`),
		tt.Args(New(Operator, "++", 3)).Rets(`operator("++")`),
	)
}
