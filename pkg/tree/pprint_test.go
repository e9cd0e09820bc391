package tree

import (
	"strings"
	"testing"

	"github.com/sable-lang/sable/pkg/tt"
)

func TestPPrint(t *testing.T) {
	var b Builder
	// f(x);
	f := ident(&b, "f", 0)
	x := ident(&b, "x", 2)
	lp, rp := pair("(", 1, ")", 3)
	args := b.List(lp, []Node{x}, nil, rp)
	send := b.Send(nil, f, args)
	stmt := b.ExpressionStatement(send, punct(";", 4))

	var sb strings.Builder
	PPrint(stmt, &sb)
	want := strings.Join([]string{
		`ExpressionStatement/Send "f(x)" 0-4`,
		`  Identifier "f" 0-1`,
		`  NodeList/Identifier "x" 2-3`,
		``,
	}, "\n")
	if got := sb.String(); got != want {
		t.Errorf("PPrint output:\n%swant:\n%s", got, want)
	}
}

func TestPPrint_AbsentRoot(t *testing.T) {
	var sb strings.Builder
	PPrint(nil, &sb)
	if got := sb.String(); got != "" {
		t.Errorf("PPrint(nil) wrote %q, want nothing", got)
	}
}

func TestCompactQuote(t *testing.T) {
	tt.Test(t, compactQuote,
		tt.Args("short").Rets(`"short"`),
		tt.Args("aaaaaaaaaabbbcccccccccc").Rets(`"aaaaaaaaaabbbcccccccccc"`),
		tt.Args("aaaaaaaaaabbbbcccccccccc").Rets(`"aaaaaaaaaa...cccccccccc"`),
	)
}
