package tree

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
)

const (
	maxL      = 10
	maxR      = 10
	indentInc = 2
)

// PPrint pretty-prints the tree rooted at n to w for debugging: one node
// per line, children indented under their parent, single-child chains
// coalesced into a path. Each line shows the variant name, a compact quote
// of the unparsed text, and the span.
func PPrint(n Node, w io.Writer) {
	if absent(n) {
		return
	}
	pprintRec(n, w, 0)
}

func pprintRec(n Node, w io.Writer, indent int) {
	leading := ""
	for len(children(n)) == 1 {
		leading += variantName(n) + "/"
		n = children(n)[0]
	}
	fmt.Fprintf(w, "%*s%s%s\n", indent, "", leading, summary(n))
	for _, ch := range children(n) {
		pprintRec(ch, w, indent+indentInc)
	}
}

func summary(n Node) string {
	r := Range(n)
	return fmt.Sprintf("%s %s %d-%d", variantName(n), compactQuote(Unparse(n)), r.From, r.To)
}

func variantName(n Node) string { return reflect.TypeOf(n).Elem().Name() }

// children collects the present children of n in visit order.
func children(n Node) []Node {
	var cs []Node
	n.VisitChildren(VisitorFunc(func(child Node) { cs = append(cs, child) }))
	return cs
}

func compactQuote(text string) string {
	if len(text) > maxL+maxR+3 {
		text = text[0:maxL] + "..." + text[len(text)-maxR:]
	}
	return strconv.Quote(text)
}
