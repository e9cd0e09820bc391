package tree

import "testing"

func TestNarrowing(t *testing.T) {
	var b Builder
	id := ident(&b, "x", 0)
	list := b.EmptyList()
	set := b.SendSet(nil, id, op(&b, "=", 2), b.SingletonList(ident(&b, "y", 4)))

	if !IsIdentifier(id) {
		t.Errorf("IsIdentifier = false on an Identifier")
	}
	if IsIdentifier(list) {
		t.Errorf("IsIdentifier = true on a NodeList")
	}
	if IsIdentifier(nil) {
		t.Errorf("IsIdentifier = true on nil")
	}
	if got := GetIdentifier(id); got != id {
		t.Errorf("GetIdentifier returned %v, want the node itself", got)
	}
	if got := GetIdentifier(list); got != nil {
		t.Errorf("GetIdentifier on a NodeList returned %v, want nil", got)
	}
	if got := GetIdentifier(nil); got != nil {
		t.Errorf("GetIdentifier on nil returned %v, want nil", got)
	}

	// A SendSet is not a Send: narrowing is by exact type, not by embedding.
	if IsSend(set) {
		t.Errorf("IsSend = true on a SendSet")
	}
	if !IsSendSet(set) {
		t.Errorf("IsSendSet = false on a SendSet")
	}
	if got := GetSendSet(set); got != set {
		t.Errorf("GetSendSet returned %v, want the node itself", got)
	}
}

func TestNarrowing_CoversEveryType(t *testing.T) {
	var b Builder
	for _, n := range oneOfEach(&b) {
		matches := 0
		preds := []func(Node) bool{
			IsIdentifier, IsOperator, IsLiteralInt, IsLiteralFloat,
			IsLiteralBool, IsLiteralString, IsLiteralNull, IsSend, IsSendSet,
			IsNewExpression, IsConditional, IsParenthesizedExpression,
			IsStringInterpolation, IsStringInterpolationPart, IsNodeList,
			IsBlock, IsIf, IsFor, IsWhile, IsDoWhile, IsReturn,
			IsExpressionStatement, IsThrow, IsClass, IsFunctionExpression,
			IsVariableDefinitions, IsTypeAnnotation, IsModifiers,
		}
		for _, pred := range preds {
			if pred(n) {
				matches++
			}
		}
		if matches != 1 {
			t.Errorf("%T matched %d narrowing predicates, want exactly 1", n, matches)
		}
	}
}
