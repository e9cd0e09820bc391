package tree

// IsIdentifier reports whether the node has type *Identifier.
func IsIdentifier(n Node) bool {
	_, ok := n.(*Identifier)
	return ok
}

// GetIdentifier returns the node cast to *Identifier if the node has that type, or nil otherwise.
func GetIdentifier(n Node) *Identifier {
	if nn, ok := n.(*Identifier); ok {
		return nn
	}
	return nil
}

// IsOperator reports whether the node has type *Operator.
func IsOperator(n Node) bool {
	_, ok := n.(*Operator)
	return ok
}

// GetOperator returns the node cast to *Operator if the node has that type, or nil otherwise.
func GetOperator(n Node) *Operator {
	if nn, ok := n.(*Operator); ok {
		return nn
	}
	return nil
}

// IsLiteralInt reports whether the node has type *LiteralInt.
func IsLiteralInt(n Node) bool {
	_, ok := n.(*LiteralInt)
	return ok
}

// GetLiteralInt returns the node cast to *LiteralInt if the node has that type, or nil otherwise.
func GetLiteralInt(n Node) *LiteralInt {
	if nn, ok := n.(*LiteralInt); ok {
		return nn
	}
	return nil
}

// IsLiteralFloat reports whether the node has type *LiteralFloat.
func IsLiteralFloat(n Node) bool {
	_, ok := n.(*LiteralFloat)
	return ok
}

// GetLiteralFloat returns the node cast to *LiteralFloat if the node has that type, or nil otherwise.
func GetLiteralFloat(n Node) *LiteralFloat {
	if nn, ok := n.(*LiteralFloat); ok {
		return nn
	}
	return nil
}

// IsLiteralBool reports whether the node has type *LiteralBool.
func IsLiteralBool(n Node) bool {
	_, ok := n.(*LiteralBool)
	return ok
}

// GetLiteralBool returns the node cast to *LiteralBool if the node has that type, or nil otherwise.
func GetLiteralBool(n Node) *LiteralBool {
	if nn, ok := n.(*LiteralBool); ok {
		return nn
	}
	return nil
}

// IsLiteralString reports whether the node has type *LiteralString.
func IsLiteralString(n Node) bool {
	_, ok := n.(*LiteralString)
	return ok
}

// GetLiteralString returns the node cast to *LiteralString if the node has that type, or nil otherwise.
func GetLiteralString(n Node) *LiteralString {
	if nn, ok := n.(*LiteralString); ok {
		return nn
	}
	return nil
}

// IsLiteralNull reports whether the node has type *LiteralNull.
func IsLiteralNull(n Node) bool {
	_, ok := n.(*LiteralNull)
	return ok
}

// GetLiteralNull returns the node cast to *LiteralNull if the node has that type, or nil otherwise.
func GetLiteralNull(n Node) *LiteralNull {
	if nn, ok := n.(*LiteralNull); ok {
		return nn
	}
	return nil
}

// IsSend reports whether the node has type *Send.
func IsSend(n Node) bool {
	_, ok := n.(*Send)
	return ok
}

// GetSend returns the node cast to *Send if the node has that type, or nil otherwise.
func GetSend(n Node) *Send {
	if nn, ok := n.(*Send); ok {
		return nn
	}
	return nil
}

// IsSendSet reports whether the node has type *SendSet.
func IsSendSet(n Node) bool {
	_, ok := n.(*SendSet)
	return ok
}

// GetSendSet returns the node cast to *SendSet if the node has that type, or nil otherwise.
func GetSendSet(n Node) *SendSet {
	if nn, ok := n.(*SendSet); ok {
		return nn
	}
	return nil
}

// IsNewExpression reports whether the node has type *NewExpression.
func IsNewExpression(n Node) bool {
	_, ok := n.(*NewExpression)
	return ok
}

// GetNewExpression returns the node cast to *NewExpression if the node has that type, or nil otherwise.
func GetNewExpression(n Node) *NewExpression {
	if nn, ok := n.(*NewExpression); ok {
		return nn
	}
	return nil
}

// IsConditional reports whether the node has type *Conditional.
func IsConditional(n Node) bool {
	_, ok := n.(*Conditional)
	return ok
}

// GetConditional returns the node cast to *Conditional if the node has that type, or nil otherwise.
func GetConditional(n Node) *Conditional {
	if nn, ok := n.(*Conditional); ok {
		return nn
	}
	return nil
}

// IsParenthesizedExpression reports whether the node has type *ParenthesizedExpression.
func IsParenthesizedExpression(n Node) bool {
	_, ok := n.(*ParenthesizedExpression)
	return ok
}

// GetParenthesizedExpression returns the node cast to *ParenthesizedExpression if the node has that type, or nil otherwise.
func GetParenthesizedExpression(n Node) *ParenthesizedExpression {
	if nn, ok := n.(*ParenthesizedExpression); ok {
		return nn
	}
	return nil
}

// IsStringInterpolation reports whether the node has type *StringInterpolation.
func IsStringInterpolation(n Node) bool {
	_, ok := n.(*StringInterpolation)
	return ok
}

// GetStringInterpolation returns the node cast to *StringInterpolation if the node has that type, or nil otherwise.
func GetStringInterpolation(n Node) *StringInterpolation {
	if nn, ok := n.(*StringInterpolation); ok {
		return nn
	}
	return nil
}

// IsStringInterpolationPart reports whether the node has type *StringInterpolationPart.
func IsStringInterpolationPart(n Node) bool {
	_, ok := n.(*StringInterpolationPart)
	return ok
}

// GetStringInterpolationPart returns the node cast to *StringInterpolationPart if the node has that type, or nil otherwise.
func GetStringInterpolationPart(n Node) *StringInterpolationPart {
	if nn, ok := n.(*StringInterpolationPart); ok {
		return nn
	}
	return nil
}

// IsNodeList reports whether the node has type *NodeList.
func IsNodeList(n Node) bool {
	_, ok := n.(*NodeList)
	return ok
}

// GetNodeList returns the node cast to *NodeList if the node has that type, or nil otherwise.
func GetNodeList(n Node) *NodeList {
	if nn, ok := n.(*NodeList); ok {
		return nn
	}
	return nil
}

// IsBlock reports whether the node has type *Block.
func IsBlock(n Node) bool {
	_, ok := n.(*Block)
	return ok
}

// GetBlock returns the node cast to *Block if the node has that type, or nil otherwise.
func GetBlock(n Node) *Block {
	if nn, ok := n.(*Block); ok {
		return nn
	}
	return nil
}

// IsIf reports whether the node has type *If.
func IsIf(n Node) bool {
	_, ok := n.(*If)
	return ok
}

// GetIf returns the node cast to *If if the node has that type, or nil otherwise.
func GetIf(n Node) *If {
	if nn, ok := n.(*If); ok {
		return nn
	}
	return nil
}

// IsFor reports whether the node has type *For.
func IsFor(n Node) bool {
	_, ok := n.(*For)
	return ok
}

// GetFor returns the node cast to *For if the node has that type, or nil otherwise.
func GetFor(n Node) *For {
	if nn, ok := n.(*For); ok {
		return nn
	}
	return nil
}

// IsWhile reports whether the node has type *While.
func IsWhile(n Node) bool {
	_, ok := n.(*While)
	return ok
}

// GetWhile returns the node cast to *While if the node has that type, or nil otherwise.
func GetWhile(n Node) *While {
	if nn, ok := n.(*While); ok {
		return nn
	}
	return nil
}

// IsDoWhile reports whether the node has type *DoWhile.
func IsDoWhile(n Node) bool {
	_, ok := n.(*DoWhile)
	return ok
}

// GetDoWhile returns the node cast to *DoWhile if the node has that type, or nil otherwise.
func GetDoWhile(n Node) *DoWhile {
	if nn, ok := n.(*DoWhile); ok {
		return nn
	}
	return nil
}

// IsReturn reports whether the node has type *Return.
func IsReturn(n Node) bool {
	_, ok := n.(*Return)
	return ok
}

// GetReturn returns the node cast to *Return if the node has that type, or nil otherwise.
func GetReturn(n Node) *Return {
	if nn, ok := n.(*Return); ok {
		return nn
	}
	return nil
}

// IsExpressionStatement reports whether the node has type *ExpressionStatement.
func IsExpressionStatement(n Node) bool {
	_, ok := n.(*ExpressionStatement)
	return ok
}

// GetExpressionStatement returns the node cast to *ExpressionStatement if the node has that type, or nil otherwise.
func GetExpressionStatement(n Node) *ExpressionStatement {
	if nn, ok := n.(*ExpressionStatement); ok {
		return nn
	}
	return nil
}

// IsThrow reports whether the node has type *Throw.
func IsThrow(n Node) bool {
	_, ok := n.(*Throw)
	return ok
}

// GetThrow returns the node cast to *Throw if the node has that type, or nil otherwise.
func GetThrow(n Node) *Throw {
	if nn, ok := n.(*Throw); ok {
		return nn
	}
	return nil
}

// IsClass reports whether the node has type *Class.
func IsClass(n Node) bool {
	_, ok := n.(*Class)
	return ok
}

// GetClass returns the node cast to *Class if the node has that type, or nil otherwise.
func GetClass(n Node) *Class {
	if nn, ok := n.(*Class); ok {
		return nn
	}
	return nil
}

// IsFunctionExpression reports whether the node has type *FunctionExpression.
func IsFunctionExpression(n Node) bool {
	_, ok := n.(*FunctionExpression)
	return ok
}

// GetFunctionExpression returns the node cast to *FunctionExpression if the node has that type, or nil otherwise.
func GetFunctionExpression(n Node) *FunctionExpression {
	if nn, ok := n.(*FunctionExpression); ok {
		return nn
	}
	return nil
}

// IsVariableDefinitions reports whether the node has type *VariableDefinitions.
func IsVariableDefinitions(n Node) bool {
	_, ok := n.(*VariableDefinitions)
	return ok
}

// GetVariableDefinitions returns the node cast to *VariableDefinitions if the node has that type, or nil otherwise.
func GetVariableDefinitions(n Node) *VariableDefinitions {
	if nn, ok := n.(*VariableDefinitions); ok {
		return nn
	}
	return nil
}

// IsTypeAnnotation reports whether the node has type *TypeAnnotation.
func IsTypeAnnotation(n Node) bool {
	_, ok := n.(*TypeAnnotation)
	return ok
}

// GetTypeAnnotation returns the node cast to *TypeAnnotation if the node has that type, or nil otherwise.
func GetTypeAnnotation(n Node) *TypeAnnotation {
	if nn, ok := n.(*TypeAnnotation); ok {
		return nn
	}
	return nil
}

// IsModifiers reports whether the node has type *Modifiers.
func IsModifiers(n Node) bool {
	_, ok := n.(*Modifiers)
	return ok
}

// GetModifiers returns the node cast to *Modifiers if the node has that type, or nil otherwise.
func GetModifiers(n Node) *Modifiers {
	if nn, ok := n.(*Modifiers); ok {
		return nn
	}
	return nil
}
