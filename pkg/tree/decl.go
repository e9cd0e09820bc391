package tree

import (
	"github.com/sable-lang/sable/pkg/token"
)

// Class = ('class' | 'interface') Identifier [ 'extends' TypeAnnotation ]
//         [ 'implements' Interfaces ] Body
//
// Class declares a class or an interface; the keyword token tells the two
// apart. Member declarations are not part of this layer: EndToken closes the
// declaration for span purposes only.
type Class struct {
	node
	Keyword      *token.Token
	Name         *Identifier
	ExtendsToken *token.Token
	Extends      *TypeAnnotation
	Interfaces   *NodeList
	EndToken     *token.Token
}

// Class returns a new Class declaration.
func (b *Builder) Class(keyword *token.Token, name *Identifier, extendsToken *token.Token, extends *TypeAnnotation, interfaces *NodeList, endToken *token.Token) *Class {
	return &Class{
		node: b.next(), Keyword: keyword, Name: name,
		ExtendsToken: extendsToken, Extends: extends,
		Interfaces: interfaces, EndToken: endToken,
	}
}

// IsInterface reports whether the declaration uses the interface keyword.
func (c *Class) IsInterface() bool {
	return c.Keyword != nil && c.Keyword.Text == "interface"
}

func (c *Class) Begin() *token.Token {
	if c.Keyword != nil {
		return c.Keyword
	}
	return beginOf(c.Name, c.Extends, c.Interfaces)
}

func (c *Class) End() *token.Token {
	if c.EndToken != nil {
		return c.EndToken
	}
	if t := endOf(c.Name, c.Extends, c.Interfaces); t != nil {
		return t
	}
	return c.Keyword
}

func (c *Class) Accept(v Visitor) { v.VisitClass(c) }

func (c *Class) VisitChildren(v Visitor) {
	acceptPresent(v, c.Name, c.Extends, c.Interfaces)
}

// FunctionExpression = [ Modifiers ] [ TypeAnnotation ] [ Name ] Parameters
//                      [ ':' Initializers ] Statement
//
// FunctionExpression covers both function declarations and function-valued
// expressions; an absent name makes it anonymous. Initializers, when
// present, hold constructor initializer entries.
type FunctionExpression struct {
	node
	Modifiers    *Modifiers
	ReturnType   *TypeAnnotation
	Name         Node
	Parameters   *NodeList
	Initializers *NodeList
	Body         Node
}

// Function returns a new FunctionExpression.
func (b *Builder) Function(modifiers *Modifiers, returnType *TypeAnnotation, name Node, parameters, initializers *NodeList, body Node) *FunctionExpression {
	return &FunctionExpression{
		node: b.next(), Modifiers: modifiers, ReturnType: returnType,
		Name: name, Parameters: parameters, Initializers: initializers, Body: body,
	}
}

func (f *FunctionExpression) Begin() *token.Token {
	return beginOf(f.Modifiers, f.ReturnType, f.Name, f.Parameters, f.Initializers, f.Body)
}

func (f *FunctionExpression) End() *token.Token {
	return endOf(f.Modifiers, f.ReturnType, f.Name, f.Parameters, f.Initializers, f.Body)
}

func (f *FunctionExpression) Accept(v Visitor) { v.VisitFunctionExpression(f) }

func (f *FunctionExpression) VisitChildren(v Visitor) {
	acceptPresent(v, f.Modifiers, f.ReturnType, f.Name, f.Parameters, f.Initializers, f.Body)
}

// VariableDefinitions = [ Modifiers ] [ TypeAnnotation ] Definitions ';'
//
// Each definition is an Identifier, or a SendSet assigning the initial
// value.
type VariableDefinitions struct {
	node
	Modifiers   *Modifiers
	Type        *TypeAnnotation
	Definitions *NodeList
	EndToken    *token.Token
}

// VariableDefinitions returns a new VariableDefinitions.
func (b *Builder) VariableDefinitions(modifiers *Modifiers, typ *TypeAnnotation, definitions *NodeList, endToken *token.Token) *VariableDefinitions {
	return &VariableDefinitions{
		node: b.next(), Modifiers: modifiers, Type: typ,
		Definitions: definitions, EndToken: endToken,
	}
}

func (vd *VariableDefinitions) Begin() *token.Token {
	if t := beginOf(vd.Modifiers, vd.Type, vd.Definitions); t != nil {
		return t
	}
	return vd.EndToken
}

func (vd *VariableDefinitions) End() *token.Token {
	if vd.EndToken != nil {
		return vd.EndToken
	}
	return endOf(vd.Modifiers, vd.Type, vd.Definitions)
}

func (vd *VariableDefinitions) Accept(v Visitor) { v.VisitVariableDefinitions(vd) }

func (vd *VariableDefinitions) VisitChildren(v Visitor) {
	acceptPresent(v, vd.Modifiers, vd.Type, vd.Definitions)
}

// TypeAnnotation = Expression [ TypeArguments ]
//
// The type name is an expression so that qualified names like a.B can
// appear.
type TypeAnnotation struct {
	node
	TypeName      Node
	TypeArguments *NodeList
}

// TypeAnnotation returns a new TypeAnnotation.
func (b *Builder) TypeAnnotation(typeName Node, typeArguments *NodeList) *TypeAnnotation {
	return &TypeAnnotation{node: b.next(), TypeName: typeName, TypeArguments: typeArguments}
}

func (t *TypeAnnotation) Begin() *token.Token { return beginOf(t.TypeName, t.TypeArguments) }
func (t *TypeAnnotation) End() *token.Token   { return endOf(t.TypeName, t.TypeArguments) }
func (t *TypeAnnotation) Accept(v Visitor)    { v.VisitTypeAnnotation(t) }

func (t *TypeAnnotation) VisitChildren(v Visitor) {
	acceptPresent(v, t.TypeName, t.TypeArguments)
}

// ModifierFlags is a bit set of recognized modifier keywords.
type ModifierFlags uint32

// One bit per recognized modifier keyword.
const (
	FlagStatic ModifierFlags = 1 << iota
	FlagAbstract
	FlagFinal
	FlagVar
	FlagConst
)

// Modifiers holds the modifier keywords preceding a declaration, along with
// a bit set computed from them once at construction.
type Modifiers struct {
	node
	Nodes *NodeList
	Flags ModifierFlags
}

// Modifiers returns a new Modifiers over the given identifier list, folding
// the recognized spellings (static, abstract, final, var, const) into Flags.
// Unrecognized spellings and non-identifier elements are silently ignored,
// and no ordering or duplication validation is performed.
func (b *Builder) Modifiers(nodes *NodeList) *Modifiers {
	return &Modifiers{node: b.next(), Nodes: nodes, Flags: computeModifierFlags(nodes)}
}

func computeModifierFlags(nodes *NodeList) ModifierFlags {
	var flags ModifierFlags
	if nodes == nil {
		return flags
	}
	for _, n := range nodes.Nodes {
		ident := GetIdentifier(n)
		if ident == nil || ident.Token == nil {
			continue
		}
		switch ident.Token.Text {
		case "static":
			flags |= FlagStatic
		case "abstract":
			flags |= FlagAbstract
		case "final":
			flags |= FlagFinal
		case "var":
			flags |= FlagVar
		case "const":
			flags |= FlagConst
		}
	}
	return flags
}

// IsStatic reports whether the static modifier is present.
func (m *Modifiers) IsStatic() bool { return m.Flags&FlagStatic != 0 }

// IsAbstract reports whether the abstract modifier is present.
func (m *Modifiers) IsAbstract() bool { return m.Flags&FlagAbstract != 0 }

// IsFinal reports whether the final modifier is present.
func (m *Modifiers) IsFinal() bool { return m.Flags&FlagFinal != 0 }

// IsVar reports whether the var modifier is present.
func (m *Modifiers) IsVar() bool { return m.Flags&FlagVar != 0 }

// IsConst reports whether the const modifier is present.
func (m *Modifiers) IsConst() bool { return m.Flags&FlagConst != 0 }

func (m *Modifiers) Begin() *token.Token { return beginOf(m.Nodes) }
func (m *Modifiers) End() *token.Token   { return endOf(m.Nodes) }
func (m *Modifiers) Accept(v Visitor)    { v.VisitModifiers(m) }

func (m *Modifiers) VisitChildren(v Visitor) {
	acceptPresent(v, m.Nodes)
}
