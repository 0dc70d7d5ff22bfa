package ast

import "fmt"

// TypeKind tags the closed sum described in §3.2:
// Int | Float | String | Bool | Void | List(Type) | Dict(Type, Type) | Class(name).
type TypeKind int

const (
	TypeInt TypeKind = iota
	TypeFloat
	TypeString
	TypeBool
	TypeVoid
	TypeList
	TypeDict
	TypeClass
)

func (k TypeKind) String() string {
	switch k {
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeString:
		return "string"
	case TypeBool:
		return "bool"
	case TypeVoid:
		return "void"
	case TypeList:
		return "list"
	case TypeDict:
		return "dict"
	case TypeClass:
		return "class"
	default:
		return fmt.Sprintf("TypeKind(%d)", int(k))
	}
}

// Type is a value-typed tagged union. List and Dict own their element/key/value
// types; Class carries the user-declared name. Two Types are structurally
// equal under reflect.DeepEqual, since each declared type is a fresh value
// with no pointers into shared state. Plain == compares the Elem/Key/Val
// pointers, so it is structural only for types that have none of them.
type Type struct {
	Kind TypeKind
	Elem *Type // List element type
	Key  *Type // Dict key type
	Val  *Type // Dict value type
	Name string // Class name
}

func IntType() Type    { return Type{Kind: TypeInt} }
func FloatType() Type  { return Type{Kind: TypeFloat} }
func StringType() Type { return Type{Kind: TypeString} }
func BoolType() Type   { return Type{Kind: TypeBool} }
func VoidType() Type   { return Type{Kind: TypeVoid} }

func ListType(elem Type) Type {
	return Type{Kind: TypeList, Elem: &elem}
}

func DictType(key, val Type) Type {
	return Type{Kind: TypeDict, Key: &key, Val: &val}
}

func ClassType(name string) Type {
	return Type{Kind: TypeClass, Name: name}
}

// String renders the REDLINE-surface spelling of the type, e.g. "list[int]",
// "dict[string,Box]". This is distinct from the host-language mapping, which
// is the code generator's concern (§6, implemented in package codegen).
func (t Type) String() string {
	switch t.Kind {
	case TypeList:
		return fmt.Sprintf("list[%s]", t.Elem.String())
	case TypeDict:
		return fmt.Sprintf("dict[%s,%s]", t.Key.String(), t.Val.String())
	case TypeClass:
		return t.Name
	default:
		return t.Kind.String()
	}
}

func (t Type) MarshalJSON() ([]byte, error) {
	switch t.Kind {
	case TypeList:
		return marshalKind("List", struct {
			Elem Type `json:"elem"`
		}{*t.Elem})
	case TypeDict:
		return marshalKind("Dict", struct {
			Key Type `json:"key"`
			Val Type `json:"val"`
		}{*t.Key, *t.Val})
	case TypeClass:
		return marshalKind("Class", struct {
			Name string `json:"name"`
		}{t.Name})
	default:
		return marshalKind(t.Kind.String(), struct{}{})
	}
}
