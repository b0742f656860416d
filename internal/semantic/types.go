// Package semantic implements the two-pass type checker: a declaration
// pass that registers every top-level binding's declared type before any
// initializer is visited, and a body pass that resolves and checks
// expressions against those declared types, accumulating diagnostics
// rather than aborting on the first one.
package semantic

import "strings"

// Kind discriminates the ResolvedType sum type.
type Kind uint8

const (
	Unknown Kind = iota
	Number
	String
	Boolean
	Null
	Array
	Object
	Union
	Function
)

// ResolvedType is the result of resolving a type annotation or inferring an
// expression's type. Object carries KeyType/ValueType (a Record<K,V>);
// Array carries ElemType; Union carries Members (always >= 2 distinct,
// non-union members); Function carries Params/Return.
type ResolvedType struct {
	Kind      Kind
	ElemType  *ResolvedType
	KeyType   *ResolvedType
	ValueType *ResolvedType
	Members   []ResolvedType
	Params    []ResolvedType
	Return    *ResolvedType
	RefName   string // TypeReference name, when Kind doesn't otherwise identify it
}

func Prim(k Kind) ResolvedType { return ResolvedType{Kind: k} }

func NewArray(elem ResolvedType) ResolvedType {
	return ResolvedType{Kind: Array, ElemType: &elem}
}

func NewObject(key, value ResolvedType) ResolvedType {
	return ResolvedType{Kind: Object, KeyType: &key, ValueType: &value}
}

func NewFunction(params []ResolvedType, ret ResolvedType) ResolvedType {
	return ResolvedType{Kind: Function, Params: params, Return: &ret}
}

// Matches reports structural equality between t and other: same Kind, and
// for compound kinds, structurally equal children. Union equality is
// set equality (order-independent).
func (t ResolvedType) Matches(other ResolvedType) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case Array:
		return t.ElemType.Matches(*other.ElemType)
	case Object:
		return t.KeyType.Matches(*other.KeyType) && t.ValueType.Matches(*other.ValueType)
	case Union:
		if len(t.Members) != len(other.Members) {
			return false
		}
		for _, m := range t.Members {
			if !other.Includes(m) {
				return false
			}
		}
		return true
	case Function:
		if len(t.Params) != len(other.Params) {
			return false
		}
		for i := range t.Params {
			if !t.Params[i].Matches(other.Params[i]) {
				return false
			}
		}
		return t.Return.Matches(*other.Return)
	default:
		return true
	}
}

// Includes reports whether candidate matches t itself, or (when t is a
// Union) one of t's members.
func (t ResolvedType) Includes(candidate ResolvedType) bool {
	if t.Kind == Union {
		for _, m := range t.Members {
			if m.Matches(candidate) {
				return true
			}
		}
		return false
	}
	return t.Matches(candidate)
}

// Extend widens t to also admit other: an Unknown extends to exactly
// other; a non-union that already matches other is unchanged; otherwise
// other is folded into (or starts) a Union, insertion order preserved and
// never containing a nested Union or a duplicate member.
func (t ResolvedType) Extend(other ResolvedType) ResolvedType {
	if t.Kind == Unknown {
		return other
	}
	if t.Includes(other) {
		return t
	}
	if t.Kind == Union {
		members := append(append([]ResolvedType{}, t.Members...), flattenUnion(other)...)
		return ResolvedType{Kind: Union, Members: dedupe(members)}
	}
	members := append([]ResolvedType{t}, flattenUnion(other)...)
	return ResolvedType{Kind: Union, Members: dedupe(members)}
}

func flattenUnion(t ResolvedType) []ResolvedType {
	if t.Kind == Union {
		return t.Members
	}
	return []ResolvedType{t}
}

func dedupe(in []ResolvedType) []ResolvedType {
	var out []ResolvedType
	for _, t := range in {
		found := false
		for _, o := range out {
			if o.Matches(t) {
				found = true
				break
			}
		}
		if !found {
			out = append(out, t)
		}
	}
	return out
}

// String renders the type the way TypeScript source would write it:
// "string | number | null", "Record<string, number | null>",
// "(number | null | string)[]".
func (t ResolvedType) String() string {
	switch t.Kind {
	case Unknown:
		return "unknown"
	case Number:
		return "number"
	case String:
		return "string"
	case Boolean:
		return "boolean"
	case Null:
		return "null"
	case Array:
		inner := t.ElemType.String()
		if t.ElemType.Kind == Union {
			return "(" + inner + ")[]"
		}
		return inner + "[]"
	case Object:
		return "Record<" + t.KeyType.String() + ", " + t.ValueType.String() + ">"
	case Union:
		parts := make([]string, len(t.Members))
		for i, m := range t.Members {
			parts[i] = m.String()
		}
		return strings.Join(parts, " | ")
	case Function:
		parts := make([]string, len(t.Params))
		for i, p := range t.Params {
			parts[i] = p.String()
		}
		return "(" + strings.Join(parts, ", ") + ") => " + t.Return.String()
	default:
		if t.RefName != "" {
			return t.RefName
		}
		return "unknown"
	}
}
