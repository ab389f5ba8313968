// Package value implements the tagged JSON-like tree that the rest of this
// module reads, rewrites, and writes. A Value is one of Null, Bool, Num,
// Str, Arr, or Obj. Values are immutable: every mutating method on Obj or
// Arr returns a new value structurally sharing the parts that did not
// change, backed by jsouthworth.net/go/immutable's persistent hashmap and
// vector so that sharing is cheap rather than a full copy.
package value

import (
	"errors"
	"strconv"

	"jsouthworth.net/go/dyn"
)

// Kind tags the variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNum
	KindStr
	KindArr
	KindObj
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNum:
		return "num"
	case KindStr:
		return "str"
	case KindArr:
		return "arr"
	case KindObj:
		return "obj"
	default:
		return "unknown"
	}
}

// Value is a tagged union over the JSON data model plus Arr/Obj variants
// backed by persistent collections. The zero Value is Null.
type Value struct {
	kind Kind
	data interface{}
}

// Null is the JSON null value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a boolean leaf.
func Bool(b bool) Value { return Value{kind: KindBool, data: b} }

// Num wraps a numeric leaf. All numbers are stored as float64; operators
// that need integral semantics (transform function=integer, etc.) convert
// on demand.
func Num(n float64) Value { return Value{kind: KindNum, data: n} }

// Str wraps a string leaf.
func Str(s string) Value { return Value{kind: KindStr, data: s} }

// FromArr wraps an *Arr as a Value.
func FromArr(a *Arr) Value {
	if a == nil {
		a = EmptyArr()
	}
	return Value{kind: KindArr, data: a}
}

// FromObj wraps an *Obj as a Value.
func FromObj(o *Obj) Value {
	if o == nil {
		o = EmptyObj()
	}
	return Value{kind: KindObj, data: o}
}

// Kind reports which variant the Value holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the Value is Null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsBool reports whether the Value is a Bool.
func (v Value) IsBool() bool { return v.kind == KindBool }

// IsNum reports whether the Value is a Num.
func (v Value) IsNum() bool { return v.kind == KindNum }

// IsStr reports whether the Value is a Str.
func (v Value) IsStr() bool { return v.kind == KindStr }

// IsArr reports whether the Value is an Arr.
func (v Value) IsArr() bool { return v.kind == KindArr }

// IsObj reports whether the Value is an Obj.
func (v Value) IsObj() bool { return v.kind == KindObj }

// AsBool returns the bool payload, panicking if the Value is not a Bool.
func (v Value) AsBool() bool {
	if v.kind != KindBool {
		panic(errors.New("value: not a bool"))
	}
	return v.data.(bool)
}

// AsNum returns the float64 payload, panicking if the Value is not a Num.
func (v Value) AsNum() float64 {
	if v.kind != KindNum {
		panic(errors.New("value: not a num"))
	}
	return v.data.(float64)
}

// AsStr returns the string payload, panicking if the Value is not a Str.
func (v Value) AsStr() string {
	if v.kind != KindStr {
		panic(errors.New("value: not a str"))
	}
	return v.data.(string)
}

// AsArr returns the *Arr payload, panicking if the Value is not an Arr.
func (v Value) AsArr() *Arr {
	if v.kind != KindArr {
		panic(errors.New("value: not an arr"))
	}
	return v.data.(*Arr)
}

// AsObj returns the *Obj payload, panicking if the Value is not an Obj.
func (v Value) AsObj() *Obj {
	if v.kind != KindObj {
		panic(errors.New("value: not an obj"))
	}
	return v.data.(*Obj)
}

// ToBool returns the bool payload and ok=true, or false/false otherwise.
func (v Value) ToBool() (bool, bool) {
	b, ok := v.data.(bool)
	return b, ok
}

// ToNum returns the float64 payload and ok=true, or 0/false otherwise.
func (v Value) ToNum() (float64, bool) {
	n, ok := v.data.(float64)
	return n, ok
}

// ToStr returns the string payload and ok=true, or ""/false otherwise.
func (v Value) ToStr() (string, bool) {
	s, ok := v.data.(string)
	return s, ok
}

// ToArr returns the *Arr payload and ok=true, or nil/false otherwise.
func (v Value) ToArr() (*Arr, bool) {
	a, ok := v.data.(*Arr)
	return a, ok
}

// ToObj returns the *Obj payload and ok=true, or nil/false otherwise.
func (v Value) ToObj() (*Obj, bool) {
	o, ok := v.data.(*Obj)
	return o, ok
}

// Equal reports whether two Values are structurally equal. Object key order
// is never significant. Arr and Obj payloads are compared element by
// element and member by member; leaves are compared with dyn.Equal.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindArr:
		aa, ba := a.data.(*Arr), b.data.(*Arr)
		eq := aa.Length() == ba.Length()
		aa.Range(func(i int, v Value) bool { eq = eq && Equal(v, ba.At(i)); return eq })
		return eq
	case KindObj:
		ao, bo := a.data.(*Obj), b.data.(*Obj)
		eq := ao.Length() == bo.Length()
		ao.Range(func(k string, v Value) bool { w, ok := bo.Find(k); eq = eq && ok && Equal(v, w); return eq })
		return eq
	default:
		return dyn.Equal(a.data, b.data)
	}
}

// Compare orders two Values. Numbers compare numerically, strings
// lexicographically; values of differing Kind compare by Kind so that the
// ordering is total even though it is rarely meaningful across kinds.
// Used by aggregate_list's $min/$max and by Arr.Sorted.
func Compare(a, b Value) int {
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}
	switch a.kind {
	case KindNum:
		an, bn := a.data.(float64), b.data.(float64)
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		default:
			return 0
		}
	case KindStr:
		as, bs := a.data.(string), b.data.(string)
		switch {
		case as < bs:
			return -1
		case as > bs:
			return 1
		default:
			return 0
		}
	default:
		return dyn.Compare(a.data, b.data)
	}
}

// String renders the Value for debugging; it is not a JSON encoder.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		if v.data.(bool) {
			return "true"
		}
		return "false"
	case KindStr:
		return v.data.(string)
	case KindNum:
		return strconv.FormatFloat(v.data.(float64), 'g', -1, 64)
	case KindArr, KindObj:
		if s, ok := v.data.(interface{ String() string }); ok {
			return s.String()
		}
	}
	return ""
}
