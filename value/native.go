package value

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// From converts a native Go value (as produced by encoding/json.Unmarshal
// into interface{}, or hand-built test fixtures) into a Value. From panics
// on a type it cannot represent. JSON decoding at the module boundary is a
// convenience, not a core responsibility; From is the seam where that
// convenience lives.
func From(in interface{}) Value {
	switch d := in.(type) {
	case nil:
		return Null()
	case Value:
		return d
	case bool:
		return Bool(d)
	case string:
		return Str(d)
	case float64:
		return Num(d)
	case float32:
		return Num(float64(d))
	case int:
		return Num(float64(d))
	case int64:
		return Num(float64(d))
	case json.Number:
		f, err := d.Float64()
		if err != nil {
			panic(fmt.Errorf("value: cannot convert json.Number %q: %w", d, err))
		}
		return Num(f)
	case map[string]interface{}:
		obj := EmptyObj()
		for k, v := range d {
			obj = obj.Assoc(k, From(v))
		}
		return FromObj(obj)
	case []interface{}:
		vals := make([]Value, len(d))
		for i, v := range d {
			vals[i] = From(v)
		}
		return FromArr(ArrFrom(vals))
	default:
		panic(fmt.Errorf("value: cannot represent %T as a Value", in))
	}
}

// ToNative converts a Value into the corresponding native Go value,
// suitable for encoding/json.Marshal or reflect-based comparisons in tests.
// Objects become map[string]interface{}, arrays become []interface{}.
func (v Value) ToNative() interface{} {
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.data.(bool)
	case KindNum:
		return v.data.(float64)
	case KindStr:
		return v.data.(string)
	case KindArr:
		arr := v.data.(*Arr)
		out := make([]interface{}, 0, arr.Length())
		arr.Range(func(_ int, elem Value) bool {
			out = append(out, elem.ToNative())
			return true
		})
		return out
	case KindObj:
		obj := v.data.(*Obj)
		out := make(map[string]interface{}, obj.Length())
		obj.Range(func(key string, val Value) bool {
			out[key] = val.ToNative()
			return true
		})
		return out
	default:
		return nil
	}
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.ToNative())
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	*v = fromDecoded(raw)
	return nil
}

// fromDecoded converts the output of UnmarshalJSON's decoder, recursing
// into maps and slices and handing every leaf to From. With UseNumber set,
// numeric leaves arrive as json.Number, which From converts (and panics on
// if the number does not fit a float64).
func fromDecoded(in interface{}) Value {
	switch d := in.(type) {
	case map[string]interface{}:
		obj := EmptyObj()
		for k, v := range d {
			obj = obj.Assoc(k, fromDecoded(v))
		}
		return FromObj(obj)
	case []interface{}:
		vals := make([]Value, len(d))
		for i, v := range d {
			vals[i] = fromDecoded(v)
		}
		return FromArr(ArrFrom(vals))
	default:
		return From(in)
	}
}
