package operations

import (
	"math"
	"strconv"
	"strings"

	"github.com/fieldpath/rewrite/jpath"
	"github.com/fieldpath/rewrite/traverse"
	"github.com/fieldpath/rewrite/value"
)

type transformFn func(v value.Value, args []value.Value) value.Value

var transformFns = map[string]transformFn{
	"uppercase":  stringFn(strings.ToUpper),
	"lowercase":  stringFn(strings.ToLower),
	"capitalize": stringFn(capitalize),
	"trim":       stringFn(strings.TrimSpace),
	"reverse":    reverseFn,
	"string":     stringCoerce,
	"number":     numberCoerce,
	"integer":    integerCoerce,
	"float":      floatCoerce,
	"boolean":    booleanCoerce,
	"length":     lengthFn,
	"split":      splitFn,
	"join":       joinFn,
	"abs":        absFn,
	"round":      roundFn,
}

// transform applies function (with optional args) to the value at path.
// An unrecognized function leaves the value unchanged.
func transform(working value.Value, op *value.Obj) value.Value {
	pathStr, ok := getStr(op, "path")
	if !ok {
		return working
	}
	fnName, ok := getStr(op, "function")
	if !ok {
		return working
	}
	fn, ok := transformFns[fnName]
	if !ok {
		return working
	}
	var args []value.Value
	if arr, ok := getArr(op, "args"); ok {
		args = arr.ToSlice()
	}
	p := jpath.Parse(pathStr)
	return traverse.Update(working, p, func(v value.Value) value.Value {
		return fn(v, args)
	})
}

func stringFn(f func(string) string) transformFn {
	return func(v value.Value, _ []value.Value) value.Value {
		s, ok := v.ToStr()
		if !ok {
			return v
		}
		return value.Str(f(s))
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}

// reverseFn reverses a string's characters, or an array's element order.
// Any other kind is unchanged.
func reverseFn(v value.Value, _ []value.Value) value.Value {
	if s, ok := v.ToStr(); ok {
		r := []rune(s)
		for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
			r[i], r[j] = r[j], r[i]
		}
		return value.Str(string(r))
	}
	if arr, ok := v.ToArr(); ok {
		return value.FromArr(arr.Reversed())
	}
	return v
}

// stringCoerce renders bool/number as decimal text, null as "", and
// passes strings, arrays, and objects through as-is.
func stringCoerce(v value.Value, _ []value.Value) value.Value {
	if v.IsNull() {
		return value.Str("")
	}
	if b, ok := v.ToBool(); ok {
		return value.Str(strconv.FormatBool(b))
	}
	if n, ok := v.ToNum(); ok {
		return value.Str(formatNumber(n))
	}
	return v
}

func formatNumber(n float64) string {
	if n == math.Trunc(n) && !math.IsInf(n, 0) {
		return strconv.FormatFloat(n, 'f', 0, 64)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// numberCoerce parses a string (or passes through a number) to the
// narrowest representation: an integral value renders conceptually as an
// integer, a fractional one as a real; both are stored as float64.
// Non-parsable input yields Null.
func numberCoerce(v value.Value, _ []value.Value) value.Value {
	if v.IsNum() {
		return v
	}
	s, ok := v.ToStr()
	if !ok {
		return value.Null()
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return value.Null()
	}
	return value.Num(n)
}

// integerCoerce parses a string or truncates a number toward zero.
func integerCoerce(v value.Value, _ []value.Value) value.Value {
	if n, ok := v.ToNum(); ok {
		return value.Num(math.Trunc(n))
	}
	s, ok := v.ToStr()
	if !ok {
		return value.Null()
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return value.Null()
	}
	return value.Num(math.Trunc(n))
}

// floatCoerce parses a string or widens a number (a no-op, since all
// numbers are already float64 internally).
func floatCoerce(v value.Value, _ []value.Value) value.Value {
	if v.IsNum() {
		return v
	}
	s, ok := v.ToStr()
	if !ok {
		return value.Null()
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return value.Null()
	}
	return value.Num(n)
}

var falsy = map[string]bool{
	"":      true,
	"false": true,
	"False": true,
	"FALSE": true,
	"0":     true,
}

// booleanCoerce is true unless v is false, null, "", 0, 0.0, or one of the
// string spellings of false/0.
func booleanCoerce(v value.Value, _ []value.Value) value.Value {
	if v.IsNull() {
		return value.Bool(false)
	}
	if b, ok := v.ToBool(); ok {
		return value.Bool(b)
	}
	if n, ok := v.ToNum(); ok {
		return value.Bool(n != 0)
	}
	if s, ok := v.ToStr(); ok {
		return value.Bool(!falsy[s])
	}
	return value.Bool(true)
}

// lengthFn reports string character count, array length, or object member
// count; any other kind yields Null.
func lengthFn(v value.Value, _ []value.Value) value.Value {
	if s, ok := v.ToStr(); ok {
		return value.Num(float64(len([]rune(s))))
	}
	if arr, ok := v.ToArr(); ok {
		return value.Num(float64(arr.Length()))
	}
	if obj, ok := v.ToObj(); ok {
		return value.Num(float64(obj.Length()))
	}
	return value.Null()
}

// splitFn splits a string on args[0] (default " "); non-strings unchanged.
func splitFn(v value.Value, args []value.Value) value.Value {
	s, ok := v.ToStr()
	if !ok {
		return v
	}
	delim := argStrDefault(args, 0, " ")
	parts := strings.Split(s, delim)
	out := make([]value.Value, len(parts))
	for i, p := range parts {
		out[i] = value.Str(p)
	}
	return value.FromArr(value.ArrFrom(out))
}

// joinFn concatenates an array's elements (rendered via Value.String)
// using args[0] (default " "); non-arrays unchanged.
func joinFn(v value.Value, args []value.Value) value.Value {
	arr, ok := v.ToArr()
	if !ok {
		return v
	}
	delim := argStrDefault(args, 0, " ")
	parts := make([]string, 0, arr.Length())
	arr.Range(func(_ int, elem value.Value) bool {
		parts = append(parts, elem.String())
		return true
	})
	return value.Str(strings.Join(parts, delim))
}

// absFn is the numeric absolute value; non-numbers unchanged.
func absFn(v value.Value, _ []value.Value) value.Value {
	n, ok := v.ToNum()
	if !ok {
		return v
	}
	return value.Num(math.Abs(n))
}

// roundFn rounds to args[0] decimal places (default 0); non-numbers
// unchanged.
func roundFn(v value.Value, args []value.Value) value.Value {
	n, ok := v.ToNum()
	if !ok {
		return v
	}
	places := argNumDefault(args, 0, 0)
	scale := math.Pow(10, places)
	return value.Num(math.Round(n*scale) / scale)
}

func argStrDefault(args []value.Value, i int, def string) string {
	if i >= len(args) {
		return def
	}
	if s, ok := args[i].ToStr(); ok {
		return s
	}
	return def
}

func argNumDefault(args []value.Value, i int, def float64) float64 {
	if i >= len(args) {
		return def
	}
	if n, ok := args[i].ToNum(); ok {
		return n
	}
	return def
}
