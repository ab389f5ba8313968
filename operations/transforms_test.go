package operations

import (
	"testing"

	"github.com/fieldpath/rewrite/value"
)

func applyTransform(v value.Value, fn string, args ...value.Value) value.Value {
	pairs := []value.Pair{
		{Key: "op", Value: value.Str("transform")},
		{Key: "path", Value: value.Str("t")},
		{Key: "function", Value: value.Str(fn)},
	}
	if len(args) > 0 {
		pairs = append(pairs, value.Pair{Key: "args", Value: arr(args...)})
	}
	got := Apply(obj(value.Pair{Key: "t", Value: v}), obj(pairs...))
	return got.AsObj().At("t")
}

func TestTransformStringOps(t *testing.T) {
	tests := []struct {
		fn   string
		in   value.Value
		want value.Value
	}{
		{"uppercase", value.Str("abc"), value.Str("ABC")},
		{"lowercase", value.Str("ABC"), value.Str("abc")},
		{"capitalize", value.Str("hELLO"), value.Str("Hello")},
		{"trim", value.Str("  x  "), value.Str("x")},
		{"reverse", value.Str("abc"), value.Str("cba")},
	}
	for _, tt := range tests {
		t.Run(tt.fn, func(t *testing.T) {
			got := applyTransform(tt.in, tt.fn)
			if !value.Equal(got, tt.want) {
				t.Errorf("%s(%v) = %v, want %v", tt.fn, tt.in, got, tt.want)
			}
		})
	}
}

func TestTransformReverseArray(t *testing.T) {
	got := applyTransform(arr(value.Num(1), value.Num(2), value.Num(3)), "reverse")
	want := arr(value.Num(3), value.Num(2), value.Num(1))
	if !value.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTransformNonStringUnchangedForStringOps(t *testing.T) {
	got := applyTransform(value.Num(5), "uppercase")
	if !value.Equal(got, value.Num(5)) {
		t.Fatalf("non-string input should be unchanged, got %v", got)
	}
}

func TestTransformStringCoerce(t *testing.T) {
	if got := applyTransform(value.Bool(true), "string"); !value.Equal(got, value.Str("true")) {
		t.Errorf("string(true) = %v", got)
	}
	if got := applyTransform(value.Num(3), "string"); !value.Equal(got, value.Str("3")) {
		t.Errorf("string(3) = %v", got)
	}
	if got := applyTransform(value.Null(), "string"); !value.Equal(got, value.Str("")) {
		t.Errorf("string(null) = %v", got)
	}
}

func TestTransformNumberIntegerFloat(t *testing.T) {
	if got := applyTransform(value.Str("3.5"), "number"); !value.Equal(got, value.Num(3.5)) {
		t.Errorf("number(\"3.5\") = %v", got)
	}
	if got := applyTransform(value.Str("not a number"), "number"); !got.IsNull() {
		t.Errorf("number(garbage) should be Null, got %v", got)
	}
	if got := applyTransform(value.Num(3.7), "integer"); !value.Equal(got, value.Num(3)) {
		t.Errorf("integer(3.7) = %v", got)
	}
	if got := applyTransform(value.Str("4"), "float"); !value.Equal(got, value.Num(4)) {
		t.Errorf("float(\"4\") = %v", got)
	}
}

func TestTransformBooleanFalsySet(t *testing.T) {
	falsyVals := []value.Value{
		value.Bool(false), value.Null(), value.Str(""), value.Num(0),
		value.Str("false"), value.Str("False"), value.Str("FALSE"), value.Str("0"),
	}
	for _, v := range falsyVals {
		if got := applyTransform(v, "boolean"); !value.Equal(got, value.Bool(false)) {
			t.Errorf("boolean(%v) = %v, want false", v, got)
		}
	}
	if got := applyTransform(value.Str("yes"), "boolean"); !value.Equal(got, value.Bool(true)) {
		t.Errorf("boolean(\"yes\") = %v, want true", got)
	}
}

func TestTransformLength(t *testing.T) {
	if got := applyTransform(value.Str("abc"), "length"); !value.Equal(got, value.Num(3)) {
		t.Errorf("length(\"abc\") = %v", got)
	}
	if got := applyTransform(arr(value.Num(1), value.Num(2)), "length"); !value.Equal(got, value.Num(2)) {
		t.Errorf("length([1,2]) = %v", got)
	}
	if got := applyTransform(value.Num(1), "length"); !got.IsNull() {
		t.Errorf("length(number) should be Null, got %v", got)
	}
}

func TestTransformSplitAndJoin(t *testing.T) {
	split := applyTransform(value.Str("a,b,c"), "split", value.Str(","))
	want := arr(value.Str("a"), value.Str("b"), value.Str("c"))
	if !value.Equal(split, want) {
		t.Fatalf("split = %v, want %v", split, want)
	}
	joined := applyTransform(arr(value.Str("a"), value.Str("b")), "join", value.Str("-"))
	if !value.Equal(joined, value.Str("a-b")) {
		t.Fatalf("join = %v, want a-b", joined)
	}
}

func TestTransformAbsAndRound(t *testing.T) {
	if got := applyTransform(value.Num(-3.5), "abs"); !value.Equal(got, value.Num(3.5)) {
		t.Errorf("abs(-3.5) = %v", got)
	}
	if got := applyTransform(value.Num(3.14159), "round", value.Num(2)); !value.Equal(got, value.Num(3.14)) {
		t.Errorf("round(3.14159, 2) = %v", got)
	}
}

func TestTransformUnknownFunctionIsIdentity(t *testing.T) {
	got := applyTransform(value.Str("x"), "no_such_function")
	if !value.Equal(got, value.Str("x")) {
		t.Fatalf("unknown function should be identity, got %v", got)
	}
}
