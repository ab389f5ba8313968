package traverse

import (
	"testing"

	"github.com/fieldpath/rewrite/jpath"
	"github.com/fieldpath/rewrite/value"
)

func obj(pairs ...value.Pair) value.Value {
	return value.FromObj(value.ObjFromPairs(pairs...))
}

func arr(vals ...value.Value) value.Value {
	return value.FromArr(value.ArrFrom(vals))
}

func TestGetPutRoundTrip(t *testing.T) {
	v := obj(value.Pair{Key: "a", Value: obj(value.Pair{Key: "x", Value: value.Str("x")})})
	p := jpath.Parse("a.b.c")
	w := value.Num(42)

	got := Get(Put(v, p, w), p)
	if !value.Equal(got, w) {
		t.Fatalf("get(put(v,p,w),p) = %v, want %v", got, w)
	}
}

func TestGetMissingIsNull(t *testing.T) {
	v := obj()
	got := Get(v, jpath.Parse("missing.deep"))
	if !got.IsNull() {
		t.Fatalf("expected Null, got %v", got)
	}
}

func TestGetEmptyPathIsIdentity(t *testing.T) {
	v := obj(value.Pair{Key: "a", Value: value.Num(1)})
	got := Get(v, jpath.Parse(""))
	if !value.Equal(got, v) {
		t.Fatalf("get(v, empty) should be v itself")
	}
}

func TestWildcardReadLifts(t *testing.T) {
	v := obj(value.Pair{Key: "users", Value: arr(
		obj(value.Pair{Key: "name", Value: value.Str("A")}),
		obj(value.Pair{Key: "name", Value: value.Str("B")}),
	)})
	got := Get(v, jpath.Parse("users[].name"))
	want := arr(value.Str("A"), value.Str("B"))
	if !value.Equal(got, want) {
		t.Fatalf("wildcard read = %v, want %v", got, want)
	}
}

func TestWildcardWriteBroadcasts(t *testing.T) {
	v := obj(value.Pair{Key: "users", Value: arr(obj(), obj())})
	got := Put(v, jpath.Parse("users[].flag"), value.Bool(true))
	want := obj(value.Pair{Key: "users", Value: arr(
		obj(value.Pair{Key: "flag", Value: value.Bool(true)}),
		obj(value.Pair{Key: "flag", Value: value.Bool(true)}),
	)})
	if !value.Equal(got, want) {
		t.Fatalf("wildcard write = %v, want %v", got, want)
	}
}

func TestDeleteAbsentIsNoop(t *testing.T) {
	v := obj(value.Pair{Key: "a", Value: value.Num(1)})
	got := Delete(v, jpath.Parse("missing"))
	if !value.Equal(got, v) {
		t.Fatalf("delete of absent key should be a no-op")
	}
}

func TestDeleteThenGetIsNull(t *testing.T) {
	v := obj(value.Pair{Key: "a", Value: value.Num(1)})
	p := jpath.Parse("a")
	got := Get(Delete(v, p), p)
	if !got.IsNull() {
		t.Fatalf("get(delete(v,p),p) = %v, want Null", got)
	}
}

func TestUpdateIdentityIsNoop(t *testing.T) {
	v := obj(value.Pair{Key: "a", Value: value.Num(1)})
	got := Update(v, jpath.Parse("a"), func(x value.Value) value.Value { return x })
	if !value.Equal(got, v) {
		t.Fatalf("update with identity should not change v")
	}
}

func TestUpdateUnderWildcardIsPointwise(t *testing.T) {
	v := obj(value.Pair{Key: "xs", Value: arr(value.Num(1), value.Num(2), value.Num(3))})
	got := Update(v, jpath.Parse("xs[]"), func(x value.Value) value.Value {
		n, _ := x.ToNum()
		return value.Num(n * 2)
	})
	want := obj(value.Pair{Key: "xs", Value: arr(value.Num(2), value.Num(4), value.Num(6))})
	if !value.Equal(got, want) {
		t.Fatalf("pointwise update = %v, want %v", got, want)
	}
}

func TestNonArrUnderWildcardWriteIsNoop(t *testing.T) {
	v := obj(value.Pair{Key: "xs", Value: value.Str("not an array")})
	got := Put(v, jpath.Parse("xs[].y"), value.Num(1))
	if !value.Equal(got, v) {
		t.Fatalf("put through non-array wildcard should be a no-op")
	}
}

func TestNonArrUnderWildcardReadIsNull(t *testing.T) {
	v := obj(value.Pair{Key: "xs", Value: value.Str("not an array")})
	got := Get(v, jpath.Parse("xs[].y"))
	if !got.IsNull() {
		t.Fatalf("get through non-array wildcard should be Null, got %v", got)
	}
}
