package outputtpl

import (
	"testing"

	"github.com/fieldpath/rewrite/value"
)

func obj(pairs ...value.Pair) value.Value {
	return value.FromObj(value.ObjFromPairs(pairs...))
}

func TestResolveLiteralString(t *testing.T) {
	root := obj()
	working := obj()
	tpl := value.Str("literal")
	got := Resolve(root, working, tpl)
	if !value.Equal(got, value.Str("literal")) {
		t.Fatalf("got %v, want literal", got)
	}
}

func TestResolveWholeRootAndWorking(t *testing.T) {
	root := obj(value.Pair{Key: "r", Value: value.Num(1)})
	working := obj(value.Pair{Key: "w", Value: value.Num(2)})

	if got := Resolve(root, working, value.Str("$root")); !value.Equal(got, root) {
		t.Fatalf("$root = %v, want %v", got, root)
	}
	if got := Resolve(root, working, value.Str("$working")); !value.Equal(got, working) {
		t.Fatalf("$working = %v, want %v", got, working)
	}
}

func TestResolveRefSuffix(t *testing.T) {
	root := obj(value.Pair{Key: "s", Value: value.Str("hi")})
	working := obj(value.Pair{Key: "k", Value: value.Str("v")})

	tpl := obj(
		value.Pair{Key: "k", Value: value.Str("$working.k")},
		value.Pair{Key: "meta", Value: value.Str("$root.s")},
	)
	got := Resolve(root, working, tpl)
	want := obj(
		value.Pair{Key: "k", Value: value.Str("v")},
		value.Pair{Key: "meta", Value: value.Str("hi")},
	)
	if !value.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestResolveNestedObjPreservesKeys(t *testing.T) {
	root := obj()
	working := obj(value.Pair{Key: "a", Value: value.Num(1)})
	tpl := obj(value.Pair{Key: "outer", Value: obj(
		value.Pair{Key: "inner", Value: value.Str("$working.a")},
	)})
	got := Resolve(root, working, tpl)
	want := obj(value.Pair{Key: "outer", Value: obj(
		value.Pair{Key: "inner", Value: value.Num(1)},
	)})
	if !value.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestResolveArrAndPrimitivesAreLiteral(t *testing.T) {
	root := obj()
	working := obj()
	tpl := value.FromArr(value.ArrFrom([]value.Value{value.Num(1), value.Bool(true)}))
	got := Resolve(root, working, tpl)
	if !value.Equal(got, tpl) {
		t.Fatalf("array template should pass through literally, got %v", got)
	}
}

func TestResolveMissingTemplateDefaultsToWorking(t *testing.T) {
	root := obj(value.Pair{Key: "r", Value: value.Num(1)})
	working := obj(value.Pair{Key: "w", Value: value.Num(2)})
	got := Resolve(root, working, value.Null())
	if !value.Equal(got, working) {
		t.Fatalf("missing template should default to working, got %v", got)
	}
}

func TestResolveEmptyObjTemplateDefaultsToWorking(t *testing.T) {
	root := obj(value.Pair{Key: "r", Value: value.Num(1)})
	working := obj(value.Pair{Key: "w", Value: value.Num(2)})
	got := Resolve(root, working, obj())
	if !value.Equal(got, working) {
		t.Fatalf("empty object template should default to working, got %v", got)
	}
}

func TestResolveDollarPrefixNotAReference(t *testing.T) {
	root := obj()
	working := obj()
	got := Resolve(root, working, value.Str("$rootish"))
	if !value.Equal(got, value.Str("$rootish")) {
		t.Fatalf("$rootish should be treated as a literal, got %v", got)
	}
}

func TestResolveMissingRefPathIsNull(t *testing.T) {
	root := obj()
	working := obj()
	got := Resolve(root, working, obj(value.Pair{Key: "x", Value: value.Str("$root.missing.path")}))
	want := obj(value.Pair{Key: "x", Value: value.Null()})
	if !value.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
