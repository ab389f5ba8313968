package operations

import (
	"testing"

	"github.com/fieldpath/rewrite/value"
)

func obj(pairs ...value.Pair) value.Value {
	return value.FromObj(value.ObjFromPairs(pairs...))
}

func arr(vals ...value.Value) value.Value {
	return value.FromArr(value.ArrFrom(vals))
}

func TestApplyUnknownOpIsIdentity(t *testing.T) {
	w := obj(value.Pair{Key: "a", Value: value.Num(1)})
	got := Apply(w, obj(value.Pair{Key: "op", Value: value.Str("no_such_op")}))
	if !value.Equal(got, w) {
		t.Fatalf("unknown op should be identity, got %v", got)
	}
}

func TestApplyMalformedOpRecordIsIdentity(t *testing.T) {
	w := obj(value.Pair{Key: "a", Value: value.Num(1)})
	if got := Apply(w, value.Str("not an op")); !value.Equal(got, w) {
		t.Fatalf("non-obj op record should be identity, got %v", got)
	}
	if got := Apply(w, obj()); !value.Equal(got, w) {
		t.Fatalf("op record missing \"op\" should be identity, got %v", got)
	}
}

func TestApplyMissingRequiredParamIsIdentity(t *testing.T) {
	w := obj(value.Pair{Key: "a", Value: value.Num(1)})
	got := Apply(w, obj(value.Pair{Key: "op", Value: value.Str("drop")}))
	if !value.Equal(got, w) {
		t.Fatalf("drop with no paths should be identity, got %v", got)
	}
}

func TestRegisteredIsSortedAndComplete(t *testing.T) {
	names := Registered()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("Registered() not sorted at %d: %v", i, names)
		}
	}
	want := []string{
		"drop", "project", "project_and_replace", "rename", "hoist_map_values",
		"list_to_map", "list_to_dynamic_map", "promote_list_to_keys",
		"truncate_list", "aggregate_list", "prune", "set", "copy", "move",
		"transform", "current_timestamp", "format_date", "parse_date",
		"date_add", "date_diff",
	}
	have := map[string]bool{}
	for _, n := range names {
		have[n] = true
	}
	for _, w := range want {
		if !have[w] {
			t.Errorf("Registered() missing %q", w)
		}
	}
}
