package rewrite

import (
	"testing"

	"github.com/fieldpath/rewrite/value"
)

func TestValidateRejectsNonObjConfig(t *testing.T) {
	if err := Validate(value.Str("nope")); err == nil {
		t.Fatal("expected an error for a non-object config")
	}
}

func TestValidateRequiresPipeline(t *testing.T) {
	if err := Validate(obj()); err == nil {
		t.Fatal("expected an error for a config missing \"pipeline\"")
	}
}

func TestValidateAcceptsEmptyPipeline(t *testing.T) {
	if err := Validate(obj(value.Pair{Key: "pipeline", Value: arr()})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsUnknownOp(t *testing.T) {
	config := obj(value.Pair{Key: "pipeline", Value: arr(obj(
		value.Pair{Key: "op", Value: value.Str("no_such_op")},
	))})
	if err := Validate(config); err == nil {
		t.Fatal("expected an error for an unknown op")
	}
}

func TestValidateRejectsMissingRequiredParam(t *testing.T) {
	config := obj(value.Pair{Key: "pipeline", Value: arr(obj(
		value.Pair{Key: "op", Value: value.Str("drop")},
	))})
	if err := Validate(config); err == nil {
		t.Fatal("expected an error for drop missing \"paths\"")
	}
}

func TestValidateAcceptsWellFormedConfig(t *testing.T) {
	config := obj(
		value.Pair{Key: "version", Value: value.Str("1")},
		value.Pair{Key: "pipeline", Value: arr(obj(
			value.Pair{Key: "op", Value: value.Str("drop")},
			value.Pair{Key: "paths", Value: arr(value.Str("a"))},
		))},
	)
	if err := Validate(config); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsEmptyStringVersion(t *testing.T) {
	config := obj(
		value.Pair{Key: "version", Value: value.Str("")},
		value.Pair{Key: "pipeline", Value: arr()},
	)
	if err := Validate(config); err == nil {
		t.Fatal("expected an error for an empty string version")
	}
}

func TestValidateIsMorePermissiveThanExecuteIsNot(t *testing.T) {
	// Execute accepts configs Validate rejects (e.g. an unknown op), but
	// the reverse never holds: anything Validate accepts, Execute runs
	// without panicking.
	config := obj(
		value.Pair{Key: "pipeline", Value: arr(obj(
			value.Pair{Key: "op", Value: value.Str("drop")},
			value.Pair{Key: "paths", Value: arr(value.Str("a"))},
		))},
	)
	if err := Validate(config); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = Execute(obj(value.Pair{Key: "a", Value: value.Num(1)}), config)
}
