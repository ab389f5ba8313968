package rewrite

import (
	"fmt"
	"math"

	"github.com/fieldpath/rewrite/operations"
	"github.com/fieldpath/rewrite/value"
)

// requiredParams lists, per op kind, the parameter keys Validate checks
// for presence. It does not check value types beyond what a quick Find can
// express. Execute remains more permissive than Validate: the evaluator
// never invokes the validator, and configurations that survive validation
// are a subset of what the evaluator accepts.
var requiredParams = map[string][]string{
	"drop":                 {"paths"},
	"project":              {"path", "mapping"},
	"project_and_replace":  {"projection"},
	"rename":               {"mapping"},
	"hoist_map_values":     {"path", "child_key"},
	"list_to_map":          {"path", "key_from", "value_from"},
	"list_to_dynamic_map":  {"path", "key_from", "value_from"},
	"promote_list_to_keys": {"path", "child_list", "key_from", "value_from"},
	"truncate_list":        {"path", "max_size", "shape"},
	"aggregate_list":       {"path", "shape"},
	"prune":                {"strategy"},
	"set":                  {"path", "value"},
	"transform":            {"path", "function"},
	"copy":                 {"from", "to"},
	"move":                 {"from", "to"},
	"current_timestamp":    {"path"},
	"format_date":          {"path", "format"},
	"parse_date":           {"path"},
	"date_add":             {"path", "amount", "unit"},
	"date_diff":            {"from_path", "to_path", "result_path"},
}

var registeredOps = func() map[string]bool {
	m := make(map[string]bool)
	for _, name := range operations.Registered() {
		m[name] = true
	}
	return m
}()

// Validate checks config's shape against the configuration grammar: it
// must be an Obj containing a "pipeline" array, an optional "version"
// (non-empty string or integer), and a "pipeline" whose every element is
// an Obj with a recognized "op" string and that op kind's required
// parameters present. The first offending step's problem is reported;
// Validate never panics.
func Validate(config value.Value) error {
	cfgObj, ok := config.ToObj()
	if !ok {
		return fmt.Errorf("config must be an object")
	}

	if v, ok := cfgObj.Find("version"); ok {
		if !isValidVersion(v) {
			return fmt.Errorf("version must be a non-empty string or an integer")
		}
	}

	pipelineVal, ok := cfgObj.Find("pipeline")
	if !ok {
		return fmt.Errorf("config is missing required key \"pipeline\"")
	}
	pipeline, ok := pipelineVal.ToArr()
	if !ok {
		return fmt.Errorf("\"pipeline\" must be an array")
	}

	var firstErr error
	pipeline.Range(func(idx int, opRecord value.Value) bool {
		if err := validateStep(opRecord); err != nil {
			firstErr = fmt.Errorf("pipeline[%d]: %w", idx, err)
			return false
		}
		return true
	})
	return firstErr
}

func isValidVersion(v value.Value) bool {
	if s, ok := v.ToStr(); ok {
		return s != ""
	}
	n, ok := v.ToNum()
	return ok && n == math.Trunc(n)
}

func validateStep(opRecord value.Value) error {
	obj, ok := opRecord.ToObj()
	if !ok {
		return fmt.Errorf("operation must be an object")
	}
	kind, ok := obj.At("op").ToStr()
	if !ok || kind == "" {
		return fmt.Errorf("operation is missing a string \"op\"")
	}
	if !registeredOps[kind] {
		return fmt.Errorf("unknown op %q", kind)
	}
	for _, key := range requiredParams[kind] {
		if !obj.Contains(key) {
			return fmt.Errorf("op %q is missing required parameter %q", kind, key)
		}
	}
	return nil
}
