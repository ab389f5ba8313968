// Package operations implements the operator catalogue: one pure
// Value-in, Value-out handler per operator kind, dispatched by the "op"
// string tag on an operation record. Unknown kinds, malformed parameters,
// and any panic raised inside a handler all degrade to returning working
// unchanged.
package operations

import (
	"sort"

	"jsouthworth.net/go/try"

	"github.com/fieldpath/rewrite/value"
)

type handler func(working value.Value, op *value.Obj) value.Value

var registry = map[string]handler{
	"drop":                 drop,
	"project":              project,
	"project_and_replace":  projectAndReplace,
	"rename":               rename,
	"hoist_map_values":     hoistMapValues,
	"list_to_map":          listToMap,
	"list_to_dynamic_map":  listToDynamicMap,
	"promote_list_to_keys": promoteListToKeys,
	"truncate_list":        truncateList,
	"aggregate_list":       aggregateList,
	"prune":                prune,
	"set":                  set,
	"copy":                 copyOp,
	"move":                 move,
	"transform":            transform,
	"current_timestamp":    currentTimestamp,
	"format_date":          formatDate,
	"parse_date":           parseDate,
	"date_add":             dateAdd,
	"date_diff":            dateDiff,
}

// Registered returns the op kinds this dispatcher knows, sorted for
// deterministic output. Used by the validator to check an "op" tag
// against the known catalogue.
func Registered() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Apply dispatches a single operation record against working, returning
// the next working value. An op record that isn't an Obj, one whose "op"
// tag isn't registered, or a handler that panics all fall back to
// returning working unchanged.
func Apply(working, opRecord value.Value) value.Value {
	obj, ok := opRecord.ToObj()
	if !ok {
		return working
	}
	kind, ok := getStr(obj, "op")
	if !ok {
		return working
	}
	fn, ok := registry[kind]
	if !ok {
		return working
	}
	result, err := try.Apply(fn, working, obj)
	if err != nil {
		return working
	}
	v, ok := result.(value.Value)
	if !ok {
		return working
	}
	return v
}
