package operations

import "github.com/fieldpath/rewrite/value"

// prune recursively removes object entries and array elements that are
// empty after their own children have been pruned first: Null, "", {},
// or []. Only strategy "empty_values" is implemented; any other strategy
// (including the documented but never-implemented "null_values") leaves
// working unchanged.
func prune(working value.Value, op *value.Obj) value.Value {
	strategy, ok := getStr(op, "strategy")
	if !ok || strategy != "empty_values" {
		return working
	}
	return pruneValue(working)
}

func pruneValue(v value.Value) value.Value {
	switch {
	case v.IsObj():
		obj := v.AsObj()
		out := value.EmptyObj()
		obj.Range(func(key string, val value.Value) bool {
			pruned := pruneValue(val)
			if !isEmptyValue(pruned) {
				out = out.Assoc(key, pruned)
			}
			return true
		})
		return value.FromObj(out)
	case v.IsArr():
		arr := v.AsArr()
		out := value.EmptyArr()
		arr.Range(func(_ int, val value.Value) bool {
			pruned := pruneValue(val)
			if !isEmptyValue(pruned) {
				out = out.Append(pruned)
			}
			return true
		})
		return value.FromArr(out)
	default:
		return v
	}
}

func isEmptyValue(v value.Value) bool {
	if v.IsNull() {
		return true
	}
	if s, ok := v.ToStr(); ok {
		return s == ""
	}
	if obj, ok := v.ToObj(); ok {
		return obj.Length() == 0
	}
	if arr, ok := v.ToArr(); ok {
		return arr.Length() == 0
	}
	return false
}
