package operations

import (
	"strconv"
	"strings"

	"github.com/fieldpath/rewrite/jpath"
	"github.com/fieldpath/rewrite/traverse"
	"github.com/fieldpath/rewrite/value"
)

// listToMap folds the array at path into an Obj, keyed by each item's
// key_from field (which must be a string); value_from supplies the bucket
// value. Items missing either field, or whose key isn't a string, are
// skipped. Later items win on duplicate keys.
func listToMap(working value.Value, op *value.Obj) value.Value {
	pathStr, keyFrom, valueFrom, ok := listShapeParams(op)
	if !ok {
		return working
	}
	p := jpath.Parse(pathStr)
	return traverse.Update(working, p, func(v value.Value) value.Value {
		arr, ok := v.ToArr()
		if !ok {
			return v
		}
		out := value.EmptyObj()
		arr.Range(func(_ int, item value.Value) bool {
			k, val, ok := listItemKV(item, keyFrom, valueFrom)
			if ok {
				out = out.Assoc(k, val)
			}
			return true
		})
		return value.FromObj(out)
	})
}

// listToDynamicMap is listToMap, except items sharing a key_from value are
// grouped: each bucket is an Arr of every matching value_from value, in
// item order.
func listToDynamicMap(working value.Value, op *value.Obj) value.Value {
	pathStr, keyFrom, valueFrom, ok := listShapeParams(op)
	if !ok {
		return working
	}
	p := jpath.Parse(pathStr)
	return traverse.Update(working, p, func(v value.Value) value.Value {
		arr, ok := v.ToArr()
		if !ok {
			return v
		}
		out := value.EmptyObj()
		arr.Range(func(_ int, item value.Value) bool {
			k, val, ok := listItemKV(item, keyFrom, valueFrom)
			if !ok {
				return true
			}
			bucket, _ := out.At(k).ToArr()
			if bucket == nil {
				bucket = value.EmptyArr()
			}
			out = out.Assoc(k, value.FromArr(bucket.Append(val)))
			return true
		})
		return value.FromObj(out)
	})
}

// promoteListToKeys folds the Arr at path.child_list into an Obj (as
// listToMap does), deletes child_list, and shallow-merges the fold result
// into the parent object at path.
func promoteListToKeys(working value.Value, op *value.Obj) value.Value {
	pathStr, ok := getStr(op, "path")
	if !ok {
		return working
	}
	childList, ok := getStr(op, "child_list")
	if !ok {
		return working
	}
	keyFrom, ok := getStr(op, "key_from")
	if !ok {
		return working
	}
	valueFrom, ok := getStr(op, "value_from")
	if !ok {
		return working
	}
	p := jpath.Parse(pathStr)
	return traverse.Update(working, p, func(v value.Value) value.Value {
		parent, ok := v.ToObj()
		if !ok {
			return v
		}
		arr, ok := parent.At(childList).ToArr()
		if !ok {
			return v
		}
		folded := value.EmptyObj()
		arr.Range(func(_ int, item value.Value) bool {
			k, val, ok := listItemKV(item, keyFrom, valueFrom)
			if ok {
				folded = folded.Assoc(k, val)
			}
			return true
		})
		return value.FromObj(parent.Delete(childList).Merge(folded))
	})
}

func listShapeParams(op *value.Obj) (path, keyFrom, valueFrom string, ok bool) {
	path, ok = getStr(op, "path")
	if !ok {
		return
	}
	keyFrom, ok = getStr(op, "key_from")
	if !ok {
		return
	}
	valueFrom, ok = getStr(op, "value_from")
	return
}

func listItemKV(item value.Value, keyFrom, valueFrom string) (string, value.Value, bool) {
	obj, ok := item.ToObj()
	if !ok {
		return "", value.Null(), false
	}
	keyVal, ok := obj.Find(keyFrom)
	if !ok {
		return "", value.Null(), false
	}
	k, ok := keyVal.ToStr()
	if !ok {
		return "", value.Null(), false
	}
	val, ok := obj.Find(valueFrom)
	if !ok {
		return "", value.Null(), false
	}
	return k, val, true
}

// truncateList replaces the array at path with an Obj built from shape,
// whose leaves are sigils resolved against the list: "$length" is the
// array length, "$slice(i,j)" a sub-array, "$map_slice(i,j,p)" elements
// i..j each read through path p, and any other leaf a literal. max_size
// is accepted as a parameter but is advisory only; it does not itself
// truncate anything outside $slice.
func truncateList(working value.Value, op *value.Obj) value.Value {
	pathStr, ok := getStr(op, "path")
	if !ok {
		return working
	}
	shape, ok := getObj(op, "shape")
	if !ok {
		return working
	}
	p := jpath.Parse(pathStr)
	return traverse.Update(working, p, func(v value.Value) value.Value {
		arr, ok := v.ToArr()
		if !ok {
			return v
		}
		out := value.EmptyObj()
		shape.Range(func(key string, leaf value.Value) bool {
			out = out.Assoc(key, resolveListSigil(arr, leaf))
			return true
		})
		return value.FromObj(out)
	})
}

func resolveListSigil(arr *value.Arr, leaf value.Value) value.Value {
	s, ok := leaf.ToStr()
	if !ok {
		return leaf
	}
	if s == "$length" {
		return value.Num(float64(arr.Length()))
	}
	if args, ok := sigilArgs(s, "$slice"); ok && len(args) == 2 {
		i, j, ok := parseIntPair(args[0], args[1])
		if !ok {
			return leaf
		}
		return value.FromArr(arr.Slice(i, j))
	}
	if args, ok := sigilArgs(s, "$map_slice"); ok && len(args) == 3 {
		i, j, ok := parseIntPair(args[0], args[1])
		if !ok {
			return leaf
		}
		sub := arr.Slice(i, j)
		mapPath := jpath.Parse(strings.TrimSpace(args[2]))
		out := make([]value.Value, 0, sub.Length())
		sub.Range(func(_ int, elem value.Value) bool {
			out = append(out, traverse.Get(elem, mapPath))
			return true
		})
		return value.FromArr(value.ArrFrom(out))
	}
	return leaf
}

// sigilArgs reports whether s is "name(a, b, ...)" for the given name, and
// if so returns the comma-split, trimmed argument strings.
func sigilArgs(s, name string) ([]string, bool) {
	if !strings.HasPrefix(s, name+"(") || !strings.HasSuffix(s, ")") {
		return nil, false
	}
	inner := s[len(name)+1 : len(s)-1]
	if inner == "" {
		return nil, true
	}
	parts := strings.Split(inner, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts, true
}

func parseIntPair(a, b string) (int, int, bool) {
	i, err1 := strconv.Atoi(strings.TrimSpace(a))
	j, err2 := strconv.Atoi(strings.TrimSpace(b))
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return i, j, true
}

// aggregateList replaces the array at path with an Obj built from shape,
// whose leaves are "$min(p)"/"$max(p)" sigils computed across items after
// get(_, p); null items are skipped. Empty input (after skipping nulls)
// yields Null for that leaf. Unrecognized leaves are literals.
func aggregateList(working value.Value, op *value.Obj) value.Value {
	pathStr, ok := getStr(op, "path")
	if !ok {
		return working
	}
	shape, ok := getObj(op, "shape")
	if !ok {
		return working
	}
	p := jpath.Parse(pathStr)
	return traverse.Update(working, p, func(v value.Value) value.Value {
		arr, ok := v.ToArr()
		if !ok {
			return v
		}
		out := value.EmptyObj()
		shape.Range(func(key string, leaf value.Value) bool {
			out = out.Assoc(key, resolveAggregateSigil(arr, leaf))
			return true
		})
		return value.FromObj(out)
	})
}

func resolveAggregateSigil(arr *value.Arr, leaf value.Value) value.Value {
	s, ok := leaf.ToStr()
	if !ok {
		return leaf
	}
	if args, ok := sigilArgs(s, "$min"); ok && len(args) == 1 {
		return aggregateExtremum(arr, jpath.Parse(args[0]), -1)
	}
	if args, ok := sigilArgs(s, "$max"); ok && len(args) == 1 {
		return aggregateExtremum(arr, jpath.Parse(args[0]), 1)
	}
	return leaf
}

// aggregateExtremum scans arr, reading p from every element, skipping
// Null, and keeps the value whose Compare result against the current best
// matches want (-1 for min, 1 for max).
func aggregateExtremum(arr *value.Arr, p jpath.Path, want int) value.Value {
	var best value.Value
	have := false
	arr.Range(func(_ int, item value.Value) bool {
		v := traverse.Get(item, p)
		if v.IsNull() {
			return true
		}
		if !have || cmpDirection(value.Compare(v, best)) == want {
			best = v
			have = true
		}
		return true
	})
	if !have {
		return value.Null()
	}
	return best
}

func cmpDirection(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	default:
		return 0
	}
}
