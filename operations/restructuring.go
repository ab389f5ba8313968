package operations

import (
	"github.com/fieldpath/rewrite/jpath"
	"github.com/fieldpath/rewrite/traverse"
	"github.com/fieldpath/rewrite/value"
)

func drop(working value.Value, op *value.Obj) value.Value {
	paths, ok := getStrArr(op, "paths")
	if !ok {
		return working
	}
	for _, p := range paths {
		working = traverse.Delete(working, jpath.Parse(p))
	}
	return working
}

// project reads the subtree at path, re-shapes it through mapping (new
// key -> source path, resolved against the subtree), and writes the
// result back at path. If the subtree is an Arr, the same projection is
// applied elementwise.
func project(working value.Value, op *value.Obj) value.Value {
	pathStr, ok := getStr(op, "path")
	if !ok {
		return working
	}
	mapping, order, ok := getStrMap(op, "mapping")
	if !ok {
		return working
	}
	p := jpath.Parse(pathStr)
	subtree := traverse.Get(working, p)
	projected := projectValue(subtree, mapping, order)
	return traverse.Put(working, p, projected)
}

func projectValue(subtree value.Value, mapping map[string]string, order []string) value.Value {
	if arr, ok := subtree.ToArr(); ok {
		out := make([]value.Value, 0, arr.Length())
		arr.Range(func(_ int, elem value.Value) bool {
			out = append(out, projectOne(elem, mapping, order))
			return true
		})
		return value.FromArr(value.ArrFrom(out))
	}
	return projectOne(subtree, mapping, order)
}

func projectOne(subtree value.Value, mapping map[string]string, order []string) value.Value {
	out := value.EmptyObj()
	for _, newKey := range order {
		out = out.Assoc(newKey, traverse.Get(subtree, jpath.Parse(mapping[newKey])))
	}
	return value.FromObj(out)
}

// projectAndReplace applies the same projection shape as project, but to
// the whole working value, replacing it outright.
func projectAndReplace(working value.Value, op *value.Obj) value.Value {
	mapping, order, ok := getStrMap(op, "projection")
	if !ok {
		return working
	}
	return projectValue(working, mapping, order)
}

// rename moves each from->to pair. The common path prefix between from and
// to is walked segment by segment; at the first point they diverge, the
// value at from's remaining suffix is read, written at to's suffix, and
// deleted from from's suffix. A wildcard segment in the shared prefix
// broadcasts the rename pointwise over the array; a wildcard mismatch
// between from and to at the divergence point is a no-op for that pair.
func rename(working value.Value, op *value.Obj) value.Value {
	mapping, order, ok := getStrMap(op, "mapping")
	if !ok {
		return working
	}
	for _, from := range order {
		to := mapping[from]
		working = renamePair(working, jpath.Parse(from), jpath.Parse(to))
	}
	return working
}

func renamePair(working value.Value, from, to jpath.Path) value.Value {
	fromSegs, toSegs := from.Segments(), to.Segments()
	i := 0
	for i < len(fromSegs) && i < len(toSegs) && segEqual(fromSegs[i], toSegs[i]) {
		i++
	}
	if i < len(fromSegs) && i < len(toSegs) && fromSegs[i].Kind != toSegs[i].Kind {
		return working
	}
	prefix := jpath.PathFrom(fromSegs[:i])
	fromSuffix := jpath.PathFrom(fromSegs[i:])
	toSuffix := jpath.PathFrom(toSegs[i:])
	return traverse.Update(working, prefix, func(v value.Value) value.Value {
		moved := traverse.Get(v, fromSuffix)
		v = traverse.Put(v, toSuffix, moved)
		v = traverse.Delete(v, fromSuffix)
		return v
	})
}

func segEqual(a, b jpath.Segment) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == jpath.Field {
		return a.Name == b.Name
	}
	return true
}

// hoistMapValues finds the object P at path and its nested object
// P[child_key]=C. With replace_parent it returns (P minus child_key)
// right-merged with C; without it, it is a documented but unimplemented
// no-op, preserved for API compatibility with callers that pass
// replace_parent: false expecting identity.
func hoistMapValues(working value.Value, op *value.Obj) value.Value {
	pathStr, ok := getStr(op, "path")
	if !ok {
		return working
	}
	childKey, ok := getStr(op, "child_key")
	if !ok {
		return working
	}
	if !getBoolDefault(op, "replace_parent", false) {
		return working
	}
	p := jpath.Parse(pathStr)
	return traverse.Update(working, p, func(v value.Value) value.Value {
		parent, ok := v.ToObj()
		if !ok {
			return v
		}
		child, ok := parent.At(childKey).ToObj()
		if !ok {
			return v
		}
		return value.FromObj(parent.Delete(childKey).Merge(child))
	})
}
