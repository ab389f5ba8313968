package operations

import (
	"strings"

	"github.com/fieldpath/rewrite/jpath"
	"github.com/fieldpath/rewrite/traverse"
	"github.com/fieldpath/rewrite/value"
)

const pathRefSigil = "$path:"

// set writes value at path. A string value beginning with "$path:" names a
// source path to resolve instead of a literal; everything else (including
// non-string values) is a literal. Resolution shares alignment rules with
// copy: when the target and the resolved source path share the same
// leading "name[]" segment, the copy is array-aligned (elementwise within
// that one array); otherwise the source is resolved once and broadcast via
// an ordinary put, which itself lifts or broadcasts across any wildcard in
// the respective paths.
func set(working value.Value, op *value.Obj) value.Value {
	pathStr, ok := getStr(op, "path")
	if !ok {
		return working
	}
	raw, ok := op.Find("value")
	if !ok {
		return working
	}
	to := jpath.Parse(pathStr)
	if s, isStr := raw.ToStr(); isStr {
		if from, ok := strings.CutPrefix(s, pathRefSigil); ok {
			return copyPaths(working, jpath.Parse(from), to)
		}
	}
	return traverse.Put(working, to, raw)
}

// copyOp implements the "copy" operator: copy(from, to) preserving from.
func copyOp(working value.Value, op *value.Obj) value.Value {
	fromStr, ok := getStr(op, "from")
	if !ok {
		return working
	}
	toStr, ok := getStr(op, "to")
	if !ok {
		return working
	}
	return copyPaths(working, jpath.Parse(fromStr), jpath.Parse(toStr))
}

// move is copy followed by deleting from.
func move(working value.Value, op *value.Obj) value.Value {
	fromStr, ok := getStr(op, "from")
	if !ok {
		return working
	}
	toStr, ok := getStr(op, "to")
	if !ok {
		return working
	}
	from, to := jpath.Parse(fromStr), jpath.Parse(toStr)
	working = copyPaths(working, from, to)
	return traverse.Delete(working, from)
}

// copyPaths is array-aligned when from and to share the same leading
// "name[]" segment: the named array is walked once, and for each element
// the remaining from-suffix is read and written to the remaining
// to-suffix within that same element. Otherwise it is a plain
// read-then-write, which lifts across a wildcard on the read side and
// broadcasts across one on the write side.
func copyPaths(working value.Value, from, to jpath.Path) value.Value {
	fromName, fromRest, fromOK := from.HasWildcardPrefix()
	toName, toRest, toOK := to.HasWildcardPrefix()
	if fromOK && toOK && fromName == toName {
		arrPath := jpath.PathFrom([]jpath.Segment{
			{Kind: jpath.Field, Name: fromName},
			{Kind: jpath.Wildcard},
		})
		return traverse.Update(working, arrPath, func(elem value.Value) value.Value {
			return traverse.Put(elem, toRest, traverse.Get(elem, fromRest))
		})
	}
	return traverse.Put(working, to, traverse.Get(working, from))
}
