// Package traverse implements the four path-traversal primitives that every
// operator in this module is built from: Get, Put, Update, Delete, and the
// wildcard-aware lifting/broadcasting they share.
//
// Each primitive is ordinary recursion over the parsed Path, one stack
// frame per segment, capped by maxDepth so a pathological input cannot
// exhaust the goroutine stack.
package traverse

import (
	"github.com/fieldpath/rewrite/jpath"
	"github.com/fieldpath/rewrite/value"
)

// maxDepth bounds path recursion; exceeding it degrades to identity rather
// than panicking.
const maxDepth = 1024

// Get reads the value at path within v. Reading through a missing key or a
// type mismatch yields Null, never an error. A wildcard segment lifts the
// remainder of the path over every element of the array it is applied to.
func Get(v value.Value, p jpath.Path) value.Value {
	return get(v, p.Segments(), 0)
}

func get(v value.Value, segs []jpath.Segment, depth int) value.Value {
	if depth > maxDepth {
		return v
	}
	if len(segs) == 0 {
		return v
	}
	seg := segs[0]
	rest := segs[1:]
	switch seg.Kind {
	case jpath.Field:
		obj, ok := v.ToObj()
		if !ok {
			return value.Null()
		}
		child, found := obj.Find(seg.Name)
		if !found {
			return value.Null()
		}
		return get(child, rest, depth+1)
	case jpath.Wildcard:
		arr, ok := v.ToArr()
		if !ok {
			return value.Null()
		}
		out := make([]value.Value, arr.Length())
		arr.Range(func(i int, elem value.Value) bool {
			out[i] = get(elem, rest, depth+1)
			return true
		})
		return value.FromArr(value.ArrFrom(out))
	default:
		return value.Null()
	}
}

// Put writes w at path within v, returning the new value. Writing through a
// missing intermediate object creates empty objects along the way.
// Writing through a segment whose current value is neither an Obj nor an
// Arr (and the segment demands one) leaves v unchanged. A wildcard segment
// broadcasts w to every element of the array.
func Put(v value.Value, p jpath.Path, w value.Value) value.Value {
	return put(v, p.Segments(), w, 0)
}

func put(v value.Value, segs []jpath.Segment, w value.Value, depth int) value.Value {
	if depth > maxDepth {
		return v
	}
	if len(segs) == 0 {
		return w
	}
	seg := segs[0]
	rest := segs[1:]
	switch seg.Kind {
	case jpath.Field:
		obj, ok := v.ToObj()
		if !ok {
			if v.IsNull() {
				obj = value.EmptyObj()
			} else {
				return v
			}
		}
		child := obj.At(seg.Name)
		newChild := put(child, rest, w, depth+1)
		return value.FromObj(obj.Assoc(seg.Name, newChild))
	case jpath.Wildcard:
		arr, ok := v.ToArr()
		if !ok {
			return v
		}
		out := make([]value.Value, arr.Length())
		arr.Range(func(i int, elem value.Value) bool {
			out[i] = put(elem, rest, w, depth+1)
			return true
		})
		return value.FromArr(value.ArrFrom(out))
	default:
		return v
	}
}

// Update replaces the value at path with f applied to the current value at
// that path. Under a wildcard, f is applied pointwise to each element
// rather than once to the array as a whole. An absent or wrong-typed array
// under a wildcard leaves v unchanged.
func Update(v value.Value, p jpath.Path, f func(value.Value) value.Value) value.Value {
	return update(v, p.Segments(), f, 0)
}

func update(v value.Value, segs []jpath.Segment, f func(value.Value) value.Value, depth int) value.Value {
	if depth > maxDepth {
		return v
	}
	if len(segs) == 0 {
		return f(v)
	}
	seg := segs[0]
	rest := segs[1:]
	switch seg.Kind {
	case jpath.Field:
		obj, ok := v.ToObj()
		if !ok {
			if v.IsNull() {
				obj = value.EmptyObj()
			} else {
				return v
			}
		}
		child := obj.At(seg.Name)
		newChild := update(child, rest, f, depth+1)
		return value.FromObj(obj.Assoc(seg.Name, newChild))
	case jpath.Wildcard:
		arr, ok := v.ToArr()
		if !ok {
			return v
		}
		out := make([]value.Value, arr.Length())
		arr.Range(func(i int, elem value.Value) bool {
			out[i] = update(elem, rest, f, depth+1)
			return true
		})
		return value.FromArr(value.ArrFrom(out))
	default:
		return v
	}
}

// Delete removes the value at path, returning the new value. Deleting an
// absent key is a no-op. Under a wildcard, delete is mapped over each
// element of the array.
func Delete(v value.Value, p jpath.Path) value.Value {
	return del(v, p.Segments(), 0)
}

func del(v value.Value, segs []jpath.Segment, depth int) value.Value {
	if depth > maxDepth {
		return v
	}
	if len(segs) == 0 {
		return v
	}
	seg := segs[0]
	rest := segs[1:]
	switch seg.Kind {
	case jpath.Field:
		obj, ok := v.ToObj()
		if !ok {
			return v
		}
		if len(rest) == 0 {
			return value.FromObj(obj.Delete(seg.Name))
		}
		child, found := obj.Find(seg.Name)
		if !found {
			return v
		}
		newChild := del(child, rest, depth+1)
		return value.FromObj(obj.Assoc(seg.Name, newChild))
	case jpath.Wildcard:
		arr, ok := v.ToArr()
		if !ok {
			return v
		}
		out := make([]value.Value, arr.Length())
		arr.Range(func(i int, elem value.Value) bool {
			out[i] = del(elem, rest, depth+1)
			return true
		})
		return value.FromArr(value.ArrFrom(out))
	default:
		return v
	}
}
