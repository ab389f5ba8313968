package value

import (
	"sort"
	"strings"

	"jsouthworth.net/go/immutable/vector"
)

// Arr is a JSON array. Arrs are immutable: every mutation method returns a
// structurally shared copy.
type Arr struct {
	store *vector.Vector
}

// EmptyArr returns a new Arr with no elements.
func EmptyArr() *Arr {
	return &Arr{store: vector.Empty()}
}

// ArrFrom builds an Arr from a slice of Values.
func ArrFrom(vals []Value) *Arr {
	raw := make([]interface{}, len(vals))
	for i, v := range vals {
		raw[i] = v
	}
	return &Arr{store: vector.From(raw)}
}

// At returns the element at index, or Null if index is out of bounds.
func (a *Arr) At(index int) Value {
	v, ok := a.Find(index)
	if !ok {
		return Null()
	}
	return v
}

// Find returns the element at index and whether index was in bounds.
func (a *Arr) Find(index int) (Value, bool) {
	if index < 0 || index >= a.store.Length() {
		return Null(), false
	}
	raw, ok := a.store.Find(index)
	if !ok {
		return Null(), false
	}
	return raw.(Value), true
}

// Length returns the number of elements.
func (a *Arr) Length() int {
	return a.store.Length()
}

// Assoc returns a new Arr with index bound to value. If index is beyond the
// current length the array is padded with Null up to that index first.
func (a *Arr) Assoc(index int, v Value) *Arr {
	if index < 0 {
		return a
	}
	store := a.store
	for store.Length() <= index {
		store = store.Append(Null())
	}
	return &Arr{store: store.Assoc(index, v)}
}

// Append adds v to the end of the array.
func (a *Arr) Append(v Value) *Arr {
	return &Arr{store: a.store.Append(v)}
}

// Delete removes the element at index, shifting later elements down.
// Deleting an out-of-range index is a no-op.
func (a *Arr) Delete(index int) *Arr {
	if index < 0 || index >= a.store.Length() {
		return a
	}
	return &Arr{store: a.store.Delete(index)}
}

// Range iterates over elements in order. It returns false from fn to stop
// early.
func (a *Arr) Range(fn func(index int, val Value) bool) {
	a.store.Range(func(i int, raw interface{}) bool {
		return fn(i, raw.(Value))
	})
}

// Slice returns a new Arr containing elements [from, to), clamped to the
// array's bounds. Used by truncate_list's $slice/$map_slice sigils.
func (a *Arr) Slice(from, to int) *Arr {
	n := a.Length()
	if from < 0 {
		from = 0
	}
	if to > n {
		to = n
	}
	if from >= to {
		return EmptyArr()
	}
	out := make([]Value, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, a.At(i))
	}
	return ArrFrom(out)
}

// Reversed returns a new Arr with element order reversed.
func (a *Arr) Reversed() *Arr {
	n := a.Length()
	out := make([]Value, n)
	a.Range(func(i int, v Value) bool {
		out[n-1-i] = v
		return true
	})
	return ArrFrom(out)
}

// Sorted returns a new Arr ordered by Compare.
func (a *Arr) Sorted() *Arr {
	out := make([]Value, 0, a.Length())
	a.Range(func(_ int, v Value) bool {
		out = append(out, v)
		return true
	})
	sort.SliceStable(out, func(i, j int) bool {
		return Compare(out[i], out[j]) < 0
	})
	return ArrFrom(out)
}

// ToSlice materializes the array as a plain []Value.
func (a *Arr) ToSlice() []Value {
	out := make([]Value, 0, a.Length())
	a.Range(func(_ int, v Value) bool {
		out = append(out, v)
		return true
	})
	return out
}

// String renders the array as JSON-like text for debugging.
func (a *Arr) String() string {
	var b strings.Builder
	b.WriteByte('[')
	a.Range(func(i int, v Value) bool {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(v.String())
		return true
	})
	b.WriteByte(']')
	return b.String()
}
