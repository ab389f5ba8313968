package value

import (
	"sort"
	"strings"

	"jsouthworth.net/go/immutable/hashmap"
)

// Obj is a JSON object. Objs are immutable: every mutation method returns a
// structurally shared copy. Unlike RFC7951 objects, keys carry no module
// prefix bookkeeping.
type Obj struct {
	store *hashmap.Map
}

// EmptyObj returns a new Obj with no members.
func EmptyObj() *Obj {
	return &Obj{store: hashmap.Empty()}
}

// ObjFromPairs builds an Obj from the supplied key/value pairs, last one
// wins on duplicate keys.
func ObjFromPairs(pairs ...Pair) *Obj {
	out := EmptyObj()
	for _, p := range pairs {
		out = out.Assoc(p.Key, p.Value)
	}
	return out
}

// Pair is a single object member, used with ObjFromPairs.
type Pair struct {
	Key   string
	Value Value
}

// At returns the value at key, or Null if absent.
func (o *Obj) At(key string) Value {
	v, ok := o.Find(key)
	if !ok {
		return Null()
	}
	return v
}

// Find returns the value at key and whether the key was present.
func (o *Obj) Find(key string) (Value, bool) {
	raw, ok := o.store.Find(key)
	if !ok {
		return Null(), false
	}
	return raw.(Value), true
}

// Contains reports whether key is present in the object.
func (o *Obj) Contains(key string) bool {
	return o.store.Contains(key)
}

// Assoc returns a new Obj with key bound to value.
func (o *Obj) Assoc(key string, value Value) *Obj {
	next := o.store.Assoc(key, value)
	if next == o.store {
		return o
	}
	return &Obj{store: next}
}

// Delete returns a new Obj with key removed; a no-op if the key is absent.
func (o *Obj) Delete(key string) *Obj {
	next := o.store.Delete(key)
	if next == o.store {
		return o
	}
	return &Obj{store: next}
}

// Length returns the number of members.
func (o *Obj) Length() int {
	return o.store.Length()
}

// Keys returns the object's keys in sorted order, for deterministic
// iteration where order matters for output (e.g. String rendering); object
// equality itself is always order-independent.
func (o *Obj) Keys() []string {
	keys := make([]string, 0, o.store.Length())
	o.store.Range(func(e hashmap.Entry) bool {
		keys = append(keys, e.Key().(string))
		return true
	})
	sort.Strings(keys)
	return keys
}

// Range iterates over the object's members in unspecified order. It returns
// false from fn to stop early.
func (o *Obj) Range(fn func(key string, val Value) bool) {
	o.store.Range(func(e hashmap.Entry) bool {
		return fn(e.Key().(string), e.Value().(Value))
	})
}

// Merge performs a right-wins shallow merge: keys in other replace keys in
// o, keys only in o are kept. Used by hoist_map_values{replace_parent:true}.
func (o *Obj) Merge(other *Obj) *Obj {
	out := o
	other.Range(func(key string, val Value) bool {
		out = out.Assoc(key, val)
		return true
	})
	return out
}

// String renders the object as JSON-like text for debugging.
func (o *Obj) String() string {
	var b strings.Builder
	b.WriteByte('{')
	keys := o.Keys()
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(k)
		b.WriteString(`":`)
		b.WriteString(o.At(k).String())
	}
	b.WriteByte('}')
	return b.String()
}
