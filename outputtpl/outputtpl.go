// Package outputtpl resolves the output template that assembles the final
// document from $root/$working references. Templates are walked by
// recursing on Kind: string leaves are resolved against the two reference
// values, object keys are preserved, everything else passes through as a
// literal.
package outputtpl

import (
	"strings"

	"github.com/fieldpath/rewrite/jpath"
	"github.com/fieldpath/rewrite/traverse"
	"github.com/fieldpath/rewrite/value"
)

const (
	rootPrefix    = "$root"
	workingPrefix = "$working"
)

// Resolve assembles the final output document from template against the
// (root, working) pair. A missing or empty-object template defaults to
// returning working.
func Resolve(root, working, template value.Value) value.Value {
	if template.IsNull() {
		return working
	}
	if obj, ok := template.ToObj(); ok && obj.Length() == 0 {
		return working
	}
	return resolve(root, working, template)
}

func resolve(root, working, template value.Value) value.Value {
	switch {
	case template.IsStr():
		return resolveString(root, working, template.AsStr())
	case template.IsObj():
		obj := template.AsObj()
		out := value.EmptyObj()
		obj.Range(func(key string, val value.Value) bool {
			out = out.Assoc(key, resolve(root, working, val))
			return true
		})
		return value.FromObj(out)
	default:
		// Arr and primitives pass through unchanged.
		return template
	}
}

func resolveString(root, working value.Value, s string) value.Value {
	if rest, ok := matchPrefix(s, rootPrefix); ok {
		return resolveRef(root, rest)
	}
	if rest, ok := matchPrefix(s, workingPrefix); ok {
		return resolveRef(working, rest)
	}
	return value.Str(s)
}

// matchPrefix reports whether s begins with prefix, and if so whether the
// remainder is empty or starts with ".". Any other continuation (e.g. a
// string that merely starts with "$rootish") is not a match and is treated
// as a literal by the caller.
func matchPrefix(s, prefix string) (rest string, ok bool) {
	if !strings.HasPrefix(s, prefix) {
		return "", false
	}
	rest = s[len(prefix):]
	if rest == "" || strings.HasPrefix(rest, ".") {
		return rest, true
	}
	return "", false
}

func resolveRef(base value.Value, rest string) value.Value {
	if rest == "" {
		return base
	}
	return traverse.Get(base, jpath.Parse(strings.TrimPrefix(rest, ".")))
}
