package operations

import "github.com/fieldpath/rewrite/value"

// getStr returns the string parameter at key, or ok=false if absent or of
// the wrong type. Every operator handler uses this (and its siblings below)
// at the top to check required parameters before doing anything else.
func getStr(op *value.Obj, key string) (string, bool) {
	v, ok := op.Find(key)
	if !ok {
		return "", false
	}
	return v.ToStr()
}

func getStrDefault(op *value.Obj, key, def string) string {
	s, ok := getStr(op, key)
	if !ok {
		return def
	}
	return s
}

func getBool(op *value.Obj, key string) (bool, bool) {
	v, ok := op.Find(key)
	if !ok {
		return false, false
	}
	return v.ToBool()
}

func getBoolDefault(op *value.Obj, key string, def bool) bool {
	b, ok := getBool(op, key)
	if !ok {
		return def
	}
	return b
}

func getNum(op *value.Obj, key string) (float64, bool) {
	v, ok := op.Find(key)
	if !ok {
		return 0, false
	}
	return v.ToNum()
}

func getObj(op *value.Obj, key string) (*value.Obj, bool) {
	v, ok := op.Find(key)
	if !ok {
		return nil, false
	}
	return v.ToObj()
}

func getArr(op *value.Obj, key string) (*value.Arr, bool) {
	v, ok := op.Find(key)
	if !ok {
		return nil, false
	}
	return v.ToArr()
}

// getStrArr returns a []string parameter, e.g. drop's "paths". Every
// element must be a Str or the whole parameter is rejected.
func getStrArr(op *value.Obj, key string) ([]string, bool) {
	arr, ok := getArr(op, key)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, arr.Length())
	ok = true
	arr.Range(func(_ int, v value.Value) bool {
		s, isStr := v.ToStr()
		if !isStr {
			ok = false
			return false
		}
		out = append(out, s)
		return true
	})
	if !ok {
		return nil, false
	}
	return out, true
}

// getStrMap returns a map[string]string parameter, e.g. rename's "mapping".
// Every value must be a Str or the whole parameter is rejected.
func getStrMap(op *value.Obj, key string) (map[string]string, []string, bool) {
	obj, ok := getObj(op, key)
	if !ok {
		return nil, nil, false
	}
	out := make(map[string]string, obj.Length())
	order := obj.Keys()
	good := true
	obj.Range(func(k string, v value.Value) bool {
		s, isStr := v.ToStr()
		if !isStr {
			good = false
			return false
		}
		out[k] = s
		return true
	})
	if !good {
		return nil, nil, false
	}
	return out, order, true
}
