package operations

import (
	"time"

	"github.com/fieldpath/rewrite/dateengine"
	"github.com/fieldpath/rewrite/jpath"
	"github.com/fieldpath/rewrite/traverse"
	"github.com/fieldpath/rewrite/value"
)

// currentTimestamp writes the current time, rendered in format, at path.
// The timezone parameter is resolved (an unknown zone falls back to UTC),
// but Render converts to UTC before formatting, so the written text is
// always in UTC whatever the timezone. An unknown format falls back to
// iso8601.
func currentTimestamp(working value.Value, op *value.Obj) value.Value {
	pathStr, ok := getStr(op, "path")
	if !ok {
		return working
	}
	format, ok := dateengine.ParseFormat(getStrDefault(op, "format", "iso8601"))
	if !ok {
		format = dateengine.ISO8601
	}
	loc := dateengine.LoadLocation(getStrDefault(op, "timezone", "UTC"))
	now := time.Now().In(loc)
	return traverse.Put(working, jpath.Parse(pathStr), value.Str(dateengine.Render(now, format)))
}

// formatDate re-emits the timestamp at path in format, leaving it
// unchanged if it cannot be parsed.
func formatDate(working value.Value, op *value.Obj) value.Value {
	pathStr, ok := getStr(op, "path")
	if !ok {
		return working
	}
	format, ok := dateengine.ParseFormat(getStrDefault(op, "format", ""))
	if !ok {
		return working
	}
	p := jpath.Parse(pathStr)
	return traverse.Update(working, p, func(v value.Value) value.Value {
		s, ok := v.ToStr()
		if !ok {
			return v
		}
		t, ok := dateengine.Parse(s)
		if !ok {
			return v
		}
		return value.Str(dateengine.Render(t, format))
	})
}

// parseDate canonicalizes the timestamp at path into output_format
// (default iso8601), leaving it unchanged if it cannot be parsed.
func parseDate(working value.Value, op *value.Obj) value.Value {
	pathStr, ok := getStr(op, "path")
	if !ok {
		return working
	}
	format, ok := dateengine.ParseFormat(getStrDefault(op, "output_format", "iso8601"))
	if !ok {
		format = dateengine.ISO8601
	}
	p := jpath.Parse(pathStr)
	return traverse.Update(working, p, func(v value.Value) value.Value {
		s, ok := v.ToStr()
		if !ok {
			return v
		}
		t, ok := dateengine.Parse(s)
		if !ok {
			return v
		}
		return value.Str(dateengine.Render(t, format))
	})
}

// dateAdd adds amount units to the timestamp at path, leaving it
// unchanged if it cannot be parsed. amount may be negative. months/years
// are accepted here only, per the date engine's calendar-unit gate.
func dateAdd(working value.Value, op *value.Obj) value.Value {
	pathStr, ok := getStr(op, "path")
	if !ok {
		return working
	}
	amountF, ok := getNum(op, "amount")
	if !ok {
		return working
	}
	unit, ok := dateengine.ParseUnit(getStrDefault(op, "unit", ""), true)
	if !ok {
		return working
	}
	format, ok := dateengine.ParseFormat(getStrDefault(op, "output_format", "iso8601"))
	if !ok {
		format = dateengine.ISO8601
	}
	p := jpath.Parse(pathStr)
	return traverse.Update(working, p, func(v value.Value) value.Value {
		s, ok := v.ToStr()
		if !ok {
			return v
		}
		t, ok := dateengine.Parse(s)
		if !ok {
			return v
		}
		return value.Str(dateengine.Render(dateengine.Add(t, int(amountF), unit), format))
	})
}

// dateDiff computes (to - from) in unit (default days), writing the
// result at result_path. A parse failure on either side writes Null.
func dateDiff(working value.Value, op *value.Obj) value.Value {
	fromPathStr, ok := getStr(op, "from_path")
	if !ok {
		return working
	}
	toPathStr, ok := getStr(op, "to_path")
	if !ok {
		return working
	}
	resultPathStr, ok := getStr(op, "result_path")
	if !ok {
		return working
	}
	unit, ok := dateengine.ParseUnit(getStrDefault(op, "unit", "days"), false)
	if !ok {
		return working
	}
	fromStr, ok := traverse.Get(working, jpath.Parse(fromPathStr)).ToStr()
	if !ok {
		return traverse.Put(working, jpath.Parse(resultPathStr), value.Null())
	}
	toStr, ok := traverse.Get(working, jpath.Parse(toPathStr)).ToStr()
	if !ok {
		return traverse.Put(working, jpath.Parse(resultPathStr), value.Null())
	}
	from, ok := dateengine.Parse(fromStr)
	if !ok {
		return traverse.Put(working, jpath.Parse(resultPathStr), value.Null())
	}
	to, ok := dateengine.Parse(toStr)
	if !ok {
		return traverse.Put(working, jpath.Parse(resultPathStr), value.Null())
	}
	diff, ok := dateengine.Diff(from, to, unit)
	if !ok {
		return traverse.Put(working, jpath.Parse(resultPathStr), value.Null())
	}
	return traverse.Put(working, jpath.Parse(resultPathStr), value.Num(diff))
}
