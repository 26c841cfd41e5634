// Package normalize turns raw upstream JSON payloads into canonical report
// entities. Two schemas exist: the gametools aggregator ("GT", flat per-item
// maps) and the tracker backend ("BTR", stats nested under
// segments[i].stats.<field>.{value,displayValue,percentile}). All mappers are
// total over partial input; field absence degrades to placeholders, it never
// fails a query.
package normalize

import (
	"encoding/json"
	"strconv"
	"strings"
)

// resolvePath walks a dot-separated key path through nested maps. Any missing
// segment or non-map intermediate reports ok=false.
func resolvePath(m map[string]any, path string) (any, bool) {
	var cur any = m
	for _, part := range strings.Split(path, ".") {
		mm, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = mm[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// pathNumber resolves a dot-path to a number, with 0 for anything missing or
// non-numeric. Sort keys go through here.
func pathNumber(m map[string]any, path string) float64 {
	v, ok := resolvePath(m, path)
	if !ok {
		return 0
	}
	return toFloat(v, 0)
}

// pathString resolves a dot-path to a display string with a default.
func pathString(m map[string]any, path, def string) string {
	v, ok := resolvePath(m, path)
	if !ok {
		return def
	}
	return toString(v, def)
}

func toFloat(v any, def float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return def
		}
		return f
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return def
		}
		return f
	default:
		return def
	}
}

func toInt(v any, def int) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return def
		}
		return int(f)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return def
		}
		return int(f)
	default:
		return def
	}
}

func toString(v any, def string) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case json.Number:
		return s.String()
	case bool:
		return strconv.FormatBool(s)
	default:
		return def
	}
}
