// Package symbol normalizes the heterogeneous symbol records returned by
// code-intelligence tools into a single canonical shape.
//
// Architecture Pattern:
// Every tool response shape is reduced to one record schema before display or
// filtering. Normalization is a pure transformation over generic maps so that
// fields the client does not recognize survive untouched; applying it twice
// yields the same record.
package symbol

import (
	"regexp"
	"strings"
)

// Record is one symbol record as decoded from a tool response. Canonical
// fields after Normalize:
//
//	name     string          symbol name
//	kind     string          lower-case category ("class", "method", ...)
//	file     string          source-relative path
//	language string          inferred from the file extension (optional)
//	range    map             {"start_line": int, "end_line": int}
//
// Unrecognized fields are retained as-is.
type Record = map[string]any

// indexSuffix matches the trailing [<n>] disambiguator of a name_path
// segment, e.g. "my_method[0]".
var indexSuffix = regexp.MustCompile(`\[\d+\]$`)

// Normalize converts a raw tool-output record into the canonical record
// shape. It derives name, kind, file, language and range as described on
// Record, never removes fields, and never fails: missing optional fields are
// simply skipped.
func Normalize(raw Record) Record {
	if raw == nil {
		return raw
	}

	normalizeName(raw)
	normalizeKind(raw)
	normalizeRange(raw)

	if rel, ok := asString(raw["relative_path"]); ok {
		raw["file"] = rel
	}

	if _, ok := raw["language"]; !ok {
		if file, ok := asString(raw["file"]); ok {
			if lang, ok := InferLanguage(file); ok {
				raw["language"] = lang
			}
		}
	}

	return raw
}

// NormalizeAll normalizes every record in place and returns the slice.
func NormalizeAll(records []Record) []Record {
	for _, rec := range records {
		Normalize(rec)
	}
	return records
}

// normalizeName restores the plain symbol name from a hierarchical
// name_path such as "MyClass/my_method[0]".
func normalizeName(rec Record) {
	if _, ok := rec["name"]; ok {
		return
	}
	path, ok := asString(rec["name_path"])
	if !ok {
		return
	}
	last := path
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		last = path[idx+1:]
	}
	rec["name"] = indexSuffix.ReplaceAllString(last, "")
}

// normalizeKind maps an integer LSP SymbolKind code to its lower-case
// category name. String kinds pass through; a missing kind becomes "unknown".
func normalizeKind(rec Record) {
	v, ok := rec["kind"]
	if !ok {
		rec["kind"] = "unknown"
		return
	}
	if code, ok := asInt(v); ok {
		rec["kind"] = strings.ToLower(KindName(code))
	}
}

// normalizeRange reconciles the three raw range shapes into
// {"start_line", "end_line"}. Priority: an explicit range with start.line and
// end.line, then body_location (already in canonical form), then
// selection_range which only knows the start line.
func normalizeRange(rec Record) {
	if r, ok := rec["range"].(map[string]any); ok {
		start, end := lineOf(r["start"]), lineOf(r["end"])
		if start >= 0 && end >= 0 {
			rec["range"] = Record{"start_line": start, "end_line": end}
		}
		return
	}
	if body, ok := rec["body_location"].(map[string]any); ok {
		rec["range"] = body
		return
	}
	if sel, ok := rec["selection_range"].(map[string]any); ok {
		if start := lineOf(sel["start"]); start >= 0 {
			rec["range"] = Record{"start_line": start}
		}
	}
}

// lineOf extracts the "line" field from a position map, or -1.
func lineOf(v any) int {
	pos, ok := v.(map[string]any)
	if !ok {
		return -1
	}
	line, ok := asInt(pos["line"])
	if !ok {
		return -1
	}
	return line
}

// StartLine returns the normalized start line of a record, or false when the
// record carries no usable range.
func StartLine(rec Record) (int, bool) {
	r, ok := rec["range"].(map[string]any)
	if !ok {
		return 0, false
	}
	return asInt(r["start_line"])
}

// asString returns v as a string when it is one.
func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// asInt accepts the integer encodings produced by JSON decoding and typed
// construction. Non-integral floats are rejected.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}
