package symbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNormalize_NameFromNamePath tests name restoration from hierarchical paths.
func TestNormalize_NameFromNamePath(t *testing.T) {
	tests := []struct {
		namePath string
		want     string
	}{
		{"MyClass/my_method[0]", "my_method"},
		{"MyClass/my_method", "my_method"},
		{"top_level", "top_level"},
		{"A/B/C[12]", "C"},
		{"weird[name]", "weird[name]"}, // only a trailing [<digits>] is stripped
	}

	for _, tt := range tests {
		rec := Normalize(Record{"name_path": tt.namePath})
		assert.Equal(t, tt.want, rec["name"], "name_path %q", tt.namePath)
	}
}

// TestNormalize_ExplicitNameWins tests that an existing name is never replaced.
func TestNormalize_ExplicitNameWins(t *testing.T) {
	rec := Normalize(Record{"name": "explicit", "name_path": "MyClass/other"})
	assert.Equal(t, "explicit", rec["name"])
}

// TestNormalize_KindTable tests the integer kind to category mapping.
func TestNormalize_KindTable(t *testing.T) {
	want := map[int]string{
		1: "file", 5: "class", 6: "method", 11: "interface",
		12: "function", 22: "enummember", 26: "typeparameter",
	}
	for code, name := range want {
		rec := Normalize(Record{"kind": code})
		assert.Equal(t, name, rec["kind"], "kind %d", code)
	}

	// All codes in [1,26] resolve to a lower-case category, never a number.
	for code := 1; code <= 26; code++ {
		rec := Normalize(Record{"kind": code})
		kind, ok := rec["kind"].(string)
		require.True(t, ok)
		assert.NotRegexp(t, `^\d+$`, kind)
	}
}

// TestNormalize_UnknownKindCode tests fallback to the decimal string.
func TestNormalize_UnknownKindCode(t *testing.T) {
	rec := Normalize(Record{"kind": 99})
	assert.Equal(t, "99", rec["kind"])

	rec = Normalize(Record{"kind": 0})
	assert.Equal(t, "0", rec["kind"])
}

// TestNormalize_KindFromJSONNumber tests kinds decoded from JSON as float64.
func TestNormalize_KindFromJSONNumber(t *testing.T) {
	rec := Normalize(Record{"kind": float64(6)})
	assert.Equal(t, "method", rec["kind"])
}

// TestNormalize_MissingKind tests that kind is always present afterwards.
func TestNormalize_MissingKind(t *testing.T) {
	rec := Normalize(Record{"name": "x"})
	assert.Equal(t, "unknown", rec["kind"])
}

// TestNormalize_StringKindPassesThrough tests already-textual kinds.
func TestNormalize_StringKindPassesThrough(t *testing.T) {
	rec := Normalize(Record{"kind": "method"})
	assert.Equal(t, "method", rec["kind"])
}

// TestNormalize_RangeFromExplicitRange tests the range.start.line shape.
func TestNormalize_RangeFromExplicitRange(t *testing.T) {
	rec := Normalize(Record{
		"range": map[string]any{
			"start": map[string]any{"line": float64(3), "character": float64(0)},
			"end":   map[string]any{"line": float64(9), "character": float64(1)},
		},
	})
	assert.Equal(t, Record{"start_line": 3, "end_line": 9}, rec["range"])
}

// TestNormalize_RangeFromBodyLocation tests the body_location shape.
func TestNormalize_RangeFromBodyLocation(t *testing.T) {
	rec := Normalize(Record{
		"body_location": map[string]any{"start_line": float64(10), "end_line": float64(20)},
	})
	require.NotNil(t, rec["range"])
	start, ok := StartLine(rec)
	require.True(t, ok)
	assert.Equal(t, 10, start)
}

// TestNormalize_RangeFromSelectionRange tests the single-line fallback shape.
func TestNormalize_RangeFromSelectionRange(t *testing.T) {
	rec := Normalize(Record{
		"selection_range": map[string]any{"start": map[string]any{"line": float64(7)}},
	})
	start, ok := StartLine(rec)
	require.True(t, ok)
	assert.Equal(t, 7, start)
}

// TestNormalize_ExplicitRangeBeatsBodyLocation tests reconciliation priority.
func TestNormalize_ExplicitRangeBeatsBodyLocation(t *testing.T) {
	rec := Normalize(Record{
		"range": map[string]any{
			"start": map[string]any{"line": float64(1)},
			"end":   map[string]any{"line": float64(2)},
		},
		"body_location": map[string]any{"start_line": float64(10), "end_line": float64(20)},
	})
	assert.Equal(t, Record{"start_line": 1, "end_line": 2}, rec["range"])
}

// TestNormalize_NoRange tests that records without location data stay that way.
func TestNormalize_NoRange(t *testing.T) {
	rec := Normalize(Record{"name": "x"})
	_, ok := rec["range"]
	assert.False(t, ok)
	_, ok = StartLine(rec)
	assert.False(t, ok)
}

// TestNormalize_FileAndLanguage tests relative_path promotion and inference.
func TestNormalize_FileAndLanguage(t *testing.T) {
	rec := Normalize(Record{"relative_path": "src/foo.py"})
	assert.Equal(t, "src/foo.py", rec["file"])
	assert.Equal(t, "python", rec["language"])
	// The raw field is retained.
	assert.Equal(t, "src/foo.py", rec["relative_path"])

	rec = Normalize(Record{"relative_path": "src/app.ts"})
	assert.Equal(t, "typescript", rec["language"])

	// Unknown extensions stay without a language.
	rec = Normalize(Record{"relative_path": "src/main.go"})
	_, ok := rec["language"]
	assert.False(t, ok)
}

// TestNormalize_DeclaredLanguageWins tests that inference never overwrites.
func TestNormalize_DeclaredLanguageWins(t *testing.T) {
	rec := Normalize(Record{"relative_path": "src/foo.py", "language": "cython"})
	assert.Equal(t, "cython", rec["language"])
}

// TestNormalize_Idempotent tests that a second pass is a no-op.
func TestNormalize_Idempotent(t *testing.T) {
	raw := Record{
		"name_path":     "MyClass/my_method[0]",
		"kind":          float64(6),
		"body_location": map[string]any{"start_line": float64(10), "end_line": float64(20)},
		"relative_path": "src/foo.py",
		"extra":         "kept",
	}
	once := Normalize(raw)

	// Deep-copy the normalized record, then normalize again.
	copied := make(Record, len(once))
	for k, v := range once {
		copied[k] = v
	}
	twice := Normalize(copied)

	assert.Equal(t, once, twice)
	assert.Equal(t, "kept", twice["extra"])
	assert.Equal(t, "my_method", twice["name"])
	assert.Equal(t, "method", twice["kind"])
}

// TestNormalize_NilRecord tests the degenerate input.
func TestNormalize_NilRecord(t *testing.T) {
	assert.Nil(t, Normalize(nil))
}

// TestKindName tests the raw lookup table.
func TestKindName(t *testing.T) {
	assert.Equal(t, "Method", KindName(6))
	assert.Equal(t, "File", KindName(1))
	assert.Equal(t, "TypeParameter", KindName(26))
	assert.Equal(t, "27", KindName(27))
	assert.Equal(t, "-1", KindName(-1))
}
