package symbol

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FilterByLanguage retains the records whose declared or inferred language
// matches lang, case-insensitively. Filtering happens only after
// normalization and is never forwarded to the remote tool. Records without a
// language field never match.
func FilterByLanguage(records []Record, lang string) []Record {
	target := strings.ToLower(lang)
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		if recLang, ok := asString(rec["language"]); ok && strings.ToLower(recLang) == target {
			out = append(out, rec)
		}
	}
	return out
}

// FilterByPath retains the records whose normalized file path matches the
// doublestar glob pattern. An invalid pattern matches nothing.
func FilterByPath(records []Record, pattern string) []Record {
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		file, ok := asString(rec["file"])
		if !ok {
			continue
		}
		if matched, err := doublestar.Match(pattern, file); err == nil && matched {
			out = append(out, rec)
		}
	}
	return out
}

// Limit truncates records to at most n entries. Non-positive n means no
// limit.
func Limit(records []Record, n int) []Record {
	if n <= 0 || len(records) <= n {
		return records
	}
	return records[:n]
}
