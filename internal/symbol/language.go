package symbol

import (
	"path/filepath"
	"strings"

	"github.com/hbollon/go-edlib"
)

// languageByExt maps source file extensions to language names. Only the
// languages the upstream server reliably reports are inferred; anything else
// is left without a language field.
var languageByExt = map[string]string{
	".py":   "python",
	".ts":   "typescript",
	".js":   "javascript",
	".java": "java",
}

// InferLanguage guesses the language of a source file from its extension.
func InferLanguage(path string) (string, bool) {
	lang, ok := languageByExt[strings.ToLower(filepath.Ext(path))]
	return lang, ok
}

// Languages returns the set of inferable language names.
func Languages() []string {
	langs := make([]string, 0, len(languageByExt))
	for _, lang := range languageByExt {
		langs = append(langs, lang)
	}
	return langs
}

// IsKnownLanguage reports whether the name is one of the inferable languages.
// The check is case-insensitive, matching the language filter.
func IsKnownLanguage(name string) bool {
	name = strings.ToLower(name)
	for _, lang := range languageByExt {
		if lang == name {
			return true
		}
	}
	return false
}

// SuggestLanguage proposes the closest known language name for a hint that
// does not match any inferable language, e.g. "typescrip" -> "typescript".
// Returns false when the hint is already known or nothing is close enough.
func SuggestLanguage(hint string) (string, bool) {
	hint = strings.ToLower(hint)
	for _, lang := range languageByExt {
		if lang == hint {
			return "", false
		}
	}
	match, err := edlib.FuzzySearchThreshold(hint, Languages(), 0.7, edlib.Levenshtein)
	if err != nil || match == "" {
		return "", false
	}
	return match, true
}
