// Package i18n resolves UI strings by key and language. Lookup falls back
// to English when a language or key is missing, and to the raw key as a
// last resort; it never fails.
package i18n

// DefaultLanguage is the fallback language for missing translations.
const DefaultLanguage = "English"

// Resolve returns the translation for key in language, falling back to the
// default language and finally to the key itself.
func Resolve(key, language string) string {
	if table, ok := translations[language]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := translations[DefaultLanguage][key]; ok {
		return s
	}
	return key
}

// Languages returns the languages with a translation table.
func Languages() []string {
	out := make([]string, 0, len(translations))
	for lang := range translations {
		out = append(out, lang)
	}
	return out
}
