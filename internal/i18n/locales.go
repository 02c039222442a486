package i18n

import "strings"

// Locale identifies one of the site's supported languages.
type Locale string

const (
	Hebrew  Locale = "he"
	Russian Locale = "ru"
	English Locale = "en"
)

// Locales lists every supported locale.
var Locales = []Locale{Hebrew, Russian, English}

// DefaultLocale is used when a request carries no recognizable locale.
const DefaultLocale = English

var rtlLocales = map[Locale]struct{}{
	Hebrew: {},
}

// IsLocale reports whether value names a supported locale.
func IsLocale(value string) bool {
	for _, l := range Locales {
		if string(l) == value {
			return true
		}
	}
	return false
}

// IsRTL reports whether the locale renders right-to-left.
func IsRTL(locale Locale) bool {
	_, ok := rtlLocales[locale]
	return ok
}

// Parse returns the locale named by value, falling back to DefaultLocale.
func Parse(value string) Locale {
	value = strings.ToLower(strings.TrimSpace(value))
	if IsLocale(value) {
		return Locale(value)
	}
	return DefaultLocale
}

// LocaleFromPath extracts the locale prefix from a URL path like "/he/cases".
func LocaleFromPath(path string) Locale {
	parts := strings.SplitN(strings.TrimPrefix(path, "/"), "/", 2)
	if len(parts) > 0 && IsLocale(parts[0]) {
		return Locale(parts[0])
	}
	return DefaultLocale
}

// Dir returns the writing direction for the locale.
func Dir(locale Locale) string {
	if IsRTL(locale) {
		return "rtl"
	}
	return "ltr"
}
