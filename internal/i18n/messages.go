package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed messages/*.json
var messageFiles embed.FS

// Messages is one locale's dictionary: nested string maps keyed by section.
type Messages map[string]any

var dictionaries = mustLoadDictionaries()

func mustLoadDictionaries() map[Locale]Messages {
	out := make(map[Locale]Messages, len(Locales))
	for _, locale := range Locales {
		data, err := messageFiles.ReadFile(fmt.Sprintf("messages/%s.json", locale))
		if err != nil {
			panic(fmt.Sprintf("i18n: missing dictionary for %s: %v", locale, err))
		}
		var m Messages
		if err := json.Unmarshal(data, &m); err != nil {
			panic(fmt.Sprintf("i18n: malformed dictionary for %s: %v", locale, err))
		}
		out[locale] = m
	}
	return out
}

// ForLocale returns the dictionary for locale, falling back to DefaultLocale.
func ForLocale(locale Locale) Messages {
	if m, ok := dictionaries[locale]; ok {
		return m
	}
	return dictionaries[DefaultLocale]
}

// Resolve walks the dictionary along a dot-joined key path. The second return
// is false when the path does not terminate at a string.
func (m Messages) Resolve(key string) (string, bool) {
	var current any = map[string]any(m)
	for _, segment := range strings.Split(key, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return "", false
		}
		current, ok = node[segment]
		if !ok {
			return "", false
		}
	}
	s, ok := current.(string)
	return s, ok
}

// T resolves key in m, returning fallback (or the key itself when fallback is
// empty) when the lookup misses.
func T(m Messages, key, fallback string) string {
	if s, ok := m.Resolve(key); ok {
		return s
	}
	if fallback != "" {
		return fallback
	}
	return key
}
