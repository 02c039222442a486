package i18n

// Meta carries the per-locale site title and description.
type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

var metaByLocale = map[Locale]Meta{
	English: {
		Title:       "5SOLO - Five disciplines. One outcome.",
		Description: "Development, design, SEO, media and care that drive measurable growth. MVP in 10 days.",
	},
	Russian: {
		Title:       "5SOLO - Пять экспертиз. Один результат.",
		Description: "Разработка, дизайн, SEO, медиа и поддержка — запустим MVP за 10 дней и растим трафик.",
	},
	Hebrew: {
		Title:       "5SOLO - חמש דיסציפלינות. תוצאה אחת.",
		Description: "פיתוח, עיצוב, SEO, מדיה ותמיכה – MVP ב-10 ימים וצמיחה מדידה.",
	},
}

// MetaFor returns the site meta for locale, falling back to DefaultLocale.
func MetaFor(locale Locale) Meta {
	if m, ok := metaByLocale[locale]; ok {
		return m
	}
	return metaByLocale[DefaultLocale]
}
