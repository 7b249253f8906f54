package pagination

import "strings"

// Labels holds the wording used for buttons and status text.
// Format fields are fmt verbs: InfoFormat and PageFormat take (current, total),
// RangeFormat takes (start, end, total, entity), EmptyFormat takes (entity).
type Labels struct {
	Previous    string `mapstructure:"previous"`
	Next        string `mapstructure:"next"`
	InfoFormat  string `mapstructure:"info_format"`
	PageFormat  string `mapstructure:"page_format"`
	RangeFormat string `mapstructure:"range_format"`
	EmptyFormat string `mapstructure:"empty_format"`
}

// DefaultLabels is the English wording.
var DefaultLabels = Labels{
	Previous:    "⬅️ Prev",
	Next:        "Next ➡️",
	InfoFormat:  "📄 %d/%d",
	PageFormat:  "📄 Page %d of %d",
	RangeFormat: "📊 %d-%d of %d %s",
	EmptyFormat: "❌ No %s available",
}

// RussianLabels is the Russian wording of the bot.
var RussianLabels = Labels{
	Previous:    "⬅️ Пред.",
	Next:        "След. ➡️",
	InfoFormat:  "📄 %d/%d",
	PageFormat:  "📄 Страница %d из %d",
	RangeFormat: "📊 Показано %d-%d из %d %s",
	EmptyFormat: "❌ Нет доступных %s",
}

// Supported locales.
const (
	LocaleEnglish = "en"
	LocaleRussian = "ru"
)

// NormalizeLocale reduces a locale tag ("RU", "ru-RU", "ru_ru") to a supported
// language code. Anything unknown is English.
func NormalizeLocale(locale string) string {
	lang := strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(lang, "-_"); i >= 0 {
		lang = lang[:i]
	}
	if lang == LocaleRussian {
		return LocaleRussian
	}
	return LocaleEnglish
}

// LabelsFor picks a preset by locale; anything unknown gets DefaultLabels.
func LabelsFor(locale string) Labels {
	if NormalizeLocale(locale) == LocaleRussian {
		return RussianLabels
	}
	return DefaultLabels
}

func (l *Labels) setDefaults() {
	if l.Previous == "" {
		l.Previous = DefaultLabels.Previous
	}
	if l.Next == "" {
		l.Next = DefaultLabels.Next
	}
	if l.InfoFormat == "" {
		l.InfoFormat = DefaultLabels.InfoFormat
	}
	if l.PageFormat == "" {
		l.PageFormat = DefaultLabels.PageFormat
	}
	if l.RangeFormat == "" {
		l.RangeFormat = DefaultLabels.RangeFormat
	}
	if l.EmptyFormat == "" {
		l.EmptyFormat = DefaultLabels.EmptyFormat
	}
}
