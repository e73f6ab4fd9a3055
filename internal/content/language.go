// Package content holds the static, language-keyed tables the bot serves
// from: UI strings and disclaimers, FAQ examples used as in-prompt answer
// examples, and the alert keyword configuration.  Everything here is
// immutable after process start and safe to share across sessions.
package content

// Language is one of the closed set of conversation languages.
type Language string

const (
	ES  Language = "es"  // Spanish
	QU  Language = "qu"  // Quechua
	SHP Language = "shp" // Shipibo-Konibo
)

// DefaultLanguage is the process-wide fallback.  Every table is guaranteed
// to have an entry for it.
const DefaultLanguage = ES

// Labels maps each language to the human-readable name shown on the
// language-selection keyboard.
var Labels = map[Language]string{
	ES:  "Español",
	QU:  "Quechua",
	SHP: "Shipibo-Konibo",
}

// codesByLabel is the reverse of Labels, used to recognise keyboard presses.
var codesByLabel = map[string]Language{}

func init() {
	for code, label := range Labels {
		codesByLabel[label] = code
	}
}

// ParseLanguage validates a language code against the closed set.  Unknown
// or empty codes resolve to the default language, never to an error.
func ParseLanguage(s string) (Language, bool) {
	switch Language(s) {
	case ES, QU, SHP:
		return Language(s), true
	}
	return DefaultLanguage, false
}

// LanguageByLabel reports whether text is exactly one of the keyboard
// labels and, if so, which language it selects.
func LanguageByLabel(text string) (Language, bool) {
	code, ok := codesByLabel[text]
	return code, ok
}

// KeyboardLabels returns the selector labels in fixed order, one per
// keyboard row.
func KeyboardLabels() []string {
	return []string{Labels[ES], Labels[QU], Labels[SHP]}
}
