// Package detect implements local detection of potential warning signs in
// user messages.  Detection is existential: it only matters whether some
// configured keyword appears, not which one.
package detect

import (
	"strings"

	"piribot/internal/content"
)

// Detector scans free text against a language-keyed keyword list.
type Detector struct {
	table content.AlertTable
}

// New constructs a Detector over an alert table.  A nil or empty table
// yields a detector that never matches, so an absent alerts file silently
// disables the feature instead of breaking the conversation flow.
func New(table content.AlertTable) *Detector {
	return &Detector{table: table}
}

// Detect reports whether text contains any configured risk keyword for the
// language, using case-insensitive substring matching.  Languages without a
// keyword list fall back to the default language's list.  On a match it
// returns that language's configured warning message.
func (d *Detector) Detect(text string, lang content.Language) (string, bool) {
	if d == nil || len(d.table) == 0 {
		return "", false
	}

	cfg, ok := d.table[lang]
	if !ok || len(cfg.Keywords) == 0 {
		cfg, ok = d.table[content.DefaultLanguage]
		if !ok {
			return "", false
		}
	}

	lower := strings.ToLower(text)
	for _, kw := range cfg.Keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(kw)) {
			return cfg.Message, true
		}
	}
	return "", false
}
