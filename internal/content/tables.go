package content

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// FaqEntry is one pre-authored question/answer pair.
type FaqEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FaqTable maps each language to its ordered FAQ entries.  Only the first
// three well-formed entries per language are ever used as in-prompt
// examples.
type FaqTable map[Language][]FaqEntry

// maxExamples caps the number of FAQ pairs embedded in a prompt.
const maxExamples = 3

// Examples renders the example-answer block for a language.  Languages with
// no entries fall back to the default language.  Entries with an empty
// question or answer are skipped.  Returns "" when nothing usable exists.
func (t FaqTable) Examples(lang Language) string {
	entries := t[lang]
	if len(entries) == 0 {
		entries = t[DefaultLanguage]
	}

	var lines []string
	for _, e := range entries {
		q := strings.TrimSpace(e.Question)
		a := strings.TrimSpace(e.Answer)
		if q == "" || a == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("- Pregunta: %s\n  Respuesta: %s", q, a))
		if len(lines) == maxExamples {
			break
		}
	}
	return strings.Join(lines, "\n")
}

// AlertConfig holds the risk keywords and the single warning message for
// one language.
type AlertConfig struct {
	Keywords []string `json:"keywords"`
	Message  string   `json:"message"`
}

// AlertTable maps each language to its alert configuration.  A nil table
// disables local risk detection entirely.
type AlertTable map[Language]AlertConfig

// LoadFaq reads the FAQ table from a JSON file.  A missing or unreadable
// file degrades to an empty table rather than failing the process; the
// returned error is for logging only.
func LoadFaq(path string) (FaqTable, error) {
	var table FaqTable
	if err := loadJSON(path, &table); err != nil {
		return FaqTable{}, err
	}
	return table, nil
}

// LoadAlerts reads the alert keyword table from a JSON file, with the same
// degrade-to-empty behaviour as LoadFaq.
func LoadAlerts(path string) (AlertTable, error) {
	var table AlertTable
	if err := loadJSON(path, &table); err != nil {
		return AlertTable{}, err
	}
	return table, nil
}

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
