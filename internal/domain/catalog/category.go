package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeCategory converts a category or specialty string to its canonical
// form: leading/trailing whitespace trimmed, each word title-cased.
// "  board games " becomes "Board Games". The transform is idempotent, so
// values may be normalized again at any layer without changing the result.
func NormalizeCategory(value string) string {
	return cases.Title(language.English).String(strings.TrimSpace(value))
}
