// Package naming derives table, column and factory names from Go
// identifiers.
package naming

import (
	"strings"
	"unicode"

	"github.com/jinzhu/inflection"
)

// CamelToSnake converts a Go identifier to a snake_case column name.
// Acronyms stay in one word: "ID" → "id", "NbOfPage" → "nb_of_page",
// "ISBNCode" → "isbn_code".
func CamelToSnake(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range runes {
		if !unicode.IsUpper(r) {
			b.WriteRune(r)
			continue
		}
		if i > 0 && wordStart(runes, i) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// wordStart reports whether the upper-case rune at i opens a new word:
// after a lower-case rune, or as the last capital of an acronym that is
// followed by a lower-case rune.
func wordStart(runes []rune, i int) bool {
	prev := runes[i-1]
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}
	return unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

// TableName is the table of a struct without a TableName method:
// "OrderLine" → "order_lines", "News" → "news".
func TableName(typeName string) string {
	return inflection.Plural(CamelToSnake(typeName))
}

// FactoryName is the name of the generated query factory of a type:
// "Book" → "Books", "CD" → "CDs". Uncountable names get a Query suffix so
// the factory does not collide with the type, "News" → "NewsQuery".
func FactoryName(typeName string) string {
	if isAcronym(typeName) {
		return typeName + "s"
	}
	plural := inflection.Plural(typeName)
	if plural == typeName {
		return typeName + "Query"
	}
	return plural
}

// isAcronym reports whether s is made of capitals and digits only, such as
// "CD". inflection would pluralise it in capitals.
func isAcronym(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsUpper(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
