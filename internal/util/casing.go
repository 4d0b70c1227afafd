package util

import (
	"strings"
	"unicode"
)

// ToPascalCase splits s on every non-alphanumeric rune and joins the parts
// with their first letter upper-cased. The rest of each part is kept as-is,
// so acronyms survive: "my-kit" -> "MyKit", "KitUI" -> "KitUI".
func ToPascalCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var result strings.Builder
	for _, part := range parts {
		runes := []rune(part)
		result.WriteRune(unicode.ToUpper(runes[0]))
		result.WriteString(string(runes[1:]))
	}

	return result.String()
}

// ToValidSwiftIdentifier replaces every rune that cannot appear in a Swift
// identifier with an underscore and prefixes a leading digit with one.
func ToValidSwiftIdentifier(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	for i, r := range s {
		if i == 0 && unicode.IsDigit(r) {
			result.WriteRune('_')
		}
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(r)
		} else {
			result.WriteRune('_')
		}
	}

	return result.String()
}

// UnderscoreHyphens replaces hyphens with underscores. Bundle names appear
// inside generated source, where hyphens are not valid identifier runes.
func UnderscoreHyphens(s string) string {
	return strings.ReplaceAll(s, "-", "_")
}
