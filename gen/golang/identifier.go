package golang

import (
	"strings"
	"unicode"
)

// Go reserved words.
var reservedWords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true,
	"continue": true, "default": true, "defer": true, "else": true,
	"fallthrough": true, "for": true, "func": true, "go": true,
	"goto": true, "if": true, "import": true, "interface": true,
	"map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true,
	"var": true,
}

// escapeReservedWord escapes a reserved word by appending an underscore.
func escapeReservedWord(name string) string {
	if reservedWords[name] {
		return name + "_"
	}
	return name
}

// exportedName makes a schema type name a valid exported Go identifier:
// invalid runes become underscores and the first letter is upper-cased.
func exportedName(name string) string {
	if name == "" {
		return "X"
	}

	var result strings.Builder
	if unicode.IsDigit(rune(name[0])) {
		result.WriteRune('X')
	}
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			result.WriteRune(r)
		} else {
			result.WriteRune('_')
		}
	}

	sanitized := result.String()
	return strings.ToUpper(sanitized[:1]) + sanitized[1:]
}

// packageName makes a schema name a valid Go package name: lower-cased
// with invalid runes dropped.
func packageName(name string) string {
	var result strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLower(r) || unicode.IsDigit(r) || r == '_' {
			result.WriteRune(r)
		}
	}
	if result.Len() == 0 || unicode.IsDigit(rune(result.String()[0])) {
		return "schema" + result.String()
	}
	return escapeReservedWord(result.String())
}
