package naming

import (
	"strings"
	"unicode"

	"github.com/aacfactory/cases"
)

// fallbackIdent is used when an input carries no usable identifier characters.
const fallbackIdent = "Element"

// Pascal converts an identifier-ish string to PascalCase.
// Examples:
//   - "btn" -> "Btn"
//   - "textBox" -> "TextBox"
//   - "_clear_button" -> "ClearButton"
//   - "OKButton" -> "OkButton"
func Pascal(s string) string {
	tokens := Tokenize(s)
	if len(tokens) == 0 {
		return fallbackIdent
	}

	atoms := make([]string, 0, len(tokens))
	for _, t := range tokens {
		atoms = append(atoms, strings.ToLower(t))
	}

	out := cases.Camel().Format(atoms)
	if out == "" {
		return fallbackIdent
	}

	if unicode.IsDigit([]rune(out)[0]) {
		out = fallbackIdent + out
	}

	return out
}

// Tokenize splits an identifier into CamelCase and separator-delimited tokens.
// Runes that cannot appear in an identifier act as separators.
// Examples:
//   - "okButton" -> ["ok", "Button"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "clear_button" -> ["clear", "button"]
func Tokenize(s string) []string {
	var tokens []string

	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && !isSeparator(runes[i-1]) && shouldStartNewToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(runes[i-1])

	// "okButton": split before 'B'.
	if isUpper && !isPrevUpper {
		return true
	}

	// "XMLParser": split before 'P'.
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return isUpper && isPrevUpper && hasNextLower
}
