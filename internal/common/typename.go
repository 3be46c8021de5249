package common

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// SplitTypeFullName splits a dotted type full name into its namespace and
// short name. "Demo.Views.MainWindow" yields ("Demo.Views", "MainWindow").
// A name without a dot has an empty namespace.
func SplitTypeFullName(fullName string) (namespace, name string) {
	idx := strings.LastIndex(fullName, ".")
	if idx < 0 {
		return "", fullName
	}

	return fullName[:idx], fullName[idx+1:]
}

// TypeName returns the short name of a dotted type full name.
func TypeName(fullName string) string {
	_, name := SplitTypeFullName(fullName)
	return name
}

// TypeNamespace returns the namespace part of a dotted type full name.
func TypeNamespace(fullName string) string {
	ns, _ := SplitTypeFullName(fullName)
	return ns
}

// Literal renders s as a double-quoted C# string literal. Non-printable
// runes use fixed-width \u or \U escapes so a following hex digit cannot
// extend them. Invalid UTF-8 bytes become U+FFFD.
func Literal(s string) string {
	var b strings.Builder

	b.Grow(len(s) + 2)
	b.WriteByte('"')

	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]

		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			switch {
			case unicode.IsPrint(r):
				b.WriteRune(r)
			case r > 0xFFFF:
				fmt.Fprintf(&b, `\U%08X`, r)
			default:
				fmt.Fprintf(&b, `\u%04X`, r)
			}
		}
	}

	b.WriteByte('"')

	return b.String()
}
