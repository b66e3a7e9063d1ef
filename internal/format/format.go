// Package format renders identifiers and amounts the way Chilean documents
// print them.
package format

import (
	"strconv"
	"strings"
)

// RUT reformats a taxpayer ID as "12.345.678-K". Everything except digits
// and K is dropped and the last character becomes the check digit. The
// check digit is not validated. Inputs with one character or less are
// returned cleaned but otherwise untouched.
func RUT(value string) string {
	var clean strings.Builder
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
			clean.WriteRune(r)
		case r == 'k' || r == 'K':
			clean.WriteRune('K')
		}
	}
	s := clean.String()
	if len(s) <= 1 {
		return s
	}
	return groupThousands(s[:len(s)-1]) + "-" + s[len(s)-1:]
}

// CLP formats an amount as Chilean pesos, e.g. "$1.250.000" or "-$5.000".
func CLP(amount int64) string {
	if amount < 0 {
		return "-$" + groupThousands(strconv.FormatUint(uint64(-amount), 10))
	}
	return "$" + groupThousands(strconv.FormatInt(amount, 10))
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
