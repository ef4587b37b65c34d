// Package month normalizes user-supplied birth month tokens into two-digit codes.
package month

import "unicode"

// names maps Russian month names (nominative, lower case) to two-digit codes.
var names = map[string]string{
	"январь":   "01",
	"февраль":  "02",
	"март":     "03",
	"апрель":   "04",
	"май":      "05",
	"июнь":     "06",
	"июль":     "07",
	"август":   "08",
	"сентябрь": "09",
	"октябрь":  "10",
	"ноябрь":   "11",
	"декабрь":  "12",
}

// ordered lists month names by code for reverse lookups.
var ordered = [12]string{
	"январь", "февраль", "март", "апрель", "май", "июнь",
	"июль", "август", "сентябрь", "октябрь", "ноябрь", "декабрь",
}

// Codes returns the twelve month codes "01" through "12" in calendar order.
func Codes() []string {
	codes := make([]string, len(ordered))
	for i, n := range ordered {
		codes[i] = names[n]
	}
	return codes
}

// Normalize maps token to a two-digit month code.
//
// An all-letter token is looked up case-sensitively in the month name table.
// Unknown names are returned unchanged, so they match no birth dates. A
// single-character result is left-padded with "0". The result is not range
// checked: "13" stays "13".
func Normalize(token string) string {
	if isAlpha(token) {
		if code, ok := names[token]; ok {
			token = code
		}
	}
	if len([]rune(token)) == 1 {
		return "0" + token
	}
	return token
}

// Name returns the month name for a two-digit code such as "03".
func Name(code string) (string, bool) {
	for _, n := range ordered {
		if names[n] == code {
			return n, true
		}
	}
	return "", false
}

// isAlpha reports whether s is non-empty and consists only of letters.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
