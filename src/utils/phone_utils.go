package utils

import "strings"

// phoneStripChars are the punctuation characters removed from raw phone cells.
var phoneStripChars = []string{"-", " ", "(", ")", ":"}

// NormalizePhone strips punctuation from a raw phone string and enforces a
// leading "+". It never fails and does not validate digit content; malformed
// input passes through cleaned but otherwise untouched.
func NormalizePhone(raw string) string {
	phone := raw
	for _, char := range phoneStripChars {
		phone = strings.ReplaceAll(phone, char, "")
	}
	if !strings.HasPrefix(phone, "+") {
		phone = "+" + phone
	}
	return phone
}
