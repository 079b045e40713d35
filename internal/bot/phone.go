package bot

import "unicode"

// IsPhoneNumber reports whether text looks like a phone number:
// at least 10 digits, everything else (+, spaces, dashes, parens) ignored.
func IsPhoneNumber(text string) bool {
	digits := 0
	for _, r := range text {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return digits >= 10
}
