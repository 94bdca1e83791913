package session

import "strings"

var phoneSeparators = strings.NewReplacer("-", "", " ", "", "(", "", ")", "", ".", "")

// NormalizePhone strips formatting from a US phone number and returns it in
// E.164 form with the +1 country code.
func NormalizePhone(raw string) string {
	stripped := phoneSeparators.Replace(strings.TrimSpace(raw))

	switch {
	case strings.HasPrefix(stripped, "+1"):
		stripped = stripped[2:]
	case strings.HasPrefix(stripped, "1") && len(stripped) == 11:
		stripped = stripped[1:]
	}

	return "+1" + stripped
}
