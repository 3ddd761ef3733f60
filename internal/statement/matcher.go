package statement

import "strings"

// Identify reports whether the rendered text is a statement for the given
// account number. The number is matched as a literal substring, so account
// formats containing pattern metacharacters need no escaping by the caller.
// An empty document is simply not a match, never an error.
func Identify(text, accountNumber string) bool {
	if text == "" {
		return false
	}
	return strings.Contains(text, accountNumber)
}
