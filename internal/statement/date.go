package statement

import (
	"regexp"
	"time"
)

// Statement header date: a label's colon, whitespace, then DD/MM/YY.
var statementDatePattern = regexp.MustCompile(`:\s+(\d{2}/\d{2}/\d{2})`)

// dateLayout parses DD/MM/YY tokens. Two-digit years follow the Go time
// package expansion: 00-68 become 2000-2068, 69-99 become 1969-1999.
const dateLayout = "02/01/06"

// ExtractStatementDate returns the statement's as-of date, taken from the
// first "label: DD/MM/YY" pair in document order. Later matches are
// ignored. ok is false when no such pair exists or the token is not a
// real calendar date.
func ExtractStatementDate(text string) (time.Time, bool) {
	m := statementDatePattern.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, m[1])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
