// Package statement implements the text-parsing core for Maybank PDF
// statements: issuer identification, statement-date lookup, and
// transaction-line extraction. It operates on pre-rendered text only and
// never touches the PDF itself, so tests can feed synthetic documents.
package statement

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Posting is a single ledger leg of an extracted transaction. Extraction
// books exactly one posting per entry, against the configured account.
type Posting struct {
	Account  string
	Amount   decimal.Decimal
	Currency string
}

// Transaction is one extracted statement entry. Narration comes from the
// transaction line itself; Payee from the optional continuation line and
// is empty when the statement carries none.
type Transaction struct {
	Date      time.Time
	Payee     string
	Narration string
	Amount    decimal.Decimal
	Currency  string
	Postings  []Posting
}

// SplitLines splits rendered document text into lines regardless of the
// source line terminator.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
