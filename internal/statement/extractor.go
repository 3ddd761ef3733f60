package statement

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/FACorreiaa/maybank-statement-importer/pkg/money"
)

var (
	// A transaction line: entry date, lazy narration, signed amount, then
	// the running balance. The balance only disambiguates the pattern
	// boundary and is not emitted.
	transactionPattern = regexp.MustCompile(`(\d{2}/\d{2}(?:/\d{2})?)\s+(.+?)\s+([0-9,.]+[+-])\s+([0-9,.]+)`)

	// A continuation line: up to 40 characters closed by an asterisk,
	// nothing but whitespace around them.
	continuationPattern = regexp.MustCompile(`^\s*(.{0,40})\*\s*$`)
)

// ExtractTransactions scans the rendered statement lines for transaction
// entries, in document order. currentYear supplies the year appended to
// day/month-only entry dates; callers default it at the boundary (the CLI
// uses the wall clock) so the scan itself is deterministic.
//
// A document with no transaction lines yields an empty slice. A matched
// line whose amount token does not parse aborts the whole run.
func ExtractTransactions(lines []string, defaultAccount, currency string, currentYear int) ([]Transaction, error) {
	entries := make([]Transaction, 0, 16)
	for i := 0; i < len(lines); i++ {
		m := transactionPattern.FindStringSubmatch(lines[i])
		if m == nil {
			continue
		}
		dateToken, narration, amountToken := m[1], m[2], m[3]

		amount, err := money.ParseStatementAmount(amountToken)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		date, err := normalizeEntryDate(dateToken, currentYear)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		entries = append(entries, Transaction{
			Date:      date,
			Payee:     findContinuation(lines, i+1),
			Narration: narration,
			Amount:    amount,
			Currency:  currency,
			Postings: []Posting{{
				Account:  defaultAccount,
				Amount:   amount,
				Currency: currency,
			}},
		})
	}
	return entries, nil
}

// findContinuation scans forward from start for the first line closed by
// an asterisk. The scan is unbounded within the document on purpose:
// running-balance headers and page furniture can sit between a transaction
// line and its extra description. The main cursor never follows this scan,
// so a later transaction line repeats it from its own position. Not
// finding one is the normal "no extra description" case.
func findContinuation(lines []string, start int) string {
	for j := start; j < len(lines); j++ {
		if m := continuationPattern.FindStringSubmatch(lines[j]); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// normalizeEntryDate completes DD/MM tokens with the last two digits of
// currentYear; tokens that already carry a year pass through untouched.
// Both forms then parse under the same century rule as the header date.
func normalizeEntryDate(token string, currentYear int) (time.Time, error) {
	if strings.Count(token, "/") == 1 {
		token = fmt.Sprintf("%s/%02d", token, currentYear%100)
	}
	t, err := time.Parse(dateLayout, token)
	if err != nil {
		return time.Time{}, fmt.Errorf("entry date %q: %w", token, err)
	}
	return t, nil
}
