// Package export writes extracted statement transactions to CSV.
package export

import (
	"io"

	"github.com/gocarina/gocsv"

	"github.com/FACorreiaa/maybank-statement-importer/internal/statement"
)

// Row is the CSV projection of one extracted transaction.
type Row struct {
	Date      string `csv:"date"`
	Payee     string `csv:"payee"`
	Narration string `csv:"narration"`
	Amount    string `csv:"amount"`
	Currency  string `csv:"currency"`
	Account   string `csv:"account"`
}

// WriteCSV writes entries in document order. Dates use ISO-8601 and
// amounts keep their fixed two-decimal scale.
func WriteCSV(w io.Writer, entries []statement.Transaction) error {
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		account := ""
		if len(e.Postings) > 0 {
			account = e.Postings[0].Account
		}
		rows = append(rows, Row{
			Date:      e.Date.Format("2006-01-02"),
			Payee:     e.Payee,
			Narration: e.Narration,
			Amount:    e.Amount.StringFixed(2),
			Currency:  e.Currency,
			Account:   account,
		})
	}
	return gocsv.Marshal(&rows, w)
}
