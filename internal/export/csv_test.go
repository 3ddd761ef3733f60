package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/maybank-statement-importer/internal/statement"
)

func TestWriteCSV(t *testing.T) {
	t.Run("writes entries in document order", func(t *testing.T) {
		entries := []statement.Transaction{
			{
				Date:      time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
				Payee:     "SUPERMART",
				Narration: "GROCERY STORE",
				Amount:    decimal.RequireFromString("-45.67"),
				Currency:  "MYR",
				Postings: []statement.Posting{
					{Account: "Assets:MY:Maybank:Checking"},
				},
			},
			{
				Date:      time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC),
				Narration: "ATM WITHDRAWAL",
				Amount:    decimal.RequireFromString("-100"),
				Currency:  "MYR",
				Postings: []statement.Posting{
					{Account: "Assets:MY:Maybank:Checking"},
				},
			},
		}

		var buf bytes.Buffer
		require.NoError(t, WriteCSV(&buf, entries))

		want := "date,payee,narration,amount,currency,account\n" +
			"2024-02-01,SUPERMART,GROCERY STORE,-45.67,MYR,Assets:MY:Maybank:Checking\n" +
			"2024-02-15,,ATM WITHDRAWAL,-100.00,MYR,Assets:MY:Maybank:Checking\n"
		assert.Equal(t, want, buf.String())
	})

	t.Run("no entries still writes the header", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteCSV(&buf, nil))
		assert.Equal(t, "date,payee,narration,amount,currency,account\n", buf.String())
	})
}
