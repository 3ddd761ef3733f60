package statement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractStatementDate(t *testing.T) {
	t.Run("parses a labelled date", func(t *testing.T) {
		date, ok := ExtractStatementDate("Statement\nDate: 05/06/23\n")
		require.True(t, ok)
		assert.Equal(t, time.Date(2023, time.June, 5, 0, 0, 0, 0, time.UTC), date)
	})

	t.Run("absent when no labelled date exists", func(t *testing.T) {
		_, ok := ExtractStatementDate("no dates in this document")
		assert.False(t, ok)
	})

	t.Run("absent when the date has no label colon", func(t *testing.T) {
		_, ok := ExtractStatementDate("05/06/23 floating in the header")
		assert.False(t, ok)
	})

	t.Run("absent when the token is not a real calendar date", func(t *testing.T) {
		_, ok := ExtractStatementDate("Date: 45/67/23")
		assert.False(t, ok)
	})

	t.Run("first match wins", func(t *testing.T) {
		text := "Opened: 01/01/22\nDate: 05/06/23\n"
		date, ok := ExtractStatementDate(text)
		require.True(t, ok)
		assert.Equal(t, time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC), date)
	})

	t.Run("two-digit years 69-99 land in the 1900s", func(t *testing.T) {
		date, ok := ExtractStatementDate("As of: 01/01/69")
		require.True(t, ok)
		assert.Equal(t, 1969, date.Year())
	})
}
