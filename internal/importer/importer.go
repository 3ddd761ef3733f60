// Package importer wires the pdftext renderer to the statement parsing
// core, exposing the identify/date/extract flow a bookkeeping pipeline
// drives once per document.
package importer

import (
	"context"
	"log/slog"
	"time"

	"github.com/FACorreiaa/maybank-statement-importer/internal/statement"
)

// RenderFunc produces the text content of a document. Production code
// passes pdftext.Renderer.Render; tests substitute synthetic text.
type RenderFunc func(ctx context.Context, path, password string) (string, error)

// Config describes one issuer account to import for.
type Config struct {
	Account       string // ledger account the posting books against
	Currency      string // ISO-4217 code, constant across a run
	AccountNumber string // issuer token identifying the statement
	Password      string // optional PDF password
	CurrentYear   int    // 0 means use the wall clock
}

// Importer identifies, dates and extracts Maybank PDF statements.
// Rendered text is memoized per document and password, so driving the full
// identify/date/extract flow shells out to the renderer once.
type Importer struct {
	cfg    Config
	render RenderFunc
	logger *slog.Logger
	now    func() time.Time
	texts  map[renderKey]string
}

type renderKey struct {
	path     string
	password string
}

func New(cfg Config, render RenderFunc, logger *slog.Logger) *Importer {
	return &Importer{
		cfg:    cfg,
		render: render,
		logger: logger,
		now:    time.Now,
		texts:  make(map[renderKey]string),
	}
}

// text renders the document at path, reusing the cached result for a
// repeated (path, password) pair. Failed renders are not cached so a
// transient failure does not poison the run.
func (imp *Importer) text(ctx context.Context, path, password string) (string, error) {
	key := renderKey{path: path, password: password}
	if cached, ok := imp.texts[key]; ok {
		return cached, nil
	}

	text, err := imp.render(ctx, path, password)
	if err != nil {
		return "", err
	}
	imp.texts[key] = text
	return text, nil
}

// Identify reports whether the document at path is a statement for the
// configured account number. The issuer names every file Statement.pdf,
// so the content is the only reliable signal.
func (imp *Importer) Identify(ctx context.Context, path string) (bool, error) {
	text, err := imp.text(ctx, path, "")
	if err != nil {
		return false, err
	}
	return statement.Identify(text, imp.cfg.AccountNumber), nil
}

// Date returns the statement's as-of date from the document header.
// ok is false when the document carries no recognizable date label.
func (imp *Importer) Date(ctx context.Context, path string) (time.Time, bool, error) {
	text, err := imp.text(ctx, path, "")
	if err != nil {
		return time.Time{}, false, err
	}
	date, ok := statement.ExtractStatementDate(text)
	return date, ok, nil
}

// Extract renders the document (unlocking it with the configured password
// when set) and returns its transaction entries in document order.
func (imp *Importer) Extract(ctx context.Context, path string) ([]statement.Transaction, error) {
	text, err := imp.text(ctx, path, imp.cfg.Password)
	if err != nil {
		return nil, err
	}

	year := imp.cfg.CurrentYear
	if year == 0 {
		year = imp.now().Year()
	}

	entries, err := statement.ExtractTransactions(
		statement.SplitLines(text), imp.cfg.Account, imp.cfg.Currency, year)
	if err != nil {
		return nil, err
	}

	imp.logger.Info("extracted statement",
		slog.String("path", path),
		slog.Int("transactions", len(entries)))
	return entries, nil
}

// Filename returns the normalized archive name for a recognized statement.
func (imp *Importer) Filename(string) string {
	return "maybank.pdf"
}

// Account returns the ledger account statements file under.
func (imp *Importer) Account(string) string {
	return imp.cfg.Account
}
