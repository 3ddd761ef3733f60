package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/FACorreiaa/maybank-statement-importer/internal/export"
	"github.com/FACorreiaa/maybank-statement-importer/internal/importer"
	"github.com/FACorreiaa/maybank-statement-importer/internal/pdftext"
	"github.com/FACorreiaa/maybank-statement-importer/internal/statement"
	"github.com/FACorreiaa/maybank-statement-importer/pkg/config"
	"github.com/FACorreiaa/maybank-statement-importer/pkg/money"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(paths []string) error {
	if len(paths) == 0 {
		return fmt.Errorf("usage: importer <statement.pdf> [more.pdf ...]")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	imp := importer.New(importer.Config{
		Account:       cfg.Importer.Account,
		Currency:      cfg.Importer.Currency,
		AccountNumber: cfg.Importer.AccountNumber,
		Password:      cfg.Importer.Password,
		CurrentYear:   cfg.Importer.CurrentYear,
	}, pdftext.Renderer{}.Render, logger)

	ctx := context.Background()
	var all []statement.Transaction

	for _, path := range paths {
		ok, err := imp.Identify(ctx, path)
		if err != nil {
			return fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		if !ok {
			logger.Warn("not a recognized statement, skipping",
				slog.String("path", path))
			continue
		}

		date, ok, err := imp.Date(ctx, path)
		switch {
		case err != nil:
			logger.Warn("statement date lookup failed",
				slog.String("path", path),
				slog.Any("error", err))
		case ok:
			logger.Info("statement date",
				slog.String("path", path),
				slog.String("date", date.Format("2006-01-02")))
		}

		entries, err := imp.Extract(ctx, path)
		if err != nil {
			return fmt.Errorf("%s: %w", filepath.Base(path), err)
		}

		net := decimal.Zero
		for _, e := range entries {
			net = net.Add(e.Amount)
		}
		logger.Info("statement net movement",
			slog.String("path", path),
			slog.String("net", money.Money{Amount: net, Currency: cfg.Importer.Currency}.Format()))

		all = append(all, entries...)
	}

	return writeOutput(cfg.Output.CSVPath, all)
}

func writeOutput(path string, entries []statement.Transaction) error {
	if path == "" {
		return export.WriteCSV(os.Stdout, entries)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WriteCSV(f, entries); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
