// Command depenses-report prints the monthly summaries of the data
// directory and can publish them to Google Sheets.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"depenses/internal/cli"
	"depenses/internal/i18n"
	"depenses/internal/log"
	"depenses/internal/report"
	"depenses/internal/sheets/google"
)

func main() {
	markdown := flag.Bool("markdown", false, "print markdown tables")
	year := flag.Int("year", 0, "only report this year")
	toSheets := flag.Bool("sheets", false, "also write the monthly summaries to Google Sheets")
	dir := flag.String("dir", "", "data directory (defaults to DATA_DIR)")
	flag.Parse()

	cli.LoadEnvFile()
	cfg, err := cli.LoadConfig()
	if err != nil {
		cli.Exit(nil, "Configuration validation failed", err)
	}
	if *dir != "" {
		cfg.DataDir = *dir
	}
	// Tables go to stdout, logs to stderr.
	logger := cli.SetupLogger(cfg, os.Stderr).WithComponent(log.ComponentReport)

	res, err := cli.NewPipeline(cfg, logger).Run(cfg.DataDir)
	if err != nil {
		cli.Exit(logger, "Failed to read data directory", err)
	}

	opts := report.Options{Year: *year, Markdown: *markdown, Translator: i18n.New(cfg.Language)}
	if err := report.Write(os.Stdout, res, opts); err != nil {
		cli.Exit(logger, "Failed to write report", err)
	}

	if !*toSheets {
		return
	}
	if err := cfg.ValidateSheets(); err != nil {
		cli.Exit(logger, "Sheets export not configured", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	exp, err := google.NewExporter(ctx, cfg.GoogleSpreadsheetID, cfg.GoogleSheetName, google.Credentials{
		JSON:            cfg.GoogleServiceAccountJSON,
		File:            cfg.GoogleServiceAccountFile,
		ApplicationFile: cfg.GoogleApplicationCredFile,
	}, logger)
	if err != nil {
		cli.Exit(logger, "Failed to initialize Google Sheets exporter", err)
	}
	if *year != 0 {
		exp = exp.ForYear(*year)
	}

	n, err := report.Export(ctx, exp, res, *year)
	if err != nil {
		cli.Exit(logger, "Sheets export failed", err)
	}
	logger.Info("Sheets export complete", "sheet", exp.Sheet(), log.FieldMonths, n)
}
