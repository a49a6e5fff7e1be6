// Package ingest reads the semicolon separated CSV exports of the expense
// tracking app into core transactions.
package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	stdunicode "unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"depenses/internal/core"
	"depenses/internal/log"
)

// Column names after normalization (lower case, accents removed).
const (
	ColDate     = "date"
	ColAmount   = "depense"
	ColCategory = "categorie"
	ColPayer    = "tiers"
	ColNotes    = "notes"
)

// ErrNoHeader is returned when a file lacks the date or amount column.
var ErrNoHeader = errors.New("missing required column")

var headerAliases = map[string]string{
	"date":      ColDate,
	"depense":   ColAmount,
	"depenses":  ColAmount,
	"amount":    ColAmount,
	"categorie": ColCategory,
	"category":  ColCategory,
	"tiers":     ColPayer,
	"payer":     ColPayer,
	"notes":     ColNotes,
	"note":      ColNotes,
}

var yearInName = regexp.MustCompile(`(?:^|\D)((?:19|20)\d{2})(?:\D|$)`)

// FileInfo summarizes the outcome of loading one file.
type FileInfo struct {
	Name    string
	Rows    int
	Skipped int
	Err     error
}

// Result is everything LoadDir produced.
type Result struct {
	Transactions []core.Transaction
	Diagnostics  []core.Diagnostic
	Files        []FileInfo
}

// Loader parses export files and reports skipped rows through its logger.
type Loader struct {
	logger *log.Logger
	sl     *log.StructuredLogger
}

// NewLoader returns a Loader. A nil logger discards output.
func NewLoader(logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Discard()
	}
	logger = logger.WithComponent(log.ComponentIngest)
	return &Loader{logger: logger, sl: log.NewStructuredLogger(logger)}
}

// ListFiles returns the sorted base names of the *.csv files in dir.
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read data directory %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// LoadDir loads every CSV file of dir in name order. Only an unusable
// directory is an error; bad files and rows end up in Diagnostics.
func (l *Loader) LoadDir(dir string) (Result, error) {
	names, err := ListFiles(dir)
	if err != nil {
		return Result{}, err
	}
	var res Result
	for _, name := range names {
		txs, diags, err := l.LoadFile(filepath.Join(dir, name))
		info := FileInfo{Name: name, Rows: len(txs), Err: err}
		for _, d := range diags {
			if d.Row > 0 {
				info.Skipped++
			}
		}
		res.Transactions = append(res.Transactions, txs...)
		res.Diagnostics = append(res.Diagnostics, diags...)
		res.Files = append(res.Files, info)
	}
	l.logger.Info("Data directory loaded",
		log.FieldDataDir, dir,
		log.FieldFiles, len(names),
		log.FieldRows, len(res.Transactions),
		log.FieldSkipped, len(res.Diagnostics))
	return res, nil
}

// LoadFile parses one export. A file that cannot be opened or has no
// usable header yields a single Row 0 diagnostic together with the error.
func (l *Loader) LoadFile(path string) ([]core.Transaction, []core.Diagnostic, error) {
	name := filepath.Base(path)
	f, err := os.Open(path)
	if err != nil {
		return nil, []core.Diagnostic{l.fileDiagnostic(name, err)}, err
	}
	defer f.Close()

	txs, diags, err := l.parse(name, f)
	if err != nil {
		diags = append(diags, l.fileDiagnostic(name, err))
		return txs, diags, err
	}
	l.logger.Info("File loaded",
		log.FieldFile, name,
		log.FieldRows, len(txs),
		log.FieldSkipped, len(diags))
	return txs, diags, nil
}

// Parse reads an export from r. name is used for provenance only.
func (l *Loader) Parse(name string, r io.Reader) ([]core.Transaction, []core.Diagnostic, error) {
	return l.parse(name, r)
}

func (l *Loader) parse(name string, r io.Reader) ([]core.Transaction, []core.Diagnostic, error) {
	cr := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("%s: empty file: %w", name, ErrNoHeader)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%s: read header: %w", name, err)
	}
	cols := mapHeader(header)
	if _, ok := cols[ColDate]; !ok {
		return nil, nil, fmt.Errorf("%s: %q: %w", name, ColDate, ErrNoHeader)
	}
	if _, ok := cols[ColAmount]; !ok {
		return nil, nil, fmt.Errorf("%s: %q: %w", name, ColAmount, ErrNoHeader)
	}

	fileYear := YearFromName(name)
	var (
		txs   []core.Transaction
		diags []core.Diagnostic
	)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			diags = append(diags, l.skip(core.Diagnostic{
				File:   name,
				Row:    perr.StartLine,
				Reason: perr.Err.Error(),
			}))
			continue
		}
		if err != nil {
			return txs, diags, fmt.Errorf("%s: %w", name, err)
		}
		row, _ := cr.FieldPos(0)

		cell := func(col string) string {
			i, ok := cols[col]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		rawDate := cell(ColDate)
		date, err := core.ParseDate(rawDate)
		if err != nil {
			diags = append(diags, l.skip(core.Diagnostic{
				File:    name,
				Row:     row,
				Column:  ColDate,
				Value:   rawDate,
				Reason:  err.Error(),
				Context: rowContext(header, record),
			}))
			continue
		}

		var amount core.Money
		if rawAmount := cell(ColAmount); rawAmount != "" {
			amount, err = core.ParseAmount(rawAmount)
			if err != nil {
				diags = append(diags, l.skip(core.Diagnostic{
					File:    name,
					Row:     row,
					Column:  ColAmount,
					Value:   rawAmount,
					Reason:  err.Error(),
					Context: rowContext(header, record),
				}))
				continue
			}
		}

		year := fileYear
		if year == 0 {
			year = date.Year()
		}
		tx := core.Transaction{
			Date:       date,
			Amount:     amount,
			Category:   core.Label(cell(ColCategory)),
			Payer:      core.Label(cell(ColPayer)),
			Notes:      cell(ColNotes),
			SourceFile: name,
			SourceRow:  row,
			SourceYear: year,
		}
		if err := tx.Validate(); err != nil {
			d := core.Diagnostic{
				File:    name,
				Row:     row,
				Reason:  err.Error(),
				Context: rowContext(header, record),
			}
			if errors.Is(err, core.ErrInvalidDate) {
				d.Column, d.Value = ColDate, rawDate
			}
			diags = append(diags, l.skip(d))
			continue
		}
		txs = append(txs, tx)
	}
	return txs, diags, nil
}

func (l *Loader) skip(d core.Diagnostic) core.Diagnostic {
	l.sl.LogRowSkipped(context.Background(), d)
	return d
}

func (l *Loader) fileDiagnostic(name string, err error) core.Diagnostic {
	l.logger.Warn("File skipped", log.FieldFile, name, log.FieldError, err.Error())
	return core.Diagnostic{File: name, Reason: err.Error()}
}

// YearFromName returns the first plausible 4-digit year in a file name, or 0.
func YearFromName(name string) int {
	m := yearInName.FindStringSubmatch(filepath.Base(name))
	if m == nil {
		return 0
	}
	y, _ := strconv.Atoi(m[1])
	return y
}

// NormalizeHeader folds case and strips accents so "Dépense", "DEPENSE"
// and "depense" compare equal.
func NormalizeHeader(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(stdunicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		out = strings.TrimSpace(s)
	}
	return cases.Fold().String(out)
}

func mapHeader(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		key, ok := headerAliases[NormalizeHeader(h)]
		if !ok {
			continue
		}
		if _, seen := cols[key]; !seen {
			cols[key] = i
		}
	}
	return cols
}

func rowContext(header, record []string) map[string]string {
	ctx := make(map[string]string, len(header))
	for i, h := range header {
		if i < len(record) {
			ctx[strings.TrimSpace(h)] = record[i]
		}
	}
	return ctx
}
