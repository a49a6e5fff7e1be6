// Package pipeline turns loaded transactions into deduplicated monthly and
// yearly summaries and the derived views the dashboard shows.
package pipeline

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"depenses/internal/core"
	"depenses/internal/ingest"
	"depenses/internal/log"
)

// ErrUnknownFile is returned by RunFile for a name that is not a CSV file
// of the data directory.
var ErrUnknownFile = errors.New("unknown data file")

// Result is the output of one pipeline run.
type Result struct {
	Transactions []core.Transaction
	Monthly      []core.MonthlySummary
	Yearly       []core.YearSummary
	Diagnostics  []core.Diagnostic
	Files        []ingest.FileInfo
	Duplicates   int
}

// Empty reports whether the run produced no transaction.
func (r Result) Empty() bool {
	return len(r.Transactions) == 0
}

// Options configures a Pipeline.
type Options struct {
	Key    KeyFunc
	Logger *log.Logger
}

// Pipeline loads, deduplicates and aggregates a data directory. It holds
// no state between runs.
type Pipeline struct {
	loader *ingest.Loader
	key    KeyFunc
	logger *log.Logger
}

// New creates a Pipeline. Zero options use DefaultKey and discard logs.
func New(opts Options) *Pipeline {
	logger := opts.Logger
	if logger == nil {
		logger = log.Discard()
	}
	key := opts.Key
	if key == nil {
		key = DefaultKey
	}
	return &Pipeline{
		loader: ingest.NewLoader(logger),
		key:    key,
		logger: logger.WithComponent(log.ComponentPipeline),
	}
}

// Run processes every CSV file in dir with default options.
func Run(dir string) (Result, error) {
	return New(Options{}).Run(dir)
}

// Run processes every CSV file in dir. The error is non-nil only when the
// directory cannot be listed.
func (p *Pipeline) Run(dir string) (Result, error) {
	start := time.Now()
	loaded, err := p.loader.LoadDir(dir)
	if err != nil {
		return Result{}, err
	}
	res := p.finish(loaded)
	p.logger.Info("Pipeline run completed",
		log.FieldDataDir, dir,
		log.FieldFiles, len(res.Files),
		log.FieldRows, len(res.Transactions),
		log.FieldDuplicates, res.Duplicates,
		log.FieldMonths, len(res.Monthly),
		log.FieldDuration, time.Since(start).Milliseconds())
	return res, nil
}

// RunFile processes a single file of dir. Only the base name of name is
// used, so callers cannot escape the data directory.
func (p *Pipeline) RunFile(dir, name string) (Result, error) {
	name = filepath.Base(name)
	names, err := ingest.ListFiles(dir)
	if err != nil {
		return Result{}, err
	}
	found := false
	for _, n := range names {
		if n == name {
			found = true
			break
		}
	}
	if !found {
		return Result{}, fmt.Errorf("%s: %w", name, ErrUnknownFile)
	}

	txs, diags, err := p.loader.LoadFile(filepath.Join(dir, name))
	info := ingest.FileInfo{Name: name, Rows: len(txs), Err: err}
	for _, d := range diags {
		if d.Row > 0 {
			info.Skipped++
		}
	}
	return p.finish(ingest.Result{
		Transactions: txs,
		Diagnostics:  diags,
		Files:        []ingest.FileInfo{info},
	}), nil
}

func (p *Pipeline) finish(loaded ingest.Result) Result {
	unique := DedupeBy(loaded.Transactions, p.key)
	monthly, yearly := Aggregate(unique)
	return Result{
		Transactions: unique,
		Monthly:      monthly,
		Yearly:       yearly,
		Diagnostics:  loaded.Diagnostics,
		Files:        loaded.Files,
		Duplicates:   len(loaded.Transactions) - len(unique),
	}
}
