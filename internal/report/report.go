// Package report renders pipeline results as terminal or markdown tables.
package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"depenses/internal/core"
	"depenses/internal/i18n"
	"depenses/internal/pipeline"
	"depenses/internal/sheets"
)

// ErrNothingToExport is returned by Export when no month matches.
var ErrNothingToExport = errors.New("no monthly summary to export")

type Options struct {
	// Year restricts the report to one year; zero prints every year.
	Year       int
	Markdown   bool
	Translator *i18n.Translator
}

// Months returns the monthly summaries of year, or all of them when year is 0.
func Months(res pipeline.Result, year int) []core.MonthlySummary {
	if year == 0 {
		return res.Monthly
	}
	var out []core.MonthlySummary
	for _, m := range res.Monthly {
		if m.Year == year {
			out = append(out, m)
		}
	}
	return out
}

// Export sends the monthly summaries of year (every year when 0) to w.
func Export(ctx context.Context, w sheets.SummaryWriter, res pipeline.Result, year int) (int, error) {
	months := Months(res, year)
	if len(months) == 0 {
		return 0, ErrNothingToExport
	}
	return w.WriteSummaries(ctx, months)
}

// Write prints one table per year followed by the balance between payers
// and a line of load counters.
func Write(w io.Writer, res pipeline.Result, opts Options) error {
	tr := opts.Translator
	if tr == nil {
		tr = i18n.New("")
	}

	printed := 0
	for _, y := range res.Yearly {
		if opts.Year != 0 && y.Year != opts.Year {
			continue
		}
		if printed > 0 {
			fmt.Fprintln(w)
		}
		printed++
		writeYear(w, y, tr, opts.Markdown)
	}
	if printed == 0 {
		fmt.Fprintln(w, tr.T("errors.no_data_filters"))
	}

	fmt.Fprintln(w)
	_, err := fmt.Fprintf(w, "%s: %d · %s: %d · %s: %d\n",
		tr.T("common.transactions"), len(res.Transactions),
		tr.T("errors.skipped_rows"), skipped(res.Diagnostics),
		tr.T("common.duplicates"), res.Duplicates)
	return err
}

func writeYear(w io.Writer, y core.YearSummary, tr *i18n.Translator, markdown bool) {
	title := tr.T("overview.year_overview", "year", y.Year)
	if markdown {
		fmt.Fprintf(w, "## %s\n\n", title)
	} else {
		fmt.Fprintf(w, "%s\n", title)
	}

	payers := sheets.Payers(y.Months)
	header := []string{tr.T("common.month"), tr.T("common.total"), tr.T("common.count")}
	header = append(header, payers...)

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	if markdown {
		table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
		table.SetCenterSeparator("|")
	}

	for _, m := range y.Months {
		row := []string{tr.MonthName(m.Month), tr.Money(m.Total), strconv.Itoa(m.Count)}
		for _, p := range payers {
			row = append(row, tr.Money(m.PerPayer[p]))
		}
		table.Append(row)
	}

	total := []string{tr.T("common.total"), tr.Money(y.Total), strconv.Itoa(y.Count)}
	for _, p := range payers {
		total = append(total, tr.Money(y.PerPayer[p]))
	}
	if markdown {
		// Markdown has no footer row.
		table.Append(total)
	} else {
		table.SetFooter(total)
	}
	table.Render()

	if line := balanceLine(y.PerPayer, tr); line != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, line)
	}
}

// balanceLine states who owes whom for two payers, or each payer's gap to
// the average otherwise.
func balanceLine(perPayer map[string]core.Money, tr *i18n.Translator) string {
	if len(perPayer) < 2 {
		return ""
	}
	b := pipeline.ComputeBalance(perPayer)
	if b.Settlement != nil {
		return tr.T("overview.balance", "text", tr.T("overview.owes",
			"debtor", b.Settlement.Debtor,
			"creditor", b.Settlement.Creditor,
			"amount", tr.Money(b.Settlement.Amount)))
	}
	line := ""
	for _, sh := range b.Shares {
		var part string
		switch {
		case sh.Deviation.Cents > 0:
			part = tr.T("overview.spent_more", "person", sh.Payer, "amount", tr.Money(sh.Deviation))
		case sh.Deviation.Cents < 0:
			part = tr.T("overview.spent_less", "person", sh.Payer, "amount", tr.Money(core.Money{Cents: -sh.Deviation.Cents}))
		default:
			continue
		}
		if line != "" {
			line += "; "
		}
		line += part
	}
	if line == "" {
		return tr.T("overview.balance", "text", tr.T("overview.balanced"))
	}
	return tr.T("overview.balance", "text", line)
}

func skipped(diags []core.Diagnostic) int {
	n := 0
	for _, d := range diags {
		if d.Row > 0 {
			n++
		}
	}
	return n
}
