package sheets

import (
	"sort"

	"depenses/internal/core"
)

// FixedColumns precede one column per payer in every exported sheet.
var FixedColumns = []string{"Year", "Month", "Total", "Count"}

// Payers returns every payer appearing in months, sorted.
func Payers(months []core.MonthlySummary) []string {
	seen := map[string]struct{}{}
	for _, m := range months {
		for p := range m.PerPayer {
			seen[p] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Values builds the values matrix written to a sheet: a header row then
// one row per month in the order given. Amounts are euros so the sheet
// can format and sum them; payers without spending in a month get 0.
func Values(months []core.MonthlySummary) [][]any {
	payers := Payers(months)

	header := make([]any, 0, len(FixedColumns)+len(payers))
	for _, c := range FixedColumns {
		header = append(header, c)
	}
	for _, p := range payers {
		header = append(header, p)
	}

	rows := make([][]any, 0, len(months)+1)
	rows = append(rows, header)
	for _, m := range months {
		row := make([]any, 0, len(header))
		row = append(row, m.Year, m.Month, m.Total.Euros(), m.Count)
		for _, p := range payers {
			row = append(row, m.PerPayer[p].Euros())
		}
		rows = append(rows, row)
	}
	return rows
}
