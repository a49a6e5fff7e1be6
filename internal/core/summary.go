package core

import "sort"

// CategoryAmount represents an amount aggregated by category name.
type CategoryAmount struct {
	Name   string
	Amount Money
}

// MonthlySummary aggregates the transactions of one calendar month.
type MonthlySummary struct {
	Year        int
	Month       int // 1-12
	Total       Money
	Count       int
	PerCategory map[string]Money
	PerPayer    map[string]Money
}

// YearSummary aggregates a calendar year and keeps its months in order.
type YearSummary struct {
	Year        int
	Total       Money
	Count       int
	PerCategory map[string]Money
	PerPayer    map[string]Money
	Months      []MonthlySummary
}

// SortedAmounts flattens a label->amount map, largest amount first and
// ties broken by name.
func SortedAmounts(m map[string]Money) []CategoryAmount {
	out := make([]CategoryAmount, 0, len(m))
	for name, amt := range m {
		out = append(out, CategoryAmount{Name: name, Amount: amt})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount.Cents != out[j].Amount.Cents {
			return out[i].Amount.Cents > out[j].Amount.Cents
		}
		return out[i].Name < out[j].Name
	})
	return out
}
