package pipeline

import (
	"sort"

	"depenses/internal/core"
)

type monthKey struct {
	year  int
	month int
}

// Aggregate groups transactions by the calendar month of their own date.
// Only months with at least one transaction are returned, sorted
// chronologically, together with per-year rollups.
func Aggregate(txs []core.Transaction) ([]core.MonthlySummary, []core.YearSummary) {
	months := make(map[monthKey]*core.MonthlySummary)
	for _, tx := range txs {
		k := monthKey{year: tx.Date.Year(), month: tx.Date.Month()}
		m, ok := months[k]
		if !ok {
			m = &core.MonthlySummary{
				Year:        k.year,
				Month:       k.month,
				PerCategory: make(map[string]core.Money),
				PerPayer:    make(map[string]core.Money),
			}
			months[k] = m
		}
		m.Total = m.Total.Add(tx.Amount)
		m.Count++
		m.PerCategory[tx.Category] = m.PerCategory[tx.Category].Add(tx.Amount)
		m.PerPayer[tx.Payer] = m.PerPayer[tx.Payer].Add(tx.Amount)
	}

	monthly := make([]core.MonthlySummary, 0, len(months))
	for _, m := range months {
		monthly = append(monthly, *m)
	}
	sort.Slice(monthly, func(i, j int) bool {
		if monthly[i].Year != monthly[j].Year {
			return monthly[i].Year < monthly[j].Year
		}
		return monthly[i].Month < monthly[j].Month
	})

	var yearly []core.YearSummary
	for _, m := range monthly {
		if len(yearly) == 0 || yearly[len(yearly)-1].Year != m.Year {
			yearly = append(yearly, core.YearSummary{
				Year:        m.Year,
				PerCategory: make(map[string]core.Money),
				PerPayer:    make(map[string]core.Money),
			})
		}
		y := &yearly[len(yearly)-1]
		y.Total = y.Total.Add(m.Total)
		y.Count += m.Count
		for c, v := range m.PerCategory {
			y.PerCategory[c] = y.PerCategory[c].Add(v)
		}
		for p, v := range m.PerPayer {
			y.PerPayer[p] = y.PerPayer[p].Add(v)
		}
		y.Months = append(y.Months, m)
	}
	return monthly, yearly
}

// Totals sums a set of transactions into a single summary with Year and
// Month left at zero.
func Totals(txs []core.Transaction) core.MonthlySummary {
	s := core.MonthlySummary{
		PerCategory: make(map[string]core.Money),
		PerPayer:    make(map[string]core.Money),
	}
	for _, tx := range txs {
		s.Total = s.Total.Add(tx.Amount)
		s.Count++
		s.PerCategory[tx.Category] = s.PerCategory[tx.Category].Add(tx.Amount)
		s.PerPayer[tx.Payer] = s.PerPayer[tx.Payer].Add(tx.Amount)
	}
	return s
}
