package pipeline

import (
	"sort"

	"depenses/internal/core"
)

// Filter narrows a transaction set. Zero fields match everything.
type Filter struct {
	Year     int
	Category string
	Payer    string
}

// Match reports whether tx passes the filter.
func (f Filter) Match(tx core.Transaction) bool {
	if f.Year != 0 && tx.Date.Year() != f.Year {
		return false
	}
	if f.Category != "" && tx.Category != f.Category {
		return false
	}
	if f.Payer != "" && tx.Payer != f.Payer {
		return false
	}
	return true
}

// Apply returns the transactions matching f, in input order.
func (f Filter) Apply(txs []core.Transaction) []core.Transaction {
	out := make([]core.Transaction, 0, len(txs))
	for _, tx := range txs {
		if f.Match(tx) {
			out = append(out, tx)
		}
	}
	return out
}

// Years lists the distinct calendar years, ascending.
func Years(txs []core.Transaction) []int {
	seen := make(map[int]struct{})
	for _, tx := range txs {
		seen[tx.Date.Year()] = struct{}{}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Payers lists the distinct payers, sorted.
func Payers(txs []core.Transaction) []string {
	return distinct(txs, func(tx core.Transaction) string { return tx.Payer })
}

// Categories lists the distinct categories, sorted.
func Categories(txs []core.Transaction) []string {
	return distinct(txs, func(tx core.Transaction) string { return tx.Category })
}

func distinct(txs []core.Transaction, field func(core.Transaction) string) []string {
	seen := make(map[string]struct{})
	for _, tx := range txs {
		seen[field(tx)] = struct{}{}
	}
	return sortedKeys(seen)
}

// FillMonths returns the twelve months of year, taking the summaries found
// in monthly and zero summaries for the rest. It is meant for charts; the
// aggregated data itself never contains empty months.
func FillMonths(monthly []core.MonthlySummary, year int) []core.MonthlySummary {
	out := make([]core.MonthlySummary, 12)
	for i := range out {
		out[i] = core.MonthlySummary{
			Year:        year,
			Month:       i + 1,
			PerCategory: map[string]core.Money{},
			PerPayer:    map[string]core.Money{},
		}
	}
	for _, m := range monthly {
		if m.Year == year && m.Month >= 1 && m.Month <= 12 {
			out[m.Month-1] = m
		}
	}
	return out
}

// Series is one named line of monthly values.
type Series struct {
	Name   string
	Values []core.Money
}

// Point is a dated value.
type Point struct {
	Date  core.Date
	Value core.Money
}

// DatedSeries is one named line of dated values.
type DatedSeries struct {
	Name   string
	Points []Point
}

// PayerMonthly splits monthly totals per payer, one Series per name.
func PayerMonthly(months []core.MonthlySummary, payers []string) []Series {
	return seriesBy(months, payers, func(m core.MonthlySummary) map[string]core.Money { return m.PerPayer })
}

// CategoryMonthly splits monthly totals per category.
func CategoryMonthly(months []core.MonthlySummary, categories []string) []Series {
	return seriesBy(months, categories, func(m core.MonthlySummary) map[string]core.Money { return m.PerCategory })
}

func seriesBy(months []core.MonthlySummary, names []string, pick func(core.MonthlySummary) map[string]core.Money) []Series {
	out := make([]Series, 0, len(names))
	for _, name := range names {
		s := Series{Name: name, Values: make([]core.Money, len(months))}
		for i, m := range months {
			s.Values[i] = pick(m)[name]
		}
		out = append(out, s)
	}
	return out
}

// DailyByPayer sums each payer's spending per day, dates ascending.
func DailyByPayer(txs []core.Transaction) []DatedSeries {
	return byPayerOverTime(txs, false)
}

// CumulativeByPayer returns each payer's running total per day.
func CumulativeByPayer(txs []core.Transaction) []DatedSeries {
	return byPayerOverTime(txs, true)
}

func byPayerOverTime(txs []core.Transaction, cumulative bool) []DatedSeries {
	daily := make(map[string]map[core.Date]core.Money)
	for _, tx := range txs {
		days, ok := daily[tx.Payer]
		if !ok {
			days = make(map[core.Date]core.Money)
			daily[tx.Payer] = days
		}
		days[tx.Date] = days[tx.Date].Add(tx.Amount)
	}

	out := make([]DatedSeries, 0, len(daily))
	for _, payer := range sortedKeys(daily) {
		days := daily[payer]
		dates := make([]core.Date, 0, len(days))
		for d := range days {
			dates = append(dates, d)
		}
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j].Time) })

		s := DatedSeries{Name: payer, Points: make([]Point, 0, len(dates))}
		var running core.Money
		for _, d := range dates {
			v := days[d]
			if cumulative {
				running = running.Add(v)
				v = running
			}
			s.Points = append(s.Points, Point{Date: d, Value: v})
		}
		out = append(out, s)
	}
	return out
}

// ByDate returns a copy of txs sorted by date, then file and row.
func ByDate(txs []core.Transaction) []core.Transaction {
	out := append([]core.Transaction(nil), txs...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.Date.Equal(b.Date.Time) {
			return a.Date.Before(b.Date.Time)
		}
		if a.SourceFile != b.SourceFile {
			return a.SourceFile < b.SourceFile
		}
		return a.SourceRow < b.SourceRow
	})
	return out
}

// MonthTransactions returns the transactions of one month, by date.
func MonthTransactions(txs []core.Transaction, year, month int) []core.Transaction {
	var out []core.Transaction
	for _, tx := range txs {
		if tx.Date.Year() == year && tx.Date.Month() == month {
			out = append(out, tx)
		}
	}
	return ByDate(out)
}

// TopN returns the n largest transactions, ties broken by date.
func TopN(txs []core.Transaction, n int) []core.Transaction {
	if n <= 0 {
		return nil
	}
	out := ByDate(txs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.Cents > out[j].Amount.Cents
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// DateRange returns the first and last dates of txs. ok is false when txs
// is empty.
func DateRange(txs []core.Transaction) (first, last core.Date, ok bool) {
	for i, tx := range txs {
		if i == 0 || tx.Date.Before(first.Time) {
			first = tx.Date
		}
		if i == 0 || tx.Date.After(last.Time) {
			last = tx.Date
		}
	}
	return first, last, len(txs) > 0
}

// SpanDays is the number of days between first and last, inclusive.
func SpanDays(first, last core.Date) int {
	return int(last.Sub(first.Time).Hours()/24) + 1
}
