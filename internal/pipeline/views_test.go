package pipeline

import (
	"testing"

	"depenses/internal/core"
)

func TestFilter(t *testing.T) {
	txs := sample()
	cases := []struct {
		name string
		f    Filter
		want int
	}{
		{"all", Filter{}, 5},
		{"year", Filter{Year: 2024}, 4},
		{"category", Filter{Category: "Food"}, 2},
		{"payer", Filter{Payer: "Bob"}, 2},
		{"combined", Filter{Year: 2024, Category: "Food", Payer: "Alice"}, 1},
		{"none", Filter{Year: 1999}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.f.Apply(txs); len(got) != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, len(got))
			}
		})
	}
}

func TestDistinctValues(t *testing.T) {
	txs := sample()
	if y := Years(txs); len(y) != 2 || y[0] != 2023 || y[1] != 2024 {
		t.Fatalf("unexpected years %v", y)
	}
	if p := Payers(txs); len(p) != 3 || p[0] != "Alice" || p[2] != core.Unknown {
		t.Fatalf("unexpected payers %v", p)
	}
	if c := Categories(txs); len(c) != 4 || c[0] != "Food" {
		t.Fatalf("unexpected categories %v", c)
	}
}

func TestFillMonths(t *testing.T) {
	monthly, _ := Aggregate(sample())
	filled := FillMonths(monthly, 2024)
	if len(filled) != 12 {
		t.Fatalf("expected 12 months, got %d", len(filled))
	}
	if filled[0].Total.Cents != 3000 || filled[1].Total.Cents != 0 || filled[2].Total.Cents != 999 {
		t.Fatalf("unexpected filled values: %v %v %v", filled[0].Total, filled[1].Total, filled[2].Total)
	}
	for i, m := range filled {
		if m.Month != i+1 || m.Year != 2024 {
			t.Fatalf("month %d mislabelled: %+v", i, m)
		}
	}
	if len(monthly) != 3 {
		t.Fatal("FillMonths must not change the aggregated data")
	}
}

func TestPayerMonthly(t *testing.T) {
	monthly, _ := Aggregate(sample())
	series := PayerMonthly(FillMonths(monthly, 2024), []string{"Alice", "Bob"})
	if len(series) != 2 || len(series[0].Values) != 12 {
		t.Fatalf("unexpected series shape: %+v", series)
	}
	if series[0].Values[0].Cents != 2500 || series[1].Values[0].Cents != 500 {
		t.Fatalf("unexpected January values: %v %v", series[0].Values[0], series[1].Values[0])
	}
}

func TestCumulativeByPayer(t *testing.T) {
	txs := []core.Transaction{
		tx(2024, 1, 3, 300, "A", "Alice"),
		tx(2024, 1, 1, 100, "A", "Alice"),
		tx(2024, 1, 1, 50, "B", "Alice"),
		tx(2024, 1, 2, 10, "A", "Bob"),
	}
	series := CumulativeByPayer(txs)
	if len(series) != 2 || series[0].Name != "Alice" {
		t.Fatalf("unexpected series: %+v", series)
	}
	alice := series[0].Points
	if len(alice) != 2 || alice[0].Value.Cents != 150 || alice[1].Value.Cents != 450 {
		t.Fatalf("unexpected cumulative points: %+v", alice)
	}

	daily := DailyByPayer(txs)
	if daily[0].Points[1].Value.Cents != 300 {
		t.Fatalf("daily values should not accumulate: %+v", daily[0].Points)
	}
}

func TestTopN(t *testing.T) {
	top := TopN(sample(), 2)
	if len(top) != 2 || top[0].Amount.Cents != 2500 || top[1].Amount.Cents != 1500 {
		t.Fatalf("unexpected top: %+v", top)
	}
	if TopN(sample(), 0) != nil {
		t.Fatal("n=0 should return nothing")
	}
	if got := TopN(sample(), 50); len(got) != 5 {
		t.Fatalf("n larger than input should return all, got %d", len(got))
	}
}

func TestMonthTransactionsAndDateRange(t *testing.T) {
	jan := MonthTransactions(sample(), 2024, 1)
	if len(jan) != 3 || jan[0].Date.Day() != 1 || jan[2].Date.Day() != 20 {
		t.Fatalf("unexpected January transactions: %+v", jan)
	}

	first, last, ok := DateRange(sample())
	if !ok || first.String() != "31/12/2023" || last.String() != "02/03/2024" {
		t.Fatalf("unexpected range %s - %s", first, last)
	}
	if SpanDays(first, last) != 63 {
		t.Fatalf("unexpected span %d", SpanDays(first, last))
	}
	if _, _, ok := DateRange(nil); ok {
		t.Fatal("empty input should report no range")
	}
}

func TestStats(t *testing.T) {
	ps := PayerStats(sample())
	if len(ps) != 3 || ps[0].Payer != "Alice" {
		t.Fatalf("unexpected payer stats: %+v", ps)
	}
	if ps[0].Sum.Cents != 4000 || ps[0].Count != 2 || ps[0].Mean.Cents != 2000 || ps[0].Max.Cents != 2500 {
		t.Fatalf("unexpected Alice stats: %+v", ps[0])
	}

	cs := CategoryStats(sample())
	if cs[0].Category != "Food" || cs[0].Sum.Cents != 4000 {
		t.Fatalf("unexpected category stats: %+v", cs)
	}

	if m := Mean(nil); m.Cents != 0 {
		t.Fatalf("mean of nothing should be zero, got %s", m)
	}
}

func TestCategoryByPayer(t *testing.T) {
	ct := CategoryByPayer(sample())
	if ct.Cell("Food", "Alice").Cents != 4000 || ct.Cell("Food", "Bob").Cents != 0 {
		t.Fatalf("unexpected cells: %+v", ct.Cells)
	}
	if len(ct.Payers) != 3 || len(ct.Categories) != 4 {
		t.Fatalf("unexpected axes: %v %v", ct.Payers, ct.Categories)
	}
}
