package pipeline

import (
	"testing"

	"depenses/internal/core"
)

func sample() []core.Transaction {
	return []core.Transaction{
		tx(2023, 12, 31, 1500, "Food", "Alice"),
		tx(2024, 1, 1, 2500, "Food", "Alice"),
		tx(2024, 1, 15, 700, "Transport", "Bob"),
		tx(2024, 1, 20, -200, "Refund", "Bob"),
		tx(2024, 3, 2, 999, "", ""),
	}
}

func TestAggregateCrossYearSplit(t *testing.T) {
	monthly, yearly := Aggregate([]core.Transaction{
		tx(2023, 12, 31, 1000, "Food", "Alice"),
		tx(2024, 1, 1, 1000, "Food", "Alice"),
	})
	if len(monthly) != 2 {
		t.Fatalf("expected 2 months, got %d", len(monthly))
	}
	if monthly[0].Year != 2023 || monthly[0].Month != 12 || monthly[1].Year != 2024 || monthly[1].Month != 1 {
		t.Fatalf("unexpected months: %+v", monthly)
	}
	if len(yearly) != 2 || yearly[0].Year != 2023 || yearly[1].Year != 2024 {
		t.Fatalf("unexpected years: %+v", yearly)
	}
}

func TestAggregateCompleteness(t *testing.T) {
	txs := sample()
	monthly, _ := Aggregate(txs)

	count := 0
	for _, m := range monthly {
		count += m.Count
	}
	if count != len(txs) {
		t.Fatalf("expected %d transactions across months, got %d", len(txs), count)
	}

	for _, tr := range txs {
		matches := 0
		for _, m := range monthly {
			if m.Year == tr.Date.Year() && m.Month == tr.Date.Month() {
				matches++
			}
		}
		if matches != 1 {
			t.Fatalf("transaction %+v found in %d months", tr, matches)
		}
	}
}

func TestAggregateSumConservation(t *testing.T) {
	monthly, yearly := Aggregate(sample())
	for _, m := range monthly {
		var byCat, byPayer core.Money
		for _, v := range m.PerCategory {
			byCat = byCat.Add(v)
		}
		for _, v := range m.PerPayer {
			byPayer = byPayer.Add(v)
		}
		if byCat != m.Total || byPayer != m.Total {
			t.Fatalf("%d-%02d: total %s, categories %s, payers %s", m.Year, m.Month, m.Total, byCat, byPayer)
		}
	}

	jan := monthly[1]
	if jan.Total.Cents != 3000 || jan.Count != 3 {
		t.Fatalf("unexpected January: %+v", jan)
	}
	if jan.PerPayer["Bob"].Cents != 500 {
		t.Fatalf("Bob should net 5.00 in January, got %s", jan.PerPayer["Bob"])
	}

	y2024 := yearly[1]
	if y2024.Total.Cents != 3999 || y2024.Count != 4 || len(y2024.Months) != 2 {
		t.Fatalf("unexpected 2024 rollup: %+v", y2024)
	}
	if y2024.PerCategory[core.Unknown].Cents != 999 {
		t.Fatalf("blank category should be grouped as unknown: %+v", y2024.PerCategory)
	}
}

func TestAggregateOmitsEmptyMonths(t *testing.T) {
	monthly, _ := Aggregate(sample())
	for _, m := range monthly {
		if m.Year == 2024 && m.Month == 2 {
			t.Fatal("February has no data and should not be present")
		}
	}
}

func TestAggregateUsesTransactionDate(t *testing.T) {
	tr := tx(2023, 12, 31, 100, "Food", "Alice")
	tr.SourceYear = 2024
	monthly, _ := Aggregate([]core.Transaction{tr})
	if monthly[0].Year != 2023 {
		t.Fatalf("grouping should use the transaction date, got %d", monthly[0].Year)
	}
}

func TestAggregateEmpty(t *testing.T) {
	monthly, yearly := Aggregate(nil)
	if len(monthly) != 0 || len(yearly) != 0 {
		t.Fatalf("expected empty output, got %v %v", monthly, yearly)
	}
}

func TestTotals(t *testing.T) {
	s := Totals(sample())
	if s.Total.Cents != 5499 || s.Count != 5 {
		t.Fatalf("unexpected totals: %+v", s)
	}
}
