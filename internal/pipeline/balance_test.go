package pipeline

import (
	"testing"

	"depenses/internal/core"
)

func TestComputeBalanceTwoPayers(t *testing.T) {
	b := ComputeBalance(map[string]core.Money{
		"Alice": {Cents: 30000},
		"Bob":   {Cents: 10000},
	})
	if b.Total.Cents != 40000 || b.Mean.Cents != 20000 {
		t.Fatalf("unexpected total/mean: %+v", b)
	}
	if b.Settlement == nil {
		t.Fatal("expected a settlement")
	}
	if b.Settlement.Debtor != "Bob" || b.Settlement.Creditor != "Alice" || b.Settlement.Amount.Cents != 10000 {
		t.Fatalf("unexpected settlement: %+v", b.Settlement)
	}
	if b.Shares[0].Payer != "Alice" || SharePercent(b.Shares[0].Share) != "75.0" {
		t.Fatalf("unexpected first share: %+v", b.Shares[0])
	}
	if b.Shares[1].Deviation.Cents != -10000 {
		t.Fatalf("unexpected deviation: %+v", b.Shares[1])
	}
}

func TestComputeBalanceEven(t *testing.T) {
	b := ComputeBalance(map[string]core.Money{"Alice": {Cents: 500}, "Bob": {Cents: 500}})
	if !b.Balanced() {
		t.Fatalf("equal spending should be balanced: %+v", b.Settlement)
	}
	three := ComputeBalance(map[string]core.Money{"Alice": {Cents: 300}, "Bob": {Cents: 300}, "Carol": {Cents: 300}})
	if !three.Balanced() {
		t.Fatalf("equal spending of three payers should be balanced: %+v", three.Shares)
	}
	if ComputeBalance(map[string]core.Money{"Alice": {Cents: 501}, "Bob": {Cents: 500}}).Balanced() {
		t.Fatal("a one cent difference is not balanced")
	}
}

func TestComputeBalanceOddCent(t *testing.T) {
	b := ComputeBalance(map[string]core.Money{"Alice": {Cents: 101}, "Bob": {Cents: 100}})
	if b.Settlement == nil || b.Settlement.Amount.Cents != 1 {
		t.Fatalf("half a cent should round up to one cent: %+v", b.Settlement)
	}
}

func TestComputeBalanceManyPayers(t *testing.T) {
	b := ComputeBalance(map[string]core.Money{
		"Alice": {Cents: 900},
		"Bob":   {Cents: 600},
		"Carol": {Cents: 0},
	})
	if b.Settlement != nil {
		t.Fatal("no settlement with more than two payers")
	}
	if b.Balanced() {
		t.Fatal("uneven spending without a settlement is not balanced")
	}
	if b.Mean.Cents != 500 {
		t.Fatalf("unexpected mean %s", b.Mean)
	}
	want := map[string]int64{"Alice": 400, "Bob": 100, "Carol": -500}
	for _, s := range b.Shares {
		if s.Deviation.Cents != want[s.Payer] {
			t.Fatalf("%s: deviation %d, want %d", s.Payer, s.Deviation.Cents, want[s.Payer])
		}
	}
}

func TestComputeBalanceEmptyAndZero(t *testing.T) {
	if b := ComputeBalance(nil); len(b.Shares) != 0 || b.Settlement != nil {
		t.Fatalf("expected empty balance, got %+v", b)
	}
	b := ComputeBalance(map[string]core.Money{"Alice": {}})
	if !b.Shares[0].Share.IsZero() {
		t.Fatalf("zero total should give zero share, got %s", b.Shares[0].Share)
	}
}
