package pipeline

import (
	"reflect"
	"testing"

	"depenses/internal/core"
)

func tx(y, m, d int, cents int64, category, payer string) core.Transaction {
	return core.Transaction{
		Date:     core.NewDate(y, m, d),
		Amount:   core.Money{Cents: cents},
		Category: core.Label(category),
		Payer:    core.Label(payer),
	}
}

func TestDedupeSameDateAmountPayer(t *testing.T) {
	in := []core.Transaction{
		tx(2024, 1, 5, 1000, "Food", "Alice"),
		tx(2024, 1, 5, 1000, "", "Alice"),
	}
	out := Dedupe(in)
	if len(out) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(out))
	}
	if out[0].Category != "Food" {
		t.Fatalf("first occurrence should be kept, got %+v", out[0])
	}
}

func TestDedupeKeepsDistinct(t *testing.T) {
	in := []core.Transaction{
		tx(2024, 1, 5, 1000, "Food", "Alice"),
		tx(2024, 1, 5, 1000, "Food", "Bob"),
		tx(2024, 1, 6, 1000, "Food", "Alice"),
		tx(2024, 1, 5, 1001, "Food", "Alice"),
	}
	if out := Dedupe(in); len(out) != len(in) {
		t.Fatalf("expected all %d kept, got %d", len(in), len(out))
	}
}

func TestDedupeIdempotent(t *testing.T) {
	in := []core.Transaction{
		tx(2024, 1, 5, 1000, "Food", "Alice"),
		tx(2024, 1, 5, 1000, "Rent", "Alice"),
		tx(2024, 2, 1, 500, "Food", "Bob"),
		tx(2024, 2, 1, 500, "Food", "Bob"),
		tx(2023, 12, 31, 42, "Gifts", "Alice"),
	}
	once := Dedupe(in)
	twice := Dedupe(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("dedupe is not idempotent:\n%+v\n%+v", once, twice)
	}
	if len(once) != 3 {
		t.Fatalf("expected 3 unique transactions, got %d", len(once))
	}
}

func TestDedupeDoesNotModifyInput(t *testing.T) {
	in := []core.Transaction{
		tx(2024, 1, 5, 1000, "Food", "Alice"),
		tx(2024, 1, 5, 1000, "Food", "Alice"),
	}
	before := append([]core.Transaction(nil), in...)
	_ = Dedupe(in)
	if !reflect.DeepEqual(in, before) {
		t.Fatal("input slice was modified")
	}
}

func TestDedupeWithNotes(t *testing.T) {
	a := tx(2024, 1, 5, 1000, "Food", "Alice")
	b := a
	b.Notes = "second coffee"

	if got := DedupeBy([]core.Transaction{a, b}, KeyWithNotes); len(got) != 2 {
		t.Fatalf("notes key should keep both, got %d", len(got))
	}
	if got := DedupeBy([]core.Transaction{a, a}, KeyWithNotes); len(got) != 1 {
		t.Fatalf("notes key should still drop exact copies, got %d", len(got))
	}
}

func TestKeyByName(t *testing.T) {
	a := tx(2024, 1, 5, 1000, "Food", "Alice")
	b := a
	b.Notes = "x"
	if KeyByName("notes")(a) == KeyByName("notes")(b) {
		t.Fatal("notes key should include notes")
	}
	for _, name := range []string{"", "payer", "whatever"} {
		if KeyByName(name)(a) != KeyByName(name)(b) {
			t.Fatalf("%q should select the default key", name)
		}
	}
}

func TestDedupeEmpty(t *testing.T) {
	if out := Dedupe(nil); len(out) != 0 {
		t.Fatalf("expected empty, got %d", len(out))
	}
}
