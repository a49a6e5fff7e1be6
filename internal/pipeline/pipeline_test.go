package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const header = "Date;Dépense;Revenu;Catégorie;Tiers;Notes\n"

func writeCSV(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestRunEmptyDirectory(t *testing.T) {
	res, err := Run(t.TempDir())
	if err != nil {
		t.Fatalf("empty directory should not be an error: %v", err)
	}
	if len(res.Monthly) != 0 || len(res.Diagnostics) != 0 || !res.Empty() {
		t.Fatalf("expected empty result, got %+v", res)
	}
}

func TestRunMissingDirectory(t *testing.T) {
	if _, err := Run(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("missing directory should be an error")
	}
}

func TestRunOverlappingExports(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "export_2023.csv", header+
		"31/12/2023;10,00;;Food;Alice;\n"+
		"05/01/2024;10,00;;Food;Alice;\n")
	writeCSV(t, dir, "export_2024.csv", header+
		"05/01/2024;10,00;;;Alice;dup\n"+
		"06/01/2024;abc;;Food;Bob;\n"+
		"07/01/2024;4,50;;Transport;Bob;\n")

	res, err := Run(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Transactions) != 3 || res.Duplicates != 1 {
		t.Fatalf("expected 3 unique and 1 duplicate, got %d and %d", len(res.Transactions), res.Duplicates)
	}
	if len(res.Diagnostics) != 1 || res.Diagnostics[0].File != "export_2024.csv" || res.Diagnostics[0].Row != 3 {
		t.Fatalf("unexpected diagnostics: %+v", res.Diagnostics)
	}
	if len(res.Monthly) != 2 {
		t.Fatalf("expected December and January, got %+v", res.Monthly)
	}
	jan := res.Monthly[1]
	if jan.Total.Cents != 1450 || jan.PerCategory["Food"].Cents != 1000 {
		t.Fatalf("unexpected January: %+v", jan)
	}
	if len(res.Files) != 2 || res.Files[1].Skipped != 1 {
		t.Fatalf("unexpected files: %+v", res.Files)
	}
}

func TestRunWithNotesKey(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "a.csv", header+
		"05/01/2024;3,00;;Coffee;Alice;morning\n"+
		"05/01/2024;3,00;;Coffee;Alice;afternoon\n")

	res, err := New(Options{Key: KeyWithNotes}).Run(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Transactions) != 2 {
		t.Fatalf("notes key should keep both rows, got %d", len(res.Transactions))
	}

	res, _ = Run(dir)
	if len(res.Transactions) != 1 {
		t.Fatalf("default key should merge them, got %d", len(res.Transactions))
	}
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "a.csv", header+"01/02/2024;1;;A;Alice;\n")
	writeCSV(t, dir, "b.csv", header+"01/03/2024;2;;B;Bob;\n")

	p := New(Options{})
	res, err := p.RunFile(dir, "b.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Transactions) != 1 || res.Transactions[0].Payer != "Bob" {
		t.Fatalf("unexpected transactions: %+v", res.Transactions)
	}

	if _, err := p.RunFile(dir, "../a.csv/../c.csv"); !errors.Is(err, ErrUnknownFile) {
		t.Fatalf("expected ErrUnknownFile, got %v", err)
	}
	res, err = p.RunFile(dir, "../../a.csv")
	if err != nil || len(res.Transactions) != 1 || res.Transactions[0].Payer != "Alice" {
		t.Fatalf("path components should be dropped, got %+v (%v)", res, err)
	}
}
