package http

import (
	"net/url"
	"testing"
)

func TestParseViewParams(t *testing.T) {
	tests := []struct {
		name  string
		query url.Values
		want  ViewParams
	}{
		{
			name:  "all values provided",
			query: url.Values{"year": {"2024"}, "month": {"6"}, "person": {"Alice"}, "category": {"Food"}, "file": {"a.csv"}, "top": {"15"}},
			want:  ViewParams{Year: 2024, Month: 6, Person: "Alice", Category: "Food", File: "a.csv", Top: 15},
		},
		{
			name:  "empty query",
			query: url.Values{},
			want:  ViewParams{},
		},
		{
			name:  "invalid numbers are ignored",
			query: url.Values{"year": {"abc"}, "month": {"13"}, "top": {"x"}},
			want:  ViewParams{},
		},
		{
			name:  "values are trimmed and control characters dropped",
			query: url.Values{"person": {"  Bob\x00 "}, "year": {" 2023 "}},
			want:  ViewParams{Year: 2023, Person: "Bob"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseViewParams(tt.query); got != tt.want {
				t.Errorf("ParseViewParams() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestViewParamsQuery(t *testing.T) {
	p := ViewParams{Year: 2024, Person: "Anne Marie"}
	if got := p.Query(); got != "person=Anne+Marie&year=2024" {
		t.Fatalf("Query() = %q", got)
	}
	if got := (ViewParams{}).Query(); got != "" {
		t.Fatalf("empty params should encode to nothing, got %q", got)
	}
}

func TestPickYear(t *testing.T) {
	years := []int{2022, 2023, 2024}
	if got := pickYear(2023, years); got != 2023 {
		t.Errorf("pickYear(2023) = %d", got)
	}
	if got := pickYear(1999, years); got != 2024 {
		t.Errorf("unknown year should fall back to the latest, got %d", got)
	}
	if got := pickYear(0, nil); got != 0 {
		t.Errorf("no data should give 0, got %d", got)
	}
}

func TestPickMonth(t *testing.T) {
	months := []int{3, 4, 9}
	if got := pickMonth(9, months); got != 9 {
		t.Errorf("pickMonth(9) = %d", got)
	}
	if got := pickMonth(1, months); got != 3 {
		t.Errorf("month without data should fall back to the first, got %d", got)
	}
}

func TestPickOption(t *testing.T) {
	opts := []string{"Alice", "Bob"}
	if got := pickOption("Bob", opts, "Alice"); got != "Bob" {
		t.Errorf("got %q", got)
	}
	if got := pickOption("Eve", opts, ""); got != "" {
		t.Errorf("unknown option should use the fallback, got %q", got)
	}
}

func TestClampTop(t *testing.T) {
	cases := map[int]int{0: 10, 1: 5, 5: 5, 12: 12, 20: 20, 99: 20, -3: 5}
	for in, want := range cases {
		if got := clampTop(in); got != want {
			t.Errorf("clampTop(%d) = %d, want %d", in, got, want)
		}
	}
}
