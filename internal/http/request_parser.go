package http

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
)

const (
	defaultTop = 10
	minTop     = 5
	maxTop     = 20
)

// ViewParams holds the dashboard filters found in the query string.
// Missing or malformed values are left at their zero value, to be
// resolved against the data with the pick helpers.
type ViewParams struct {
	Year     int
	Month    int
	Person   string
	Category string
	File     string
	Top      int
}

// ParseViewParams extracts the dashboard filters from query parameters.
func ParseViewParams(query url.Values) ViewParams {
	p := ViewParams{
		Year:     atoi(query.Get("year")),
		Month:    atoi(query.Get("month")),
		Person:   sanitizeInput(query.Get("person")),
		Category: sanitizeInput(query.Get("category")),
		File:     sanitizeInput(query.Get("file")),
		Top:      atoi(query.Get("top")),
	}
	if p.Month < 1 || p.Month > 12 {
		p.Month = 0
	}
	return p
}

// Query renders the params back into a query string, skipping zero values.
func (p ViewParams) Query() string {
	v := url.Values{}
	if p.Year != 0 {
		v.Set("year", strconv.Itoa(p.Year))
	}
	if p.Month != 0 {
		v.Set("month", strconv.Itoa(p.Month))
	}
	if p.Person != "" {
		v.Set("person", p.Person)
	}
	if p.Category != "" {
		v.Set("category", p.Category)
	}
	if p.File != "" {
		v.Set("file", p.File)
	}
	if p.Top != 0 {
		v.Set("top", strconv.Itoa(p.Top))
	}
	return v.Encode()
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// pickYear returns requested when it has data, else the latest year.
// years must be ascending.
func pickYear(requested int, years []int) int {
	if len(years) == 0 {
		return 0
	}
	if slices.Contains(years, requested) {
		return requested
	}
	return years[len(years)-1]
}

// pickMonth returns requested when it has data, else the first month.
func pickMonth(requested int, months []int) int {
	if len(months) == 0 {
		return 0
	}
	if slices.Contains(months, requested) {
		return requested
	}
	return months[0]
}

// pickOption returns requested when it is one of options, else fallback.
func pickOption(requested string, options []string, fallback string) string {
	if slices.Contains(options, requested) {
		return requested
	}
	return fallback
}

// clampTop bounds the number of top expenses shown.
func clampTop(n int) int {
	switch {
	case n == 0:
		return defaultTop
	case n < minTop:
		return minTop
	case n > maxTop:
		return maxTop
	}
	return n
}
