package core

import (
	"errors"
	"strings"
	"time"
)

// Unknown replaces blank category and payer labels.
const Unknown = "unknown"

type (
	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// Transaction is one parsed expense row of a source export.
	Transaction struct {
		Date       Date
		Amount     Money
		Category   string
		Payer      string
		Notes      string
		SourceFile string // base name of the CSV file
		SourceRow  int    // 1-based line number, header is row 1
		SourceYear int    // year in the file name, or the date's year
	}

	// Diagnostic describes an input row (or a whole file when Row is 0)
	// that was skipped during loading.
	Diagnostic struct {
		File    string
		Row     int
		Column  string
		Value   string
		Reason  string
		Context map[string]string
	}
)

var (
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyLabel    = errors.New("empty label")
)

// DateLayout is the day-first layout used by the export files.
const DateLayout = "02/01/2006"

// parseLayout also accepts days and months without a leading zero.
const parseLayout = "2/1/2006"

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// Month returns the month
func (d Date) Month() int {
	return int(d.Time.Month())
}

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a d/m/yyyy date, with or without zero padding.
// Out-of-range days such as 31/02 are rejected rather than normalized.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(parseLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

// String formats the date the way the export writes it.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// Label normalizes a free-text label, mapping blanks to Unknown.
func Label(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unknown
	}
	return s
}

func (t Transaction) Validate() error {
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(t.Category) == "" || strings.TrimSpace(t.Payer) == "" {
		return ErrEmptyLabel
	}
	return nil
}
