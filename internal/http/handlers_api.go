package http

import (
	"net/http"

	"depenses/internal/core"
	"depenses/internal/log"
)

type amountJSON struct {
	Cents int64  `json:"cents"`
	Value string `json:"value"`
}

type monthJSON struct {
	Year        int                   `json:"year"`
	Month       int                   `json:"month"`
	Total       amountJSON            `json:"total"`
	Count       int                   `json:"count"`
	PerCategory map[string]amountJSON `json:"per_category"`
	PerPayer    map[string]amountJSON `json:"per_payer"`
}

type yearJSON struct {
	Year        int                   `json:"year"`
	Total       amountJSON            `json:"total"`
	Count       int                   `json:"count"`
	PerCategory map[string]amountJSON `json:"per_category"`
	PerPayer    map[string]amountJSON `json:"per_payer"`
}

type summariesJSON struct {
	Months       []monthJSON `json:"months"`
	Years        []yearJSON  `json:"years"`
	Transactions int         `json:"transactions"`
	Duplicates   int         `json:"duplicates"`
	Skipped      int         `json:"skipped"`
}

type diagnosticJSON struct {
	File    string            `json:"file"`
	Row     int               `json:"row"`
	Column  string            `json:"column,omitempty"`
	Value   string            `json:"value,omitempty"`
	Reason  string            `json:"reason"`
	Context map[string]string `json:"context,omitempty"`
}

func amount(m core.Money) amountJSON {
	return amountJSON{Cents: m.Cents, Value: m.String()}
}

func amounts(m map[string]core.Money) map[string]amountJSON {
	out := make(map[string]amountJSON, len(m))
	for k, v := range m {
		out[k] = amount(v)
	}
	return out
}

// handleSummaries returns the monthly and yearly summaries as JSON.
// ?year= restricts the output to one year.
func (s *Server) handleSummaries(w http.ResponseWriter, r *http.Request) {
	res, err := s.result(r.Context())
	if err != nil {
		log.FromContext(r.Context()).Error("Summaries failed", log.FieldError, err)
		JSONError(http.StatusInternalServerError, err.Error()).Write(w)
		return
	}

	year := ParseViewParams(r.URL.Query()).Year
	out := summariesJSON{
		Months:       []monthJSON{},
		Years:        []yearJSON{},
		Transactions: len(res.Transactions),
		Duplicates:   res.Duplicates,
		Skipped:      len(diagRows(res.Diagnostics)),
	}
	for _, m := range res.Monthly {
		if year != 0 && m.Year != year {
			continue
		}
		out.Months = append(out.Months, monthJSON{
			Year:        m.Year,
			Month:       m.Month,
			Total:       amount(m.Total),
			Count:       m.Count,
			PerCategory: amounts(m.PerCategory),
			PerPayer:    amounts(m.PerPayer),
		})
	}
	for _, y := range res.Yearly {
		if year != 0 && y.Year != year {
			continue
		}
		out.Years = append(out.Years, yearJSON{
			Year:        y.Year,
			Total:       amount(y.Total),
			Count:       y.Count,
			PerCategory: amounts(y.PerCategory),
			PerPayer:    amounts(y.PerPayer),
		})
	}
	NewResponse().NoCache().JSON(out).Write(w)
}

// handleDiagnostics lists every skipped row and unreadable file.
func (s *Server) handleDiagnostics(w http.ResponseWriter, r *http.Request) {
	res, err := s.result(r.Context())
	if err != nil {
		log.FromContext(r.Context()).Error("Diagnostics failed", log.FieldError, err)
		JSONError(http.StatusInternalServerError, err.Error()).Write(w)
		return
	}
	out := make([]diagnosticJSON, 0, len(res.Diagnostics))
	for _, d := range res.Diagnostics {
		out = append(out, diagnosticJSON{
			File:    d.File,
			Row:     d.Row,
			Column:  d.Column,
			Value:   d.Value,
			Reason:  d.Reason,
			Context: d.Context,
		})
	}
	NewResponse().NoCache().JSON(out).Write(w)
}
