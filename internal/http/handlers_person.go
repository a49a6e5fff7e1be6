package http

import (
	"html/template"
	"net/http"

	"depenses/internal/pipeline"
)

type personPage struct {
	pageBase
	Persons    []option
	Years      []option
	Categories []option
	Person     string
	Year       int

	Total   string
	Count   int
	Average string

	Top        []txRow
	Rows       []txRow
	ChartQuery template.URL
}

// handlePerson renders one payer's spending for a year, optionally
// narrowed to a category.
func (s *Server) handlePerson(w http.ResponseWriter, r *http.Request) {
	base := s.base("person.title", "person")
	res, err := s.result(r.Context())
	if err != nil {
		s.pipelineFailed(w, r, base, err)
		return
	}
	if res.Empty() {
		s.renderNotice(w, r, http.StatusOK, base, s.tr.T("errors.no_data"))
		return
	}
	persons := pipeline.Payers(res.Transactions)
	if len(persons) == 0 {
		s.renderNotice(w, r, http.StatusOK, base, s.tr.T("errors.no_persons"))
		return
	}

	params := ParseViewParams(r.URL.Query())
	person := pickOption(params.Person, persons, persons[0])
	years := pipeline.Years(res.Transactions)
	year := pickYear(params.Year, years)
	categories := pipeline.Categories(res.Transactions)
	category := pickOption(params.Category, categories, "")

	txs := pipeline.Filter{Year: year, Category: category, Payer: person}.Apply(res.Transactions)
	total := pipeline.Totals(txs)

	page := personPage{
		pageBase:   base,
		Persons:    s.stringOptions(persons, person, false),
		Years:      s.yearOptions(years, year),
		Categories: s.stringOptions(categories, category, true),
		Person:     person,
		Year:       year,
		Total:      s.tr.Money(total.Total),
		Count:      total.Count,
		Average:    s.tr.Money(pipeline.Mean(txs)),
		Top:        s.txRows(pipeline.TopN(txs, defaultTop)),
		Rows:       s.txRows(pipeline.ByDate(txs)),
		ChartQuery: template.URL(ViewParams{Year: year, Person: person, Category: category}.Query()),
	}

	s.render(w, r, http.StatusOK, "person.html", page)
}
