package http

import (
	"html/template"
	"net/http"
	"strconv"

	"depenses/internal/pipeline"
)

type overviewPage struct {
	pageBase
	Years  []option
	Months []option
	Year   int
	Month  int

	YearCards    []card
	Balance      *balanceView
	MonthCards   []card
	MonthBalance *balanceView
	MonthRows    []txRow

	ChartQuery template.URL
	Skipped    []diagRow
	FileErrors []string
	Duplicates int
}

// handleOverview renders the yearly overview with a detailed month view.
func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	base := s.base("overview.title", "overview")
	res, err := s.result(r.Context())
	if err != nil {
		s.pipelineFailed(w, r, base, err)
		return
	}
	if res.Empty() {
		s.renderNotice(w, r, http.StatusOK, base, s.tr.T("errors.no_data"))
		return
	}

	params := ParseViewParams(r.URL.Query())
	years := pipeline.Years(res.Transactions)
	year := pickYear(params.Year, years)
	yearTxs := pipeline.Filter{Year: year}.Apply(res.Transactions)

	var months []int
	for _, m := range res.Monthly {
		if m.Year == year {
			months = append(months, m.Month)
		}
	}
	month := pickMonth(params.Month, months)

	page := overviewPage{
		pageBase:   base,
		Years:      s.yearOptions(years, year),
		Months:     s.monthOptions(months, month),
		Year:       year,
		Month:      month,
		ChartQuery: template.URL("year=" + strconv.Itoa(year)),
		Skipped:    diagRows(res.Diagnostics),
		FileErrors: s.fileErrors(res),
		Duplicates: res.Duplicates,
	}

	yearTotals := pipeline.Totals(yearTxs)
	page.YearCards = s.totalCards(yearTotals)
	page.Balance = s.balance(yearTotals.PerPayer, "overview")

	for _, m := range res.Monthly {
		if m.Year == year && m.Month == month {
			page.MonthCards = s.totalCards(m)
			page.MonthBalance = s.balance(m.PerPayer, "overview")
			break
		}
	}
	page.MonthRows = s.txRows(pipeline.MonthTransactions(yearTxs, year, month))

	s.render(w, r, http.StatusOK, "overview.html", page)
}
