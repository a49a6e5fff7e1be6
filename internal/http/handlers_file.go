package http

import (
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"depenses/internal/ingest"
	"depenses/internal/pipeline"
)

type payerStatRow struct {
	Payer string
	Sum   string
	Mean  string
	Count int
	Max   string
}

type categoryStatRow struct {
	Category string
	Sum      string
	Mean     string
	Count    int
}

type filePage struct {
	pageBase
	Files      []option
	File       string
	DateRange  string
	Cards      []card
	Count      int
	Balance    *balanceView
	HasDays    bool
	TopOptions []option
	Top        []txRow

	Persons    []option
	Categories []option
	Rows       []txRow

	PayerStats    []payerStatRow
	CategoryStats []categoryStatRow
	Skipped       []diagRow
	FileErrors    []string
	ChartQuery    template.URL
}

// handleFile analyses a single export file, without merging the others.
func (s *Server) handleFile(w http.ResponseWriter, r *http.Request) {
	base := s.base("file.title", "file")
	files, err := ingest.ListFiles(s.dataDir)
	if err != nil {
		s.pipelineFailed(w, r, base, err)
		return
	}
	if len(files) == 0 {
		s.renderNotice(w, r, http.StatusOK, base, s.tr.T("errors.no_files"))
		return
	}

	params := ParseViewParams(r.URL.Query())
	if params.File != "" && pickOption(params.File, files, "") == "" {
		s.renderNotice(w, r, http.StatusNotFound, base, s.tr.T("errors.unknown_file", "filename", params.File))
		return
	}
	file := pickOption(params.File, files, files[0])

	res, err := s.fileResult(r.Context(), file)
	if errors.Is(err, pipeline.ErrUnknownFile) {
		s.renderNotice(w, r, http.StatusNotFound, base, s.tr.T("errors.unknown_file", "filename", file))
		return
	}
	if err != nil {
		s.pipelineFailed(w, r, base, err)
		return
	}

	page := filePage{
		pageBase:   base,
		Files:      s.stringOptions(files, file, false),
		File:       file,
		Skipped:    diagRows(res.Diagnostics),
		FileErrors: s.fileErrors(res),
		ChartQuery: template.URL(ViewParams{File: file}.Query()),
	}
	if res.Empty() {
		page.Notice = s.tr.T("errors.could_not_load", "filename", file)
		s.render(w, r, http.StatusOK, "file.html", page)
		return
	}

	txs := res.Transactions
	first, last, _ := pipeline.DateRange(txs)
	page.DateRange = s.tr.T("file.date_range", "start", first.String(), "end", last.String())
	page.HasDays = pipeline.SpanDays(first, last) > 1

	total := pipeline.Totals(txs)
	page.Cards = s.totalCards(total)
	page.Count = total.Count
	page.Balance = s.balance(total.PerPayer, "file")

	top := clampTop(params.Top)
	page.Top = s.txRows(pipeline.TopN(txs, top))
	for n := minTop; n <= maxTop; n += 5 {
		page.TopOptions = append(page.TopOptions, option{Value: strconv.Itoa(n), Label: strconv.Itoa(n), Selected: n == top})
	}

	persons := pipeline.Payers(txs)
	categories := pipeline.Categories(txs)
	person := pickOption(params.Person, persons, "")
	category := pickOption(params.Category, categories, "")
	page.Persons = s.stringOptions(persons, person, true)
	page.Categories = s.stringOptions(categories, category, true)
	page.Rows = s.txRows(pipeline.ByDate(pipeline.Filter{Payer: person, Category: category}.Apply(txs)))

	for _, st := range pipeline.PayerStats(txs) {
		page.PayerStats = append(page.PayerStats, payerStatRow{
			Payer: st.Payer,
			Sum:   s.tr.Money(st.Sum),
			Mean:  s.tr.Money(st.Mean),
			Count: st.Count,
			Max:   s.tr.Money(st.Max),
		})
	}
	for _, st := range pipeline.CategoryStats(txs) {
		page.CategoryStats = append(page.CategoryStats, categoryStatRow{
			Category: st.Category,
			Sum:      s.tr.Money(st.Sum),
			Mean:     s.tr.Money(st.Mean),
			Count:    st.Count,
		})
	}

	s.render(w, r, http.StatusOK, "file.html", page)
}
