package http

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"

	"depenses/internal/charts"
	"depenses/internal/core"
	"depenses/internal/ingest"
	"depenses/internal/log"
	"depenses/internal/pipeline"
)

// chartScope selects which transactions a chart draws.
type chartScope int

const (
	// scopeYear: one year of every payer, optionally one category.
	scopeYear chartScope = iota
	// scopePerson: scopeYear narrowed to one payer.
	scopePerson
	// scopeFile: every transaction of one file.
	scopeFile
)

type chartInput struct {
	txs     []core.Transaction
	monthly []core.MonthlySummary
	year    int
}

type chartSpec struct {
	scope chartScope
	title string
	draw  func(s *Server, w io.Writer, opts charts.Options, in chartInput) error
}

func chartSpecs() map[string]chartSpec {
	return map[string]chartSpec{
		"monthly":           {scopeYear, "overview.total_per_month", drawMonthTotals},
		"payers-monthly":    {scopeYear, "overview.expenses_per_person_month", drawPayersMonthly},
		"cumulative":        {scopeYear, "overview.cumulative_per_person", drawCumulative},
		"categories":        {scopeYear, "overview.distribution_by_category", drawCategoryPie},
		"person-comparison": {scopeYear, "person.comparison", drawPayerBars},
		"person-monthly":    {scopePerson, "person.monthly_breakdown", drawMonthTotals},
		"person-categories": {scopePerson, "person.category_distribution", drawCategoryPie},
		"person-category":   {scopePerson, "person.expenses_by_category", drawCategoryBars},
		"person-evolution":  {scopePerson, "person.category_evolution", drawCategoriesMonthly},
		"file-payers":       {scopeFile, "file.total_by_person", drawPayerBars},
		"file-categories":   {scopeFile, "file.category_distribution", drawCategoryPie},
		"file-category":     {scopeFile, "file.expenses_by_category", drawCategoryBars},
		"file-shares":       {scopeFile, "file.expenses_by_cat_person", drawShares},
		"file-daily":        {scopeFile, "file.daily_expenses", drawDaily},
		"file-cumulative":   {scopeFile, "file.cumulative_per_person", drawCumulative},
	}
}

// handleChart renders /charts/{name}.svg. Charts without data render a
// placeholder image so the page layout stays intact.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSuffix(r.PathValue("name"), ".svg")
	spec, ok := s.charts[name]
	if !ok {
		NotFoundError("unknown chart").Write(w)
		return
	}

	params := ParseViewParams(r.URL.Query())
	in, err := s.chartInput(r, spec.scope, params)
	switch {
	case errors.Is(err, pipeline.ErrUnknownFile):
		NotFoundError(s.tr.T("errors.unknown_file", "filename", params.File)).Write(w)
		return
	case err != nil:
		s.sl.LogError(r.Context(), "Chart data failed", err, log.ComponentCharts, log.OpLoad,
			log.NewFields().WithHTTPRequest(r.Method, r.URL.Path, r.URL.RawQuery))
		InternalServerError(s.tr.T("errors.pipeline", "reason", err.Error())).Write(w)
		return
	}

	opts := charts.Options{Title: s.tr.T(spec.title), Format: s.tr.Money}
	var buf bytes.Buffer
	err = spec.draw(s, &buf, opts, in)
	if errors.Is(err, charts.ErrNoData) {
		buf.Reset()
		writePlaceholder(&buf, opts, s.tr.T("errors.no_data_filters"))
		err = nil
	}
	if err != nil {
		s.sl.LogError(r.Context(), "Chart rendering failed", err, log.ComponentCharts, log.OpRender,
			log.NewFields().WithHTTPRequest(r.Method, r.URL.Path, r.URL.RawQuery))
		InternalServerError("chart rendering failed").Write(w)
		return
	}
	NewResponse().NoCache().SVG(buf.Bytes()).Write(w)
}

func (s *Server) chartInput(r *http.Request, scope chartScope, p ViewParams) (chartInput, error) {
	if scope == scopeFile {
		file := p.File
		if file == "" {
			files, err := ingest.ListFiles(s.dataDir)
			if err != nil {
				return chartInput{}, err
			}
			if len(files) == 0 {
				return chartInput{}, nil
			}
			file = files[0]
		}
		res, err := s.fileResult(r.Context(), file)
		if err != nil {
			return chartInput{}, err
		}
		return chartInput{txs: res.Transactions, monthly: res.Monthly}, nil
	}

	res, err := s.result(r.Context())
	if err != nil {
		return chartInput{}, err
	}
	year := pickYear(p.Year, pipeline.Years(res.Transactions))
	f := pipeline.Filter{Year: year, Category: p.Category}
	if scope == scopePerson {
		f.Payer = p.Person
	}
	txs := f.Apply(res.Transactions)
	monthly := res.Monthly
	if f.Category != "" || f.Payer != "" {
		monthly, _ = pipeline.Aggregate(txs)
	}
	return chartInput{txs: txs, monthly: monthly, year: year}, nil
}

func (s *Server) monthLabels() []string {
	labels := make([]string, 12)
	for i := range labels {
		name := []rune(s.tr.MonthName(i + 1))
		if len(name) > 3 {
			name = name[:3]
		}
		labels[i] = string(name)
	}
	return labels
}

func drawMonthTotals(s *Server, w io.Writer, opts charts.Options, in chartInput) error {
	labels := s.monthLabels()
	months := pipeline.FillMonths(in.monthly, in.year)
	items := make([]core.CategoryAmount, len(months))
	for i, m := range months {
		items[i] = core.CategoryAmount{Name: labels[i], Amount: m.Total}
	}
	return charts.Bars(w, opts, items)
}

func drawPayersMonthly(s *Server, w io.Writer, opts charts.Options, in chartInput) error {
	months := pipeline.FillMonths(in.monthly, in.year)
	return charts.MonthlyLines(w, opts, s.monthLabels(), pipeline.PayerMonthly(months, pipeline.Payers(in.txs)))
}

func drawCategoriesMonthly(s *Server, w io.Writer, opts charts.Options, in chartInput) error {
	months := pipeline.FillMonths(in.monthly, in.year)
	return charts.MonthlyLines(w, opts, s.monthLabels(), pipeline.CategoryMonthly(months, pipeline.Categories(in.txs)))
}

func drawCumulative(_ *Server, w io.Writer, opts charts.Options, in chartInput) error {
	return charts.TimeLines(w, opts, pipeline.CumulativeByPayer(in.txs))
}

func drawDaily(_ *Server, w io.Writer, opts charts.Options, in chartInput) error {
	return charts.TimeLines(w, opts, pipeline.DailyByPayer(in.txs))
}

func drawCategoryPie(_ *Server, w io.Writer, opts charts.Options, in chartInput) error {
	return charts.Pie(w, opts, core.SortedAmounts(pipeline.Totals(in.txs).PerCategory))
}

func drawCategoryBars(_ *Server, w io.Writer, opts charts.Options, in chartInput) error {
	return charts.Bars(w, opts, core.SortedAmounts(pipeline.Totals(in.txs).PerCategory))
}

func drawPayerBars(_ *Server, w io.Writer, opts charts.Options, in chartInput) error {
	return charts.Bars(w, opts, core.SortedAmounts(pipeline.Totals(in.txs).PerPayer))
}

func drawShares(_ *Server, w io.Writer, opts charts.Options, in chartInput) error {
	return charts.Shares(w, opts, pipeline.CategoryByPayer(in.txs))
}

// writePlaceholder draws an empty frame with a centred message.
func writePlaceholder(w io.Writer, opts charts.Options, message string) {
	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = charts.DefaultWidth
	}
	if height <= 0 {
		height = charts.DefaultHeight
	}
	fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+
		`<rect width="100%%" height="100%%" fill="#f7f7f7" stroke="#dddddd"/>`+
		`<text x="50%%" y="50%%" text-anchor="middle" font-family="sans-serif" font-size="14" fill="#777777">%s</text>`+
		`</svg>`,
		width, height, width, height, template.HTMLEscapeString(message))
}
