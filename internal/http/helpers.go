package http

import (
	"bytes"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"depenses/internal/core"
	"depenses/internal/log"
	"depenses/internal/middleware/trace"
	"depenses/internal/pipeline"
)

// sanitizeInput removes potentially dangerous characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	result := strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
	return result
}

func (s *Server) templateFuncs() template.FuncMap {
	return template.FuncMap{
		"t":     s.tr.T,
		"money": s.tr.Money,
		"month": s.tr.MonthName,
		"num":   s.tr.Number,
	}
}

// pageBase carries what the layout needs on every page.
type pageBase struct {
	Title  string
	Active string
	Lang   string
	// Notice replaces the page body: an empty state or a fatal error.
	Notice string
}

func (s *Server) base(titleKey, active string) pageBase {
	return pageBase{Title: s.tr.T(titleKey), Active: active, Lang: s.tr.Lang()}
}

type card struct {
	Label string
	Value string
}

type option struct {
	Value    string
	Label    string
	Selected bool
}

type txRow struct {
	Date     string
	Category string
	Payer    string
	Amount   string
	Notes    string
	File     string
	Row      int
	Negative bool
}

type diagRow struct {
	File   string
	Row    int
	Column string
	Value  string
	Reason string
}

type shareRow struct {
	Payer     string
	Amount    string
	Share     string
	Deviation string
}

type balanceView struct {
	Text   string
	Lines  []string
	Shares []shareRow
}

func (s *Server) txRows(txs []core.Transaction) []txRow {
	rows := make([]txRow, len(txs))
	for i, tx := range txs {
		rows[i] = txRow{
			Date:     tx.Date.String(),
			Category: tx.Category,
			Payer:    tx.Payer,
			Amount:   s.tr.Money(tx.Amount),
			Notes:    tx.Notes,
			File:     tx.SourceFile,
			Row:      tx.SourceRow,
			Negative: tx.Amount.Cents < 0,
		}
	}
	return rows
}

// diagRows lists skipped rows; file-level problems are reported separately.
func diagRows(diags []core.Diagnostic) []diagRow {
	var rows []diagRow
	for _, d := range diags {
		if d.Row == 0 {
			continue
		}
		rows = append(rows, diagRow{File: d.File, Row: d.Row, Column: d.Column, Value: d.Value, Reason: d.Reason})
	}
	return rows
}

// fileErrors lists the files that could not be loaded at all.
func (s *Server) fileErrors(res pipeline.Result) []string {
	var out []string
	for _, f := range res.Files {
		if f.Err != nil {
			out = append(out, s.tr.T("errors.file_failed", "filename", f.Name, "reason", f.Err.Error()))
		}
	}
	return out
}

// totalCards shows the overall total followed by one card per payer.
func (s *Server) totalCards(total core.MonthlySummary) []card {
	cards := []card{{Label: s.tr.T("common.total"), Value: s.tr.Money(total.Total)}}
	for _, ca := range core.SortedAmounts(total.PerPayer) {
		cards = append(cards, card{Label: ca.Name, Value: s.tr.Money(ca.Amount)})
	}
	return cards
}

// balance describes who owes whom. prefix selects the page's wording
// ("overview" or "file"). Fewer than two payers have nothing to compare.
func (s *Server) balance(perPayer map[string]core.Money, prefix string) *balanceView {
	if len(perPayer) < 2 {
		return nil
	}
	b := pipeline.ComputeBalance(perPayer)
	view := &balanceView{}
	for _, sh := range b.Shares {
		view.Shares = append(view.Shares, shareRow{
			Payer:     sh.Payer,
			Amount:    s.tr.Money(sh.Amount),
			Share:     pipeline.SharePercent(sh.Share) + " %",
			Deviation: s.tr.Money(sh.Deviation),
		})
	}

	switch {
	case b.Settlement != nil:
		text := s.tr.T(prefix+".owes",
			"debtor", b.Settlement.Debtor,
			"creditor", b.Settlement.Creditor,
			"amount", s.tr.Money(b.Settlement.Amount))
		view.Text = s.tr.T(prefix+".balance", "text", text)
	case b.Balanced():
		view.Text = s.tr.T(prefix+".balance", "text", s.tr.T(prefix+".balanced"))
	default:
		for _, sh := range b.Shares {
			switch {
			case sh.Deviation.Cents > 0:
				view.Lines = append(view.Lines, s.tr.T("overview.spent_more", "person", sh.Payer, "amount", s.tr.Money(sh.Deviation)))
			case sh.Deviation.Cents < 0:
				view.Lines = append(view.Lines, s.tr.T("overview.spent_less", "person", sh.Payer, "amount", s.tr.Money(core.Money{Cents: -sh.Deviation.Cents})))
			}
		}
	}
	return view
}

func (s *Server) yearOptions(years []int, selected int) []option {
	out := make([]option, 0, len(years))
	for i := len(years) - 1; i >= 0; i-- {
		y := years[i]
		out = append(out, option{Value: strconv.Itoa(y), Label: strconv.Itoa(y), Selected: y == selected})
	}
	return out
}

func (s *Server) monthOptions(months []int, selected int) []option {
	out := make([]option, 0, len(months))
	for _, m := range months {
		out = append(out, option{Value: strconv.Itoa(m), Label: s.tr.MonthName(m), Selected: m == selected})
	}
	return out
}

// stringOptions lists values, optionally preceded by an "all" entry with an
// empty value.
func (s *Server) stringOptions(values []string, selected string, withAll bool) []option {
	out := make([]option, 0, len(values)+1)
	if withAll {
		out = append(out, option{Value: "", Label: s.tr.T("common.all"), Selected: selected == ""})
	}
	for _, v := range values {
		out = append(out, option{Value: v, Label: v, Selected: v == selected})
	}
	return out
}

// render executes a page template into a buffer first so a template
// failure never sends a half-written page.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	if s.templates == nil {
		log.FromContext(r.Context()).Error("Templates not loaded", log.FieldPath, r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		s.sl.LogError(r.Context(), "Template execution failed", err, log.ComponentTemplate, log.OpRender,
			log.NewFields().
				WithRequestID(trace.GetRequestID(r.Context())).
				WithHTTPRequest(r.Method, r.URL.Path, r.URL.RawQuery))
		InternalServerError("template rendering failed").Write(w)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// renderNotice renders a page whose body is a single message.
func (s *Server) renderNotice(w http.ResponseWriter, r *http.Request, status int, base pageBase, message string) {
	base.Notice = message
	s.render(w, r, status, "notice.html", base)
}

// pipelineFailed reports a fatal pipeline error once, as a page.
func (s *Server) pipelineFailed(w http.ResponseWriter, r *http.Request, base pageBase, err error) {
	s.sl.LogError(r.Context(), "Pipeline failed", err, log.ComponentPipeline, log.OpLoad,
		log.NewFields().
			WithRequestID(trace.GetRequestID(r.Context())).
			WithHTTPRequest(r.Method, r.URL.Path, r.URL.RawQuery))
	s.renderNotice(w, r, http.StatusInternalServerError, base, s.tr.T("errors.pipeline", "reason", err.Error()))
}
