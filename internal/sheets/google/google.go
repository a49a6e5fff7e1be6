package google

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"depenses/internal/core"
	"depenses/internal/log"
	ports "depenses/internal/sheets"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

// clearRange covers every column a summary sheet can use.
const clearRange = "A:ZZ"

// Credentials names where the service account key comes from. The first
// non-empty field wins.
type Credentials struct {
	JSON            string // GOOGLE_SERVICE_ACCOUNT_JSON
	File            string // GOOGLE_SERVICE_ACCOUNT_FILE
	ApplicationFile string // GOOGLE_APPLICATION_CREDENTIALS
}

// Exporter writes monthly summaries to one sheet of a spreadsheet.
type Exporter struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheet         string
	logger        *log.Logger
}

// Ensure interface conformance
var _ ports.SummaryWriter = (*Exporter)(nil)

// NewExporter creates a Sheets exporter authenticated with a service account.
func NewExporter(ctx context.Context, spreadsheetID, sheet string, creds Credentials, logger *log.Logger) (*Exporter, error) {
	spreadsheetID = strings.TrimSpace(spreadsheetID)
	if spreadsheetID == "" {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}
	if logger == nil {
		logger = log.Discard()
	}
	logger = logger.WithComponent(log.ComponentSheets)

	svc, err := newSheetsService(ctx, creds, logger)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return NewExporterWithService(svc, spreadsheetID, sheet, logger), nil
}

// NewExporterWithService wraps an existing service, e.g. one pointed at a
// test endpoint.
func NewExporterWithService(svc *gsheet.Service, spreadsheetID, sheet string, logger *log.Logger) *Exporter {
	if logger == nil {
		logger = log.Discard()
	}
	sheet = strings.TrimSpace(sheet)
	if sheet == "" {
		sheet = "Summary"
	}
	return &Exporter{svc: svc, spreadsheetID: spreadsheetID, sheet: sheet, logger: logger}
}

// ForYear returns an exporter targeting "<year> <sheet>".
func (e *Exporter) ForYear(year int) *Exporter {
	c := *e
	c.sheet = yearPrefixedName(e.sheet, year)
	return &c
}

// Sheet returns the target sheet name.
func (e *Exporter) Sheet() string {
	return e.sheet
}

// credentialsJSON resolves the service account key.
func credentialsJSON(creds Credentials) ([]byte, error) {
	if s := strings.TrimSpace(creds.JSON); s != "" {
		return []byte(s), nil
	}
	file := strings.TrimSpace(creds.File)
	if file == "" {
		file = strings.TrimSpace(creds.ApplicationFile)
	}
	if file == "" {
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read service account file: %w", err)
	}
	return b, nil
}

// newSheetsService initializes a Sheets Service using Service Account credentials.
func newSheetsService(ctx context.Context, creds Credentials, logger *log.Logger) (*gsheet.Service, error) {
	credentials, err := credentialsJSON(creds)
	if err != nil {
		return nil, err
	}
	logger.DebugContext(ctx, "Creating Google Sheets service",
		"credentials_size", len(credentials),
		"scope", gsheet.SpreadsheetsScope)

	service, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentials),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return service, nil
}

// WriteSummaries clears the target sheet and writes the summaries from A1.
func (e *Exporter) WriteSummaries(ctx context.Context, months []core.MonthlySummary) (int, error) {
	if e.svc == nil {
		return 0, errors.New("sheets service not initialized")
	}

	rng := a1Range(e.sheet, clearRange)
	if _, err := e.svc.Spreadsheets.Values.Clear(e.spreadsheetID, rng, &gsheet.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return 0, fmt.Errorf("clear %s: %w", rng, err)
	}

	rng = a1Range(e.sheet, "A1")
	vr := &gsheet.ValueRange{Values: ports.Values(months)}
	resp, err := e.svc.Spreadsheets.Values.Update(e.spreadsheetID, rng, vr).
		ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("update %s: %w", rng, err)
	}

	e.logger.InfoContext(ctx, "Summaries exported",
		log.FieldOperation, log.OpExport,
		"sheet", e.sheet,
		log.FieldMonths, len(months),
		"updated_cells", resp.UpdatedCells)
	return len(months), nil
}

// a1Range quotes sheet so names with spaces or quotes stay valid.
func a1Range(sheet, cells string) string {
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'!" + cells
}

// yearPrefixedName returns "<year> <base>" unless base already starts with a 4-digit year.
func yearPrefixedName(base string, year int) string {
	base = strings.TrimSpace(base)
	if base == "" {
		return base
	}
	if len(base) >= 5 {
		if y, err := strconv.Atoi(base[0:4]); err == nil && base[4] == ' ' && y > 1900 && y < 3000 {
			return base
		}
	}
	return fmt.Sprintf("%d %s", year, base)
}
