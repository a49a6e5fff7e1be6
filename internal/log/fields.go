package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldRequestID   = "request_id"
	FieldClientIP    = "client_ip"
	FieldMethod      = "method"
	FieldPath        = "path"
	FieldQuery       = "query"
	FieldStatusCode  = "status_code"
	FieldDuration    = "duration_ms"
	FieldSuccess     = "success"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldYear        = "year"
	FieldMonth       = "month"
	FieldDataDir     = "data_dir"
	FieldFile        = "file"
	FieldRow         = "row"
	FieldColumn      = "column"
	FieldValue       = "value"
	FieldReason      = "reason"
	FieldRows        = "rows"
	FieldSkipped     = "skipped"
	FieldDuplicates  = "duplicates"
	FieldFiles       = "files"
	FieldMonths      = "months"
	FieldAmountCents = "amount_cents"
	FieldPayer       = "payer"
	FieldCategory    = "category"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentHTTP     = "http"
	ComponentIngest   = "ingest"
	ComponentPipeline = "pipeline"
	ComponentCharts   = "charts"
	ComponentCache    = "cache"
	ComponentSheets   = "sheets"
	ComponentTemplate = "template"
	ComponentReport   = "report"
)

// Operations defines standard operation names
const (
	OpLoad      = "load"
	OpParse     = "parse"
	OpDedupe    = "dedupe"
	OpAggregate = "aggregate"
	OpRender    = "render"
	OpExport    = "export"
	OpShutdown  = "shutdown"
	OpStartup   = "startup"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithComponent adds component field
func (f LogFields) WithComponent(component string) LogFields {
	f[FieldComponent] = component
	return f
}

// WithRequestID adds request ID field
func (f LogFields) WithRequestID(requestID string) LogFields {
	f[FieldRequestID] = requestID
	return f
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithRow adds the location of an input row.
func (f LogFields) WithRow(file string, row int) LogFields {
	f[FieldFile] = file
	f[FieldRow] = row
	return f
}

// WithRejection adds the offending column, raw value and reason of a skipped row.
func (f LogFields) WithRejection(column, value, reason string) LogFields {
	f[FieldColumn] = column
	f[FieldValue] = value
	f[FieldReason] = reason
	return f
}

// WithClientIP adds client IP field
func (f LogFields) WithClientIP(ip string) LogFields {
	f[FieldClientIP] = ip
	return f
}

// WithHTTPRequest adds HTTP request fields
func (f LogFields) WithHTTPRequest(method, path, query string) LogFields {
	f[FieldMethod] = method
	f[FieldPath] = path
	f[FieldQuery] = query
	return f
}

// WithHTTPResponse adds HTTP response fields
func (f LogFields) WithHTTPResponse(statusCode int, durationMs int64) LogFields {
	f[FieldStatusCode] = statusCode
	f[FieldDuration] = durationMs
	f[FieldSuccess] = statusCode < 400
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
