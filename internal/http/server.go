// Package http serves the expense dashboard: three HTML pages, SVG charts
// and a JSON summary endpoint, all computed from the data directory.
package http

import (
	"context"
	"html/template"
	"io/fs"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"depenses/internal/cache"
	"depenses/internal/i18n"
	"depenses/internal/ingest"
	"depenses/internal/log"
	"depenses/internal/middleware/ratelimit"
	"depenses/internal/middleware/security"
	"depenses/internal/middleware/trace"
	"depenses/internal/pipeline"
	appweb "depenses/web"
)

const (
	defaultCacheSize = 32
	cleanupInterval  = 10 * time.Minute
	staticMaxAge     = 3600
)

// Options configures a Server. DataDir is required; other zero values
// fall back to defaults.
type Options struct {
	DataDir    string
	Pipeline   *pipeline.Pipeline
	Translator *i18n.Translator
	Logger     *log.Logger

	// CacheTTL of zero disables result caching.
	CacheTTL  time.Duration
	CacheSize int

	// RateLimit bounds chart and API requests per client per minute.
	// Zero disables it.
	RateLimit int

	// TrustedProxies are CIDRs, besides loopback and private networks,
	// whose forwarding headers identify the client.
	TrustedProxies []string
}

type Server struct {
	http.Server
	templates *template.Template

	dataDir  string
	pipeline *pipeline.Pipeline
	tr       *i18n.Translator
	logger   *log.Logger
	sl       *log.StructuredLogger

	results    *cache.LRUCache[pipeline.Result]
	caches     *cache.Manager
	group      singleflight.Group
	generation atomic.Uint64

	trace   *trace.Middleware
	limiter *ratelimit.Limiter
	charts  map[string]chartSpec

	shutdownOnce sync.Once
}

// NewServer configures routes and templates, returning a ready-to-run http.Server.
func NewServer(addr string, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.Discard()
	}
	logger = logger.WithComponent(log.ComponentHTTP)
	tr := opts.Translator
	if tr == nil {
		tr = i18n.New("")
	}
	p := opts.Pipeline
	if p == nil {
		p = pipeline.New(pipeline.Options{Logger: logger})
	}
	size := opts.CacheSize
	if size <= 0 {
		size = defaultCacheSize
	}

	mux := http.NewServeMux()
	s := &Server{
		Server: http.Server{
			Addr: addr,
		},
		dataDir:  opts.DataDir,
		pipeline: p,
		tr:       tr,
		logger:   logger,
		sl:       log.NewStructuredLogger(logger),
		results:  cache.NewLRUCache[pipeline.Result](size, opts.CacheTTL),
		caches:   cache.NewManager(logger),
		charts:   chartSpecs(),
	}

	s.caches.Register(s.results)
	if opts.CacheTTL > 0 {
		s.caches.StartCleanup(cleanupInterval)
	}

	// Parse embedded templates at startup.
	t, err := template.New("").Funcs(s.templateFuncs()).ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		logger.Warn("Failed parsing templates", log.FieldError, err)
	} else {
		s.templates = t
	}

	ips := security.NewClientIPResolver()
	for _, cidr := range opts.TrustedProxies {
		if err := ips.AddTrustedProxy(cidr); err != nil {
			logger.Warn("Ignoring trusted proxy", log.FieldError, err)
		}
	}
	s.trace = trace.NewMiddleware(logger, ips.ClientIP)

	limit := func(h http.Handler) http.Handler { return h }
	if opts.RateLimit > 0 {
		s.limiter = ratelimit.NewLimiter(ratelimit.Config{RequestsPerMinute: opts.RateLimit})
		limit = s.limiter.Middleware(ips.ClientIP, nil)
	}

	// Static assets (served from embedded FS)
	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
		mux.Handle("GET /static/", security.StaticAssetMiddleware(staticMaxAge)(static))
	} else {
		logger.Warn("Failed to mount embedded static FS", log.FieldError, err)
	}

	mux.HandleFunc("GET /{$}", s.handleOverview)
	mux.HandleFunc("GET /person", s.handlePerson)
	mux.HandleFunc("GET /file", s.handleFile)
	mux.Handle("GET /charts/{name}", limit(http.HandlerFunc(s.handleChart)))
	mux.Handle("GET /api/summaries", limit(http.HandlerFunc(s.handleSummaries)))
	mux.Handle("GET /api/diagnostics", limit(http.HandlerFunc(s.handleDiagnostics)))
	mux.HandleFunc("POST /reload", s.handleReload)
	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)

	headers := security.NewHeadersMiddleware(security.DefaultHeadersConfig())
	s.Handler = s.trace.Middleware(headers.Middleware(mux))
	return s
}

// Shutdown gracefully shuts down the server and cleanup routines
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.caches.Stop()
		if s.limiter != nil {
			s.limiter.Stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)

		m := s.trace.GetMetrics()
		s.logger.Info("HTTP server stopped",
			log.FieldOperation, log.OpShutdown,
			"requests", m.TotalRequests,
			"server_errors", m.ServerErrors,
			"avg_response_ms", m.AverageResponseTime.Milliseconds())
	})

	return shutdownErr
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleReady reports ready once the data directory can be listed.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if _, err := ingest.ListFiles(s.dataDir); err != nil {
		log.FromContext(r.Context()).Warn("Data directory not readable", log.FieldDataDir, s.dataDir, log.FieldError, err)
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("data directory unavailable"))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// handleReload drops cached results so the next page view rereads the
// data directory.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	s.invalidate()
	log.FromContext(r.Context()).Info("Result cache purged", log.FieldOperation, log.OpLoad)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
