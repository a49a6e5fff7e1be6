package http

import (
	"context"
	"fmt"
	"strconv"

	"depenses/internal/log"
	"depenses/internal/pipeline"
)

const allFilesKey = "dir"

// result returns the pipeline output for the whole data directory.
func (s *Server) result(ctx context.Context) (pipeline.Result, error) {
	return s.load(ctx, allFilesKey, func() (pipeline.Result, error) {
		return s.pipeline.Run(s.dataDir)
	})
}

// fileResult returns the pipeline output for one file of the data directory.
func (s *Server) fileResult(ctx context.Context, name string) (pipeline.Result, error) {
	return s.load(ctx, "file:"+name, func() (pipeline.Result, error) {
		return s.pipeline.RunFile(s.dataDir, name)
	})
}

// load serves key from the cache, running the pipeline at most once for
// concurrent misses. Errors are not cached. Results are shared between
// requests and must not be modified. A run that overlaps a reload is
// returned to its callers but not cached.
func (s *Server) load(ctx context.Context, key string, run func() (pipeline.Result, error)) (pipeline.Result, error) {
	logger := log.FromContext(ctx)
	if res, ok := s.results.Get(key); ok {
		logger.Debug("Result cache hit", "key", key)
		return res, nil
	}

	gen := s.generation.Load()
	v, err, shared := s.group.Do(key+"@"+strconv.FormatUint(gen, 10), func() (any, error) {
		res, err := run()
		if err != nil {
			return nil, err
		}
		if s.generation.Load() == gen {
			s.results.Set(key, res)
		}
		return res, nil
	})
	if err != nil {
		return pipeline.Result{}, fmt.Errorf("run pipeline (%s): %w", key, err)
	}
	logger.Debug("Result computed", "key", key, "shared", shared)
	return v.(pipeline.Result), nil
}

// invalidate drops cached results and detaches runs still in flight.
func (s *Server) invalidate() {
	s.generation.Add(1)
	s.results.Purge()
}
