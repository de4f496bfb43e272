package taxonomy

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"sync"
)

// Loader builds the process taxonomy once and freezes it.
// Enrichment is best-effort: any load failure falls back to Default.
type Loader struct {
	path   string
	limit  int
	logger *slog.Logger

	once sync.Once
	tax  *Taxonomy
	err  error
}

// NewLoader creates a Loader. An empty path disables enrichment.
func NewLoader(path string, limit int, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{path: path, limit: limit, logger: logger}
}

// Taxonomy returns the frozen taxonomy, building it on first use
func (l *Loader) Taxonomy() *Taxonomy {
	l.once.Do(l.load)
	return l.tax
}

// Err returns the enrichment error that caused a fallback, if any
func (l *Loader) Err() error {
	l.once.Do(l.load)
	return l.err
}

func (l *Loader) load() {
	if l.path == "" {
		l.tax = Default()
		return
	}

	t, err := Build(l.path, l.limit)
	if err != nil {
		l.err = err
		l.tax = Default()
		// A missing document is the normal case when no dataset was imported
		level := slog.LevelWarn
		if errors.Is(err, fs.ErrNotExist) {
			level = slog.LevelDebug
		}
		l.logger.Log(context.Background(), level, "enrichment unavailable, using base taxonomy", "path", l.path, "error", err)
		return
	}

	l.tax = t
	l.logger.Debug("taxonomy enriched", "path", l.path, "high", len(t.high), "medium", len(t.medium))
}
