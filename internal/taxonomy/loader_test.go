package taxonomy

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_NoPathUsesDefault(t *testing.T) {
	l := NewLoader("", DefaultEnrichmentLimit, nil)

	assert.Equal(t, Default(), l.Taxonomy())
	assert.NoError(t, l.Err())
}

func TestLoader_MissingFileFallsBack(t *testing.T) {
	l := NewLoader(filepath.Join(t.TempDir(), "absent.json"), DefaultEnrichmentLimit, nil)

	tax := l.Taxonomy()
	require.NotNil(t, tax)
	assert.Equal(t, Default(), tax)
	assert.Error(t, l.Err())
}

func TestLoader_MalformedFileFallsBackWithWarning(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	path := writeFile(t, "bad.json", `{"symptoms": 12}`)

	l := NewLoader(path, DefaultEnrichmentLimit, logger)

	assert.Equal(t, Default(), l.Taxonomy())
	assert.Error(t, l.Err())
	assert.Contains(t, buf.String(), "enrichment unavailable")
}

func TestLoader_Enriches(t *testing.T) {
	path := writeFile(t, "enhanced.json", `{"symptoms": ["night sweats", "hiccups"]}`)
	l := NewLoader(path, DefaultEnrichmentLimit, nil)

	assert.NoError(t, l.Err())
	assert.Len(t, l.Taxonomy().MediumRisk(), 39)
}

func TestLoader_ConcurrentFirstUseBuildsOnce(t *testing.T) {
	path := writeFile(t, "enhanced.json", `{"symptoms": ["night sweats"]}`)
	l := NewLoader(path, DefaultEnrichmentLimit, nil)

	var wg sync.WaitGroup
	results := make([]*Taxonomy, 16)
	for i := range results {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = l.Taxonomy()
		}(i)
	}
	wg.Wait()

	for _, tax := range results {
		assert.Same(t, results[0], tax)
	}
}
