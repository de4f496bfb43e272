package taxonomy

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDocument_JSON(t *testing.T) {
	path := writeFile(t, "enhanced_symptoms.json", `{
		"high_risk_diseases": ["Malaria"],
		"symptoms": ["skin rash", "Joint Stiffness"],
		"total_rows": 4920,
		"source_file": "data/dataset.csv"
	}`)

	doc, err := LoadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"skin rash", "Joint Stiffness"}, doc.Symptoms)
	assert.Equal(t, 4920, doc.TotalRows)
	assert.Equal(t, "data/dataset.csv", doc.SourceFile)
}

func TestLoadDocument_YAML(t *testing.T) {
	path := writeFile(t, "enhanced_symptoms.yaml", "symptoms:\n  - night sweats\n  - hiccups\ntotal_rows: 2\n")

	doc, err := LoadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"night sweats", "hiccups"}, doc.Symptoms)
	assert.Equal(t, 2, doc.TotalRows)
}

func TestLoadDocument_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		op      string
	}{
		{name: "malformed json", file: "bad.json", content: `{"symptoms": [`, op: "parse"},
		{name: "malformed yaml", file: "bad.yaml", content: "symptoms: [unterminated", op: "parse"},
		{name: "missing field", file: "nofield.json", content: `{"diseases": []}`, op: "validate"},
		{name: "wrong type", file: "type.json", content: `{"symptoms": "fever"}`, op: "validate"},
		{name: "non-string item", file: "item.json", content: `{"symptoms": ["fever", 3]}`, op: "validate"},
		{name: "top-level list", file: "list.json", content: `["fever"]`, op: "validate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)

			_, err := LoadDocument(path)
			require.Error(t, err)

			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr))
			assert.Equal(t, tt.op, loadErr.Op)
			assert.Equal(t, path, loadErr.Path)
		})
	}
}

func TestLoadDocument_Missing(t *testing.T) {
	_, err := LoadDocument(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "read", loadErr.Op)
}

func TestEnrich_AppendsToMediumWithLimit(t *testing.T) {
	symptoms := make([]string, 30)
	for i := range symptoms {
		symptoms[i] = fmt.Sprintf("Symptom %02d", i)
	}

	enriched, err := Enrich(Default(), &Document{Symptoms: symptoms}, 20)
	require.NoError(t, err)

	medium := enriched.MediumRisk()
	assert.Len(t, medium, 37+20)
	assert.Equal(t, "symptom 00", medium[37])
	assert.Equal(t, "symptom 19", medium[len(medium)-1])
	assert.Equal(t, Default().HighRisk(), enriched.HighRisk())
}

func TestEnrich_SkipsBlankAndKeepsDuplicates(t *testing.T) {
	doc := &Document{Symptoms: []string{"headache", "", "   ", "Night Sweats"}}

	enriched, err := Enrich(Default(), doc, 0)
	require.NoError(t, err)

	medium := enriched.MediumRisk()
	assert.Len(t, medium, 39)
	assert.Equal(t, []string{"headache", "night sweats"}, medium[37:])
}

func TestBuild(t *testing.T) {
	path := writeFile(t, "enhanced.json", `{"symptoms": ["night sweats"]}`)

	tax, err := Build(path, DefaultEnrichmentLimit)
	require.NoError(t, err)
	assert.Contains(t, tax.MediumRisk(), "night sweats")

	_, err = Build(filepath.Join(t.TempDir(), "absent.json"), DefaultEnrichmentLimit)
	assert.Error(t, err)
}

func TestWriteDocument_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	doc := &Document{Symptoms: []string{"itching", "skin rash"}, HighRiskDiseases: []string{"Fungal infection"}, TotalRows: 10}

	for _, name := range []string{"out/doc.json", "out/doc.yml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, WriteDocument(path, doc))

		loaded, err := LoadDocument(path)
		require.NoError(t, err, name)
		assert.Equal(t, doc, loaded, name)
	}
}
