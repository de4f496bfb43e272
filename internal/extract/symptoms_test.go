package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_WideSymptomColumns(t *testing.T) {
	csv := "Disease,Symptom_1,Symptom_2,Symptom_3\n" +
		"Fungal infection,itching, skin_rash,nodal_skin_eruptions\n" +
		"Allergy,continuous_sneezing,shivering,\n" +
		"Fungal infection,itching,skin_rash\n"

	doc, err := NewSymptomExtractor().Extract(strings.NewReader(csv), "dataset.csv")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"itching", "skin rash", "nodal skin eruptions", "continuous sneezing", "shivering",
	}, doc.Symptoms)
	assert.Equal(t, []string{"Fungal infection", "Allergy"}, doc.HighRiskDiseases)
	assert.Equal(t, 3, doc.TotalRows)
	assert.Equal(t, "dataset.csv", doc.SourceFile)
}

func TestExtract_FallbackColumnsAndSeparators(t *testing.T) {
	csv := "label,text\n" +
		"Flu,\"Fever, Cough , headache\"\n" +
		"Cold,runny nose; sneezing\n"

	doc, err := NewSymptomExtractor().Extract(strings.NewReader(csv), "s2d.csv")
	require.NoError(t, err)

	// "text" precedes "label" in the fallback order
	assert.Equal(t, []string{"fever", "cough", "headache", "runny nose", "sneezing"}, doc.Symptoms)
	assert.Empty(t, doc.HighRiskDiseases)
}

func TestExtract_Caps(t *testing.T) {
	var b strings.Builder
	b.WriteString("disease,symptoms\n")
	for i := 0; i < 150; i++ {
		fmt.Fprintf(&b, "d%d,s%d\n", i, i)
	}

	doc, err := NewSymptomExtractor().Extract(strings.NewReader(b.String()), "big.csv")
	require.NoError(t, err)

	assert.Len(t, doc.Symptoms, MaxSymptoms)
	assert.Len(t, doc.HighRiskDiseases, MaxDiseases)
	assert.Equal(t, "s0", doc.Symptoms[0])
	assert.Equal(t, 150, doc.TotalRows)
}

func TestExtract_Errors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want error
	}{
		{name: "empty", csv: ""},
		{name: "no symptom column", csv: "disease,age\nflu,3\n", want: ErrNoSymptomColumn},
		{name: "bad quoting", csv: "symptoms\n\"unterminated\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSymptomExtractor().Extract(strings.NewReader(tt.csv), "x.csv")
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestExtractFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.csv")
	require.NoError(t, os.WriteFile(path, []byte("Symptom\nchest_pain\n"), 0o600))

	doc, err := NewSymptomExtractor().ExtractFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"chest pain"}, doc.Symptoms)
	assert.Equal(t, path, doc.SourceFile)

	_, err = NewSymptomExtractor().ExtractFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
