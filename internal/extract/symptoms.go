package extract

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ppiankov/symptriage/internal/taxonomy"
)

const (
	// MaxSymptoms caps the symptoms kept in an enrichment document
	MaxSymptoms = 100
	// MaxDiseases caps the diseases kept in an enrichment document
	MaxDiseases = 30
)

// ErrNoSymptomColumn is returned when no header looks like a symptom column
var ErrNoSymptomColumn = errors.New("no symptom column found")

var (
	symptomFallbacks = []string{"symptoms", "symptom_text", "description", "text", "label"}
	diseaseFallbacks = []string{"disease", "disease_name", "condition", "illness"}
)

// SymptomExtractor turns a disease/symptom CSV into an enrichment document
type SymptomExtractor struct {
	maxSymptoms int
	maxDiseases int
}

// NewSymptomExtractor creates an extractor with the default caps
func NewSymptomExtractor() *SymptomExtractor {
	return &SymptomExtractor{
		maxSymptoms: MaxSymptoms,
		maxDiseases: MaxDiseases,
	}
}

// ExtractFile reads the CSV at path
func (e *SymptomExtractor) ExtractFile(path string) (*taxonomy.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	return e.Extract(f, path)
}

// Extract reads a CSV with a header row. Symptom cells may hold several
// symptoms separated by commas or semicolons.
func (e *SymptomExtractor) Extract(r io.Reader, source string) (*taxonomy.Document, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read header: empty dataset")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	symptomCols := symptomColumns(header)
	if len(symptomCols) == 0 {
		return nil, ErrNoSymptomColumn
	}
	diseaseCol := diseaseColumn(header)

	symptoms := newOrderedSet()
	diseases := newOrderedSet()
	rows := 0

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", rows+1, err)
		}
		rows++

		for _, col := range symptomCols {
			if col >= len(record) {
				continue
			}
			for _, s := range splitSymptoms(record[col]) {
				symptoms.add(s)
			}
		}
		if diseaseCol >= 0 && diseaseCol < len(record) {
			diseases.add(strings.TrimSpace(record[diseaseCol]))
		}
	}

	return &taxonomy.Document{
		Symptoms:         symptoms.first(e.maxSymptoms),
		HighRiskDiseases: diseases.first(e.maxDiseases),
		TotalRows:        rows,
		SourceFile:       source,
	}, nil
}

// symptomColumns returns every column whose header mentions "symptom",
// falling back to the first well-known free-text column name.
func symptomColumns(header []string) []int {
	var cols []int
	for i, h := range header {
		if strings.Contains(strings.ToLower(h), "symptom") {
			cols = append(cols, i)
		}
	}
	if len(cols) > 0 {
		return cols
	}
	if i := indexOf(header, symptomFallbacks); i >= 0 {
		return []int{i}
	}
	return nil
}

func diseaseColumn(header []string) int {
	for i, h := range header {
		if strings.Contains(strings.ToLower(h), "disease") {
			return i
		}
	}
	return indexOf(header, diseaseFallbacks)
}

func indexOf(header []string, names []string) int {
	for _, name := range names {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i
			}
		}
	}
	return -1
}

// splitSymptoms normalizes a cell like "skin_rash, Itching" into phrases
func splitSymptoms(cell string) []string {
	sep := ","
	if !strings.Contains(cell, ",") && strings.Contains(cell, ";") {
		sep = ";"
	}

	var out []string
	for _, part := range strings.Split(cell, sep) {
		s := strings.ToLower(strings.TrimSpace(part))
		s = strings.Join(strings.Fields(strings.ReplaceAll(s, "_", " ")), " ")
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

type orderedSet struct {
	items []string
	seen  map[string]struct{}
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

func (s *orderedSet) add(v string) {
	if v == "" {
		return
	}
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}

func (s *orderedSet) first(n int) []string {
	if len(s.items) > n {
		return s.items[:n]
	}
	if s.items == nil {
		return []string{}
	}
	return s.items
}
