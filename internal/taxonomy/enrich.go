package taxonomy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// DefaultEnrichmentLimit caps how many document symptoms are merged
const DefaultEnrichmentLimit = 20

// Document is the enrichment source produced by the dataset import
type Document struct {
	Symptoms         []string `json:"symptoms" yaml:"symptoms"`
	HighRiskDiseases []string `json:"high_risk_diseases,omitempty" yaml:"high_risk_diseases,omitempty"`
	TotalRows        int      `json:"total_rows,omitempty" yaml:"total_rows,omitempty"`
	SourceFile       string   `json:"source_file,omitempty" yaml:"source_file,omitempty"`
}

// LoadError describes why an enrichment document could not be used
type LoadError struct {
	Path string
	Op   string // read, parse, validate, merge
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("enrichment %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

const documentSchema = `{
  "type": "object",
  "required": ["symptoms"],
  "properties": {
    "symptoms": {"type": "array", "items": {"type": "string"}},
    "high_risk_diseases": {"type": "array", "items": {"type": "string"}},
    "total_rows": {"type": "integer", "minimum": 0},
    "source_file": {"type": "string"}
  }
}`

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	def, err := jsonschema.UnmarshalJSON(strings.NewReader(documentSchema))
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://enrichment.json", def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile("schema://enrichment.json")
})

// LoadDocument reads and validates an enrichment document.
// Files ending in .yaml or .yml are parsed as YAML, everything else as JSON.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Op: "read", Err: err}
	}

	if isYAML(path) {
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, &LoadError{Path: path, Op: "parse", Err: err}
		}
		if data, err = json.Marshal(raw); err != nil {
			return nil, &LoadError{Path: path, Op: "parse", Err: err}
		}
	}

	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, &LoadError{Path: path, Op: "parse", Err: err}
	}

	schema, err := compiledSchema()
	if err != nil {
		return nil, &LoadError{Path: path, Op: "validate", Err: err}
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &LoadError{Path: path, Op: "validate", Err: err}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Path: path, Op: "parse", Err: err}
	}
	return &doc, nil
}

// Enrich appends up to limit document symptoms to the medium-risk set of base.
// Blank entries are skipped; nothing else is filtered or deduplicated.
func Enrich(base *Taxonomy, doc *Document, limit int) (*Taxonomy, error) {
	if limit <= 0 {
		limit = DefaultEnrichmentLimit
	}
	symptoms := doc.Symptoms
	if len(symptoms) > limit {
		symptoms = symptoms[:limit]
	}

	extra := make([]string, 0, len(symptoms))
	for _, s := range symptoms {
		if strings.TrimSpace(s) != "" {
			extra = append(extra, s)
		}
	}
	return base.WithMedium(extra)
}

// Build loads the document at path and merges it into the default taxonomy.
// Callers decide what to do on error; see Loader for the fallback policy.
func Build(path string, limit int) (*Taxonomy, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	t, err := Enrich(Default(), doc, limit)
	if err != nil {
		return nil, &LoadError{Path: path, Op: "merge", Err: err}
	}
	return t, nil
}

// WriteDocument writes doc to path as indented JSON, or YAML for .yaml/.yml paths
func WriteDocument(path string, doc *Document) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(doc)
	} else {
		data, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
