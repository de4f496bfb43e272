package worker

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ppiankov/symptriage/internal/model"
)

// maxLineBytes bounds a single batch line
const maxLineBytes = 1 << 20

// Assessor classifies one free-text symptom description
type Assessor interface {
	AssessText(text string) *model.Assessment
}

// Line is one non-blank, non-comment input line
type Line struct {
	Number int
	Text   string
}

// AssessJob assesses a single batch line
type AssessJob struct {
	Line     Line
	Assessor Assessor
}

// Execute executes the assess job
func (j *AssessJob) Execute(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return &AssessResult{Line: j.Line.Number, Error: err}
	}
	a := j.Assessor.AssessText(j.Line.Text)
	a.Line = j.Line.Number
	return &AssessResult{Line: j.Line.Number, Assessment: a}
}

// AssessResult represents the result of an assess job
type AssessResult struct {
	Line       int
	Assessment *model.Assessment
	Error      error
}

// GetError returns the error from the assess result
func (r *AssessResult) GetError() error {
	return r.Error
}

// BatchProcessor assesses many symptom descriptions concurrently
type BatchProcessor struct {
	assessor    Assessor
	concurrency int
	now         func() time.Time
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(assessor Assessor, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		assessor:    assessor,
		concurrency: concurrency,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// ProcessLines assesses lines concurrently. Assessments keep input order;
// lines not reached before ctx is cancelled are reported as failures.
func (b *BatchProcessor) ProcessLines(ctx context.Context, lines []Line) *model.BatchReport {
	report := &model.BatchReport{
		GeneratedAt: b.now(),
		Assessments: []*model.Assessment{},
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	var submitted []Line
	for i, line := range lines {
		if err := pool.Submit(&AssessJob{Line: line, Assessor: b.assessor}); err != nil {
			for _, rest := range lines[i:] {
				report.Failures = append(report.Failures, model.BatchFailure{Line: rest.Number, Error: err.Error()})
			}
			break
		}
		submitted = append(submitted, line)
	}

	results := pool.Wait()

	var failures []model.BatchFailure
	for i, res := range results {
		r, ok := res.(*AssessResult)
		if !ok || r == nil {
			failures = append(failures, model.BatchFailure{Line: submitted[i].Number, Error: context.Canceled.Error()})
			continue
		}
		if r.Error != nil {
			failures = append(failures, model.BatchFailure{Line: r.Line, Error: r.Error.Error()})
			continue
		}
		report.Assessments = append(report.Assessments, r.Assessment)
	}
	report.Failures = append(failures, report.Failures...)

	report.Tally()
	return report
}

// ProcessReader reads lines from r and assesses them
func (b *BatchProcessor) ProcessReader(ctx context.Context, r io.Reader, name string) (*model.BatchReport, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}

	report := b.ProcessLines(ctx, lines)
	report.Input = name
	return report, nil
}

// ProcessFile reads symptom descriptions from a file and assesses them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) (*model.BatchReport, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return b.ProcessReader(ctx, file, filePath)
}

// ReadLines returns the non-empty, non-comment lines of r with their 1-based
// line numbers. Duplicates are kept since each line is a separate case.
func ReadLines(r io.Reader) ([]Line, error) {
	var lines []Line

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	n := 0
	for scanner.Scan() {
		n++
		text := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, Line{Number: n, Text: text})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan input: %w", err)
	}

	return lines, nil
}
