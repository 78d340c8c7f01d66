// Package pipeline wires extraction, section grouping, spatial assembly and
// entity mining into a single parse run, sequential per document and
// concurrent across a batch.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-parser/internal/assembly"
	"github.com/jonathan/resume-parser/internal/entities"
	"github.com/jonathan/resume-parser/internal/extraction"
	"github.com/jonathan/resume-parser/internal/sections"
	"github.com/jonathan/resume-parser/internal/types"
)

const defaultConcurrency = 4

// Options configures a Runner.
type Options struct {
	// Partitioner supplies high-fidelity extraction. Nil routes every
	// document through the fallback chain.
	Partitioner extraction.Partitioner
	// Strategy selects the partitioner mode. Empty defaults to hi-res.
	Strategy extraction.Strategy
	// Concurrency caps in-flight documents during RunAll. Zero or negative
	// falls back to a small default.
	Concurrency int
}

// Result is the full output of one parse run.
type Result struct {
	RunID    string
	Document *types.ParsedDocument
	Content  string
	Entities map[entities.Kind][]string
}

// BatchItem pairs a batch input with its outcome. A failed document carries
// its error here instead of aborting the rest of the batch.
type BatchItem struct {
	Path   string
	Result *Result
	Err    error
}

// Runner executes parse runs.
type Runner struct {
	extractor   *extraction.Extractor
	concurrency int
}

// New builds a Runner from options.
func New(opts Options) *Runner {
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &Runner{
		extractor:   extraction.New(opts.Partitioner, opts.Strategy),
		concurrency: concurrency,
	}
}

// Run parses one document from bytes. Extraction never fails, so every call
// yields a document; degraded extraction surfaces as parsing warnings on it.
func (r *Runner) Run(ctx context.Context, data []byte, filename string) *Result {
	extracted := r.extractor.Extract(ctx, data, filename)

	groups, groupWarnings := sections.Group(extracted.Fragments)
	content := assembly.Assemble(extracted.Fragments)

	// Entity mining runs over raw fragment text: markdown assembly can
	// reflow characters that the entity patterns depend on.
	rawParts := make([]string, 0, len(extracted.Fragments))
	for _, f := range extracted.Fragments {
		rawParts = append(rawParts, f.Text)
	}
	rawText := strings.Join(rawParts, "\n")

	doc := &types.ParsedDocument{
		Filename:        filepath.Base(filename),
		FileExtension:   extracted.Extension,
		FileType:        extracted.FileType,
		TotalElements:   len(extracted.Fragments) + extracted.Dropped,
		DroppedElements: extracted.Dropped,
		GroupedSections: groups,
	}
	doc.ParsingWarnings = append(doc.ParsingWarnings, extracted.Warnings...)
	doc.ParsingWarnings = append(doc.ParsingWarnings, groupWarnings...)

	return &Result{
		RunID:    uuid.NewString(),
		Document: doc,
		Content:  content,
		Entities: entities.Extract(rawText),
	}
}

// RunFile parses one document from disk.
func (r *Runner) RunFile(ctx context.Context, path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return r.Run(ctx, data, path), nil
}

// RunAll parses a batch of files concurrently, bounded by the configured
// concurrency. Items come back in input order; per-file failures are recorded
// on their item and never cancel sibling documents.
func (r *Runner) RunAll(ctx context.Context, paths []string) []BatchItem {
	items := make([]BatchItem, len(paths))
	g := &errgroup.Group{}
	g.SetLimit(r.concurrency)
	for i, path := range paths {
		g.Go(func() error {
			result, err := r.RunFile(ctx, path)
			items[i] = BatchItem{Path: path, Result: result, Err: err}
			return nil
		})
	}
	g.Wait()
	return items
}
