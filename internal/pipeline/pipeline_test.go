package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/entities"
	"github.com/jonathan/resume-parser/internal/extraction"
	"github.com/jonathan/resume-parser/internal/types"
)

const sampleResume = `Jane Doe
jane@example.com
EXPERIENCE
Engineer at Acme, 2020-2022
`

func TestRun_EndToEnd(t *testing.T) {
	runner := New(Options{})
	result := runner.Run(context.Background(), []byte(sampleResume), "resume.txt")

	assert.NotEmpty(t, result.RunID)
	assert.NotEmpty(t, result.Content)

	doc := result.Document
	assert.Equal(t, "resume.txt", doc.Filename)
	assert.Equal(t, ".txt", doc.FileExtension)
	assert.Equal(t, "Plain Text", doc.FileType)
	assert.Equal(t, 4, doc.TotalElements)

	contact := doc.GetSection(types.SectionContact)
	require.NotNil(t, contact)
	assert.Contains(t, contact.CombinedText(), "jane@example.com")

	experience := doc.GetSection(types.SectionExperience)
	require.NotNil(t, experience)
	assert.Contains(t, experience.CombinedText(), "Engineer at Acme")

	assert.Contains(t, result.Entities[entities.KindEmail], "jane@example.com")
}

func TestRun_WarningsPropagate(t *testing.T) {
	runner := New(Options{})
	result := runner.Run(context.Background(), []byte(sampleResume), "resume.txt")

	// Fallback extraction always reports itself.
	require.NotEmpty(t, result.Document.ParsingWarnings)
	assert.Contains(t, result.Document.ParsingWarnings[0], "plain-text line extraction")
}

func TestRun_UniqueRunIDs(t *testing.T) {
	runner := New(Options{})
	first := runner.Run(context.Background(), []byte(sampleResume), "resume.txt")
	second := runner.Run(context.Background(), []byte(sampleResume), "resume.txt")

	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestRun_EmptyDocumentStillParses(t *testing.T) {
	runner := New(Options{})
	result := runner.Run(context.Background(), []byte("   \n\t  "), "empty.txt")

	doc := result.Document
	require.NotNil(t, doc)
	assert.Equal(t, "empty.txt", doc.Filename)
	assert.Equal(t, 0, doc.TotalElements)
	assert.Empty(t, doc.GroupedSections)
	assert.Contains(t, doc.ParsingWarnings, "Document contains no decodable text")
}

func TestRun_TotalElementsIncludesDropped(t *testing.T) {
	partitioner := &blankEmittingPartitioner{}
	runner := New(Options{Partitioner: partitioner})
	result := runner.Run(context.Background(), []byte("irrelevant"), "resume.pdf")

	doc := result.Document
	assert.Equal(t, 3, doc.TotalElements)
	assert.Equal(t, 1, doc.DroppedElements)

	contact := doc.GetSection(types.SectionContact)
	require.NotNil(t, contact)
	assert.Contains(t, contact.CombinedText(), "jane@example.com")
}

// blankEmittingPartitioner returns two usable fragments and one that is
// whitespace only.
type blankEmittingPartitioner struct{}

func (p *blankEmittingPartitioner) Partition(_ context.Context, _ string, _ extraction.Strategy) ([]extraction.RawFragment, error) {
	return []extraction.RawFragment{
		{Text: "Jane Doe", Category: "Title", Page: 1},
		{Text: "   ", Category: "NarrativeText", Page: 1},
		{Text: "jane@example.com", Category: "EmailAddress", Page: 1},
	}, nil
}

func TestRunFile_MissingFile(t *testing.T) {
	runner := New(Options{})
	_, err := runner.RunFile(context.Background(), "/nonexistent/resume.txt")
	assert.Error(t, err)
}

func TestRunAll_OrderAndIsolation(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	require.NoError(t, os.WriteFile(good, []byte(sampleResume), 0644))
	missing := filepath.Join(dir, "missing.txt")

	runner := New(Options{Concurrency: 2})
	items := runner.RunAll(context.Background(), []string{good, missing})

	require.Len(t, items, 2)
	assert.Equal(t, good, items[0].Path)
	require.NoError(t, items[0].Err)
	require.NotNil(t, items[0].Result)

	assert.Equal(t, missing, items[1].Path)
	assert.Error(t, items[1].Err)
	assert.Nil(t, items[1].Result)
}

func TestRunAll_ManyFiles(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := 0; i < 8; i++ {
		path := filepath.Join(dir, "resume"+string(rune('a'+i))+".txt")
		require.NoError(t, os.WriteFile(path, []byte(sampleResume), 0644))
		paths = append(paths, path)
	}

	runner := New(Options{Concurrency: 3})
	items := runner.RunAll(context.Background(), paths)

	require.Len(t, items, len(paths))
	seen := make(map[string]bool)
	for i, item := range items {
		assert.Equal(t, paths[i], item.Path)
		require.NoError(t, item.Err)
		assert.False(t, seen[item.Result.RunID], "run IDs must be unique")
		seen[item.Result.RunID] = true
	}
}
