package extraction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/types"
)

// fakePartitioner returns canned fragments or a canned error.
type fakePartitioner struct {
	fragments []RawFragment
	err       error
}

func (p *fakePartitioner) Partition(_ context.Context, _ string, _ Strategy) ([]RawFragment, error) {
	return p.fragments, p.err
}

func TestExtract_PartitionerOutput(t *testing.T) {
	partitioner := &fakePartitioner{
		fragments: []RawFragment{
			{
				Text:     "Jane Doe",
				Category: "Title",
				Page:     1,
				Points:   [][]float64{{10, 20}, {110, 20}, {110, 40}, {10, 40}},
				Bold:     true,
				FontSize: 16,
			},
			{Text: "   ", Category: "NarrativeText", Page: 1},
			{Text: "Built the payments platform.", Category: "NarrativeText", Page: 1},
		},
	}

	extractor := New(partitioner, StrategyHiFi)
	result := extractor.Extract(context.Background(), []byte("irrelevant"), "resume.pdf")

	require.Len(t, result.Fragments, 2)
	assert.Equal(t, 1, result.Dropped)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, "PDF Document", result.FileType)
	assert.Equal(t, ".pdf", result.Extension)

	name := result.Fragments[0]
	assert.Equal(t, types.CategoryTitle, name.Category)
	require.NotNil(t, name.Box)
	assert.Equal(t, 60.0, name.Box.CenterX)
	assert.Equal(t, 30.0, name.Box.CenterY)
	require.NotNil(t, name.Style)
	assert.True(t, name.Style.IsBold)
}

func TestExtract_PartitionerFailureFallsBack(t *testing.T) {
	partitioner := &fakePartitioner{err: errors.New("layout model unavailable")}

	extractor := New(partitioner, StrategyHiFi)
	data := []byte("Jane Doe\njane@example.com\nEXPERIENCE\nEngineer at Acme, 2020-2022\n")
	result := extractor.Extract(context.Background(), data, "resume.txt")

	require.Len(t, result.Fragments, 4)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "fallback")
}

func TestExtract_NilPartitionerUsesFallback(t *testing.T) {
	extractor := New(nil, "")
	data := []byte("Jane Doe\njane@example.com\nEXPERIENCE\nEngineer at Acme, 2020-2022\n")
	result := extractor.Extract(context.Background(), data, "resume.txt")

	require.Len(t, result.Fragments, 4)
	assert.Equal(t, "Plain Text", result.FileType)
	assert.Equal(t, types.CategoryNarrativeText, result.Fragments[0].Category)
	assert.Equal(t, types.CategoryEmailAddress, result.Fragments[1].Category)
	assert.Equal(t, types.CategoryTitle, result.Fragments[2].Category)
	assert.Equal(t, types.CategoryNarrativeText, result.Fragments[3].Category)
}

func TestExtract_EmptyDocument(t *testing.T) {
	extractor := New(nil, "")
	result := extractor.Extract(context.Background(), []byte("   \n\t  "), "empty.txt")

	require.NotNil(t, result)
	assert.Empty(t, result.Fragments)
	assert.Contains(t, result.Warnings, "Document contains no decodable text")
}

func TestConvertFragments_UnknownCategory(t *testing.T) {
	fragments, dropped := convertFragments([]RawFragment{
		{Text: "mystery content", Category: "Hologram", Page: 1},
	})

	require.Len(t, fragments, 1)
	assert.Equal(t, 0, dropped)
	assert.Equal(t, types.CategoryNarrativeText, fragments[0].Category)
}

func TestBoxFromPoints_Malformed(t *testing.T) {
	assert.Nil(t, boxFromPoints(nil))
	assert.Nil(t, boxFromPoints([][]float64{{10, 20}}))
	assert.Nil(t, boxFromPoints([][]float64{{10}, {20}}))
}

func TestBoxFromPoints_Polygon(t *testing.T) {
	box := boxFromPoints([][]float64{{110, 40}, {10, 20}, {60, 30}})
	require.NotNil(t, box)
	assert.Equal(t, 10.0, box.X1)
	assert.Equal(t, 20.0, box.Y1)
	assert.Equal(t, 110.0, box.X2)
	assert.Equal(t, 40.0, box.Y2)
}

func TestFileTypeName_KnownAndUnknown(t *testing.T) {
	assert.Equal(t, "PDF Document", FileTypeName(".pdf"))
	assert.Equal(t, "Word Document", FileTypeName(".DOCX"))
	assert.Equal(t, "Unknown Format", FileTypeName(".xyz"))
}

func TestPartitionError_NamesTheFile(t *testing.T) {
	err := &PartitionError{Filename: "resume.pdf", Message: "creating temp file", Cause: errors.New("disk full")}
	assert.Equal(t, "partition failed for resume.pdf: creating temp file: disk full", err.Error())
	assert.EqualError(t, errors.Unwrap(err), "disk full")
}

func TestNormalizeExtension(t *testing.T) {
	assert.Equal(t, ".pdf", NormalizeExtension("Resume.PDF"))
	assert.Equal(t, "", NormalizeExtension("README"))
}
