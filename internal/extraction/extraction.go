// Package extraction turns raw resume bytes into layout-aware text fragments.
// A pluggable Partitioner supplies high-fidelity extraction; when it is
// unavailable or fails, a degraded per-format fallback chain keeps the
// pipeline producing fragments instead of hard errors.
package extraction

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// Strategy selects the partitioner's extraction mode.
type Strategy string

const (
	// StrategyHiFi requests full layout analysis with coordinates and styling.
	StrategyHiFi Strategy = "hi_res"
	// StrategyFast requests quicker extraction with reduced layout fidelity.
	StrategyFast Strategy = "fast"
)

// RawFragment is the partitioner's untyped output before validation. Points
// holds the bounding polygon corners as [x, y] pairs in page coordinates.
type RawFragment struct {
	Text     string
	Category string
	Page     int
	Points   [][]float64
	Bold     bool
	Italic   bool
	FontSize float64
}

// Partitioner extracts layout-aware fragments from a document on disk.
type Partitioner interface {
	Partition(ctx context.Context, path string, strategy Strategy) ([]RawFragment, error)
}

// Result carries everything extraction learned about a document.
type Result struct {
	Fragments []types.Fragment
	Dropped   int
	Warnings  []string
	Extension string
	FileType  string
}

// Extractor runs partitioner extraction with fallback recovery.
type Extractor struct {
	partitioner Partitioner
	strategy    Strategy
}

// New builds an Extractor. A nil partitioner is allowed and routes every
// document straight to the fallback chain.
func New(partitioner Partitioner, strategy Strategy) *Extractor {
	if strategy == "" {
		strategy = StrategyHiFi
	}
	return &Extractor{partitioner: partitioner, strategy: strategy}
}

// Extract partitions the document bytes into fragments. Extraction never
// fails: partitioner failures degrade to the fallback chain with a warning,
// and a document no path can read comes back with an empty fragment list and
// a warning so the caller still gets a document.
func (e *Extractor) Extract(ctx context.Context, data []byte, filename string) *Result {
	ext := NormalizeExtension(filename)
	result := &Result{
		Extension: ext,
		FileType:  FileTypeName(ext),
	}

	if e.partitioner != nil {
		raw, err := e.partitionScoped(ctx, data, filename, ext)
		if err == nil {
			result.Fragments, result.Dropped = convertFragments(raw)
			if len(result.Fragments) > 0 {
				return result
			}
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Partitioner returned no usable fragments for %s, using fallback extraction", filename))
		} else {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Partitioner failed for %s (%v), using fallback extraction", filename, err))
		}
	}

	fragments, warnings := fallbackExtract(data, ext)
	result.Warnings = append(result.Warnings, warnings...)
	result.Fragments = append(result.Fragments, fragments...)
	return result
}

// partitionScoped writes the bytes to a temp file so path-based partitioners
// can run, and removes it before returning.
func (e *Extractor) partitionScoped(ctx context.Context, data []byte, filename, ext string) ([]RawFragment, error) {
	tmp, err := os.CreateTemp("", "resume-*"+ext)
	if err != nil {
		return nil, &PartitionError{Filename: filename, Message: "creating temp file", Cause: err}
	}
	path := tmp.Name()
	defer os.Remove(path)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return nil, &PartitionError{Filename: filename, Message: "writing temp file", Cause: err}
	}
	if err := tmp.Close(); err != nil {
		return nil, &PartitionError{Filename: filename, Message: "closing temp file", Cause: err}
	}

	return e.partitioner.Partition(ctx, path, e.strategy)
}

// convertFragments validates raw partitioner output into typed fragments.
// Whitespace-only fragments are dropped and counted; malformed coordinate
// polygons degrade to fragments without a bounding box.
func convertFragments(raw []RawFragment) ([]types.Fragment, int) {
	fragments := make([]types.Fragment, 0, len(raw))
	dropped := 0
	for _, r := range raw {
		text := strings.TrimSpace(r.Text)
		if text == "" {
			dropped++
			continue
		}
		f := types.Fragment{
			Text:     text,
			Category: mapCategory(r.Category),
			Page:     r.Page,
			Box:      boxFromPoints(r.Points),
		}
		if r.Bold || r.Italic || r.FontSize > 0 {
			f.Style = &types.StyleHint{IsBold: r.Bold, IsItalic: r.Italic, FontSize: r.FontSize}
		}
		fragments = append(fragments, f)
	}
	return fragments, dropped
}

func mapCategory(raw string) types.FragmentCategory {
	switch types.FragmentCategory(raw) {
	case types.CategoryTitle, types.CategoryNarrativeText, types.CategoryListItem,
		types.CategoryTable, types.CategoryHeader, types.CategoryFooter,
		types.CategoryEmailAddress, types.CategoryAddress, types.CategoryPhoneNumber:
		return types.FragmentCategory(raw)
	}
	return types.CategoryNarrativeText
}

// boxFromPoints builds a bounding box from polygon corners. Anything short of
// two valid [x, y] pairs yields no box at all.
func boxFromPoints(points [][]float64) *types.BoundingBox {
	minX, minY := 0.0, 0.0
	maxX, maxY := 0.0, 0.0
	valid := 0
	for _, p := range points {
		if len(p) < 2 {
			continue
		}
		if valid == 0 {
			minX, maxX = p[0], p[0]
			minY, maxY = p[1], p[1]
		} else {
			if p[0] < minX {
				minX = p[0]
			}
			if p[0] > maxX {
				maxX = p[0]
			}
			if p[1] < minY {
				minY = p[1]
			}
			if p[1] > maxY {
				maxY = p[1]
			}
		}
		valid++
	}
	if valid < 2 {
		return nil
	}
	return types.NewBoundingBox(minX, minY, maxX, maxY)
}
