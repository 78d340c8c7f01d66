package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/extraction"
	"github.com/jonathan/resume-parser/internal/pipeline"
)

var batchCmd = &cobra.Command{
	Use:   "batch [files or directories...]",
	Short: "Parse multiple resumes concurrently",
	Long:  "Parse a batch of resume documents concurrently, writing one markdown file and one JSON report per input into the output directory. Directory arguments expand to the documents directly inside them.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBatch,
}

var (
	batchOutputDir   string
	batchStrategy    string
	batchConcurrency int
	batchConfigFile  string
)

func init() {
	batchCmd.Flags().StringVarP(&batchOutputDir, "out-dir", "o", "", "Directory for parsed outputs (required)")
	batchCmd.Flags().StringVar(&batchStrategy, "strategy", "", "Extraction strategy: hi_res or fast")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Max documents parsed in parallel")
	batchCmd.Flags().StringVarP(&batchConfigFile, "config", "c", "", "Path to JSON config file")
	_ = batchCmd.MarkFlagRequired("out-dir")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, args []string) error {
	cfg := config.Config{
		Strategy:    batchStrategy,
		Concurrency: batchConcurrency,
		OutputDir:   batchOutputDir,
	}
	if batchConfigFile != "" {
		fileCfg, err := config.LoadConfig(batchConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	runner := pipeline.New(pipeline.Options{
		Strategy:    extraction.Strategy(cfg.Strategy),
		Concurrency: cfg.Concurrency,
	})

	paths, err := expandBatchArgs(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no input documents found")
	}

	items := runner.RunAll(context.Background(), paths)

	failures := 0
	for _, item := range items {
		if item.Err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", item.Path, item.Err)
			continue
		}

		base := strings.TrimSuffix(filepath.Base(item.Path), filepath.Ext(item.Path))
		mdPath := filepath.Join(cfg.OutputDir, base+".md")
		reportPath := filepath.Join(cfg.OutputDir, base+".json")

		if err := os.WriteFile(mdPath, []byte(item.Result.Content), 0644); err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "Error: writing %s: %v\n", mdPath, err)
			continue
		}
		jsonBytes, err := json.MarshalIndent(item.Result, "", "  ")
		if err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "Error: marshaling report for %s: %v\n", item.Path, err)
			continue
		}
		if err := os.WriteFile(reportPath, jsonBytes, 0644); err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "Error: writing %s: %v\n", reportPath, err)
			continue
		}

		fmt.Printf("Parsed %s -> %s (%d fragments, %d sections)\n",
			item.Path, mdPath, item.Result.Document.TotalElements, len(item.Result.Document.GroupedSections))
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d documents failed", failures, len(items))
	}
	return nil
}

// expandBatchArgs flattens directory arguments into the regular files directly
// inside them. Nested directories are not walked.
func expandBatchArgs(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", arg, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			paths = append(paths, filepath.Join(arg, entry.Name()))
		}
	}
	return paths, nil
}
