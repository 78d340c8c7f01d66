package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/extraction"
	"github.com/jonathan/resume-parser/internal/pipeline"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse one resume into sections and assembled markdown",
	Long:  "Parse a single resume document, group its fragments into sections, and write the assembled markdown plus an optional structured document report.",
	RunE:  runParse,
}

var (
	parseInputFile  string
	parseOutputFile string
	parseReportFile string
	parseStrategy   string
	parseConfigFile string
	parseVerbose    bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to resume document (required)")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to assembled markdown output (default: stdout)")
	parseCmd.Flags().StringVar(&parseReportFile, "report", "", "Path to write the full parse report as JSON")
	parseCmd.Flags().StringVar(&parseStrategy, "strategy", "", "Extraction strategy: hi_res or fast")
	parseCmd.Flags().StringVarP(&parseConfigFile, "config", "c", "", "Path to JSON config file")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print section confidence and warnings")
	_ = parseCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	cfg := config.Config{Strategy: parseStrategy, Verbose: parseVerbose}
	if parseConfigFile != "" {
		fileCfg, err := config.LoadConfig(parseConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	runner := pipeline.New(pipeline.Options{
		Strategy: extraction.Strategy(cfg.Strategy),
	})

	result, err := runner.RunFile(context.Background(), parseInputFile)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	doc := result.Document
	for _, warning := range doc.ParsingWarnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}
	if cfg.Verbose {
		fmt.Fprintf(os.Stderr, "Run %s: %s (%s), %d fragments (%d dropped)\n",
			result.RunID, doc.Filename, doc.FileType, doc.TotalElements, doc.DroppedElements)
		for _, group := range doc.GroupedSections {
			fmt.Fprintf(os.Stderr, "  %-15s confidence %.2f  (%d fragments)\n",
				group.Section, group.Confidence, len(group.Fragments))
		}
	}

	if parseReportFile != "" {
		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report JSON: %w", err)
		}
		if err := os.WriteFile(parseReportFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write report file: %w", err)
		}
	}

	if parseOutputFile == "" {
		fmt.Println(result.Content)
		return nil
	}
	if err := os.WriteFile(parseOutputFile, []byte(result.Content), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
