package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/llm"
	"github.com/jonathan/resume-parser/internal/pipeline"
	"github.com/jonathan/resume-parser/internal/schemas"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a structured candidate profile from a resume",
	Long:  "Parse a resume document and extract a structured ResumeProfile JSON via the LLM, validating it against the resume_profile schema.",
	RunE:  runExtract,
}

var (
	extractInputFile  string
	extractOutputFile string
	extractAPIKey     string
	extractModel      string
	extractConfigFile string
	extractValidate   bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to resume document (required)")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output profile JSON file (default: stdout)")
	extractCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	extractCmd.Flags().StringVar(&extractModel, "model", "", "Gemini model name override")
	extractCmd.Flags().StringVarP(&extractConfigFile, "config", "c", "", "Path to JSON config file")
	extractCmd.Flags().BoolVar(&extractValidate, "validate", false, "Validate the profile against the JSON schema")
	_ = extractCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	cfg := config.Config{APIKey: extractAPIKey, Model: extractModel, ValidateOutput: extractValidate}
	if extractConfigFile != "" {
		fileCfg, err := config.LoadConfig(extractConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	ctx := context.Background()

	runner := pipeline.New(pipeline.Options{})
	result, err := runner.RunFile(ctx, extractInputFile)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}
	for _, warning := range result.Document.ParsingWarnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}

	llmConfig := llm.DefaultConfig()
	if cfg.Model != "" {
		llmConfig.Models[llm.TierStandard] = cfg.Model
	}
	client, err := llm.NewGeminiClient(ctx, llmConfig, apiKey)
	if err != nil {
		return err
	}
	defer client.Close()

	profile, err := llm.ExtractProfile(ctx, client, result.Document)
	if err != nil {
		return fmt.Errorf("failed to extract profile: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if cfg.ValidateOutput {
		if err := schemas.ValidateProfileJSON(string(jsonBytes)); err != nil {
			return fmt.Errorf("profile failed schema validation: %w", err)
		}
	}

	if extractOutputFile == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(extractOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
