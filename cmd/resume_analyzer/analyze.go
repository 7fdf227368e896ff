package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume and print the results",
	Long: `Runs the full analysis pipeline over a resume text file: scoring,
skill and experience extraction, content quality metrics, ATS checks,
and improvement suggestions.

Reads from --file, or from stdin when --file is "-" or omitted.`,
	RunE: runAnalyze,
}

var (
	analyzeConfigPath string
	analyzeFile       string
	analyzeAPIKey     string
	analyzeNoAI       bool
	analyzePretty     bool
	analyzeRole       string
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file")
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to resume text file (\"-\" or empty reads stdin)")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	analyzeCmd.Flags().BoolVar(&analyzeNoAI, "no-ai", false, "Skip the AI suggestion service and use rule-based suggestions")
	analyzeCmd.Flags().BoolVarP(&analyzePretty, "pretty", "p", false, "Print a formatted summary instead of JSON")
	analyzeCmd.Flags().StringVar(&analyzeRole, "role", "", "Target role to mention in suggestion prompts")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := config.Load(analyzeConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	if analyzeNoAI {
		disabled := false
		cfg.AIEnabled = &disabled
	}

	text, filename, err := readInput(analyzeFile)
	if err != nil {
		return err
	}

	coordinator, cleanup, err := buildCoordinator(ctx, cfg, analyzeRole)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := coordinator.Analyze(ctx, types.AnalysisInput{
		Text:     text,
		Metadata: types.SourceMetadata{Filename: filename},
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if analyzePretty {
		observability.NewPrinter(os.Stdout).PrintResult(result)
		return nil
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// readInput loads the resume text from a file or stdin.
func readInput(path string) (text, filename string, err error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "stdin", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("reading resume file: %w", err)
	}
	return string(data), filepath.Base(path), nil
}
