package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/psharma/contractguard/internal/model"
	"github.com/psharma/contractguard/internal/pipeline"
)

var (
	outJSON     string
	outMD       string
	outText     string
	timeout     time.Duration
	sampleLang  string
	noFooter    bool
	noTranslate bool
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze a contract file for risky clauses",
	Long: `Analyze splits a contract into clauses, detects the document
language (English, Hindi, or mixed), matches each clause against known
risk patterns, and scores the document from 0 to 100.

Hindi and mixed-language clauses are additionally matched against an
English machine translation so English-only patterns still fire.

Example:
  contractguard analyze msa.txt
  contractguard analyze msa.txt --json report.json --md report.md
  contractguard analyze --sample hi
  contractguard analyze nda.txt --llm groq --llm-model llama-3.3-70b-versatile`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().StringVar(&outText, "report", "", "output plain-text report path (optional)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in reports")

	// Analysis flags
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall analysis timeout")
	analyzeCmd.Flags().StringVar(&sampleLang, "sample", "", "analyze a built-in sample contract instead of a file (en, hi)")
	analyzeCmd.Flags().BoolVar(&noTranslate, "no-translate", false, "disable machine translation of Hindi clauses")

	// LLM flags
	analyzeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable generative explanations")
	analyzeCmd.Flags().StringVar(&llmProvider, "llm-provider", "groq", "LLM provider (groq, openai, ollama)")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default when empty)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Resolve input: a file argument or a built-in sample
	var text, document string
	switch {
	case sampleLang != "":
		text = pipeline.SampleContract(model.Language(sampleLang))
		document = "sample_" + sampleLang + ".txt"
	case len(args) == 1:
		var err error
		text, err = pipeline.ReadContract(args[0])
		if err != nil {
			return err
		}
		document = args[0]
	default:
		return fmt.Errorf("provide a contract file or --sample en|hi")
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", document)
		fmt.Fprintf(os.Stderr, "Translation: %v\n", cfg.Translate.Enabled)
		if cfg.LLM.Provider != "" {
			fmt.Fprintf(os.Stderr, "LLM: %s/%s\n", cfg.LLM.Provider, cfg.LLM.Model)
		}
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.NewPipeline(cfg)
	report := p.Analyze(ctx, text, document)

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Split into %d clauses\n", report.Score.TotalClauses)
		fmt.Fprintf(os.Stderr, "✓ Detected language: %s\n", report.Language.DisplayName())
		fmt.Fprintf(os.Stderr, "✓ Flagged %d risky clauses\n", report.Score.RiskyClauses)
		fmt.Fprintln(os.Stderr)
	}

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	renderer.RenderSummary(report)

	if outJSON != "" {
		if err := renderer.RenderJSON(report, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
	}
	if outMD != "" {
		if err := renderer.RenderMarkdownFile(report, outMD); err != nil {
			return fmt.Errorf("render Markdown: %w", err)
		}
	}
	if outText != "" {
		if err := renderer.RenderTextFile(report, outText); err != nil {
			return fmt.Errorf("render report: %w", err)
		}
	}

	return nil
}

// buildConfig assembles the runtime config from defaults, flags, and env
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.Translate.Enabled = !noTranslate
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if !llmEnabled {
		return cfg, nil
	}

	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel

	switch llmProvider {
	case "groq":
		cfg.LLM.APIKey = os.Getenv("GROQ_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("GROQ_API_KEY environment variable not set")
		}
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	return cfg, nil
}
