package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/psharma/contractguard/internal/model"
	"github.com/psharma/contractguard/internal/pipeline"
)

var (
	explainLanguage string
	explainRisks    []string
	explainFile     string
)

// explainCmd represents the explain command
var explainCmd = &cobra.Command{
	Use:   "explain [clause text]",
	Short: "Explain a single clause in plain language",
	Long: `Explain matches one clause against the risk patterns and prints a
plain-language explanation: what the clause means, why it is risky,
who benefits, and what to do about it.

With --llm a generative provider writes the explanation; otherwise a
curated template is used. Generative failures always fall back to the
template, so this command never comes back empty.

Example:
  contractguard explain "Company's liability shall be limited to fees paid."
  contractguard explain --file clause.txt --language hi
  contractguard explain "..." --risk "Liability Cap" --llm`,
	Args: cobra.ArbitraryArgs,
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)

	explainCmd.Flags().StringVar(&explainFile, "file", "", "read the clause from a file instead of arguments")
	explainCmd.Flags().StringVar(&explainLanguage, "language", "", "explanation language (en, hi, both; detected when empty)")
	explainCmd.Flags().StringArrayVar(&explainRisks, "risk", nil, "risk category to explain (repeatable; detected when empty)")
	explainCmd.Flags().DurationVar(&timeout, "timeout", 1*time.Minute, "overall timeout")
	explainCmd.Flags().BoolVar(&noTranslate, "no-translate", false, "disable machine translation of Hindi clauses")

	// LLM flags
	explainCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable generative explanations")
	explainCmd.Flags().StringVar(&llmProvider, "llm-provider", "groq", "LLM provider (groq, openai, ollama)")
	explainCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default when empty)")
}

func runExplain(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var clause string
	switch {
	case explainFile != "":
		text, err := pipeline.ReadContract(explainFile)
		if err != nil {
			return err
		}
		clause = text
	case len(args) > 0:
		clause = strings.Join(args, " ")
	default:
		return fmt.Errorf("provide clause text or --file")
	}
	if strings.TrimSpace(clause) == "" {
		return fmt.Errorf("clause is empty")
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	p := pipeline.NewPipeline(cfg)

	risks := make([]model.RiskCategory, 0, len(explainRisks))
	for _, name := range explainRisks {
		risks = append(risks, model.RiskCategory(name))
	}
	language := model.Language(explainLanguage)

	// Missing categories or language: run one analysis to fill the gaps
	if len(risks) == 0 || language == "" {
		report := p.Analyze(ctx, clause, "")
		if len(risks) == 0 {
			for _, f := range report.RiskyFindings() {
				risks = append(risks, f.Risks...)
			}
		}
		if language == "" {
			language = report.Language
		}
	}

	fmt.Println(p.Explain(ctx, clause, language, risks...))
	return nil
}
