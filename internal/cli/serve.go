package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/psharma/contractguard/internal/pipeline"
	"github.com/psharma/contractguard/internal/server"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the analyzer as an HTTP API",
	Long: `Serve exposes the analyzer over HTTP:
  POST /api/analyze       analyze contract text, returns the full report
  POST /api/explain       explain one clause
  GET  /api/sample/{lang} built-in sample contract (en, hi)
  GET  /health            liveness check

Example:
  contractguard serve
  contractguard serve --addr :9090 --llm groq`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :8080)")
	serveCmd.Flags().BoolVar(&noTranslate, "no-translate", false, "disable machine translation of Hindi clauses")

	// LLM flags
	serveCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable generative explanations")
	serveCmd.Flags().StringVar(&llmProvider, "llm-provider", "groq", "LLM provider (groq, openai, ollama)")
	serveCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default when empty)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	srv := server.NewServer(pipeline.NewPipeline(cfg), cfg.Server.Addr)
	return srv.ListenAndServe(ctx)
}
