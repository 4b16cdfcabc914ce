package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/emiliopalmerini/typouniverse/internal/app"
	"github.com/emiliopalmerini/typouniverse/internal/config"
	"github.com/emiliopalmerini/typouniverse/internal/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web assistant",
	Long: `Start the web assistant.

Settings come from TYPOUNIVERSE_* environment variables; flags override them.

Examples:
  typouniverse serve                      # Listen on :8080
  typouniverse serve --port 3000          # Listen on :3000
  typouniverse serve --kb ./guides.yaml   # Use a custom knowledge base`,
	RunE: runServe,
}

var (
	servePort int
	serveKB   string
)

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides TYPOUNIVERSE_ADDR)")
	serveCmd.Flags().StringVar(&serveKB, "kb", "", "Knowledge base file (.json, .yaml)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort > 0 {
		cfg.Addr = fmt.Sprintf(":%d", servePort)
	}
	if serveKB != "" {
		cfg.KnowledgeBase = serveKB
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting typouniverse", zap.String("addr", cfg.Addr), zap.String("lang", cfg.Lang))
	return app.Run(ctx, cfg, log)
}
