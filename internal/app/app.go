package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/emiliopalmerini/typouniverse/internal/adapters/memory"
	"github.com/emiliopalmerini/typouniverse/internal/adapters/otel"
	"github.com/emiliopalmerini/typouniverse/internal/config"
	"github.com/emiliopalmerini/typouniverse/internal/knowledge"
	"github.com/emiliopalmerini/typouniverse/internal/messages"
	"github.com/emiliopalmerini/typouniverse/internal/web"
)

// Run wires the server from cfg and serves until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	kb, err := knowledge.LoadOrDefault(cfg.KnowledgeBase)
	if err != nil {
		return fmt.Errorf("loading knowledge base: %w", err)
	}
	source := cfg.KnowledgeBase
	if source == "" {
		source = "embedded"
	}
	log.Info("knowledge base loaded",
		zap.String("source", source),
		zap.Int("platforms", len(kb.Guidelines)),
		zap.Int("mood_groups", len(kb.IRIColors)),
	)

	msgs, err := messages.New(cfg.Lang)
	if err != nil {
		return err
	}

	metrics := otel.New(ctx, otel.ConfigFrom(cfg), log)
	guides := memory.NewGuideStore(cfg.GuideCacheSize)
	server := web.NewServer(cfg.Addr, cfg.ShutdownTimeout, log, kb, guides, metrics, msgs)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Start(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := metrics.Close(shutdownCtx); err != nil {
			log.Warn("flushing metrics", zap.Error(err))
		}
		return nil
	})

	err = g.Wait()
	log.Info("stopped", zap.Duration("shutdown_timeout", cfg.ShutdownTimeout))
	return err
}
