package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/emiliopalmerini/typouniverse/internal/config"
	"github.com/emiliopalmerini/typouniverse/internal/knowledge"
)

func testConfig() *config.Config {
	return &config.Config{
		Addr:            "127.0.0.1:0",
		ShutdownTimeout: time.Second,
		Lang:            "en",
		GuideCacheSize:  8,
		LogLevel:        "info",
		LogFormat:       "console",
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, testConfig(), zap.NewNop()) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_MissingKnowledgeBase(t *testing.T) {
	cfg := testConfig()
	cfg.KnowledgeBase = filepath.Join(t.TempDir(), "missing.json")

	err := Run(context.Background(), cfg, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading knowledge base")
}

func TestRun_UnsupportedExtension(t *testing.T) {
	cfg := testConfig()
	cfg.KnowledgeBase = filepath.Join(t.TempDir(), "kb.toml")

	err := Run(context.Background(), cfg, zap.NewNop())
	assert.ErrorIs(t, err, knowledge.ErrInvalidKnowledgeBase)
}

func TestRun_UnsupportedLanguage(t *testing.T) {
	cfg := testConfig()
	cfg.Lang = "fr"

	err := Run(context.Background(), cfg, zap.NewNop())
	assert.Error(t, err)
}
