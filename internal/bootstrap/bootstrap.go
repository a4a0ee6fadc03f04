package bootstrap

import (
	"context"
	"log/slog"

	geminiclient "github.com/dalili-app/dalili-backend/internal/client/gemini"
	"github.com/dalili-app/dalili-backend/internal/config"
	"github.com/dalili-app/dalili-backend/pkg/logger"
)

type Bootstrap struct {
	Log           *slog.Logger
	GeminiAdapter *geminiclient.Adapter
}

// Run wires the process-wide collaborators. A missing Gemini credential
// is not fatal; the summary service degrades to its fixed unavailable
// message.
func Run(cfg *config.Config) (*Bootstrap, error) {
	applicationCtx := context.Background()
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.NewJSONHandler)

	if cfg.GeminiAPIKey == "" {
		bs.Log.Warn("no gemini api key configured, liquidity analysis disabled")
		return bs, nil
	}

	adapter, err := geminiclient.NewAdapter(applicationCtx, bs.Log, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return bs, err
	}
	bs.GeminiAdapter = adapter

	return bs, nil
}

func (bs *Bootstrap) Close() {
	if bs.GeminiAdapter != nil {
		_ = bs.GeminiAdapter.Close()
	}
}
