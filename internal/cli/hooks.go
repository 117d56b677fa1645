package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphml/pkg/observability"
)

// logHooks reports observability events as debug log lines. It is
// registered when --verbose is set.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnExportStart(ctx context.Context, source string) {
	h.logger.Debug("export started", "source", source)
}

func (h logHooks) OnExportComplete(ctx context.Context, source string, stats observability.ExportStats, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("export failed", "source", source, "err", err, "duration", d)
		return
	}
	h.logger.Debug("export complete", "source", source,
		"nodes", stats.Nodes, "edges", stats.Edges, "bytes", stats.Bytes, "duration", d)
}

func (h logHooks) OnCacheHit(ctx context.Context, source string) {
	h.logger.Debug("cache hit", "source", source)
}

func (h logHooks) OnCacheMiss(ctx context.Context, source string) {
	h.logger.Debug("cache miss", "source", source)
}

func (h logHooks) OnCacheSet(ctx context.Context, source string, size int) {
	h.logger.Debug("cache set", "source", source, "bytes", size)
}

func (h logHooks) OnResponse(ctx context.Context, method, path string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "path", path, "status", status, "duration", d)
}

// registerLogHooks installs logHooks for every hook category.
func registerLogHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetExportHooks(h)
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
}
