// Package slog provides logging decorators for srcdoc interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/srcdoc"
)

// Ensure LoggingProvider implements srcdoc.Provider.
var _ srcdoc.Provider = (*LoggingProvider)(nil)

// LoggingProvider wraps a Provider with logging.
type LoggingProvider struct {
	next   srcdoc.Provider
	logger *slog.Logger
}

// NewLoggingProvider creates a new LoggingProvider.
func NewLoggingProvider(next srcdoc.Provider, logger *slog.Logger) *LoggingProvider {
	return &LoggingProvider{next: next, logger: logger}
}

// Complete delegates to the wrapped provider and logs sizes and duration.
func (p *LoggingProvider) Complete(ctx context.Context, prompt string) (text string, err error) {
	defer func(begin time.Time) {
		p.logger.Info("complete",
			"prompt_bytes", len(prompt),
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Complete(ctx, prompt)
}
