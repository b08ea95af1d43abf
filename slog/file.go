package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/srcdoc"
)

// Ensure LoggingWalker implements srcdoc.FileWalker.
var _ srcdoc.FileWalker = (*LoggingWalker)(nil)

// LoggingWalker wraps a FileWalker with logging.
type LoggingWalker struct {
	next   srcdoc.FileWalker
	logger *slog.Logger
}

// NewLoggingWalker creates a new LoggingWalker.
func NewLoggingWalker(next srcdoc.FileWalker, logger *slog.Logger) *LoggingWalker {
	return &LoggingWalker{next: next, logger: logger}
}

// Walk delegates to the wrapped walker and logs the operation.
func (w *LoggingWalker) Walk(ctx context.Context, root string) (paths []string, err error) {
	defer func(begin time.Time) {
		w.logger.Info("walk",
			"root", root,
			"files", len(paths),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.Walk(ctx, root)
}

// Ensure LoggingReader implements srcdoc.FileReader.
var _ srcdoc.FileReader = (*LoggingReader)(nil)

// LoggingReader wraps a FileReader with debug logging.
type LoggingReader struct {
	next   srcdoc.FileReader
	logger *slog.Logger
}

// NewLoggingReader creates a new LoggingReader.
func NewLoggingReader(next srcdoc.FileReader, logger *slog.Logger) *LoggingReader {
	return &LoggingReader{next: next, logger: logger}
}

// ReadFile delegates to the wrapped reader and logs the operation along
// with a hash of the content, so identical files can be spotted in the log.
func (r *LoggingReader) ReadFile(ctx context.Context, path string) (content string, err error) {
	defer func(begin time.Time) {
		var hash string
		if err == nil {
			hash = srcdoc.ContentHash(content)
		}
		r.logger.Debug("read",
			"path", path,
			"bytes", len(content),
			"hash", hash,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ReadFile(ctx, path)
}
