package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/fwojciec/srcdoc"
	"github.com/fwojciec/srcdoc/mock"
	srcslog "github.com/fwojciec/srcdoc/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingWalker_Walk(t *testing.T) {
	t.Parallel()

	t.Run("logs root and file count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.FileWalker{
			WalkFn: func(ctx context.Context, root string) ([]string, error) {
				return []string{"a.sql", "b.sh", "c.txt"}, nil
			},
		}

		walker := srcslog.NewLoggingWalker(inner, logger)
		paths, err := walker.Walk(context.Background(), "repo")

		require.NoError(t, err)
		assert.Len(t, paths, 3)
		output := buf.String()
		assert.Contains(t, output, "walk")
		assert.Contains(t, output, "root=repo")
		assert.Contains(t, output, "files=3")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.FileWalker{
			WalkFn: func(ctx context.Context, root string) ([]string, error) {
				return nil, errors.New("permission denied")
			},
		}

		walker := srcslog.NewLoggingWalker(inner, logger)
		_, err := walker.Walk(context.Background(), "repo")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"permission denied\"")
	})
}

func TestLoggingReader_ReadFile(t *testing.T) {
	t.Parallel()

	t.Run("logs at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.FileReader{
			ReadFileFn: func(ctx context.Context, path string) (string, error) {
				return "SELECT 1;", nil
			},
		}

		reader := srcslog.NewLoggingReader(inner, logger)
		content, err := reader.ReadFile(context.Background(), "db/init.sql")

		require.NoError(t, err)
		assert.Equal(t, "SELECT 1;", content)
		output := buf.String()
		assert.Contains(t, output, "level=DEBUG")
		assert.Contains(t, output, "path=db/init.sql")
		assert.Contains(t, output, "bytes=9")
		assert.Contains(t, output, "hash="+srcdoc.ContentHash("SELECT 1;"))
	})

	t.Run("logs empty hash on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.FileReader{
			ReadFileFn: func(ctx context.Context, path string) (string, error) {
				return "", srcdoc.Errorf(srcdoc.EINVALID, "not valid UTF-8")
			},
		}

		_, err := srcslog.NewLoggingReader(inner, logger).ReadFile(context.Background(), "latin1.sql")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "hash=\"\"")
		assert.Contains(t, output, "not valid UTF-8")
	})

	t.Run("identical content logs identical hash", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.FileReader{
			ReadFileFn: func(ctx context.Context, path string) (string, error) {
				return "echo copy", nil
			},
		}
		reader := srcslog.NewLoggingReader(inner, logger)

		_, err := reader.ReadFile(context.Background(), "a/run.sh")
		require.NoError(t, err)
		_, err = reader.ReadFile(context.Background(), "b/run.sh")
		require.NoError(t, err)

		want := "hash=" + srcdoc.ContentHash("echo copy")
		assert.Equal(t, 2, strings.Count(buf.String(), want))
	})

	t.Run("is silent at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.FileReader{
			ReadFileFn: func(ctx context.Context, path string) (string, error) {
				return "x", nil
			},
		}

		_, err := srcslog.NewLoggingReader(inner, logger).ReadFile(context.Background(), "a.sh")

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}
