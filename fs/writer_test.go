package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/srcdoc"
	"github.com/fwojciec/srcdoc/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		suffix string
		want   string
	}{
		{
			name:   "sql file",
			source: "src/seed.sql",
			suffix: "_doc.txt",
			want:   filepath.Join("src", "seed_doc.txt"),
		},
		{
			name:   "file in current directory",
			source: "deploy.sh",
			suffix: "_doc.txt",
			want:   "deploy_doc.txt",
		},
		{
			name:   "only last extension is stripped",
			source: "lib/app.test.php",
			suffix: "_doc.txt",
			want:   filepath.Join("lib", "app.test_doc.txt"),
		},
		{
			name:   "custom suffix",
			source: "db/init.sql",
			suffix: ".md",
			want:   filepath.Join("db", "init.md"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, fs.DocPath(tt.source, tt.suffix))
		})
	}
}

func TestWriter_ImplementsInterfaces(t *testing.T) {
	t.Parallel()

	var _ srcdoc.DocWriter = &fs.Writer{}
	var _ srcdoc.OverviewWriter = &fs.Writer{}
}

func TestWriter_WriteDoc(t *testing.T) {
	t.Parallel()

	t.Run("writes page next to source", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		source := filepath.Join(dir, "src", "seed.sql")
		writeTestFile(t, source, "SELECT 1;")

		out, err := fs.NewWriter("_doc.txt").WriteDoc(context.Background(), source, "Seeds the database.")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "src", "seed_doc.txt"), out)
		content, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, "Seeds the database.", string(content))
	})

	t.Run("overwrites existing page", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		source := filepath.Join(dir, "run.sh")
		writeTestFile(t, filepath.Join(dir, "run_doc.txt"), "old documentation that is longer")

		out, err := fs.NewWriter("_doc.txt").WriteDoc(context.Background(), source, "new")

		require.NoError(t, err)
		content, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, "new", string(content))
	})

	t.Run("creates missing directory", func(t *testing.T) {
		t.Parallel()

		source := filepath.Join(t.TempDir(), "gone", "away.php")

		out, err := fs.NewWriter("_doc.txt").WriteDoc(context.Background(), source, "doc")

		require.NoError(t, err)
		_, err = os.Stat(out)
		require.NoError(t, err)
	})

	t.Run("empty suffix uses default", func(t *testing.T) {
		t.Parallel()

		source := filepath.Join(t.TempDir(), "a.sql")

		out, err := fs.NewWriter("").WriteDoc(context.Background(), source, "doc")

		require.NoError(t, err)
		assert.Equal(t, "a_doc.txt", filepath.Base(out))
	})
}

func TestWriter_WriteOverview(t *testing.T) {
	t.Parallel()

	t.Run("replaces previous overview", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "PROJECT_OVERVIEW.md")
		writeTestFile(t, path, "# stale overview from an earlier run")

		err := fs.NewWriter("").WriteOverview(context.Background(), path, "# Project Overview\n")

		require.NoError(t, err)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "# Project Overview\n", string(content))
	})

	t.Run("fails when parent is a file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		writeTestFile(t, blocker, "x")

		err := fs.NewWriter("").WriteOverview(context.Background(), filepath.Join(blocker, "PROJECT_OVERVIEW.md"), "x")

		require.Error(t, err)
	})
}
