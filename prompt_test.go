package srcdoc_test

import (
	"testing"

	"github.com/fwojciec/srcdoc"
	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	t.Run("embeds extension and content", func(t *testing.T) {
		t.Parallel()

		prompt := srcdoc.BuildPrompt("db/seed.sql", "INSERT INTO t VALUES (1);")

		want := "\nCan you write a short page documenting this script? .sql\nFile content:\nINSERT INTO t VALUES (1);\n"
		assert.Equal(t, want, prompt)
	})

	t.Run("keeps content verbatim", func(t *testing.T) {
		t.Parallel()

		content := "#!/bin/sh\n\necho \"hi\"\n"

		prompt := srcdoc.BuildPrompt("run.sh", content)

		assert.Contains(t, prompt, content)
		assert.Contains(t, prompt, "script? .sh\n")
	})
}
