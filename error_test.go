package srcdoc_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/srcdoc"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := srcdoc.Errorf(srcdoc.ESERVICE, "status=%d", 500)

	assert.Equal(t, srcdoc.ESERVICE, srcdoc.ErrorCode(err))
	assert.Equal(t, "status=500", srcdoc.ErrorMessage(err))
	assert.Equal(t, "srcdoc error: code=service message=status=500", err.Error())
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, srcdoc.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, srcdoc.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("read seed.sql: %w", srcdoc.Errorf(srcdoc.EINVALID, "not valid UTF-8"))

	assert.Equal(t, srcdoc.EINVALID, srcdoc.ErrorCode(err))
	assert.Equal(t, "not valid UTF-8", srcdoc.ErrorMessage(err))
}

func TestErrorCode_PlainErrorIsInternal(t *testing.T) {
	t.Parallel()

	err := errors.New("disk full")

	assert.Equal(t, srcdoc.EINTERNAL, srcdoc.ErrorCode(err))
	assert.Equal(t, "disk full", srcdoc.ErrorMessage(err))
}
