package apperr

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSample = &Error{Message: "unknown cycle index: %d"}

func TestFmtKeepsSentinelIdentity(t *testing.T) {
	err := errSample.Fmt(14)

	assert.Equal(t, "unknown cycle index: 14", err.Error())
	assert.ErrorIs(t, err, errSample)
}

func TestWrapExposesCause(t *testing.T) {
	err := errSample.Wrap(io.EOF)

	assert.ErrorIs(t, err, io.EOF)
	assert.ErrorIs(t, err, errSample)
	assert.Equal(t, "unknown cycle index: %d: EOF", err.Error())
}

func TestDistinctSentinelsDoNotMatch(t *testing.T) {
	other := &Error{Message: "other"}

	assert.False(t, errors.Is(errSample.Fmt(1), other))
}
