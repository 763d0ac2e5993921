package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codedError struct {
	code string
}

func (e *codedError) Error() string { return "coded: " + e.code }

func TestWrap_PreservesCause(t *testing.T) {
	base := New("boom")
	wrapped := Wrap(base, "loading user")

	assert.EqualError(t, wrapped, "loading user: boom")
	assert.True(t, Is(wrapped, base))
	assert.Equal(t, base, Cause(wrapped))
}

func TestWrap_NilStaysNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, Wrapf(nil, "ignored %d", 1))
	assert.NoError(t, WithStack(nil))
}

func TestWrap_RecordsStack(t *testing.T) {
	err := Wrap(New("boom"), "ctx")

	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWrap_RecordsStack")
}

func TestAsType(t *testing.T) {
	err := Wrapf(&codedError{code: "E1"}, "step %d", 2)

	target, ok := AsType[*codedError](err)
	require.True(t, ok)
	assert.Equal(t, "E1", target.code)

	_, ok = AsType[*codedError](New("plain"))
	assert.False(t, ok)
}

func TestJoin(t *testing.T) {
	first := New("first")
	second := New("second")

	joined := Join(first, second)
	assert.True(t, Is(joined, first))
	assert.True(t, Is(joined, second))
	assert.Nil(t, Join(nil, nil))
}

func TestWithMessage(t *testing.T) {
	base := New("boom")
	err := WithMessage(base, "while saving")

	assert.EqualError(t, err, "while saving: boom")
	assert.Equal(t, base, Unwrap(err))
}
