package apperr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsCodeAndFields(t *testing.T) {
	base := InvalidInput("glucose", "age")
	wrapped := Wrap(base, "diabetes assessment")

	assert.Equal(t, CodeInvalidInput, GetCode(wrapped))
	appErr, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, []string{"glucose", "age"}, appErr.Fields)
	assert.ErrorIs(t, wrapped, base)
}

func TestWrapPlainErrorIsInternal(t *testing.T) {
	err := Wrapf(errors.New("boom"), "step %d", 3)
	assert.Equal(t, CodeInternalError, GetCode(err))
	assert.Equal(t, "step 3: boom", err.Error())
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "noop"))
	assert.Nil(t, WithCode(CodeNotFound, nil))
}

func TestGetCodeUnknown(t *testing.T) {
	assert.Equal(t, "UNKNOWN", GetCode(errors.New("plain")))
	assert.False(t, Is(errors.New("plain"), CodeParseError))
	assert.True(t, Is(ParseError("fo"), CodeParseError))
}

func TestWithCode(t *testing.T) {
	cause := errors.New("bad json")
	err := WithCode(CodeModelLoad, cause)
	assert.Equal(t, CodeModelLoad, GetCode(err))
	assert.ErrorIs(t, err, cause)
}

func TestIs(t *testing.T) {
	err := Wrap(ParseError("fo"), "parkinsons form")
	assert.True(t, Is(err, CodeParseError))
	assert.False(t, Is(err, CodeInvalidInput))
	assert.False(t, Is(errors.New("plain"), CodeParseError))
	assert.False(t, Is(nil, CodeParseError))
}
