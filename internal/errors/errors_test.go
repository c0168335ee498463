package errors

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHideError(t *testing.T) {
	t.Run("basic error creation", func(t *testing.T) {
		err := NewHideError(ErrCodeNoFileName, "no file name", nil)

		assert.Equal(t, ErrCodeNoFileName, err.Code)
		assert.Equal(t, "no file name", err.Message)
		assert.Nil(t, err.Cause)
		assert.Equal(t, "no file name", err.Error())
	})

	t.Run("error with cause", func(t *testing.T) {
		cause := fmt.Errorf("underlying error")
		err := NewHideError(ErrCodeIO, "rename failed", cause)

		assert.Equal(t, "rename failed: underlying error", err.Error())
		assert.Equal(t, cause, err.Unwrap())
	})

	t.Run("error with context", func(t *testing.T) {
		err := NewHideError(ErrCodeIO, "io", nil).
			WithContext("path", "/tmp/x").
			WithContext("operation", "rename")

		assert.Equal(t, "/tmp/x", err.Context["path"])
		assert.Equal(t, "rename", err.Context["operation"])
	})

	t.Run("context map is created lazily", func(t *testing.T) {
		err := &HideError{Code: ErrCodeIO}
		err.WithContext("k", "v")

		assert.Equal(t, "v", err.Context["k"])
	})
}

func TestErrorFactoryFunctions(t *testing.T) {
	t.Run("ErrNoFileName", func(t *testing.T) {
		err := ErrNoFileName("/")

		assert.Equal(t, ErrCodeNoFileName, err.Code)
		assert.Contains(t, err.Message, "no file name")
		assert.Equal(t, "/", err.Context["path"])
	})

	t.Run("ErrNotUnicode", func(t *testing.T) {
		err := ErrNotUnicode("bad\xff")

		assert.Equal(t, ErrCodeNotUnicode, err.Code)
		assert.Contains(t, err.Message, "not valid unicode")
	})

	t.Run("ErrEmptyFileName", func(t *testing.T) {
		err := ErrEmptyFileName("dir/~", '~')

		assert.Equal(t, ErrCodeEmptyFileName, err.Code)
		assert.Equal(t, "~", err.Context["marker"])
	})

	t.Run("ErrNotHidden is internal", func(t *testing.T) {
		err := ErrNotHidden("file.txt", '.')

		assert.Equal(t, ErrCodeNotHidden, err.Code)
		assert.True(t, err.IsInternal())
		assert.False(t, ErrFileDoesNotExist("x").IsInternal())
	})

	t.Run("ErrIO records the operation", func(t *testing.T) {
		err := ErrIO("rename", os.ErrPermission)

		assert.Equal(t, ErrCodeIO, err.Code)
		assert.Equal(t, "rename", err.Operation)
		assert.Equal(t, "rename", err.Context["operation"])
		assert.Contains(t, err.Error(), "during rename")
		assert.ErrorIs(t, err, os.ErrPermission)
	})

	t.Run("ErrInvalidCommand", func(t *testing.T) {
		err := ErrInvalidCommand("cannot specify 'hide' and 'unhide' at the same time")

		assert.Equal(t, ErrCodeInvalidCommand, err.Code)
		assert.Contains(t, err.Error(), "at the same time")
	})

	t.Run("ErrFileDoesNotExist", func(t *testing.T) {
		err := ErrFileDoesNotExist("missing.txt")

		assert.Equal(t, "the provided file path 'missing.txt' does not exist", err.Error())
	})
}

func TestErrorHelpers(t *testing.T) {
	t.Run("IsHideError", func(t *testing.T) {
		err := ErrNoFileName("/")

		assert.True(t, IsHideError(err, ErrCodeNoFileName))
		assert.False(t, IsHideError(err, ErrCodeIO))
		assert.False(t, IsHideError(fmt.Errorf("standard error"), ErrCodeNoFileName))
	})

	t.Run("IsHideError through wrapping", func(t *testing.T) {
		err := Wrap(ErrFileDoesNotExist("x"), "toggle")

		assert.True(t, IsHideError(err, ErrCodeFileDoesNotExist))
	})

	t.Run("GetErrorCode", func(t *testing.T) {
		assert.Equal(t, ErrCodeNoFileName, GetErrorCode(ErrNoFileName("/")))
		assert.Equal(t, "", GetErrorCode(fmt.Errorf("standard error")))
	})

	t.Run("GetErrorContext", func(t *testing.T) {
		ctx := GetErrorContext(ErrFileDoesNotExist("/test/path"))
		require.NotNil(t, ctx)
		assert.Equal(t, "/test/path", ctx["path"])

		assert.Nil(t, GetErrorContext(fmt.Errorf("standard error")))
	})

	t.Run("errors.Is compares codes", func(t *testing.T) {
		err := ErrIO("rename", os.ErrExist)

		assert.True(t, Is(err, &HideError{Code: ErrCodeIO}))
		assert.False(t, Is(err, &HideError{Code: ErrCodeNoFileName}))
	})
}

func TestWrap(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "msg"))
		assert.NoError(t, Wrapf(nil, "msg %d", 1))
		assert.NoError(t, WithOperation(nil, "rename"))
	})

	t.Run("Wrapf formats message", func(t *testing.T) {
		err := Wrapf(New("boom"), "step %d", 2)

		assert.Equal(t, "step 2: boom", err.Error())
	})

	t.Run("WithOperation tags hide errors", func(t *testing.T) {
		err := WithOperation(ErrFileDoesNotExist("x"), "lookup")

		var hideErr *HideError
		require.True(t, As(err, &hideErr))
		assert.Equal(t, "lookup", hideErr.Operation)
		assert.Equal(t, ErrCodeFileDoesNotExist, hideErr.Code)
	})

	t.Run("WithOperation converts plain errors to IO errors", func(t *testing.T) {
		err := WithOperation(os.ErrNotExist, "existence check")

		assert.True(t, IsHideError(err, ErrCodeIO))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
