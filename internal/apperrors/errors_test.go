package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesKindAndMessages(t *testing.T) {
	sentinel := New(KindConflict, "Post already liked!")
	wrapped := fmt.Errorf("like post: %w", New(KindConflict, "Post already liked!"))

	assert.True(t, errors.Is(wrapped, sentinel))
	assert.False(t, errors.Is(wrapped, New(KindConflict, "Post has not yet been liked")))
	assert.False(t, errors.Is(wrapped, New(KindValidation, "Post already liked!")))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(fmt.Errorf("load: %w", New(KindNotFound, "Post Not Found!"))))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, KindInternal, KindOf(nil))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("signing failed")
	err := Wrap(KindInternal, "token", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "token: signing failed", err.Error())
}

func TestValidationCarriesAllMessages(t *testing.T) {
	err := Validation("Name is required", "Please include a valid email")

	assert.Equal(t, KindValidation, err.Kind)
	assert.Equal(t, []string{"Name is required", "Please include a valid email"}, err.Messages)
}
