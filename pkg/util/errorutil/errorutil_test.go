package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, ToDomainError(nil))
	})

	t.Run("wrapped domain error", func(t *testing.T) {
		base := NewUnauthorized(CodeNoToken, "no token provided")
		got := ToDomainError(fmt.Errorf("me: %w", base))
		require.NotNil(t, got)
		assert.Equal(t, CodeNoToken, got.Code)
		assert.Equal(t, http.StatusUnauthorized, got.HTTPStatus)
	})

	t.Run("fiber error", func(t *testing.T) {
		got := ToDomainError(fiber.NewError(http.StatusNotFound, "Cannot GET /nope"))
		assert.Equal(t, CodeNotFound, got.Code)
		assert.Equal(t, http.StatusNotFound, got.HTTPStatus)
	})

	t.Run("unknown error hides cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		got := ToDomainError(cause)
		assert.Equal(t, CodeInternal, got.Code)
		assert.Equal(t, "internal server error", got.Message)
		assert.ErrorIs(t, got, cause)
	})
}
