package service

import (
	"errors"
	"testing"

	"github.com/inkpost/inkpost-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapError(t *testing.T) {
	t.Parallel()

	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, wrapError("op", "msg", nil))
	})

	t.Run("service sentinels pass through unwrapped", func(t *testing.T) {
		for _, sentinel := range []error{
			ErrAuthorNotFound,
			ErrAuthorLocked,
			ErrPostNotFound,
			ErrCommenterNotFound,
		} {
			assert.Equal(t, sentinel, wrapError("op", "msg", sentinel))
		}
	})

	t.Run("store sentinels map to service sentinels", func(t *testing.T) {
		assert.ErrorIs(t, wrapError("op", "msg", store.ErrAuthorNotFound), ErrAuthorNotFound)
		assert.ErrorIs(t, wrapError("op", "msg", store.ErrPostNotFound), ErrPostNotFound)
		assert.ErrorIs(t, wrapError("op", "msg", store.ErrCommenterNotFound), ErrCommenterNotFound)
	})

	t.Run("infrastructure errors are wrapped with context", func(t *testing.T) {
		infraErr := errors.New("connection reset")
		err := wrapError("add_post", "failed to load author", infraErr)

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, "add_post", svcErr.Operation)
		assert.ErrorIs(t, err, infraErr)
		assert.Contains(t, err.Error(), "add_post")
		assert.Contains(t, err.Error(), "failed to load author")
	})
}
