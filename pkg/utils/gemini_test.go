package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

func TestWrapGeminiError(t *testing.T) {
	t.Run("API status maps to request error", func(t *testing.T) {
		cause := &googleapi.Error{Code: 429, Message: "quota exceeded"}
		err := wrapGeminiError(fmt.Errorf("generate content: %w", cause))

		var reqErr *GenerationRequestError
		require.True(t, errors.As(err, &reqErr))
		assert.Equal(t, 429, reqErr.StatusCode)
		assert.Equal(t, "quota exceeded", reqErr.Body)
	})

	t.Run("network failure stays a transport error", func(t *testing.T) {
		err := wrapGeminiError(errors.New("dial tcp: i/o timeout"))

		var transportErr *GenerationTransportError
		assert.True(t, errors.As(err, &transportErr))
	})
}
