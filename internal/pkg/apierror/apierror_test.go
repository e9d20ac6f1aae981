package apierror

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultsToBadRequest(t *testing.T) {
	err := New("bad input", 0)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "bad input", err.Error())
}

func TestToMap(t *testing.T) {
	err := NotFound("Not Found")
	assert.Equal(t, map[string]any{"message": "Not Found"}, err.ToMap())
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
}

func TestAs_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NotFound("gone"))

	apiErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, "gone", apiErr.Message)

	_, ok = As(fmt.Errorf("plain"))
	assert.False(t, ok)
}
