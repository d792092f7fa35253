package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNetworkErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("connection refused")
	err := NewNetworkError("https://pokeapi.co/api/v2/pokemon", underlying)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	require.Equal(t, "https://pokeapi.co/api/v2/pokemon", netErr.URL)
	require.True(t, stdErrors.Is(err, underlying))
	require.True(t, IsNetwork(err))
	require.False(t, IsParse(err))
	require.Contains(t, err.Error(), "connection refused")
}

func TestStatusErrorReportsCode(t *testing.T) {
	t.Parallel()

	err := NewStatusError("https://pokeapi.co/api/v2/pokemon/1", 503)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	require.Equal(t, 503, netErr.StatusCode)
	require.Contains(t, err.Error(), "unexpected status 503")
}

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected end of JSON input")
	err := NewParseError("https://pokeapi.co/api/v2/pokemon/4", underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.True(t, stdErrors.Is(err, underlying))
	require.True(t, IsParse(fmt.Errorf("detail: %w", err)))
	require.False(t, IsNetwork(err))
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("api.base_url", "must be an http(s) URL", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "api.base_url", validationErr.Field)
	require.Contains(t, err.Error(), "must be an http(s) URL")
}
