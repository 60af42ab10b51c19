package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeErrorTypedPayload(t *testing.T) {
	body := []byte(`{"error":{"code":"GAME_NOT_FOUND","message":"Game not found"}}`)

	err := decodeError(404, body)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "GAME_NOT_FOUND", apiErr.Code)
	assert.Equal(t, "Game not found (GAME_NOT_FOUND)", apiErr.Error())
}

func TestDecodeErrorAuthHint(t *testing.T) {
	body := []byte(`{"error":{"code":"UNAUTHORIZED","message":"Authentication required"}}`)

	err := decodeError(401, body)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bangctl user login")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "UNAUTHORIZED", apiErr.Code)
}

func TestDecodeErrorUnshapedBody(t *testing.T) {
	err := decodeError(502, []byte("bad gateway"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 502")
	assert.Contains(t, err.Error(), "bad gateway")
}
