package transport_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/rmbrowse/internal/transport"
	"github.com/agentstation/rmbrowse/pkg/errors"
)

func TestDecode(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var out struct {
			ID int `json:"id"`
		}
		resp := &transport.Response{StatusCode: http.StatusOK, Body: []byte(`{"id":5}`)}
		require.NoError(t, transport.Decode(resp, "character", &out))
		assert.Equal(t, 5, out.ID)
	})

	t.Run("not found lifts api message", func(t *testing.T) {
		resp := &transport.Response{
			StatusCode: http.StatusNotFound,
			Body:       []byte(`{"error":"Character not found"}`),
			URL:        "https://rickandmortyapi.com/api/character/9999",
		}
		err := transport.Decode(resp, "character", &struct{}{})

		var statusErr *errors.HTTPStatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
		assert.Equal(t, "Character not found", statusErr.Message)
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("server error with html body", func(t *testing.T) {
		resp := &transport.Response{StatusCode: http.StatusBadGateway, Body: []byte(`<html>bad gateway</html>`)}
		err := transport.Decode(resp, "episode", &struct{}{})

		var statusErr *errors.HTTPStatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Empty(t, statusErr.Message)
		assert.ErrorIs(t, err, errors.ErrUnavailable)
	})

	t.Run("schema mismatch", func(t *testing.T) {
		var out struct {
			ID int `json:"id"`
		}
		resp := &transport.Response{StatusCode: http.StatusOK, Body: []byte(`{"id":"five"}`)}
		err := transport.Decode(resp, "character", &out)
		assert.True(t, errors.IsDecode(err))
		assert.Contains(t, err.Error(), "decoding character")
	})
}

func TestIsArray(t *testing.T) {
	assert.True(t, transport.IsArray([]byte(" \n[{}]")))
	assert.False(t, transport.IsArray([]byte(`{"id":1}`)))
	assert.False(t, transport.IsArray(nil))
}
