package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/sempress/internal/engine"
	"github.com/fyrsmithlabs/sempress/internal/logging"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	eng, err := engine.New(nil, logging.NewNop())
	require.NoError(t, err)
	s, err := NewServer(eng, logging.NewNop(), nil)
	require.NoError(t, err)
	return s
}

func doJSON(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestNewServer_RequiresEngineAndLogger(t *testing.T) {
	_, err := NewServer(nil, logging.NewNop(), nil)
	require.Error(t, err)

	eng, err := engine.New(nil, logging.NewNop())
	require.NoError(t, err)
	_, err = NewServer(eng, nil, nil)
	require.Error(t, err)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "en", resp.Language)
}

func TestEncode(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/encode",
		`{"content": "List the top 5 issues mentioned across all of the available customer transcripts", "kind": "prompt"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp EncodeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Compressed, "[REQ:LIST]")
	assert.Greater(t, resp.OriginalTokens, resp.CompressedTokens)
	assert.Greater(t, resp.CompressionRatio, 0.0)
	assert.False(t, resp.FellBack)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestEncode_DefaultsKindToPrompt(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/encode",
		`{"content": "List the top 5 issues mentioned across all of the available customer transcripts"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp EncodeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Compressed, "[REQ:LIST]")
}

func TestEncode_BadRequests(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing content", `{"kind": "prompt"}`},
		{"unknown kind", `{"content": "hello", "kind": "poem"}`},
		{"records kind on text endpoint", `{"content": "hello", "kind": "records"}`},
		{"malformed json", `{"content":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, s, http.MethodPost, "/api/v1/encode", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestEncodeRecords(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/encode/records",
		`{"name": "products", "records": [
			{"id": "P-1", "name": "Widget", "description": "a long marketing paragraph that will not survive field selection at default threshold"},
			{"id": "P-2", "name": "Gadget", "description": "another long marketing paragraph that will not survive field selection either way"}
		]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp EncodeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Compressed, "[DATA:products:2]")
	assert.Empty(t, resp.RecordErrors)
	assert.Greater(t, resp.CompressionRatio, 0.0)
}

func TestEncodeRecords_EmptyBatch(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/encode/records",
		`{"name": "products", "records": []}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
