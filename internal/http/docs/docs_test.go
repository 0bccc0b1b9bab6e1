package docs

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONMatchesYAML(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler().JSON(rec, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])

	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	for _, p := range []string{"/auth/login", "/users/{id}", "/sensor-data/latest/{container_id}", "/sheep-reports/recent/{status}"} {
		assert.Contains(t, paths, p)
	}
}

func TestYAML(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler().YAML(rec, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/x-yaml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "openapi: 3.0.3")
}

func TestUI(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler().UI(rec, httptest.NewRequest(http.MethodGet, "/api-docs", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `url: "/openapi.json"`)
}

func TestStringKeys(t *testing.T) {
	out := stringKeys(map[any]any{200: []any{map[any]any{"a": 1}}})
	b, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"200":[{"a":1}]}`, string(b))
}
