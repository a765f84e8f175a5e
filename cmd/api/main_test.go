// Package main starts the HTTP server exposing graph parsing and analysis
// endpoints. Configuration is read from an optional YAML file named by
// REPGRAPH_CONFIG; handlers render visualization payloads using the
// configured palette.
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/repgraph/core/internal/handlers"
	"github.com/repgraph/core/internal/viz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testGraph = `{
	"id": "20001001",
	"input": "The dog barked.",
	"source": "wsj00a",
	"tokens": [
		{"index": 0, "form": "The", "lemma": "the"},
		{"index": 1, "form": "dog", "lemma": "dog"},
		{"index": 2, "form": "barked.", "lemma": "bark"}
	],
	"nodes": [
		{"label": "_the_q", "tokens": [0], "abstract": true},
		{"label": "_dog_n_1", "tokens": [1]},
		{"label": "_bark_v_1", "tokens": [2]}
	],
	"edges": [
		{"source": 0, "target": 1, "label": "RSTR"},
		{"source": 2, "target": 1, "label": "ARG1"}
	],
	"tops": [2]
}`

func setupRouter() *http.ServeMux {
	api := handlers.New(viz.DefaultPalette())

	mux := http.NewServeMux()
	mux.HandleFunc("/health", handlers.HealthHandler)
	mux.HandleFunc("/parse", api.Parse)
	mux.HandleFunc("/analyze/subgraph", api.Subgraph)
	mux.HandleFunc("/analyze/compare", api.Compare)
	mux.HandleFunc("/analyze/pattern", api.Pattern)
	return mux
}

func TestMainRoutes(t *testing.T) {
	router := setupRouter()

	t.Run("health endpoint is accessible", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	})

	t.Run("parse endpoint is accessible", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/parse", strings.NewReader(testGraph))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	})

	t.Run("non-existent route returns 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAnalysisIntegration(t *testing.T) {
	router := setupRouter()

	t.Run("subgraph analysis end to end", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/analyze/subgraph?node=n2&view=node", strings.NewReader(testGraph))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var payload viz.Payload
		err := json.NewDecoder(w.Body).Decode(&payload)
		require.NoError(t, err)
		assert.Len(t, payload.Nodes, 3)
	})

	t.Run("compare analysis end to end", func(t *testing.T) {
		body := fmt.Sprintf(`{"graph": %s, "other": %s}`, testGraph, testGraph)
		req := httptest.NewRequest(http.MethodPost, "/analyze/compare?view=node", strings.NewReader(body))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response handlers.CompareResponse
		err := json.NewDecoder(w.Body).Decode(&response)
		require.NoError(t, err)
		require.NotNil(t, response.Graph)
		require.NotNil(t, response.Other)

		// A graph compared with itself matches on every node.
		for _, n := range response.Graph.Nodes {
			assert.Equal(t, viz.DefaultPalette()["highlight"], n.Color)
		}
	})

	t.Run("pattern analysis end to end", func(t *testing.T) {
		pattern := `{
			"id": "p",
			"input": "pattern",
			"source": "user",
			"nodes": [{"label": "_bark_v_1"}, {"label": "_dog_n_1"}],
			"edges": [{"source": 0, "target": 1, "label": "ARG1"}],
			"tops": [0]
		}`
		body := fmt.Sprintf(`{"graph": %s, "pattern": %s}`, testGraph, pattern)
		req := httptest.NewRequest(http.MethodPost, "/analyze/pattern", strings.NewReader(body))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response handlers.PatternResponse
		err := json.NewDecoder(w.Body).Decode(&response)
		require.NoError(t, err)
		assert.True(t, response.Matched)
	})
}

func TestRoutePaths(t *testing.T) {
	router := setupRouter()

	testCases := []struct {
		name           string
		path           string
		method         string
		expectedStatus int
	}{
		{"health with GET", "/health", http.MethodGet, http.StatusOK},
		{"health with POST", "/health", http.MethodPost, http.StatusMethodNotAllowed},
		{"parse with POST", "/parse", http.MethodPost, http.StatusBadRequest},
		{"parse with GET", "/parse", http.MethodGet, http.StatusMethodNotAllowed},
		{"subgraph with GET", "/analyze/subgraph", http.MethodGet, http.StatusMethodNotAllowed},
		{"unknown path", "/unknown", http.MethodGet, http.StatusNotFound},
		{"root path", "/", http.MethodGet, http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

func TestConcurrentRequests(t *testing.T) {
	router := setupRouter()

	t.Run("handles concurrent parse requests", func(t *testing.T) {
		// Each request builds its own graph instance, so parallel analyses
		// never share match flags.
		numRequests := 50
		results := make(chan int, numRequests)

		for i := 0; i < numRequests; i++ {
			go func() {
				req := httptest.NewRequest(http.MethodPost, "/analyze/subgraph?node=n2", strings.NewReader(testGraph))
				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)
				results <- w.Code
			}()
		}

		for i := 0; i < numRequests; i++ {
			code := <-results
			assert.Equal(t, http.StatusOK, code)
		}
	})
}
