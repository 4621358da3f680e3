package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/evodexlab/evodex-mcp/internal/core/model"
)

func TestHTTPClientFormulaDifference(t *testing.T) {
	var gotPath string
	var gotBody classifyRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(classifyResponse{Identifiers: []string{"EVODEX.1-F4"}})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 0, zap.NewNop())
	ids, err := c.FormulaDifference(context.Background(), mustReaction(t, "CCCO>>CCC=O"))

	assert.NoError(t, err)
	assert.Equal(t, []string{"EVODEX.1-F4"}, ids)
	assert.Equal(t, "/formula", gotPath)
	assert.Equal(t, "CCCO>>CCC=O", gotBody.Reaction)
}

func TestHTTPClientMatchOperatorsSendsCategory(t *testing.T) {
	var gotBody classifyRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(classifyResponse{Identifiers: []string{"EVODEX.1-E40"}})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 0, zap.NewNop())
	ids, err := c.MatchOperators(context.Background(), mustReaction(t, "CCCO>>CCC=O"), model.CategoryCore)

	assert.NoError(t, err)
	assert.Equal(t, []string{"EVODEX.1-E40"}, ids)
	assert.Equal(t, "C", gotBody.OperatorType)
}

func TestHTTPClientUnparseable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(classifyResponse{Unparseable: true, Error: "could not parse SMILES"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 0, zap.NewNop())
	_, err := c.FormulaDifference(context.Background(), mustReaction(t, "XYZ>>ABC"))

	assert.ErrorIs(t, err, ErrUnparseable)
	assert.NotErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClientServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(classifyResponse{Error: "dataset not loaded"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 0, zap.NewNop())
	_, err := c.MatchOperators(context.Background(), mustReaction(t, "CCO>>CC=O"), model.CategoryExact)

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClientUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewHTTPClient(srv.URL, 0, zap.NewNop())
	_, err := c.FormulaDifference(context.Background(), mustReaction(t, "CCO>>CC=O"))

	assert.ErrorIs(t, err, ErrUnavailable)
}
