package quote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stock/NFLX/quote", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("token"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"symbol":"NFLX","companyName":"Netflix Inc","latestPrice":645.12}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	q, err := client.Lookup(context.Background(), "nflx")

	require.NoError(t, err)
	assert.Equal(t, "NFLX", q.Symbol)
	assert.Equal(t, "Netflix Inc", q.Name)
	assert.True(t, q.Price.Equal(decimal.NewFromFloat(645.12)))
}

func TestLookup_UnknownSymbol(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	_, err := client.Lookup(context.Background(), "NOPE")

	assert.ErrorIs(t, err, ErrSymbolNotFound)
}

func TestLookup_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	_, err := client.Lookup(context.Background(), "NFLX")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrSymbolNotFound)
}
