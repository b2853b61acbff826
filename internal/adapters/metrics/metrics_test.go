package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokeio/internal/ports"
)

type scriptedTransport map[string]ports.Response

func (s scriptedTransport) Get(_ context.Context, url string) (ports.Response, error) {
	if resp, ok := s[url]; ok {
		return resp, nil
	}
	return ports.Response{}, errors.New("connection reset")
}

func TestResource(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://pokeapi.co/api/v2/pokemon/25/", "pokemon"},
		{"https://pokeapi.co/api/v2/pokemon?limit=1025&offset=0", "pokemon"},
		{"https://pokeapi.co/api/v2/pokemon-species/25/", "pokemon-species"},
		{"https://pokeapi.co/api/v2/evolution-chain/10/", "evolution-chain"},
		{"http://localhost:8080/type/3", "type"},
		{"https://pokeapi.co/", "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want+" "+tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, Resource(tt.url))
		})
	}
}

func TestTransport_CountsOutcomes(t *testing.T) {
	const base = "https://pokeapi.co/api/v2/"
	next := scriptedTransport{
		base + "pokemon/25/": {Status: 200, Body: []byte(`{}`)},
		base + "pokemon/0/":  {Status: 404},
	}
	c := NewCollector("pokeio_test")
	tr := Instrument(next, c)

	for range 2 {
		_, err := tr.Get(context.Background(), base+"pokemon/25/")
		require.NoError(t, err)
	}
	_, err := tr.Get(context.Background(), base+"pokemon/0/")
	require.NoError(t, err)
	_, err = tr.Get(context.Background(), base+"ability/1/")
	require.Error(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.Requests.WithLabelValues("pokemon", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Requests.WithLabelValues("pokemon", OutcomeStatus)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Requests.WithLabelValues("ability", OutcomeError)))
	assert.Equal(t, 2, testutil.CollectAndCount(c.Duration))
}

func TestCollector_Handler(t *testing.T) {
	c := NewCollector("pokeio_test")
	c.Requests.WithLabelValues("type", OutcomeOK).Inc()

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `pokeio_test_upstream_requests_total{outcome="ok",resource="type"} 1`))
}
