package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pikachuJSON = `{
	"id": 25,
	"name": "pikachu",
	"height": 4,
	"weight": 60,
	"types": [{"slot": 1, "type": {"name": "electric", "url": "https://pokeapi.co/api/v2/type/13/"}}],
	"sprites": {
		"front_default": "https://img.example/sprite/25.png",
		"other": {"official-artwork": {"front_default": "https://img.example/art/25.png"}}
	}
}`

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	require.NoError(t, err)
	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "pokeapi.co", u.Host)
	assert.Equal(t, "/api/v2/", u.Path)

	u, err = parseBaseURL("  example.com:8080/api?x=1#frag ")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com:8080/api/", u.String())

	_, err = parseBaseURL("http://")
	assert.Error(t, err)
}

func TestClient_FetchPokemonByIDAndName(t *testing.T) {
	t.Parallel()

	var paths []string
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/v2/pokemon/25", "/api/v2/pokemon/pikachu":
			_, _ = w.Write([]byte(pikachuJSON))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL+"/api/v2", Options{})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	rec, err := c.FetchPokemon(ctx, "25")
	require.NoError(t, err)
	assert.Equal(t, 25, rec.ID)
	assert.Equal(t, "pikachu", rec.Name)
	assert.Equal(t, []string{"electric"}, rec.TypeNames())
	assert.Equal(t, "https://img.example/art/25.png", rec.Sprites.PreferredImage())

	rec, err = c.FetchPokemon(ctx, "pikachu")
	require.NoError(t, err)
	assert.Equal(t, 25, rec.ID)

	assert.Equal(t, []string{"/api/v2/pokemon/25", "/api/v2/pokemon/pikachu"}, paths)
	assert.True(t, strings.HasPrefix(gotUserAgent, "dexter/"), "User-Agent = %q", gotUserAgent)
}

func TestClient_FetchPokemonNotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, Options{})
	require.NoError(t, err)

	_, err = c.FetchPokemon(context.Background(), "missingno")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.Code)
	assert.Contains(t, err.Error(), "returned status 404")
}

func TestClient_FetchPokemonRequiresKey(t *testing.T) {
	c, err := NewClient("127.0.0.1:1", Options{})
	require.NoError(t, err)
	_, err = c.FetchPokemon(context.Background(), "   ")
	assert.Error(t, err)
}

func TestClient_FetchPokemonRejectsDotSegments(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"pokemon": "https://pokeapi.co/api/v2/pokemon/"}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL+"/api/v2", Options{})
	require.NoError(t, err)

	for _, key := range []string{".", "..", " ... "} {
		_, err := c.FetchPokemon(context.Background(), key)
		require.Error(t, err, "key %q", key)
		assert.True(t, errors.Is(err, ErrNotFound), "key %q", key)
	}
	assert.Zero(t, hits.Load())
}

func TestClient_FetchPokemonEmptyRecordIsMalformed(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"sprites": {}}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, Options{})
	require.NoError(t, err)

	rec, err := c.FetchPokemon(context.Background(), "pikachu")
	require.Error(t, err)
	assert.Nil(t, rec)
	assert.True(t, errors.Is(err, ErrMalformed))
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/pokemon/1":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		default:
			http.Error(w, "nope", http.StatusInternalServerError)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, Options{})
	require.NoError(t, err)

	_, err = c.FetchPokemon(context.Background(), "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")

	_, err = c.FetchPokemon(context.Background(), "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "returned status 500")
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestClient_FetchCount(t *testing.T) {
	t.Parallel()

	var gotLimit string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		_ = json.NewEncoder(w).Encode(ListResponse{Count: 1302})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, Options{})
	require.NoError(t, err)

	count, err := c.FetchCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1302, count)
	assert.Equal(t, "1", gotLimit)
}

func TestClient_FetchCountMalformed(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, Options{})
	require.NoError(t, err)

	_, err = c.FetchCount(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformed))
}

func TestClient_LimiterHonoursContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(pikachuJSON))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, Options{RequestsPerSecond: 0.001, Burst: 1})
	require.NoError(t, err)

	_, err = c.FetchPokemon(context.Background(), "25")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = c.FetchPokemon(ctx, "25")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit wait")
}
