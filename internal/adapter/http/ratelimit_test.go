package httpadapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeLimiter struct {
	allow bool
	err   error
	keys  []string
}

func (l *fakeLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.keys = append(l.keys, key)
	return l.allow, l.err
}

func limitedServer(t *testing.T, l Limiter) *httptest.Server {
	return newTestServerWithLimiter(t, seedStore(), l)
}

func TestRateLimitBlocksAdminAPI(t *testing.T) {
	srv := limitedServer(t, &fakeLimiter{allow: false})

	resp, err := srv.Client().Get(srv.URL + "/api/v1/brands")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestRateLimitSkipsRedirects(t *testing.T) {
	limiter := &fakeLimiter{allow: false}
	srv := limitedServer(t, limiter)

	resp, err := noRedirectClient().Get(srv.URL + "/redirect/acme-ig")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Empty(t, limiter.keys)
}

func TestRateLimitFailsOpen(t *testing.T) {
	srv := limitedServer(t, &fakeLimiter{err: errors.New("redis down")})

	resp, err := srv.Client().Get(srv.URL + "/api/v1/brands")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
