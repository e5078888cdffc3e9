package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

func noJitter(time.Duration) time.Duration { return 0 }

func TestNewRetryClient(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		c := NewRetryClient()
		assert.Equal(t, http.DefaultClient, c.client)
		assert.Equal(t, DefaultMaxAttempts, c.maxAttempts)
		assert.Equal(t, DefaultBaseBackoff, c.baseBackoff)
	})

	t.Run("custom", func(t *testing.T) {
		inner := &http.Client{Timeout: time.Second}
		c := NewRetryClient(WithMaxAttempts(5), WithBaseBackoff(time.Millisecond), WithHTTPClient(inner))
		assert.Equal(t, inner, c.client)
		assert.Equal(t, 5, c.maxAttempts)
		assert.Equal(t, time.Millisecond, c.baseBackoff)
	})
}

func TestRetryClient_Do(t *testing.T) {
	t.Run("error during request", func(t *testing.T) {
		c := NewRetryClient(WithHTTPClient(doerFunc(func(*http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		})))

		req, err := http.NewRequest(http.MethodGet, "http://example.com", nil)
		require.NoError(t, err)

		resp, err := c.Do(req)
		assert.Nil(t, resp)
		assert.EqualError(t, err, "connection refused")
	})

	t.Run("retries and replays body", func(t *testing.T) {
		var calls atomic.Int32
		var bodies []string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b, _ := io.ReadAll(r.Body)
			bodies = append(bodies, string(b))
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		c := NewRetryClient(WithBaseBackoff(time.Millisecond))
		c.jitter = noJitter

		req, err := http.NewRequest(http.MethodPost, srv.URL, strings.NewReader("payload"))
		require.NoError(t, err)

		resp, err := c.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, int32(3), calls.Load())
		assert.Equal(t, []string{"payload", "payload", "payload"}, bodies)
	})

	t.Run("attempts exhausted", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		c := NewRetryClient(WithMaxAttempts(2), WithBaseBackoff(time.Millisecond))
		c.jitter = noJitter

		req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
		require.NoError(t, err)

		resp, err := c.Do(req)
		require.ErrorIs(t, err, ErrRetriesExhausted)
		require.NotNil(t, resp)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("context canceled while waiting", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", "60")
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
		require.NoError(t, err)

		resp, err := NewRetryClient().Do(req)
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestRetryClient_backoff(t *testing.T) {
	c := NewRetryClient(WithBaseBackoff(100 * time.Millisecond))
	c.jitter = noJitter

	tests := []struct {
		name    string
		header  string
		attempt int
		want    time.Duration
	}{
		{name: "retry after header", header: "2", attempt: 0, want: 2 * time.Second},
		{name: "invalid header falls back", header: "soon", attempt: 1, want: 200 * time.Millisecond},
		{name: "first attempt", attempt: 0, want: 100 * time.Millisecond},
		{name: "third attempt", attempt: 2, want: 400 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &http.Response{Header: http.Header{}}
			if tt.header != "" {
				resp.Header.Set("Retry-After", tt.header)
			}
			assert.Equal(t, tt.want, c.backoff(resp, tt.attempt))
		})
	}
}
