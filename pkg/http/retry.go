package http

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"
)

const (
	DefaultMaxAttempts = 3
	DefaultBaseBackoff = time.Millisecond * 500
)

var ErrRetriesExhausted = errors.New("retries exhausted")

// Doer sends a single request
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// RetryClient retries requests the server asked to be repeated (429 and 503)
// with exponential backoff. It can be used concurrently.
type RetryClient struct {
	client      Doer
	baseBackoff time.Duration
	maxAttempts int
	jitter      func(time.Duration) time.Duration
}

// ClientOption configures a RetryClient
type ClientOption func(*RetryClient)

func NewRetryClient(opts ...ClientOption) *RetryClient {
	c := &RetryClient{
		client:      http.DefaultClient,
		maxAttempts: DefaultMaxAttempts,
		baseBackoff: DefaultBaseBackoff,
		jitter:      randomJitter,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithMaxAttempts sets how many times a request is sent before giving up
func WithMaxAttempts(n int) ClientOption {
	return func(c *RetryClient) {
		c.maxAttempts = n
	}
}

func WithBaseBackoff(d time.Duration) ClientOption {
	return func(c *RetryClient) {
		c.baseBackoff = d
	}
}

func WithHTTPClient(client Doer) ClientOption {
	return func(c *RetryClient) {
		c.client = client
	}
}

// Do sends req until it gets a non retryable response, the attempts run out or
// the request context is done. Bodies are replayed through req.GetBody.
// When attempts run out the last response is returned alongside ErrRetriesExhausted.
func (c *RetryClient) Do(req *http.Request) (*http.Response, error) {
	var resp *http.Response

	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		if attempt > 0 && req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return nil, err
			}
			req.Body = body
		}

		var err error
		resp, err = c.client.Do(req)
		if err != nil {
			return nil, err
		}

		if !retryable(resp.StatusCode) {
			return resp, nil
		}

		if attempt == c.maxAttempts-1 {
			break
		}

		wait := c.backoff(resp, attempt)
		resp.Body.Close()

		timer := time.NewTimer(wait)
		select {
		case <-req.Context().Done():
			timer.Stop()
			return nil, req.Context().Err()
		case <-timer.C:
		}
	}

	return resp, fmt.Errorf("%w: %d attempts", ErrRetriesExhausted, c.maxAttempts)
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status == http.StatusServiceUnavailable
}

// backoff prefers the server's Retry-After seconds, otherwise 2^attempt * base plus jitter
func (c *RetryClient) backoff(resp *http.Response, attempt int) time.Duration {
	if header := resp.Header.Get("Retry-After"); header != "" {
		seconds, err := strconv.Atoi(header)
		if err == nil && seconds >= 0 {
			return time.Duration(seconds) * time.Second
		}
	}

	return time.Duration(1<<attempt)*c.baseBackoff + c.jitter(c.baseBackoff)
}

func randomJitter(base time.Duration) time.Duration {
	if base <= 0 {
		return 0
	}
	return rand.N(base)
}
