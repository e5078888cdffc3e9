package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	pagerhttp "github.com/kasuboski/pager/pkg/http"
	"github.com/kasuboski/pager/pkg/logger"
	"github.com/kasuboski/pager/pkg/pagination"
	"go.uber.org/zap"
)

// Client executes queries against a remote pager server's /graphql endpoint
type Client struct {
	url  string
	http pagerhttp.Doer
}

// remoteResponse mirrors the server's response wrapper
type remoteResponse struct {
	Error    *string         `json:"error"`
	Response json.RawMessage `json:"response"`
}

func NewClient(url string, doer pagerhttp.Doer) *Client {
	return &Client{url: url, http: doer}
}

// Execute posts query and vars and returns the envelope the server answered with.
// Numbers in the envelope are kept as json.Number.
func (c *Client) Execute(ctx context.Context, query string, vars pagination.QueryVariables) (pagination.Envelope, error) {
	log := logger.FromCtx(ctx)

	body, err := json.Marshal(map[string]any{
		"query":     query,
		"variables": vars,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("content-type", "application/json")

	resp, err := c.http.Do(req)
	if resp == nil || (err != nil && !errors.Is(err, pagerhttp.ErrRetriesExhausted)) {
		return nil, fmt.Errorf("failed to reach %s: %w", c.url, err)
	}
	defer resp.Body.Close()

	if err != nil {
		return nil, fmt.Errorf("%s: %w", resp.Status, err)
	}

	var rr remoteResponse
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&rr); err != nil {
		log.Debug("undecodable response", zap.Int("status", resp.StatusCode), zap.Error(err))
		return nil, fmt.Errorf("unexpected response with status %s: %w", resp.Status, err)
	}

	if rr.Error != nil {
		return nil, fmt.Errorf("%w: %s", ErrQuery, *rr.Error)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	env := pagination.Envelope{}
	if len(rr.Response) == 0 || bytes.Equal(rr.Response, []byte("null")) {
		return env, nil
	}

	dec = json.NewDecoder(bytes.NewReader(rr.Response))
	dec.UseNumber()
	if err := dec.Decode(&env); err != nil {
		return nil, fmt.Errorf("response is not an envelope: %w", err)
	}

	return env, nil
}
