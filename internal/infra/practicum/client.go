// Package practicum talks to the Practicum homework statuses API.
package practicum

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"homework_status_bot/internal/domain/homework"

	"github.com/go-resty/resty/v2"
)

// Client fetches homework status changes since a UNIX timestamp.
type Client struct {
	client   *resty.Client
	endpoint string
	now      func() time.Time
}

// NewClient creates a client that authenticates with the given OAuth token.
func NewClient(endpoint, token string, timeout time.Duration) *Client {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Authorization", "OAuth "+token).
		SetHeader("Accept", "application/json")
	return &Client{client: client, endpoint: endpoint, now: time.Now}
}

// Endpoint returns the URL being polled.
func (c *Client) Endpoint() string { return c.endpoint }

// Fetch requests statuses changed since cursor and returns the decoded JSON body.
// A zero cursor means "now".
func (c *Client) Fetch(ctx context.Context, cursor int64) (any, error) {
	if cursor == 0 {
		cursor = c.now().Unix()
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("from_date", strconv.FormatInt(cursor, 10)).
		Get(c.endpoint)
	if err != nil {
		return nil, &homework.Error{Kind: homework.KindTransport, Endpoint: c.endpoint, Err: err}
	}
	if err := classifyResponse(c.endpoint, resp.StatusCode()); err != nil {
		return nil, err
	}

	var body any
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, &homework.Error{Kind: homework.KindTransport, Endpoint: c.endpoint, StatusCode: resp.StatusCode(), Err: err}
	}
	return body, nil
}

func classifyResponse(endpoint string, code int) error {
	kind := homework.KindTransport
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		kind = homework.KindEndpoint
	case code >= 400 && code < 500:
		kind = homework.KindClient
	case code >= 500:
		kind = homework.KindServer
	}
	return &homework.Error{Kind: kind, Endpoint: endpoint, StatusCode: code}
}
