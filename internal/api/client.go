// Package api is the typed client for the external REST collaborators:
// auth, profile, connections, posts, jobs, search and CV generation.
// Consumed strictly through their documented contracts; every request
// carries the bearer token held by the session store.
package api

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

type Client struct {
	auth  *resty.Client
	rest  *resty.Client
	store TokenStore
}

// TokenStore is the client-held session storage for the bearer token.
type TokenStore interface {
	Token() (string, error)
	SetToken(token string) error
}

func NewClient(authBaseURL, apiBaseURL string, store TokenStore) *Client {
	c := &Client{
		auth:  resty.New().SetBaseURL(authBaseURL).SetTimeout(15 * time.Second),
		rest:  resty.New().SetBaseURL(apiBaseURL).SetTimeout(15 * time.Second),
		store: store,
	}

	c.rest.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		token, err := store.Token()
		if err != nil {
			return fmt.Errorf("load token: %w", err)
		}
		if token != "" {
			req.SetAuthToken(token)
		}
		return nil
	})

	return c
}

// statusErr maps non-2xx responses to one error shape.
func statusErr(op string, resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}
	log.Warn().
		Str("module", "api").
		Str("op", op).
		Int("status", resp.StatusCode()).
		Msg("request failed")
	return fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode())
}
