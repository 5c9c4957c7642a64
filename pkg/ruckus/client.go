// Package ruckus is a minimal client for the RUCKUS One cloud API,
// covering OAuth2 client-credentials authentication and AP LAN port
// settings.
package ruckus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultBaseURL is the production RUCKUS One API endpoint. It also serves
// as the OAuth2 audience value.
const DefaultBaseURL = "https://api.ruckus.cloud"

const defaultTimeout = 30 * time.Second

// Client issues authenticated requests against a single tenant. It is not
// safe for concurrent use; the tool runs strictly sequentially.
type Client struct {
	baseURL  string
	tenantID string
	http     *http.Client
	log      *logrus.Entry
	token    string
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger attaches a logger. Requests, responses, and errors are logged
// at INFO/ERROR.
func WithLogger(log *logrus.Entry) Option {
	return func(c *Client) { c.log = log }
}

// New creates a client for the given API base URL and tenant.
func New(baseURL, tenantID string, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		tenantID: tenantID,
		http:     &http.Client{Timeout: defaultTimeout},
		log:      logrus.NewEntry(discardLogger()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// Token returns the bearer token obtained by Authenticate, or "" before
// authentication.
func (c *Client) Token() string { return c.token }

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Authenticate performs the OAuth2 client-credentials exchange against the
// tenant-scoped token endpoint and stores the bearer token on the client.
// Any failure (transport, non-2xx, missing access_token) is an *AuthError;
// the run cannot proceed without a token.
func (c *Client) Authenticate(ctx context.Context, clientID, clientSecret string) error {
	endpoint := fmt.Sprintf("%s/oauth2/token/%s", c.baseURL, url.PathEscape(c.tenantID))
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {clientID},
		"client_secret": {clientSecret},
		"audience":      {c.baseURL},
	}

	c.log.WithField("url", endpoint).Info("requesting access token")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return &AuthError{Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithField("url", endpoint).Errorf("authentication request failed: %v", err)
		return &AuthError{Err: err}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	c.log.WithField("status", resp.StatusCode).Info("auth response received")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Errorf("authentication failed: status %d: %s", resp.StatusCode, body)
		return &AuthError{Status: resp.StatusCode, Body: string(body)}
	}

	var tok tokenResponse
	if err := json.Unmarshal(body, &tok); err != nil {
		return &AuthError{Status: resp.StatusCode, Err: fmt.Errorf("decoding token response: %w", err)}
	}
	if tok.AccessToken == "" {
		c.log.Error("no access_token in auth response")
		return &AuthError{Status: resp.StatusCode, Body: string(body), Err: errMissingToken}
	}

	c.token = tok.AccessToken
	c.log.Info("obtained access token")
	return nil
}
