package api

import (
	"context"
	"sync"
)

// tokenCache is the process-wide session token state: registered once
// on first authenticated call, cleared on sign-out, with concurrent
// registrations collapsed into a single in-flight request.
type tokenCache struct {
	mu         sync.Mutex
	credential string
	token      string
	lastErr    error
	inflight   chan struct{} // non-nil while a registration is running
}

type registerRequest struct {
	Credential string `json:"credential"`
}

type registerResponse struct {
	Token string `json:"token"`
}

// token returns the cached session token, registering one with the
// backend if needed. With no credential configured it returns "" and
// calls go out unauthenticated (local single-user backend).
func (c *Client) token(ctx context.Context) (string, error) {
	c.auth.mu.Lock()
	if c.auth.credential == "" || c.auth.token != "" {
		token := c.auth.token
		c.auth.mu.Unlock()
		return token, nil
	}

	// Join an in-flight registration instead of issuing another.
	if ch := c.auth.inflight; ch != nil {
		c.auth.mu.Unlock()
		select {
		case <-ch:
		case <-ctx.Done():
			return "", ctx.Err()
		}
		c.auth.mu.Lock()
		token, err := c.auth.token, c.auth.lastErr
		c.auth.mu.Unlock()
		return token, err
	}

	ch := make(chan struct{})
	c.auth.inflight = ch
	credential := c.auth.credential
	c.auth.mu.Unlock()

	token, err := c.register(ctx, credential)

	c.auth.mu.Lock()
	if err == nil {
		c.auth.token = token
	}
	c.auth.lastErr = err
	c.auth.inflight = nil
	close(ch)
	c.auth.mu.Unlock()

	return token, err
}

// register exchanges the configured credential for a session token.
// It bypasses the envelope auth path on purpose.
func (c *Client) register(ctx context.Context, credential string) (string, error) {
	req, err := c.newRequest(ctx, "POST", "/api/auth/register", nil, registerRequest{Credential: credential})
	if err != nil {
		return "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out registerResponse
	if err := decodeEnvelope(resp, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// SignOut drops the cached session token. The next authenticated call
// registers again.
func (c *Client) SignOut() {
	c.auth.mu.Lock()
	c.auth.token = ""
	c.auth.lastErr = nil
	c.auth.mu.Unlock()
}
