package contacts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"rosterd/pkg/sentinel"
)

// tokenCache holds the bearer token and its expiry. It replaces the original
// ambient class-level cache with an explicit value owned by the client.
type tokenCache struct {
	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// expiryMargin refreshes tokens slightly early so in-flight requests never
// carry a token that expires mid-call.
const expiryMargin = 30 * time.Second

// token returns a cached bearer token, acquiring a fresh one when the cache
// is empty or near expiry.
func (c *HTTPClient) token(ctx context.Context) (string, error) {
	c.tokens.mu.Lock()
	defer c.tokens.mu.Unlock()

	if c.tokens.token != "" && time.Now().Add(expiryMargin).Before(c.tokens.expiresAt) {
		return c.tokens.token, nil
	}

	assertion, err := c.signAssertion()
	if err != nil {
		return "", fmt.Errorf("sign token assertion: %w", err)
	}

	form := url.Values{}
	form.Set("grant_type", "urn:ietf:params:oauth:grant-type:jwt-bearer")
	form.Set("assertion", assertion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request token: %w", err)
	}
	defer resp.Body.Close()

	var grant struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&grant); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	// A token endpoint that answers without a token is a structural failure
	// for this mirroring call; directory placement is unaffected.
	if grant.AccessToken == "" {
		return "", sentinel.ErrNoToken
	}

	c.tokens.token = grant.AccessToken
	c.tokens.expiresAt = time.Now().Add(time.Duration(grant.ExpiresIn) * time.Second)
	return c.tokens.token, nil
}

func (c *HTTPClient) signAssertion() (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    c.cfg.ClientEmail,
		Subject:   c.cfg.ClientEmail,
		Audience:  []string{c.cfg.TokenURL},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(c.cfg.SigningKey))
}
