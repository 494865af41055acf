// Package contacts mirrors members and guardians into the external
// contact-management store. Mirroring is best-effort: a failed call is logged
// by the caller and never blocks directory placement.
package contacts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Status is the outcome of a contact-store call. Code is zero when the call
// was skipped (no email).
type Status struct {
	Code int
	Body string
}

// OK reports whether the store accepted the contact. Skipped calls count as
// ok.
func (s Status) OK() bool {
	return s.Code == 0 || (s.Code >= 200 && s.Code < 300)
}

// Client creates contacts in the external store.
type Client interface {
	CreateContact(ctx context.Context, first, last, email, phone string, labelKeys []string) (Status, error)
}

// NopClient is used when no contact store is configured.
type NopClient struct{}

func (NopClient) CreateContact(context.Context, string, string, string, string, []string) (Status, error) {
	return Status{}, nil
}

// Config carries the contact-store endpoints and credentials.
type Config struct {
	BaseURL     string
	TokenURL    string
	ClientEmail string
	SigningKey  string
	Timeout     time.Duration
}

// HTTPClient talks to the contact store over HTTP, acquiring bearer tokens
// via a signed JWT assertion. The token cache is owned by the client
// instance; thread one instance through calls instead of relying on ambient
// static state.
type HTTPClient struct {
	cfg    Config
	http   *http.Client
	tokens *tokenCache
}

func NewHTTPClient(cfg Config) *HTTPClient {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &HTTPClient{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		tokens: &tokenCache{},
	}
}

type createContactRequest struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone,omitempty"`
	LabelKeys []string `json:"labelKeys,omitempty"`
}

// CreateContact posts one contact to the store. A missing email is a silent
// no-op. Non-2xx responses are returned in the status, not as errors; only
// transport and token failures error.
func (c *HTTPClient) CreateContact(ctx context.Context, first, last, email, phone string, labelKeys []string) (Status, error) {
	if email == "" {
		return Status{}, nil
	}

	token, err := c.token(ctx)
	if err != nil {
		return Status{}, err
	}

	payload, err := json.Marshal(createContactRequest{
		FirstName: first,
		LastName:  last,
		Email:     email,
		Phone:     phone,
		LabelKeys: labelKeys,
	})
	if err != nil {
		return Status{}, fmt.Errorf("encode contact: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/contacts", bytes.NewReader(payload))
	if err != nil {
		return Status{}, fmt.Errorf("build contact request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return Status{}, fmt.Errorf("create contact: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return Status{}, fmt.Errorf("read contact response: %w", err)
	}
	return Status{Code: resp.StatusCode, Body: string(body)}, nil
}
