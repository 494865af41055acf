package contacts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosterd/pkg/sentinel"
)

const testSigningKey = "test-signing-key"

func newTestServer(t *testing.T, tokenHits *atomic.Int32, contactStatus int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		tokenHits.Add(1)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "urn:ietf:params:oauth:grant-type:jwt-bearer", r.Form.Get("grant_type"))

		// The assertion must verify against the shared signing key.
		_, err := jwt.ParseWithClaims(r.Form.Get("assertion"), &jwt.RegisteredClaims{},
			func(*jwt.Token) (any, error) { return []byte(testSigningKey), nil })
		assert.NoError(t, err)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok-123",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/contacts", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.WriteHeader(contactStatus)
		_, _ = w.Write([]byte(`{"id":"c1"}`))
	})
	return httptest.NewServer(mux)
}

func newTestClient(srv *httptest.Server) *HTTPClient {
	return NewHTTPClient(Config{
		BaseURL:     srv.URL,
		TokenURL:    srv.URL + "/token",
		ClientEmail: "svc@rosterd.test",
		SigningKey:  testSigningKey,
	})
}

func TestCreateContact(t *testing.T) {
	var tokenHits atomic.Int32
	srv := newTestServer(t, &tokenHits, http.StatusCreated)
	defer srv.Close()

	client := newTestClient(srv)
	status, err := client.CreateContact(context.Background(),
		"Finn", "Kelly", "finn@x.com", "408-555-1234", []string{"custom.member"})
	require.NoError(t, err)
	assert.True(t, status.OK())
	assert.Equal(t, http.StatusCreated, status.Code)
	assert.Contains(t, status.Body, "c1")
}

func TestCreateContactSkipsWithoutEmail(t *testing.T) {
	var tokenHits atomic.Int32
	srv := newTestServer(t, &tokenHits, http.StatusCreated)
	defer srv.Close()

	client := newTestClient(srv)
	status, err := client.CreateContact(context.Background(), "Finn", "Kelly", "", "", nil)
	require.NoError(t, err)
	assert.True(t, status.OK())
	assert.Equal(t, 0, status.Code)
	assert.Equal(t, int32(0), tokenHits.Load(), "no token fetched for skipped contacts")
}

func TestCreateContactReusesCachedToken(t *testing.T) {
	var tokenHits atomic.Int32
	srv := newTestServer(t, &tokenHits, http.StatusCreated)
	defer srv.Close()

	client := newTestClient(srv)
	for i := 0; i < 3; i++ {
		_, err := client.CreateContact(context.Background(), "Finn", "Kelly", "finn@x.com", "", nil)
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), tokenHits.Load(), "token acquired once and cached until expiry")
}

func TestCreateContactNonSuccessIsNotAnError(t *testing.T) {
	var tokenHits atomic.Int32
	srv := newTestServer(t, &tokenHits, http.StatusBadGateway)
	defer srv.Close()

	client := newTestClient(srv)
	status, err := client.CreateContact(context.Background(), "Finn", "Kelly", "finn@x.com", "", nil)
	require.NoError(t, err, "non-2xx is reported through the status, not an error")
	assert.False(t, status.OK())
	assert.Equal(t, http.StatusBadGateway, status.Code)
}

func TestCreateContactMissingToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"expires_in": 3600})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(srv)
	_, err := client.CreateContact(context.Background(), "Finn", "Kelly", "finn@x.com", "", nil)
	assert.ErrorIs(t, err, sentinel.ErrNoToken)
}
