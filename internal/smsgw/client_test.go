package smsgw_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowdesk/notify/internal/smsgw"
)

func TestClient_Send(t *testing.T) {
	var gotPath, gotUser, gotPass string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := smsgw.NewClient(smsgw.Config{BaseURL: srv.URL, Username: "gw-user", Password: "gw-pass"})
	err := c.Send(context.Background(), "+5511999990000", "see you tomorrow")
	require.NoError(t, err)

	assert.Equal(t, "/message", gotPath)
	assert.Equal(t, "gw-user", gotUser)
	assert.Equal(t, "gw-pass", gotPass)

	text := gotBody["textMessage"].(map[string]any)["text"]
	assert.Equal(t, "see you tomorrow", text)
	phones := gotBody["phoneNumbers"].([]any)
	require.Len(t, phones, 1)
	assert.Equal(t, "+5511999990000", phones[0])
}

func TestClient_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := smsgw.NewClient(smsgw.Config{BaseURL: srv.URL})
	err := c.Send(context.Background(), "+5511999990000", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestClient_ConnectionRefused(t *testing.T) {
	c := smsgw.NewClient(smsgw.Config{BaseURL: "http://127.0.0.1:1"})
	err := c.Send(context.Background(), "+5511999990000", "hi")
	require.Error(t, err)
}
