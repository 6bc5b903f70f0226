// Package smsgw is a client for a JSON-over-HTTP SMS gateway with basic-auth
// credentials.
package smsgw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Config holds gateway connection parameters.
type Config struct {
	BaseURL  string
	Username string
	Password string
}

// Client sends text messages through the gateway's /message endpoint.
type Client struct {
	config Config
	http   *http.Client
}

// NewClient creates a gateway client with a bounded request timeout.
func NewClient(config Config) *Client {
	return &Client{
		config: config,
		http:   &http.Client{Timeout: 10 * time.Second},
	}
}

type smsPayload struct {
	TextMessage struct {
		Text string `json:"text"`
	} `json:"textMessage"`
	PhoneNumbers []string `json:"phoneNumbers"`
}

// Send delivers one text message to a phone number.
func (c *Client) Send(ctx context.Context, phone, text string) error {
	payload := smsPayload{PhoneNumbers: []string{phone}}
	payload.TextMessage.Text = text

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling sms payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/message", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating sms request: %w", err)
	}
	req.SetBasicAuth(c.config.Username, c.config.Password)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sending sms request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sms gateway returned %d: %s", resp.StatusCode, detail)
	}
	return nil
}
