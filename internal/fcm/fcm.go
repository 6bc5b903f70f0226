// Package fcm delivers mobile push notifications through Firebase Cloud
// Messaging.
package fcm

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Config holds Firebase project parameters.
type Config struct {
	CredentialsPath string
	ProjectID       string
}

// Sender sends push messages via the FCM messaging client.
type Sender struct {
	client *messaging.Client
}

// NewSender initializes the Firebase app and its messaging client.
func NewSender(ctx context.Context, cfg Config) (*Sender, error) {
	opt := option.WithCredentialsFile(cfg.CredentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opt)
	if err != nil {
		return nil, fmt.Errorf("initializing firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating messaging client: %w", err)
	}

	return &Sender{client: client}, nil
}

// Send delivers one push message to a device token. data travels in the
// message payload for app-side deep linking.
func (s *Sender) Send(ctx context.Context, token, title, body string, data map[string]string) error {
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{Sound: "default"},
			},
		},
	}

	if _, err := s.client.Send(ctx, msg); err != nil {
		return fmt.Errorf("sending push message: %w", err)
	}
	return nil
}
