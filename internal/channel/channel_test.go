package channel_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowdesk/notify/internal/channel"
	"github.com/glowdesk/notify/internal/notify"
)

// --- stub transports ---

type stubMailer struct {
	to, subject, body string
	err               error
}

func (m *stubMailer) Send(_ context.Context, to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.to, m.subject, m.body = to, subject, body
	return nil
}

type stubTextSender struct {
	phone, text string
	err         error
}

func (s *stubTextSender) Send(_ context.Context, phone, text string) error {
	if s.err != nil {
		return s.err
	}
	s.phone, s.text = phone, text
	return nil
}

type stubPushSender struct {
	token, title, body string
	data               map[string]string
}

func (s *stubPushSender) Send(_ context.Context, token, title, body string, data map[string]string) error {
	s.token, s.title, s.body, s.data = token, title, body, data
	return nil
}

type stubInbox struct {
	userID, subject, body, priority string
	err                             error
}

func (s *stubInbox) SaveMessage(_ context.Context, userID, subject, body, priority string) error {
	if s.err != nil {
		return s.err
	}
	s.userID, s.subject, s.body, s.priority = userID, subject, body, priority
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- truncation ---

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", channel.Truncate("short", 150))

	exact := strings.Repeat("a", 150)
	assert.Equal(t, exact, channel.Truncate(exact, 150))

	long := strings.Repeat("a", 400)
	got := channel.Truncate(long, channel.SMSBodyLimit)
	assert.LessOrEqual(t, len([]rune(got)), channel.SMSBodyLimit+3)
	assert.True(t, strings.HasSuffix(got, "..."))

	// Rune-safe: multi-byte characters are not split.
	unicode := strings.Repeat("é", 200)
	got = channel.Truncate(unicode, 100)
	assert.Equal(t, strings.Repeat("é", 100)+"...", got)
}

// --- email ---

func TestEmail_RecipientResolution(t *testing.T) {
	e := channel.NewEmail(&stubMailer{}, testLogger())
	assert.Equal(t, notify.MediumEmail, e.Medium())

	to, err := e.Recipient(notify.Context{UserEmail: "ana@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", to)

	_, err = e.Recipient(notify.Context{})
	var rerr *notify.RecipientError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, notify.MediumEmail, rerr.Medium)
}

func TestEmail_SendsFullBody(t *testing.T) {
	mailer := &stubMailer{}
	e := channel.NewEmail(mailer, testLogger())

	long := strings.Repeat("x", 500)
	err := e.Send(context.Background(), notify.Message{To: "ana@example.com", Subject: "Hi", Body: long})
	require.NoError(t, err)
	assert.Equal(t, long, mailer.body, "email must not truncate")
}

func TestEmail_TransportError(t *testing.T) {
	e := channel.NewEmail(&stubMailer{err: errors.New("dial failed")}, testLogger())
	err := e.Send(context.Background(), notify.Message{To: "ana@example.com"})
	require.Error(t, err)
}

// --- sms ---

func TestSMS_RecipientResolution(t *testing.T) {
	s := channel.NewSMS(&stubTextSender{}, testLogger())
	assert.Equal(t, notify.MediumSMS, s.Medium())

	to, err := s.Recipient(notify.Context{UserPhone: "+5511999990000"})
	require.NoError(t, err)
	assert.Equal(t, "+5511999990000", to)

	_, err = s.Recipient(notify.Context{UserEmail: "ana@example.com"})
	var rerr *notify.RecipientError
	require.ErrorAs(t, err, &rerr)
}

func TestSMS_TruncatesBody(t *testing.T) {
	sender := &stubTextSender{}
	s := channel.NewSMS(sender, testLogger())

	long := strings.Repeat("b", 400)
	err := s.Send(context.Background(), notify.Message{To: "+551199", Body: long})
	require.NoError(t, err)
	assert.LessOrEqual(t, len([]rune(sender.text)), channel.SMSBodyLimit+3)
	assert.True(t, strings.HasSuffix(sender.text, "..."))

	short := "see you tomorrow"
	require.NoError(t, s.Send(context.Background(), notify.Message{To: "+551199", Body: short}))
	assert.Equal(t, short, sender.text, "untruncated bodies pass through unchanged")
}

// --- push ---

func TestPush_RecipientFallsBackToEmail(t *testing.T) {
	p := channel.NewPush(&stubPushSender{}, testLogger())
	assert.Equal(t, notify.MediumPush, p.Medium())

	to, err := p.Recipient(notify.Context{UserID: "user-42", UserEmail: "ana@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "user-42", to)

	to, err = p.Recipient(notify.Context{UserEmail: "ana@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", to)

	_, err = p.Recipient(notify.Context{UserPhone: "+551199"})
	var rerr *notify.RecipientError
	require.ErrorAs(t, err, &rerr)
}

func TestPush_TruncatesBodyAndBuildsData(t *testing.T) {
	sender := &stubPushSender{}
	p := channel.NewPush(sender, testLogger())

	msg := notify.Message{
		To:       "user-42",
		Subject:  "Payment confirmed",
		Body:     strings.Repeat("c", 300),
		Priority: notify.PriorityHigh,
		Context: notify.Context{
			Payment: notify.Payment{ID: "pay_123"},
			Booking: notify.Booking{ID: "bkg_9"},
		},
	}
	require.NoError(t, p.Send(context.Background(), msg))

	assert.LessOrEqual(t, len([]rune(sender.body)), channel.PushBodyLimit+3)
	assert.Equal(t, "Payment confirmed", sender.title)
	assert.Equal(t, "pay_123", sender.data["payment_id"])
	assert.Equal(t, "bkg_9", sender.data["booking_id"])
	assert.Equal(t, "high", sender.data["priority"])
}

// --- in-app ---

func TestInApp_StoresFullMessage(t *testing.T) {
	inbox := &stubInbox{}
	a := channel.NewInApp(inbox, testLogger())
	assert.Equal(t, notify.MediumInApp, a.Medium())

	long := strings.Repeat("d", 500)
	msg := notify.Message{To: "user-42", Subject: "Hello", Body: long, Priority: notify.PriorityLow}
	require.NoError(t, a.Send(context.Background(), msg))

	assert.Equal(t, "user-42", inbox.userID)
	assert.Equal(t, long, inbox.body, "in-app must not truncate")
	assert.Equal(t, "low", inbox.priority)
}

func TestInApp_StoreError(t *testing.T) {
	a := channel.NewInApp(&stubInbox{err: errors.New("db locked")}, testLogger())
	err := a.Send(context.Background(), notify.Message{To: "user-42"})
	require.Error(t, err)
}
