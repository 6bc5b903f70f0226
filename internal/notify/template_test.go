package notify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowdesk/notify/internal/notify"
)

func TestBuiltinRegistry_Catalog(t *testing.T) {
	registry := notify.BuiltinRegistry()

	names := registry.List()
	require.ElementsMatch(t, []string{
		notify.TemplatePaymentConfirmation,
		notify.TemplatePaymentFailed,
		notify.TemplateRefundConfirmation,
		notify.TemplateBookingReminder,
		notify.TemplateBookingCancelled,
		notify.TemplateWelcome,
	}, names)

	for _, name := range names {
		tmpl, err := registry.Get(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, tmpl.Mediums(), "%s must support at least one medium", name)
		assert.True(t, tmpl.Priority().Valid(), "%s has priority %q", name, tmpl.Priority())
	}
}

func TestBuiltinRegistry_Priorities(t *testing.T) {
	registry := notify.BuiltinRegistry()

	expected := map[string]notify.Priority{
		notify.TemplatePaymentConfirmation: notify.PriorityHigh,
		notify.TemplatePaymentFailed:       notify.PriorityHigh,
		notify.TemplateRefundConfirmation:  notify.PriorityNormal,
		notify.TemplateBookingReminder:     notify.PriorityNormal,
		notify.TemplateBookingCancelled:    notify.PriorityHigh,
		notify.TemplateWelcome:             notify.PriorityLow,
	}
	for name, want := range expected {
		tmpl, err := registry.Get(name)
		require.NoError(t, err)
		assert.Equal(t, want, tmpl.Priority(), name)
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	registry := notify.BuiltinRegistry()

	_, err := registry.Get("does_not_exist")
	require.Error(t, err)

	var nfErr *notify.TemplateNotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "does_not_exist", nfErr.Name)
	assert.Contains(t, err.Error(), "does_not_exist")
}

func TestRegistry_RegisterCustom(t *testing.T) {
	registry := notify.BuiltinRegistry()

	custom := notify.NewTemplate(
		notify.PriorityCritical,
		[]notify.Medium{notify.MediumEmail},
		func(notify.Context) string { return "Security alert" },
		func(c notify.Context) string { return "Hello " + c.UserName },
	)
	registry.Register("security_alert", custom)

	got, err := registry.Get("security_alert")
	require.NoError(t, err)
	assert.Equal(t, notify.PriorityCritical, got.Priority())
	assert.Contains(t, registry.List(), "security_alert")

	// Registering a custom template must not disturb the built-ins.
	builtin, err := registry.Get(notify.TemplateWelcome)
	require.NoError(t, err)
	assert.Equal(t, notify.PriorityLow, builtin.Priority())
}

func TestWelcome_ExcludesSMS(t *testing.T) {
	registry := notify.BuiltinRegistry()

	tmpl, err := registry.Get(notify.TemplateWelcome)
	require.NoError(t, err)
	assert.NotContains(t, tmpl.Mediums(), notify.MediumSMS)
}
