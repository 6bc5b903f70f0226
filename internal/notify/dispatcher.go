package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/glowdesk/notify/internal/metrics"
)

// Dispatcher orchestrates one dispatch call: template lookup, a single
// content rendering, per-medium recipient resolution, concurrent fan-out and
// aggregation into one Result.
//
// A Dispatcher is safe for concurrent use. The registry and the channel map
// are read-only during normal operation; RegisterChannel is an
// administrative mutation guarded so in-flight sends never observe a
// half-updated map.
type Dispatcher struct {
	registry *Registry
	logger   *slog.Logger

	mu       sync.RWMutex
	channels map[Medium]Channel

	now   func() time.Time
	newID func() string
}

// NewDispatcher creates a Dispatcher over the given template registry.
// Channels are registered separately via RegisterChannel.
func NewDispatcher(registry *Registry, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		registry: registry,
		logger:   logger,
		channels: make(map[Medium]Channel),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Registry returns the template registry, for registration of custom
// templates at runtime.
func (d *Dispatcher) Registry() *Registry { return d.registry }

// RegisterChannel installs (or replaces) the channel for its medium. It may
// be called while sends are in flight; subsequent dispatches observe the new
// channel.
func (d *Dispatcher) RegisterChannel(ch Channel) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.channels[ch.Medium()] = ch
}

// Channel returns the registered channel for a medium.
func (d *Dispatcher) Channel(m Medium) (Channel, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	ch, ok := d.channels[m]
	return ch, ok
}

// channelSnapshot copies the channel map so fan-out never races with
// RegisterChannel.
func (d *Dispatcher) channelSnapshot() map[Medium]Channel {
	d.mu.RLock()
	defer d.mu.RUnlock()
	snap := make(map[Medium]Channel, len(d.channels))
	for m, ch := range d.channels {
		snap[m] = ch
	}
	return snap
}

// Send renders the requested template once and fans the content out across
// the requested mediums. It always returns a Result; domain-level failures
// are folded into the Result rather than returned as an error.
func (d *Dispatcher) Send(ctx context.Context, req Request) Result {
	res := Result{
		ID:            d.newID(),
		CorrelationID: req.CorrelationID,
	}

	log := d.logger.With("notification_id", res.ID, "template", req.Template)
	if req.CorrelationID != "" {
		log = log.With("correlation_id", req.CorrelationID)
	}
	if !req.ScheduledAt.IsZero() && !req.SendImmediately {
		// Advisory only: deferred execution belongs to an external scheduler.
		log.Info("scheduled_at is advisory, sending now", "scheduled_at", req.ScheduledAt)
	}

	tmpl, err := d.registry.Get(req.Template)
	if err != nil {
		res.Status = StatusFailed
		res.Failed = slices.Clone(req.Mediums)
		res.Error = err.Error()
		log.Warn("dispatch failed: unknown template")
		metrics.DispatchesTotal.WithLabelValues(req.Template, string(StatusFailed)).Inc()
		return res
	}

	res.Priority = tmpl.Priority()
	if req.Priority != "" {
		res.Priority = req.Priority
	}

	subject, body, renderErr := renderContent(tmpl, req.Context)
	if renderErr != nil {
		res.Status = StatusFailed
		res.Failed = slices.Clone(req.Mediums)
		res.Error = renderErr.Error()
		res.CompletedAt = d.now().UTC()
		log.Error("dispatch failed: template rendering", "error", renderErr)
		metrics.DispatchesTotal.WithLabelValues(req.Template, string(StatusFailed)).Inc()
		return res
	}

	supported := intersectMediums(req.Mediums, tmpl.Mediums())
	if len(supported) == 0 {
		res.Status = StatusFailed
		res.Failed = slices.Clone(req.Mediums)
		res.Error = fmt.Sprintf("%s: template %q", ErrNoSupportedMediums, req.Template)
		res.CompletedAt = d.now().UTC()
		log.Warn("dispatch failed: no supported mediums", "requested", req.Mediums)
		for _, m := range req.Mediums {
			metrics.ChannelSendsTotal.WithLabelValues(string(m), metrics.OutcomeUnsupported).Inc()
		}
		metrics.DispatchesTotal.WithLabelValues(req.Template, string(StatusFailed)).Inc()
		return res
	}

	channels := d.channelSnapshot()

	// Fan out concurrently; per-channel outcomes are independent.
	type attempt struct {
		medium Medium
		err    error
	}
	attempts := make([]attempt, len(supported))

	var wg sync.WaitGroup
	for i, m := range supported {
		ch, ok := channels[m]
		if !ok {
			attempts[i] = attempt{medium: m, err: fmt.Errorf("%s: %w", m, ErrNoChannel)}
			metrics.ChannelSendsTotal.WithLabelValues(string(m), metrics.OutcomeNoChannel).Inc()
			continue
		}
		wg.Add(1)
		go func(i int, m Medium, ch Channel) {
			defer wg.Done()
			attempts[i] = attempt{medium: m, err: d.sendOne(ctx, ch, subject, body, res.Priority, req.Context)}
		}(i, m, ch)
	}
	wg.Wait()

	sent := make(map[Medium]bool, len(attempts))
	var firstErr error
	for _, a := range attempts {
		if a.err == nil {
			sent[a.medium] = true
			continue
		}
		log.Warn("channel delivery failed", "medium", a.medium, "error", a.err)
		if firstErr == nil {
			firstErr = a.err
		}
	}

	// Failed is everything requested that did not end up in Sent, which
	// covers mediums dropped before a send was attempted.
	seen := make(map[Medium]bool, len(req.Mediums))
	for _, m := range req.Mediums {
		if seen[m] {
			continue
		}
		seen[m] = true
		if sent[m] {
			res.Sent = append(res.Sent, m)
		} else {
			res.Failed = append(res.Failed, m)
		}
	}

	switch {
	case len(res.Failed) == 0 && len(res.Sent) > 0:
		res.Status = StatusSent
	case len(res.Sent) > 0:
		res.Status = StatusPartial
	default:
		res.Status = StatusFailed
	}
	if res.Status != StatusSent && firstErr != nil {
		res.Error = firstErr.Error()
	}
	res.CompletedAt = d.now().UTC()

	metrics.DispatchesTotal.WithLabelValues(req.Template, string(res.Status)).Inc()
	log.Info("dispatch complete",
		"status", res.Status,
		"sent", res.Sent,
		"failed", res.Failed,
		"priority", res.Priority,
	)
	return res
}

// sendOne resolves the recipient and performs one channel delivery, recovering
// any panic from a misbehaving channel into an error.
func (d *Dispatcher) sendOne(ctx context.Context, ch Channel, subject, body string, prio Priority, c Context) (err error) {
	medium := ch.Medium()
	defer func() {
		if r := recover(); r != nil {
			err = &SendError{Medium: medium, Err: fmt.Errorf("channel panic: %v", r)}
		}
		outcome := metrics.OutcomeSent
		if err != nil {
			outcome = metrics.OutcomeFailed
			var rerr *RecipientError
			if errors.As(err, &rerr) {
				outcome = metrics.OutcomeNoRecipient
			}
		}
		metrics.ChannelSendsTotal.WithLabelValues(string(medium), outcome).Inc()
	}()

	to, err := ch.Recipient(c)
	if err != nil {
		return err
	}
	if err := ch.Send(ctx, Message{To: to, Subject: subject, Body: body, Priority: prio, Context: c}); err != nil {
		return &SendError{Medium: medium, Err: err}
	}
	return nil
}

// renderContent evaluates the template's subject and body once, converting a
// panic from malformed context data into an error at the dispatch boundary.
func renderContent(tmpl Template, c Context) (subject, body string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("template rendering failed: %v", r)
		}
	}()
	subject = tmpl.Subject(c)
	body = tmpl.Body(c)
	return subject, body, nil
}

// intersectMediums returns the requested mediums that the template supports,
// preserving request order and dropping duplicates.
func intersectMediums(requested, supported []Medium) []Medium {
	var out []Medium
	seen := make(map[Medium]bool, len(requested))
	for _, m := range requested {
		if seen[m] {
			continue
		}
		seen[m] = true
		if slices.Contains(supported, m) {
			out = append(out, m)
		}
	}
	return out
}
