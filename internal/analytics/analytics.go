// Package analytics reports anonymous usage events. A disabled client
// is a no-op so call sites never have to branch.
package analytics

import (
	"github.com/google/uuid"
	"github.com/posthog/posthog-go"
)

const apiKey = "phc_vibedeck_public"

// Client wraps the PostHog client with the opt-out check.
type Client struct {
	ph         posthog.Client
	distinctID string
}

// New returns an analytics client, or a no-op one when disabled or
// when PostHog cannot be initialized (analytics must never break the
// app).
func New(enabled bool) *Client {
	if !enabled {
		return &Client{}
	}
	ph, err := posthog.NewWithConfig(apiKey, posthog.Config{})
	if err != nil {
		return &Client{}
	}
	return &Client{ph: ph, distinctID: uuid.NewString()}
}

// Capture records one event with optional properties.
func (c *Client) Capture(event string, props map[string]any) {
	if c == nil || c.ph == nil {
		return
	}
	properties := posthog.NewProperties()
	for k, v := range props {
		properties = properties.Set(k, v)
	}
	_ = c.ph.Enqueue(posthog.Capture{
		DistinctId: c.distinctID,
		Event:      event,
		Properties: properties,
	})
}

// TaskCreated reports a task creation.
func (c *Client) TaskCreated() { c.Capture("task_created", nil) }

// ProcessRetried reports a confirmed retry, and whether it reset git
// history.
func (c *Client) ProcessRetried(performedReset bool) {
	c.Capture("process_retried", map[string]any{"performed_git_reset": performedReset})
}

// FollowUpSent reports a follow-up prompt.
func (c *Client) FollowUpSent() { c.Capture("follow_up_sent", nil) }

// Close flushes buffered events.
func (c *Client) Close() {
	if c != nil && c.ph != nil {
		_ = c.ph.Close()
	}
}
