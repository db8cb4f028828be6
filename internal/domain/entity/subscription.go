// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"
)

// Subscription is a user's standing alert registration against one GTFS-RT feed.
// The store keys it by (FeedKey, OwnerAddress); ID is a secondary lookup key.
type Subscription struct {
	ID                 string         `json:"id"`                                  // Opaque identifier generated at creation.
	FeedKey            string         `json:"gtfsRtEndpoint"`                      // Registered feed key, e.g. "odpt_jreast".
	StaticFeedEndpoint string         `json:"gtfsEndpoint"`                        // Static GTFS endpoint chosen by the client.
	OwnerAddress       string         `json:"userEmail"`                           // Email address or push token of the owner.
	DeliveryTarget     string         `json:"webhook_url"`                         // Webhook receiving NotificationEvents.
	Filters            FilterSet      `json:"filters"`                             // Predicate a vehicle must satisfy.
	Details            map[string]any `json:"details,omitempty"`                   // Display metadata such as label and describe.
	LastNotifiedAt     *time.Time     `json:"lastNotificationTimestamp,omitempty"` // Set by the matcher after a delivery attempt.
}

// Deliverable reports whether the record carries the fields the matcher needs
// to notify anyone. Records failing this check are skipped, not fatal.
func (s *Subscription) Deliverable() bool {
	return s != nil &&
		strings.TrimSpace(s.OwnerAddress) != "" &&
		strings.TrimSpace(s.DeliveryTarget) != ""
}

// Label returns details.label, or fallback when it is missing or not a string.
func (s *Subscription) Label(fallback string) string {
	return s.detail("label", fallback)
}

// Description returns details.describe, or fallback when it is missing.
func (s *Subscription) Description(fallback string) string {
	return s.detail("describe", fallback)
}

func (s *Subscription) detail(key, fallback string) string {
	if s == nil || s.Details == nil {
		return fallback
	}
	if v, ok := s.Details[key].(string); ok && v != "" {
		return v
	}

	return fallback
}

// SubscriptionTrace is the audit record emitted when a subscription is created.
type SubscriptionTrace struct {
	TraceID      string        `json:"trace_id"`
	Subscription *Subscription `json:"subscription"`
	CreatedAt    time.Time     `json:"created_at"`
}
