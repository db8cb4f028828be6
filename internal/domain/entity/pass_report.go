package entity

import (
	"time"
)

// PassReport summarizes one matching pass.
type PassReport struct {
	StartedAt            time.Time     `json:"started_at"`
	Duration             time.Duration `json:"duration"`
	Subscriptions        int           `json:"subscriptions"`
	SkippedSubscriptions int           `json:"skipped_subscriptions"`
	Groups               int           `json:"groups"`
	FailedFeeds          int           `json:"failed_feeds"`
	Vehicles             int           `json:"vehicles"`
	Matches              int           `json:"matches"`
	Suppressed           int           `json:"suppressed"`
	Delivered            int           `json:"delivered"`
	DeliveryFailures     int           `json:"delivery_failures"`
	PersistFailures      int           `json:"persist_failures"`
}

// Merge adds the counters of other to r.
func (r *PassReport) Merge(other *PassReport) {
	if other == nil {
		return
	}
	r.SkippedSubscriptions += other.SkippedSubscriptions
	r.FailedFeeds += other.FailedFeeds
	r.Vehicles += other.Vehicles
	r.Matches += other.Matches
	r.Suppressed += other.Suppressed
	r.Delivered += other.Delivered
	r.DeliveryFailures += other.DeliveryFailures
	r.PersistFailures += other.PersistFailures
}
