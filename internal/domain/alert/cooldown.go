package alert

import (
	"time"

	"gtfstrigger/internal/domain/entity"
)

// DefaultCooldown is the minimum time between two notifications of one subscription.
const DefaultCooldown = time.Hour

// Policy is the notification suppression rule.
type Policy struct {
	Cooldown time.Duration
}

// NewPolicy returns a Policy, falling back to DefaultCooldown for non-positive values.
func NewPolicy(cooldown time.Duration) Policy {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}

	return Policy{Cooldown: cooldown}
}

// ShouldSuppress reports whether a match for sub at now must not be notified.
// A subscription never notified is never suppressed. Otherwise it is suppressed
// inside the cooldown window unless it allows multiple notifications.
func (p Policy) ShouldSuppress(sub *entity.Subscription, now time.Time) bool {
	if sub == nil || sub.LastNotifiedAt == nil {
		return false
	}
	if sub.Filters.AllowMultipleNotifications {
		return false
	}

	return now.Sub(*sub.LastNotifiedAt) < p.Cooldown
}
