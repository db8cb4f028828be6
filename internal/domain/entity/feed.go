package entity

import (
	"iter"
	"time"
)

// FeedDefinition binds a symbolic feed key to its vehicle-position URL.
type FeedDefinition struct {
	Key         string // Symbolic key stored on subscriptions.
	URL         string // GTFS-RT vehicle position endpoint.
	StopsGTFSID string // gtfs_id used by the stop lookup API.
	ReadOnly    bool   // Matched, but not accepted on subscription writes.
}

// FeedSnapshot is one successful fetch of a feed.
type FeedSnapshot struct {
	FeedKey    string
	FetchedAt  time.Time
	HeaderTime time.Time // FeedHeader.timestamp; zero when absent.
	Size       int       // Number of entities in the message.

	vehicles iter.Seq[VehicleSnapshot]
}

// NewFeedSnapshot wraps a lazy vehicle sequence.
func NewFeedSnapshot(feedKey string, fetchedAt time.Time, vehicles iter.Seq[VehicleSnapshot]) *FeedSnapshot {
	return &FeedSnapshot{
		FeedKey:   feedKey,
		FetchedAt: fetchedAt,
		vehicles:  vehicles,
	}
}

// Vehicles yields the vehicle positions of the feed. It may be ranged over more than once.
func (s *FeedSnapshot) Vehicles() iter.Seq[VehicleSnapshot] {
	if s == nil || s.vehicles == nil {
		return func(func(VehicleSnapshot) bool) {}
	}

	return s.vehicles
}
