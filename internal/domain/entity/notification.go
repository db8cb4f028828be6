package entity

import (
	"time"

	"gtfstrigger/internal/domain/geo"
)

// Location is the vehicle position carried by a NotificationEvent.
// Both fields are null when the feed did not report a position.
type Location struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// NotificationEvent is the webhook payload sent for a matching vehicle.
type NotificationEvent struct {
	VehicleID            string         `json:"vehicle_id"`
	Location             Location       `json:"location"`
	StopID               string         `json:"stop_id"`
	TripID               string         `json:"trip_id"`
	ScheduleRelationship int32          `json:"schedule_relationship"`
	CurrentStopSequence  uint32         `json:"current_stop_sequence"`
	OccupancyStatus      int32          `json:"occupancy_status"`
	Timestamp            time.Time      `json:"timestamp"`
	EventDetails         map[string]any `json:"event_details"`
	AlarmSettings        *Subscription  `json:"alarm_settings"`
}

// NewNotificationEvent builds the event for a vehicle that matched sub at now.
func NewNotificationEvent(vehicle VehicleSnapshot, sub *Subscription, now time.Time) *NotificationEvent {
	event := &NotificationEvent{
		VehicleID:            vehicle.VehicleID,
		StopID:               vehicle.StopID,
		TripID:               vehicle.TripID,
		ScheduleRelationship: vehicle.ScheduleRelationship,
		CurrentStopSequence:  vehicle.CurrentStopSequence,
		OccupancyStatus:      vehicle.OccupancyStatus,
		Timestamp:            now.UTC(),
		EventDetails:         map[string]any{},
		AlarmSettings:        sub,
	}

	if geo.Valid(vehicle.Position) {
		lat, lon := vehicle.Position.Lat(), vehicle.Position.Lon()
		event.Location = Location{Latitude: &lat, Longitude: &lon}
	}

	return event
}

// DispatchRecord is published after the matcher attempted a delivery.
type DispatchRecord struct {
	RequestID      string             `json:"request_id,omitempty"`
	SubscriptionID string             `json:"subscription_id"`
	FeedKey        string             `json:"feed_key"`
	Delivered      bool               `json:"delivered"`
	Error          string             `json:"error,omitempty"`
	Event          *NotificationEvent `json:"event"`
}
