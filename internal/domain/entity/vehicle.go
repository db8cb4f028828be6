package entity

import (
	"github.com/paulmach/orb"
)

// VehicleSnapshot is one decoded vehicle position from a feed fetch.
// It lives only for the duration of a matching pass.
type VehicleSnapshot struct {
	VehicleID            string
	Position             orb.Point // [lon, lat]; NaN coordinates when the feed omitted the position.
	TripID               string
	StopID               string
	CurrentStopSequence  uint32
	OccupancyStatus      int32
	ScheduleRelationship int32
}
