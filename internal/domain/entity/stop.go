package entity

import (
	"github.com/paulmach/orb"
)

// Stop is a resolved stop from the stop lookup API.
type Stop struct {
	ID       string
	Name     string
	Location orb.Point // [lon, lat]
}
