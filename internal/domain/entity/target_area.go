package entity

import (
	"bytes"
	"encoding/json"
	"math"

	"gtfstrigger/internal/domain/geo"
	"gtfstrigger/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// PointGeometryType is the only geometry type a target area accepts.
const PointGeometryType = "Point"

// Every shape error matches ErrInvalidTargetArea with errors.Is.
var (
	ErrInvalidTargetArea = errors.New("invalid target area")
	ErrNotPoint          = errors.Wrap(ErrInvalidTargetArea, "type must be Point")
	ErrMissingCoordinate = errors.Wrap(ErrInvalidTargetArea, "coordinates must be [longitude, latitude]")
	ErrMissingRadius     = errors.Wrap(ErrInvalidTargetArea, "properties.radius must be a non-negative number")
)

// PointWithRadius is one GeoJSON-like Point with properties.radius in meters.
type PointWithRadius struct {
	Center orb.Point
	Radius float64
}

// TargetArea is either a single PointWithRadius or an ordered list of them.
// It is parsed and validated once when constructed; an invalid area keeps its
// original JSON so stored records round-trip, and never contains any point.
type TargetArea struct {
	multi  bool
	points []PointWithRadius
	err    error
	raw    json.RawMessage
}

// NewSinglePoint builds the single-object variant.
func NewSinglePoint(p PointWithRadius) *TargetArea {
	area := &TargetArea{points: []PointWithRadius{p}}
	area.err = checkPoint(p)

	return area
}

// NewMultiPoint builds the list variant.
func NewMultiPoint(points ...PointWithRadius) *TargetArea {
	area := &TargetArea{multi: true, points: points}
	for _, p := range points {
		if err := checkPoint(p); err != nil {
			area.err = err

			break
		}
	}

	return area
}

// IsMulti reports whether the area was given as a list.
func (a *TargetArea) IsMulti() bool {
	return a.multi
}

// Points returns the parsed points. It is nil when the area is invalid.
func (a *TargetArea) Points() []PointWithRadius {
	if a.err != nil {
		return nil
	}

	return a.points
}

// Validate returns the shape error found at construction, if any.
func (a *TargetArea) Validate() error {
	return a.err
}

// Circles converts the area to geo circles.
func (a *TargetArea) Circles() []geo.Circle {
	points := a.Points()
	circles := make([]geo.Circle, 0, len(points))
	for _, p := range points {
		radius := p.Radius
		circles = append(circles, geo.Circle{Center: p.Center, Radius: &radius})
	}

	return circles
}

// Contains reports whether point lies inside the area. Invalid areas contain
// nothing, an empty list constrains nothing and contains every point.
func (a *TargetArea) Contains(point orb.Point) bool {
	if a == nil || a.err != nil {
		return false
	}
	if a.multi && len(a.points) == 0 {
		return true
	}
	if !a.multi {
		if len(a.points) != 1 {
			return false
		}

		return geo.IsWithinRadius(point, a.points[0].Center, a.points[0].Radius)
	}

	return geo.IsWithinAnyRadius(point, a.Circles())
}

// UnmarshalJSON accepts an object or an array of objects. Shape problems are
// recorded rather than returned so that a malformed stored record still loads.
func (a *TargetArea) UnmarshalJSON(data []byte) error {
	*a = TargetArea{raw: append(json.RawMessage(nil), data...)}

	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) > 0 && trimmed[0] == '[':
		a.multi = true

		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			a.err = errors.Wrap(ErrInvalidTargetArea, err.Error())

			return nil
		}

		a.points = make([]PointWithRadius, 0, len(items))
		for _, item := range items {
			p, err := parsePoint(item)
			if err != nil {
				a.err = err

				return nil
			}
			a.points = append(a.points, p)
		}
	case len(trimmed) > 0 && trimmed[0] == '{':
		p, err := parsePoint(trimmed)
		if err != nil {
			a.err = err

			return nil
		}
		a.points = []PointWithRadius{p}
	default:
		a.err = errors.Wrap(ErrInvalidTargetArea, "must be an object or a list")
	}

	return nil
}

// MarshalJSON writes the original JSON when the area was decoded, otherwise
// the canonical GeoJSON-like form.
func (a TargetArea) MarshalJSON() ([]byte, error) {
	if a.raw != nil {
		return a.raw, nil
	}

	encoded := make([]pointJSON, 0, len(a.points))
	for _, p := range a.points {
		encoded = append(encoded, pointJSON{
			Type:        PointGeometryType,
			Coordinates: []float64{p.Center.Lon(), p.Center.Lat()},
			Properties:  pointProperties{Radius: p.Radius},
		})
	}

	if !a.multi && len(encoded) == 1 {
		return json.Marshal(encoded[0])
	}

	return json.Marshal(encoded)
}

type pointJSON struct {
	Type        string          `json:"type"`
	Coordinates []float64       `json:"coordinates"`
	Properties  pointProperties `json:"properties"`
}

type pointProperties struct {
	Radius float64 `json:"radius"`
}

func parsePoint(data []byte) (PointWithRadius, error) {
	var shape struct {
		Type        string          `json:"type"`
		Coordinates json.RawMessage `json:"coordinates"`
		Properties  struct {
			Radius *float64 `json:"radius"`
		} `json:"properties"`
	}
	if err := json.Unmarshal(data, &shape); err != nil {
		return PointWithRadius{}, errors.Wrap(ErrInvalidTargetArea, err.Error())
	}
	if shape.Type != PointGeometryType {
		return PointWithRadius{}, ErrNotPoint
	}
	if len(shape.Coordinates) == 0 || string(shape.Coordinates) == "null" {
		return PointWithRadius{}, ErrMissingCoordinate
	}

	var lonLat []float64
	if err := json.Unmarshal(shape.Coordinates, &lonLat); err != nil || len(lonLat) < 2 {
		return PointWithRadius{}, ErrMissingCoordinate
	}

	geometry, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return PointWithRadius{}, errors.Wrap(ErrInvalidTargetArea, err.Error())
	}
	center, ok := geometry.Geometry().(orb.Point)
	if !ok {
		return PointWithRadius{}, ErrNotPoint
	}

	if shape.Properties.Radius == nil {
		return PointWithRadius{}, ErrMissingRadius
	}

	p := PointWithRadius{Center: center, Radius: *shape.Properties.Radius}

	return p, checkPoint(p)
}

func checkPoint(p PointWithRadius) error {
	if !geo.Valid(p.Center) || math.Abs(p.Center.Lat()) > 90 || math.Abs(p.Center.Lon()) > 180 {
		return ErrMissingCoordinate
	}
	if math.IsNaN(p.Radius) || math.IsInf(p.Radius, 0) || p.Radius < 0 {
		return ErrMissingRadius
	}

	return nil
}
