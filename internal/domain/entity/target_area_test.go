package entity

import (
	"encoding/json"
	"testing"

	"gtfstrigger/internal/errors"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeArea(t *testing.T, raw string) *TargetArea {
	t.Helper()

	var area TargetArea
	require.NoError(t, json.Unmarshal([]byte(raw), &area))

	return &area
}

func TestTargetArea_Single(t *testing.T) {
	t.Parallel()

	area := decodeArea(t, `{"type":"Point","coordinates":[139.0,35.0],"properties":{"radius":5000}}`)

	require.NoError(t, area.Validate())
	assert.False(t, area.IsMulti())
	require.Len(t, area.Points(), 1)
	assert.Equal(t, orb.Point{139.0, 35.0}, area.Points()[0].Center)
	assert.InDelta(t, 5000.0, area.Points()[0].Radius, 0)
	assert.True(t, area.Contains(orb.Point{139.02, 35.02}))
	assert.False(t, area.Contains(orb.Point{138.0, 34.0}))
}

func TestTargetArea_Multi(t *testing.T) {
	t.Parallel()

	area := decodeArea(t, `[
		{"type":"Point","coordinates":[139.0,35.0],"properties":{"radius":5000}},
		{"type":"Point","coordinates":[140.0,36.0],"properties":{"radius":10000}}
	]`)

	require.NoError(t, area.Validate())
	assert.True(t, area.IsMulti())
	assert.Len(t, area.Circles(), 2)
	assert.True(t, area.Contains(orb.Point{139.02, 35.02}))
	assert.False(t, area.Contains(orb.Point{138.0, 34.0}))
}

func TestTargetArea_EmptyListIsUnconstrained(t *testing.T) {
	t.Parallel()

	area := decodeArea(t, `[]`)

	require.NoError(t, area.Validate())
	assert.True(t, area.IsMulti())
	assert.True(t, area.Contains(orb.Point{139.0, 35.0}))
	assert.True(t, area.Contains(orb.Point{-70.0, -33.0}))
}

func TestTargetArea_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{
			name:    "polygon in list",
			raw:     `[{"type":"Point","coordinates":[139.0,35.0],"properties":{"radius":5000}},{"type":"Polygon","coordinates":[139.0,35.0],"properties":{"radius":5000}}]`,
			wantErr: ErrNotPoint,
		},
		{
			name:    "missing radius",
			raw:     `{"type":"Point","coordinates":[139.0,35.0],"properties":{}}`,
			wantErr: ErrMissingRadius,
		},
		{
			name:    "missing properties",
			raw:     `{"type":"Point","coordinates":[139.0,35.0]}`,
			wantErr: ErrMissingRadius,
		},
		{
			name:    "negative radius",
			raw:     `{"type":"Point","coordinates":[139.0,35.0],"properties":{"radius":-1}}`,
			wantErr: ErrMissingRadius,
		},
		{
			name:    "missing coordinates",
			raw:     `{"type":"Point","properties":{"radius":10}}`,
			wantErr: ErrMissingCoordinate,
		},
		{
			name:    "single coordinate",
			raw:     `{"type":"Point","coordinates":[139.0],"properties":{"radius":10}}`,
			wantErr: ErrMissingCoordinate,
		},
		{
			name:    "latitude out of range",
			raw:     `{"type":"Point","coordinates":[139.0,95.0],"properties":{"radius":10}}`,
			wantErr: ErrMissingCoordinate,
		},
		{
			name:    "scalar",
			raw:     `"near the station"`,
			wantErr: ErrInvalidTargetArea,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			area := decodeArea(t, tt.raw)

			err := area.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
			assert.True(t, errors.Is(err, ErrInvalidTargetArea))
			assert.Empty(t, area.Points())
			assert.False(t, area.Contains(orb.Point{139.0, 35.0}))
		})
	}
}

func TestTargetArea_RoundTripKeepsOriginalJSON(t *testing.T) {
	t.Parallel()

	raw := `{"type":"Circle","coordinates":[139.0,35.0],"properties":{"radius":5000,"name":"home"}}`
	area := decodeArea(t, raw)
	require.Error(t, area.Validate())

	out, err := json.Marshal(area)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}

func TestTargetArea_Constructors(t *testing.T) {
	t.Parallel()

	single := NewSinglePoint(PointWithRadius{Center: orb.Point{139.0, 35.0}, Radius: 100})
	require.NoError(t, single.Validate())

	out, err := json.Marshal(single)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Point","coordinates":[139,35],"properties":{"radius":100}}`, string(out))

	multi := NewMultiPoint(
		PointWithRadius{Center: orb.Point{139.0, 35.0}, Radius: 100},
		PointWithRadius{Center: orb.Point{139.0, 35.0}, Radius: -5},
	)
	assert.True(t, errors.Is(multi.Validate(), ErrMissingRadius))
}
