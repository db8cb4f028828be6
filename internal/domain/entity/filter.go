package entity

import (
	"strings"
	"time"

	"gtfstrigger/internal/errors"
)

// DateLayout is the layout of FilterSet.Date.
const DateLayout = time.DateOnly

// instantLayouts are tried in order when parsing start_time and end_time.
// Layouts without a zone are read as UTC.
var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	time.DateOnly,
}

// FilterSet is the predicate attached to a subscription. Every field is optional
// and an absent field does not constrain the match.
type FilterSet struct {
	TripID                     string      `json:"trip_id,omitempty"`
	StopID                     string      `json:"stop_id,omitempty"`
	Date                       string      `json:"date,omitempty"`       // YYYY-MM-DD, compared with the UTC date.
	StartTime                  string      `json:"start_time,omitempty"` // ISO-8601 instant, inclusive.
	EndTime                    string      `json:"end_time,omitempty"`   // ISO-8601 instant, inclusive.
	Weekday                    []string    `json:"weekday,omitempty"`    // English weekday names.
	TargetArea                 *TargetArea `json:"target_area,omitempty"`
	AllowMultipleNotifications bool        `json:"allow_multiple_notifications,omitempty"`
}

// IsEmpty reports whether no predicate is present.
func (f FilterSet) IsEmpty() bool {
	return f.TripID == "" &&
		f.StopID == "" &&
		f.Date == "" &&
		f.StartTime == "" &&
		f.EndTime == "" &&
		len(f.Weekday) == 0 &&
		f.TargetArea == nil
}

// Validate checks the filter set the way it is checked on write.
func (f FilterSet) Validate() error {
	if f.Date != "" {
		if _, err := time.Parse(DateLayout, f.Date); err != nil {
			return errors.Wrapf(ErrInvalidFilter, "date %q", f.Date)
		}
	}
	if f.StartTime != "" {
		if _, err := ParseInstant(f.StartTime); err != nil {
			return errors.Wrapf(ErrInvalidFilter, "start_time %q", f.StartTime)
		}
	}
	if f.EndTime != "" {
		if _, err := ParseInstant(f.EndTime); err != nil {
			return errors.Wrapf(ErrInvalidFilter, "end_time %q", f.EndTime)
		}
	}
	for _, day := range f.Weekday {
		if _, ok := ParseWeekday(day); !ok {
			return errors.Wrapf(ErrInvalidFilter, "weekday %q", day)
		}
	}
	if f.TargetArea != nil {
		if err := f.TargetArea.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// ErrInvalidFilter is returned by FilterSet.Validate for malformed scalar filters.
var ErrInvalidFilter = errors.New("invalid filter")

// ParseInstant parses an ISO-8601 instant. Values without a zone are UTC.
func ParseInstant(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, errors.Errorf("unrecognized instant %q", value)
}

// ParseWeekday maps an English weekday name to time.Weekday, ignoring case.
func ParseWeekday(name string) (time.Weekday, bool) {
	name = strings.TrimSpace(name)
	for day := time.Sunday; day <= time.Saturday; day++ {
		if strings.EqualFold(day.String(), name) {
			return day, true
		}
	}

	return 0, false
}
