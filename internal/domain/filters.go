package domain

import (
	"fmt"
	"strings"
	"time"
)

// FilterAny is the value that switches an enumerated filter off.
const FilterAny = "Any"

// TimeOfDay buckets a session's start hour.
type TimeOfDay string

const (
	TimeAny       TimeOfDay = FilterAny
	TimeMorning   TimeOfDay = "Morning"
	TimeAfternoon TimeOfDay = "Afternoon"
	TimeEvening   TimeOfDay = "Evening"
	TimeNight     TimeOfDay = "Night"
)

// Valid reports whether t is Any or one of the buckets.
func (t TimeOfDay) Valid() bool {
	switch t {
	case TimeAny, TimeMorning, TimeAfternoon, TimeEvening, TimeNight:
		return true
	}
	return false
}

// Contains reports whether hour falls into the bucket. Buckets are half-open:
// Night [0,5), Morning [5,12), Afternoon [12,18), Evening [18,24).
func (t TimeOfDay) Contains(hour int) bool {
	switch t {
	case TimeNight:
		return hour >= 0 && hour < 5
	case TimeMorning:
		return hour >= 5 && hour < 12
	case TimeAfternoon:
		return hour >= 12 && hour < 18
	case TimeEvening:
		return hour >= 18 && hour < 24
	case TimeAny, "":
		return true
	}
	return false
}

// Filters are the criteria narrowing the visible session list. A field at its
// zero value or at "Any" does not filter anything.
// swagger:model Filters
type Filters struct {
	Location    string      `json:"location"`
	Date        string      `json:"date"`
	Time        TimeOfDay   `json:"time"`
	SessionType SessionType `json:"sessionType"`
	SkillLevel  SkillLevel  `json:"skillLevel"`
}

// DefaultFilters returns filters that match every session.
func DefaultFilters() Filters {
	return Filters{
		Time:        TimeAny,
		SessionType: FilterAny,
		SkillLevel:  FilterAny,
	}
}

func isAny(v string) bool {
	return v == "" || v == FilterAny
}

// Validate checks that every enumerated field is Any or a declared value.
func (f Filters) Validate() error {
	if !isAny(string(f.Time)) && !f.Time.Valid() {
		return fmt.Errorf("%w: unknown time of day %q", ErrInvalidFilter, f.Time)
	}
	if !isAny(string(f.SessionType)) && !f.SessionType.Valid() {
		return fmt.Errorf("%w: unknown session type %q", ErrInvalidFilter, f.SessionType)
	}
	if !isAny(string(f.SkillLevel)) && !f.SkillLevel.Valid() {
		return fmt.Errorf("%w: unknown skill level %q", ErrInvalidFilter, f.SkillLevel)
	}
	if f.Date != "" {
		if _, err := time.Parse(DateLayout, f.Date); err != nil {
			return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidFilter)
		}
	}
	return nil
}

// Matches reports whether s satisfies every active predicate.
func (f Filters) Matches(s *Session) bool {
	if f.Location != "" && !strings.Contains(strings.ToLower(s.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.Date != "" && s.Date != f.Date {
		return false
	}
	if !isAny(string(f.Time)) {
		// An unreadable start time never matches a bucket.
		hour, ok := s.Hour()
		if !ok || !f.Time.Contains(hour) {
			return false
		}
	}
	if !isAny(string(f.SessionType)) && s.Type != f.SessionType {
		return false
	}
	if !isAny(string(f.SkillLevel)) && s.SkillLevel != f.SkillLevel {
		return false
	}
	return true
}

// FilterUpdate is a partial change to Filters. Nil fields keep their current value.
type FilterUpdate struct {
	Location    *string      `json:"location,omitempty"`
	Date        *string      `json:"date,omitempty"`
	Time        *TimeOfDay   `json:"time,omitempty"`
	SessionType *SessionType `json:"sessionType,omitempty"`
	SkillLevel  *SkillLevel  `json:"skillLevel,omitempty"`
}

// Merge returns f with every field supplied by u overwritten.
func (f Filters) Merge(u FilterUpdate) Filters {
	if u.Location != nil {
		f.Location = *u.Location
	}
	if u.Date != nil {
		f.Date = *u.Date
	}
	if u.Time != nil {
		f.Time = *u.Time
	}
	if u.SessionType != nil {
		f.SessionType = *u.SessionType
	}
	if u.SkillLevel != nil {
		f.SkillLevel = *u.SkillLevel
	}
	return f
}
