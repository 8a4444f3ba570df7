package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Layouts of the naive local date and clock fields carried by a Session.
const (
	DateLayout     = "2006-01-02"
	ClockLayout    = "15:04"
	DateTimeLayout = DateLayout + "T" + ClockLayout
)

// SessionType is the kind of activity a session offers.
type SessionType string

const (
	SessionTypeSocial      SessionType = "Social"
	SessionTypeTraining    SessionType = "Training"
	SessionTypeCompetition SessionType = "Competition"
	SessionTypeRoundRobin  SessionType = "Round Robin"
)

// SessionTypes lists every valid session type in display order.
var SessionTypes = []SessionType{SessionTypeSocial, SessionTypeTraining, SessionTypeCompetition, SessionTypeRoundRobin}

// Valid reports whether t is one of the declared session types.
func (t SessionType) Valid() bool {
	for _, v := range SessionTypes {
		if t == v {
			return true
		}
	}
	return false
}

// SkillLevel is the player level a session is aimed at.
type SkillLevel string

const (
	SkillLevelBeginner     SkillLevel = "Beginner"
	SkillLevelIntermediate SkillLevel = "Intermediate"
	SkillLevelAdvanced     SkillLevel = "Advanced"
	SkillLevelAll          SkillLevel = "All Levels"
)

// SkillLevels lists every valid skill level in display order.
var SkillLevels = []SkillLevel{SkillLevelBeginner, SkillLevelIntermediate, SkillLevelAdvanced, SkillLevelAll}

// Valid reports whether l is one of the declared skill levels.
func (l SkillLevel) Valid() bool {
	for _, v := range SkillLevels {
		if l == v {
			return true
		}
	}
	return false
}

// Privacy controls who can see a session.
type Privacy string

const (
	PrivacyPublic  Privacy = "Public"
	PrivacyPrivate Privacy = "Private"
)

// Valid reports whether p is Public or Private.
func (p Privacy) Valid() bool {
	return p == PrivacyPublic || p == PrivacyPrivate
}

// Participants tracks how many players joined a session and how many it can take.
type Participants struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// Validate checks 0 <= Current <= Max and Max >= 1.
func (p Participants) Validate() error {
	if p.Max < 1 {
		return fmt.Errorf("%w: max must be at least 1", ErrOverCapacity)
	}
	if p.Current < 0 || p.Current > p.Max {
		return fmt.Errorf("%w: %d of %d", ErrOverCapacity, p.Current, p.Max)
	}
	return nil
}

// Session is a scheduled activity users can discover and join.
// swagger:model Session
type Session struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	Club         Club         `json:"club"`
	Date         string       `json:"date"`
	Time         string       `json:"time"`
	Duration     int          `json:"duration"`
	Location     string       `json:"location"`
	Description  string       `json:"description"`
	Participants Participants `json:"participants"`
	Price        float64      `json:"price"`
	Type         SessionType  `json:"type"`
	SkillLevel   SkillLevel   `json:"skillLevel"`
	Host         string       `json:"host"`
	Privacy      Privacy      `json:"privacy"`
}

// StartsAt combines Date and Time into a naive instant. No timezone conversion
// is applied; the result is only meant for ordering.
func (s *Session) StartsAt() (time.Time, error) {
	return time.Parse(DateTimeLayout, s.Date+"T"+s.Time)
}

// Hour returns the hour component of Time. ok is false when Time is not a
// valid HH:mm clock, the same values StartsAt rejects.
func (s *Session) Hour() (hour int, ok bool) {
	t, err := time.Parse(ClockLayout, s.Time)
	if err != nil {
		return 0, false
	}
	return t.Hour(), true
}

// SessionDraft is a session as submitted by the creation flow, before the
// system assigns id, club and the current participant count.
type SessionDraft struct {
	Name            string
	Date            string
	Time            string
	Duration        int
	Location        string
	Description     string
	Price           float64
	Type            SessionType
	SkillLevel      SkillLevel
	Host            string
	Privacy         Privacy
	MaxParticipants int
	// ClubID is the club the creator asked for. Zero means no preference.
	ClubID int
}

// Validate checks the draft against the creation form constraints.
func (d *SessionDraft) Validate() error {
	var problems []string
	required := map[string]string{
		"name":        d.Name,
		"location":    d.Location,
		"host":        d.Host,
		"description": d.Description,
	}
	for _, field := range []string{"name", "location", "host", "description"} {
		if strings.TrimSpace(required[field]) == "" {
			problems = append(problems, field+" is required")
		}
	}
	if _, err := time.Parse(DateLayout, d.Date); err != nil {
		problems = append(problems, "date must be YYYY-MM-DD")
	}
	if _, err := time.Parse(ClockLayout, d.Time); err != nil {
		problems = append(problems, "time must be HH:mm")
	}
	if d.Duration <= 0 {
		problems = append(problems, "duration must be positive")
	}
	if d.Price < 0 {
		problems = append(problems, "price must not be negative")
	}
	if !d.Type.Valid() {
		problems = append(problems, fmt.Sprintf("unknown session type %q", d.Type))
	}
	if !d.SkillLevel.Valid() {
		problems = append(problems, fmt.Sprintf("unknown skill level %q", d.SkillLevel))
	}
	if !d.Privacy.Valid() {
		problems = append(problems, fmt.Sprintf("unknown privacy %q", d.Privacy))
	}
	if d.MaxParticipants < 1 {
		problems = append(problems, "participants.max must be at least 1")
	}
	if d.ClubID < 0 {
		problems = append(problems, "clubId must not be negative")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidDraft, strings.Join(problems, "; "))
	}
	return nil
}

// NewSession builds a session from a draft with the system-assigned fields.
// The creator counts as the first participant.
func NewSession(id int, club Club, d *SessionDraft) (*Session, error) {
	participants := Participants{Current: 1, Max: d.MaxParticipants}
	if err := participants.Validate(); err != nil {
		return nil, err
	}
	return &Session{
		ID:           id,
		Name:         d.Name,
		Club:         club,
		Date:         d.Date,
		Time:         d.Time,
		Duration:     d.Duration,
		Location:     d.Location,
		Description:  d.Description,
		Participants: participants,
		Price:        d.Price,
		Type:         d.Type,
		SkillLevel:   d.SkillLevel,
		Host:         d.Host,
		Privacy:      d.Privacy,
	}, nil
}

// IDGenerator hands out session ids. Ids never repeat within a process.
type IDGenerator interface {
	NextID() int
}

// SessionRepository holds the authoritative, append-only sequence of sessions.
type SessionRepository interface {
	// Create assigns id, club and current participants to the draft and appends
	// the resulting session.
	Create(ctx context.Context, draft *SessionDraft) (*Session, error)
	// List returns every session in insertion order.
	List(ctx context.Context) ([]*Session, error)
	GetByID(ctx context.Context, id int) (*Session, error)
}

// SessionService defines the use cases around creating and browsing sessions.
type SessionService interface {
	Create(ctx context.Context, draft *SessionDraft) (*Session, error)
	Browse(ctx context.Context, filters Filters, page PaginationParams) ([]*Session, int, error)
	Get(ctx context.Context, id int) (*Session, error)
}

// BrowseService owns the filters and the selected session of a browsing UI.
type BrowseService interface {
	Filters() Filters
	ChangeFilters(update FilterUpdate) (Filters, error)
	ResetFilters() Filters
	Visible(ctx context.Context) ([]*Session, error)
	Select(ctx context.Context, id int) (*Session, error)
	Selected(ctx context.Context) (*Session, error)
	ClearSelection()
}
