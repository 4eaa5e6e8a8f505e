package models

import "time"

// EventGender matches the event_gender ENUM in the database.
type EventGender string

const (
	GenderMale   EventGender = "male"
	GenderFemale EventGender = "female"
	GenderMixed  EventGender = "mixed"
)

type Event struct {
	ID        int         `json:"id" db:"id"`
	Name      string      `json:"name" db:"name"`
	Category  string      `json:"category" db:"category"`
	Gender    EventGender `json:"gender" db:"gender"`
	StartDate time.Time   `json:"start_date" db:"start_date"`
	EndDate   time.Time   `json:"end_date" db:"end_date"`
	MaxTeams  int         `json:"max_teams" db:"max_teams"`
	MinDOB    *time.Time  `json:"min_dob,omitempty" db:"min_dob"`
	MaxDOB    *time.Time  `json:"max_dob,omitempty" db:"max_dob"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`

	Teams   []Team  `json:"teams,omitempty" db:"-"`
	Groups  []Group `json:"groups,omitempty" db:"-"`
	Matches []Match `json:"matches,omitempty" db:"-"`
}
