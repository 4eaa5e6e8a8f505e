package models

// Group size limits enforced at assignment time, not by the standings engine.
const (
	MinGroupSize = 3
	MaxGroupSize = 5
)

type Group struct {
	ID      int    `json:"id" db:"id"`
	EventID int    `json:"event_id" db:"event_id"`
	Name    string `json:"name" db:"name"`

	// Teams currently assigned to the group, loaded via teams.group_id.
	Teams []Team `json:"teams,omitempty" db:"-"`
}
