package models

import "time"

// MatchStage matches the match_stage ENUM in the database.
type MatchStage string

const (
	StageGroup        MatchStage = "group"
	StageQuarterfinal MatchStage = "quarterfinal"
	StageSemifinal    MatchStage = "semifinal"
	StageFinal        MatchStage = "final"
)

// MatchResult is present once a match has been played. A result always has a
// winner; Rollball has no draws.
type MatchResult struct {
	Team1Sets int `json:"team1_sets"`
	Team2Sets int `json:"team2_sets"`
	WinnerID  int `json:"winner_id"`
}

type Match struct {
	ID      int        `json:"id" db:"id"`
	EventID int        `json:"event_id" db:"event_id"`
	GroupID *int       `json:"group_id,omitempty" db:"group_id"`
	Team1ID int        `json:"team1_id" db:"team1_id"`
	Team2ID int        `json:"team2_id" db:"team2_id"`
	Date    time.Time  `json:"date" db:"date"`
	Venue   string     `json:"venue" db:"venue"`
	Stage   MatchStage `json:"stage" db:"stage"`

	Result *MatchResult `json:"result,omitempty" db:"-"`
}

// Completed reports whether a result has been recorded.
func (m *Match) Completed() bool {
	return m.Result != nil
}

// Involves reports whether the given team played in this match.
func (m *Match) Involves(teamID int) bool {
	return m.Team1ID == teamID || m.Team2ID == teamID
}
