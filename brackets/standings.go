package brackets

import (
	"sort"

	"github.com/rollball/tournament-system/models"
)

// pointsPerWin follows the Rollball group-stage rule: two points for a win,
// nothing for a loss. There are no draws.
const pointsPerWin = 2

// TeamStanding is a derived row of a group table. It is computed on demand
// from completed matches and never persisted.
type TeamStanding struct {
	TeamID        int     `json:"team_id"`
	TeamName      string  `json:"team_name"`
	District      string  `json:"district"`
	GroupName     string  `json:"group_name,omitempty"`
	MatchesPlayed int     `json:"matches_played"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Points        int     `json:"points"`
	SetsWon       int     `json:"sets_won"`
	SetsLost      int     `json:"sets_lost"`
	SetRatio      float64 `json:"set_ratio"`
}

// ComputeGroupStandings builds the table for one group from its team list and
// the group's matches. Matches without a result are ignored, so a group with
// no completed matches yields all-zero rows in input order.
//
// Ordering is points descending, then set ratio descending. The sort is
// stable and deliberately has no further tie-break: teams equal on both keys
// keep their input order.
func ComputeGroupStandings(teams []models.Team, matches []models.Match) []TeamStanding {
	standings := make([]TeamStanding, 0, len(teams))

	for _, team := range teams {
		row := TeamStanding{
			TeamID:   team.ID,
			TeamName: team.Name,
			District: team.District,
		}

		for _, match := range matches {
			if !match.Completed() || !match.Involves(team.ID) {
				continue
			}

			row.MatchesPlayed++
			if match.Result.WinnerID == team.ID {
				row.Wins++
			} else {
				row.Losses++
			}

			// Set counts are oriented by the side the team played.
			if match.Team1ID == team.ID {
				row.SetsWon += match.Result.Team1Sets
				row.SetsLost += match.Result.Team2Sets
			} else {
				row.SetsWon += match.Result.Team2Sets
				row.SetsLost += match.Result.Team1Sets
			}
		}

		row.Points = row.Wins * pointsPerWin
		row.SetRatio = setRatio(row.SetsWon, row.SetsLost)
		standings = append(standings, row)
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Points != standings[j].Points {
			return standings[i].Points > standings[j].Points
		}
		return standings[i].SetRatio > standings[j].SetRatio
	})

	return standings
}

// setRatio is setsWon/setsLost, falling back to the raw won-set count when a
// team has lost no sets. An idle team (0/0) therefore gets a ratio of 0.
func setRatio(setsWon, setsLost int) float64 {
	if setsLost > 0 {
		return float64(setsWon) / float64(setsLost)
	}
	return float64(setsWon)
}
