package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/rollball/tournament-system/brackets"
	"github.com/rollball/tournament-system/models"
)

// WriteStandingsCSV renders one or more group tables as a flat CSV document,
// one row per team, ordered exactly as the standings are ranked.
func WriteStandingsCSV(w io.Writer, tables []brackets.GroupStandings) error {
	cw := csv.NewWriter(w)

	header := []string{"group", "rank", "team", "district", "played", "wins", "losses", "points", "sets_won", "sets_lost", "set_ratio"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write standings header: %w", err)
	}

	for _, table := range tables {
		for rank, row := range table.Standings {
			record := []string{
				table.GroupName,
				strconv.Itoa(rank + 1),
				row.TeamName,
				row.District,
				strconv.Itoa(row.MatchesPlayed),
				strconv.Itoa(row.Wins),
				strconv.Itoa(row.Losses),
				strconv.Itoa(row.Points),
				strconv.Itoa(row.SetsWon),
				strconv.Itoa(row.SetsLost),
				strconv.FormatFloat(row.SetRatio, 'f', 3, 64),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write standings row: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteRosterCSV renders a team roster, one row per player.
func WriteRosterCSV(w io.Writer, team *models.Team, players []models.Player) error {
	cw := csv.NewWriter(w)

	header := []string{"team", "jersey", "name", "sex", "date_of_birth"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write roster header: %w", err)
	}

	for _, p := range players {
		record := []string{
			team.Name,
			strconv.Itoa(p.JerseyNumber),
			p.Name,
			string(p.Sex),
			p.DateOfBirth.Format("2006-01-02"),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write roster row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
