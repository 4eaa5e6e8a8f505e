package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/rollball/tournament-system/brackets"
	"github.com/rollball/tournament-system/export"
	"github.com/rollball/tournament-system/models"
)

func TestWriteStandingsCSV(t *testing.T) {
	Convey("Given two group tables", t, func() {
		tables := []brackets.GroupStandings{
			{
				GroupID:   1,
				GroupName: "Group A",
				Standings: []brackets.TeamStanding{
					{TeamID: 1, TeamName: "Thunder", District: "North", MatchesPlayed: 2, Wins: 2, Points: 4, SetsWon: 6, SetsLost: 1, SetRatio: 6},
					{TeamID: 2, TeamName: "Strikers", District: "South", MatchesPlayed: 2, Wins: 0, Losses: 2, SetsWon: 1, SetsLost: 6, SetRatio: 1.0 / 6.0},
				},
			},
			{
				GroupID:   2,
				GroupName: "Group B",
				Standings: []brackets.TeamStanding{
					{TeamID: 3, TeamName: "Falcons", District: "East"},
				},
			},
		}

		var buf bytes.Buffer
		err := export.WriteStandingsCSV(&buf, tables)
		So(err, ShouldBeNil)

		records, err := csv.NewReader(&buf).ReadAll()
		So(err, ShouldBeNil)

		Convey("It emits a header and one row per team in ranking order", func() {
			So(records, ShouldHaveLength, 4)
			So(records[0][0], ShouldEqual, "group")
			So(records[1][:4], ShouldResemble, []string{"Group A", "1", "Thunder", "North"})
			So(records[2][:4], ShouldResemble, []string{"Group A", "2", "Strikers", "South"})
			So(records[3][:4], ShouldResemble, []string{"Group B", "1", "Falcons", "East"})
		})

		Convey("Set ratios are rendered with three decimals", func() {
			So(records[1][10], ShouldEqual, "6.000")
			So(records[2][10], ShouldEqual, "0.167")
		})
	})
}

func TestWriteRosterCSV(t *testing.T) {
	Convey("Given a team with two players", t, func() {
		team := &models.Team{ID: 5, Name: "Thunder"}
		dob := time.Date(2008, 6, 15, 0, 0, 0, 0, time.UTC)
		players := []models.Player{
			{ID: 1, Name: "Asha", JerseyNumber: 7, Sex: models.SexFemale, DateOfBirth: dob},
			{ID: 2, Name: "Ravi", JerseyNumber: 9, Sex: models.SexMale, DateOfBirth: dob.AddDate(1, 0, 0)},
		}

		var buf bytes.Buffer
		err := export.WriteRosterCSV(&buf, team, players)
		So(err, ShouldBeNil)

		records, err := csv.NewReader(&buf).ReadAll()
		So(err, ShouldBeNil)

		Convey("It lists every player with their jersey and date of birth", func() {
			So(records, ShouldHaveLength, 3)
			So(records[1], ShouldResemble, []string{"Thunder", "7", "Asha", string(models.SexFemale), "2008-06-15"})
			So(records[2], ShouldResemble, []string{"Thunder", "9", "Ravi", string(models.SexMale), "2009-06-15"})
		})
	})
}
