package brackets_test

import (
	"testing"

	"github.com/rollball/tournament-system/brackets"
	"github.com/rollball/tournament-system/models"
	. "github.com/smartystreets/goconvey/convey"
)

func team(id int, name string) models.Team {
	return models.Team{ID: id, Name: name, District: "Pune"}
}

func groupMatch(groupID, team1, team2, team1Sets, team2Sets, winner int) models.Match {
	gid := groupID
	return models.Match{
		EventID: 1,
		GroupID: &gid,
		Team1ID: team1,
		Team2ID: team2,
		Stage:   models.StageGroup,
		Result: &models.MatchResult{
			Team1Sets: team1Sets,
			Team2Sets: team2Sets,
			WinnerID:  winner,
		},
	}
}

func TestComputeGroupStandings(t *testing.T) {
	Convey("Given a group of three teams with all matches played", t, func() {
		teams := []models.Team{team(1, "Pune Panthers"), team(2, "Nagpur Nines"), team(3, "Thane Titans")}
		matches := []models.Match{
			groupMatch(10, 1, 2, 3, 1, 1), // T1 beats T2 3-1
			groupMatch(10, 1, 3, 3, 0, 1), // T1 beats T3 3-0
			groupMatch(10, 3, 2, 3, 2, 3), // T3 beats T2 3-2
		}

		standings := brackets.ComputeGroupStandings(teams, matches)

		Convey("Then every team has one row", func() {
			So(standings, ShouldHaveLength, 3)
		})

		Convey("Then the order is T1, T3, T2 by points", func() {
			So(standings[0].TeamID, ShouldEqual, 1)
			So(standings[1].TeamID, ShouldEqual, 3)
			So(standings[2].TeamID, ShouldEqual, 2)
		})

		Convey("Then points are always twice the win count", func() {
			for _, row := range standings {
				So(row.Points, ShouldEqual, row.Wins*2)
			}
			So(standings[0].Points, ShouldEqual, 4)
			So(standings[1].Points, ShouldEqual, 2)
			So(standings[2].Points, ShouldEqual, 0)
		})

		Convey("Then sets accumulate in the orientation each team played", func() {
			So(standings[0].SetsWon, ShouldEqual, 6)
			So(standings[0].SetsLost, ShouldEqual, 1)
			So(standings[1].SetsWon, ShouldEqual, 3)
			So(standings[1].SetsLost, ShouldEqual, 5)
			So(standings[2].SetsWon, ShouldEqual, 3)
			So(standings[2].SetsLost, ShouldEqual, 6)
		})

		Convey("Then the set ratio divides won by lost sets", func() {
			So(standings[0].SetRatio, ShouldEqual, 6.0)
			So(standings[1].SetRatio, ShouldAlmostEqual, 0.6, 1e-9)
			So(standings[2].SetRatio, ShouldEqual, 0.5)
		})
	})

	Convey("Given a group with no completed matches", t, func() {
		teams := []models.Team{team(7, "A"), team(8, "B"), team(9, "C")}
		gid := 10
		scheduledOnly := []models.Match{
			{EventID: 1, GroupID: &gid, Team1ID: 7, Team2ID: 8, Stage: models.StageGroup},
		}

		standings := brackets.ComputeGroupStandings(teams, scheduledOnly)

		Convey("Then every row is zeroed and input order is kept", func() {
			So(standings, ShouldHaveLength, 3)
			for i, row := range standings {
				So(row.TeamID, ShouldEqual, teams[i].ID)
				So(row.MatchesPlayed, ShouldEqual, 0)
				So(row.Wins, ShouldEqual, 0)
				So(row.Losses, ShouldEqual, 0)
				So(row.Points, ShouldEqual, 0)
				So(row.SetRatio, ShouldEqual, 0)
			}
		})
	})

	Convey("Given teams tied on points", t, func() {
		teams := []models.Team{team(1, "A"), team(2, "B"), team(3, "C"), team(4, "D")}
		matches := []models.Match{
			groupMatch(10, 1, 3, 3, 0, 1), // A beats C 3-0, ratio boost for A
			groupMatch(10, 2, 4, 3, 2, 2), // B beats D 3-2
		}

		standings := brackets.ComputeGroupStandings(teams, matches)

		Convey("Then set ratio decides between them", func() {
			So(standings[0].TeamID, ShouldEqual, 1)
			So(standings[1].TeamID, ShouldEqual, 2)
		})

		Convey("Then teams equal on both keys keep their input order", func() {
			// C and D both lost once; C's ratio 0/3=0, D's 2/3.
			So(standings[2].TeamID, ShouldEqual, 4)
			So(standings[3].TeamID, ShouldEqual, 3)
		})
	})

	Convey("Given a winner that dropped no sets", t, func() {
		teams := []models.Team{team(1, "A"), team(2, "B")}
		matches := []models.Match{groupMatch(10, 1, 2, 3, 0, 1)}

		standings := brackets.ComputeGroupStandings(teams, matches)

		Convey("Then its ratio falls back to the won-set count", func() {
			So(standings[0].SetsLost, ShouldEqual, 0)
			So(standings[0].SetRatio, ShouldEqual, 3.0)
		})
	})
}

func TestSelectQualifiers(t *testing.T) {
	Convey("Given two groups with computed standings", t, func() {
		groups := []brackets.GroupStandings{
			{
				GroupID:   10,
				GroupName: "Group A",
				Standings: []brackets.TeamStanding{
					{TeamID: 1, Points: 4}, {TeamID: 2, Points: 2}, {TeamID: 3, Points: 0},
				},
			},
			{
				GroupID:   11,
				GroupName: "Group B",
				Standings: []brackets.TeamStanding{
					{TeamID: 4, Points: 6}, {TeamID: 5, Points: 4}, {TeamID: 6, Points: 2}, {TeamID: 7, Points: 0},
				},
			},
		}

		qualified := brackets.SelectQualifiers(groups)

		Convey("Then exactly two teams per group advance", func() {
			So(qualified, ShouldHaveLength, 4)
		})

		Convey("Then concatenation follows group order, not a global re-rank", func() {
			So(qualified[0].TeamID, ShouldEqual, 1)
			So(qualified[1].TeamID, ShouldEqual, 2)
			So(qualified[2].TeamID, ShouldEqual, 4)
			So(qualified[3].TeamID, ShouldEqual, 5)
		})

		Convey("Then each qualifier is tagged with its group name", func() {
			So(qualified[0].GroupName, ShouldEqual, "Group A")
			So(qualified[2].GroupName, ShouldEqual, "Group B")
		})
	})

	Convey("Given a group with fewer than two teams", t, func() {
		groups := []brackets.GroupStandings{
			{GroupID: 10, GroupName: "Group A", Standings: []brackets.TeamStanding{{TeamID: 1}}},
		}

		Convey("Then only the available teams are taken", func() {
			So(brackets.SelectQualifiers(groups), ShouldHaveLength, 1)
		})
	})
}
