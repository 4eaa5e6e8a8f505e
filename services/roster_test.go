package services_test

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/rollball/tournament-system/models"
	"github.com/rollball/tournament-system/services"
)

func roster(jerseys ...int) []models.Player {
	players := make([]models.Player, len(jerseys))
	for i, j := range jerseys {
		players[i] = models.Player{ID: i + 1, JerseyNumber: j}
	}
	return players
}

func TestValidateRosterAddition(t *testing.T) {
	Convey("Given a team with a few registered players", t, func() {
		existing := roster(1, 4, 7)

		Convey("A new player with a fresh jersey number is accepted", func() {
			err := services.ValidateRosterAddition(existing, &models.Player{JerseyNumber: 9})
			So(err, ShouldBeNil)
		})

		Convey("A duplicate jersey number is rejected", func() {
			err := services.ValidateRosterAddition(existing, &models.Player{JerseyNumber: 4})
			So(err, ShouldEqual, services.ErrJerseyNumberTaken)
		})

		Convey("A non-positive jersey number is rejected", func() {
			So(services.ValidateRosterAddition(existing, &models.Player{JerseyNumber: 0}), ShouldEqual, services.ErrInvalidJerseyValue)
			So(services.ValidateRosterAddition(existing, &models.Player{JerseyNumber: -3}), ShouldEqual, services.ErrInvalidJerseyValue)
		})
	})

	Convey("Given a team at the roster cap", t, func() {
		jerseys := make([]int, models.MaxRosterSize)
		for i := range jerseys {
			jerseys[i] = i + 1
		}
		existing := roster(jerseys...)

		Convey("Adding a thirteenth player fails", func() {
			err := services.ValidateRosterAddition(existing, &models.Player{JerseyNumber: 99})
			So(err, ShouldEqual, services.ErrRosterFull)
		})
	})
}

func TestValidateRosterUpdate(t *testing.T) {
	Convey("Given a roster with three players", t, func() {
		existing := roster(1, 4, 7)

		Convey("A player may keep their own jersey number", func() {
			err := services.ValidateRosterUpdate(existing, &models.Player{ID: 2, JerseyNumber: 4})
			So(err, ShouldBeNil)
		})

		Convey("A player may switch to an unused number", func() {
			err := services.ValidateRosterUpdate(existing, &models.Player{ID: 2, JerseyNumber: 10})
			So(err, ShouldBeNil)
		})

		Convey("Taking a teammate's number is rejected", func() {
			err := services.ValidateRosterUpdate(existing, &models.Player{ID: 2, JerseyNumber: 7})
			So(err, ShouldEqual, services.ErrJerseyNumberTaken)
		})
	})
}

func TestValidateEligibility(t *testing.T) {
	date := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("bad date %q: %v", s, err)
		}
		return d
	}

	Convey("Given an event with a date-of-birth window", t, func() {
		minDOB := date("2006-01-01")
		maxDOB := date("2010-12-31")
		event := &models.Event{MinDOB: &minDOB, MaxDOB: &maxDOB}

		Convey("A date inside the window is eligible", func() {
			So(services.ValidateEligibility(event, date("2008-06-15")), ShouldBeNil)
		})

		Convey("The boundary dates themselves are eligible", func() {
			So(services.ValidateEligibility(event, minDOB), ShouldBeNil)
			So(services.ValidateEligibility(event, maxDOB), ShouldBeNil)
		})

		Convey("A player born too early is rejected", func() {
			So(services.ValidateEligibility(event, date("2005-12-31")), ShouldEqual, services.ErrPlayerNotEligible)
		})

		Convey("A player born too late is rejected", func() {
			So(services.ValidateEligibility(event, date("2011-01-01")), ShouldEqual, services.ErrPlayerNotEligible)
		})
	})

	Convey("Given an event without eligibility bounds", t, func() {
		event := &models.Event{}

		Convey("Any date of birth is accepted", func() {
			So(services.ValidateEligibility(event, date("1990-01-01")), ShouldBeNil)
			So(services.ValidateEligibility(event, date("2020-01-01")), ShouldBeNil)
		})
	})
}
