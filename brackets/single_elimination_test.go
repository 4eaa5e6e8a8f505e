package brackets_test

import (
	"testing"

	"github.com/rollball/tournament-system/brackets"
	. "github.com/smartystreets/goconvey/convey"
)

func seeds(ids ...int) []brackets.TeamStanding {
	out := make([]brackets.TeamStanding, len(ids))
	for i, id := range ids {
		out[i] = brackets.TeamStanding{TeamID: id}
	}
	return out
}

func TestGenerateBracket(t *testing.T) {
	Convey("Given fewer than four qualifiers", t, func() {
		_, err := brackets.GenerateBracket(seeds(1, 2, 3))

		Convey("Then generation is rejected without a partial bracket", func() {
			So(err, ShouldWrap, brackets.ErrInsufficientQualifiers)
		})
	})

	Convey("Given exactly four qualifiers", t, func() {
		b, err := brackets.GenerateBracket(seeds(1, 2, 3, 4))
		So(err, ShouldBeNil)

		Convey("Then there are no quarterfinals, two semifinals and one final", func() {
			So(b.SlotsByStage(brackets.StageQuarterfinal), ShouldHaveLength, 0)
			So(b.SlotsByStage(brackets.StageSemifinal), ShouldHaveLength, 2)
			So(b.SlotsByStage(brackets.StageFinal), ShouldHaveLength, 1)
		})

		Convey("Then the semifinals are seeded sequentially", func() {
			sf := b.SlotsByStage(brackets.StageSemifinal)
			So(*sf[0].Team1ID, ShouldEqual, 1)
			So(*sf[0].Team2ID, ShouldEqual, 2)
			So(*sf[1].Team1ID, ShouldEqual, 3)
			So(*sf[1].Team2ID, ShouldEqual, 4)
		})

		Convey("Then the final starts empty at position 0", func() {
			final := b.SlotsByStage(brackets.StageFinal)[0]
			So(final.ID, ShouldEqual, "final")
			So(final.Position, ShouldEqual, 0)
			So(final.Team1ID, ShouldBeNil)
			So(final.Team2ID, ShouldBeNil)
		})
	})

	Convey("Given eight qualifiers Q1..Q8", t, func() {
		b, err := brackets.GenerateBracket(seeds(1, 2, 3, 4, 5, 6, 7, 8))
		So(err, ShouldBeNil)

		Convey("Then there are four quarterfinals, two semifinals and one final", func() {
			So(b.SlotsByStage(brackets.StageQuarterfinal), ShouldHaveLength, 4)
			So(b.SlotsByStage(brackets.StageSemifinal), ShouldHaveLength, 2)
			So(b.SlotsByStage(brackets.StageFinal), ShouldHaveLength, 1)
		})

		Convey("Then quarterfinals pair seeds 2i and 2i+1, not cross-seeded 1v8", func() {
			qf := b.SlotsByStage(brackets.StageQuarterfinal)
			So(*qf[0].Team1ID, ShouldEqual, 1)
			So(*qf[0].Team2ID, ShouldEqual, 2)
			So(*qf[3].Team1ID, ShouldEqual, 7)
			So(*qf[3].Team2ID, ShouldEqual, 8)
		})

		Convey("Then semifinals start unseeded, waiting on propagation", func() {
			for _, sf := range b.SlotsByStage(brackets.StageSemifinal) {
				So(sf.Team1ID, ShouldBeNil)
				So(sf.Team2ID, ShouldBeNil)
			}
		})

		Convey("Then every slot carries a stable id", func() {
			So(b.Slots[0].ID, ShouldEqual, "qf-0")
			So(b.Slots[4].ID, ShouldEqual, "sf-0")
			So(b.Slots[6].ID, ShouldEqual, "final")
		})
	})
}

func TestRecordWinner(t *testing.T) {
	Convey("Given a generated eight-team bracket", t, func() {
		b, err := brackets.GenerateBracket(seeds(1, 2, 3, 4, 5, 6, 7, 8))
		So(err, ShouldBeNil)

		Convey("When the winner of quarterfinal position 2 is recorded", func() {
			updated, err := brackets.RecordWinner(b, "qf-2", 5)
			So(err, ShouldBeNil)

			Convey("Then semifinal position 1 gets it as team 1", func() {
				sf := updated.SlotsByStage(brackets.StageSemifinal)
				So(sf[1].Team1ID, ShouldNotBeNil)
				So(*sf[1].Team1ID, ShouldEqual, 5)
			})

			Convey("Then the original bracket value is untouched", func() {
				So(b.SlotsByStage(brackets.StageSemifinal)[1].Team1ID, ShouldBeNil)
			})
		})

		Convey("When the winner of quarterfinal position 3 is recorded", func() {
			updated, err := brackets.RecordWinner(b, "qf-3", 8)
			So(err, ShouldBeNil)

			Convey("Then semifinal position 1 gets it as team 2", func() {
				sf := updated.SlotsByStage(brackets.StageSemifinal)
				So(sf[1].Team2ID, ShouldNotBeNil)
				So(*sf[1].Team2ID, ShouldEqual, 8)
			})
		})

		Convey("When a team outside the slot is recorded as winner", func() {
			updated, err := brackets.RecordWinner(b, "qf-0", 99)

			Convey("Then the call is rejected and the bracket unchanged", func() {
				So(err, ShouldWrap, brackets.ErrInvalidWinner)
				So(updated.SlotsByStage(brackets.StageQuarterfinal)[0].WinnerID, ShouldBeNil)
			})
		})

		Convey("When an unknown slot id is used", func() {
			_, err := brackets.RecordWinner(b, "qf-9", 1)

			Convey("Then a slot-not-found error is reported", func() {
				So(err, ShouldWrap, brackets.ErrSlotNotFound)
			})
		})

		Convey("When a quarterfinal winner is corrected afterwards", func() {
			updated, err := brackets.RecordWinner(b, "qf-0", 1)
			So(err, ShouldBeNil)
			updated, err = brackets.RecordWinner(updated, "qf-0", 2)
			So(err, ShouldBeNil)

			Convey("Then the downstream side is overwritten, not duplicated", func() {
				sf := updated.SlotsByStage(brackets.StageSemifinal)
				So(*sf[0].Team1ID, ShouldEqual, 2)
			})
		})
	})

	Convey("Given a four-team bracket played to the end", t, func() {
		b, err := brackets.GenerateBracket(seeds(1, 2, 3, 4))
		So(err, ShouldBeNil)

		b, err = brackets.RecordWinner(b, "sf-0", 1)
		So(err, ShouldBeNil)
		b, err = brackets.RecordWinner(b, "sf-1", 4)
		So(err, ShouldBeNil)

		Convey("Then the final is seeded from both semifinals", func() {
			final := b.SlotsByStage(brackets.StageFinal)[0]
			So(*final.Team1ID, ShouldEqual, 1)
			So(*final.Team2ID, ShouldEqual, 4)
		})

		Convey("When the final winner is recorded", func() {
			done, err := brackets.RecordWinner(b, "final", 4)
			So(err, ShouldBeNil)

			Convey("Then the champion is decided and terminal", func() {
				So(done.Champion(), ShouldNotBeNil)
				So(*done.Champion(), ShouldEqual, 4)
			})
		})

		Convey("Then the champion is undecided before the final", func() {
			So(b.Champion(), ShouldBeNil)
		})
	})
}
