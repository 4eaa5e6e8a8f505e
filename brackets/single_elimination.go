package brackets

import (
	"errors"
	"fmt"
)

// Stage tags a knockout slot with its round.
type Stage string

const (
	StageQuarterfinal Stage = "quarterfinal"
	StageSemifinal    Stage = "semifinal"
	StageFinal        Stage = "final"
)

// MinQualifiers is the smallest field a knockout stage can be built from.
const MinQualifiers = 4

var (
	ErrInsufficientQualifiers = errors.New("at least 4 qualified teams are required to generate a knockout bracket")
	ErrSlotNotFound           = errors.New("knockout slot not found")
	ErrInvalidWinner          = errors.New("winner must be one of the slot's two teams")
)

// Slot is one pairing position in the knockout bracket. Sides are nil until
// seeded or filled by propagation from the previous round.
type Slot struct {
	ID       string `json:"id"`
	Stage    Stage  `json:"stage"`
	Position int    `json:"position"`
	Team1ID  *int   `json:"team1_id,omitempty"`
	Team2ID  *int   `json:"team2_id,omitempty"`
	WinnerID *int   `json:"winner_id,omitempty"`
}

// Bracket is an immutable snapshot of the knockout stage. RecordWinner
// returns a fresh value; the receiver is never modified.
type Bracket struct {
	Slots []Slot `json:"slots"`
}

// GenerateBracket builds the full knockout structure from the qualifier list,
// in seeding order as produced by SelectQualifiers.
//
// Quarterfinals pair qualifiers sequentially (slot i gets seeds 2i and 2i+1),
// not by 1-vs-8 cross-seeding; that is the competition's published draw.
// With four qualifiers the quarterfinal round is skipped and the semifinals
// are seeded directly the same way. The final always exists and starts empty.
func GenerateBracket(qualifiers []TeamStanding) (Bracket, error) {
	n := len(qualifiers)
	if n < MinQualifiers {
		return Bracket{}, fmt.Errorf("%w (found %d)", ErrInsufficientQualifiers, n)
	}

	var slots []Slot

	if n > MinQualifiers {
		for i := 0; i < n/2; i++ {
			slot := Slot{
				ID:       fmt.Sprintf("qf-%d", i),
				Stage:    StageQuarterfinal,
				Position: i,
			}
			slot.Team1ID = seedAt(qualifiers, 2*i)
			slot.Team2ID = seedAt(qualifiers, 2*i+1)
			slots = append(slots, slot)
		}
	}

	numSemifinals := min(MinQualifiers, n) / 2
	for i := 0; i < numSemifinals; i++ {
		slot := Slot{
			ID:       fmt.Sprintf("sf-%d", i),
			Stage:    StageSemifinal,
			Position: i,
		}
		if n <= MinQualifiers {
			slot.Team1ID = seedAt(qualifiers, 2*i)
			slot.Team2ID = seedAt(qualifiers, 2*i+1)
		}
		slots = append(slots, slot)
	}

	slots = append(slots, Slot{
		ID:       "final",
		Stage:    StageFinal,
		Position: 0,
	})

	return Bracket{Slots: slots}, nil
}

// RecordWinner marks the winner of a slot and propagates it into the next
// round. The input bracket is copied wholesale; on any error it is returned
// unchanged. Recording a different winner for the same slot overwrites the
// downstream side cleanly.
func RecordWinner(b Bracket, slotID string, winnerID int) (Bracket, error) {
	next := b.clone()

	idx := next.indexOf(slotID)
	if idx < 0 {
		return b, fmt.Errorf("%w: %q", ErrSlotNotFound, slotID)
	}

	slot := &next.Slots[idx]
	if !sideEquals(slot.Team1ID, winnerID) && !sideEquals(slot.Team2ID, winnerID) {
		return b, fmt.Errorf("%w: team %d is not in slot %q", ErrInvalidWinner, winnerID, slotID)
	}
	slot.WinnerID = intPtr(winnerID)

	switch slot.Stage {
	case StageQuarterfinal:
		// Winner of quarterfinal p feeds semifinal floor(p/2); even
		// positions take the first side, odd positions the second.
		target := next.find(StageSemifinal, slot.Position/2)
		if target != nil {
			if slot.Position%2 == 0 {
				target.Team1ID = intPtr(winnerID)
			} else {
				target.Team2ID = intPtr(winnerID)
			}
		}
	case StageSemifinal:
		target := next.find(StageFinal, 0)
		if target != nil {
			if slot.Position == 0 {
				target.Team1ID = intPtr(winnerID)
			} else {
				target.Team2ID = intPtr(winnerID)
			}
		}
	case StageFinal:
		// Terminal stage: the winner is the champion.
	}

	return next, nil
}

// Champion returns the winner of the final, or nil while it is undecided.
func (b Bracket) Champion() *int {
	for _, slot := range b.Slots {
		if slot.Stage == StageFinal && slot.WinnerID != nil {
			id := *slot.WinnerID
			return &id
		}
	}
	return nil
}

// SlotsByStage returns the slots of one stage in position order.
func (b Bracket) SlotsByStage(stage Stage) []Slot {
	var out []Slot
	for _, slot := range b.Slots {
		if slot.Stage == stage {
			out = append(out, slot)
		}
	}
	return out
}

func (b Bracket) clone() Bracket {
	slots := make([]Slot, len(b.Slots))
	for i, slot := range b.Slots {
		slots[i] = Slot{
			ID:       slot.ID,
			Stage:    slot.Stage,
			Position: slot.Position,
			Team1ID:  copyIntPtr(slot.Team1ID),
			Team2ID:  copyIntPtr(slot.Team2ID),
			WinnerID: copyIntPtr(slot.WinnerID),
		}
	}
	return Bracket{Slots: slots}
}

func (b Bracket) indexOf(slotID string) int {
	for i := range b.Slots {
		if b.Slots[i].ID == slotID {
			return i
		}
	}
	return -1
}

func (b *Bracket) find(stage Stage, position int) *Slot {
	for i := range b.Slots {
		if b.Slots[i].Stage == stage && b.Slots[i].Position == position {
			return &b.Slots[i]
		}
	}
	return nil
}

func seedAt(qualifiers []TeamStanding, i int) *int {
	if i >= len(qualifiers) {
		return nil
	}
	return intPtr(qualifiers[i].TeamID)
}

func sideEquals(side *int, teamID int) bool {
	return side != nil && *side == teamID
}

func intPtr(v int) *int { return &v }

func copyIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
