package services

import (
	"time"

	"github.com/rollball/tournament-system/models"
)

// ValidateRosterAddition enforces the registration rules for a new player:
// the roster cap of 12 and jersey-number uniqueness within the team.
func ValidateRosterAddition(existing []models.Player, player *models.Player) error {
	if player.JerseyNumber <= 0 {
		return ErrInvalidJerseyValue
	}
	if len(existing) >= models.MaxRosterSize {
		return ErrRosterFull
	}
	return checkJerseyUnique(existing, player.JerseyNumber, 0)
}

// ValidateRosterUpdate enforces jersey uniqueness when editing a player,
// ignoring the player's own current entry.
func ValidateRosterUpdate(existing []models.Player, player *models.Player) error {
	if player.JerseyNumber <= 0 {
		return ErrInvalidJerseyValue
	}
	return checkJerseyUnique(existing, player.JerseyNumber, player.ID)
}

// ValidateEligibility checks a player's date of birth against the event's
// optional bounds. Events without bounds accept any date of birth.
func ValidateEligibility(event *models.Event, dob time.Time) error {
	if event.MinDOB != nil && dob.Before(*event.MinDOB) {
		return ErrPlayerNotEligible
	}
	if event.MaxDOB != nil && dob.After(*event.MaxDOB) {
		return ErrPlayerNotEligible
	}
	return nil
}

func checkJerseyUnique(existing []models.Player, jerseyNumber, excludePlayerID int) error {
	for _, p := range existing {
		if p.ID == excludePlayerID {
			continue
		}
		if p.JerseyNumber == jerseyNumber {
			return ErrJerseyNumberTaken
		}
	}
	return nil
}
