package services

import "errors"

// Shared business-rule errors, mapped to HTTP statuses in the handlers layer.
var (
	ErrNotFound         = errors.New("requested resource not found")
	ErrValidationFailed = errors.New("validation failed")

	// Auth
	ErrAuthInvalidCredentials = errors.New("invalid email or password")
	ErrAuthEmailTaken         = errors.New("email is already taken")
	ErrPasswordTooShort       = errors.New("password must be at least 8 characters")

	// Roster rules
	ErrRosterFull         = errors.New("maximum 12 players allowed per team")
	ErrJerseyNumberTaken  = errors.New("jersey number already used by another player in the team")
	ErrPlayerNotEligible  = errors.New("player's date of birth is outside the event's eligibility bounds")
	ErrPlayerNotInTeam    = errors.New("player does not belong to the team")
	ErrInvalidJerseyValue = errors.New("jersey number must be positive")

	// Event registration
	ErrEventFull          = errors.New("event has reached its team capacity")
	ErrTeamAlreadyInEvent = errors.New("team is already registered for an event")
	ErrTeamNotInEvent     = errors.New("team is not registered for this event")

	// Group assignment
	ErrGroupFull       = errors.New("group already has the maximum of 5 teams")
	ErrGroupWrongEvent = errors.New("group belongs to a different event")

	// Match rules
	ErrMatchSameTeam       = errors.New("a match requires two distinct teams")
	ErrMatchInvalidWinner  = errors.New("winner must be one of the two teams in the match")
	ErrMatchNegativeSets   = errors.New("set counts must not be negative")
	ErrMatchGroupRequired  = errors.New("group stage matches must reference a group")
	ErrMatchTeamNotInGroup = errors.New("both teams must belong to the match's group")

	// Knockout stage
	ErrBracketNotGenerated = errors.New("knockout bracket has not been generated for this event")

	// File storage
	ErrUploadsDisabled = errors.New("file uploads are not configured")
)
