package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/rollball/tournament-system/brackets"
	"github.com/rollball/tournament-system/repositories"
)

// KnockoutService owns the per-event bracket snapshots. The bracket itself is
// session state, not a persisted entity: it is regenerated from qualifiers on
// demand and replaced wholesale on every winner update, so readers always see
// a complete, consistent value.
type KnockoutService interface {
	GenerateBracket(ctx context.Context, eventID int) (brackets.Bracket, error)
	GetBracket(ctx context.Context, eventID int) (brackets.Bracket, error)
	RecordWinner(ctx context.Context, eventID int, slotID string, winnerID int) (brackets.Bracket, error)
}

type knockoutService struct {
	standings StandingsService
	teamRepo  repositories.TeamRepository
	hub       *brackets.Hub
	logger    *slog.Logger

	mu        sync.RWMutex
	snapshots map[int]brackets.Bracket
}

func NewKnockoutService(
	standings StandingsService,
	teamRepo repositories.TeamRepository,
	hub *brackets.Hub,
	logger *slog.Logger,
) KnockoutService {
	return &knockoutService{
		standings: standings,
		teamRepo:  teamRepo,
		hub:       hub,
		logger:    logger,
		snapshots: make(map[int]brackets.Bracket),
	}
}

// GenerateBracket selects the event's current qualifiers and builds a fresh
// bracket, replacing any previous snapshot for the event. With fewer than
// four qualifiers the previous snapshot (if any) is left untouched.
func (s *knockoutService) GenerateBracket(ctx context.Context, eventID int) (brackets.Bracket, error) {
	qualifiers, err := s.standings.Qualifiers(ctx, eventID)
	if err != nil {
		return brackets.Bracket{}, err
	}

	bracket, err := brackets.GenerateBracket(qualifiers)
	if err != nil {
		return brackets.Bracket{}, err
	}

	s.mu.Lock()
	s.snapshots[eventID] = bracket
	s.mu.Unlock()

	s.logger.Info("knockout bracket generated",
		slog.Int("event_id", eventID),
		slog.Int("qualifiers", len(qualifiers)),
		slog.Int("slots", len(bracket.Slots)))

	s.hub.BroadcastToRoom(brackets.EventRoom(eventID), brackets.Message{
		Type:    brackets.MessageBracketUpdated,
		Payload: bracket,
	})
	return bracket, nil
}

func (s *knockoutService) GetBracket(ctx context.Context, eventID int) (brackets.Bracket, error) {
	s.mu.RLock()
	bracket, ok := s.snapshots[eventID]
	s.mu.RUnlock()
	if !ok {
		return brackets.Bracket{}, ErrBracketNotGenerated
	}
	return bracket, nil
}

// RecordWinner applies one winner update through the engine and swaps in the
// returned bracket. Invalid input leaves the stored snapshot unchanged.
func (s *knockoutService) RecordWinner(ctx context.Context, eventID int, slotID string, winnerID int) (brackets.Bracket, error) {
	s.mu.Lock()
	current, ok := s.snapshots[eventID]
	if !ok {
		s.mu.Unlock()
		return brackets.Bracket{}, ErrBracketNotGenerated
	}

	updated, err := brackets.RecordWinner(current, slotID, winnerID)
	if err != nil {
		s.mu.Unlock()
		return brackets.Bracket{}, err
	}
	s.snapshots[eventID] = updated
	s.mu.Unlock()

	s.hub.BroadcastToRoom(brackets.EventRoom(eventID), brackets.Message{
		Type:    brackets.MessageBracketUpdated,
		Payload: updated,
	})

	if champion := updated.Champion(); champion != nil {
		s.announceChampion(ctx, eventID, *champion)
	}
	return updated, nil
}

func (s *knockoutService) announceChampion(ctx context.Context, eventID, teamID int) {
	payload := map[string]interface{}{"team_id": teamID}
	if team, err := s.teamRepo.GetByID(ctx, teamID); err == nil {
		payload["team_name"] = team.Name
		payload["coach_name"] = team.CoachName
		payload["district"] = team.District
	} else {
		s.logger.Warn("champion team lookup failed",
			slog.Int("team_id", teamID), slog.Any("error", err))
	}

	s.logger.Info("tournament champion decided",
		slog.Int("event_id", eventID), slog.Int("team_id", teamID))

	s.hub.BroadcastToRoom(brackets.EventRoom(eventID), brackets.Message{
		Type:    brackets.MessageChampionDecided,
		Payload: payload,
	})
}
