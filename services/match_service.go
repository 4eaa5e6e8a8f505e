package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rollball/tournament-system/brackets"
	"github.com/rollball/tournament-system/models"
	"github.com/rollball/tournament-system/repositories"
)

type MatchService interface {
	ScheduleMatch(ctx context.Context, input ScheduleMatchInput) (*models.Match, error)
	GetMatchByID(ctx context.Context, id int) (*models.Match, error)
	ListMatchesByEvent(ctx context.Context, eventID int) ([]models.Match, error)
	RecordResult(ctx context.Context, matchID int, input MatchResultInput) (*models.Match, error)
	DeleteMatch(ctx context.Context, id int) error
}

type ScheduleMatchInput struct {
	EventID int               `json:"event_id"`
	GroupID *int              `json:"group_id,omitempty"`
	Team1ID int               `json:"team1_id"`
	Team2ID int               `json:"team2_id"`
	Date    time.Time         `json:"date"`
	Venue   string            `json:"venue"`
	Stage   models.MatchStage `json:"stage"`
}

type MatchResultInput struct {
	Team1Sets int `json:"team1_sets"`
	Team2Sets int `json:"team2_sets"`
	WinnerID  int `json:"winner_id"`
}

type matchService struct {
	matchRepo repositories.MatchRepository
	teamRepo  repositories.TeamRepository
	standings StandingsService
	hub       *brackets.Hub
	logger    *slog.Logger
}

func NewMatchService(
	matchRepo repositories.MatchRepository,
	teamRepo repositories.TeamRepository,
	standings StandingsService,
	hub *brackets.Hub,
	logger *slog.Logger,
) MatchService {
	return &matchService{
		matchRepo: matchRepo,
		teamRepo:  teamRepo,
		standings: standings,
		hub:       hub,
		logger:    logger,
	}
}

func (s *matchService) ScheduleMatch(ctx context.Context, input ScheduleMatchInput) (*models.Match, error) {
	if input.Team1ID == input.Team2ID {
		return nil, ErrMatchSameTeam
	}
	if input.Stage == models.StageGroup && input.GroupID == nil {
		return nil, ErrMatchGroupRequired
	}

	for _, teamID := range []int{input.Team1ID, input.Team2ID} {
		team, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			if errors.Is(err, repositories.ErrTeamNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		if team.EventID == nil || *team.EventID != input.EventID {
			return nil, ErrTeamNotInEvent
		}
		if input.GroupID != nil && (team.GroupID == nil || *team.GroupID != *input.GroupID) {
			return nil, ErrMatchTeamNotInGroup
		}
	}

	match := &models.Match{
		EventID: input.EventID,
		GroupID: input.GroupID,
		Team1ID: input.Team1ID,
		Team2ID: input.Team2ID,
		Date:    input.Date,
		Venue:   input.Venue,
		Stage:   input.Stage,
	}
	if err := s.matchRepo.Create(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to schedule match: %w", err)
	}
	return match, nil
}

func (s *matchService) GetMatchByID(ctx context.Context, id int) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return match, nil
}

func (s *matchService) ListMatchesByEvent(ctx context.Context, eventID int) ([]models.Match, error) {
	return s.matchRepo.ListByEvent(ctx, eventID)
}

// RecordResult stores (or corrects) a match result. The winner must be one of
// the two scheduled teams; the pairing itself never changes. For group-stage
// matches the group's fresh standings are pushed to the event room.
func (s *matchService) RecordResult(ctx context.Context, matchID int, input MatchResultInput) (*models.Match, error) {
	match, err := s.GetMatchByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	if input.Team1Sets < 0 || input.Team2Sets < 0 {
		return nil, ErrMatchNegativeSets
	}
	if !match.Involves(input.WinnerID) {
		return nil, ErrMatchInvalidWinner
	}

	result := &models.MatchResult{
		Team1Sets: input.Team1Sets,
		Team2Sets: input.Team2Sets,
		WinnerID:  input.WinnerID,
	}
	if err := s.matchRepo.UpdateResult(ctx, matchID, result); err != nil {
		return nil, fmt.Errorf("failed to record result for match %d: %w", matchID, err)
	}
	match.Result = result

	if match.Stage == models.StageGroup && match.GroupID != nil {
		s.broadcastStandings(ctx, match.EventID, *match.GroupID)
	}

	return match, nil
}

func (s *matchService) DeleteMatch(ctx context.Context, id int) error {
	err := s.matchRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrMatchNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *matchService) broadcastStandings(ctx context.Context, eventID, groupID int) {
	table, err := s.standings.GroupStandings(ctx, groupID)
	if err != nil {
		s.logger.Error("failed to recompute standings after result",
			slog.Int("group_id", groupID), slog.Any("error", err))
		return
	}
	s.hub.BroadcastToRoom(brackets.EventRoom(eventID), brackets.Message{
		Type:    brackets.MessageStandingsUpdated,
		Payload: table,
	})
}
