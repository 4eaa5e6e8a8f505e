package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rollball/tournament-system/brackets"
	"github.com/rollball/tournament-system/models"
	"github.com/rollball/tournament-system/repositories"
	"golang.org/x/sync/errgroup"
)

// StandingsService exposes the pure standings engine over stored data: every
// call takes a fresh snapshot of teams and matches and recomputes from
// scratch. Nothing here is cached or persisted.
type StandingsService interface {
	GroupStandings(ctx context.Context, groupID int) (*brackets.GroupStandings, error)
	EventStandings(ctx context.Context, eventID int) ([]brackets.GroupStandings, error)
	Qualifiers(ctx context.Context, eventID int) ([]brackets.TeamStanding, error)
}

type standingsService struct {
	groupRepo repositories.GroupRepository
	teamRepo  repositories.TeamRepository
	matchRepo repositories.MatchRepository
}

func NewStandingsService(
	groupRepo repositories.GroupRepository,
	teamRepo repositories.TeamRepository,
	matchRepo repositories.MatchRepository,
) StandingsService {
	return &standingsService{
		groupRepo: groupRepo,
		teamRepo:  teamRepo,
		matchRepo: matchRepo,
	}
}

func (s *standingsService) GroupStandings(ctx context.Context, groupID int) (*brackets.GroupStandings, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.computeForGroup(ctx, group)
}

func (s *standingsService) EventStandings(ctx context.Context, eventID int) ([]brackets.GroupStandings, error) {
	groups, err := s.groupRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups for event %d: %w", eventID, err)
	}

	tables := make([]brackets.GroupStandings, len(groups))
	for i := range groups {
		table, err := s.computeForGroup(ctx, &groups[i])
		if err != nil {
			return nil, err
		}
		tables[i] = *table
	}
	return tables, nil
}

// Qualifiers returns the top two of every group of the event, in group
// order. This is the seeding order for the knockout bracket.
func (s *standingsService) Qualifiers(ctx context.Context, eventID int) ([]brackets.TeamStanding, error) {
	tables, err := s.EventStandings(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return brackets.SelectQualifiers(tables), nil
}

func (s *standingsService) computeForGroup(ctx context.Context, group *models.Group) (*brackets.GroupStandings, error) {
	var (
		teams   []models.Team
		matches []models.Match
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		teams, err = s.teamRepo.ListByGroup(gCtx, group.ID)
		if err != nil {
			return fmt.Errorf("failed to list teams for group %d: %w", group.ID, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		matches, err = s.matchRepo.ListByGroup(gCtx, group.ID)
		if err != nil {
			return fmt.Errorf("failed to list matches for group %d: %w", group.ID, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &brackets.GroupStandings{
		GroupID:   group.ID,
		GroupName: group.Name,
		Standings: brackets.ComputeGroupStandings(teams, matches),
	}, nil
}
