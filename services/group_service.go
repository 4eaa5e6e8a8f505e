package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rollball/tournament-system/models"
	"github.com/rollball/tournament-system/repositories"
)

type GroupService interface {
	CreateGroup(ctx context.Context, eventID int, name string) (*models.Group, error)
	GetGroupByID(ctx context.Context, id int) (*models.Group, error)
	ListGroupsByEvent(ctx context.Context, eventID int) ([]models.Group, error)
	AssignTeam(ctx context.Context, groupID, teamID int) error
	RemoveTeam(ctx context.Context, groupID, teamID int) error
	DeleteGroup(ctx context.Context, id int) error
}

type groupService struct {
	groupRepo repositories.GroupRepository
	teamRepo  repositories.TeamRepository
	eventRepo repositories.EventRepository
}

func NewGroupService(
	groupRepo repositories.GroupRepository,
	teamRepo repositories.TeamRepository,
	eventRepo repositories.EventRepository,
) GroupService {
	return &groupService{
		groupRepo: groupRepo,
		teamRepo:  teamRepo,
		eventRepo: eventRepo,
	}
}

func (s *groupService) CreateGroup(ctx context.Context, eventID int, name string) (*models.Group, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: group name is required", ErrValidationFailed)
	}
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	group := &models.Group{EventID: eventID, Name: name}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}
	return group, nil
}

func (s *groupService) GetGroupByID(ctx context.Context, id int) (*models.Group, error) {
	group, err := s.groupRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	teams, err := s.teamRepo.ListByGroup(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams for group %d: %w", id, err)
	}
	group.Teams = teams
	return group, nil
}

func (s *groupService) ListGroupsByEvent(ctx context.Context, eventID int) ([]models.Group, error) {
	groups, err := s.groupRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	for i := range groups {
		teams, err := s.teamRepo.ListByGroup(ctx, groups[i].ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list teams for group %d: %w", groups[i].ID, err)
		}
		groups[i].Teams = teams
	}
	return groups, nil
}

// AssignTeam moves a team into a group. The team must be registered for the
// group's event, and the group must stay within the 3-5 team domain rule;
// the lower bound is advisory at assignment time (groups fill one team at a
// time), so only the upper bound is enforced here.
func (s *groupService) AssignTeam(ctx context.Context, groupID, teamID int) error {
	group, err := s.GetGroupByID(ctx, groupID)
	if err != nil {
		return err
	}

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return ErrNotFound
		}
		return err
	}

	if team.EventID == nil || *team.EventID != group.EventID {
		return ErrGroupWrongEvent
	}
	if len(group.Teams) >= models.MaxGroupSize {
		return ErrGroupFull
	}

	return s.teamRepo.UpdateGroupID(ctx, nil, teamID, &groupID)
}

func (s *groupService) RemoveTeam(ctx context.Context, groupID, teamID int) error {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return ErrNotFound
		}
		return err
	}
	if team.GroupID == nil || *team.GroupID != groupID {
		return ErrNotFound
	}
	return s.teamRepo.UpdateGroupID(ctx, nil, teamID, nil)
}

func (s *groupService) DeleteGroup(ctx context.Context, id int) error {
	group, err := s.GetGroupByID(ctx, id)
	if err != nil {
		return err
	}

	// Detach member teams first so they can be re-assigned.
	for _, team := range group.Teams {
		if err := s.teamRepo.UpdateGroupID(ctx, nil, team.ID, nil); err != nil {
			return err
		}
	}

	if err := s.groupRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
