package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rollball/tournament-system/models"
	"github.com/rollball/tournament-system/repositories"
)

type TeamService interface {
	GetTeamByID(ctx context.Context, id int) (*models.Team, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
	UpdateTeam(ctx context.Context, id int, input UpdateTeamInput) (*models.Team, error)
	DeleteTeam(ctx context.Context, id int) error
	GetRoster(ctx context.Context, teamID int) ([]models.Player, error)
}

type UpdateTeamInput struct {
	Name      string `json:"name"`
	CoachName string `json:"coach_name"`
	District  string `json:"district"`
	Mobile    string `json:"mobile"`
	Email     string `json:"email"`
}

type teamService struct {
	teamRepo   repositories.TeamRepository
	playerRepo repositories.PlayerRepository
}

func NewTeamService(teamRepo repositories.TeamRepository, playerRepo repositories.PlayerRepository) TeamService {
	return &teamService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
	}
}

func (s *teamService) GetTeamByID(ctx context.Context, id int) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return team, nil
}

func (s *teamService) ListTeams(ctx context.Context) ([]models.Team, error) {
	return s.teamRepo.List(ctx)
}

func (s *teamService) UpdateTeam(ctx context.Context, id int, input UpdateTeamInput) (*models.Team, error) {
	team, err := s.GetTeamByID(ctx, id)
	if err != nil {
		return nil, err
	}

	team.Name = input.Name
	team.CoachName = input.CoachName
	team.District = input.District
	team.Mobile = input.Mobile
	team.Email = input.Email

	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to update team %d: %w", id, err)
	}
	return team, nil
}

func (s *teamService) DeleteTeam(ctx context.Context, id int) error {
	err := s.teamRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrTeamNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *teamService) GetRoster(ctx context.Context, teamID int) ([]models.Player, error) {
	if _, err := s.GetTeamByID(ctx, teamID); err != nil {
		return nil, err
	}
	return s.playerRepo.ListByTeam(ctx, teamID)
}
