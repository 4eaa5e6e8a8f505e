package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rollball/tournament-system/models"
	"github.com/rollball/tournament-system/repositories"
	"golang.org/x/sync/errgroup"
)

type EventService interface {
	CreateEvent(ctx context.Context, input EventInput) (*models.Event, error)
	GetEventByID(ctx context.Context, id int) (*models.Event, error)
	GetEventDetail(ctx context.Context, id int) (*models.Event, error)
	ListEvents(ctx context.Context) ([]models.Event, error)
	UpdateEvent(ctx context.Context, id int, input EventInput) (*models.Event, error)
	DeleteEvent(ctx context.Context, id int) error
	RegisterTeam(ctx context.Context, eventID, teamID int) error
}

type EventInput struct {
	Name      string             `json:"name"`
	Category  string             `json:"category"`
	Gender    models.EventGender `json:"gender"`
	StartDate time.Time          `json:"start_date"`
	EndDate   time.Time          `json:"end_date"`
	MaxTeams  int                `json:"max_teams"`
	MinDOB    *time.Time         `json:"min_dob,omitempty"`
	MaxDOB    *time.Time         `json:"max_dob,omitempty"`
}

type eventService struct {
	db        *sql.DB
	eventRepo repositories.EventRepository
	teamRepo  repositories.TeamRepository
	groupRepo repositories.GroupRepository
	matchRepo repositories.MatchRepository
}

func NewEventService(
	db *sql.DB,
	eventRepo repositories.EventRepository,
	teamRepo repositories.TeamRepository,
	groupRepo repositories.GroupRepository,
	matchRepo repositories.MatchRepository,
) EventService {
	return &eventService{
		db:        db,
		eventRepo: eventRepo,
		teamRepo:  teamRepo,
		groupRepo: groupRepo,
		matchRepo: matchRepo,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, input EventInput) (*models.Event, error) {
	if err := validateEventInput(input); err != nil {
		return nil, err
	}

	event := &models.Event{
		Name:      input.Name,
		Category:  input.Category,
		Gender:    input.Gender,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		MaxTeams:  input.MaxTeams,
		MinDOB:    input.MinDOB,
		MaxDOB:    input.MaxDOB,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

func (s *eventService) GetEventByID(ctx context.Context, id int) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return event, nil
}

// GetEventDetail loads the event plus its teams, groups and matches in
// parallel; each computation elsewhere takes this snapshot as input.
func (s *eventService) GetEventDetail(ctx context.Context, id int) (*models.Event, error) {
	event, err := s.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		teams, err := s.teamRepo.ListByEvent(gCtx, id)
		if err != nil {
			return fmt.Errorf("failed to list teams for event %d: %w", id, err)
		}
		event.Teams = teams
		return nil
	})

	g.Go(func() error {
		groups, err := s.groupRepo.ListByEvent(gCtx, id)
		if err != nil {
			return fmt.Errorf("failed to list groups for event %d: %w", id, err)
		}
		event.Groups = groups
		return nil
	})

	g.Go(func() error {
		matches, err := s.matchRepo.ListByEvent(gCtx, id)
		if err != nil {
			return fmt.Errorf("failed to list matches for event %d: %w", id, err)
		}
		event.Matches = matches
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	return s.eventRepo.List(ctx)
}

func (s *eventService) UpdateEvent(ctx context.Context, id int, input EventInput) (*models.Event, error) {
	if err := validateEventInput(input); err != nil {
		return nil, err
	}

	event, err := s.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}

	event.Name = input.Name
	event.Category = input.Category
	event.Gender = input.Gender
	event.StartDate = input.StartDate
	event.EndDate = input.EndDate
	event.MaxTeams = input.MaxTeams
	event.MinDOB = input.MinDOB
	event.MaxDOB = input.MaxDOB

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event %d: %w", id, err)
	}
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id int) error {
	err := s.eventRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrEventNotFound) {
		return ErrNotFound
	}
	return err
}

// RegisterTeam places a team into an event, guarding the maxTeams capacity
// and the one-event-per-team rule inside one transaction.
func (s *eventService) RegisterTeam(ctx context.Context, eventID, teamID int) error {
	event, err := s.GetEventByID(ctx, eventID)
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
	if team.EventID != nil {
		return ErrTeamAlreadyInEvent
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	registered, err := s.teamRepo.CountByEvent(ctx, tx, eventID)
	if err != nil {
		return fmt.Errorf("failed to count registered teams: %w", err)
	}
	if registered >= event.MaxTeams {
		return ErrEventFull
	}

	if err := s.teamRepo.UpdateEventID(ctx, tx, teamID, &eventID); err != nil {
		return err
	}
	return tx.Commit()
}

func validateEventInput(input EventInput) error {
	if input.Name == "" || input.MaxTeams <= 0 {
		return fmt.Errorf("%w: event name and a positive team capacity are required", ErrValidationFailed)
	}
	if input.EndDate.Before(input.StartDate) {
		return fmt.Errorf("%w: event end date must not precede start date", ErrValidationFailed)
	}
	if input.MinDOB != nil && input.MaxDOB != nil && input.MaxDOB.Before(*input.MinDOB) {
		return fmt.Errorf("%w: event max date of birth must not precede min date of birth", ErrValidationFailed)
	}
	return nil
}
