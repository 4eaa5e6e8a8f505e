package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rollball/tournament-system/models"
	"github.com/rollball/tournament-system/repositories"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type AuthService interface {
	RegisterTeamManager(ctx context.Context, input RegisterTeamManagerInput) (*models.User, error)
	Login(ctx context.Context, input LoginInput) (*models.User, error)
}

// RegisterTeamManagerInput creates a team together with its manager account,
// mirroring the registration form: one manager per team.
type RegisterTeamManagerInput struct {
	TeamName  string `json:"team_name"`
	CoachName string `json:"coach_name"`
	District  string `json:"district"`
	Mobile    string `json:"mobile"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authService struct {
	db       *sql.DB
	userRepo repositories.UserRepository
	teamRepo repositories.TeamRepository
}

func NewAuthService(db *sql.DB, userRepo repositories.UserRepository, teamRepo repositories.TeamRepository) AuthService {
	return &authService{
		db:       db,
		userRepo: userRepo,
		teamRepo: teamRepo,
	}
}

// RegisterTeamManager creates the team and its manager user in a single
// transaction so a failed user insert never leaves an orphaned team.
func (s *authService) RegisterTeamManager(ctx context.Context, input RegisterTeamManagerInput) (*models.User, error) {
	if len(input.Password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	team := &models.Team{
		Name:      input.TeamName,
		CoachName: input.CoachName,
		District:  input.District,
		Mobile:    input.Mobile,
		Email:     input.Email,
	}
	if err := s.teamRepo.Create(ctx, tx, team); err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         input.CoachName,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Role:         models.RoleTeamManager,
		TeamID:       &team.ID,
	}
	if err := s.userRepo.Create(ctx, tx, user); err != nil {
		if errors.Is(err, repositories.ErrUserEmailConflict) {
			return nil, ErrAuthEmailTaken
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit registration: %w", err)
	}

	user.PasswordHash = ""
	user.Team = team
	return user, nil
}

func (s *authService) Login(ctx context.Context, input LoginInput) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrAuthInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrAuthInvalidCredentials
		}
		return nil, fmt.Errorf("failed to compare password hash: %w", err)
	}

	user.PasswordHash = ""
	return user, nil
}
