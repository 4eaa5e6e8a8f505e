package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rollball/tournament-system/models"
	"github.com/rollball/tournament-system/repositories"
	"github.com/rollball/tournament-system/storage"
)

type PlayerService interface {
	AddPlayer(ctx context.Context, teamID int, input PlayerInput) (*models.Player, error)
	GetPlayerByID(ctx context.Context, id int) (*models.Player, error)
	UpdatePlayer(ctx context.Context, playerID int, input PlayerInput) (*models.Player, error)
	DeletePlayer(ctx context.Context, playerID int) error
	UploadPhoto(ctx context.Context, playerID int, contentType string, file io.Reader) (*models.Player, error)
	UploadCertificate(ctx context.Context, playerID int, contentType string, file io.Reader) (*models.Player, error)
}

type PlayerInput struct {
	Name          string           `json:"name"`
	FatherName    string           `json:"father_name"`
	DateOfBirth   time.Time        `json:"date_of_birth"`
	Role          string           `json:"role"`
	JerseyNumber  int              `json:"jersey_number"`
	Sex           models.PlayerSex `json:"sex"`
	District      string           `json:"district"`
	SchoolCollege string           `json:"school_college"`
	Address       string           `json:"address"`
	Email         string           `json:"email"`
	Mobile        string           `json:"mobile"`
	FederationNo  string           `json:"federation_no"`
}

type playerService struct {
	playerRepo repositories.PlayerRepository
	teamRepo   repositories.TeamRepository
	eventRepo  repositories.EventRepository
	uploader   storage.FileUploader
}

func NewPlayerService(
	playerRepo repositories.PlayerRepository,
	teamRepo repositories.TeamRepository,
	eventRepo repositories.EventRepository,
	uploader storage.FileUploader,
) PlayerService {
	return &playerService{
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
		eventRepo:  eventRepo,
		uploader:   uploader,
	}
}

func (s *playerService) AddPlayer(ctx context.Context, teamID int, input PlayerInput) (*models.Player, error) {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	existing, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster for team %d: %w", teamID, err)
	}

	player := input.toModel()
	player.TeamID = teamID

	if err := ValidateRosterAddition(existing, player); err != nil {
		return nil, err
	}
	if err := s.checkEventEligibility(ctx, team, input.DateOfBirth); err != nil {
		return nil, err
	}

	if err := s.playerRepo.Create(ctx, player); err != nil {
		if errors.Is(err, repositories.ErrPlayerJerseyConflict) {
			return nil, ErrJerseyNumberTaken
		}
		return nil, err
	}
	return player, nil
}

func (s *playerService) GetPlayerByID(ctx context.Context, id int) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.resolveFileURLs(player)
	return player, nil
}

func (s *playerService) UpdatePlayer(ctx context.Context, playerID int, input PlayerInput) (*models.Player, error) {
	player, err := s.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	existing, err := s.playerRepo.ListByTeam(ctx, player.TeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster for team %d: %w", player.TeamID, err)
	}

	updated := input.toModel()
	updated.ID = player.ID
	updated.TeamID = player.TeamID
	updated.PhotoKey = player.PhotoKey
	updated.CertificateKey = player.CertificateKey

	if err := ValidateRosterUpdate(existing, updated); err != nil {
		return nil, err
	}

	team, err := s.teamRepo.GetByID(ctx, player.TeamID)
	if err != nil {
		return nil, err
	}
	if err := s.checkEventEligibility(ctx, team, input.DateOfBirth); err != nil {
		return nil, err
	}

	if err := s.playerRepo.Update(ctx, updated); err != nil {
		if errors.Is(err, repositories.ErrPlayerJerseyConflict) {
			return nil, ErrJerseyNumberTaken
		}
		return nil, err
	}
	s.resolveFileURLs(updated)
	return updated, nil
}

func (s *playerService) DeletePlayer(ctx context.Context, playerID int) error {
	player, err := s.GetPlayerByID(ctx, playerID)
	if err != nil {
		return err
	}

	// Remove stored files best-effort; a missing blob must not block the delete.
	if s.uploader != nil {
		if player.PhotoKey != nil {
			_ = s.uploader.Delete(ctx, *player.PhotoKey)
		}
		if player.CertificateKey != nil {
			_ = s.uploader.Delete(ctx, *player.CertificateKey)
		}
	}

	if err := s.playerRepo.Delete(ctx, playerID); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *playerService) UploadPhoto(ctx context.Context, playerID int, contentType string, file io.Reader) (*models.Player, error) {
	return s.uploadFile(ctx, playerID, "players/photos", contentType, file,
		func(p *models.Player) *string { return p.PhotoKey },
		s.playerRepo.UpdatePhotoKey,
	)
}

func (s *playerService) UploadCertificate(ctx context.Context, playerID int, contentType string, file io.Reader) (*models.Player, error) {
	return s.uploadFile(ctx, playerID, "players/certificates", contentType, file,
		func(p *models.Player) *string { return p.CertificateKey },
		s.playerRepo.UpdateCertificateKey,
	)
}

func (s *playerService) uploadFile(
	ctx context.Context,
	playerID int,
	prefix string,
	contentType string,
	file io.Reader,
	currentKey func(*models.Player) *string,
	saveKey func(context.Context, int, *string) error,
) (*models.Player, error) {
	if s.uploader == nil {
		return nil, ErrUploadsDisabled
	}

	player, err := s.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/%d/%s", prefix, playerID, uuid.NewString())
	if _, err := s.uploader.Upload(ctx, key, contentType, file); err != nil {
		return nil, fmt.Errorf("failed to upload file for player %d: %w", playerID, err)
	}

	if old := currentKey(player); old != nil {
		_ = s.uploader.Delete(ctx, *old)
	}

	if err := saveKey(ctx, playerID, &key); err != nil {
		return nil, err
	}
	return s.GetPlayerByID(ctx, playerID)
}

func (s *playerService) checkEventEligibility(ctx context.Context, team *models.Team, dob time.Time) error {
	if team.EventID == nil {
		return nil
	}
	event, err := s.eventRepo.GetByID(ctx, *team.EventID)
	if err != nil {
		return fmt.Errorf("failed to load event %d: %w", *team.EventID, err)
	}
	return ValidateEligibility(event, dob)
}

func (s *playerService) resolveFileURLs(p *models.Player) {
	if s.uploader == nil {
		return
	}
	if p.PhotoKey != nil {
		url := s.uploader.GetPublicURL(*p.PhotoKey)
		p.PhotoURL = &url
	}
	if p.CertificateKey != nil {
		url := s.uploader.GetPublicURL(*p.CertificateKey)
		p.CertificateURL = &url
	}
}

func (in PlayerInput) toModel() *models.Player {
	return &models.Player{
		Name:          in.Name,
		FatherName:    in.FatherName,
		DateOfBirth:   in.DateOfBirth,
		Role:          in.Role,
		JerseyNumber:  in.JerseyNumber,
		Sex:           in.Sex,
		District:      in.District,
		SchoolCollege: in.SchoolCollege,
		Address:       in.Address,
		Email:         in.Email,
		Mobile:        in.Mobile,
		FederationNo:  in.FederationNo,
	}
}
