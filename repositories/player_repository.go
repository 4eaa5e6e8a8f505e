package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/rollball/tournament-system/models"
)

var (
	ErrPlayerNotFound       = errors.New("player not found")
	ErrPlayerJerseyConflict = errors.New("jersey number already taken within the team")
)

type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id int) (*models.Player, error)
	ListByTeam(ctx context.Context, teamID int) ([]models.Player, error)
	CountByTeam(ctx context.Context, teamID int) (int, error)
	Update(ctx context.Context, player *models.Player) error
	UpdatePhotoKey(ctx context.Context, playerID int, key *string) error
	UpdateCertificateKey(ctx context.Context, playerID int, key *string) error
	Delete(ctx context.Context, id int) error
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

const playerColumns = `id, team_id, name, father_name, date_of_birth, role, jersey_number, sex,
	district, school_college, address, email, mobile, federation_no, photo_key, certificate_key`

func (r *postgresPlayerRepository) Create(ctx context.Context, p *models.Player) error {
	query := `
		INSERT INTO players (
			team_id, name, father_name, date_of_birth, role, jersey_number, sex,
			district, school_college, address, email, mobile, federation_no
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		p.TeamID, p.Name, p.FatherName, p.DateOfBirth, p.Role, p.JerseyNumber, p.Sex,
		p.District, p.SchoolCollege, p.Address, p.Email, p.Mobile, p.FederationNo,
	).Scan(&p.ID)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
		return ErrPlayerJerseyConflict
	}
	return err
}

func (r *postgresPlayerRepository) GetByID(ctx context.Context, id int) (*models.Player, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+playerColumns+` FROM players WHERE id = $1`, id)
	return scanPlayer(row)
}

func (r *postgresPlayerRepository) ListByTeam(ctx context.Context, teamID int) ([]models.Player, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+playerColumns+` FROM players WHERE team_id = $1 ORDER BY jersey_number`, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]models.Player, 0)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, *p)
	}
	return players, rows.Err()
}

func (r *postgresPlayerRepository) CountByTeam(ctx context.Context, teamID int) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM players WHERE team_id = $1`, teamID).Scan(&count)
	return count, err
}

func (r *postgresPlayerRepository) Update(ctx context.Context, p *models.Player) error {
	query := `
		UPDATE players
		SET name = $1, father_name = $2, date_of_birth = $3, role = $4, jersey_number = $5,
		    sex = $6, district = $7, school_college = $8, address = $9, email = $10,
		    mobile = $11, federation_no = $12
		WHERE id = $13`
	result, err := r.db.ExecContext(ctx, query,
		p.Name, p.FatherName, p.DateOfBirth, p.Role, p.JerseyNumber,
		p.Sex, p.District, p.SchoolCollege, p.Address, p.Email,
		p.Mobile, p.FederationNo, p.ID,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return ErrPlayerJerseyConflict
		}
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) UpdatePhotoKey(ctx context.Context, playerID int, key *string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE players SET photo_key = $1 WHERE id = $2`, key, playerID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) UpdateCertificateKey(ctx context.Context, playerID int, key *string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE players SET certificate_key = $1 WHERE id = $2`, key, playerID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func scanPlayer(scanner interface{ Scan(...interface{}) error }) (*models.Player, error) {
	p := &models.Player{}
	err := scanner.Scan(
		&p.ID, &p.TeamID, &p.Name, &p.FatherName, &p.DateOfBirth, &p.Role, &p.JerseyNumber, &p.Sex,
		&p.District, &p.SchoolCollege, &p.Address, &p.Email, &p.Mobile, &p.FederationNo,
		&p.PhotoKey, &p.CertificateKey,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return p, nil
}
