package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/rollball/tournament-system/models"
)

var (
	ErrTeamNotFound     = errors.New("team not found")
	ErrTeamNameConflict = errors.New("team name already in use")
)

type TeamRepository interface {
	Create(ctx context.Context, exec SQLExecutor, team *models.Team) error
	GetByID(ctx context.Context, id int) (*models.Team, error)
	List(ctx context.Context) ([]models.Team, error)
	ListByEvent(ctx context.Context, eventID int) ([]models.Team, error)
	ListByGroup(ctx context.Context, groupID int) ([]models.Team, error)
	CountByEvent(ctx context.Context, exec SQLExecutor, eventID int) (int, error)
	Update(ctx context.Context, team *models.Team) error
	UpdateEventID(ctx context.Context, exec SQLExecutor, teamID int, eventID *int) error
	UpdateGroupID(ctx context.Context, exec SQLExecutor, teamID int, groupID *int) error
	Delete(ctx context.Context, id int) error
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

func (r *postgresTeamRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

const teamColumns = `id, name, coach_name, district, mobile, email, event_id, group_id, created_at`

func (r *postgresTeamRepository) Create(ctx context.Context, exec SQLExecutor, t *models.Team) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO teams (name, coach_name, district, mobile, email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := executor.QueryRowContext(ctx, query,
		t.Name, t.CoachName, t.District, t.Mobile, t.Email,
	).Scan(&t.ID, &t.CreatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
		return ErrTeamNameConflict
	}
	return err
}

func (r *postgresTeamRepository) GetByID(ctx context.Context, id int) (*models.Team, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+teamColumns+` FROM teams WHERE id = $1`, id)
	return scanTeam(row)
}

func (r *postgresTeamRepository) List(ctx context.Context) ([]models.Team, error) {
	return r.queryTeams(ctx, `SELECT `+teamColumns+` FROM teams ORDER BY created_at DESC`)
}

func (r *postgresTeamRepository) ListByEvent(ctx context.Context, eventID int) ([]models.Team, error) {
	return r.queryTeams(ctx, `SELECT `+teamColumns+` FROM teams WHERE event_id = $1 ORDER BY name`, eventID)
}

func (r *postgresTeamRepository) ListByGroup(ctx context.Context, groupID int) ([]models.Team, error) {
	return r.queryTeams(ctx, `SELECT `+teamColumns+` FROM teams WHERE group_id = $1 ORDER BY name`, groupID)
}

func (r *postgresTeamRepository) CountByEvent(ctx context.Context, exec SQLExecutor, eventID int) (int, error) {
	executor := r.getExecutor(exec)
	var count int
	err := executor.QueryRowContext(ctx, `SELECT COUNT(*) FROM teams WHERE event_id = $1`, eventID).Scan(&count)
	return count, err
}

func (r *postgresTeamRepository) Update(ctx context.Context, t *models.Team) error {
	query := `
		UPDATE teams
		SET name = $1, coach_name = $2, district = $3, mobile = $4, email = $5
		WHERE id = $6`
	result, err := r.db.ExecContext(ctx, query, t.Name, t.CoachName, t.District, t.Mobile, t.Email, t.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return ErrTeamNameConflict
		}
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) UpdateEventID(ctx context.Context, exec SQLExecutor, teamID int, eventID *int) error {
	executor := r.getExecutor(exec)
	result, err := executor.ExecContext(ctx, `UPDATE teams SET event_id = $1 WHERE id = $2`, eventID, teamID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) UpdateGroupID(ctx context.Context, exec SQLExecutor, teamID int, groupID *int) error {
	executor := r.getExecutor(exec)
	result, err := executor.ExecContext(ctx, `UPDATE teams SET group_id = $1 WHERE id = $2`, groupID, teamID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) queryTeams(ctx context.Context, query string, args ...interface{}) ([]models.Team, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]models.Team, 0)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, *t)
	}
	return teams, rows.Err()
}

func scanTeam(scanner interface{ Scan(...interface{}) error }) (*models.Team, error) {
	t := &models.Team{}
	err := scanner.Scan(&t.ID, &t.Name, &t.CoachName, &t.District, &t.Mobile, &t.Email, &t.EventID, &t.GroupID, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return t, nil
}
