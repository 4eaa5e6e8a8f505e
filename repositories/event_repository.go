package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rollball/tournament-system/models"
)

var ErrEventNotFound = errors.New("event not found")

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id int) (*models.Event, error)
	List(ctx context.Context) ([]models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id int) error
}

type postgresEventRepository struct {
	db *sql.DB
}

func NewPostgresEventRepository(db *sql.DB) EventRepository {
	return &postgresEventRepository{db: db}
}

const eventColumns = `id, name, category, gender, start_date, end_date, max_teams, min_dob, max_dob, created_at`

func (r *postgresEventRepository) Create(ctx context.Context, e *models.Event) error {
	query := `
		INSERT INTO events (name, category, gender, start_date, end_date, max_teams, min_dob, max_dob)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query,
		e.Name, e.Category, e.Gender, e.StartDate, e.EndDate, e.MaxTeams, e.MinDOB, e.MaxDOB,
	).Scan(&e.ID, &e.CreatedAt)
}

func (r *postgresEventRepository) GetByID(ctx context.Context, id int) (*models.Event, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
	return scanEvent(row)
}

func (r *postgresEventRepository) List(ctx context.Context) ([]models.Event, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+eventColumns+` FROM events ORDER BY start_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (r *postgresEventRepository) Update(ctx context.Context, e *models.Event) error {
	query := `
		UPDATE events
		SET name = $1, category = $2, gender = $3, start_date = $4, end_date = $5,
		    max_teams = $6, min_dob = $7, max_dob = $8
		WHERE id = $9`
	result, err := r.db.ExecContext(ctx, query,
		e.Name, e.Category, e.Gender, e.StartDate, e.EndDate, e.MaxTeams, e.MinDOB, e.MaxDOB, e.ID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrEventNotFound)
}

func (r *postgresEventRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrEventNotFound)
}

func scanEvent(scanner interface{ Scan(...interface{}) error }) (*models.Event, error) {
	e := &models.Event{}
	err := scanner.Scan(
		&e.ID, &e.Name, &e.Category, &e.Gender, &e.StartDate, &e.EndDate,
		&e.MaxTeams, &e.MinDOB, &e.MaxDOB, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return e, nil
}
