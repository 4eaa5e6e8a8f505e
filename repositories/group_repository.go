package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rollball/tournament-system/models"
)

var ErrGroupNotFound = errors.New("group not found")

type GroupRepository interface {
	Create(ctx context.Context, group *models.Group) error
	GetByID(ctx context.Context, id int) (*models.Group, error)
	ListByEvent(ctx context.Context, eventID int) ([]models.Group, error)
	Delete(ctx context.Context, id int) error
}

type postgresGroupRepository struct {
	db *sql.DB
}

func NewPostgresGroupRepository(db *sql.DB) GroupRepository {
	return &postgresGroupRepository{db: db}
}

func (r *postgresGroupRepository) Create(ctx context.Context, g *models.Group) error {
	query := `INSERT INTO groups (event_id, name) VALUES ($1, $2) RETURNING id`
	return r.db.QueryRowContext(ctx, query, g.EventID, g.Name).Scan(&g.ID)
}

func (r *postgresGroupRepository) GetByID(ctx context.Context, id int) (*models.Group, error) {
	g := &models.Group{}
	err := r.db.QueryRowContext(ctx, `SELECT id, event_id, name FROM groups WHERE id = $1`, id).
		Scan(&g.ID, &g.EventID, &g.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	return g, nil
}

func (r *postgresGroupRepository) ListByEvent(ctx context.Context, eventID int) ([]models.Group, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, event_id, name FROM groups WHERE event_id = $1 ORDER BY name`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]models.Group, 0)
	for rows.Next() {
		var g models.Group
		if err := rows.Scan(&g.ID, &g.EventID, &g.Name); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (r *postgresGroupRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrGroupNotFound)
}
