package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rollball/tournament-system/models"
)

var ErrMatchNotFound = errors.New("match not found")

type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	GetByID(ctx context.Context, id int) (*models.Match, error)
	ListByEvent(ctx context.Context, eventID int) ([]models.Match, error)
	ListByGroup(ctx context.Context, groupID int) ([]models.Match, error)
	UpdateResult(ctx context.Context, matchID int, result *models.MatchResult) error
	Delete(ctx context.Context, id int) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

const matchColumns = `id, event_id, group_id, team1_id, team2_id, date, venue, stage,
	team1_sets, team2_sets, winner_id`

func (r *postgresMatchRepository) Create(ctx context.Context, m *models.Match) error {
	query := `
		INSERT INTO matches (event_id, group_id, team1_id, team2_id, date, venue, stage)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	return r.db.QueryRowContext(ctx, query,
		m.EventID, m.GroupID, m.Team1ID, m.Team2ID, m.Date, m.Venue, m.Stage,
	).Scan(&m.ID)
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+matchColumns+` FROM matches WHERE id = $1`, id)
	return scanMatch(row)
}

func (r *postgresMatchRepository) ListByEvent(ctx context.Context, eventID int) ([]models.Match, error) {
	return r.queryMatches(ctx,
		`SELECT `+matchColumns+` FROM matches WHERE event_id = $1 ORDER BY date, id`, eventID)
}

func (r *postgresMatchRepository) ListByGroup(ctx context.Context, groupID int) ([]models.Match, error) {
	return r.queryMatches(ctx,
		`SELECT `+matchColumns+` FROM matches WHERE group_id = $1 ORDER BY date, id`, groupID)
}

// UpdateResult records or corrects a match result. The pairing itself is
// immutable once scheduled; only the result columns change.
func (r *postgresMatchRepository) UpdateResult(ctx context.Context, matchID int, result *models.MatchResult) error {
	query := `
		UPDATE matches
		SET team1_sets = $1, team2_sets = $2, winner_id = $3
		WHERE id = $4`
	res, err := r.db.ExecContext(ctx, query, result.Team1Sets, result.Team2Sets, result.WinnerID, matchID)
	if err != nil {
		return err
	}
	return checkAffectedRows(res, ErrMatchNotFound)
}

func (r *postgresMatchRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM matches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) queryMatches(ctx context.Context, query string, args ...interface{}) ([]models.Match, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, *m)
	}
	return matches, rows.Err()
}

func scanMatch(scanner interface{ Scan(...interface{}) error }) (*models.Match, error) {
	m := &models.Match{}
	var team1Sets, team2Sets, winnerID sql.NullInt64

	err := scanner.Scan(
		&m.ID, &m.EventID, &m.GroupID, &m.Team1ID, &m.Team2ID, &m.Date, &m.Venue, &m.Stage,
		&team1Sets, &team2Sets, &winnerID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	// A match is completed exactly when the winner column is set.
	if winnerID.Valid {
		m.Result = &models.MatchResult{
			Team1Sets: int(team1Sets.Int64),
			Team2Sets: int(team2Sets.Int64),
			WinnerID:  int(winnerID.Int64),
		}
	}
	return m, nil
}
