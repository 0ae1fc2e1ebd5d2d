package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rogerio-castellano/exercise-tracker/internal/models"
)

// PostgresUserRepository is the postgres implementation of UserRepository.
// Username uniqueness is enforced by the unique constraint on users.username,
// not by an application-level lookup before insert.
type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

const uniqueViolationCode = "23505"

func (r *PostgresUserRepository) Create(u models.User) (models.User, error) {
	query := `INSERT INTO users (id, username) VALUES ($1, $2)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, u.ID, u.Username)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return models.User{}, ErrDuplicateUsername
	}
	if err != nil {
		return models.User{}, err
	}
	u.Log = []models.Exercise{}
	return u, nil
}

func (r *PostgresUserRepository) GetAll() ([]models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT id, username FROM users ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	index := make(map[string]int)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username); err != nil {
			return nil, err
		}
		u.Log = []models.Exercise{}
		index[u.ID] = len(users)
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	entryRows, err := r.db.QueryContext(ctx, `SELECT user_id, description, duration, entry_date FROM exercises ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer entryRows.Close()

	for entryRows.Next() {
		var userID string
		var e models.Exercise
		if err := entryRows.Scan(&userID, &e.Description, &e.Duration, &e.Date); err != nil {
			return nil, err
		}
		if i, ok := index[userID]; ok {
			users[i].Log = append(users[i].Log, e)
		}
	}
	return users, entryRows.Err()
}

func (r *PostgresUserRepository) GetByID(id string) (models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var u models.User
	err := r.db.QueryRowContext(ctx, `SELECT id, username FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Username)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}

	u.Log = []models.Exercise{}
	rows, err := r.db.QueryContext(ctx,
		`SELECT description, duration, entry_date FROM exercises WHERE user_id = $1 ORDER BY id`, id)
	if err != nil {
		return models.User{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var e models.Exercise
		if err := rows.Scan(&e.Description, &e.Duration, &e.Date); err != nil {
			return models.User{}, err
		}
		u.Log = append(u.Log, e)
	}
	return u, rows.Err()
}

func (r *PostgresUserRepository) AddExercise(userID string, e models.Exercise) (models.User, error) {
	query := `INSERT INTO exercises (user_id, description, duration, entry_date) VALUES ($1, $2, $3, $4)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, userID, e.Description, e.Duration, e.Date)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign key: user does not exist
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to insert exercise: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.User{}, ErrUserNotFound
	}

	return r.GetByID(userID)
}

func (r *PostgresUserRepository) GetLog(userID string, lf LogFilter) (models.User, []models.Exercise, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var u models.User
	err := r.db.QueryRowContext(ctx, `SELECT id, username FROM users WHERE id = $1`, userID).
		Scan(&u.ID, &u.Username)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, nil, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, nil, err
	}

	query := `SELECT description, duration, entry_date FROM exercises WHERE user_id = $1`
	args := []any{userID}
	argIdx := 2

	// entry_date holds canonical YYYY-MM-DD text, so text comparison is
	// chronological.
	if lf.From != "" {
		query += fmt.Sprintf(" AND entry_date >= $%d", argIdx)
		args = append(args, lf.From)
		argIdx++
	}
	if lf.To != "" {
		query += fmt.Sprintf(" AND entry_date <= $%d", argIdx)
		args = append(args, lf.To)
		argIdx++
	}
	query += " ORDER BY id"
	if lf.Limit != nil && *lf.Limit >= 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, *lf.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return models.User{}, nil, err
	}
	defer rows.Close()

	entries := []models.Exercise{}
	for rows.Next() {
		var e models.Exercise
		if err := rows.Scan(&e.Description, &e.Duration, &e.Date); err != nil {
			return models.User{}, nil, err
		}
		entries = append(entries, e)
	}
	return u, entries, rows.Err()
}
