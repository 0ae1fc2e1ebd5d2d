package repo

import (
	"errors"

	"github.com/rogerio-castellano/exercise-tracker/internal/models"
)

// UserRepository defines the interface for user and exercise-log data operations.
type UserRepository interface {
	Create(user models.User) (models.User, error)
	GetAll() ([]models.User, error)
	GetByID(id string) (models.User, error)
	AddExercise(userID string, exercise models.Exercise) (models.User, error)
	GetLog(userID string, lf LogFilter) (models.User, []models.Exercise, error)
}

// LogFilter narrows a log query. From and To are canonical YYYY-MM-DD dates,
// inclusive on both ends; empty means open. Limit truncates the filtered
// entries, keeping insertion order.
type LogFilter struct {
	From  string
	To    string
	Limit *int
}

// ErrUserNotFound is returned when a user id does not resolve to a user.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateUsername is returned when creating a user whose username is taken.
var ErrDuplicateUsername = errors.New("username already taken")
