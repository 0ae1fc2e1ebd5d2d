package repo

import (
	"sync"

	"github.com/rogerio-castellano/exercise-tracker/internal/dates"
	"github.com/rogerio-castellano/exercise-tracker/internal/models"
)

// InMemoryUserRepository is an in-memory implementation of UserRepository.
// It enforces username uniqueness under its lock, so the check-then-insert
// race of a naive lookup-then-save flow cannot occur.
type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users []models.User
}

// NewInMemoryUserRepository creates a new instance of InMemoryUserRepository.
func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users: []models.User{},
	}
}

// Create adds a new user to the repository.
func (r *InMemoryUserRepository) Create(user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return models.User{}, ErrDuplicateUsername
		}
	}
	if user.Log == nil {
		user.Log = []models.Exercise{}
	}
	r.users = append(r.users, user)
	return user, nil
}

// GetAll retrieves all users with their logs, in creation order.
func (r *InMemoryUserRepository) GetAll() ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.User, len(r.users))
	for i, u := range r.users {
		out[i] = copyUser(u)
	}
	return out, nil
}

// GetByID retrieves a user by its ID.
func (r *InMemoryUserRepository) GetByID(id string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			return copyUser(u), nil
		}
	}
	return models.User{}, ErrUserNotFound
}

// AddExercise appends an entry to the end of a user's log.
func (r *InMemoryUserRepository) AddExercise(userID string, exercise models.Exercise) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.users {
		if u.ID == userID {
			r.users[i].Log = append(r.users[i].Log, exercise)
			return copyUser(r.users[i]), nil
		}
	}
	return models.User{}, ErrUserNotFound
}

// GetLog returns a user's entries filtered by date range and truncated to the
// limit, keeping insertion order.
func (r *InMemoryUserRepository) GetLog(userID string, lf LogFilter) (models.User, []models.Exercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID != userID {
			continue
		}
		filtered := []models.Exercise{}
		for _, e := range u.Log {
			if !dates.InRange(e.Date, lf.From, lf.To) {
				continue
			}
			filtered = append(filtered, e)
		}
		if lf.Limit != nil && *lf.Limit >= 0 && *lf.Limit < len(filtered) {
			filtered = filtered[:*lf.Limit]
		}
		user := u
		user.Log = nil
		return user, filtered, nil
	}
	return models.User{}, nil, ErrUserNotFound
}

// Clear removes all users. Test helper.
func (r *InMemoryUserRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = []models.User{}
}

func copyUser(u models.User) models.User {
	out := u
	out.Log = make([]models.Exercise, len(u.Log))
	copy(out.Log, u.Log)
	return out
}
