package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/exercise-tracker/internal/models"
	"github.com/rogerio-castellano/exercise-tracker/internal/observability"
	repo "github.com/rogerio-castellano/exercise-tracker/internal/repo"
)

// CreateUserHandler godoc
// @Summary Create a new user
// @Description Registers a username and returns the generated id
// @Tags users
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username, unique across all users"
// @Success 201 {object} UserResponse
// @Failure 400 {string} string "Missing username"
// @Failure 409 {string} string "Username taken"
// @Failure 500 {string} string "Internal error"
// @Router /api/exercise/new-user [post]
func CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	if username == "" {
		http.Error(w, "username is required", http.StatusBadRequest)
		return
	}

	user := models.User{
		ID:       uuid.NewString(),
		Username: username,
	}
	created, err := userRepo.Create(user)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateUsername) {
			http.Error(w, "username already taken", http.StatusConflict)
			return
		}
		log.Printf("could not create user %q: %v", username, err)
		http.Error(w, "could not create user", http.StatusInternalServerError)
		return
	}
	observability.RecordUserCreated()

	_ = writeJSON(w, http.StatusCreated, UserResponse{
		Id:       created.ID,
		Username: created.Username,
	})
}

// GetUsersHandler godoc
// @Summary List all users
// @Description Returns every user with id, username and full exercise log
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Failure 500 {string} string "Internal error"
// @Router /api/exercise/users [get]
func GetUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := userRepo.GetAll()
	if err != nil {
		log.Printf("could not fetch users: %v", err)
		http.Error(w, "could not fetch users", http.StatusInternalServerError)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	_ = writeJSON(w, http.StatusOK, users)
}
