package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	api "github.com/rogerio-castellano/exercise-tracker/internal/http"
	"github.com/rogerio-castellano/exercise-tracker/internal/models"
)

func TestHelloHandler(t *testing.T) {
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/hello", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp["message"] != "hello" {
		t.Errorf("expected message 'hello', got %q", resp["message"])
	}
}

func TestCreateUserHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllUsers)
	r := api.NewRouter()

	resp := mustCreateUser(t, r, "alice")

	if resp.Username != "alice" {
		t.Errorf("expected username 'alice', got %q", resp.Username)
	}
	if resp.Id == "" {
		t.Error("expected a non-empty generated id")
	}

	other := mustCreateUser(t, r, "bob")
	if other.Id == resp.Id {
		t.Errorf("expected unique ids, both users got %q", resp.Id)
	}
}

func TestCreateUserHandler_MissingUsername(t *testing.T) {
	t.Cleanup(clearAllUsers)
	r := api.NewRouter()

	w := postForm(r, "/api/exercise/new-user", url.Values{})

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}
}

func TestCreateUserHandler_DuplicateUsername(t *testing.T) {
	t.Cleanup(clearAllUsers)
	r := api.NewRouter()

	mustCreateUser(t, r, "alice")

	w := createUser(r, "alice")
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 Conflict, got %d", w.Code)
	}

	// The rejected create must not have inserted a second record.
	users, err := userRepo.GetAll()
	if err != nil {
		t.Fatalf("unexpected repo error: %v", err)
	}
	if len(users) != 1 {
		t.Errorf("expected exactly one user, got %d", len(users))
	}
}

func TestGetUsersHandler(t *testing.T) {
	t.Cleanup(clearAllUsers)
	r := api.NewRouter()

	alice := mustCreateUser(t, r, "alice")
	mustCreateUser(t, r, "bob")
	mustAddExercise(t, r, alice.Id, "run", "30", "2020-01-01")

	req := httptest.NewRequest(http.MethodGet, "/api/exercise/users", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var users []models.User
	if err := json.NewDecoder(w.Body).Decode(&users); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].Username != "alice" || users[1].Username != "bob" {
		t.Errorf("expected creation order alice, bob; got %q, %q", users[0].Username, users[1].Username)
	}
	if len(users[0].Log) != 1 {
		t.Errorf("expected alice's log in the list view, got %d entries", len(users[0].Log))
	}
}

func TestUnmatchedRoute(t *testing.T) {
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/exercise/unknown", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
	if w.Body.String() != "not found\n" {
		t.Errorf("expected body 'not found', got %q", w.Body.String())
	}
}
