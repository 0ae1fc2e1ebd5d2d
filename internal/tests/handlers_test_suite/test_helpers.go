package handlers_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	handler "github.com/rogerio-castellano/exercise-tracker/internal/http/handlers"
	"github.com/rogerio-castellano/exercise-tracker/internal/repo"
)

var userRepo *repo.InMemoryUserRepository

func init() {
	userRepo = repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)
}

func clearAllUsers() {
	userRepo.Clear()
}

func postForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createUser(r http.Handler, username string) *httptest.ResponseRecorder {
	return postForm(r, "/api/exercise/new-user", url.Values{"username": {username}})
}

func mustCreateUser(t *testing.T, r http.Handler, username string) handler.UserResponse {
	t.Helper()

	w := createUser(r, username)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created for user %q, got %d: %s", username, w.Code, w.Body.String())
	}
	var resp handler.UserResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding create response: %v", err)
	}
	return resp
}

func addExercise(r http.Handler, fields map[string]string) *httptest.ResponseRecorder {
	form := url.Values{}
	for k, v := range fields {
		form.Set(k, v)
	}
	return postForm(r, "/api/exercise/add", form)
}

func mustAddExercise(t *testing.T, r http.Handler, userID, description, duration, date string) {
	t.Helper()

	w := addExercise(r, map[string]string{
		"userId":      userID,
		"description": description,
		"duration":    duration,
		"date":        date,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK adding exercise, got %d: %s", w.Code, w.Body.String())
	}
}

func queryLog(t *testing.T, r http.Handler, query string) (*httptest.ResponseRecorder, handler.LogResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/exercise/log?%s", query), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LogResponse
	if w.Code == http.StatusOK {
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("error decoding log response: %v", err)
		}
	}
	return w, resp
}
