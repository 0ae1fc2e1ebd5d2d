package handlers

import (
	"encoding/csv"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/rogerio-castellano/exercise-tracker/internal/dates"
	"github.com/rogerio-castellano/exercise-tracker/internal/models"
	"github.com/rogerio-castellano/exercise-tracker/internal/observability"
	repo "github.com/rogerio-castellano/exercise-tracker/internal/repo"
)

// AddExerciseHandler godoc
// @Summary Append an exercise entry to a user's log
// @Description Dates are canonicalised to YYYY-MM-DD; an empty date means today (UTC)
// @Tags exercises
// @Accept x-www-form-urlencoded
// @Produce json
// @Param userId formData string true "User id"
// @Param description formData string true "Entry description"
// @Param duration formData int true "Duration, positive integer"
// @Param date formData string false "Entry date (YYYY-MM-DD)"
// @Success 200 {object} models.User
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "User not found"
// @Failure 500 {string} string "Internal error"
// @Router /api/exercise/add [post]
func AddExerciseHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	userID := r.FormValue("userId")
	duration, validationErrors := validateEntry(userID, r.FormValue("description"), r.FormValue("duration"))
	if len(validationErrors) > 0 {
		// report the first validation failure
		http.Error(w, validationErrors[0].Description, http.StatusBadRequest)
		return
	}

	// Validate the date before touching the store; an unparseable date must
	// not mutate the log.
	date := r.FormValue("date")
	if date == "" {
		date = dates.Today()
	} else {
		canonical, err := dates.Parse(date)
		if err != nil {
			http.Error(w, "invalid date", http.StatusBadRequest)
			return
		}
		date = canonical
	}

	entry := models.Exercise{
		Description: r.FormValue("description"),
		Duration:    duration,
		Date:        date,
	}
	updated, err := userRepo.AddExercise(userID, entry)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Printf("could not add exercise for user %s: %v", userID, err)
		http.Error(w, "could not add exercise", http.StatusInternalServerError)
		return
	}
	observability.RecordExerciseLogged()

	if cache != nil {
		cache.InvalidateLog(userID)
	}

	_ = writeJSON(w, http.StatusOK, updated)
}

// GetLogHandler godoc
// @Summary Query a user's exercise log
// @Description Optional from/to bound the entries inclusively; to defaults to today when from is set. Limit truncates the filtered entries.
// @Tags exercises
// @Produce json
// @Param userId query string true "User id"
// @Param from query string false "Lower date bound (YYYY-MM-DD)"
// @Param to query string false "Upper date bound (YYYY-MM-DD)"
// @Param limit query int false "Max entries returned"
// @Success 200 {object} LogResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "User not found"
// @Failure 500 {string} string "Internal error"
// @Router /api/exercise/log [get]
func GetLogHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	userID := q.Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	filter, ok := parseLogFilter(w, q.Get("from"), q.Get("to"), q.Get("limit"))
	if !ok {
		return
	}

	unfiltered := filter.From == "" && filter.To == "" && filter.Limit == nil
	if unfiltered && cache != nil {
		if payload, found := cache.CachedLog(userID); found {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(payload)
			return
		}
	}

	user, entries, err := userRepo.GetLog(userID, filter)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Printf("could not retrieve log for user %s: %v", userID, err)
		http.Error(w, "could not retrieve log", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []models.Exercise{}
	}

	resp := LogResponse{
		Id:       user.ID,
		Username: user.Username,
		Log:      entries,
		Count:    len(entries),
	}

	if unfiltered && cache != nil {
		cache.StoreLog(userID, resp)
	}
	_ = writeJSON(w, http.StatusOK, resp)
}

// ExportLogHandler godoc
// @Summary Export a user's exercise log
// @Produce text/csv, application/json
// @Param userId query string true "User id"
// @Param format query string true "Export format (csv or json)"
// @Param from query string false "Lower date bound (YYYY-MM-DD)"
// @Param to query string false "Upper date bound (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "User not found"
// @Failure 500 {string} string "Internal error"
// @Router /api/exercise/log/export [get]
func ExportLogHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	userID := q.Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	format := q.Get("format")
	if format != "csv" && format != "json" {
		http.Error(w, "format must be 'csv' or 'json'", http.StatusBadRequest)
		return
	}

	filter, ok := parseLogFilter(w, q.Get("from"), q.Get("to"), "")
	if !ok {
		return
	}

	_, entries, err := userRepo.GetLog(userID, filter)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not retrieve log", http.StatusInternalServerError)
		return
	}

	switch format {
	case "json":
		w.Header().Set("Content-Disposition", `attachment; filename="log.json"`)
		_ = writeJSON(w, http.StatusOK, entries)

	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="log.csv"`)

		csvWriter := csv.NewWriter(w)
		_ = csvWriter.Write([]string{"description", "duration", "date"})
		for _, e := range entries {
			_ = csvWriter.Write([]string{e.Description, strconv.Itoa(e.Duration), e.Date})
		}
		csvWriter.Flush()
	}
}

// parseLogFilter canonicalises the from/to/limit query values, writing the
// error response itself when any of them is invalid.
func parseLogFilter(w http.ResponseWriter, from, to, limit string) (repo.LogFilter, bool) {
	var filter repo.LogFilter

	if from != "" {
		canonical, err := dates.Parse(from)
		if err != nil {
			http.Error(w, "invalid from date", http.StatusBadRequest)
			return filter, false
		}
		filter.From = canonical
	}
	if to != "" {
		canonical, err := dates.Parse(to)
		if err != nil {
			http.Error(w, "invalid to date", http.StatusBadRequest)
			return filter, false
		}
		filter.To = canonical
	} else if filter.From != "" {
		filter.To = dates.Today()
	}

	if limit != "" {
		v, err := strconv.Atoi(limit)
		if err != nil {
			http.Error(w, "invalid limit format", http.StatusBadRequest)
			return filter, false
		}
		if v < 0 {
			http.Error(w, "limit must be zero or positive", http.StatusBadRequest)
			return filter, false
		}
		filter.Limit = &v
	}
	return filter, true
}
