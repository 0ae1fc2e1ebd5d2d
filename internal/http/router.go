package http

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rogerio-castellano/exercise-tracker/internal/http/handlers"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

var staticDir = "public"

// SetStaticDir overrides the directory served at the root route.
func SetStaticDir(dir string) {
	staticDir = dir
}

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(CORSMiddleware)

	r.Get("/api/hello", handlers.HelloHandler)
	r.Post("/api/exercise/new-user", handlers.CreateUserHandler)
	r.Get("/api/exercise/users", handlers.GetUsersHandler)
	r.Post("/api/exercise/add", handlers.AddExerciseHandler)
	r.Get("/api/exercise/log", handlers.GetLogHandler)
	r.Get("/api/exercise/log/export", handlers.ExportLogHandler)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, filepath.Join(staticDir, "index.html"))
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	return r
}
