package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/exercise-tracker/internal/config"
	"github.com/rogerio-castellano/exercise-tracker/internal/db"
	api "github.com/rogerio-castellano/exercise-tracker/internal/http"
	"github.com/rogerio-castellano/exercise-tracker/internal/http/handlers"
	rl "github.com/rogerio-castellano/exercise-tracker/internal/http/rate_limiter"
	"github.com/rogerio-castellano/exercise-tracker/internal/redissvc"
	"github.com/rogerio-castellano/exercise-tracker/internal/repo"
)

var ctx = context.Background()

// @title Exercise Tracker API
// @version 1.0
// @description REST API for tracking users and their exercise logs.
// @host localhost:8080
// @BasePath /
func main() {
	cfg := config.Load()

	rl.Configure(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst)
	go rl.StartVisitorCleanupLoop()

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("Could not connect to Redis: %v", err)
		}
		defer rdb.Close()
		handlers.SetRedisService(redissvc.NewRedisService(rdb, ctx))
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}
	defer database.Close()

	if err := db.Migrate(3, database); err != nil {
		log.Fatal("❌ Could not migrate database:", err)
	}

	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))

	api.SetStaticDir(cfg.StaticDir)
	r := api.RateLimitMiddleware(api.NewRouter())
	log.Println("✅ Server running on", cfg.HTTPAddress)
	if err := http.ListenAndServe(cfg.HTTPAddress, r); err != nil {
		log.Fatal(err)
	}
}
