package handlers

import (
	"github.com/rogerio-castellano/exercise-tracker/internal/redissvc"
	repo "github.com/rogerio-castellano/exercise-tracker/internal/repo"
)

var (
	userRepo repo.UserRepository

	// cache is optional; a nil cache disables log-response caching.
	cache *redissvc.RedisService
)

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetRedisService(rs *redissvc.RedisService) {
	cache = rs
}
