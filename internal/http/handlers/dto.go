package handlers

import "github.com/rogerio-castellano/exercise-tracker/internal/models"

type UserResponse struct {
	Id       string `json:"id"`
	Username string `json:"username"`
}

type LogResponse struct {
	Id       string            `json:"id"`
	Username string            `json:"username"`
	Log      []models.Exercise `json:"log"`
	Count    int               `json:"count"`
}

type HelloResponse struct {
	Message string `json:"message"`
}
