package handlers

import "net/http"

// HelloHandler godoc
// @Summary API liveness greeting
// @Tags hello
// @Produce json
// @Success 200 {object} HelloResponse
// @Router /api/hello [get]
func HelloHandler(w http.ResponseWriter, r *http.Request) {
	_ = writeJSON(w, http.StatusOK, HelloResponse{Message: "hello"})
}
