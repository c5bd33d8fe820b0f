package web

import (
	"errors"
	"gamerating/internal/back"
	"log"
	"net/http"
)

// result is the outcome of every operation, rendered as its Message for plain
// text clients.
type result struct {
	Success bool               `json:"success"`
	Message string             `json:"message,omitempty"`
	Game    *back.GameRating   `json:"game,omitempty"`
	Games   *[]back.GameRating `json:"games,omitempty"`
}

// fail responds with the NotFound message as a 404, or logs the store error
// and responds with the generic message as a 500.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error, message string) {
	if errors.Is(err, back.ErrNotFound) {
		log.Printf("info: %s", err)
		s.respond(w, r, http.StatusNotFound, result{Message: err.Error()})
		return
	}

	log.Printf("error: %s", err)
	s.respond(w, r, http.StatusInternalServerError, result{Message: message})
}
