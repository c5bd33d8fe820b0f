package web

import (
	"fmt"
	"gamerating/internal/back"
	"log"
	"net/http"
	"net/url"

	"github.com/go-chi/render"
	"gopkg.in/guregu/null.v4"
)

func (s *Server) addGameRating(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.respond(w, r, http.StatusBadRequest, result{Message: "Unable to read the submitted form"})
		return
	}

	game, err := s.back.CreateGameRating(r.Context(), gameRatingInputFromForm(r.PostForm))
	if err != nil {
		s.fail(w, r, err, "Error encountered while adding")
		return
	}

	s.respond(w, r, http.StatusOK, result{
		Success: true,
		Message: fmt.Sprintf(
			"New game has been added into the database with ID: %s, Name: %s, Author: %s, Game Rating: %s and Comments: %s",
			game.ID, game.Name.String, game.Author.String, game.Rating.String, game.Comments.String,
		),
		Game: &game,
	})
}

func (s *Server) viewGameRating(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.respond(w, r, http.StatusBadRequest, result{Message: "Unable to read the submitted form"})
		return
	}

	game, err := s.back.FindGameRatingByName(r.Context(), formString(r.PostForm, "name"))
	if err != nil {
		s.fail(w, r, err, "Error encountered while displaying")
		return
	}

	log.Print("info: game rating displayed successfully")
	s.respond(w, r, http.StatusOK, result{
		Success: true,
		Message: fmt.Sprintf(
			"Game details: id: %s, name: %s, author: %s, rating: %s, comments: %s",
			game.ID, game.Name.String, game.Author.String, game.Rating.String, game.Comments.String,
		),
		Game: &game,
	})
}

func (s *Server) updateGameRating(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.respond(w, r, http.StatusBadRequest, result{Message: "Unable to read the submitted form"})
		return
	}

	game, err := s.back.UpdateGameRating(
		r.Context(),
		r.PostForm.Get("id"),
		gameRatingInputFromForm(r.PostForm),
	)
	if err != nil {
		s.fail(w, r, err, "Error encountered while updating")
		return
	}

	s.respond(w, r, http.StatusOK, result{
		Success: true,
		Message: fmt.Sprintf(
			"Game rating has been updated successfully. ID: %s, Name: %s, Author: %s, Game Rating: %s and Comments: %s",
			game.ID, game.Name.String, game.Author.String, game.Rating.String, game.Comments.String,
		),
		Game: &game,
	})
}

func (s *Server) deleteGameRating(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.respond(w, r, http.StatusBadRequest, result{Message: "Unable to read the submitted form"})
		return
	}

	id := r.PostForm.Get("id")
	if err := s.back.DeleteGameRating(r.Context(), id); err != nil {
		s.fail(w, r, err, "Error encountered while deleting")
		return
	}

	s.respond(w, r, http.StatusOK, result{
		Success: true,
		Message: fmt.Sprintf("Game rating with ID: %s has been deleted.", id),
	})
}

// getAllGameRatings always responds with JSON, the client page relies on it.
func (s *Server) getAllGameRatings(w http.ResponseWriter, r *http.Request) {
	games, err := s.back.ListGameRatings(r.Context())
	if err != nil {
		log.Printf("error: %s", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, result{
			Message: "Error encountered while getting all",
		})
		return
	}

	log.Print("info: found all games")
	render.JSON(w, r, result{
		Success: true,
		Games:   &games,
	})
}

func (s *Server) closeStore(w http.ResponseWriter, r *http.Request) {
	if err := s.back.Close(); err != nil {
		log.Printf("error: %s", err)
		s.respond(w, r, http.StatusInternalServerError, result{
			Message: "There is some error in closing the database",
		})
		return
	}

	s.respond(w, r, http.StatusOK, result{
		Success: true,
		Message: "Database connection successfully closed",
	})
}

func gameRatingInputFromForm(form url.Values) back.GameRatingInput {
	return back.GameRatingInput{
		Name:     formString(form, "name"),
		Author:   formString(form, "author"),
		Rating:   formString(form, "rating"),
		Comments: formString(form, "comments"),
	}
}

// formString returns a null String if key was not submitted at all.
func formString(form url.Values, key string) null.String {
	v, ok := form[key]
	if !ok || len(v) == 0 {
		return null.String{}
	}

	return null.StringFrom(v[0])
}
