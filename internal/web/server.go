package web

import (
	"context"
	"gamerating/internal/back"
	"gamerating/internal/config"
	"log"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"golang.org/x/time/rate"
)

func (s *Server) setupRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Group(func(r chi.Router) {
		if s.limiter != nil {
			r.Use(limit(s.limiter))
		}

		r.Post("/add", s.addGameRating)
		r.Post("/view", s.viewGameRating)
		r.Post("/update", s.updateGameRating)
		r.Post("/delete", s.deleteGameRating)
		r.Get("/get-all", s.getAllGameRatings)
		r.Get("/close", s.closeStore)
	})

	r.Get("/*", s.static())

	return r
}

type Server struct {
	http    *http.Server
	back    *back.Back
	limiter *rate.Limiter
}

func NewServer(back *back.Back, conf *config.Config) *Server {
	s := &Server{
		back: back,
	}

	if conf.RateLimit > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(conf.RateLimit), conf.RateBurst)
	}

	s.http = &http.Server{
		Addr:         conf.Addr,
		ReadTimeout:  conf.ReadTimeout.Duration(),
		WriteTimeout: conf.WriteTimeout.Duration(),
		IdleTimeout:  conf.IdleTimeout.Duration(),
		Handler:      s.setupRouter(),
	}

	return s
}

// Handler returns the root handler of the server, routes and middlewares
// included.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// ListenAndServe blocks until the server is shut down or fails, it never
// returns nil.
func (s *Server) ListenAndServe() error {
	log.Printf("info: starting HTTP server on %s", s.http.Addr)

	err := s.http.ListenAndServe()
	if err == http.ErrServerClosed {
		log.Println("info: HTTP server closed")
	}

	return err
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// respond writes res as JSON if the client prefers it, as plain text
// otherwise.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, code int, res result) {
	render.Status(r, code)

	if acceptedContentType(r) == render.ContentTypeJSON {
		render.JSON(w, r, res)
		return
	}

	render.PlainText(w, r, res.Message)
}
