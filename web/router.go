package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/trav563/sleeper-analytics-2025/controller"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(30 * time.Second))

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", stateHandler(ctrl, render))

		r.Route("/users", func(r chi.Router) {
			r.Get("/{username}", userHandler(ctrl, render))
			r.Get("/{userID}/leagues/{season:\\d+}", userLeaguesHandler(ctrl, render))
		})

		r.Route("/leagues/{leagueID:\\d+}", func(r chi.Router) {
			r.Get("/", leagueHandler(ctrl, render))
			r.Get("/lineups", lineupsHandler(ctrl, render))
			r.Get("/standings", standingsHandler(ctrl, render))
			r.Get("/rivalries/{userID:\\d+}", rivalriesHandler(ctrl, render))
			r.Get("/draft", draftHandler(ctrl, render))
			r.Get("/trades", tradesHandler(ctrl, render))
			r.Get("/positions/{rosterID:\\d+}", positionsHandler(ctrl, render))
		})
	})

	return r
}
