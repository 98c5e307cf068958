package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/trav563/sleeper-analytics-2025/controller"
	"github.com/trav563/sleeper-analytics-2025/sleeper"
	"github.com/unrolled/render"
)

type errorResponse struct {
	Error string `json:"error"`
}

// renderError maps not-found sentinels to 404 and everything else to 500.
func renderError(w http.ResponseWriter, render *render.Render, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, sleeper.ErrUserNotFound) || errors.Is(err, sleeper.ErrLeagueNotFound) {
		status = http.StatusNotFound
	}
	render.JSON(w, status, errorResponse{Error: err.Error()})
}

func stateHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := ctrl.GetNFLState(r.Context())
		if err != nil {
			renderError(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, state)
	}
}

func userHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")
		u, err := ctrl.SearchUser(r.Context(), username)
		if err != nil {
			renderError(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, u)
	}
}

func userLeaguesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")
		season := chi.URLParam(r, "season")
		leagues, err := ctrl.GetLeagues(r.Context(), userID, season)
		if err != nil {
			renderError(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, leagues)
	}
}

func leagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := chi.URLParam(r, "leagueID")
		l, err := ctrl.GetLeague(r.Context(), leagueID)
		if err != nil {
			renderError(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, l)
	}
}

func lineupsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := chi.URLParam(r, "leagueID")

		// No week parameter means the current NFL week.
		week := 0
		if q := r.URL.Query().Get("week"); q != "" {
			var err error
			week, err = strconv.Atoi(q)
			if err != nil || week < 1 {
				render.JSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid week: %s", q)})
				return
			}
		}

		report, err := ctrl.GetLineupReport(r.Context(), leagueID, week)
		if err != nil {
			renderError(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, report)
	}
}

func standingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := chi.URLParam(r, "leagueID")
		standings, err := ctrl.GetTrueStandings(r.Context(), leagueID)
		if err != nil {
			renderError(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, standings)
	}
}

func rivalriesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := chi.URLParam(r, "leagueID")
		userID := chi.URLParam(r, "userID")
		records, err := ctrl.GetRivalryHistory(r.Context(), leagueID, userID)
		if err != nil {
			renderError(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, records)
	}
}

func draftHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := chi.URLParam(r, "leagueID")
		picks, err := ctrl.GetDraftROI(r.Context(), leagueID)
		if err != nil {
			renderError(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, picks)
	}
}

func tradesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := chi.URLParam(r, "leagueID")
		trades, err := ctrl.GetTradeOpportunities(r.Context(), leagueID)
		if err != nil {
			renderError(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, trades)
	}
}

func positionsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := chi.URLParam(r, "leagueID")
		rosterID, err := strconv.Atoi(chi.URLParam(r, "rosterID"))
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid roster id: %v", err)})
			return
		}

		strength, err := ctrl.GetPositionalStrength(r.Context(), leagueID, rosterID)
		if err != nil {
			renderError(w, render, err)
			return
		}
		render.JSON(w, http.StatusOK, strength)
	}
}
