package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

//go:embed sleeperdata
var sleeperdata embed.FS

// FakeSleeperServer serves canned Sleeper API responses for one small
// league (see sleeperdata/) plus the tail of its previous-season chain.
type FakeSleeperServer struct {
	s *httptest.Server
}

func NewFakeSleeperServer() *FakeSleeperServer {
	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Get("/state/nfl", nflStateHandler)
		r.Get("/players/nfl", nflPlayersHandler)

		r.Route("/user", func(r chi.Router) {
			r.Get("/{userID}/leagues/nfl/{season}", userLeaguesHandler)
			r.Get("/{username}", sleeperUserHandler)
		})

		r.Route("/league/{leagueID}", func(r chi.Router) {
			r.Get("/", leagueHandler)
			r.Get("/users", leagueUsersHandler)
			r.Get("/rosters", leagueRostersHandler)
			r.Get("/matchups/{week}", leagueMatchupsHandler)
		})

		r.Get("/draft/{draftID}/picks", draftPicksHandler)
	})

	return &FakeSleeperServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeSleeperServer) Close() {
	f.s.Close()
}

func (f *FakeSleeperServer) URL() string {
	return f.s.URL
}

func nflStateHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "state.json")
}

func nflPlayersHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "players.json")
}

func userLeaguesHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	season := chi.URLParam(r, "season")

	if userID == UserIDSleeperUser && season == "2025" {
		serveFile(w, "user_leagues.json")
	} else {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("[]"))
	}
}

func sleeperUserHandler(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "sleeperuser" {
		serveFile(w, "sleeperuser.json")
	} else {
		// requesting a user that doesn't exist returns a 200 with "null" as the response body
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("null"))
	}
}

func leagueHandler(w http.ResponseWriter, r *http.Request) {
	leagueID := chi.URLParam(r, "leagueID")
	switch leagueID {
	case LeagueID2025:
		serveFile(w, "league_2025.json")
	case LeagueID2024:
		serveFile(w, "league_2024.json")
	case LeagueID2023:
		serveFile(w, "league_2023.json")
	default:
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("null"))
	}
}

func leagueUsersHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "leagueID") == LeagueID2025 {
		serveFile(w, "league_users.json")
	} else {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("[]"))
	}
}

func leagueRostersHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "leagueID") == LeagueID2025 {
		serveFile(w, "league_rosters.json")
	} else {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("[]"))
	}
}

func leagueMatchupsHandler(w http.ResponseWriter, r *http.Request) {
	leagueID := chi.URLParam(r, "leagueID")
	week := chi.URLParam(r, "week")

	if leagueID == LeagueID2025 && week == "1" {
		serveFile(w, "matchups_week1.json")
	} else {
		// Future weeks and unknown leagues return an empty list
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("[]"))
	}
}

func draftPicksHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "draftID") == DraftID2025 {
		serveFile(w, "draft_picks.json")
	} else {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("[]"))
	}
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := sleeperdata.ReadFile(fmt.Sprintf("sleeperdata/%s", name))
	if err != nil {
		log.Printf("error reading sleeperdata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
