package testutils

import (
	"embed"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

//go:embed espndata
var espndata embed.FS

// FakeESPNServer serves a canned scoreboard. Week 5 has WAS and WSH-spelled
// teams missing so bye normalization can be exercised; any other week serves
// a scoreboard where all 32 teams play.
type FakeESPNServer struct {
	s *httptest.Server
}

func NewFakeESPNServer() *FakeESPNServer {
	r := chi.NewRouter()
	r.Get("/apis/site/v2/sports/football/nfl/scoreboard", scoreboardHandler)

	return &FakeESPNServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeESPNServer) Close() {
	f.s.Close()
}

func (f *FakeESPNServer) URL() string {
	return f.s.URL
}

func scoreboardHandler(w http.ResponseWriter, r *http.Request) {
	name := "scoreboard_full.json"
	if r.URL.Query().Get("week") == "5" {
		name = "scoreboard_week5.json"
	}

	b, err := espndata.ReadFile("espndata/" + name)
	if err != nil {
		log.Printf("error reading espndata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
