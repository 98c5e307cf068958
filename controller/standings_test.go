package controller

import (
	"context"
	"testing"

	"github.com/itbasis/go-clock"
	"github.com/trav563/sleeper-analytics-2025/model"
	"github.com/trav563/sleeper-analytics-2025/sleeper"
	"github.com/trav563/sleeper-analytics-2025/testutils"
)

func TestComputeTrueStandings(t *testing.T) {
	users := []model.User{
		{ID: "u1", Username: "one"},
		{ID: "u2", Username: "two"},
		{ID: "u3", Username: "three"},
	}
	rosters := []model.Roster{
		{ID: 1, OwnerID: "u1", Wins: 2, Losses: 0, PointsFor: 200},
		{ID: 2, OwnerID: "u2", Wins: 0, Losses: 2, PointsFor: 210},
		{ID: 3, OwnerID: "u3", Wins: 1, Losses: 1, PointsFor: 140},
	}
	weekly := [][]model.Matchup{
		{
			{Week: 1, RosterID: 1, Points: 100},
			{Week: 1, RosterID: 2, Points: 90},
			{Week: 1, RosterID: 3, Points: 80},
		},
		{
			{Week: 2, RosterID: 1, Points: 70},
			{Week: 2, RosterID: 2, Points: 95},
			{Week: 2, RosterID: 3, Points: 60},
		},
		nil, // a future week with no data must be tolerated
	}

	standings := computeTrueStandings(users, rosters, weekly)
	if len(standings) != 3 {
		t.Fatalf("expected 3 standings, got %d", len(standings))
	}

	// Rosters 1 and 2 are tied at 3 all-play wins; roster 2 ranks first on
	// points-for.
	if standings[0].RosterID != 2 || standings[1].RosterID != 1 || standings[2].RosterID != 3 {
		t.Fatalf("unexpected order: %d, %d, %d", standings[0].RosterID, standings[1].RosterID, standings[2].RosterID)
	}

	var totalWins, totalLosses int
	for _, s := range standings {
		totalWins += s.AllPlayWins
		totalLosses += s.AllPlayLosses
	}
	if totalWins != totalLosses {
		t.Errorf("all-play wins and losses must balance, got %d vs %d", totalWins, totalLosses)
	}

	tests := map[int]struct {
		allPlay string
		luck    string
	}{
		1: {allPlay: "3-1", luck: "+0.50"},
		2: {allPlay: "3-1", luck: "-1.50"},
		3: {allPlay: "0-4", luck: "+1.00"},
	}
	for _, s := range standings {
		ex := tests[s.RosterID]
		if got := s.AllPlayRecord(); got != ex.allPlay {
			t.Errorf("roster %d: expected all-play record %s, got %s", s.RosterID, ex.allPlay, got)
		}
		if got := s.FormattedLuckIndex(); got != ex.luck {
			t.Errorf("roster %d: expected luck %s, got %s", s.RosterID, ex.luck, got)
		}
	}
}

func TestComputeTrueStandings_tiedScores(t *testing.T) {
	rosters := []model.Roster{
		{ID: 1, Wins: 1},
		{ID: 2, Losses: 1},
	}
	weekly := [][]model.Matchup{
		{
			{Week: 1, RosterID: 1, Points: 88.8},
			{Week: 1, RosterID: 2, Points: 88.8},
		},
	}

	standings := computeTrueStandings(nil, rosters, weekly)
	for _, s := range standings {
		if s.AllPlayTies != 1 {
			t.Errorf("roster %d: expected 1 all-play tie, got %d", s.RosterID, s.AllPlayTies)
		}
		if s.AllPlayWins != 0 || s.AllPlayLosses != 0 {
			t.Errorf("roster %d: unexpected record %s", s.RosterID, s.AllPlayRecord())
		}
	}
}

func TestGetTrueStandings(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	ctrl, err := New(clock.New(), sleeper.NewForTest(fakeSleeper.URL()), nil)
	if err != nil {
		t.Fatalf("error creating new controller: %v", err)
	}

	standings, err := ctrl.GetTrueStandings(context.Background(), testutils.LeagueID2025)
	if err != nil {
		t.Fatalf("error was not nil, was %v", err)
	}
	if len(standings) != 4 {
		t.Fatalf("expected 4 standings, got %d", len(standings))
	}

	// Only week 1 has been played: 131.52, 104.0, 98.14, 88.6.
	expectedOrder := []int{1, 3, 2, 4}
	for i, ex := range expectedOrder {
		if standings[i].RosterID != ex {
			t.Errorf("position %d: expected roster %d, got %d", i, ex, standings[i].RosterID)
		}
	}

	top := standings[0]
	if top.Name != "Puk Nukem" {
		t.Errorf("expected team name 'Puk Nukem', got %s", top.Name)
	}
	if got := top.AllPlayRecord(); got != "3-0" {
		t.Errorf("expected all-play record 3-0, got %s", got)
	}
	if got := top.ActualRecord(); got != "3-1" {
		t.Errorf("expected actual record 3-1, got %s", got)
	}
	// A perfect all-play percentage over a 3-1 actual record means the team
	// was unlucky by exactly one game.
	if got := top.FormattedLuckIndex(); got != "-1.00" {
		t.Errorf("expected luck index -1.00, got %s", got)
	}
}
