package controller

import (
	"testing"

	"github.com/trav563/sleeper-analytics-2025/model"
)

func TestFindTradeOpportunities(t *testing.T) {
	// Shrunk tiers keep the fixture readable: top tier is the 2 best per
	// position, replacement tier the 3 best, and holding more than 1
	// top-tier player is a surplus.
	cfg := model.AnalysisConfig{
		TopTierSize:         2,
		ReplacementTierSize: 3,
		SurplusThreshold:    1,
	}

	players := map[string]model.Player{
		"wr1": {ID: "wr1", Position: model.POS_WR},
		"wr2": {ID: "wr2", Position: model.POS_WR},
		"wr3": {ID: "wr3", Position: model.POS_WR},
		"wr4": {ID: "wr4", Position: model.POS_WR},
		"rb1": {ID: "rb1", Position: model.POS_RB},
		"rb2": {ID: "rb2", Position: model.POS_RB},
	}
	stats := map[string]model.PlayerStats{
		"wr1": {AvgPoints: 25},
		"wr2": {AvgPoints: 22},
		"wr3": {AvgPoints: 15},
		"wr4": {AvgPoints: 5},
		"rb1": {AvgPoints: 20},
		"rb2": {AvgPoints: 18},
	}
	users := []model.User{
		{ID: "u1", Username: "hoarder"},
		{ID: "u2", Username: "needy"},
		{ID: "u3", Username: "fine"},
	}
	rosters := []model.Roster{
		// Holds both top-tier WRs: surplus at WR.
		{ID: 1, OwnerID: "u1", PlayerIDs: []string{"wr1", "wr2", "rb1"}, StarterIDs: []string{"wr1", "rb1"}},
		// Starts the 4th-ranked WR, outside the replacement tier: deficit.
		{ID: 2, OwnerID: "u2", PlayerIDs: []string{"wr4", "rb2"}, StarterIDs: []string{"wr4", "rb2"}},
		// Starts the 3rd-ranked WR, inside the replacement tier: no deficit.
		{ID: 3, OwnerID: "u3", PlayerIDs: []string{"wr3"}, StarterIDs: []string{"wr3"}},
	}

	out := findTradeOpportunities(users, rosters, stats, players, cfg)

	if len(out) != 1 {
		t.Fatalf("expected 1 trade opportunity, got %d: %+v", len(out), out)
	}
	op := out[0]
	if op.FromRosterID != 1 || op.ToRosterID != 2 || op.Position != model.POS_WR {
		t.Errorf("unexpected opportunity: %+v", op)
	}
	if op.FromName != "hoarder" || op.ToName != "needy" {
		t.Errorf("unexpected names: %s -> %s", op.FromName, op.ToName)
	}
}

func TestFindTradeOpportunities_noSelfTrade(t *testing.T) {
	cfg := model.AnalysisConfig{
		TopTierSize:         2,
		ReplacementTierSize: 2,
		SurplusThreshold:    1,
	}

	players := map[string]model.Player{
		"rb1": {ID: "rb1", Position: model.POS_RB},
		"rb2": {ID: "rb2", Position: model.POS_RB},
		"rb3": {ID: "rb3", Position: model.POS_RB},
	}
	stats := map[string]model.PlayerStats{
		"rb1": {AvgPoints: 20},
		"rb2": {AvgPoints: 18},
		"rb3": {AvgPoints: 2},
	}
	// One roster is simultaneously surplus (holds both top-tier RBs) and
	// deficit (starts an unranked RB); it must not trade with itself.
	rosters := []model.Roster{
		{ID: 1, PlayerIDs: []string{"rb1", "rb2", "rb3"}, StarterIDs: []string{"rb3"}},
	}

	out := findTradeOpportunities(nil, rosters, stats, players, cfg)
	if len(out) != 0 {
		t.Errorf("expected no opportunities, got %+v", out)
	}
}

func TestFindTradeOpportunities_starterWithoutStats(t *testing.T) {
	cfg := model.AnalysisConfig{
		TopTierSize:         2,
		ReplacementTierSize: 2,
		SurplusThreshold:    1,
	}

	players := map[string]model.Player{
		"wr1": {ID: "wr1", Position: model.POS_WR},
		"wr2": {ID: "wr2", Position: model.POS_WR},
		"wr3": {ID: "wr3", Position: model.POS_WR},
	}
	stats := map[string]model.PlayerStats{
		"wr1": {AvgPoints: 25},
		"wr2": {AvgPoints: 24},
	}
	rosters := []model.Roster{
		{ID: 1, PlayerIDs: []string{"wr1", "wr2"}, StarterIDs: []string{"wr1"}},
		// wr3 has never started anywhere and is unranked, which counts as
		// below replacement.
		{ID: 2, PlayerIDs: []string{"wr3"}, StarterIDs: []string{"wr3"}},
	}

	out := findTradeOpportunities(nil, rosters, stats, players, cfg)
	if len(out) != 1 {
		t.Fatalf("expected 1 opportunity, got %d", len(out))
	}
	if out[0].FromRosterID != 1 || out[0].ToRosterID != 2 {
		t.Errorf("unexpected opportunity: %+v", out[0])
	}
}
