package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/itbasis/go-clock"
	"github.com/trav563/sleeper-analytics-2025/espn"
	"github.com/trav563/sleeper-analytics-2025/espn/mockespn"
	"github.com/trav563/sleeper-analytics-2025/model"
	"github.com/trav563/sleeper-analytics-2025/sleeper"
	"github.com/trav563/sleeper-analytics-2025/sleeper/mocksleeper"
	"github.com/trav563/sleeper-analytics-2025/testutils"
)

func lineupTestPlayers() map[string]model.Player {
	return map[string]model.Player{
		"qb1": {ID: "qb1", FirstName: "Healthy", LastName: "Quarterback", Position: model.POS_QB, Team: model.TEAM_PHI},
		"rb1": {ID: "rb1", FirstName: "Healthy", LastName: "Runner", Position: model.POS_RB, Team: model.TEAM_ATL},
		"wr1": {ID: "wr1", FirstName: "Iffy", LastName: "Receiver", Position: model.POS_WR, Team: model.TEAM_MIN, InjuryStatus: "Questionable"},
		"wr2": {ID: "wr2", FirstName: "Shaky", LastName: "Receiver", Position: model.POS_WR, Team: model.TEAM_DAL, InjuryStatus: "Doubtful"},
		"te1": {ID: "te1", FirstName: "Hurt", LastName: "Tightend", Position: model.POS_TE, Team: model.TEAM_KC, InjuryStatus: "Out"},
		"rb2": {ID: "rb2", FirstName: "Parked", LastName: "Runner", Position: model.POS_RB, Team: model.TEAM_CLE, RosterStatus: "PUP"},
		"wr3": {ID: "wr3", FirstName: "Resting", LastName: "Receiver", Position: model.POS_WR, Team: model.TEAM_SEA},
	}
}

func TestClassifyLineup(t *testing.T) {
	players := lineupTestPlayers()
	byes := model.ByesForTeams([]string{"SEA", "TEN"})

	tests := map[string]struct {
		starters  []string
		byes      model.ByeWeeks
		exStatus  model.LineupStatus
		exReasons []string
	}{
		"all healthy": {
			starters: []string{"qb1", "rb1"},
			byes:     byes,
			exStatus: model.LINEUP_OK,
		},
		"questionable does not short-circuit": {
			starters:  []string{"wr1", "qb1", "wr2"},
			byes:      byes,
			exStatus:  model.LINEUP_POTENTIAL,
			exReasons: []string{"Questionable", "Doubtful"},
		},
		"out stops evaluation": {
			starters:  []string{"te1", "wr1"},
			byes:      byes,
			exStatus:  model.LINEUP_INCOMPLETE,
			exReasons: []string{"Out"},
		},
		"potential never downgrades a later incomplete": {
			starters:  []string{"wr1", "te1", "wr2"},
			byes:      byes,
			exStatus:  model.LINEUP_INCOMPLETE,
			exReasons: []string{"Questionable", "Out"},
		},
		"player team on bye": {
			starters:  []string{"qb1", "wr3"},
			byes:      byes,
			exStatus:  model.LINEUP_INCOMPLETE,
			exReasons: []string{"BYE"},
		},
		"defense on bye": {
			starters:  []string{"qb1", "TEN"},
			byes:      byes,
			exStatus:  model.LINEUP_INCOMPLETE,
			exReasons: []string{"BYE"},
		},
		"defense not on bye is fine": {
			starters: []string{"qb1", "PHI"},
			byes:     byes,
			exStatus: model.LINEUP_OK,
		},
		"pup roster status": {
			starters:  []string{"rb2", "te1"},
			byes:      byes,
			exStatus:  model.LINEUP_INCOMPLETE,
			exReasons: []string{"PUP"},
		},
		"unresolved starter is skipped": {
			starters: []string{"qb1", "doesnotexist"},
			byes:     byes,
			exStatus: model.LINEUP_OK,
		},
		"empty slot suppresses player checks": {
			starters:  []string{"te1", "", "wr1"},
			byes:      byes,
			exStatus:  model.LINEUP_INCOMPLETE,
			exReasons: []string{"Empty Slot"},
		},
		"two empty slots flag twice": {
			starters:  []string{"qb1", "0", ""},
			byes:      byes,
			exStatus:  model.LINEUP_INCOMPLETE,
			exReasons: []string{"Empty Slot", "Empty Slot"},
		},
		"unknown byes treat everyone as playing": {
			starters: []string{"qb1", "wr3"},
			byes:     model.UnknownByes(),
			exStatus: model.LINEUP_OK,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			status, flagged := classifyLineup(tc.starters, players, tc.byes)
			if status != tc.exStatus {
				t.Errorf("expected status %s, got %s", tc.exStatus, status)
			}
			if len(flagged) != len(tc.exReasons) {
				t.Fatalf("expected %d flags, got %d: %+v", len(tc.exReasons), len(flagged), flagged)
			}
			for i, reason := range tc.exReasons {
				if flagged[i].Reason != reason {
					t.Errorf("flag %d: expected reason %q, got %q", i, reason, flagged[i].Reason)
				}
			}
		})
	}
}

func TestClassifyLineup_idempotent(t *testing.T) {
	players := lineupTestPlayers()
	byes := model.ByesForTeams([]string{"SEA"})
	starters := []string{"wr1", "te1", "wr3"}

	s1, f1 := classifyLineup(starters, players, byes)
	s2, f2 := classifyLineup(starters, players, byes)

	if s1 != s2 {
		t.Errorf("statuses differ between runs: %s vs %s", s1, s2)
	}
	if len(f1) != len(f2) {
		t.Fatalf("flag counts differ between runs: %d vs %d", len(f1), len(f2))
	}
	for i := range f1 {
		if f1[i] != f2[i] {
			t.Errorf("flag %d differs between runs: %+v vs %+v", i, f1[i], f2[i])
		}
	}
}

func TestBuildLineupReport(t *testing.T) {
	players := lineupTestPlayers()

	users := []model.User{
		{ID: "u1", Username: "alpha", TeamName: "Alpha Squad"},
		{ID: "u2", Username: "beta"},
	}
	rosters := []model.Roster{
		{ID: 1, OwnerID: "u1", StarterIDs: []string{"te1"}},
		{ID: 2, OwnerID: "u2", StarterIDs: []string{"qb1"}},
		{ID: 3, StarterIDs: []string{"qb1"}},
		{ID: 4, StarterIDs: []string{"te1"}},
	}
	// The matchup for roster 1 carries a fresher starter list than the
	// roster snapshot and must win; roster 4's matchup has no starter list
	// yet and must fall back to the roster snapshot.
	matchups := []model.Matchup{
		{Week: 3, RosterID: 1, MatchupID: 7, Starters: []string{"qb1", "rb1"}},
		{Week: 3, RosterID: 2, MatchupID: 7, Starters: []string{"wr1"}},
		{Week: 3, RosterID: 4, MatchupID: 8},
	}

	report := buildLineupReport(3, users, rosters, matchups, players, model.ByesForTeams(nil))

	if report.Week != 3 {
		t.Errorf("expected week 3, got %d", report.Week)
	}
	if !report.ByesKnown {
		t.Errorf("byes should have been known")
	}
	if len(report.Teams) != 4 {
		t.Fatalf("expected 4 teams, got %d", len(report.Teams))
	}

	byRoster := make(map[int]model.TeamLineup)
	for _, team := range report.Teams {
		byRoster[team.RosterID] = team
	}

	if got := byRoster[1]; got.Status != model.LINEUP_OK || got.Name != "Alpha Squad" || got.MatchupID != 7 {
		t.Errorf("roster 1 not as expected: %+v", got)
	}
	if got := byRoster[2]; got.Status != model.LINEUP_POTENTIAL || got.Name != "beta" {
		t.Errorf("roster 2 not as expected: %+v", got)
	}
	// Roster 3 has no owner and no matchup; the roster starters are used and
	// the name is synthesized.
	if got := byRoster[3]; got.Status != model.LINEUP_OK || got.Name != "Team 3" || got.MatchupID != 0 {
		t.Errorf("roster 3 not as expected: %+v", got)
	}
	// Roster 4 still evaluates its roster starters, so Hurt Tightend flags it.
	if got := byRoster[4]; got.Status != model.LINEUP_INCOMPLETE || got.MatchupID != 8 {
		t.Errorf("roster 4 not as expected: %+v", got)
	}

	total := 0
	for _, bucket := range report.Grouped {
		total += len(bucket)
	}
	if total != len(report.Teams) {
		t.Errorf("grouping must partition the teams, got %d entries across buckets", total)
	}
}

func TestGetLineupReport_byeLookupFails(t *testing.T) {
	client := new(mocksleeper.Client)
	client.On("LoadPlayers").Return(lineupTestPlayers(), nil)
	client.On("GetLeagueUsers", "league").Return([]model.User{{ID: "u1", Username: "alpha"}}, nil)
	client.On("GetLeagueRosters", "league").Return([]model.Roster{
		{ID: 1, OwnerID: "u1", StarterIDs: []string{"qb1", "wr3"}},
	}, nil)
	client.On("GetMatchups", "league", 4).Return([]model.Matchup{}, nil)

	schedule := new(mockespn.Client)
	schedule.On("GetTeamsOnBye", 4).Return(model.UnknownByes(), errors.New("espn is down"))

	c := &controller{
		clock:   clock.New(),
		sleeper: client,
		espn:    schedule,
		cfg:     model.DefaultAnalysisConfig(),
	}

	// A failed schedule fetch degrades to unknown byes instead of failing
	// the report.
	report, err := c.GetLineupReport(context.Background(), "league", 4)
	if err != nil {
		t.Fatalf("error was not nil, was %v", err)
	}
	if report.ByesKnown {
		t.Errorf("byes should have been unknown")
	}
	if report.Teams[0].Status != model.LINEUP_OK {
		t.Errorf("expected OK without bye data, got %s", report.Teams[0].Status)
	}
}

func TestGetLineupReport(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()
	fakeESPN := testutils.NewFakeESPNServer()
	defer fakeESPN.Close()

	ctrl, err := New(clock.New(), sleeper.NewForTest(fakeSleeper.URL()), espn.NewForTest(fakeESPN.URL()))
	if err != nil {
		t.Fatalf("error creating new controller: %v", err)
	}

	report, err := ctrl.GetLineupReport(context.Background(), testutils.LeagueID2025, 1)
	if err != nil {
		t.Fatalf("error was not nil, was %v", err)
	}

	if report.Week != 1 {
		t.Errorf("expected week 1, got %d", report.Week)
	}
	if !report.ByesKnown {
		t.Errorf("byes should have been known")
	}
	if len(report.Teams) != 4 {
		t.Fatalf("expected 4 teams, got %d", len(report.Teams))
	}

	expected := map[int]model.LineupStatus{
		1: model.LINEUP_POTENTIAL,  // McCaffrey is Questionable
		2: model.LINEUP_INCOMPLETE, // Lockett is Out
		3: model.LINEUP_INCOMPLETE, // empty starter slot
		4: model.LINEUP_OK,         // nothing started, nothing wrong
	}
	for _, team := range report.Teams {
		if team.Status != expected[team.RosterID] {
			t.Errorf("roster %d: expected status %s, got %s", team.RosterID, expected[team.RosterID], team.Status)
		}
	}

	if n := len(report.Grouped[model.LINEUP_INCOMPLETE]); n != 2 {
		t.Errorf("expected 2 INCOMPLETE teams, got %d", n)
	}
}
