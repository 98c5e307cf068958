package controller

import (
	"context"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/trav563/sleeper-analytics-2025/espn"
	"github.com/trav563/sleeper-analytics-2025/model"
	"github.com/trav563/sleeper-analytics-2025/sleeper"
)

// C encapsulates business logic without worrying about any web layers.
// One method per dashboard view; every view is recomputed from fresh league
// data on each call, only the player catalog is cached.
type C interface {
	GetNFLState(ctx context.Context) (*model.NFLState, error)
	SearchUser(ctx context.Context, username string) (*model.User, error)
	GetLeagues(ctx context.Context, userID, season string) ([]model.League, error)
	GetLeague(ctx context.Context, leagueID string) (*model.League, error)

	// GetLineupReport classifies every lineup in the league for the given
	// week as OK, POTENTIAL, or INCOMPLETE. A week <= 0 means the current
	// NFL week.
	GetLineupReport(ctx context.Context, leagueID string, week int) (*model.LineupReport, error)

	// GetTrueStandings computes the all-play standings and luck index over
	// every completed week of the season.
	GetTrueStandings(ctx context.Context, leagueID string) ([]model.TrueStanding, error)

	// GetRivalryHistory walks the league's previous-season chain and tallies
	// the user's lifetime head-to-head record against every opponent.
	GetRivalryHistory(ctx context.Context, leagueID, userID string) ([]model.RivalryRecord, error)

	// GetDraftROI joins this season's draft picks to the points each player
	// has produced so far and labels steals and busts.
	GetDraftROI(ctx context.Context, leagueID string) ([]model.DraftPickROI, error)

	// GetTradeOpportunities pairs rosters holding surplus top-tier WR/RB
	// talent with rosters starting below-replacement players there.
	GetTradeOpportunities(ctx context.Context, leagueID string) ([]model.TradeOpportunity, error)

	// GetPositionalStrength compares one roster's average starter production
	// per position against the league average.
	GetPositionalStrength(ctx context.Context, leagueID string, rosterID int) ([]model.PositionStrength, error)

	UpdatePlayers(ctx context.Context) error
	RunPeriodicPlayerUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)
}

type controller struct {
	clock   clock.Clock
	sleeper sleeper.Client
	espn    espn.Client
	cfg     model.AnalysisConfig

	mu      sync.RWMutex
	players map[string]model.Player
}

func New(clock clock.Clock, sleeper sleeper.Client, espn espn.Client) (C, error) {
	c := &controller{
		clock:   clock,
		sleeper: sleeper,
		espn:    espn,
		cfg:     model.DefaultAnalysisConfig(),
	}
	return c, nil
}
