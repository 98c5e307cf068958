package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/trav563/sleeper-analytics-2025/model"
)

type C struct {
	mock.Mock
}

func (c *C) GetNFLState(ctx context.Context) (*model.NFLState, error) {
	args := c.Called()

	var res *model.NFLState
	if args.Get(0) != nil {
		res = args.Get(0).(*model.NFLState)
	}

	return res, args.Error(1)
}

func (c *C) SearchUser(ctx context.Context, username string) (*model.User, error) {
	args := c.Called(username)

	var res *model.User
	if args.Get(0) != nil {
		res = args.Get(0).(*model.User)
	}

	return res, args.Error(1)
}

func (c *C) GetLeagues(ctx context.Context, userID, season string) ([]model.League, error) {
	args := c.Called(userID, season)

	var res []model.League
	if args.Get(0) != nil {
		res = args.Get(0).([]model.League)
	}

	return res, args.Error(1)
}

func (c *C) GetLeague(ctx context.Context, leagueID string) (*model.League, error) {
	args := c.Called(leagueID)

	var res *model.League
	if args.Get(0) != nil {
		res = args.Get(0).(*model.League)
	}

	return res, args.Error(1)
}

func (c *C) GetLineupReport(ctx context.Context, leagueID string, week int) (*model.LineupReport, error) {
	args := c.Called(leagueID, week)

	var res *model.LineupReport
	if args.Get(0) != nil {
		res = args.Get(0).(*model.LineupReport)
	}

	return res, args.Error(1)
}

func (c *C) GetTrueStandings(ctx context.Context, leagueID string) ([]model.TrueStanding, error) {
	args := c.Called(leagueID)

	var res []model.TrueStanding
	if args.Get(0) != nil {
		res = args.Get(0).([]model.TrueStanding)
	}

	return res, args.Error(1)
}

func (c *C) GetRivalryHistory(ctx context.Context, leagueID, userID string) ([]model.RivalryRecord, error) {
	args := c.Called(leagueID, userID)

	var res []model.RivalryRecord
	if args.Get(0) != nil {
		res = args.Get(0).([]model.RivalryRecord)
	}

	return res, args.Error(1)
}

func (c *C) GetDraftROI(ctx context.Context, leagueID string) ([]model.DraftPickROI, error) {
	args := c.Called(leagueID)

	var res []model.DraftPickROI
	if args.Get(0) != nil {
		res = args.Get(0).([]model.DraftPickROI)
	}

	return res, args.Error(1)
}

func (c *C) GetTradeOpportunities(ctx context.Context, leagueID string) ([]model.TradeOpportunity, error) {
	args := c.Called(leagueID)

	var res []model.TradeOpportunity
	if args.Get(0) != nil {
		res = args.Get(0).([]model.TradeOpportunity)
	}

	return res, args.Error(1)
}

func (c *C) GetPositionalStrength(ctx context.Context, leagueID string, rosterID int) ([]model.PositionStrength, error) {
	args := c.Called(leagueID, rosterID)

	var res []model.PositionStrength
	if args.Get(0) != nil {
		res = args.Get(0).([]model.PositionStrength)
	}

	return res, args.Error(1)
}

func (c *C) UpdatePlayers(ctx context.Context) error {
	args := c.Called()
	return args.Error(0)
}

func (c *C) RunPeriodicPlayerUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
	wg.Done()
}
