package mocksleeper

import (
	"github.com/stretchr/testify/mock"
	"github.com/trav563/sleeper-analytics-2025/model"
)

type Client struct {
	mock.Mock
}

func (c *Client) GetNFLState() (*model.NFLState, error) {
	args := c.Called()

	var res *model.NFLState
	if args.Get(0) != nil {
		res = args.Get(0).(*model.NFLState)
	}

	return res, args.Error(1)
}

func (c *Client) GetUser(username string) (*model.User, error) {
	args := c.Called(username)

	var res *model.User
	if args.Get(0) != nil {
		res = args.Get(0).(*model.User)
	}

	return res, args.Error(1)
}

func (c *Client) GetLeaguesForUser(userID, season string) ([]model.League, error) {
	args := c.Called(userID, season)

	var res []model.League
	if args.Get(0) != nil {
		res = args.Get(0).([]model.League)
	}

	return res, args.Error(1)
}

func (c *Client) GetLeague(leagueID string) (*model.League, error) {
	args := c.Called(leagueID)

	var res *model.League
	if args.Get(0) != nil {
		res = args.Get(0).(*model.League)
	}

	return res, args.Error(1)
}

func (c *Client) GetLeagueUsers(leagueID string) ([]model.User, error) {
	args := c.Called(leagueID)

	var res []model.User
	if args.Get(0) != nil {
		res = args.Get(0).([]model.User)
	}

	return res, args.Error(1)
}

func (c *Client) GetLeagueRosters(leagueID string) ([]model.Roster, error) {
	args := c.Called(leagueID)

	var res []model.Roster
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Roster)
	}

	return res, args.Error(1)
}

func (c *Client) GetMatchups(leagueID string, week int) ([]model.Matchup, error) {
	args := c.Called(leagueID, week)

	var res []model.Matchup
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Matchup)
	}

	return res, args.Error(1)
}

func (c *Client) GetDraftPicks(draftID string) ([]model.DraftPick, error) {
	args := c.Called(draftID)

	var res []model.DraftPick
	if args.Get(0) != nil {
		res = args.Get(0).([]model.DraftPick)
	}

	return res, args.Error(1)
}

func (c *Client) LoadPlayers() (map[string]model.Player, error) {
	args := c.Called()

	var res map[string]model.Player
	if args.Get(0) != nil {
		res = args.Get(0).(map[string]model.Player)
	}

	return res, args.Error(1)
}
