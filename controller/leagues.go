package controller

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/trav563/sleeper-analytics-2025/model"
)

func (c *controller) GetNFLState(ctx context.Context) (*model.NFLState, error) {
	return c.sleeper.GetNFLState()
}

func (c *controller) SearchUser(ctx context.Context, username string) (*model.User, error) {
	return c.sleeper.GetUser(username)
}

func (c *controller) GetLeagues(ctx context.Context, userID, season string) ([]model.League, error) {
	if season == "" {
		state, err := c.sleeper.GetNFLState()
		if err != nil {
			return nil, fmt.Errorf("error getting nfl state: %w", err)
		}
		season = state.Season
	}
	return c.sleeper.GetLeaguesForUser(userID, season)
}

func (c *controller) GetLeague(ctx context.Context, leagueID string) (*model.League, error) {
	return c.sleeper.GetLeague(leagueID)
}

// currentWeek resolves a non-positive week argument to the live NFL week.
func (c *controller) currentWeek(week int) (int, error) {
	if week > 0 {
		return week, nil
	}
	state, err := c.sleeper.GetNFLState()
	if err != nil {
		return 0, fmt.Errorf("error getting nfl state: %w", err)
	}
	return state.Week, nil
}

// getUsersAndRosters fetches both league collections in parallel. Views fail
// outright when either is unavailable.
func (c *controller) getUsersAndRosters(leagueID string) ([]model.User, []model.Roster, error) {
	var users []model.User
	var rosters []model.Roster

	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		users, err = c.sleeper.GetLeagueUsers(leagueID)
		return err
	})
	g.Go(func() error {
		var err error
		rosters, err = c.sleeper.GetLeagueRosters(leagueID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("error loading league %s: %w", leagueID, err)
	}

	return users, rosters, nil
}

func usersByID(users []model.User) map[string]model.User {
	index := make(map[string]model.User, len(users))
	for _, u := range users {
		index[u.ID] = u
	}
	return index
}

// teamName resolves the display name for a roster. Unowned rosters have no
// user to fall back on and get a synthesized name instead.
func teamName(r *model.Roster, users map[string]model.User) string {
	if u, ok := users[r.OwnerID]; ok {
		return u.DisplayTeamName()
	}
	return fmt.Sprintf("Team %d", r.ID)
}

func teamAvatar(r *model.Roster, users map[string]model.User) string {
	if u, ok := users[r.OwnerID]; ok {
		return u.AvatarURL()
	}
	return ""
}
