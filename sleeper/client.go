package sleeper

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/trav563/sleeper-analytics-2025/model"
)

const SleeperURL = "https://api.sleeper.app"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrLeagueNotFound = errors.New("league not found")
)

// Client is the read-only boundary to the Sleeper API. Every call is an
// independent network round trip; nothing is ever written back.
type Client interface {
	GetNFLState() (*model.NFLState, error)
	GetUser(username string) (*model.User, error)
	GetLeaguesForUser(userID, season string) ([]model.League, error)
	GetLeague(leagueID string) (*model.League, error)
	GetLeagueUsers(leagueID string) ([]model.User, error)
	GetLeagueRosters(leagueID string) ([]model.Roster, error)
	GetMatchups(leagueID string, week int) ([]model.Matchup, error)
	GetDraftPicks(draftID string) ([]model.DraftPick, error)
	LoadPlayers() (map[string]model.Player, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

func New() (Client, error) {
	c := &client{
		url: SleeperURL,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
	}
	return c, nil
}

func NewForTest(url string) Client {
	return &client{
		url: url,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *client) GetNFLState() (*model.NFLState, error) {
	var parsed sleeperState
	if err := c.get("/v1/state/nfl", &parsed); err != nil {
		return nil, err
	}
	return parsed.toNFLState(), nil
}

func (c *client) GetUser(username string) (*model.User, error) {
	// Requesting a user that doesn't exist returns a 200 with "null" as the
	// response body as of 2024-08-12.
	var parsed *sleeperUser
	if err := c.get(fmt.Sprintf("/v1/user/%s", username), &parsed); err != nil {
		return nil, err
	}
	if parsed == nil {
		return nil, ErrUserNotFound
	}
	return parsed.toUser(), nil
}

func (c *client) GetLeaguesForUser(userID, season string) ([]model.League, error) {
	var parsed []sleeperLeague
	if err := c.get(fmt.Sprintf("/v1/user/%s/leagues/nfl/%s", userID, season), &parsed); err != nil {
		return nil, err
	}

	leagues := make([]model.League, 0, len(parsed))
	for _, l := range parsed {
		leagues = append(leagues, *l.toLeague())
	}
	return leagues, nil
}

func (c *client) GetLeague(leagueID string) (*model.League, error) {
	var parsed *sleeperLeague
	if err := c.get(fmt.Sprintf("/v1/league/%s", leagueID), &parsed); err != nil {
		return nil, err
	}
	if parsed == nil {
		return nil, ErrLeagueNotFound
	}
	return parsed.toLeague(), nil
}

func (c *client) GetLeagueUsers(leagueID string) ([]model.User, error) {
	var parsed []sleeperUser
	if err := c.get(fmt.Sprintf("/v1/league/%s/users", leagueID), &parsed); err != nil {
		return nil, err
	}

	users := make([]model.User, 0, len(parsed))
	for _, u := range parsed {
		users = append(users, *u.toUser())
	}
	return users, nil
}

func (c *client) GetLeagueRosters(leagueID string) ([]model.Roster, error) {
	var parsed []sleeperRoster
	if err := c.get(fmt.Sprintf("/v1/league/%s/rosters", leagueID), &parsed); err != nil {
		return nil, err
	}

	rosters := make([]model.Roster, 0, len(parsed))
	for _, r := range parsed {
		rosters = append(rosters, *r.toRoster())
	}
	return rosters, nil
}

func (c *client) GetMatchups(leagueID string, week int) ([]model.Matchup, error) {
	var parsed []sleeperMatchup
	if err := c.get(fmt.Sprintf("/v1/league/%s/matchups/%d", leagueID, week), &parsed); err != nil {
		return nil, err
	}

	matchups := make([]model.Matchup, 0, len(parsed))
	for _, m := range parsed {
		matchups = append(matchups, *m.toMatchup(week))
	}
	return matchups, nil
}

func (c *client) GetDraftPicks(draftID string) ([]model.DraftPick, error) {
	var parsed []sleeperDraftPick
	if err := c.get(fmt.Sprintf("/v1/draft/%s/picks", draftID), &parsed); err != nil {
		return nil, err
	}

	picks := make([]model.DraftPick, 0, len(parsed))
	for _, p := range parsed {
		picks = append(picks, *p.toDraftPick())
	}
	return picks, nil
}

func (c *client) LoadPlayers() (map[string]model.Player, error) {
	var parsed map[string]sleeperPlayer
	if err := c.get("/v1/players/nfl", &parsed); err != nil {
		return nil, err
	}

	// Convert the players into model.Players. Defense units are keyed by team
	// abbreviation in the raw catalog; they are dropped here because starters
	// resolve them by identifier shape, never through the catalog.
	result := make(map[string]model.Player, len(parsed))
	for id, p := range parsed {
		if model.ParseStarter(id).Kind == model.STARTER_DEFENSE {
			continue
		}
		if p.FirstName == "Player" && p.LastName == "Invalid" {
			continue
		}
		result[id] = *p.toPlayer()
	}

	return result, nil
}

func (c *client) get(path string, v any) error {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s%s", c.url, path), nil)
	if err != nil {
		return fmt.Errorf("error creating http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("error parsing response from sleeper: %w", err)
	}
	return nil
}
