package espn

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/trav563/sleeper-analytics-2025/model"
)

const ESPNURL = "https://site.api.espn.com"

// Client covers the one thing Sleeper's API can't answer: which NFL teams
// are idle in a given week. Byes are inferred from the scoreboard by
// subtracting every team with a scheduled game from the full set of 32.
type Client interface {
	GetTeamsOnBye(week int) (model.ByeWeeks, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

func New() (Client, error) {
	c := &client{
		url: ESPNURL,
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

type espnScoreboard struct {
	Events []struct {
		Competitions []struct {
			Competitors []struct {
				Team struct {
					Abbreviation string `json:"abbreviation"`
				} `json:"team"`
			} `json:"competitors"`
		} `json:"competitions"`
	} `json:"events"`
}

func (c *client) GetTeamsOnBye(week int) (model.ByeWeeks, error) {
	var parsed espnScoreboard
	if err := c.get(fmt.Sprintf("/apis/site/v2/sports/football/nfl/scoreboard?week=%d", week), &parsed); err != nil {
		return model.UnknownByes(), err
	}

	// ESPN spells a few abbreviations differently than Sleeper (WSH vs WAS),
	// so every competitor runs through ParseTeam before the set subtraction.
	playing := make(map[string]bool)
	for _, e := range parsed.Events {
		for _, comp := range e.Competitions {
			for _, competitor := range comp.Competitors {
				t := model.ParseTeam(competitor.Team.Abbreviation)
				if t != model.TEAM_FA {
					playing[t.String()] = true
				}
			}
		}
	}

	if len(playing) == 0 {
		// An empty scoreboard would put all 32 teams on bye. That's never
		// real; treat it the same as a failed fetch.
		return model.UnknownByes(), fmt.Errorf("scoreboard for week %d listed no games", week)
	}

	onBye := make([]string, 0)
	for _, name := range model.AllTeamNames() {
		if !playing[name] {
			onBye = append(onBye, name)
		}
	}
	return model.ByesForTeams(onBye), nil
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
		return fmt.Errorf("error parsing response from espn: %w", err)
	}
	return nil
}
