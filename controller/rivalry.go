package controller

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/trav563/sleeper-analytics-2025/model"
)

const (
	// historyWeeks is how many weeks per historical season are scanned for
	// head-to-head results. Sleeper's fantasy regular season never runs
	// longer than this.
	historyWeeks = 15

	// maxHistoryDepth caps the previous-season chain walk. Sleeper leagues
	// are yearly, so the cap is far beyond any real chain.
	maxHistoryDepth = 25
)

func (c *controller) GetRivalryHistory(ctx context.Context, leagueID, userID string) ([]model.RivalryRecord, error) {
	seasons, err := c.fetchLeagueHistory(leagueID, userID)
	if err != nil {
		return nil, err
	}

	records := make(map[string]*model.RivalryRecord)
	for _, season := range seasons {
		if season.UserRoster == nil {
			// The user wasn't in the league that year.
			continue
		}

		users, err := c.sleeper.GetLeagueUsers(season.LeagueID)
		if err != nil {
			return nil, fmt.Errorf("error getting users for league %s: %w", season.LeagueID, err)
		}

		weekly, err := c.fetchSeasonMatchups(season.LeagueID, historyWeeks)
		if err != nil {
			return nil, err
		}

		tallyRivalries(records, season, users, weekly)
	}

	out := make([]model.RivalryRecord, 0, len(records))
	for _, r := range records {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Games() != out[j].Games() {
			return out[i].Games() > out[j].Games()
		}
		return out[i].OpponentID < out[j].OpponentID
	})

	return out, nil
}

// fetchLeagueHistory walks the previous-season chain starting at leagueID
// and snapshots each season's rosters. The walk is guarded against loops and
// runaway chains; results are ordered newest season first.
func (c *controller) fetchLeagueHistory(leagueID, userID string) ([]model.LeagueSeason, error) {
	visited := make(map[string]bool)
	seasons := make([]model.LeagueSeason, 0)

	id := leagueID
	for depth := 0; id != "" && depth < maxHistoryDepth; depth++ {
		if visited[id] {
			log.Printf("league history of %s loops back to %s, stopping the walk", leagueID, id)
			break
		}
		visited[id] = true

		l, err := c.sleeper.GetLeague(id)
		if err != nil {
			return nil, fmt.Errorf("error getting league %s: %w", id, err)
		}
		rosters, err := c.sleeper.GetLeagueRosters(id)
		if err != nil {
			return nil, fmt.Errorf("error getting rosters for league %s: %w", id, err)
		}

		season := model.LeagueSeason{
			Season:         l.Season,
			LeagueID:       l.ID,
			Name:           l.Name,
			DraftID:        l.DraftID,
			RostersByOwner: make(map[string]model.Roster, len(rosters)),
		}
		for i := range rosters {
			r := rosters[i]
			if r.OwnerID == "" {
				continue
			}
			season.RostersByOwner[r.OwnerID] = r
			if r.OwnerID == userID {
				season.UserRoster = &r
			}
		}

		seasons = append(seasons, season)
		id = l.PreviousLeagueID
	}

	sort.Slice(seasons, func(i, j int) bool { return seasons[i].Season > seasons[j].Season })
	return seasons, nil
}

// tallyRivalries credits one season's head-to-head results into the lifetime
// records. Roster ids are only meaningful within a season, so opponents are
// keyed by their owning user.
func tallyRivalries(records map[string]*model.RivalryRecord, season model.LeagueSeason,
	users []model.User, weekly [][]model.Matchup) {

	userIndex := usersByID(users)

	ownerByRoster := make(map[int]string, len(season.RostersByOwner))
	for ownerID, r := range season.RostersByOwner {
		ownerByRoster[r.ID] = ownerID
	}

	for _, week := range weekly {
		var mine, theirs *model.Matchup
		for i := range week {
			if week[i].RosterID == season.UserRoster.ID {
				mine = &week[i]
				break
			}
		}
		if mine == nil || mine.MatchupID == 0 {
			continue
		}
		for i := range week {
			if week[i].RosterID != mine.RosterID && week[i].MatchupID == mine.MatchupID {
				theirs = &week[i]
				break
			}
		}
		if theirs == nil {
			continue
		}

		opponentID := ownerByRoster[theirs.RosterID]
		if opponentID == "" {
			continue
		}

		rec := records[opponentID]
		if rec == nil {
			rec = &model.RivalryRecord{
				OpponentID: opponentID,
				Name:       fmt.Sprintf("Team %d", theirs.RosterID),
				Seasons:    make(map[string]model.SeasonRecord),
			}
			if u, ok := userIndex[opponentID]; ok {
				rec.Name = u.DisplayTeamName()
				rec.Avatar = u.AvatarURL()
			}
			records[opponentID] = rec
		}

		sr := rec.Seasons[season.Season]
		switch {
		case mine.Points > theirs.Points:
			rec.Wins++
			sr.Wins++
		case mine.Points < theirs.Points:
			rec.Losses++
			sr.Losses++
		default:
			// Exact ties are vanishingly rare and not tracked.
			continue
		}
		rec.Seasons[season.Season] = sr
	}
}
