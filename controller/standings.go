package controller

import (
	"context"
	"sort"

	"github.com/trav563/sleeper-analytics-2025/model"
)

func (c *controller) GetTrueStandings(ctx context.Context, leagueID string) ([]model.TrueStanding, error) {
	week, err := c.currentWeek(0)
	if err != nil {
		return nil, err
	}

	users, rosters, err := c.getUsersAndRosters(leagueID)
	if err != nil {
		return nil, err
	}

	weekly, err := c.fetchSeasonMatchups(leagueID, week)
	if err != nil {
		return nil, err
	}

	return computeTrueStandings(users, rosters, weekly), nil
}

// computeTrueStandings builds the all-play record for every roster by
// comparing each team's weekly score against every other team's, then
// derives the luck index from the gap between actual wins and the wins the
// all-play percentage implies.
func computeTrueStandings(users []model.User, rosters []model.Roster, weekly [][]model.Matchup) []model.TrueStanding {
	userIndex := usersByID(users)

	standings := make(map[int]*model.TrueStanding, len(rosters))
	order := make([]int, 0, len(rosters))
	for i := range rosters {
		r := &rosters[i]
		standings[r.ID] = &model.TrueStanding{
			RosterID:  r.ID,
			OwnerID:   r.OwnerID,
			Name:      teamName(r, userIndex),
			Avatar:    teamAvatar(r, userIndex),
			Wins:      r.Wins,
			Losses:    r.Losses,
			Ties:      r.Ties,
			PointsFor: r.PointsFor,
		}
		order = append(order, r.ID)
	}

	for _, week := range weekly {
		for i := range week {
			s := standings[week[i].RosterID]
			if s == nil {
				continue
			}
			for j := range week {
				if i == j {
					continue
				}
				switch {
				case week[i].Points > week[j].Points:
					s.AllPlayWins++
				case week[i].Points < week[j].Points:
					s.AllPlayLosses++
				default:
					s.AllPlayTies++
				}
			}
		}
	}

	for _, id := range order {
		s := standings[id]

		apGames := s.AllPlayWins + s.AllPlayLosses + s.AllPlayTies
		if apGames == 0 {
			continue
		}
		apPct := (float64(s.AllPlayWins) + 0.5*float64(s.AllPlayTies)) / float64(apGames)

		totalGames := s.Wins + s.Losses + s.Ties
		actualWins := float64(s.Wins) + 0.5*float64(s.Ties)
		s.LuckIndex = actualWins - apPct*float64(totalGames)
	}

	out := make([]model.TrueStanding, 0, len(order))
	for _, id := range order {
		out = append(out, *standings[id])
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AllPlayWins != out[j].AllPlayWins {
			return out[i].AllPlayWins > out[j].AllPlayWins
		}
		if out[i].PointsFor != out[j].PointsFor {
			return out[i].PointsFor > out[j].PointsFor
		}
		return out[i].RosterID < out[j].RosterID
	})

	return out
}
