package controller

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/trav563/sleeper-analytics-2025/model"
)

// fetchSeasonMatchups loads matchups for weeks 1 through the given week in
// parallel. The result is indexed by week-1. Any week failing fails the
// whole fetch.
func (c *controller) fetchSeasonMatchups(leagueID string, through int) ([][]model.Matchup, error) {
	weekly := make([][]model.Matchup, through)

	g := new(errgroup.Group)
	for w := 1; w <= through; w++ {
		w := w
		g.Go(func() error {
			m, err := c.sleeper.GetMatchups(leagueID, w)
			if err != nil {
				return fmt.Errorf("error getting matchups for week %d: %w", w, err)
			}
			weekly[w-1] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return weekly, nil
}

// buildPlayerStats aggregates every non-empty starter slot across the season
// into per-player totals. A player started in multiple lineups (after a
// trade, say) accumulates across all of them.
func buildPlayerStats(weekly [][]model.Matchup) map[string]model.PlayerStats {
	stats := make(map[string]model.PlayerStats)

	for _, week := range weekly {
		for _, m := range week {
			for i, id := range m.Starters {
				if model.ParseStarter(id).Kind == model.STARTER_EMPTY {
					continue
				}
				if i >= len(m.StarterPoints) {
					continue
				}

				s := stats[id]
				s.TotalPoints += m.StarterPoints[i]
				s.GamesStarted++
				stats[id] = s
			}
		}
	}

	for id, s := range stats {
		if s.GamesStarted > 0 {
			s.AvgPoints = s.TotalPoints / float64(s.GamesStarted)
		}
		stats[id] = s
	}

	return stats
}
