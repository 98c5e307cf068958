package controller

import (
	"context"
	"sort"

	"github.com/trav563/sleeper-analytics-2025/model"
)

func (c *controller) GetTradeOpportunities(ctx context.Context, leagueID string) ([]model.TradeOpportunity, error) {
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

	players, err := c.getPlayerCatalog(ctx)
	if err != nil {
		return nil, err
	}

	return findTradeOpportunities(users, rosters, buildPlayerStats(weekly), players, c.cfg), nil
}

// findTradeOpportunities reports every pairing of a roster hoarding top-tier
// talent at WR or RB with a roster starting below-replacement talent there.
// No value balancing is attempted.
func findTradeOpportunities(users []model.User, rosters []model.Roster, stats map[string]model.PlayerStats,
	players map[string]model.Player, cfg model.AnalysisConfig) []model.TradeOpportunity {

	userIndex := usersByID(users)
	sort.Slice(rosters, func(i, j int) bool { return rosters[i].ID < rosters[j].ID })

	out := make([]model.TradeOpportunity, 0)
	for _, pos := range []model.Position{model.POS_WR, model.POS_RB} {
		rank := rankPosition(pos, stats, players)

		var surplus, deficit []*model.Roster
		for i := range rosters {
			r := &rosters[i]

			topTier := 0
			for _, id := range r.PlayerIDs {
				if p, ok := players[id]; ok && p.Position == pos {
					if rk, ranked := rank[id]; ranked && rk <= cfg.TopTierSize {
						topTier++
					}
				}
			}
			if topTier > cfg.SurplusThreshold {
				surplus = append(surplus, r)
			}

			for _, id := range r.StarterIDs {
				ref := model.ParseStarter(id)
				if ref.Kind != model.STARTER_PLAYER {
					continue
				}
				p, ok := players[ref.ID]
				if !ok || p.Position != pos {
					continue
				}
				// A starter with no stats at all is below replacement too.
				rk, ranked := rank[ref.ID]
				if !ranked || rk > cfg.ReplacementTierSize {
					deficit = append(deficit, r)
					break
				}
			}
		}

		for _, from := range surplus {
			for _, to := range deficit {
				if from.ID == to.ID {
					continue
				}
				out = append(out, model.TradeOpportunity{
					FromRosterID: from.ID,
					FromName:     teamName(from, userIndex),
					ToRosterID:   to.ID,
					ToName:       teamName(to, userIndex),
					Position:     pos,
				})
			}
		}
	}

	return out
}

// rankPosition orders every player at a position league-wide by average
// points descending and returns 1-based ranks.
func rankPosition(pos model.Position, stats map[string]model.PlayerStats, players map[string]model.Player) map[string]int {
	type entry struct {
		id  string
		avg float64
	}

	entries := make([]entry, 0)
	for id, s := range stats {
		if p, ok := players[id]; ok && p.Position == pos {
			entries = append(entries, entry{id: id, avg: s.AvgPoints})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].avg != entries[j].avg {
			return entries[i].avg > entries[j].avg
		}
		return entries[i].id < entries[j].id
	})

	rank := make(map[string]int, len(entries))
	for i, e := range entries {
		rank[e.id] = i + 1
	}
	return rank
}
