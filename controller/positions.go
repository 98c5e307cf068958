package controller

import (
	"context"
	"fmt"

	"github.com/trav563/sleeper-analytics-2025/model"
)

var strengthPositions = []model.Position{model.POS_QB, model.POS_RB, model.POS_WR, model.POS_TE}

func (c *controller) GetPositionalStrength(ctx context.Context, leagueID string, rosterID int) ([]model.PositionStrength, error) {
	week, err := c.currentWeek(0)
	if err != nil {
		return nil, err
	}

	rosters, err := c.sleeper.GetLeagueRosters(leagueID)
	if err != nil {
		return nil, fmt.Errorf("error getting rosters for league %s: %w", leagueID, err)
	}

	var target *model.Roster
	for i := range rosters {
		if rosters[i].ID == rosterID {
			target = &rosters[i]
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("no roster %d in league %s", rosterID, leagueID)
	}

	weekly, err := c.fetchSeasonMatchups(leagueID, week)
	if err != nil {
		return nil, err
	}

	players, err := c.getPlayerCatalog(ctx)
	if err != nil {
		return nil, err
	}

	return computePositionalStrength(rosters, target, buildPlayerStats(weekly), players), nil
}

// computePositionalStrength averages starter production per position across
// the whole league and across the one target roster.
func computePositionalStrength(rosters []model.Roster, target *model.Roster,
	stats map[string]model.PlayerStats, players map[string]model.Player) []model.PositionStrength {

	out := make([]model.PositionStrength, 0, len(strengthPositions))
	for _, pos := range strengthPositions {
		var leagueSum, teamSum float64
		var leagueN, teamN int

		for i := range rosters {
			sum, n := starterAverages(&rosters[i], pos, stats, players)
			leagueSum += sum
			leagueN += n
		}
		teamSum, teamN = starterAverages(target, pos, stats, players)

		ps := model.PositionStrength{Position: pos}
		if leagueN > 0 {
			ps.LeagueAvg = leagueSum / float64(leagueN)
		}
		if teamN > 0 {
			ps.TeamAvg = teamSum / float64(teamN)
		}
		out = append(out, ps)
	}

	return out
}

func starterAverages(r *model.Roster, pos model.Position,
	stats map[string]model.PlayerStats, players map[string]model.Player) (float64, int) {

	var sum float64
	var n int
	for _, id := range r.StarterIDs {
		ref := model.ParseStarter(id)
		if ref.Kind != model.STARTER_PLAYER {
			continue
		}
		p, ok := players[ref.ID]
		if !ok || p.Position != pos {
			continue
		}
		sum += stats[ref.ID].AvgPoints
		n++
	}
	return sum, n
}
