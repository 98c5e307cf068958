package controller

import (
	"context"
	"fmt"
	"sort"

	"github.com/trav563/sleeper-analytics-2025/model"
)

func (c *controller) GetDraftROI(ctx context.Context, leagueID string) ([]model.DraftPickROI, error) {
	l, err := c.sleeper.GetLeague(leagueID)
	if err != nil {
		return nil, err
	}
	if l.DraftID == "" {
		return nil, fmt.Errorf("league %s has no draft", leagueID)
	}

	picks, err := c.sleeper.GetDraftPicks(l.DraftID)
	if err != nil {
		return nil, fmt.Errorf("error getting draft picks for %s: %w", l.DraftID, err)
	}

	week, err := c.currentWeek(0)
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

	return classifyDraftPicks(picks, buildPlayerStats(weekly), players, c.cfg), nil
}

// classifyDraftPicks labels each pick that has produced stats as a steal, a
// bust, or fair value. Picks whose player never occupied a starter slot are
// excluded rather than shown as zero-point busts.
func classifyDraftPicks(picks []model.DraftPick, stats map[string]model.PlayerStats,
	players map[string]model.Player, cfg model.AnalysisConfig) []model.DraftPickROI {

	out := make([]model.DraftPickROI, 0, len(picks))
	for _, pick := range picks {
		s, ok := stats[pick.PlayerID]
		if !ok {
			continue
		}

		roi := model.DraftPickROI{
			PickNo:      pick.PickNo,
			PlayerID:    pick.PlayerID,
			Name:        pick.PlayerID,
			TotalPoints: s.TotalPoints,
			Verdict:     model.DRAFT_FAIR,
		}
		if p, found := players[pick.PlayerID]; found {
			roi.Name = model.TrimNameSuffix(p.FullName())
			roi.Position = p.Position
		}

		if pick.PickNo > cfg.StealMinPick && s.TotalPoints > cfg.StealMinPoints {
			roi.Verdict = model.DRAFT_STEAL
		} else if pick.PickNo < cfg.BustMaxPick && s.TotalPoints < cfg.BustMaxPoints {
			roi.Verdict = model.DRAFT_BUST
		}

		out = append(out, roi)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].PickNo < out[j].PickNo })
	return out
}
