package controller

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/trav563/sleeper-analytics-2025/model"
)

func (c *controller) GetLineupReport(ctx context.Context, leagueID string, week int) (*model.LineupReport, error) {
	week, err := c.currentWeek(week)
	if err != nil {
		return nil, err
	}

	players, err := c.getPlayerCatalog(ctx)
	if err != nil {
		return nil, err
	}

	var users []model.User
	var rosters []model.Roster
	var matchups []model.Matchup

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
	g.Go(func() error {
		var err error
		matchups, err = c.sleeper.GetMatchups(leagueID, week)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error loading league %s: %w", leagueID, err)
	}

	// A schedule outage only costs bye detection, not the whole report.
	byes, err := c.espn.GetTeamsOnBye(week)
	if err != nil {
		log.Printf("error getting byes for week %d: %v", week, err)
		byes = model.UnknownByes()
	}

	return buildLineupReport(week, users, rosters, matchups, players, byes), nil
}

func buildLineupReport(week int, users []model.User, rosters []model.Roster, matchups []model.Matchup,
	players map[string]model.Player, byes model.ByeWeeks) *model.LineupReport {

	userIndex := usersByID(users)
	matchupIndex := make(map[int]model.Matchup, len(matchups))
	for _, m := range matchups {
		matchupIndex[m.RosterID] = m
	}

	report := &model.LineupReport{
		Week:      week,
		ByesKnown: byes.Known(),
		Teams:     make([]model.TeamLineup, 0, len(rosters)),
		Grouped:   make(map[model.LineupStatus][]model.TeamLineup),
	}

	sort.Slice(rosters, func(i, j int) bool { return rosters[i].ID < rosters[j].ID })

	for i := range rosters {
		r := &rosters[i]

		// The matchup's starter list reflects in-week lineup moves that the
		// roster snapshot can lag behind.
		starters := r.StarterIDs
		matchupID := 0
		if m, ok := matchupIndex[r.ID]; ok {
			matchupID = m.MatchupID
			// A matchup row can exist before its starter list is set; keep
			// the roster snapshot in that case.
			if m.Starters != nil {
				starters = m.Starters
			}
		}

		status, flagged := classifyLineup(starters, players, byes)
		team := model.TeamLineup{
			RosterID:  r.ID,
			Name:      teamName(r, userIndex),
			Avatar:    teamAvatar(r, userIndex),
			Status:    status,
			Flagged:   flagged,
			MatchupID: matchupID,
		}

		report.Teams = append(report.Teams, team)
		report.Grouped[status] = append(report.Grouped[status], team)
	}

	return report
}

// classifyLineup walks a starter list and returns the team's health plus the
// starters that degrade it. Evaluation stops at the first disqualifying
// starter; POTENTIAL findings accumulate without stopping.
func classifyLineup(starters []string, players map[string]model.Player, byes model.ByeWeeks) (model.LineupStatus, []model.FlaggedStarter) {
	// Empty slots disqualify the lineup outright and suppress every
	// per-player check.
	var empty []model.FlaggedStarter
	for _, id := range starters {
		if model.ParseStarter(id).Kind == model.STARTER_EMPTY {
			empty = append(empty, model.FlaggedStarter{PlayerID: "empty", Name: "Empty Slot", Reason: "Empty Slot"})
		}
	}
	if len(empty) > 0 {
		return model.LINEUP_INCOMPLETE, empty
	}

	status := model.LINEUP_OK
	flagged := make([]model.FlaggedStarter, 0)

	for _, id := range starters {
		ref := model.ParseStarter(id)

		if ref.Kind == model.STARTER_DEFENSE {
			team := model.ParseTeam(ref.ID)
			if byes.OnBye(team.String()) {
				flagged = append(flagged, model.FlaggedStarter{PlayerID: ref.ID, Name: team.Friendly(), Reason: "BYE"})
				return model.LINEUP_INCOMPLETE, flagged
			}
			continue
		}

		p, ok := players[ref.ID]
		if !ok {
			// An id missing from the catalog is treated as healthy rather
			// than disqualifying.
			continue
		}

		if p.Team != nil && byes.OnBye(p.Team.String()) {
			flagged = append(flagged, model.FlaggedStarter{PlayerID: p.ID, Name: p.FullName(), Reason: "BYE"})
			return model.LINEUP_INCOMPLETE, flagged
		}

		if strings.EqualFold(p.InjuryStatus, "pup") || strings.EqualFold(p.RosterStatus, "pup") {
			flagged = append(flagged, model.FlaggedStarter{PlayerID: p.ID, Name: p.FullName(), Reason: "PUP"})
			return model.LINEUP_INCOMPLETE, flagged
		}

		switch model.ClassifyInjury(&p) {
		case model.LINEUP_INCOMPLETE:
			flagged = append(flagged, model.FlaggedStarter{PlayerID: p.ID, Name: p.FullName(), Reason: flagReason(&p, "Out")})
			return model.LINEUP_INCOMPLETE, flagged
		case model.LINEUP_POTENTIAL:
			flagged = append(flagged, model.FlaggedStarter{PlayerID: p.ID, Name: p.FullName(), Reason: flagReason(&p, "Questionable")})
			status = model.LINEUP_POTENTIAL
		}
	}

	return status, flagged
}

// flagReason prefers the raw status text from the API over the bucket name.
func flagReason(p *model.Player, fallback string) string {
	if p.InjuryStatus != "" {
		return p.InjuryStatus
	}
	if p.RosterStatus != "" && !strings.EqualFold(p.RosterStatus, "active") {
		return p.RosterStatus
	}
	return fallback
}
