package sleeper

import (
	"github.com/trav563/sleeper-analytics-2025/model"
)

// The raw wire shapes from the Sleeper API. They are converted into model
// types at this boundary so the rest of the code never sees Sleeper's JSON
// naming.

type sleeperState struct {
	Week         int    `json:"week"`
	SeasonType   string `json:"season_type"`
	Season       string `json:"season"`
	LeagueSeason string `json:"league_season"`
}

func (s *sleeperState) toNFLState() *model.NFLState {
	season := s.Season
	if s.LeagueSeason != "" {
		season = s.LeagueSeason
	}
	return &model.NFLState{
		Week:       s.Week,
		SeasonType: s.SeasonType,
		Season:     season,
	}
}

type sleeperUser struct {
	UserID      string        `json:"user_id"`
	Username    string        `json:"username"`
	DisplayName string        `json:"display_name"`
	Avatar      string        `json:"avatar"`
	Metadata    *userMetadata `json:"metadata"`
}

type userMetadata struct {
	TeamName string `json:"team_name"`
}

func (u *sleeperUser) toUser() *model.User {
	teamName := ""
	if u.Metadata != nil {
		teamName = u.Metadata.TeamName
	}
	return &model.User{
		ID:          u.UserID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		TeamName:    teamName,
		Avatar:      u.Avatar,
	}
}

type sleeperLeague struct {
	LeagueID         string   `json:"league_id"`
	Name             string   `json:"name"`
	Season           string   `json:"season"`
	Avatar           string   `json:"avatar"`
	RosterPositions  []string `json:"roster_positions"`
	DraftID          string   `json:"draft_id"`
	PreviousLeagueID string   `json:"previous_league_id"`
}

func (l *sleeperLeague) toLeague() *model.League {
	return &model.League{
		ID:               l.LeagueID,
		Name:             l.Name,
		Season:           l.Season,
		Avatar:           l.Avatar,
		RosterPositions:  l.RosterPositions,
		DraftID:          l.DraftID,
		PreviousLeagueID: l.PreviousLeagueID,
	}
}

type sleeperRoster struct {
	RosterID int            `json:"roster_id"`
	OwnerID  string         `json:"owner_id"`
	Players  []string       `json:"players"`
	Starters []string       `json:"starters"`
	Settings rosterSettings `json:"settings"`
}

type rosterSettings struct {
	Wins        int `json:"wins"`
	Losses      int `json:"losses"`
	Ties        int `json:"ties"`
	Fpts        int `json:"fpts"`
	FptsDecimal int `json:"fpts_decimal"`
}

func (r *sleeperRoster) toRoster() *model.Roster {
	return &model.Roster{
		ID:         r.RosterID,
		OwnerID:    r.OwnerID,
		PlayerIDs:  r.Players,
		StarterIDs: r.Starters,
		Wins:       r.Settings.Wins,
		Losses:     r.Settings.Losses,
		Ties:       r.Settings.Ties,
		// Sleeper splits points-for into an integer part and a fractional
		// remainder in hundredths.
		PointsFor: float64(r.Settings.Fpts) + float64(r.Settings.FptsDecimal)/100,
	}
}

type sleeperMatchup struct {
	RosterID       int       `json:"roster_id"`
	MatchupID      int       `json:"matchup_id"`
	Points         float64   `json:"points"`
	Starters       []string  `json:"starters"`
	StartersPoints []float64 `json:"starters_points"`
}

func (m *sleeperMatchup) toMatchup(week int) *model.Matchup {
	return &model.Matchup{
		Week:          week,
		RosterID:      m.RosterID,
		MatchupID:     m.MatchupID,
		Points:        m.Points,
		Starters:      m.Starters,
		StarterPoints: m.StartersPoints,
	}
}

type sleeperPlayer struct {
	ID           string `json:"player_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Position     string `json:"position"`
	Team         string `json:"team"`
	InjuryStatus string `json:"injury_status"`
	Status       string `json:"status"`
	Active       bool   `json:"active"`
}

func (p *sleeperPlayer) toPlayer() *model.Player {
	return &model.Player{
		ID:           p.ID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Position:     model.ParsePosition(p.Position),
		Team:         model.ParseTeam(p.Team),
		InjuryStatus: p.InjuryStatus,
		RosterStatus: p.Status,
		Active:       p.Active,
	}
}

type sleeperDraftPick struct {
	PickNo   int    `json:"pick_no"`
	PlayerID string `json:"player_id"`
	RosterID int    `json:"roster_id"`
}

func (p *sleeperDraftPick) toDraftPick() *model.DraftPick {
	return &model.DraftPick{
		PickNo:   p.PickNo,
		PlayerID: p.PlayerID,
		RosterID: p.RosterID,
	}
}
