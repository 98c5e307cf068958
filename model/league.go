package model

import (
	"fmt"
)

const sleeperCDN = "https://sleepercdn.com/avatars"

// NFLState is the league-sport clock: which week and what part of the season
// the NFL is currently in.
type NFLState struct {
	Week       int
	SeasonType string // "pre", "regular" or "post"
	Season     string
}

type User struct {
	ID          string
	Username    string
	DisplayName string
	TeamName    string // Optional custom team name from user metadata
	Avatar      string
}

// DisplayTeamName resolves the name shown for a team: the custom team name,
// then the display name, then the username, then a synthesized fallback.
func (u *User) DisplayTeamName() string {
	if u == nil {
		return ""
	}
	if u.TeamName != "" {
		return u.TeamName
	}
	if u.DisplayName != "" {
		return u.DisplayName
	}
	if u.Username != "" {
		return u.Username
	}
	return fmt.Sprintf("Team %s", u.ID)
}

func (u *User) AvatarURL() string {
	if u == nil || u.Avatar == "" {
		return ""
	}
	return fmt.Sprintf("%s/thumbs/%s", sleeperCDN, u.Avatar)
}

// Roster is one team's player collection within a league. OwnerID may be
// empty for unowned rosters. StarterIDs is ordered parallel to the league's
// roster-position slots.
type Roster struct {
	ID         int
	OwnerID    string
	PlayerIDs  []string
	StarterIDs []string
	Wins       int
	Losses     int
	Ties       int
	PointsFor  float64
}

// Matchup is one roster's side of a weekly pairing. Two rosters share a
// MatchupID in head-to-head weeks. Starters may contain empty-slot markers
// and is parallel to StarterPoints.
type Matchup struct {
	Week          int
	RosterID      int
	MatchupID     int
	Points        float64
	Starters      []string
	StarterPoints []float64
}

type League struct {
	ID               string
	Name             string
	Season           string
	Avatar           string
	RosterPositions  []string // Ordered slot labels, defines positional meaning by starter index
	DraftID          string
	PreviousLeagueID string // Empty terminates the history chain
}

type DraftPick struct {
	PickNo   int // Overall pick number
	PlayerID string
	RosterID int
}
