package model

// LeagueSeason is one link in a league's previous-season chain: the league
// snapshot for that year plus the anchor user's roster and all rosters keyed
// by their owner.
type LeagueSeason struct {
	Season         string
	LeagueID       string
	Name           string
	DraftID        string
	UserRoster     *Roster // nil if the user had no roster that season
	RostersByOwner map[string]Roster
}

type SeasonRecord struct {
	Wins   int
	Losses int
}

// RivalryRecord is the lifetime head-to-head tally against one opponent,
// with a per-season breakdown keyed by season label.
type RivalryRecord struct {
	OpponentID string
	Name       string
	Avatar     string
	Wins       int
	Losses     int
	Seasons    map[string]SeasonRecord
}

func (r *RivalryRecord) Games() int {
	return r.Wins + r.Losses
}
