package model

import (
	"regexp"
	"strings"
)

// LineupStatus is the tri-state health of a team's weekly lineup.
type LineupStatus string

const (
	LINEUP_OK         LineupStatus = "OK"
	LINEUP_POTENTIAL  LineupStatus = "POTENTIAL"
	LINEUP_INCOMPLETE LineupStatus = "INCOMPLETE"
)

// A starter slot holds either a real player id, a defense/special-teams unit
// identified by a team-abbreviation-shaped id, or an empty-slot marker. The
// kind is resolved once when the slot is parsed, not re-detected at every
// consumption site.
type StarterKind int

const (
	STARTER_EMPTY StarterKind = iota
	STARTER_PLAYER
	STARTER_DEFENSE
)

var defenseIDRegex = regexp.MustCompile(`^[A-Z]{2,4}$`)

type StarterRef struct {
	ID   string
	Kind StarterKind
}

// ParseStarter classifies a raw starter slot id. An empty string or the
// literal "0" marks an unfilled slot. A 2-4 uppercase-letter id is a
// defense/special-teams pseudo-player; those never appear in the player
// catalog.
func ParseStarter(id string) StarterRef {
	if id == "" || id == "0" {
		return StarterRef{ID: id, Kind: STARTER_EMPTY}
	}
	if defenseIDRegex.MatchString(id) {
		return StarterRef{ID: id, Kind: STARTER_DEFENSE}
	}
	return StarterRef{ID: id, Kind: STARTER_PLAYER}
}

// ClassifyInjury buckets a player by their injury and roster status text.
// Every input maps to exactly one bucket; unknown or empty statuses are
// treated as healthy.
func ClassifyInjury(p *Player) LineupStatus {
	inj := strings.ToLower(p.InjuryStatus)
	status := strings.ToLower(p.RosterStatus)

	// IR, suspensions and PUP keep a player off the field just like "Out"
	switch inj {
	case "out", "ir", "suspended", "pup":
		return LINEUP_INCOMPLETE
	}
	switch status {
	case "ir", "suspension", "pup":
		return LINEUP_INCOMPLETE
	}

	if inj == "questionable" || inj == "doubtful" {
		return LINEUP_POTENTIAL
	}

	return LINEUP_OK
}

// FlaggedStarter is one starter that degrades a lineup, with a
// human-readable reason such as "BYE", "PUP", "Out" or "Empty Slot".
type FlaggedStarter struct {
	PlayerID string
	Name     string
	Reason   string
}

type TeamLineup struct {
	RosterID  int
	Name      string
	Avatar    string
	Status    LineupStatus
	Flagged   []FlaggedStarter
	MatchupID int
}

// LineupReport is the classified lineup health of every team in a league
// week. ByesKnown is false when the schedule provider could not be reached
// and no bye information was applied; callers should surface a staleness
// warning rather than assume zero byes.
type LineupReport struct {
	Week      int
	ByesKnown bool
	Teams     []TeamLineup
	Grouped   map[LineupStatus][]TeamLineup
}
