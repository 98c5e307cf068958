package model

import (
	"fmt"
	"strings"
)

// Player is an immutable snapshot of one entry in the Sleeper player catalog.
// InjuryStatus and RosterStatus are free text from the API ("Questionable",
// "Doubtful", "Out", "IR", "PUP", "Suspended", or empty) with overlapping
// semantics between the two fields.
type Player struct {
	ID           string
	FirstName    string
	LastName     string
	Position     Position
	Team         *NFLTeam
	InjuryStatus string
	RosterStatus string
	Active       bool
}

func (p *Player) FullName() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", p.FirstName, p.LastName))
}

// PlayerStats aggregates how a player performed across every week they
// occupied a starter slot, in any lineup in the league.
type PlayerStats struct {
	TotalPoints  float64
	GamesStarted int
	AvgPoints    float64
}

// Take a full name, like "Deebo Samuel Sr." and return "Deebo Samuel".
func TrimNameSuffix(fullName string) string {
	suffixList := []string{
		"Jr.",
		"Sr.",
		"II",
		"IV",
	}

	for _, s := range suffixList {
		fullName = strings.TrimSuffix(fullName, s)
	}

	return strings.TrimSpace(fullName)
}
