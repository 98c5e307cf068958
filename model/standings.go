package model

import (
	"fmt"
)

// TrueStanding is one team's row in the all-play standings. The all-play
// record counts a win for every team a roster outscored in a week, not just
// its scheduled opponent.
type TrueStanding struct {
	RosterID      int
	OwnerID       string
	Name          string
	Avatar        string
	Wins          int
	Losses        int
	Ties          int
	PointsFor     float64
	AllPlayWins   int
	AllPlayLosses int
	AllPlayTies   int
	// LuckIndex is actual wins minus the wins implied by the all-play win
	// percentage. Positive means lucky.
	LuckIndex float64
}

func (s *TrueStanding) ActualRecord() string {
	return formatRecord(s.Wins, s.Losses, s.Ties)
}

func (s *TrueStanding) AllPlayRecord() string {
	return formatRecord(s.AllPlayWins, s.AllPlayLosses, s.AllPlayTies)
}

func (s *TrueStanding) FormattedLuckIndex() string {
	return fmt.Sprintf("%+.2f", s.LuckIndex)
}

func formatRecord(wins, losses, ties int) string {
	if ties > 0 {
		return fmt.Sprintf("%d-%d-%d", wins, losses, ties)
	}
	return fmt.Sprintf("%d-%d", wins, losses)
}
