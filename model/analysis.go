package model

// AnalysisConfig holds the thresholds behind the draft ROI and trade
// heuristics. They are deliberate constants rather than learned values; the
// struct exists so tests can override them without code changes.
type AnalysisConfig struct {
	// A pick later than StealMinPick that produced more than StealMinPoints
	// total points is a steal.
	StealMinPick   int
	StealMinPoints float64
	// A pick earlier than BustMaxPick that produced fewer than BustMaxPoints
	// total points is a bust.
	BustMaxPick   int
	BustMaxPoints float64
	// TopTierSize is how many players per position count as top tier when
	// ranked league-wide by average points. ReplacementTierSize is the cutoff
	// below which a starter is considered below replacement level.
	TopTierSize         int
	ReplacementTierSize int
	// A roster holding more than SurplusThreshold top-tier players at a
	// position has a surplus there.
	SurplusThreshold int
}

func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		StealMinPick:        100,
		StealMinPoints:      100,
		BustMaxPick:         50,
		BustMaxPoints:       50,
		TopTierSize:         24,
		ReplacementTierSize: 40,
		SurplusThreshold:    3,
	}
}

type DraftVerdict string

const (
	DRAFT_STEAL DraftVerdict = "STEAL"
	DRAFT_BUST  DraftVerdict = "BUST"
	DRAFT_FAIR  DraftVerdict = "FAIR"
)

// DraftPickROI joins a draft pick to the points the player went on to score.
// Picks whose player never occupied a starter slot are excluded entirely.
type DraftPickROI struct {
	PickNo      int
	PlayerID    string
	Name        string
	Position    Position
	TotalPoints float64
	Verdict     DraftVerdict
}

// TradeOpportunity pairs a team with surplus top-tier talent at a position
// with a team starting below-replacement talent there. No value balancing is
// attempted; every qualifying pairing is reported.
type TradeOpportunity struct {
	FromRosterID int
	FromName     string
	ToRosterID   int
	ToName       string
	Position     Position
}

// PositionStrength compares one roster's average starter production at a
// position against the league average.
type PositionStrength struct {
	Position  Position
	LeagueAvg float64
	TeamAvg   float64
}
