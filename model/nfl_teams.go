package model

import (
	"fmt"
	"strings"
)

// NFLTeam uses the Sleeper abbreviations as the canonical names. Other data
// sources (notably ESPN's scoreboard) spell a few teams differently, so those
// variants are carried as nicknames and resolved by ParseTeam.
type NFLTeam struct {
	name   string
	loc    string
	mascot string
	nick   []string // Alternate abbreviations used by other providers, e.g. WSH for WAS
}

func (t *NFLTeam) String() string {
	return t.name
}

func (t *NFLTeam) Friendly() string {
	if t.loc == "" {
		return t.name
	}
	return fmt.Sprintf("%s %s", t.loc, t.mascot)
}

func (t *NFLTeam) Equals(o *NFLTeam) bool {
	if o == nil {
		return false
	}

	if t == o {
		return true
	}

	return t.name == o.name &&
		t.loc == o.loc &&
		t.mascot == o.mascot &&
		arrayEquals(t.nick, o.nick)
}

var (
	TEAM_FA *NFLTeam = &NFLTeam{name: "FA", nick: []string{"FA*"}}

	// NFC
	TEAM_ARI *NFLTeam = &NFLTeam{name: "ARI", loc: "Arizona", mascot: "Cardinals"}
	TEAM_ATL *NFLTeam = &NFLTeam{name: "ATL", loc: "Atlanta", mascot: "Falcons"}
	TEAM_CAR *NFLTeam = &NFLTeam{name: "CAR", loc: "Carolina", mascot: "Panthers"}
	TEAM_CHI *NFLTeam = &NFLTeam{name: "CHI", loc: "Chicago", mascot: "Bears"}
	TEAM_DAL *NFLTeam = &NFLTeam{name: "DAL", loc: "Dallas", mascot: "Cowboys"}
	TEAM_DET *NFLTeam = &NFLTeam{name: "DET", loc: "Detroit", mascot: "Lions"}
	TEAM_GB  *NFLTeam = &NFLTeam{name: "GB", loc: "Green Bay", mascot: "Packers", nick: []string{"GNB"}}
	TEAM_LAR *NFLTeam = &NFLTeam{name: "LAR", loc: "Los Angeles", mascot: "Rams"}
	TEAM_MIN *NFLTeam = &NFLTeam{name: "MIN", loc: "Minnesota", mascot: "Vikings"}
	TEAM_NO  *NFLTeam = &NFLTeam{name: "NO", loc: "New Orleans", mascot: "Saints", nick: []string{"NOR"}}
	TEAM_NYG *NFLTeam = &NFLTeam{name: "NYG", loc: "New York", mascot: "Giants"}
	TEAM_PHI *NFLTeam = &NFLTeam{name: "PHI", loc: "Philadelphia", mascot: "Eagles"}
	TEAM_SF  *NFLTeam = &NFLTeam{name: "SF", loc: "San Francisco", mascot: "49ers", nick: []string{"SFO"}}
	TEAM_SEA *NFLTeam = &NFLTeam{name: "SEA", loc: "Seattle", mascot: "Seahawks"}
	TEAM_TB  *NFLTeam = &NFLTeam{name: "TB", loc: "Tampa Bay", mascot: "Buccaneers", nick: []string{"TBB"}}
	TEAM_WAS *NFLTeam = &NFLTeam{name: "WAS", loc: "Washington", mascot: "Commanders", nick: []string{"WSH"}}

	// AFC
	TEAM_BAL *NFLTeam = &NFLTeam{name: "BAL", loc: "Baltimore", mascot: "Ravens"}
	TEAM_BUF *NFLTeam = &NFLTeam{name: "BUF", loc: "Buffalo", mascot: "Bills"}
	TEAM_CIN *NFLTeam = &NFLTeam{name: "CIN", loc: "Cincinnati", mascot: "Bengals"}
	TEAM_CLE *NFLTeam = &NFLTeam{name: "CLE", loc: "Cleveland", mascot: "Browns"}
	TEAM_DEN *NFLTeam = &NFLTeam{name: "DEN", loc: "Denver", mascot: "Broncos"}
	TEAM_HOU *NFLTeam = &NFLTeam{name: "HOU", loc: "Houston", mascot: "Texans"}
	TEAM_IND *NFLTeam = &NFLTeam{name: "IND", loc: "Indianapolis", mascot: "Colts"}
	TEAM_JAX *NFLTeam = &NFLTeam{name: "JAX", loc: "Jacksonville", mascot: "Jaguars", nick: []string{"JAC"}}
	TEAM_KC  *NFLTeam = &NFLTeam{name: "KC", loc: "Kansas City", mascot: "Chiefs", nick: []string{"KCC"}}
	TEAM_LV  *NFLTeam = &NFLTeam{name: "LV", loc: "Las Vegas", mascot: "Raiders", nick: []string{"LVR"}}
	TEAM_LAC *NFLTeam = &NFLTeam{name: "LAC", loc: "Los Angeles", mascot: "Chargers"}
	TEAM_MIA *NFLTeam = &NFLTeam{name: "MIA", loc: "Miami", mascot: "Dolphins"}
	TEAM_NE  *NFLTeam = &NFLTeam{name: "NE", loc: "New England", mascot: "Patriots", nick: []string{"NEP"}}
	TEAM_NYJ *NFLTeam = &NFLTeam{name: "NYJ", loc: "New York", mascot: "Jets"}
	TEAM_PIT *NFLTeam = &NFLTeam{name: "PIT", loc: "Pittsburgh", mascot: "Steelers"}
	TEAM_TEN *NFLTeam = &NFLTeam{name: "TEN", loc: "Tennessee", mascot: "Titans"}

	allTeams []*NFLTeam = []*NFLTeam{
		// NFC
		TEAM_ARI, TEAM_ATL, TEAM_CAR, TEAM_CHI, TEAM_DAL, TEAM_DET, TEAM_GB, TEAM_LAR,
		TEAM_MIN, TEAM_NO, TEAM_NYG, TEAM_PHI, TEAM_SF, TEAM_SEA, TEAM_TB, TEAM_WAS,
		// AFC
		TEAM_BAL, TEAM_BUF, TEAM_CIN, TEAM_CLE, TEAM_DEN, TEAM_HOU, TEAM_IND, TEAM_JAX,
		TEAM_KC, TEAM_LV, TEAM_LAC, TEAM_MIA, TEAM_NE, TEAM_NYJ, TEAM_PIT, TEAM_TEN,
	}

	teamMap map[string]*NFLTeam = buildTeamMap()
)

func ParseTeam(name string) *NFLTeam {
	t := teamMap[strings.ToLower(name)]
	if t == nil {
		return TEAM_FA
	}
	return t
}

// AllTeamNames returns the canonical abbreviations for all 32 NFL teams.
func AllTeamNames() []string {
	names := make([]string, 0, len(allTeams))
	for _, t := range allTeams {
		names = append(names, t.name)
	}
	return names
}

func buildTeamMap() map[string]*NFLTeam {
	teamMap := make(map[string]*NFLTeam)
	for _, t := range append([]*NFLTeam{TEAM_FA}, allTeams...) {
		teamMap[strings.ToLower(t.name)] = t

		if t.loc != "" {
			teamMap[strings.ToLower(t.loc)] = t
		}

		if t.mascot != "" {
			teamMap[strings.ToLower(t.mascot)] = t
		}

		for _, n := range t.nick {
			teamMap[strings.ToLower(n)] = t
		}
	}
	return teamMap
}

func arrayEquals(a, b []string) bool {
	if a == nil && b == nil {
		return true
	}

	if (a == nil && b != nil) || (a != nil && b == nil) {
		return false
	}

	if len(a) != len(b) {
		return false
	}

	for i, v := range a {
		if v != b[i] {
			return false
		}
	}

	return true
}
