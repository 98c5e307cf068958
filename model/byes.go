package model

import (
	"sort"
)

// ByeWeeks is the set of teams not playing in a given week. A failed
// schedule fetch is distinguishable from a week with no byes: UnknownByes
// reports no teams on bye but Known() == false.
type ByeWeeks struct {
	teams map[string]bool
	known bool
}

func ByesForTeams(teams []string) ByeWeeks {
	m := make(map[string]bool, len(teams))
	for _, t := range teams {
		m[t] = true
	}
	return ByeWeeks{teams: m, known: true}
}

func UnknownByes() ByeWeeks {
	return ByeWeeks{known: false}
}

func (b ByeWeeks) OnBye(team string) bool {
	return b.teams[team]
}

func (b ByeWeeks) Known() bool {
	return b.known
}

func (b ByeWeeks) Teams() []string {
	out := make([]string, 0, len(b.teams))
	for t := range b.teams {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
