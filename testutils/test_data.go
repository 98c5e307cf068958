package testutils

// Player ids used throughout the embedded fixture data. They match the
// entries in sleeperdata/players.json.
const (
	IDHurts     = "6904" // QB, PHI, healthy
	IDJefferson = "6794" // WR, MIN, healthy
	IDRobinson  = "9509" // RB, ATL, healthy
	IDMcCaffrey = "4034" // RB, SF, Questionable
	IDLockett   = "2374" // WR, SEA, Out
	IDChubb     = "4988" // RB, CLE, PUP
	IDKelce     = "1466" // TE, KC, healthy
	IDTucker    = "1264" // K, BAL, healthy
)

// League ids forming a three season history chain.
const (
	LeagueID2025 = "924039165950484480"
	LeagueID2024 = "824039165950484480"
	LeagueID2023 = "724039165950484480"

	DraftID2025 = "924039165950484481"

	UserIDSleeperUser = "12345678"
)
