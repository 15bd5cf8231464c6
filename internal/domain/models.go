package domain

import "time"

// Side is the team a participant played on within a single match.
type Side int

const (
	Radiant Side = iota
	Dire
)

func (s Side) String() string {
	if s == Dire {
		return "Dire"
	}
	return "Radiant"
}

// SideOf derives side membership from the OpenDota player slot:
// slots 0-127 are Radiant, 128-255 are Dire.
func SideOf(playerSlot int) Side {
	if playerSlot < 128 {
		return Radiant
	}
	return Dire
}

type MatchRecord struct {
	MatchID      int64
	RadiantName  string
	DireName     string
	LeagueName   string
	RadiantWin   bool
	RadiantScore int
	DireScore    int

	// Unix seconds.
	StartTime int64

	// Seconds.
	Duration int

	Players []PlayerMatchStat

	// Minute-by-minute radiant advantage series, only present on full
	// match detail responses.
	RadiantGoldAdv []int
	RadiantXPAdv   []int
}

type PlayerMatchStat struct {
	AccountID   int64
	Personaname string
	PlayerSlot  int
	HeroID      int
	Kills       int
	Deaths      int
	Assists     int
	NetWorth    int
	GoldPerMin  int
	XPPerMin    int
	HeroDamage  int
	LastHits    int
}

func (p PlayerMatchStat) Side() Side {
	return SideOf(p.PlayerSlot)
}

type ProPlayerRecord struct {
	AccountID           int64
	Name                string
	Personaname         string
	Avatar              string
	TeamID              int64
	TeamName            string
	CountryCode         string
	FantasyRole         int
	Rating              float64
	Wins                int
	Losses              int
	IsCurrentTeamMember bool
}

// DisplayName prefers the official pro name over the Steam persona.
func (p ProPlayerRecord) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Personaname
}

func (p ProPlayerRecord) TotalMatches() int {
	return p.Wins + p.Losses
}

type HeroStatRecord struct {
	ID            int
	Name          string
	LocalizedName string
	ProPick       int
	ProWin        int
	ProBan        int
}

type TeamRecord struct {
	TeamID        int64
	Name          string
	Tag           string
	LogoURL       string
	Rating        float64
	Wins          int
	Losses        int
	LastMatchTime int64
}

type FavoriteType string

const (
	FavoritePlayers FavoriteType = "players"
	FavoriteTeams   FavoriteType = "teams"
	FavoriteHeroes  FavoriteType = "heroes"
	FavoriteMatches FavoriteType = "matches"
)

func (t FavoriteType) Valid() bool {
	switch t {
	case FavoritePlayers, FavoriteTeams, FavoriteHeroes, FavoriteMatches:
		return true
	}
	return false
}

type FavoriteEntry struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
}

// FavoriteList is the whole persisted favorites structure. It is always
// serialized and stored as one unit.
type FavoriteList struct {
	Players []FavoriteEntry `json:"players"`
	Teams   []FavoriteEntry `json:"teams"`
	Heroes  []FavoriteEntry `json:"heroes"`
	Matches []FavoriteEntry `json:"matches"`
}

func (l *FavoriteList) Entries(t FavoriteType) []FavoriteEntry {
	switch t {
	case FavoritePlayers:
		return l.Players
	case FavoriteTeams:
		return l.Teams
	case FavoriteHeroes:
		return l.Heroes
	case FavoriteMatches:
		return l.Matches
	}
	return nil
}

func (l *FavoriteList) SetEntries(t FavoriteType, entries []FavoriteEntry) {
	switch t {
	case FavoritePlayers:
		l.Players = entries
	case FavoriteTeams:
		l.Teams = entries
	case FavoriteHeroes:
		l.Heroes = entries
	case FavoriteMatches:
		l.Matches = entries
	}
}
