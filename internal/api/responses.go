package api

// Response shapes for the OpenDota endpoints this dashboard consumes.
// Fields absent from a payload decode to their zero value; the stats layer
// treats those as zero/skip rather than errors.

type SearchResult struct {
	AccountID     int64   `json:"account_id"`
	Personaname   string  `json:"personaname"`
	AvatarFull    string  `json:"avatarfull"`
	Similarity    float64 `json:"similarity"`
	LastMatchTime string  `json:"last_match_time"`
}

type ProPlayer struct {
	AccountID           int64   `json:"account_id"`
	Personaname         string  `json:"personaname"`
	Name                string  `json:"name"`
	AvatarFull          string  `json:"avatarfull"`
	CountryCode         string  `json:"country_code"`
	FantasyRole         int     `json:"fantasy_role"`
	TeamID              int64   `json:"team_id"`
	TeamName            string  `json:"team_name"`
	TeamTag             string  `json:"team_tag"`
	IsLocked            bool    `json:"is_locked"`
	IsPro               bool    `json:"is_pro"`
	IsCurrentTeamMember bool    `json:"is_current_team_member"`
	Rating              float64 `json:"rating"`
	Wins                int     `json:"wins"`
	Losses              int     `json:"losses"`
}

type ProMatch struct {
	MatchID      int64  `json:"match_id"`
	Duration     int    `json:"duration"`
	StartTime    int64  `json:"start_time"`
	RadiantName  string `json:"radiant_name"`
	DireName     string `json:"dire_name"`
	LeagueName   string `json:"league_name"`
	RadiantScore int    `json:"radiant_score"`
	DireScore    int    `json:"dire_score"`
	RadiantWin   bool   `json:"radiant_win"`
}

type PublicMatch struct {
	MatchID     int64 `json:"match_id"`
	RadiantWin  bool  `json:"radiant_win"`
	StartTime   int64 `json:"start_time"`
	Duration    int   `json:"duration"`
	AvgRankTier int   `json:"avg_rank_tier"`
	LobbyType   int   `json:"lobby_type"`
	GameMode    int   `json:"game_mode"`
}

type MatchDetails struct {
	MatchID        int64         `json:"match_id"`
	RadiantWin     bool          `json:"radiant_win"`
	Duration       int           `json:"duration"`
	StartTime      int64         `json:"start_time"`
	RadiantName    string        `json:"radiant_name"`
	DireName       string        `json:"dire_name"`
	RadiantScore   int           `json:"radiant_score"`
	DireScore      int           `json:"dire_score"`
	LeagueName     string        `json:"league_name"`
	RadiantGoldAdv []int         `json:"radiant_gold_adv"`
	RadiantXPAdv   []int         `json:"radiant_xp_adv"`
	Players        []MatchPlayer `json:"players"`
}

type MatchPlayer struct {
	AccountID   int64  `json:"account_id"`
	Personaname string `json:"personaname"`
	PlayerSlot  int    `json:"player_slot"`
	HeroID      int    `json:"hero_id"`
	Kills       int    `json:"kills"`
	Deaths      int    `json:"deaths"`
	Assists     int    `json:"assists"`
	NetWorth    int    `json:"net_worth"`
	GoldPerMin  int    `json:"gold_per_min"`
	XPPerMin    int    `json:"xp_per_min"`
	HeroDamage  int    `json:"hero_damage"`
	LastHits    int    `json:"last_hits"`
}

type PlayerData struct {
	Profile struct {
		AccountID      int64  `json:"account_id"`
		Personaname    string `json:"personaname"`
		Name           string `json:"name"`
		AvatarFull     string `json:"avatarfull"`
		LocCountryCode string `json:"loccountrycode"`
	} `json:"profile"`
	MMREstimate struct {
		Estimate int `json:"estimate"`
	} `json:"mmr_estimate"`
	RankTier        int `json:"rank_tier"`
	LeaderboardRank int `json:"leaderboard_rank"`
}

type PlayerRecentMatch struct {
	MatchID    int64 `json:"match_id"`
	PlayerSlot int   `json:"player_slot"`
	RadiantWin bool  `json:"radiant_win"`
	Duration   int   `json:"duration"`
	HeroID     int   `json:"hero_id"`
	StartTime  int64 `json:"start_time"`
	Kills      int   `json:"kills"`
	Deaths     int   `json:"deaths"`
	Assists    int   `json:"assists"`
	GoldPerMin int   `json:"gold_per_min"`
	XPPerMin   int   `json:"xp_per_min"`
}

type WinLoss struct {
	Win  int `json:"win"`
	Lose int `json:"lose"`
}

type HeroStats struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	LocalizedName string `json:"localized_name"`
	ProPick       int    `json:"pro_pick"`
	ProWin        int    `json:"pro_win"`
	ProBan        int    `json:"pro_ban"`
}

type Team struct {
	TeamID        int64   `json:"team_id"`
	Rating        float64 `json:"rating"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	LastMatchTime int64   `json:"last_match_time"`
	Name          string  `json:"name"`
	Tag           string  `json:"tag"`
	LogoURL       string  `json:"logo_url"`
}

type TeamPlayer struct {
	AccountID           int64  `json:"account_id"`
	Name                string `json:"name"`
	GamesPlayed         int    `json:"games_played"`
	Wins                int    `json:"wins"`
	IsCurrentTeamMember bool   `json:"is_current_team_member"`
}

type TeamMatch struct {
	MatchID          int64  `json:"match_id"`
	Radiant          bool   `json:"radiant"`
	RadiantWin       bool   `json:"radiant_win"`
	RadiantScore     int    `json:"radiant_score"`
	DireScore        int    `json:"dire_score"`
	Duration         int    `json:"duration"`
	StartTime        int64  `json:"start_time"`
	LeagueName       string `json:"league_name"`
	OpposingTeamID   int64  `json:"opposing_team_id"`
	OpposingTeamName string `json:"opposing_team_name"`
}

type TeamHero struct {
	HeroID        int    `json:"hero_id"`
	LocalizedName string `json:"localized_name"`
	GamesPlayed   int    `json:"games_played"`
	Wins          int    `json:"wins"`
}
