package service

import (
	"dota-dashboard/internal/api"
	"dota-dashboard/internal/domain"
)

func toProPlayers(players []api.ProPlayer) []domain.ProPlayerRecord {
	out := make([]domain.ProPlayerRecord, len(players))
	for i, p := range players {
		out[i] = domain.ProPlayerRecord{
			AccountID:           p.AccountID,
			Name:                p.Name,
			Personaname:         p.Personaname,
			Avatar:              p.AvatarFull,
			TeamID:              p.TeamID,
			TeamName:            p.TeamName,
			CountryCode:         p.CountryCode,
			FantasyRole:         p.FantasyRole,
			Rating:              p.Rating,
			Wins:                p.Wins,
			Losses:              p.Losses,
			IsCurrentTeamMember: p.IsCurrentTeamMember,
		}
	}
	return out
}

func toMatchFromPro(m api.ProMatch) domain.MatchRecord {
	return domain.MatchRecord{
		MatchID:      m.MatchID,
		RadiantName:  m.RadiantName,
		DireName:     m.DireName,
		LeagueName:   m.LeagueName,
		RadiantWin:   m.RadiantWin,
		RadiantScore: m.RadiantScore,
		DireScore:    m.DireScore,
		StartTime:    m.StartTime,
		Duration:     m.Duration,
	}
}

func toMatchesFromPro(matches []api.ProMatch) []domain.MatchRecord {
	out := make([]domain.MatchRecord, len(matches))
	for i, m := range matches {
		out[i] = toMatchFromPro(m)
	}
	return out
}

func toMatchesFromPublic(matches []api.PublicMatch) []domain.MatchRecord {
	out := make([]domain.MatchRecord, len(matches))
	for i, m := range matches {
		out[i] = domain.MatchRecord{
			MatchID:    m.MatchID,
			RadiantWin: m.RadiantWin,
			StartTime:  m.StartTime,
			Duration:   m.Duration,
		}
	}
	return out
}

func toMatchFromDetails(m *api.MatchDetails) domain.MatchRecord {
	players := make([]domain.PlayerMatchStat, len(m.Players))
	for i, p := range m.Players {
		players[i] = domain.PlayerMatchStat{
			AccountID:   p.AccountID,
			Personaname: p.Personaname,
			PlayerSlot:  p.PlayerSlot,
			HeroID:      p.HeroID,
			Kills:       p.Kills,
			Deaths:      p.Deaths,
			Assists:     p.Assists,
			NetWorth:    p.NetWorth,
			GoldPerMin:  p.GoldPerMin,
			XPPerMin:    p.XPPerMin,
			HeroDamage:  p.HeroDamage,
			LastHits:    p.LastHits,
		}
	}

	return domain.MatchRecord{
		MatchID:        m.MatchID,
		RadiantName:    m.RadiantName,
		DireName:       m.DireName,
		LeagueName:     m.LeagueName,
		RadiantWin:     m.RadiantWin,
		RadiantScore:   m.RadiantScore,
		DireScore:      m.DireScore,
		StartTime:      m.StartTime,
		Duration:       m.Duration,
		Players:        players,
		RadiantGoldAdv: m.RadiantGoldAdv,
		RadiantXPAdv:   m.RadiantXPAdv,
	}
}

func toHeroStats(heroes []api.HeroStats) []domain.HeroStatRecord {
	out := make([]domain.HeroStatRecord, len(heroes))
	for i, h := range heroes {
		out[i] = domain.HeroStatRecord{
			ID:            h.ID,
			Name:          h.Name,
			LocalizedName: h.LocalizedName,
			ProPick:       h.ProPick,
			ProWin:        h.ProWin,
			ProBan:        h.ProBan,
		}
	}
	return out
}

func toTeam(t api.Team) domain.TeamRecord {
	return domain.TeamRecord{
		TeamID:        t.TeamID,
		Name:          t.Name,
		Tag:           t.Tag,
		LogoURL:       t.LogoURL,
		Rating:        t.Rating,
		Wins:          t.Wins,
		Losses:        t.Losses,
		LastMatchTime: t.LastMatchTime,
	}
}
