// Package stats holds the pure aggregation routines shared by every view.
// All functions are total over well-typed input: missing numeric fields count
// as zero and records missing required names are skipped, never rejected.
package stats

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"dota-dashboard/internal/constants"
	"dota-dashboard/internal/domain"
)

// Percentage returns part/total*100, or 0 when total is zero.
func Percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// ComputeTeamWinRates folds a match list into per-team win/loss aggregates.
// A match contributes exactly one win and one loss; matches missing either
// team name are skipped. Ordering is the caller's concern.
func ComputeTeamWinRates(matches []domain.MatchRecord) map[string]domain.TeamAggregate {
	rates := make(map[string]domain.TeamAggregate)
	for _, m := range matches {
		if m.RadiantName == "" || m.DireName == "" {
			continue
		}
		winner, loser := m.RadiantName, m.DireName
		if !m.RadiantWin {
			winner, loser = loser, winner
		}

		w := rates[winner]
		w.Team = winner
		w.Wins++
		rates[winner] = w

		l := rates[loser]
		l.Team = loser
		l.Losses++
		rates[loser] = l
	}

	for name, agg := range rates {
		agg.TotalGames = agg.Wins + agg.Losses
		agg.WinRatePct = Percentage(agg.Wins, agg.TotalGames)
		rates[name] = agg
	}
	return rates
}

// KDA returns the unrounded (kills+assists)/deaths ratio. With zero deaths
// there is no division and the ratio is kills+assists. Sort on this value,
// not on the rounded display form.
func KDA(stat domain.PlayerMatchStat) float64 {
	if stat.Deaths == 0 {
		return float64(stat.Kills + stat.Assists)
	}
	return float64(stat.Kills+stat.Assists) / float64(stat.Deaths)
}

// FormatKDA is the 2-decimal display form of a KDA ratio.
func FormatKDA(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// ComputeRegionCounts groups pro players by country. Team counts are over
// distinct team names; two players from the same country on the same team
// count one team.
func ComputeRegionCounts(players []domain.ProPlayerRecord, countryName func(code string) string) map[string]domain.RegionStat {
	type region struct {
		players int
		teams   map[string]struct{}
	}
	byCountry := make(map[string]*region)
	for _, p := range players {
		if p.CountryCode == "" {
			continue
		}
		name := countryName(p.CountryCode)
		r := byCountry[name]
		if r == nil {
			r = &region{teams: make(map[string]struct{})}
			byCountry[name] = r
		}
		r.players++
		if p.TeamName != "" {
			r.teams[p.TeamName] = struct{}{}
		}
	}

	out := make(map[string]domain.RegionStat, len(byCountry))
	for name, r := range byCountry {
		out[name] = domain.RegionStat{
			Country:     name,
			PlayerCount: r.players,
			TeamCount:   len(r.teams),
		}
	}
	return out
}

// ComputeHeroMeta derives pick and win rates for every hero that saw pro
// play. Pick rate is relative to the total picks across the filtered hero
// set, so pick rates sum to 100 over heroes with at least one pick. Win rate
// guards against a zero pick count.
func ComputeHeroMeta(heroes []domain.HeroStatRecord) []domain.HeroMetaStat {
	picked := make([]domain.HeroStatRecord, 0, len(heroes))
	totalPicks := 0
	for _, h := range heroes {
		if h.ProPick <= 0 && h.ProWin <= 0 {
			continue
		}
		picked = append(picked, h)
		if h.ProPick > 0 {
			totalPicks += h.ProPick
		}
	}

	out := make([]domain.HeroMetaStat, 0, len(picked))
	for _, h := range picked {
		name := h.LocalizedName
		if name == "" {
			name = fmt.Sprintf("Hero %d", h.ID)
		}
		out = append(out, domain.HeroMetaStat{
			HeroID:      h.ID,
			Name:        name,
			PickRatePct: Percentage(h.ProPick, totalPicks),
			WinRatePct:  Percentage(h.ProWin, h.ProPick),
			TotalPicks:  h.ProPick,
		})
	}
	return out
}

// DateBucket maps a unix timestamp to the bucket it belongs to.
type DateBucket func(unixSeconds int64) time.Time

// DailyBucket truncates to the local calendar date.
func DailyBucket(unixSeconds int64) time.Time {
	t := time.Unix(unixSeconds, 0)
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// ComputeMatchTrend counts matches per bucket, returns buckets ascending by
// date truncated to the trailing window. Matches without a start time are
// skipped.
func ComputeMatchTrend(matches []domain.MatchRecord, bucket DateBucket, window int) []domain.TrendPoint {
	if bucket == nil {
		bucket = DailyBucket
	}
	if window <= 0 {
		window = constants.TrendWindow
	}

	counts := make(map[time.Time]int)
	for _, m := range matches {
		if m.StartTime == 0 {
			continue
		}
		counts[bucket(m.StartTime)]++
	}

	points := make([]domain.TrendPoint, 0, len(counts))
	for date, count := range counts {
		points = append(points, domain.TrendPoint{Date: date, Count: count})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	if len(points) > window {
		points = points[len(points)-window:]
	}
	return points
}
