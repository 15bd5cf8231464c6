package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"dota-dashboard/internal/config"

	"github.com/valyala/fasthttp"
)

type OpenDotaClient struct {
	baseURL     string
	client      *fasthttp.Client
	rateLimitMu sync.RWMutex
	rateLimit   RateLimitInfo
}

// RateLimitInfo mirrors OpenDota's per-minute/per-day quota headers.
type RateLimitInfo struct {
	RemainingMinute int       `json:"remaining_minute"`
	RemainingDay    int       `json:"remaining_day"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewOpenDotaClient(cfg *config.Config) *OpenDotaClient {
	return &OpenDotaClient{
		baseURL: cfg.OpenDotaBaseURL,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
		rateLimit: RateLimitInfo{
			RemainingMinute: 60,
			RemainingDay:    2000,
			UpdatedAt:       time.Now(),
		},
	}
}

func (c *OpenDotaClient) GetRateLimitInfo() RateLimitInfo {
	c.rateLimitMu.RLock()
	defer c.rateLimitMu.RUnlock()
	return c.rateLimit
}

func (c *OpenDotaClient) updateRateLimit(resp *fasthttp.Response) {
	c.rateLimitMu.Lock()
	defer c.rateLimitMu.Unlock()

	if minute := string(resp.Header.Peek("X-Rate-Limit-Remaining-Minute")); minute != "" {
		if val, err := strconv.Atoi(minute); err == nil {
			c.rateLimit.RemainingMinute = val
		}
	}
	if day := string(resp.Header.Peek("X-Rate-Limit-Remaining-Day")); day != "" {
		if val, err := strconv.Atoi(day); err == nil {
			c.rateLimit.RemainingDay = val
		}
	}
	c.rateLimit.UpdatedAt = time.Now()
}

func (c *OpenDotaClient) SearchPlayers(ctx context.Context, query string) ([]SearchResult, error) {
	u := fmt.Sprintf("%s/search?q=%s", c.baseURL, url.QueryEscape(query))
	return doList[SearchResult](ctx, c, "search players", u)
}

func (c *OpenDotaClient) GetProPlayers(ctx context.Context) ([]ProPlayer, error) {
	return doList[ProPlayer](ctx, c, "get pro players", c.baseURL+"/proPlayers")
}

func (c *OpenDotaClient) GetProMatches(ctx context.Context, limit int) ([]ProMatch, error) {
	u := fmt.Sprintf("%s/proMatches?limit=%d", c.baseURL, limit)
	return doList[ProMatch](ctx, c, "get pro matches", u)
}

func (c *OpenDotaClient) GetPublicMatches(ctx context.Context, limit int) ([]PublicMatch, error) {
	u := fmt.Sprintf("%s/publicMatches?limit=%d", c.baseURL, limit)
	return doList[PublicMatch](ctx, c, "get public matches", u)
}

func (c *OpenDotaClient) GetMatchDetails(ctx context.Context, matchID int64) (*MatchDetails, error) {
	u := fmt.Sprintf("%s/matches/%d", c.baseURL, matchID)
	return doRequest[MatchDetails](ctx, c, "get match details", u)
}

func (c *OpenDotaClient) GetPlayerData(ctx context.Context, accountID int64) (*PlayerData, error) {
	u := fmt.Sprintf("%s/players/%d", c.baseURL, accountID)
	return doRequest[PlayerData](ctx, c, "get player data", u)
}

func (c *OpenDotaClient) GetPlayerMatches(ctx context.Context, accountID int64, limit int) ([]PlayerRecentMatch, error) {
	u := fmt.Sprintf("%s/players/%d/matches?limit=%d", c.baseURL, accountID, limit)
	return doList[PlayerRecentMatch](ctx, c, "get player matches", u)
}

func (c *OpenDotaClient) GetPlayerWinLoss(ctx context.Context, accountID int64) (*WinLoss, error) {
	u := fmt.Sprintf("%s/players/%d/wl", c.baseURL, accountID)
	return doRequest[WinLoss](ctx, c, "get player win/loss", u)
}

func (c *OpenDotaClient) GetHeroStats(ctx context.Context) ([]HeroStats, error) {
	return doList[HeroStats](ctx, c, "get hero stats", c.baseURL+"/heroStats")
}

func (c *OpenDotaClient) GetProTeams(ctx context.Context) ([]Team, error) {
	return doList[Team](ctx, c, "get pro teams", c.baseURL+"/teams")
}

func (c *OpenDotaClient) GetTeamData(ctx context.Context, teamID int64) (*Team, error) {
	u := fmt.Sprintf("%s/teams/%d", c.baseURL, teamID)
	return doRequest[Team](ctx, c, "get team data", u)
}

func (c *OpenDotaClient) GetTeamPlayers(ctx context.Context, teamID int64) ([]TeamPlayer, error) {
	u := fmt.Sprintf("%s/teams/%d/players", c.baseURL, teamID)
	return doList[TeamPlayer](ctx, c, "get team players", u)
}

func (c *OpenDotaClient) GetTeamMatches(ctx context.Context, teamID int64, limit int) ([]TeamMatch, error) {
	u := fmt.Sprintf("%s/teams/%d/matches?limit=%d", c.baseURL, teamID, limit)
	return doList[TeamMatch](ctx, c, "get team matches", u)
}

func (c *OpenDotaClient) GetTeamHeroes(ctx context.Context, teamID int64) ([]TeamHero, error) {
	u := fmt.Sprintf("%s/teams/%d/heroes", c.baseURL, teamID)
	return doList[TeamHero](ctx, c, "get team heroes", u)
}

func doList[T any](ctx context.Context, client *OpenDotaClient, op, url string) ([]T, error) {
	result, err := doRequest[[]T](ctx, client, op, url)
	if err != nil {
		return nil, err
	}
	return *result, nil
}

func doRequest[T any](ctx context.Context, client *OpenDotaClient, op, url string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, &FetchError{Op: op, Err: err}
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, &FetchError{Op: op, Err: err}
		}
	}

	client.updateRateLimit(resp)

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, &FetchError{Op: op, Status: resp.StatusCode()}
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, &FetchError{Op: op, Err: err}
	}
	return &result, nil
}
