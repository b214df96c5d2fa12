package ddragon

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"league-threats/internal/config"

	"github.com/valyala/fasthttp"
)

// Client talks to Riot's public Data Dragon CDN. Data Dragon is unauthenticated
// and versioned by game patch; callers pass the patch version explicitly so a
// whole sync reads one consistent snapshot.
type Client struct {
	baseURL string
	client  *fasthttp.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.DDragonBaseURL,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

// Versions returns known patch versions, newest first.
func (c *Client) Versions(ctx context.Context) ([]string, error) {
	u := fmt.Sprintf("%s/api/versions.json", c.baseURL)
	out, err := doRequest[[]string](ctx, c, u)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// ChampionIndex returns the champion.json roster: every champion's identity,
// role tags and base stats, but no spell data.
func (c *Client) ChampionIndex(ctx context.Context, version, locale string) (*ChampionIndexResponse, error) {
	u := fmt.Sprintf("%s/cdn/%s/data/%s/champion.json", c.baseURL, version, locale)
	return doRequest[ChampionIndexResponse](ctx, c, u)
}

// Champion returns the per-champion detail file including spells with
// per-rank cooldowns and the passive.
func (c *Client) Champion(ctx context.Context, version, locale, id string) (*ChampionDetailResponse, error) {
	u := fmt.Sprintf("%s/cdn/%s/data/%s/champion/%s.json", c.baseURL, version, locale, url.PathEscape(id))
	return doRequest[ChampionDetailResponse](ctx, c, u)
}

func doRequest[T any](ctx context.Context, client *Client, url string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("ddragon error: %d", resp.StatusCode())
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}
