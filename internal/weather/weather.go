// Package weather fetches the current temperature for the menu bar from an
// Open-Meteo compatible endpoint. Fetches are best effort: failures leave the
// previous reading in place.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Reading is one observation.
type Reading struct {
	Temperature float64
	Unit        string
	Code        int
	FetchedAt   time.Time
}

// String formats the reading for the menu bar, e.g. "☁ 12°C".
func (r Reading) String() string {
	return fmt.Sprintf("%s %d%s", Symbol(r.Code), int(math.Round(r.Temperature)), r.Unit)
}

// Config configures a Provider.
type Config struct {
	Endpoint  string
	Latitude  float64
	Longitude float64
	Refresh   time.Duration
	Timeout   time.Duration
	Client    *http.Client
}

// Provider caches readings for Refresh and shares in-flight requests between
// callers.
type Provider struct {
	cfg    Config
	client *http.Client
	group  singleflight.Group
	now    func() time.Time

	mu      sync.RWMutex
	reading *Reading
	lastErr error
}

// New creates a provider.
func New(cfg Config) *Provider {
	client := cfg.Client
	if client == nil {
		client = &http.Client{}
	}
	return &Provider{cfg: cfg, client: client, now: time.Now}
}

// Cached returns the last successful reading, if any.
func (p *Provider) Cached() (Reading, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.reading == nil {
		return Reading{}, false
	}
	return *p.reading, true
}

// LastError returns the error of the most recent failed fetch, or nil once a
// fetch succeeds.
func (p *Provider) LastError() error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lastErr
}

// Current returns a fresh reading, fetching only when the cached one is older
// than the refresh interval. On failure the stale reading is returned with
// ok reporting whether one exists.
func (p *Provider) Current(ctx context.Context) (Reading, bool) {
	if r, ok := p.Cached(); ok && p.now().Sub(r.FetchedAt) < p.cfg.Refresh {
		return r, true
	}

	v, err, _ := p.group.Do("current", func() (any, error) {
		return p.fetch(ctx)
	})

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.lastErr = err
		if p.reading == nil {
			return Reading{}, false
		}
		return *p.reading, true
	}
	r := v.(Reading)
	p.reading = &r
	p.lastErr = nil
	return r, true
}

type forecast struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		WeatherCode int     `json:"weather_code"`
	} `json:"current"`
	CurrentUnits struct {
		Temperature string `json:"temperature_2m"`
	} `json:"current_units"`
}

func (p *Provider) fetch(ctx context.Context) (Reading, error) {
	if p.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.Timeout)
		defer cancel()
	}

	u, err := url.Parse(p.cfg.Endpoint)
	if err != nil {
		return Reading{}, fmt.Errorf("parse endpoint: %w", err)
	}
	q := u.Query()
	q.Set("latitude", strconv.FormatFloat(p.cfg.Latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(p.cfg.Longitude, 'f', -1, 64))
	q.Set("current", "temperature_2m,weather_code")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Reading{}, fmt.Errorf("build request: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return Reading{}, fmt.Errorf("fetch weather: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Reading{}, fmt.Errorf("fetch weather: unexpected status %s", resp.Status)
	}

	var f forecast
	if err := json.NewDecoder(resp.Body).Decode(&f); err != nil {
		return Reading{}, fmt.Errorf("decode weather: %w", err)
	}

	unit := f.CurrentUnits.Temperature
	if unit == "" {
		unit = "°C"
	}
	return Reading{
		Temperature: f.Current.Temperature,
		Unit:        unit,
		Code:        f.Current.WeatherCode,
		FetchedAt:   p.now(),
	}, nil
}

// Symbol returns a single glyph for a WMO weather code.
func Symbol(code int) string {
	switch {
	case code == 0:
		return "☀"
	case code <= 3:
		return "⛅"
	case code <= 48:
		return "☁"
	case code <= 67, code >= 80 && code <= 82:
		return "☂"
	case code <= 77, code == 85, code == 86:
		return "❄"
	default:
		return "⚡"
	}
}
