// Package geoip resolves client addresses to geographic records via the
// ip-api.com JSON endpoint. The resolver is best-effort: any failure,
// including timeouts and private addresses, yields the default record.
package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"gavel/internal/domain/geo"
	"gavel/internal/shared/config"
	"gavel/internal/shared/logger"
)

const (
	defaultEndpoint = "http://ip-api.com/json"
	defaultTimeout  = 5 * time.Second
	// Maximum response body size for the lookup API (64KB)
	maxResponseSize = 64 << 10
)

// ipAPIResponse mirrors the fields requested from ip-api.com.
type ipAPIResponse struct {
	Status     string `json:"status"`
	Country    string `json:"country"`
	RegionName string `json:"regionName"`
	City       string `json:"city"`
	ISP        string `json:"isp"`
}

// IPAPIResolver implements geo.Resolver against ip-api.com.
type IPAPIResolver struct {
	endpoint   string
	httpClient *http.Client
	logger     logger.Interface
}

var _ geo.Resolver = (*IPAPIResolver)(nil)

func NewIPAPIResolver(cfg config.GeoIPConfig, logger logger.Interface) *IPAPIResolver {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	return &IPAPIResolver{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Resolve maps an IP to a geo.Record. It never returns an error: the lookup
// is an enrichment step and must not fail the caller. The client timeout
// bounds tail latency so a slow upstream degrades to defaults, not to
// slowness.
func (r *IPAPIResolver) Resolve(ctx context.Context, ip string) geo.Record {
	if ip == "" {
		return geo.DefaultRecord()
	}

	record, err := r.lookup(ctx, ip)
	if err != nil {
		r.logger.Warnw("geo lookup failed, using defaults", "ip", ip, "error", err)
		return geo.DefaultRecord()
	}
	return record
}

func (r *IPAPIResolver) lookup(ctx context.Context, ip string) (geo.Record, error) {
	lookupURL := fmt.Sprintf("%s/%s?fields=status,country,regionName,city,isp", r.endpoint, url.PathEscape(ip))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return geo.Record{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return geo.Record{}, fmt.Errorf("lookup request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return geo.Record{}, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return geo.Record{}, fmt.Errorf("failed to read response: %w", err)
	}

	var apiResp ipAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return geo.Record{}, fmt.Errorf("failed to decode response: %w", err)
	}

	// ip-api returns status "fail" for reserved and private ranges.
	if apiResp.Status != "success" {
		return geo.Record{}, fmt.Errorf("lookup unsuccessful for %s", ip)
	}

	return geo.Record{
		Country: apiResp.Country,
		Region:  apiResp.RegionName,
		City:    apiResp.City,
		ISP:     apiResp.ISP,
	}.Normalized(), nil
}
