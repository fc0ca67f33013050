// Package provider implements the report-provider client.
// The provider answers over JSON HTTP; 404 means "no such company"
// and maps to a nil report, not an error.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"inncheck/internal/domain"
	"inncheck/internal/metrics"

	"go.uber.org/zap"
)

// Client fetches company reports by TIN.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client for the given provider base URL.
func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// GeneralInfo fetches the short report shape.
func (c *Client) GeneralInfo(ctx context.Context, tin int64) (*domain.GeneralInfo, error) {
	var info domain.GeneralInfo
	ok, err := c.get(ctx, "general-info", tin, &info)
	if err != nil || !ok {
		return nil, err
	}
	return &info, nil
}

// LegalEntityInfo fetches the extended report shape.
func (c *Client) LegalEntityInfo(ctx context.Context, tin int64) (*domain.LegalEntityInfo, error) {
	var info domain.LegalEntityInfo
	ok, err := c.get(ctx, "legal-entity-info", tin, &info)
	if err != nil || !ok {
		return nil, err
	}
	return &info, nil
}

// get performs one provider call. It returns false with a nil error
// when the company is unknown.
func (c *Client) get(ctx context.Context, method string, tin int64, out any) (bool, error) {
	url := fmt.Sprintf("%s/api/v1/%s?tin=%d", c.baseURL, method, tin)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.ProviderDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProviderRequests.WithLabelValues(method, "error").Inc()
		return false, fmt.Errorf("report provider request failed: %w", err)
	}
	defer resp.Body.Close()

	metrics.ProviderRequests.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		c.logger.Debug("company not found",
			zap.String("method", method),
			zap.Int64("tin", tin),
		)
		return false, nil
	default:
		return false, fmt.Errorf("report provider returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("failed to decode %s response: %w", method, err)
	}
	return true, nil
}
