package yahoo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultBaseURL = "https://query2.finance.yahoo.com"

var (
	ErrNotFound    = errors.New("symbol not found")
	ErrRateLimited = errors.New("rate limited")
)

// RecommendationTrend is the analyst count breakdown for one period. Period
// "0m" is the current month, "-1m" the previous one.
type RecommendationTrend struct {
	Period     string `json:"period"`
	StrongBuy  int32  `json:"strongBuy"`
	Buy        int32  `json:"buy"`
	Hold       int32  `json:"hold"`
	Sell       int32  `json:"sell"`
	StrongSell int32  `json:"strongSell"`
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			RecommendationTrend *struct {
				Trend []RecommendationTrend `json:"trend"`
			} `json:"recommendationTrend"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

// GetRecommendationTrend returns the current month's analyst counts for
// symbol, or nil when the symbol has no analyst coverage.
func (c Client) GetRecommendationTrend(ctx context.Context, symbol string) (*RecommendationTrend, error) {
	endpoint := fmt.Sprintf(
		"%s/v10/finance/quoteSummary/%s?modules=recommendationTrend",
		c.BaseURL,
		url.PathEscape(symbol),
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "Mozilla/5.0")

	response, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to request recommendations for %s: %w", symbol, err)
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	switch response.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, symbol)
	case http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: %s", ErrRateLimited, string(responseBytes))
	default:
		return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	responseBody := quoteSummaryResponse{}
	err = json.Unmarshal(responseBytes, &responseBody)
	if err != nil {
		return nil, fmt.Errorf("failed to decode quote summary response: %w", err)
	}
	if e := responseBody.QuoteSummary.Error; e != nil {
		if e.Code == "Not Found" {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, symbol)
		}
		return nil, fmt.Errorf("quote summary error %s: %s", e.Code, e.Description)
	}

	for _, result := range responseBody.QuoteSummary.Result {
		if result.RecommendationTrend == nil {
			continue
		}
		for _, trend := range result.RecommendationTrend.Trend {
			if trend.Period == "0m" {
				t := trend
				return &t, nil
			}
		}
	}

	return nil, nil
}
