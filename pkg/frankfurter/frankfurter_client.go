package frankfurter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const DefaultBaseURL = "https://api.frankfurter.app"

var ErrUnsupportedCurrency = errors.New("unsupported currency")

// currencies published by the ECB reference rates
var supportedCurrencies = map[string]bool{
	"AUD": true, "BGN": true, "BRL": true, "CAD": true, "CHF": true, "CNY": true,
	"CZK": true, "DKK": true, "EUR": true, "GBP": true, "HKD": true, "HUF": true,
	"IDR": true, "ILS": true, "INR": true, "ISK": true, "JPY": true, "KRW": true,
	"MXN": true, "MYR": true, "NOK": true, "NZD": true, "PHP": true, "PLN": true,
	"RON": true, "SEK": true, "SGD": true, "THB": true, "TRY": true, "USD": true,
	"ZAR": true,
}

func IsSupported(currency string) bool {
	return supportedCurrencies[strings.ToUpper(currency)]
}

type Rate struct {
	Date time.Time
	Rate decimal.Decimal
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

type timeSeriesResponse struct {
	Base  string                                `json:"base"`
	Rates map[string]map[string]decimal.Decimal `json:"rates"`
}

// GetRates returns the daily from->to rates published between start and end.
// Weekends and ECB holidays have no entry.
func (c Client) GetRates(ctx context.Context, from, to string, start, end time.Time) ([]Rate, error) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)
	if !IsSupported(from) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCurrency, from)
	}
	if !IsSupported(to) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCurrency, to)
	}

	url := fmt.Sprintf(
		"%s/%s..%s?from=%s&to=%s",
		c.BaseURL,
		start.Format(time.DateOnly),
		end.Format(time.DateOnly),
		from,
		to,
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	response, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to request %s rates: %w", from, err)
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode == http.StatusNotFound || response.StatusCode == http.StatusUnprocessableEntity {
		return nil, fmt.Errorf("%w: %s (%s)", ErrUnsupportedCurrency, from, string(responseBytes))
	}
	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	responseBody := timeSeriesResponse{}
	err = json.Unmarshal(responseBytes, &responseBody)
	if err != nil {
		return nil, fmt.Errorf("failed to decode rates response: %w", err)
	}

	out := []Rate{}
	for dateStr, rates := range responseBody.Rates {
		rate, ok := rates[to]
		if !ok {
			continue
		}
		date, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse rate date %s: %w", dateStr, err)
		}
		out = append(out, Rate{
			Date: date,
			Rate: rate,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})

	return out, nil
}
