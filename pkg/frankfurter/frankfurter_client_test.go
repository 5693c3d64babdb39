package frankfurter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jarcoal/httpmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newMockedClient(t *testing.T) *Client {
	c := NewClient("", 5*time.Second)
	httpmock.ActivateNonDefault(c.HTTPClient)
	t.Cleanup(httpmock.DeactivateAndReset)
	return c
}

func TestClient_GetRates(t *testing.T) {
	start := time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC)

	t.Run("parses time series", func(t *testing.T) {
		c := newMockedClient(t)
		httpmock.RegisterResponder("GET", "https://api.frankfurter.app/2023-01-05..2023-01-09?from=USD&to=EUR",
			httpmock.NewStringResponder(200, `{"amount":1.0,"base":"USD","start_date":"2023-01-05","end_date":"2023-01-09","rates":{"2023-01-09":{"EUR":0.9321},"2023-01-05":{"EUR":0.9467},"2023-01-06":{"EUR":0.9434}}}`))

		rates, err := c.GetRates(context.Background(), "usd", "EUR", start, end)
		require.NoError(t, err)
		require.Equal(t, "", cmp.Diff([]Rate{
			{Date: start, Rate: decimal.RequireFromString("0.9467")},
			{Date: time.Date(2023, 1, 6, 0, 0, 0, 0, time.UTC), Rate: decimal.RequireFromString("0.9434")},
			{Date: end, Rate: decimal.RequireFromString("0.9321")},
		}, rates, cmp.Comparer(func(a, b decimal.Decimal) bool {
			return a.Equal(b)
		})))
		require.Equal(t, 1, httpmock.GetTotalCallCount())
	})

	t.Run("unsupported currency never hits the network", func(t *testing.T) {
		c := newMockedClient(t)
		_, err := c.GetRates(context.Background(), "ARS", "EUR", start, end)
		require.True(t, errors.Is(err, ErrUnsupportedCurrency))
		require.Equal(t, 0, httpmock.GetTotalCallCount())
	})

	t.Run("not found is unsupported", func(t *testing.T) {
		c := newMockedClient(t)
		httpmock.RegisterResponder("GET", "https://api.frankfurter.app/2023-01-05..2023-01-09?from=ISK&to=EUR",
			httpmock.NewStringResponder(404, `{"message":"not found"}`))
		_, err := c.GetRates(context.Background(), "ISK", "EUR", start, end)
		require.ErrorIs(t, err, ErrUnsupportedCurrency)
	})

	t.Run("server error", func(t *testing.T) {
		c := newMockedClient(t)
		httpmock.RegisterResponder("GET", "https://api.frankfurter.app/2023-01-05..2023-01-09?from=USD&to=EUR",
			httpmock.NewStringResponder(503, `unavailable`))
		_, err := c.GetRates(context.Background(), "USD", "EUR", start, end)
		require.Error(t, err)
		require.False(t, errors.Is(err, ErrUnsupportedCurrency))
	})
}
