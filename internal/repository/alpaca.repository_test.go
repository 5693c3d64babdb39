package repository

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/util"
	"strings"
	"testing"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const alpacaBars = `[
	{"t":"2024-01-02T05:00:00Z","o":187.15,"h":188.44,"l":183.89,"c":185.64,"v":82488700,"n":1009074,"vw":185.9465},
	{"t":"2024-01-03T05:00:00Z","o":184.22,"h":185.88,"l":183.43,"c":184.25,"v":58414500,"n":656956,"vw":184.3226},
	{"t":"2024-01-04T05:00:00Z","o":182.15,"h":183.09,"l":180.88,"c":181.91,"v":71983600,"n":712850,"vw":181.9932}
]`

func newTestAlpacaRepository(t *testing.T, status int) alpacaRepositoryHandler {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			w.WriteHeader(status)
			w.Write([]byte(`{"message":"forbidden"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		// single and multi symbol endpoints
		if strings.HasSuffix(r.URL.Path, "/v2/stocks/bars") {
			w.Write([]byte(`{"bars":{"AAPL":` + alpacaBars + `},"next_page_token":null}`))
			return
		}
		w.Write([]byte(`{"symbol":"AAPL","bars":` + alpacaBars + `,"next_page_token":null}`))
	}))
	t.Cleanup(server.Close)

	return alpacaRepositoryHandler{
		MdClient: marketdata.NewClient(marketdata.ClientOpts{
			BaseURL:    server.URL,
			APIKey:     "key",
			APISecret:  "secret",
			RetryLimit: 1,
		}),
	}
}

func Test_alpacaRepositoryHandler_GetDailyCloses(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps bars up to end", func(t *testing.T) {
		handler := newTestAlpacaRepository(t, http.StatusOK)
		bars, err := handler.GetDailyCloses(ctx, "AAPL", util.NewDate(2024, 1, 2), util.NewDate(2024, 1, 3))
		require.NoError(t, err)
		require.Len(t, bars, 2)
		require.Equal(t, util.NewDate(2024, 1, 2), bars[0].Date)
		require.True(t, decimal.NewFromFloat(185.64).Equal(bars[0].Close))
		require.Equal(t, util.NewDate(2024, 1, 3), bars[1].Date)
	})

	t.Run("wraps upstream failures", func(t *testing.T) {
		handler := newTestAlpacaRepository(t, http.StatusForbidden)
		_, err := handler.GetDailyCloses(ctx, "AAPL", util.NewDate(2024, 1, 2), util.NewDate(2024, 1, 4))
		require.Error(t, err)
		var upstreamErr domain.UpstreamFetchError
		require.True(t, errors.As(err, &upstreamErr))
		require.Equal(t, "alpaca", upstreamErr.Source)
		require.Equal(t, "AAPL", upstreamErr.Key)
	})

	t.Run("cancelled context skips the call", func(t *testing.T) {
		handler := newTestAlpacaRepository(t, http.StatusOK)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := handler.GetDailyCloses(cancelled, "AAPL", time.Now(), time.Now())
		require.ErrorIs(t, err, context.Canceled)
	})
}
