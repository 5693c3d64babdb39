package repository

import (
	"context"
	"errors"
	"net/http"
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/util"
	"strings"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/shopspring/decimal"
)

type PriceBar struct {
	Date  time.Time
	Close decimal.Decimal
}

// PriceBarSource fetches daily closing prices for [start, end].
type PriceBarSource interface {
	GetDailyCloses(ctx context.Context, ticker string, start, end time.Time) ([]PriceBar, error)
}

type YahooRepository interface {
	PriceBarSource
}

type yahooRepositoryHandler struct {
	Client chart.Client
}

func NewYahooRepository() YahooRepository {
	return yahooRepositoryHandler{
		Client: chart.Client{B: finance.GetBackend(finance.YFinBackend)},
	}
}

func (h yahooRepositoryHandler) GetDailyCloses(ctx context.Context, ticker string, start, end time.Time) ([]PriceBar, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := util.TruncateToDate(start)
	// the chart api treats end as exclusive
	e := util.TruncateToDate(end).AddDate(0, 0, 1)
	params := &chart.Params{
		Start:    datetime.New(&s),
		End:      datetime.New(&e),
		Symbol:   ticker,
		Interval: datetime.OneDay,
	}
	params.Context = &ctx
	iter := h.Client.Get(params)
	if err := iter.Err(); err != nil {
		return nil, domain.UpstreamFetchError{
			Source:      "yahoo",
			Key:         ticker,
			RateLimited: isRateLimited(err),
			Err:         err,
		}
	}
	loc := exchangeLocation(iter.Meta())

	out := []PriceBar{}
	for iter.Next() {
		bar := iter.Bar()
		if bar.Close.IsZero() {
			continue
		}
		date := barDate(bar.Timestamp, loc)
		if date.Before(s) || !date.Before(e) {
			continue
		}
		out = append(out, PriceBar{
			Date:  date,
			Close: bar.Close,
		})
	}

	return out, nil
}

// exchangeLocation is the zone daily bar timestamps are anchored in. Yahoo
// stamps a session with its local open, which for exchanges east of UTC
// falls on the previous UTC day.
func exchangeLocation(meta finance.ChartMeta) *time.Location {
	if meta.ExchangeTimezoneName != "" {
		if loc, err := time.LoadLocation(meta.ExchangeTimezoneName); err == nil {
			return loc
		}
	}
	return time.FixedZone(meta.Timezone, meta.Gmtoffset)
}

func barDate(ts int, loc *time.Location) time.Time {
	return util.TruncateToDate(time.Unix(int64(ts), 0).In(loc))
}

func isRateLimited(err error) bool {
	remoteErr := &finance.RemoteError{}
	if errors.As(err, &remoteErr) && remoteErr.StatusCode == http.StatusTooManyRequests {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") || strings.Contains(msg, "too many requests") || strings.Contains(msg, "rate limit")
}
