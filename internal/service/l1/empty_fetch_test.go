package l1_service

import (
	"context"
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/repository"
	mock_repository "portfoliotracker/internal/repository/mocks"
	"portfoliotracker/internal/util"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEmptyFetchCache(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	cache := newEmptyFetchCache(time.Hour, func() time.Time { return now })

	cache.record("USD", util.NewDate(2024, 1, 1), util.NewDate(2024, 1, 3), []time.Time{util.NewDate(2024, 1, 2)})
	require.Equal(t, []time.Time{util.NewDate(2024, 1, 1), util.NewDate(2024, 1, 3)}, cache.skipped("USD", util.NewDate(2024, 1, 1), util.NewDate(2024, 1, 5)))
	require.Empty(t, cache.skipped("GBP", util.NewDate(2024, 1, 1), util.NewDate(2024, 1, 5)))

	now = now.Add(2 * time.Hour)
	require.Empty(t, cache.skipped("USD", util.NewDate(2024, 1, 1), util.NewDate(2024, 1, 5)))

	var disabled *emptyFetchCache
	disabled.record("USD", util.NewDate(2024, 1, 1), util.NewDate(2024, 1, 3), nil)
	require.Empty(t, disabled.skipped("USD", util.NewDate(2024, 1, 1), util.NewDate(2024, 1, 3)))
}

func TestPriceService_EnsurePrices_emptyDays(t *testing.T) {
	ctx := context.Background()
	start := util.NewDate(2024, 1, 1)
	end := util.NewDate(2024, 1, 5)
	security := domain.Security{SecurityID: uuid.New(), Symbol: "AAPL", Exchange: "NASDAQ", Currency: "USD"}

	t.Run("holiday at the head is fetched once per ttl", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketPriceRepository := mock_repository.NewMockMarketPriceRepository(ctrl)
		tickerMappingRepository := mock_repository.NewMockTickerMappingRepository(ctrl)
		yahooRepository := mock_repository.NewMockYahooRepository(ctrl)
		now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
		handler := priceServiceHandler{
			MarketPriceRepository:   marketPriceRepository,
			TickerMappingRepository: tickerMappingRepository,
			YahooRepository:         yahooRepository,
			EmptyFetches:            newEmptyFetchCache(emptyFetchTTL, func() time.Time { return now }),
		}
		stored := []time.Time{util.NewDate(2024, 1, 2), util.NewDate(2024, 1, 3), util.NewDate(2024, 1, 4), util.NewDate(2024, 1, 5)}

		tickerMappingRepository.EXPECT().Get(gomock.Any(), "AAPL", "NASDAQ").Return(nil, nil).Times(2)
		gomock.InOrder(
			marketPriceRepository.EXPECT().ListDates(gomock.Any(), security.SecurityID, start, end).Return(nil, nil),
			yahooRepository.EXPECT().
				GetDailyCloses(gomock.Any(), "AAPL", start, end).
				Return([]repository.PriceBar{
					{Date: util.NewDate(2024, 1, 2), Close: decimal.NewFromInt(185)},
					{Date: util.NewDate(2024, 1, 3), Close: decimal.NewFromInt(184)},
					{Date: util.NewDate(2024, 1, 4), Close: decimal.NewFromInt(181)},
					{Date: util.NewDate(2024, 1, 5), Close: decimal.NewFromInt(181)},
				}, nil),
			marketPriceRepository.EXPECT().Add(gomock.Any(), nil, gomock.Any()).Return(nil),
			// remembered, no fetch
			marketPriceRepository.EXPECT().ListDates(gomock.Any(), security.SecurityID, start, end).Return(stored, nil),
			// expired, fetched again
			marketPriceRepository.EXPECT().ListDates(gomock.Any(), security.SecurityID, start, end).Return(stored, nil),
			yahooRepository.EXPECT().
				GetDailyCloses(gomock.Any(), "AAPL", start, start).
				Return([]repository.PriceBar{}, nil),
		)

		added, err := handler.EnsurePrices(ctx, security, start, end)
		require.NoError(t, err)
		require.Equal(t, 4, added)

		added, err = handler.EnsurePrices(ctx, security, start, end)
		require.NoError(t, err)
		require.Equal(t, 0, added)

		now = now.Add(emptyFetchTTL + time.Hour)
		added, err = handler.EnsurePrices(ctx, security, start, end)
		require.NoError(t, err)
		require.Equal(t, 0, added)
	})

	t.Run("today is not fetched before the close", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketPriceRepository := mock_repository.NewMockMarketPriceRepository(ctrl)
		tickerMappingRepository := mock_repository.NewMockTickerMappingRepository(ctrl)
		yahooRepository := mock_repository.NewMockYahooRepository(ctrl)
		now := time.Date(2024, 1, 5, 15, 0, 0, 0, time.UTC)
		handler := priceServiceHandler{
			MarketPriceRepository:   marketPriceRepository,
			TickerMappingRepository: tickerMappingRepository,
			YahooRepository:         yahooRepository,
			EmptyFetches:            newEmptyFetchCache(emptyFetchTTL, func() time.Time { return now }),
		}
		stored := []time.Time{util.NewDate(2024, 1, 1), util.NewDate(2024, 1, 2), util.NewDate(2024, 1, 3), util.NewDate(2024, 1, 4)}

		marketPriceRepository.EXPECT().ListDates(gomock.Any(), security.SecurityID, start, end).Return(stored, nil).Times(2)
		tickerMappingRepository.EXPECT().Get(gomock.Any(), "AAPL", "NASDAQ").Return(nil, nil)
		yahooRepository.EXPECT().
			GetDailyCloses(gomock.Any(), "AAPL", end, end).
			Return([]repository.PriceBar{{Date: end, Close: decimal.NewFromInt(181)}}, nil)
		marketPriceRepository.EXPECT().Add(gomock.Any(), nil, gomock.Any()).Return(nil)

		added, err := handler.EnsurePrices(ctx, security, start, end)
		require.NoError(t, err)
		require.Equal(t, 0, added)

		now = time.Date(2024, 1, 5, 22, 30, 0, 0, time.UTC)
		added, err = handler.EnsurePrices(ctx, security, start, end)
		require.NoError(t, err)
		require.Equal(t, 1, added)
	})
}

func TestExchangeRateService_EnsureRates_emptyDays(t *testing.T) {
	ctx := context.Background()
	// good friday 2024 has no ecb fixing
	start := util.NewDate(2024, 3, 25)
	end := util.NewDate(2024, 3, 29)

	ctrl := gomock.NewController(t)
	exchangeRateRepository := mock_repository.NewMockExchangeRateRepository(ctrl)
	frankfurterRepository := mock_repository.NewMockFrankfurterRepository(ctrl)
	handler := exchangeRateServiceHandler{
		ExchangeRateRepository: exchangeRateRepository,
		FrankfurterRepository:  frankfurterRepository,
		LookbackDays:           14,
		EmptyFetches: newEmptyFetchCache(emptyFetchTTL, func() time.Time {
			return time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)
		}),
	}
	stored := util.BusinessDays(start, util.NewDate(2024, 3, 28))

	exchangeRateRepository.EXPECT().ListDates(gomock.Any(), "USD", start, end).Return(stored, nil).Times(2)
	frankfurterRepository.EXPECT().
		GetRates(gomock.Any(), "USD", end, end).
		Return([]domain.RateObservation{}, nil)
	exchangeRateRepository.EXPECT().Add(gomock.Any(), nil, gomock.Any()).Return(nil)

	require.NoError(t, handler.EnsureRates(ctx, []string{"USD"}, start, end))
	require.NoError(t, handler.EnsureRates(ctx, []string{"USD"}, start, end))
}
