package l2_service

import (
	"context"
	"portfoliotracker/internal/domain"
	mock_repository "portfoliotracker/internal/repository/mocks"
	mock_l1_service "portfoliotracker/internal/service/l1/mocks"
	"portfoliotracker/internal/util"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type benchmarkMocks struct {
	taxLotRepository    *mock_repository.MockTaxLotRepository
	cacheRepository     *mock_repository.MockBenchmarkTimelineCacheRepository
	priceService        *mock_l1_service.MockBenchmarkPriceService
	exchangeRateService *mock_l1_service.MockExchangeRateService
}

func newBenchmarkHandler(ctrl *gomock.Controller, today time.Time) (benchmarkServiceHandler, benchmarkMocks) {
	m := benchmarkMocks{
		taxLotRepository:    mock_repository.NewMockTaxLotRepository(ctrl),
		cacheRepository:     mock_repository.NewMockBenchmarkTimelineCacheRepository(ctrl),
		priceService:        mock_l1_service.NewMockBenchmarkPriceService(ctrl),
		exchangeRateService: mock_l1_service.NewMockExchangeRateService(ctrl),
	}
	return benchmarkServiceHandler{
		TaxLotRepository:                 m.taxLotRepository,
		BenchmarkTimelineCacheRepository: m.cacheRepository,
		BenchmarkPriceService:            m.priceService,
		ExchangeRateService:              m.exchangeRateService,
		LookbackDays:                     domain.DefaultLookbackDays,
		StaleWindowDays:                  7,
		today: func() time.Time {
			return today
		},
	}, m
}

func TestBenchmarkService_ComputeBenchmarkTimeline(t *testing.T) {
	ctx := context.Background()

	t.Run("computes only dates missing from the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, m := newBenchmarkHandler(ctrl, util.NewDate(2024, 6, 28))
		start := util.NewDate(2024, 6, 10)
		end := util.NewDate(2024, 6, 14)

		lot := newLot("EXS1", "EUR", util.NewDate(2024, 6, 3), 10, 1000)
		prices := domain.NewSnapshot()
		prices.Put("stoxx600", util.NewDate(2024, 6, 3), decimal.NewFromInt(500))
		prices.Put("stoxx600", util.NewDate(2024, 6, 12), decimal.NewFromInt(510))
		prices.Put("stoxx600", util.NewDate(2024, 6, 13), decimal.NewFromInt(520))

		cached := []domain.BenchmarkPoint{
			{Date: util.NewDate(2024, 6, 10), CostBasis: decimal.NewFromInt(1000), BenchmarkValue: decimal.NewFromInt(990), Complete: true},
			{Date: util.NewDate(2024, 6, 11), CostBasis: decimal.NewFromInt(1000), BenchmarkValue: decimal.NewFromInt(995), Complete: true},
		}
		expectedComputed := []domain.BenchmarkPoint{
			{Date: util.NewDate(2024, 6, 12), CostBasis: decimal.NewFromInt(1000), BenchmarkValue: decimal.NewFromInt(1020), Complete: true},
			{Date: util.NewDate(2024, 6, 13), CostBasis: decimal.NewFromInt(1000), BenchmarkValue: decimal.NewFromInt(1040), Complete: true},
			{Date: util.NewDate(2024, 6, 14), CostBasis: decimal.NewFromInt(1000), BenchmarkValue: decimal.NewFromInt(1040), Complete: true},
		}

		m.cacheRepository.EXPECT().List(gomock.Any(), "stoxx600", start, end).Return(cached, nil)
		m.taxLotRepository.EXPECT().ListOpen(gomock.Any()).Return([]domain.Lot{lot}, nil)
		m.priceService.EXPECT().
			EnsurePrices(gomock.Any(), gomock.Any(), util.NewDate(2024, 5, 20), end).
			Return(0, nil)
		m.priceService.EXPECT().
			BulkLoad(gomock.Any(), "stoxx600", util.NewDate(2024, 5, 20), end).
			Return(prices, nil)
		m.cacheRepository.EXPECT().
			Upsert(gomock.Any(), nil, "stoxx600", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, _ string, points []domain.BenchmarkPoint) error {
				require.Equal(t, "", cmp.Diff(expectedComputed, points, decimalComparer))
				return nil
			})

		timeline, err := handler.ComputeBenchmarkTimeline(ctx, "stoxx600", start, end)
		require.NoError(t, err)
		require.Equal(t, "STOXX Europe 600", timeline.Benchmark.Name)
		require.Equal(t, "", cmp.Diff(append(cached, expectedComputed...), timeline.Points, decimalComparer))
	})

	t.Run("fully cached range does no work", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, m := newBenchmarkHandler(ctrl, util.NewDate(2024, 6, 28))
		start := util.NewDate(2024, 6, 10)
		end := util.NewDate(2024, 6, 11)

		cached := []domain.BenchmarkPoint{
			{Date: util.NewDate(2024, 6, 10), CostBasis: decimal.NewFromInt(1000), BenchmarkValue: decimal.NewFromInt(990), Complete: true},
			{Date: util.NewDate(2024, 6, 11), CostBasis: decimal.NewFromInt(1000), BenchmarkValue: decimal.NewFromInt(995), Complete: true},
		}
		m.cacheRepository.EXPECT().List(gomock.Any(), "sp500", start, end).Return(cached, nil)

		timeline, err := handler.ComputeBenchmarkTimeline(ctx, "sp500", start, end)
		require.NoError(t, err)
		require.Len(t, timeline.Points, 2)
	})

	t.Run("trailing window is always recomputed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		today := util.NewDate(2024, 6, 14)
		handler, m := newBenchmarkHandler(ctrl, today)
		start := util.NewDate(2024, 6, 10)

		cached := []domain.BenchmarkPoint{
			{Date: util.NewDate(2024, 6, 10), CostBasis: decimal.Zero, BenchmarkValue: decimal.Zero, Complete: true},
		}
		m.cacheRepository.EXPECT().List(gomock.Any(), "sp500", start, today).Return(cached, nil)
		m.taxLotRepository.EXPECT().ListOpen(gomock.Any()).Return([]domain.Lot{}, nil)
		m.cacheRepository.EXPECT().
			Upsert(gomock.Any(), nil, "sp500", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, _ string, points []domain.BenchmarkPoint) error {
				require.Len(t, points, 5)
				return nil
			})

		timeline, err := handler.ComputeBenchmarkTimeline(ctx, "sp500", start, today)
		require.NoError(t, err)
		require.Len(t, timeline.Points, 5)
		for _, p := range timeline.Points {
			require.True(t, p.BenchmarkValue.IsZero())
			require.True(t, p.Complete)
		}
	})

	t.Run("usd benchmark converts through fx and skips days without data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, m := newBenchmarkHandler(ctrl, util.NewDate(2024, 12, 31))
		start := util.NewDate(2024, 6, 3)
		end := util.NewDate(2024, 6, 7)

		// bought on wednesday, so monday and tuesday hold nothing
		lot := newLot("AAPL", "USD", util.NewDate(2024, 6, 5), 1, 900)
		prices := domain.NewSnapshot()
		prices.Put("sp500", util.NewDate(2024, 6, 5), decimal.NewFromInt(5000))
		prices.Put("sp500", util.NewDate(2024, 6, 6), decimal.NewFromInt(5500))
		rates := domain.NewSnapshot()
		rates.Put("USD", util.NewDate(2024, 6, 5), decimal.RequireFromString("0.9"))
		rates.Put("USD", util.NewDate(2024, 6, 6), decimal.RequireFromString("0.9"))

		m.cacheRepository.EXPECT().List(gomock.Any(), "sp500", start, end).Return([]domain.BenchmarkPoint{}, nil)
		m.taxLotRepository.EXPECT().ListOpen(gomock.Any()).Return([]domain.Lot{lot}, nil)
		m.priceService.EXPECT().EnsurePrices(gomock.Any(), gomock.Any(), util.NewDate(2024, 5, 20), end).Return(0, nil)
		m.exchangeRateService.EXPECT().EnsureRates(gomock.Any(), []string{"USD"}, util.NewDate(2024, 5, 20), end).Return(nil)
		m.priceService.EXPECT().BulkLoad(gomock.Any(), "sp500", gomock.Any(), end).Return(prices, nil)
		m.exchangeRateService.EXPECT().BulkLoad(gomock.Any(), []string{"USD"}, gomock.Any(), end).Return(rates, nil)
		m.cacheRepository.EXPECT().
			Upsert(gomock.Any(), nil, "sp500", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, _ string, points []domain.BenchmarkPoint) error {
				require.Len(t, points, 5)
				return nil
			})

		timeline, err := handler.ComputeBenchmarkTimeline(ctx, "sp500", start, end)
		require.NoError(t, err)
		require.Len(t, timeline.Points, 5)

		require.True(t, timeline.Points[0].CostBasis.IsZero())
		require.True(t, timeline.Points[1].BenchmarkValue.IsZero())
		// 900 EUR -> 1000 USD -> 0.2 shares
		require.True(t, timeline.Points[2].BenchmarkValue.Equal(decimal.NewFromInt(900)))
		require.True(t, timeline.Points[3].BenchmarkValue.Equal(decimal.NewFromInt(990)))
		require.True(t, timeline.Points[4].BenchmarkValue.Equal(decimal.NewFromInt(990)))
		require.True(t, timeline.Points[4].CostBasis.Equal(decimal.NewFromInt(900)))
	})

	t.Run("incomplete days are returned but not persisted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, m := newBenchmarkHandler(ctrl, util.NewDate(2024, 12, 31))
		start := util.NewDate(2024, 6, 3)
		end := util.NewDate(2024, 6, 4)

		lot := newLot("AAPL", "EUR", util.NewDate(2024, 6, 3), 1, 1000)
		prices := domain.NewSnapshot()
		prices.Put("sp500", util.NewDate(2024, 6, 3), decimal.NewFromInt(5000))
		rates := domain.NewSnapshot()
		rates.Put("USD", util.NewDate(2024, 6, 3), decimal.NewFromInt(1))
		// 2024-06-04 has a price but the rate expired
		prices.Put("sp500", util.NewDate(2024, 6, 4), decimal.NewFromInt(5000))
		handler.LookbackDays = 0

		m.cacheRepository.EXPECT().List(gomock.Any(), "sp500", start, end).Return([]domain.BenchmarkPoint{}, nil)
		m.taxLotRepository.EXPECT().ListOpen(gomock.Any()).Return([]domain.Lot{lot}, nil)
		m.priceService.EXPECT().EnsurePrices(gomock.Any(), gomock.Any(), gomock.Any(), end).Return(0, nil)
		m.exchangeRateService.EXPECT().EnsureRates(gomock.Any(), gomock.Any(), gomock.Any(), end).Return(nil)
		m.priceService.EXPECT().BulkLoad(gomock.Any(), "sp500", gomock.Any(), end).Return(prices, nil)
		m.exchangeRateService.EXPECT().BulkLoad(gomock.Any(), gomock.Any(), gomock.Any(), end).Return(rates, nil)
		m.cacheRepository.EXPECT().
			Upsert(gomock.Any(), nil, "sp500", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, _ string, points []domain.BenchmarkPoint) error {
				require.Len(t, points, 1)
				require.Equal(t, start, points[0].Date)
				return nil
			})

		timeline, err := handler.ComputeBenchmarkTimeline(ctx, "sp500", start, end)
		require.NoError(t, err)
		require.Len(t, timeline.Points, 2)
		require.False(t, timeline.Points[1].Complete)
	})

	t.Run("unknown benchmark", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, _ := newBenchmarkHandler(ctrl, util.NewDate(2024, 12, 31))
		_, err := handler.ComputeBenchmarkTimeline(ctx, "ftse", util.NewDate(2024, 1, 1), util.NewDate(2024, 2, 1))
		require.ErrorIs(t, err, domain.ErrUnknownBenchmark)
	})
}
