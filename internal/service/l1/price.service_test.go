package l1_service

import (
	"context"
	"errors"
	"portfoliotracker/internal/db/models/postgres/public/model"
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

func TestYahooTickerCandidates(t *testing.T) {
	require.Equal(t, []string{"SAP.DE", "SAP.F", "SAP"}, YahooTickerCandidates("SAP", "IBIS"))
	require.Equal(t, []string{"VUSA.L", "VUSA"}, YahooTickerCandidates("VUSA", "LSEETF"))
	require.Equal(t, []string{"AAPL"}, YahooTickerCandidates("AAPL", "NASDAQ"))
	require.Equal(t, []string{"BRK-B"}, YahooTickerCandidates("BRK B", "NYSE"))
	require.Equal(t, "ASML.AS", YahooTicker("asml", "aeb"))
	require.True(t, IsUSExchange("nyse"))
	require.False(t, IsUSExchange("IBIS"))
}

func TestPriceService_EnsurePrices(t *testing.T) {
	ctx := context.Background()
	start := util.NewDate(2024, 1, 1)
	end := util.NewDate(2024, 1, 5)

	newHandler := func(ctrl *gomock.Controller) (priceServiceHandler, *mock_repository.MockMarketPriceRepository, *mock_repository.MockTickerMappingRepository, *mock_repository.MockYahooRepository, *mock_repository.MockAlpacaRepository) {
		marketPriceRepository := mock_repository.NewMockMarketPriceRepository(ctrl)
		tickerMappingRepository := mock_repository.NewMockTickerMappingRepository(ctrl)
		yahooRepository := mock_repository.NewMockYahooRepository(ctrl)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)
		return priceServiceHandler{
			MarketPriceRepository:   marketPriceRepository,
			TickerMappingRepository: tickerMappingRepository,
			YahooRepository:         yahooRepository,
			AlpacaRepository:        alpacaRepository,
		}, marketPriceRepository, tickerMappingRepository, yahooRepository, alpacaRepository
	}

	bars := []repository.PriceBar{
		{Date: util.NewDate(2024, 1, 4), Close: decimal.NewFromInt(100)},
		{Date: util.NewDate(2024, 1, 5), Close: decimal.NewFromInt(101)},
	}

	t.Run("fully cached range does not fetch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, marketPriceRepository, _, _, _ := newHandler(ctrl)
		security := domain.Security{SecurityID: uuid.New(), Symbol: "AAPL", Exchange: "NASDAQ", Currency: "USD"}

		marketPriceRepository.EXPECT().
			ListDates(gomock.Any(), security.SecurityID, start, end).
			Return(util.BusinessDays(start, end), nil)

		added, err := handler.EnsurePrices(ctx, security, start, end)
		require.NoError(t, err)
		require.Equal(t, 0, added)
	})

	t.Run("fetches only the missing tail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, marketPriceRepository, tickerMappingRepository, yahooRepository, _ := newHandler(ctrl)
		security := domain.Security{SecurityID: uuid.New(), Symbol: "AAPL", Exchange: "NASDAQ", Currency: "USD"}

		marketPriceRepository.EXPECT().
			ListDates(gomock.Any(), security.SecurityID, start, end).
			Return([]time.Time{util.NewDate(2024, 1, 1), util.NewDate(2024, 1, 2), util.NewDate(2024, 1, 3)}, nil)
		tickerMappingRepository.EXPECT().
			Get(gomock.Any(), "AAPL", "NASDAQ").
			Return(nil, nil)
		yahooRepository.EXPECT().
			GetDailyCloses(gomock.Any(), "AAPL", util.NewDate(2024, 1, 4), end).
			Return(bars, nil)
		marketPriceRepository.EXPECT().
			Add(gomock.Any(), nil, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, prices []model.MarketPrice) error {
				require.Len(t, prices, 2)
				require.Equal(t, security.SecurityID, prices[0].SecurityID)
				require.Equal(t, "USD", prices[0].Currency)
				require.True(t, prices[1].Price.Equal(decimal.NewFromInt(101)))
				return nil
			})

		added, err := handler.EnsurePrices(ctx, security, start, end)
		require.NoError(t, err)
		require.Equal(t, 2, added)
	})

	t.Run("stored mapping wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, marketPriceRepository, tickerMappingRepository, yahooRepository, _ := newHandler(ctrl)
		security := domain.Security{SecurityID: uuid.New(), Symbol: "EUNL", Exchange: "IBIS", Currency: "EUR"}

		marketPriceRepository.EXPECT().ListDates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		tickerMappingRepository.EXPECT().
			Get(gomock.Any(), "EUNL", "IBIS").
			Return(&model.TickerMapping{YahooTicker: "IWDA.AS", IsActive: true}, nil)
		yahooRepository.EXPECT().
			GetDailyCloses(gomock.Any(), "IWDA.AS", gomock.Any(), gomock.Any()).
			Return(bars, nil)
		marketPriceRepository.EXPECT().Add(gomock.Any(), nil, gomock.Any()).Return(nil)

		added, err := handler.EnsurePrices(ctx, security, start, end)
		require.NoError(t, err)
		require.Equal(t, 2, added)
	})

	t.Run("first variation with data is saved as auto mapping", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, marketPriceRepository, tickerMappingRepository, yahooRepository, _ := newHandler(ctrl)
		security := domain.Security{SecurityID: uuid.New(), Symbol: "SAP", Exchange: "IBIS", Currency: "EUR"}

		marketPriceRepository.EXPECT().ListDates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		tickerMappingRepository.EXPECT().Get(gomock.Any(), "SAP", "IBIS").Return(nil, nil)
		gomock.InOrder(
			yahooRepository.EXPECT().GetDailyCloses(gomock.Any(), "SAP.DE", gomock.Any(), gomock.Any()).Return([]repository.PriceBar{}, nil),
			yahooRepository.EXPECT().GetDailyCloses(gomock.Any(), "SAP.F", gomock.Any(), gomock.Any()).Return(bars, nil),
		)
		tickerMappingRepository.EXPECT().
			Add(gomock.Any(), model.TickerMapping{
				BrokerSymbol:   "SAP",
				BrokerExchange: "IBIS",
				YahooTicker:    "SAP.F",
				Source:         repository.TickerMappingSourceAuto,
				IsActive:       true,
			}).
			Return(nil)
		marketPriceRepository.EXPECT().Add(gomock.Any(), nil, gomock.Any()).Return(nil)

		added, err := handler.EnsurePrices(ctx, security, start, end)
		require.NoError(t, err)
		require.Equal(t, 2, added)
	})

	t.Run("rate limit stops trying variations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, marketPriceRepository, tickerMappingRepository, yahooRepository, _ := newHandler(ctrl)
		security := domain.Security{SecurityID: uuid.New(), Symbol: "SAP", Exchange: "IBIS", Currency: "EUR"}

		marketPriceRepository.EXPECT().ListDates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		tickerMappingRepository.EXPECT().Get(gomock.Any(), "SAP", "IBIS").Return(nil, nil)
		yahooRepository.EXPECT().
			GetDailyCloses(gomock.Any(), "SAP.DE", gomock.Any(), gomock.Any()).
			Return(nil, domain.UpstreamFetchError{Source: "yahoo", Key: "SAP.DE", RateLimited: true, Err: errors.New("429 too many requests")})

		_, err := handler.EnsurePrices(ctx, security, start, end)
		require.Error(t, err)
		var upstream domain.UpstreamFetchError
		require.True(t, errors.As(err, &upstream))
		require.True(t, upstream.RateLimited)
	})

	t.Run("alpaca fallback for us listings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, marketPriceRepository, tickerMappingRepository, yahooRepository, alpacaRepository := newHandler(ctrl)
		security := domain.Security{SecurityID: uuid.New(), Symbol: "MSFT", Exchange: "NASDAQ", Currency: "USD"}

		marketPriceRepository.EXPECT().ListDates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		tickerMappingRepository.EXPECT().Get(gomock.Any(), "MSFT", "NASDAQ").Return(nil, nil)
		yahooRepository.EXPECT().
			GetDailyCloses(gomock.Any(), "MSFT", gomock.Any(), gomock.Any()).
			Return(nil, domain.UpstreamFetchError{Source: "yahoo", Key: "MSFT", Err: errors.New("connection reset")})
		alpacaRepository.EXPECT().
			GetDailyCloses(gomock.Any(), "MSFT", gomock.Any(), gomock.Any()).
			Return(bars, nil)
		marketPriceRepository.EXPECT().Add(gomock.Any(), nil, gomock.Any()).Return(nil)

		added, err := handler.EnsurePrices(ctx, security, start, end)
		require.NoError(t, err)
		require.Equal(t, 2, added)
	})
}
