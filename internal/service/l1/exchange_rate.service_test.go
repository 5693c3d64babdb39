package l1_service

import (
	"context"
	"portfoliotracker/internal/db/models/postgres/public/model"
	"portfoliotracker/internal/domain"
	mock_repository "portfoliotracker/internal/repository/mocks"
	"portfoliotracker/internal/util"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExchangeRateService_EnsureRates(t *testing.T) {
	ctx := context.Background()
	start := util.NewDate(2024, 3, 1)
	end := util.NewDate(2024, 3, 8)

	t.Run("one request per currency for the missing range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		exchangeRateRepository := mock_repository.NewMockExchangeRateRepository(ctrl)
		frankfurterRepository := mock_repository.NewMockFrankfurterRepository(ctrl)
		handler := exchangeRateServiceHandler{
			ExchangeRateRepository: exchangeRateRepository,
			FrankfurterRepository:  frankfurterRepository,
			LookbackDays:           14,
		}

		exchangeRateRepository.EXPECT().
			ListDates(gomock.Any(), "USD", start, end).
			Return([]time.Time{util.NewDate(2024, 3, 1), util.NewDate(2024, 3, 4)}, nil)
		frankfurterRepository.EXPECT().
			GetRates(gomock.Any(), "USD", util.NewDate(2024, 3, 5), util.NewDate(2024, 3, 8)).
			Return([]domain.RateObservation{
				{FromCurrency: "USD", ToCurrency: "EUR", Date: util.NewDate(2024, 3, 5), Rate: decimal.RequireFromString("0.92")},
				{FromCurrency: "USD", ToCurrency: "EUR", Date: util.NewDate(2024, 3, 6), Rate: decimal.RequireFromString("0.921")},
			}, nil)
		exchangeRateRepository.EXPECT().
			Add(gomock.Any(), nil, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, rates []model.ExchangeRate) error {
				require.Len(t, rates, 2)
				require.Equal(t, "USD", rates[0].FromCurrency)
				require.Equal(t, "EUR", rates[0].ToCurrency)
				return nil
			})

		// EUR and duplicates are dropped
		err := handler.EnsureRates(ctx, []string{"EUR", "usd", "USD"}, start, end)
		require.NoError(t, err)
	})

	t.Run("unsupported currency does not block others", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		exchangeRateRepository := mock_repository.NewMockExchangeRateRepository(ctrl)
		frankfurterRepository := mock_repository.NewMockFrankfurterRepository(ctrl)
		handler := exchangeRateServiceHandler{
			ExchangeRateRepository: exchangeRateRepository,
			FrankfurterRepository:  frankfurterRepository,
			LookbackDays:           14,
		}

		exchangeRateRepository.EXPECT().ListDates(gomock.Any(), "ARS", start, end).Return(nil, nil)
		frankfurterRepository.EXPECT().
			GetRates(gomock.Any(), "ARS", gomock.Any(), gomock.Any()).
			Return(nil, domain.UnsupportedCurrencyError{Currency: "ARS"})
		exchangeRateRepository.EXPECT().ListDates(gomock.Any(), "GBP", start, end).Return(util.BusinessDays(start, end), nil)

		err := handler.EnsureRates(ctx, []string{"GBP", "ARS"}, start, end)
		require.Error(t, err)
		require.True(t, domain.IsUnsupportedCurrency(err))
	})
}

func TestExchangeRateService_ConvertToEUR(t *testing.T) {
	ctx := context.Background()
	date := util.NewDate(2024, 3, 11)

	t.Run("eur is returned unchanged", func(t *testing.T) {
		handler := exchangeRateServiceHandler{LookbackDays: 14}
		out, err := handler.ConvertToEUR(ctx, decimal.NewFromInt(250), "EUR", date)
		require.NoError(t, err)
		require.True(t, out.Equal(decimal.NewFromInt(250)))
	})

	t.Run("forward fills from cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		exchangeRateRepository := mock_repository.NewMockExchangeRateRepository(ctrl)
		handler := exchangeRateServiceHandler{
			ExchangeRateRepository: exchangeRateRepository,
			LookbackDays:           14,
		}

		snapshot := domain.NewSnapshot()
		// friday rate used for monday
		snapshot.Put("USD", util.NewDate(2024, 3, 8), decimal.RequireFromString("0.9"))
		exchangeRateRepository.EXPECT().
			BulkLoad(gomock.Any(), []string{"USD"}, util.NewDate(2024, 2, 26), date).
			Return(snapshot, nil)

		out, err := handler.ConvertToEUR(ctx, decimal.NewFromInt(1000), "USD", date)
		require.NoError(t, err)
		require.Equal(t, "900", out.String())
	})

	t.Run("fetches on miss", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		exchangeRateRepository := mock_repository.NewMockExchangeRateRepository(ctrl)
		frankfurterRepository := mock_repository.NewMockFrankfurterRepository(ctrl)
		handler := exchangeRateServiceHandler{
			ExchangeRateRepository: exchangeRateRepository,
			FrankfurterRepository:  frankfurterRepository,
			LookbackDays:           14,
		}

		filled := domain.NewSnapshot()
		filled.Put("GBP", date, decimal.RequireFromString("1.2"))
		gomock.InOrder(
			exchangeRateRepository.EXPECT().BulkLoad(gomock.Any(), []string{"GBP"}, gomock.Any(), date).Return(domain.NewSnapshot(), nil),
			exchangeRateRepository.EXPECT().ListDates(gomock.Any(), "GBP", gomock.Any(), date).Return(nil, nil),
			frankfurterRepository.EXPECT().GetRates(gomock.Any(), "GBP", util.NewDate(2024, 2, 26), date).Return([]domain.RateObservation{
				{FromCurrency: "GBP", ToCurrency: "EUR", Date: date, Rate: decimal.RequireFromString("1.2")},
			}, nil),
			exchangeRateRepository.EXPECT().Add(gomock.Any(), nil, gomock.Any()).Return(nil),
			exchangeRateRepository.EXPECT().BulkLoad(gomock.Any(), []string{"GBP"}, gomock.Any(), date).Return(filled, nil),
		)

		out, err := handler.ConvertToEUR(ctx, decimal.NewFromInt(100), "gbp", date)
		require.NoError(t, err)
		require.Equal(t, "120", out.String())
	})

	t.Run("still missing after fetch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		exchangeRateRepository := mock_repository.NewMockExchangeRateRepository(ctrl)
		frankfurterRepository := mock_repository.NewMockFrankfurterRepository(ctrl)
		handler := exchangeRateServiceHandler{
			ExchangeRateRepository: exchangeRateRepository,
			FrankfurterRepository:  frankfurterRepository,
			LookbackDays:           14,
		}

		exchangeRateRepository.EXPECT().BulkLoad(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.NewSnapshot(), nil).Times(2)
		exchangeRateRepository.EXPECT().ListDates(gomock.Any(), "USD", gomock.Any(), gomock.Any()).Return(nil, nil)
		frankfurterRepository.EXPECT().GetRates(gomock.Any(), "USD", gomock.Any(), gomock.Any()).Return([]domain.RateObservation{}, nil)
		exchangeRateRepository.EXPECT().Add(gomock.Any(), nil, gomock.Any()).Return(nil)

		_, err := handler.ConvertToEUR(ctx, decimal.NewFromInt(100), "USD", date)
		require.ErrorIs(t, err, domain.ErrMissingData)
	})
}
