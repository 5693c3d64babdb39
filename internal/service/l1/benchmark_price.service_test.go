package l1_service

import (
	"context"
	"portfoliotracker/internal/db/models/postgres/public/model"
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/repository"
	mock_repository "portfoliotracker/internal/repository/mocks"
	"portfoliotracker/internal/util"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBenchmarkPriceService_EnsurePrices(t *testing.T) {
	ctx := context.Background()
	benchmark, err := domain.GetBenchmark("sp500")
	require.NoError(t, err)
	start := util.NewDate(2024, 5, 6)
	end := util.NewDate(2024, 5, 10)

	ctrl := gomock.NewController(t)
	benchmarkPriceRepository := mock_repository.NewMockBenchmarkPriceRepository(ctrl)
	yahooRepository := mock_repository.NewMockYahooRepository(ctrl)
	handler := benchmarkPriceServiceHandler{
		BenchmarkPriceRepository: benchmarkPriceRepository,
		YahooRepository:          yahooRepository,
	}

	cached := domain.NewSnapshot()
	cached.Put("sp500", util.NewDate(2024, 5, 6), decimal.NewFromInt(5000))
	cached.Put("sp500", util.NewDate(2024, 5, 7), decimal.NewFromInt(5010))

	benchmarkPriceRepository.EXPECT().BulkLoad(gomock.Any(), "sp500", start, end).Return(cached, nil)
	yahooRepository.EXPECT().
		GetDailyCloses(gomock.Any(), "^GSPC", util.NewDate(2024, 5, 8), end).
		Return([]repository.PriceBar{
			{Date: util.NewDate(2024, 5, 8), Close: decimal.NewFromInt(5020)},
		}, nil)
	benchmarkPriceRepository.EXPECT().
		Add(gomock.Any(), nil, []model.BenchmarkPrice{{
			BenchmarkKey: "sp500",
			Date:         util.NewDate(2024, 5, 8),
			Price:        decimal.NewFromInt(5020),
			Currency:     "USD",
		}}).
		Return(nil)

	added, err := handler.EnsurePrices(ctx, benchmark, start, end)
	require.NoError(t, err)
	require.Equal(t, 1, added)
}
