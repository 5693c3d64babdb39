package l1_service

import (
	"context"
	"errors"
	"portfoliotracker/internal/db/models/postgres/public/model"
	"portfoliotracker/internal/domain"
	mock_repository "portfoliotracker/internal/repository/mocks"
	"portfoliotracker/internal/util"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAnalystRatingService_Refresh(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 14, 8, 0, 0, 0, time.UTC)
	security := domain.Security{SecurityID: uuid.New(), Symbol: "SAP", Exchange: "IBIS", Currency: "EUR"}

	newHandler := func(ctrl *gomock.Controller) (analystRatingServiceHandler, *mock_repository.MockAnalystRatingRepository, *mock_repository.MockRecommendationRepository, *mock_repository.MockTickerMappingRepository) {
		analystRatingRepository := mock_repository.NewMockAnalystRatingRepository(ctrl)
		recommendationRepository := mock_repository.NewMockRecommendationRepository(ctrl)
		tickerMappingRepository := mock_repository.NewMockTickerMappingRepository(ctrl)
		return analystRatingServiceHandler{
			AnalystRatingRepository:  analystRatingRepository,
			RecommendationRepository: recommendationRepository,
			TickerMappingRepository:  tickerMappingRepository,
			now:                      func() time.Time { return now },
		}, analystRatingRepository, recommendationRepository, tickerMappingRepository
	}

	t.Run("stores the rating under the builtin ticker", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, analystRatingRepository, recommendationRepository, tickerMappingRepository := newHandler(ctrl)

		tickerMappingRepository.EXPECT().Get(gomock.Any(), "SAP", "IBIS").Return(nil, nil)
		recommendationRepository.EXPECT().
			GetAnalystRating(gomock.Any(), "SAP.DE").
			Return(&domain.AnalystRating{StrongBuy: 6, Buy: 12, Hold: 5, Sell: 1}, nil)
		analystRatingRepository.EXPECT().
			Upsert(gomock.Any(), nil, security.SecurityID, domain.AnalystRating{StrongBuy: 6, Buy: 12, Hold: 5, Sell: 1, LastUpdated: now}).
			Return(nil)

		rating, err := handler.Refresh(ctx, security)
		require.NoError(t, err)
		require.Equal(t, "Buy", rating.Consensus())
	})

	t.Run("mapped ticker wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, _, recommendationRepository, tickerMappingRepository := newHandler(ctrl)

		tickerMappingRepository.EXPECT().
			Get(gomock.Any(), "SAP", "IBIS").
			Return(&model.TickerMapping{YahooTicker: "SAP.F"}, nil)
		recommendationRepository.EXPECT().GetAnalystRating(gomock.Any(), "SAP.F").Return(nil, nil)

		rating, err := handler.Refresh(ctx, security)
		require.NoError(t, err)
		require.Nil(t, rating)
	})

	t.Run("upstream failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, _, recommendationRepository, tickerMappingRepository := newHandler(ctrl)

		tickerMappingRepository.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		recommendationRepository.EXPECT().
			GetAnalystRating(gomock.Any(), gomock.Any()).
			Return(nil, domain.UpstreamFetchError{Source: "yahoo", Key: "SAP.DE", RateLimited: true, Err: errors.New("429")})

		_, err := handler.Refresh(ctx, security)
		var upstream domain.UpstreamFetchError
		require.ErrorAs(t, err, &upstream)
		require.True(t, upstream.RateLimited)
	})
}

func TestAnalystRatingService_ListStale(t *testing.T) {
	ctrl := gomock.NewController(t)
	analystRatingRepository := mock_repository.NewMockAnalystRatingRepository(ctrl)
	handler := analystRatingServiceHandler{AnalystRatingRepository: analystRatingRepository}

	fresh := domain.Security{SecurityID: uuid.New(), Symbol: "AAPL"}
	stale := domain.Security{SecurityID: uuid.New(), Symbol: "MSFT"}
	unrated := domain.Security{SecurityID: uuid.New(), Symbol: "SAP"}
	staleBefore := util.NewDate(2024, 3, 11)

	analystRatingRepository.EXPECT().
		ListBySecurity(gomock.Any(), []uuid.UUID{fresh.SecurityID, stale.SecurityID, unrated.SecurityID}).
		Return(map[uuid.UUID]domain.AnalystRating{
			fresh.SecurityID: {Buy: 1, LastUpdated: util.NewDate(2024, 3, 12)},
			stale.SecurityID: {Buy: 1, LastUpdated: util.NewDate(2024, 3, 8)},
		}, nil)

	out, err := handler.ListStale(context.Background(), []domain.Security{fresh, stale, unrated}, staleBefore)
	require.NoError(t, err)
	require.Equal(t, []domain.Security{stale, unrated}, out)
}

func TestAnalystRatingService_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	analystRatingRepository := mock_repository.NewMockAnalystRatingRepository(ctrl)
	handler := analystRatingServiceHandler{AnalystRatingRepository: analystRatingRepository}

	analystRatingRepository.EXPECT().List(gomock.Any()).Return(map[uuid.UUID]domain.AnalystRating{
		uuid.New(): {LastUpdated: util.NewDate(2024, 3, 12)},
		uuid.New(): {LastUpdated: util.NewDate(2024, 3, 8)},
		uuid.New(): {LastUpdated: util.NewDate(2024, 3, 1)},
	}, nil)

	status, err := handler.Status(context.Background(), util.NewDate(2024, 3, 11))
	require.NoError(t, err)
	require.Equal(t, 3, status.Total)
	require.Equal(t, 2, status.Stale)
	require.Equal(t, util.NewDate(2024, 3, 1), *status.OldestUpdate)
	require.Equal(t, util.NewDate(2024, 3, 12), *status.NewestUpdate)
}
