package repository

import (
	"context"
	"errors"
	"portfoliotracker/internal/domain"
	"portfoliotracker/pkg/yahoo"
)

// RecommendationRepository reads analyst consensus counts from yahoo.
type RecommendationRepository interface {
	GetAnalystRating(ctx context.Context, ticker string) (*domain.AnalystRating, error)
}

type recommendationRepositoryHandler struct {
	Client *yahoo.Client
}

func NewRecommendationRepository(client *yahoo.Client) RecommendationRepository {
	return recommendationRepositoryHandler{
		Client: client,
	}
}

// GetAnalystRating returns nil when the ticker is unknown or has no analyst
// coverage.
func (h recommendationRepositoryHandler) GetAnalystRating(ctx context.Context, ticker string) (*domain.AnalystRating, error) {
	trend, err := h.Client.GetRecommendationTrend(ctx, ticker)
	if errors.Is(err, yahoo.ErrNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, domain.UpstreamFetchError{
			Source:      "yahoo",
			Key:         ticker,
			RateLimited: errors.Is(err, yahoo.ErrRateLimited),
			Err:         err,
		}
	}
	if trend == nil {
		return nil, nil
	}

	return &domain.AnalystRating{
		StrongBuy:  trend.StrongBuy,
		Buy:        trend.Buy,
		Hold:       trend.Hold,
		Sell:       trend.Sell,
		StrongSell: trend.StrongSell,
	}, nil
}
