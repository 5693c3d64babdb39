package l1_service

import (
	"context"
	"fmt"
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/logger"
	"portfoliotracker/internal/repository"
	"time"

	"github.com/google/uuid"
)

// AnalystRatingService keeps the cached analyst consensus per security.
// Ratings move slowly, so they are only refreshed once they are older than
// the caller's stale threshold.
type AnalystRatingService interface {
	Refresh(ctx context.Context, security domain.Security) (*domain.AnalystRating, error)
	ListStale(ctx context.Context, securities []domain.Security, staleBefore time.Time) ([]domain.Security, error)
	Status(ctx context.Context, staleBefore time.Time) (*domain.AnalystRatingStatus, error)
}

type analystRatingServiceHandler struct {
	AnalystRatingRepository  repository.AnalystRatingRepository
	RecommendationRepository repository.RecommendationRepository
	TickerMappingRepository  repository.TickerMappingRepository
	now                      func() time.Time
}

func NewAnalystRatingService(
	analystRatingRepository repository.AnalystRatingRepository,
	recommendationRepository repository.RecommendationRepository,
	tickerMappingRepository repository.TickerMappingRepository,
) AnalystRatingService {
	return analystRatingServiceHandler{
		AnalystRatingRepository:  analystRatingRepository,
		RecommendationRepository: recommendationRepository,
		TickerMappingRepository:  tickerMappingRepository,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Refresh fetches and stores the current consensus for security. It returns
// nil without touching the cache when the security has no analyst coverage.
func (h analystRatingServiceHandler) Refresh(ctx context.Context, security domain.Security) (*domain.AnalystRating, error) {
	ticker := YahooTicker(security.Symbol, security.Exchange)
	mapping, err := h.TickerMappingRepository.Get(ctx, security.Symbol, security.Exchange)
	if err != nil {
		return nil, err
	}
	if mapping != nil {
		ticker = mapping.YahooTicker
	}

	rating, err := h.RecommendationRepository.GetAnalystRating(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch analyst rating for %s: %w", security.Symbol, err)
	}
	if rating == nil {
		logger.FromContext(ctx).Infof("no analyst coverage for %s (%s)", security.Symbol, ticker)
		return nil, nil
	}

	rating.LastUpdated = h.now()
	err = h.AnalystRatingRepository.Upsert(ctx, nil, security.SecurityID, *rating)
	if err != nil {
		return nil, err
	}

	return rating, nil
}

// ListStale keeps the securities that have never been rated or whose rating
// was last updated before staleBefore.
func (h analystRatingServiceHandler) ListStale(ctx context.Context, securities []domain.Security, staleBefore time.Time) ([]domain.Security, error) {
	ids := []uuid.UUID{}
	for _, s := range securities {
		ids = append(ids, s.SecurityID)
	}
	ratings, err := h.AnalystRatingRepository.ListBySecurity(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := []domain.Security{}
	for _, s := range securities {
		rating, ok := ratings[s.SecurityID]
		if ok && !rating.LastUpdated.Before(staleBefore) {
			continue
		}
		out = append(out, s)
	}

	return out, nil
}

func (h analystRatingServiceHandler) Status(ctx context.Context, staleBefore time.Time) (*domain.AnalystRatingStatus, error) {
	ratings, err := h.AnalystRatingRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	out := &domain.AnalystRatingStatus{}
	for _, r := range ratings {
		updated := r.LastUpdated
		out.Total++
		if updated.Before(staleBefore) {
			out.Stale++
		}
		if out.OldestUpdate == nil || updated.Before(*out.OldestUpdate) {
			out.OldestUpdate = &updated
		}
		if out.NewestUpdate == nil || updated.After(*out.NewestUpdate) {
			out.NewestUpdate = &updated
		}
	}

	return out, nil
}
