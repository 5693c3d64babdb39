package l2_service

import (
	"context"
	"fmt"
	"portfoliotracker/internal/calculator"
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/repository"
	l1_service "portfoliotracker/internal/service/l1"
	"portfoliotracker/internal/util"
	"time"

	"github.com/google/uuid"
)

type PortfolioService interface {
	ComputeTimeline(ctx context.Context, start, end time.Time) ([]domain.TimelinePoint, error)
	GetSummary(ctx context.Context) (*domain.Summary, error)
	GetPositions(ctx context.Context) ([]domain.Position, error)
	GetMetrics(ctx context.Context, start, end time.Time) (*calculator.CalculateMetricsResult, error)
}

type portfolioServiceHandler struct {
	loader                  valuationLoader
	SecurityRepository      repository.SecurityRepository
	AnalystRatingRepository repository.AnalystRatingRepository
	LookbackDays            int
	// overridden in tests
	today func() time.Time
}

func NewPortfolioService(
	taxLotRepository repository.TaxLotRepository,
	securityRepository repository.SecurityRepository,
	analystRatingRepository repository.AnalystRatingRepository,
	priceService l1_service.PriceService,
	exchangeRateService l1_service.ExchangeRateService,
	lookbackDays int,
) PortfolioService {
	return portfolioServiceHandler{
		loader: valuationLoader{
			TaxLotRepository:    taxLotRepository,
			PriceService:        priceService,
			ExchangeRateService: exchangeRateService,
			LookbackDays:        lookbackDays,
		},
		SecurityRepository:      securityRepository,
		AnalystRatingRepository: analystRatingRepository,
		LookbackDays:            lookbackDays,
		today:                   util.Today,
	}
}

// ComputeTimeline returns one point per Mon-Fri day in [start, end].
func (h portfolioServiceHandler) ComputeTimeline(ctx context.Context, start, end time.Time) ([]domain.TimelinePoint, error) {
	start = util.TruncateToDate(start)
	end = util.TruncateToDate(end)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: start %s is after end %s", domain.ErrInvalidDateRange, start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	inputs, err := h.loader.load(ctx, start, end)
	if err != nil {
		return nil, err
	}

	_, endSpan := domain.ProfileFromContext(ctx).StartNewSpan("value business days")
	defer endSpan()

	points := []domain.TimelinePoint{}
	missing := []domain.MissingDataError{}
	for _, day := range util.BusinessDays(start, end) {
		valuation := calculator.ComputeDailyValuation(day, inputs.Lots, inputs.Prices, inputs.Rates, h.LookbackDays)
		missing = append(missing, valuation.Missing...)
		points = append(points, valuation.TimelinePoint())
	}
	logMissing(ctx, missing)

	return points, nil
}

func (h portfolioServiceHandler) GetSummary(ctx context.Context) (*domain.Summary, error) {
	today := h.today()
	inputs, err := h.loader.load(ctx, today, today)
	if err != nil {
		return nil, err
	}

	valuation := calculator.ComputeDailyValuation(today, inputs.Lots, inputs.Prices, inputs.Rates, h.LookbackDays)
	logMissing(ctx, valuation.Missing)

	securities := map[uuid.UUID]bool{}
	for _, lot := range inputs.Lots {
		if lot.IsOpen && !lot.OpenDate.After(today) {
			securities[lot.SecurityID] = true
		}
	}

	return &domain.Summary{
		Date:            today,
		CostBasis:       valuation.CostBasis,
		MarketValue:     valuation.MarketValue,
		GainLoss:        valuation.GainLoss,
		GainLossPercent: valuation.GainLossPercent,
		NumPositions:    len(securities),
	}, nil
}

// GetPositions groups today's open lots by security, largest market value
// first.
func (h portfolioServiceHandler) GetPositions(ctx context.Context) ([]domain.Position, error) {
	today := h.today()
	inputs, err := h.loader.load(ctx, today, today)
	if err != nil {
		return nil, err
	}

	securities, err := h.SecurityRepository.ListWithOpenLots(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list securities: %w", err)
	}
	securityByID := map[uuid.UUID]domain.Security{}
	securityIDs := []uuid.UUID{}
	for _, s := range securities {
		securityByID[s.SecurityID] = s
		securityIDs = append(securityIDs, s.SecurityID)
	}

	ratings, err := h.AnalystRatingRepository.ListBySecurity(ctx, securityIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyst ratings: %w", err)
	}

	portfolio := domain.NewPortfolio()
	missing := []domain.MissingDataError{}
	for _, lot := range inputs.Lots {
		if !lot.IsOpen || lot.OpenDate.After(today) {
			continue
		}
		security, ok := securityByID[lot.SecurityID]
		if !ok {
			security = domain.Security{
				SecurityID: lot.SecurityID,
				Symbol:     lot.Symbol,
				Currency:   lot.Currency,
			}
		}
		portfolio.AddLot(security, lot)

		position := portfolio.Positions[lot.SecurityID]
		value, missingErr := calculator.LotMarketValue(lot, today, inputs.Prices, inputs.Rates, h.LookbackDays)
		if missingErr != nil {
			missing = append(missing, *missingErr)
			continue
		}
		position.MarketValue = position.MarketValue.Add(value)
	}
	logMissing(ctx, missing)

	for id, position := range portfolio.Positions {
		position.GainLoss = position.MarketValue.Sub(position.CostBasis)
		position.GainLossPercent = calculator.GainLossPercent(position.GainLoss, position.CostBasis)

		price, observed, ok := inputs.Prices.ResolveWithDate(id.String(), today, h.LookbackDays)
		if ok {
			position.LatestPrice = &price
			position.LatestPriceDate = &observed
		}
		if rating, ok := ratings[id]; ok {
			r := rating
			position.AnalystRating = &r
		}
	}

	return portfolio.SortedPositions(), nil
}

func (h portfolioServiceHandler) GetMetrics(ctx context.Context, start, end time.Time) (*calculator.CalculateMetricsResult, error) {
	points, err := h.ComputeTimeline(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return calculator.CalculateMetrics(points)
}
