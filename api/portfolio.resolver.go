package api

import (
	"errors"
	"fmt"
	"net/http"
	"portfoliotracker/internal/calculator"
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/util"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultRangeDays = 365
	maxRangeDays     = 1825
)

// parseDateRange reads start_date and end_date, defaulting to the year
// ending today.
func (m ApiHandler) parseDateRange(c *gin.Context) (time.Time, time.Time, error) {
	end := util.TruncateToDate(m.now())
	if s := c.Query("end_date"); s != "" {
		d, err := util.ParseDate(s)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: bad end_date %q", domain.ErrInvalidDateRange, s)
		}
		end = d
	}

	start := end.AddDate(0, 0, -defaultRangeDays)
	if s := c.Query("start_date"); s != "" {
		d, err := util.ParseDate(s)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: bad start_date %q", domain.ErrInvalidDateRange, s)
		}
		start = d
	}

	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start_date must not be after end_date", domain.ErrInvalidDateRange)
	}
	if util.DaysBetween(start, end) > maxRangeDays {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: range exceeds %d days", domain.ErrInvalidDateRange, maxRangeDays)
	}

	return start, end, nil
}

func formatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

func toFloat(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

type timelinePointResponse struct {
	Date            string  `json:"date"`
	CostBasisEur    float64 `json:"cost_basis_eur"`
	MarketValueEur  float64 `json:"market_value_eur"`
	GainLossEur     float64 `json:"gain_loss_eur"`
	GainLossPercent float64 `json:"gain_loss_percent"`
}

type timelineResponse struct {
	StartDate string                  `json:"start_date"`
	EndDate   string                  `json:"end_date"`
	Data      []timelinePointResponse `json:"data"`
}

func (m ApiHandler) portfolioTimeline(c *gin.Context) {
	start, end, err := m.parseDateRange(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	points, err := m.PortfolioService.ComputeTimeline(c.Request.Context(), start, end)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to compute timeline: %w", err), c)
		return
	}

	out := timelineResponse{
		StartDate: formatDate(start),
		EndDate:   formatDate(end),
		Data:      []timelinePointResponse{},
	}
	for _, p := range points {
		out.Data = append(out.Data, timelinePointResponse{
			Date:            formatDate(p.Date),
			CostBasisEur:    toFloat(p.CostBasis),
			MarketValueEur:  toFloat(p.MarketValue),
			GainLossEur:     toFloat(p.GainLoss),
			GainLossPercent: toFloat(p.GainLossPercent),
		})
	}

	c.JSON(200, out)
}

type summaryResponse struct {
	Date            string  `json:"date"`
	CostBasisEur    float64 `json:"cost_basis_eur"`
	MarketValueEur  float64 `json:"market_value_eur"`
	GainLossEur     float64 `json:"gain_loss_eur"`
	GainLossPercent float64 `json:"gain_loss_percent"`
	NumPositions    int     `json:"num_positions"`
}

func (m ApiHandler) portfolioSummary(c *gin.Context) {
	summary, err := m.PortfolioService.GetSummary(c.Request.Context())
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to get summary: %w", err), c)
		return
	}

	c.JSON(200, summaryResponse{
		Date:            formatDate(summary.Date),
		CostBasisEur:    toFloat(summary.CostBasis),
		MarketValueEur:  toFloat(summary.MarketValue),
		GainLossEur:     toFloat(summary.GainLoss),
		GainLossPercent: toFloat(summary.GainLossPercent),
		NumPositions:    summary.NumPositions,
	})
}

type taxLotResponse struct {
	TaxLotID     uuid.UUID `json:"tax_lot_id"`
	OpenDate     string    `json:"open_date"`
	Quantity     float64   `json:"quantity"`
	CostBasis    float64   `json:"cost_basis"`
	CostBasisEur float64   `json:"cost_basis_eur"`
	Currency     string    `json:"currency"`
}

type analystRatingResponse struct {
	StrongBuy   int32  `json:"strong_buy"`
	Buy         int32  `json:"buy"`
	Hold        int32  `json:"hold"`
	Sell        int32  `json:"sell"`
	StrongSell  int32  `json:"strong_sell"`
	Total       int32  `json:"total"`
	Consensus   string `json:"consensus"`
	LastUpdated string `json:"last_updated"`
}

type positionResponse struct {
	SecurityID      uuid.UUID              `json:"security_id"`
	Symbol          string                 `json:"symbol"`
	Exchange        string                 `json:"exchange"`
	Name            string                 `json:"name"`
	Currency        string                 `json:"currency"`
	Isin            *string                `json:"isin"`
	Quantity        float64                `json:"quantity"`
	CostBasisEur    float64                `json:"cost_basis_eur"`
	MarketValueEur  float64                `json:"market_value_eur"`
	GainLossEur     float64                `json:"gain_loss_eur"`
	GainLossPercent float64                `json:"gain_loss_percent"`
	LatestPrice     *float64               `json:"latest_price"`
	LatestPriceDate *string                `json:"latest_price_date"`
	TaxLots         []taxLotResponse       `json:"taxlots"`
	AnalystRating   *analystRatingResponse `json:"analyst_rating"`
}

func (m ApiHandler) portfolioPositions(c *gin.Context) {
	positions, err := m.PortfolioService.GetPositions(c.Request.Context())
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to get positions: %w", err), c)
		return
	}

	out := []positionResponse{}
	for _, p := range positions {
		out = append(out, newPositionResponse(p))
	}

	c.JSON(200, out)
}

func newPositionResponse(p domain.Position) positionResponse {
	out := positionResponse{
		SecurityID:      p.Security.SecurityID,
		Symbol:          p.Security.Symbol,
		Exchange:        p.Security.Exchange,
		Name:            p.Security.Name,
		Currency:        p.Security.Currency,
		Isin:            p.Security.Isin,
		Quantity:        toFloat(p.Quantity),
		CostBasisEur:    toFloat(p.CostBasis),
		MarketValueEur:  toFloat(p.MarketValue),
		GainLossEur:     toFloat(p.GainLoss),
		GainLossPercent: toFloat(p.GainLossPercent),
		TaxLots:         []taxLotResponse{},
	}
	if p.LatestPrice != nil {
		f := toFloat(*p.LatestPrice)
		out.LatestPrice = &f
	}
	if p.LatestPriceDate != nil {
		s := formatDate(*p.LatestPriceDate)
		out.LatestPriceDate = &s
	}
	for _, lot := range p.Lots {
		out.TaxLots = append(out.TaxLots, taxLotResponse{
			TaxLotID:     lot.TaxLotID,
			OpenDate:     formatDate(lot.OpenDate),
			Quantity:     toFloat(lot.Quantity),
			CostBasis:    toFloat(lot.CostBasis),
			CostBasisEur: toFloat(lot.CostBasisEUR),
			Currency:     lot.Currency,
		})
	}
	if r := p.AnalystRating; r != nil {
		out.AnalystRating = &analystRatingResponse{
			StrongBuy:   r.StrongBuy,
			Buy:         r.Buy,
			Hold:        r.Hold,
			Sell:        r.Sell,
			StrongSell:  r.StrongSell,
			Total:       r.Total(),
			Consensus:   r.Consensus(),
			LastUpdated: formatDate(r.LastUpdated),
		}
	}
	return out
}

type annualizedReturnResponse struct {
	Method              string   `json:"method"`
	AnnualizedReturnPct *float64 `json:"annualized_return_pct"`
	StartDate           string   `json:"start_date"`
	EndDate             string   `json:"end_date"`
	NumCashFlows        int      `json:"num_cash_flows"`
}

func (m ApiHandler) annualizedReturn(c *gin.Context) {
	start, end, err := m.parseDateRange(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if !start.Before(end) {
		returnErrorJsonCode(fmt.Errorf("%w: start_date must be before end_date", domain.ErrInvalidDateRange), c, http.StatusBadRequest)
		return
	}

	result, err := m.XIRRService.ComputeXIRR(c.Request.Context(), start, end)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to compute annualized return: %w", err), c)
		return
	}

	out := annualizedReturnResponse{
		Method:       "xirr",
		StartDate:    formatDate(result.EffectiveStart),
		EndDate:      formatDate(result.EffectiveEnd),
		NumCashFlows: result.NumCashFlows,
	}
	if result.AnnualizedReturnPct != nil {
		rounded, _ := decimal.NewFromFloat(*result.AnnualizedReturnPct).Round(2).Float64()
		out.AnnualizedReturnPct = &rounded
	}

	c.JSON(200, out)
}

type metricsResponse struct {
	AnnualizedVolatility float64 `json:"annualized_volatility"`
	AnnualizedReturn     float64 `json:"annualized_return"`
	SharpeRatio          float64 `json:"sharpe_ratio"`
	MaxDrawdown          float64 `json:"max_drawdown"`
	NumReturns           int     `json:"num_returns"`
}

type portfolioMetricsResponse struct {
	StartDate string           `json:"start_date"`
	EndDate   string           `json:"end_date"`
	Metrics   *metricsResponse `json:"metrics"`
}

func (m ApiHandler) portfolioMetrics(c *gin.Context) {
	start, end, err := m.parseDateRange(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := portfolioMetricsResponse{
		StartDate: formatDate(start),
		EndDate:   formatDate(end),
	}

	result, err := m.PortfolioService.GetMetrics(c.Request.Context(), start, end)
	if errors.Is(err, calculator.ErrInsufficientData) {
		c.JSON(200, out)
		return
	} else if err != nil {
		returnErrorJson(fmt.Errorf("failed to compute metrics: %w", err), c)
		return
	}

	out.Metrics = &metricsResponse{
		AnnualizedVolatility: result.AnnualizedStdev,
		AnnualizedReturn:     result.AnnualizedReturn,
		SharpeRatio:          result.SharpeRatio,
		MaxDrawdown:          result.MaxDrawdown,
		NumReturns:           result.NumReturns,
	}

	c.JSON(200, out)
}
