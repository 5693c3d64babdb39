package api

import (
	"fmt"
	"portfoliotracker/internal/domain"

	"github.com/gin-gonic/gin"
)

type benchmarkResponse struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Ticker   string `json:"ticker"`
	Currency string `json:"currency"`
}

func (h ApiHandler) listBenchmarks(c *gin.Context) {
	out := []benchmarkResponse{}
	for _, b := range domain.ListBenchmarks() {
		out = append(out, benchmarkResponse{
			Key:      b.Key,
			Name:     b.Name,
			Ticker:   b.Ticker,
			Currency: b.Currency,
		})
	}

	c.JSON(200, out)
}

type benchmarkPointResponse struct {
	Date              string  `json:"date"`
	CostBasisEur      float64 `json:"cost_basis_eur"`
	BenchmarkValueEur float64 `json:"benchmark_value_eur"`
}

type benchmarkTimelineResponse struct {
	BenchmarkName   string                   `json:"benchmark_name"`
	BenchmarkTicker string                   `json:"benchmark_ticker"`
	Data            []benchmarkPointResponse `json:"data"`
}

func (h ApiHandler) benchmarkTimeline(c *gin.Context) {
	key := c.Param("key")
	if _, err := domain.GetBenchmark(key); err != nil {
		returnErrorJson(err, c)
		return
	}

	start, end, err := h.parseDateRange(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	timeline, err := h.BenchmarkService.ComputeBenchmarkTimeline(c.Request.Context(), key, start, end)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to compute benchmark timeline: %w", err), c)
		return
	}

	out := benchmarkTimelineResponse{
		BenchmarkName:   timeline.Benchmark.Name,
		BenchmarkTicker: timeline.Benchmark.Ticker,
		Data:            []benchmarkPointResponse{},
	}
	for _, p := range timeline.Points {
		out.Data = append(out.Data, benchmarkPointResponse{
			Date:              formatDate(p.Date),
			CostBasisEur:      toFloat(p.CostBasis),
			BenchmarkValueEur: toFloat(p.BenchmarkValue),
		})
	}

	c.JSON(200, out)
}
