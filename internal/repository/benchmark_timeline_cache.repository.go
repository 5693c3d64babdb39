package repository

import (
	"context"
	"database/sql"
	"fmt"
	"portfoliotracker/internal/db/models/postgres/public/model"
	"portfoliotracker/internal/db/models/postgres/public/table"
	"portfoliotracker/internal/domain"
	"time"

	"github.com/go-jet/jet/v2/postgres"
)

type BenchmarkTimelineCacheRepository interface {
	List(ctx context.Context, benchmarkKey string, start, end time.Time) ([]domain.BenchmarkPoint, error)
	Upsert(ctx context.Context, tx *sql.Tx, benchmarkKey string, points []domain.BenchmarkPoint) error
	DeleteAll(ctx context.Context, tx *sql.Tx) error
}

type benchmarkTimelineCacheRepositoryHandler struct {
	Db *sql.DB
}

func NewBenchmarkTimelineCacheRepository(db *sql.DB) BenchmarkTimelineCacheRepository {
	return benchmarkTimelineCacheRepositoryHandler{Db: db}
}

func (h benchmarkTimelineCacheRepositoryHandler) List(ctx context.Context, benchmarkKey string, start, end time.Time) ([]domain.BenchmarkPoint, error) {
	query := table.BenchmarkTimelineCache.
		SELECT(table.BenchmarkTimelineCache.AllColumns).
		WHERE(
			postgres.AND(
				table.BenchmarkTimelineCache.BenchmarkKey.EQ(postgres.String(benchmarkKey)),
				table.BenchmarkTimelineCache.Date.BETWEEN(postgres.DateT(start), postgres.DateT(end)),
			),
		).
		ORDER_BY(table.BenchmarkTimelineCache.Date.ASC())

	result := []model.BenchmarkTimelineCache{}
	err := query.QueryContext(ctx, h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list cached %s timeline: %w", benchmarkKey, err)
	}

	out := []domain.BenchmarkPoint{}
	for _, r := range result {
		out = append(out, domain.BenchmarkPoint{
			Date:           r.Date,
			CostBasis:      r.CostBasisEur,
			BenchmarkValue: r.BenchmarkValueEur,
			Complete:       true,
		})
	}

	return out, nil
}

// Upsert writes computed points. Only dates that were missing or inside the
// stale window are ever passed in, so older rows are not rewritten.
func (h benchmarkTimelineCacheRepositoryHandler) Upsert(ctx context.Context, tx *sql.Tx, benchmarkKey string, points []domain.BenchmarkPoint) error {
	if len(points) == 0 {
		return nil
	}

	now := time.Now().UTC()
	models := []model.BenchmarkTimelineCache{}
	for _, p := range points {
		models = append(models, model.BenchmarkTimelineCache{
			BenchmarkKey:      benchmarkKey,
			Date:              p.Date,
			CostBasisEur:      p.CostBasis,
			BenchmarkValueEur: p.BenchmarkValue,
			ComputedAt:        now,
		})
	}

	query := table.BenchmarkTimelineCache.
		INSERT(table.BenchmarkTimelineCache.MutableColumns).
		MODELS(models).
		ON_CONFLICT(table.BenchmarkTimelineCache.BenchmarkKey, table.BenchmarkTimelineCache.Date).
		DO_UPDATE(
			postgres.SET(
				table.BenchmarkTimelineCache.CostBasisEur.SET(table.BenchmarkTimelineCache.EXCLUDED.CostBasisEur),
				table.BenchmarkTimelineCache.BenchmarkValueEur.SET(table.BenchmarkTimelineCache.EXCLUDED.BenchmarkValueEur),
				table.BenchmarkTimelineCache.ComputedAt.SET(table.BenchmarkTimelineCache.EXCLUDED.ComputedAt),
			),
		)

	_, err := query.ExecContext(ctx, dbOrTx(h.Db, tx))
	if err != nil {
		return fmt.Errorf("failed to cache %s timeline: %w", benchmarkKey, err)
	}

	return nil
}

// DeleteAll drops every cached point. Used after a lot sync changes the
// purchase history the simulation replays.
func (h benchmarkTimelineCacheRepositoryHandler) DeleteAll(ctx context.Context, tx *sql.Tx) error {
	query := table.BenchmarkTimelineCache.
		DELETE().
		WHERE(postgres.Bool(true))

	_, err := query.ExecContext(ctx, dbOrTx(h.Db, tx))
	if err != nil {
		return fmt.Errorf("failed to clear benchmark timeline cache: %w", err)
	}

	return nil
}
