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

type BenchmarkPriceRepository interface {
	Add(ctx context.Context, tx *sql.Tx, prices []model.BenchmarkPrice) error
	BulkLoad(ctx context.Context, benchmarkKey string, start, end time.Time) (domain.Snapshot, error)
}

type benchmarkPriceRepositoryHandler struct {
	Db *sql.DB
}

func NewBenchmarkPriceRepository(db *sql.DB) BenchmarkPriceRepository {
	return benchmarkPriceRepositoryHandler{Db: db}
}

func (h benchmarkPriceRepositoryHandler) Add(ctx context.Context, tx *sql.Tx, prices []model.BenchmarkPrice) error {
	if len(prices) == 0 {
		return nil
	}
	now := time.Now().UTC()
	for i := range prices {
		prices[i].CreatedAt = now
	}

	query := table.BenchmarkPrice.
		INSERT(table.BenchmarkPrice.MutableColumns).
		MODELS(prices).
		ON_CONFLICT(table.BenchmarkPrice.BenchmarkKey, table.BenchmarkPrice.Date).
		DO_NOTHING()

	_, err := query.ExecContext(ctx, dbOrTx(h.Db, tx))
	if err != nil {
		return fmt.Errorf("failed to add benchmark prices: %w", err)
	}

	return nil
}

// BulkLoad returns a snapshot keyed by benchmark key.
func (h benchmarkPriceRepositoryHandler) BulkLoad(ctx context.Context, benchmarkKey string, start, end time.Time) (domain.Snapshot, error) {
	query := table.BenchmarkPrice.
		SELECT(table.BenchmarkPrice.AllColumns).
		WHERE(
			postgres.AND(
				table.BenchmarkPrice.BenchmarkKey.EQ(postgres.String(benchmarkKey)),
				table.BenchmarkPrice.Date.BETWEEN(postgres.DateT(start), postgres.DateT(end)),
			),
		).
		ORDER_BY(table.BenchmarkPrice.Date.ASC())

	result := []model.BenchmarkPrice{}
	err := query.QueryContext(ctx, h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s prices: %w", benchmarkKey, err)
	}

	out := domain.NewSnapshot()
	for _, p := range result {
		out.Put(p.BenchmarkKey, p.Date, p.Price)
	}

	return out, nil
}
