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
	"github.com/google/uuid"
)

type MarketPriceRepository interface {
	Add(ctx context.Context, tx *sql.Tx, prices []model.MarketPrice) error
	BulkLoad(ctx context.Context, securityIDs []uuid.UUID, start, end time.Time) (domain.Snapshot, error)
	ListDates(ctx context.Context, securityID uuid.UUID, start, end time.Time) ([]time.Time, error)
}

type marketPriceRepositoryHandler struct {
	Db *sql.DB
}

func NewMarketPriceRepository(db *sql.DB) MarketPriceRepository {
	return marketPriceRepositoryHandler{Db: db}
}

// Add stores prices; an existing (security, date) row is left untouched.
func (h marketPriceRepositoryHandler) Add(ctx context.Context, tx *sql.Tx, prices []model.MarketPrice) error {
	if len(prices) == 0 {
		return nil
	}
	now := time.Now().UTC()
	for i := range prices {
		prices[i].CreatedAt = now
	}

	query := table.MarketPrice.
		INSERT(table.MarketPrice.MutableColumns).
		MODELS(prices).
		ON_CONFLICT(table.MarketPrice.SecurityID, table.MarketPrice.Date).
		DO_NOTHING()

	_, err := query.ExecContext(ctx, dbOrTx(h.Db, tx))
	if err != nil {
		return fmt.Errorf("failed to add market prices: %w", err)
	}

	return nil
}

func (h marketPriceRepositoryHandler) BulkLoad(ctx context.Context, securityIDs []uuid.UUID, start, end time.Time) (domain.Snapshot, error) {
	out := domain.NewSnapshot()
	if len(securityIDs) == 0 {
		return out, nil
	}

	ids := []postgres.Expression{}
	for _, id := range securityIDs {
		ids = append(ids, postgres.UUID(id))
	}

	query := table.MarketPrice.
		SELECT(table.MarketPrice.AllColumns).
		WHERE(
			postgres.AND(
				table.MarketPrice.SecurityID.IN(ids...),
				table.MarketPrice.Date.BETWEEN(postgres.DateT(start), postgres.DateT(end)),
			),
		).
		ORDER_BY(table.MarketPrice.Date.ASC())

	result := []model.MarketPrice{}
	err := query.QueryContext(ctx, h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to load prices between %s and %s: %w", start.Format(time.DateOnly), end.Format(time.DateOnly), err)
	}

	for _, p := range result {
		out.Put(p.SecurityID.String(), p.Date, p.Price)
	}

	return out, nil
}

func (h marketPriceRepositoryHandler) ListDates(ctx context.Context, securityID uuid.UUID, start, end time.Time) ([]time.Time, error) {
	query := table.MarketPrice.
		SELECT(table.MarketPrice.AllColumns).
		WHERE(
			postgres.AND(
				table.MarketPrice.SecurityID.EQ(postgres.UUID(securityID)),
				table.MarketPrice.Date.BETWEEN(postgres.DateT(start), postgres.DateT(end)),
			),
		).
		ORDER_BY(table.MarketPrice.Date.ASC())

	result := []model.MarketPrice{}
	err := query.QueryContext(ctx, h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list price dates for %s: %w", securityID.String(), err)
	}

	out := []time.Time{}
	for _, p := range result {
		out = append(out, p.Date)
	}

	return out, nil
}
