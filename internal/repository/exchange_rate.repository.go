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

// ExchangeRateRepository stores rates into the reporting currency. Snapshots
// are keyed by the source currency.
type ExchangeRateRepository interface {
	Add(ctx context.Context, tx *sql.Tx, rates []model.ExchangeRate) error
	BulkLoad(ctx context.Context, currencies []string, start, end time.Time) (domain.Snapshot, error)
	ListDates(ctx context.Context, fromCurrency string, start, end time.Time) ([]time.Time, error)
}

type exchangeRateRepositoryHandler struct {
	Db *sql.DB
}

func NewExchangeRateRepository(db *sql.DB) ExchangeRateRepository {
	return exchangeRateRepositoryHandler{Db: db}
}

func (h exchangeRateRepositoryHandler) Add(ctx context.Context, tx *sql.Tx, rates []model.ExchangeRate) error {
	if len(rates) == 0 {
		return nil
	}
	now := time.Now().UTC()
	for i := range rates {
		rates[i].CreatedAt = now
	}

	query := table.ExchangeRate.
		INSERT(table.ExchangeRate.MutableColumns).
		MODELS(rates).
		ON_CONFLICT(
			table.ExchangeRate.FromCurrency,
			table.ExchangeRate.ToCurrency,
			table.ExchangeRate.Date,
		).
		DO_NOTHING()

	_, err := query.ExecContext(ctx, dbOrTx(h.Db, tx))
	if err != nil {
		return fmt.Errorf("failed to add exchange rates: %w", err)
	}

	return nil
}

func (h exchangeRateRepositoryHandler) BulkLoad(ctx context.Context, currencies []string, start, end time.Time) (domain.Snapshot, error) {
	out := domain.NewSnapshot()
	if len(currencies) == 0 {
		return out, nil
	}

	codes := []postgres.Expression{}
	for _, c := range currencies {
		codes = append(codes, postgres.String(c))
	}

	query := table.ExchangeRate.
		SELECT(table.ExchangeRate.AllColumns).
		WHERE(
			postgres.AND(
				table.ExchangeRate.FromCurrency.IN(codes...),
				table.ExchangeRate.ToCurrency.EQ(postgres.String(domain.ReportingCurrency)),
				table.ExchangeRate.Date.BETWEEN(postgres.DateT(start), postgres.DateT(end)),
			),
		).
		ORDER_BY(table.ExchangeRate.Date.ASC())

	result := []model.ExchangeRate{}
	err := query.QueryContext(ctx, h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to load exchange rates: %w", err)
	}

	for _, r := range result {
		out.Put(r.FromCurrency, r.Date, r.Rate)
	}

	return out, nil
}

func (h exchangeRateRepositoryHandler) ListDates(ctx context.Context, fromCurrency string, start, end time.Time) ([]time.Time, error) {
	snapshot, err := h.BulkLoad(ctx, []string{fromCurrency}, start, end)
	if err != nil {
		return nil, err
	}
	return snapshot.Dates(fromCurrency), nil
}
