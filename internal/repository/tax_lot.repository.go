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

type TaxLotRepository interface {
	ReplaceForSecurity(ctx context.Context, tx *sql.Tx, securityID uuid.UUID, lots []model.TaxLot) error
	ListOpen(ctx context.Context) ([]domain.Lot, error)
	DeleteExceptSecurities(ctx context.Context, tx *sql.Tx, keep []uuid.UUID) (int64, error)
}

type taxLotRepositoryHandler struct {
	Db *sql.DB
}

func NewTaxLotRepository(db *sql.DB) TaxLotRepository {
	return taxLotRepositoryHandler{Db: db}
}

// ReplaceForSecurity deletes every stored lot of the security and inserts the
// given ones.
func (h taxLotRepositoryHandler) ReplaceForSecurity(ctx context.Context, tx *sql.Tx, securityID uuid.UUID, lots []model.TaxLot) error {
	db := dbOrTx(h.Db, tx)

	deleteQuery := table.TaxLot.
		DELETE().
		WHERE(table.TaxLot.SecurityID.EQ(postgres.UUID(securityID)))
	_, err := deleteQuery.ExecContext(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to delete lots for security %s: %w", securityID.String(), err)
	}

	if len(lots) == 0 {
		return nil
	}

	now := time.Now().UTC()
	for i := range lots {
		lots[i].SecurityID = securityID
		lots[i].CreatedAt = now
		lots[i].UpdatedAt = now
	}

	insertQuery := table.TaxLot.
		INSERT(table.TaxLot.MutableColumns).
		MODELS(lots)
	_, err = insertQuery.ExecContext(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to insert lots for security %s: %w", securityID.String(), err)
	}

	return nil
}

// DeleteExceptSecurities removes lots of securities that no longer appear in
// the brokerage export.
func (h taxLotRepositoryHandler) DeleteExceptSecurities(ctx context.Context, tx *sql.Tx, keep []uuid.UUID) (int64, error) {
	query := table.TaxLot.DELETE()
	if len(keep) == 0 {
		query = query.WHERE(postgres.Bool(true))
	} else {
		ids := []postgres.Expression{}
		for _, id := range keep {
			ids = append(ids, postgres.UUID(id))
		}
		query = query.WHERE(table.TaxLot.SecurityID.NOT_IN(ids...))
	}

	result, err := query.ExecContext(ctx, dbOrTx(h.Db, tx))
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale lots: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted lots: %w", err)
	}

	return n, nil
}

func (h taxLotRepositoryHandler) ListOpen(ctx context.Context) ([]domain.Lot, error) {
	query := postgres.
		SELECT(
			table.TaxLot.AllColumns,
			table.Security.AllColumns,
		).
		FROM(
			table.TaxLot.INNER_JOIN(
				table.Security,
				table.Security.SecurityID.EQ(table.TaxLot.SecurityID),
			),
		).
		WHERE(table.TaxLot.IsOpen.IS_TRUE()).
		ORDER_BY(table.TaxLot.OpenDate.ASC(), table.Security.Symbol.ASC())

	result := []struct {
		model.TaxLot
		Security model.Security
	}{}
	err := query.QueryContext(ctx, h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list open lots: %w", err)
	}

	out := []domain.Lot{}
	for _, r := range result {
		out = append(out, domain.Lot{
			TaxLotID:     r.TaxLot.TaxLotID,
			SecurityID:   r.TaxLot.SecurityID,
			Symbol:       r.Security.Symbol,
			OpenDate:     r.TaxLot.OpenDate,
			Quantity:     r.TaxLot.Quantity,
			CostBasis:    r.TaxLot.CostBasis,
			CostBasisEUR: r.TaxLot.CostBasisEur,
			Currency:     r.TaxLot.Currency,
			IsOpen:       r.TaxLot.IsOpen,
		})
	}

	return out, nil
}
