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

type SecurityRepository interface {
	Upsert(ctx context.Context, tx *sql.Tx, s model.Security) (*model.Security, error)
	List(ctx context.Context, tx *sql.Tx) ([]model.Security, error)
	ListWithOpenLots(ctx context.Context) ([]domain.Security, error)
}

type securityRepositoryHandler struct {
	Db *sql.DB
}

func NewSecurityRepository(db *sql.DB) SecurityRepository {
	return securityRepositoryHandler{Db: db}
}

func SecurityFromModel(m model.Security) domain.Security {
	return domain.Security{
		SecurityID: m.SecurityID,
		Symbol:     m.Symbol,
		Exchange:   m.Exchange,
		Conid:      m.Conid,
		Name:       m.Name,
		Currency:   m.Currency,
		Isin:       m.Isin,
	}
}

// Upsert inserts the security or refreshes its descriptive columns when the
// (symbol, exchange) pair already exists.
func (h securityRepositoryHandler) Upsert(ctx context.Context, tx *sql.Tx, s model.Security) (*model.Security, error) {
	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now

	query := table.Security.
		INSERT(table.Security.MutableColumns).
		MODEL(s).
		ON_CONFLICT(table.Security.Symbol, table.Security.Exchange).
		DO_UPDATE(
			postgres.SET(
				table.Security.Name.SET(table.Security.EXCLUDED.Name),
				table.Security.Currency.SET(table.Security.EXCLUDED.Currency),
				table.Security.Conid.SET(table.Security.EXCLUDED.Conid),
				table.Security.Isin.SET(table.Security.EXCLUDED.Isin),
				table.Security.UpdatedAt.SET(table.Security.EXCLUDED.UpdatedAt),
			),
		).
		RETURNING(table.Security.AllColumns)

	out := model.Security{}
	err := query.QueryContext(ctx, dbOrTx(h.Db, tx), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert security %s@%s: %w", s.Symbol, s.Exchange, err)
	}

	return &out, nil
}

func (h securityRepositoryHandler) List(ctx context.Context, tx *sql.Tx) ([]model.Security, error) {
	query := table.Security.
		SELECT(table.Security.AllColumns).
		ORDER_BY(table.Security.Symbol.ASC())

	out := []model.Security{}
	err := query.QueryContext(ctx, dbOrTx(h.Db, tx), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list securities: %w", err)
	}

	return out, nil
}

func (h securityRepositoryHandler) ListWithOpenLots(ctx context.Context) ([]domain.Security, error) {
	query := postgres.
		SELECT(table.Security.AllColumns).
		DISTINCT().
		FROM(
			table.Security.INNER_JOIN(
				table.TaxLot,
				table.TaxLot.SecurityID.EQ(table.Security.SecurityID),
			),
		).
		WHERE(table.TaxLot.IsOpen.IS_TRUE()).
		ORDER_BY(table.Security.Symbol.ASC())

	result := []model.Security{}
	err := query.QueryContext(ctx, h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list securities with open lots: %w", err)
	}

	out := []domain.Security{}
	for _, s := range result {
		out = append(out, SecurityFromModel(s))
	}

	return out, nil
}
