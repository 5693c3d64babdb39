package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"portfoliotracker/internal/db/models/postgres/public/model"
	"portfoliotracker/internal/db/models/postgres/public/table"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

const (
	TickerMappingSourceManual  = "manual"
	TickerMappingSourceAuto    = "auto"
	TickerMappingSourceBuiltin = "builtin"
)

type TickerMappingRepository interface {
	Get(ctx context.Context, symbol, exchange string) (*model.TickerMapping, error)
	Add(ctx context.Context, m model.TickerMapping) error
}

type tickerMappingRepositoryHandler struct {
	Db *sql.DB
}

func NewTickerMappingRepository(db *sql.DB) TickerMappingRepository {
	return tickerMappingRepositoryHandler{Db: db}
}

// Get returns the active mapping for a broker symbol, or nil.
func (h tickerMappingRepositoryHandler) Get(ctx context.Context, symbol, exchange string) (*model.TickerMapping, error) {
	query := table.TickerMapping.
		SELECT(table.TickerMapping.AllColumns).
		WHERE(
			postgres.AND(
				table.TickerMapping.BrokerSymbol.EQ(postgres.String(symbol)),
				table.TickerMapping.BrokerExchange.EQ(postgres.String(exchange)),
				table.TickerMapping.IsActive.IS_TRUE(),
			),
		)

	out := model.TickerMapping{}
	err := query.QueryContext(ctx, h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get ticker mapping for %s@%s: %w", symbol, exchange, err)
	}

	return &out, nil
}

// Add never replaces an existing mapping, so manual entries win over
// discovered ones.
func (h tickerMappingRepositoryHandler) Add(ctx context.Context, m model.TickerMapping) error {
	m.CreatedAt = time.Now().UTC()
	query := table.TickerMapping.
		INSERT(table.TickerMapping.MutableColumns).
		MODEL(m).
		ON_CONFLICT(table.TickerMapping.BrokerSymbol, table.TickerMapping.BrokerExchange).
		DO_NOTHING()

	_, err := query.ExecContext(ctx, h.Db)
	if err != nil {
		return fmt.Errorf("failed to add ticker mapping %s@%s: %w", m.BrokerSymbol, m.BrokerExchange, err)
	}

	return nil
}
