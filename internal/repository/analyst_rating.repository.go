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

type AnalystRatingRepository interface {
	Upsert(ctx context.Context, tx *sql.Tx, securityID uuid.UUID, rating domain.AnalystRating) error
	List(ctx context.Context) (map[uuid.UUID]domain.AnalystRating, error)
	ListBySecurity(ctx context.Context, securityIDs []uuid.UUID) (map[uuid.UUID]domain.AnalystRating, error)
}

type analystRatingRepositoryHandler struct {
	Db *sql.DB
}

func NewAnalystRatingRepository(db *sql.DB) AnalystRatingRepository {
	return analystRatingRepositoryHandler{Db: db}
}

// Upsert keeps one row per security; a refresh overwrites the counts.
func (h analystRatingRepositoryHandler) Upsert(ctx context.Context, tx *sql.Tx, securityID uuid.UUID, rating domain.AnalystRating) error {
	m := model.AnalystRating{
		SecurityID:  securityID,
		StrongBuy:   rating.StrongBuy,
		Buy:         rating.Buy,
		Hold:        rating.Hold,
		Sell:        rating.Sell,
		StrongSell:  rating.StrongSell,
		LastUpdated: rating.LastUpdated,
		CreatedAt:   time.Now().UTC(),
	}

	query := table.AnalystRating.
		INSERT(table.AnalystRating.MutableColumns).
		MODEL(m).
		ON_CONFLICT(table.AnalystRating.SecurityID).
		DO_UPDATE(
			postgres.SET(
				table.AnalystRating.StrongBuy.SET(table.AnalystRating.EXCLUDED.StrongBuy),
				table.AnalystRating.Buy.SET(table.AnalystRating.EXCLUDED.Buy),
				table.AnalystRating.Hold.SET(table.AnalystRating.EXCLUDED.Hold),
				table.AnalystRating.Sell.SET(table.AnalystRating.EXCLUDED.Sell),
				table.AnalystRating.StrongSell.SET(table.AnalystRating.EXCLUDED.StrongSell),
				table.AnalystRating.LastUpdated.SET(table.AnalystRating.EXCLUDED.LastUpdated),
			),
		)

	_, err := query.ExecContext(ctx, dbOrTx(h.Db, tx))
	if err != nil {
		return fmt.Errorf("failed to upsert analyst rating for %s: %w", securityID.String(), err)
	}

	return nil
}

func (h analystRatingRepositoryHandler) List(ctx context.Context) (map[uuid.UUID]domain.AnalystRating, error) {
	query := table.AnalystRating.
		SELECT(table.AnalystRating.AllColumns)

	return h.query(ctx, query)
}

func (h analystRatingRepositoryHandler) ListBySecurity(ctx context.Context, securityIDs []uuid.UUID) (map[uuid.UUID]domain.AnalystRating, error) {
	if len(securityIDs) == 0 {
		return map[uuid.UUID]domain.AnalystRating{}, nil
	}

	ids := []postgres.Expression{}
	for _, id := range securityIDs {
		ids = append(ids, postgres.UUID(id))
	}

	query := table.AnalystRating.
		SELECT(table.AnalystRating.AllColumns).
		WHERE(table.AnalystRating.SecurityID.IN(ids...))

	return h.query(ctx, query)
}

func (h analystRatingRepositoryHandler) query(ctx context.Context, query postgres.SelectStatement) (map[uuid.UUID]domain.AnalystRating, error) {
	result := []model.AnalystRating{}
	err := query.QueryContext(ctx, h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyst ratings: %w", err)
	}

	out := map[uuid.UUID]domain.AnalystRating{}
	for _, r := range result {
		out[r.SecurityID] = domain.AnalystRating{
			StrongBuy:   r.StrongBuy,
			Buy:         r.Buy,
			Hold:        r.Hold,
			Sell:        r.Sell,
			StrongSell:  r.StrongSell,
			LastUpdated: r.LastUpdated,
		}
	}

	return out, nil
}
