package repository

import (
	"context"
	"portfoliotracker/internal/db/models/postgres/public/model"
	"portfoliotracker/internal/domain"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_analystRatingRepositoryHandler(t *testing.T) {
	db := newTestDb(t)
	ctx := context.Background()

	security, err := NewSecurityRepository(db).Upsert(ctx, nil, model.Security{
		Symbol:   "TEST-" + uuid.NewString()[:8],
		Exchange: "NASDAQ",
		Name:     "test security",
		Currency: "USD",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Exec("DELETE FROM security WHERE security_id = $1", security.SecurityID)
	})

	handler := NewAnalystRatingRepository(db)
	first := time.Date(2024, 3, 11, 6, 0, 0, 0, time.UTC)
	require.NoError(t, handler.Upsert(ctx, nil, security.SecurityID, domain.AnalystRating{Buy: 3, Hold: 1, LastUpdated: first}))

	second := time.Date(2024, 3, 14, 6, 0, 0, 0, time.UTC)
	require.NoError(t, handler.Upsert(ctx, nil, security.SecurityID, domain.AnalystRating{StrongBuy: 2, Buy: 4, LastUpdated: second}))

	ratings, err := handler.ListBySecurity(ctx, []uuid.UUID{security.SecurityID})
	require.NoError(t, err)
	require.Len(t, ratings, 1)
	rating := ratings[security.SecurityID]
	require.Equal(t, int32(2), rating.StrongBuy)
	require.Equal(t, int32(0), rating.Hold)
	require.True(t, second.Equal(rating.LastUpdated))

	all, err := handler.List(ctx)
	require.NoError(t, err)
	require.Contains(t, all, security.SecurityID)
}
