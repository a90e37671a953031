package queries_test

import (
	"context"
	"testing"

	"fastereats/internal/core/application/usecases/queries"
	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/pkg/errs"

	"github.com/stretchr/testify/require"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Nothing listens on port 1, so every statement fails to connect.
func unreachableDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "host=127.0.0.1 port=1 user=app password=secret dbname=app sslmode=disable connect_timeout=1"
	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{
		DisableAutomaticPing: true,
		TranslateError:       true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestQueryHandlers_StorageUnreachable(t *testing.T) {
	db := unreachableDB(t)
	ctx := context.Background()
	customerID := kernel.NewUUID()

	tests := []struct {
		name string
		run  func() error
	}{
		{
			name: "get order",
			run: func() error {
				q, err := queries.NewGetOrderQuery("ORD_20261019_001")
				require.NoError(t, err)
				_, err = queries.NewGetOrderQueryHandler(db).Handle(ctx, q)
				return err
			},
		},
		{
			name: "list orders",
			run: func() error {
				q, err := queries.NewListOrdersQuery(&customerID, nil)
				require.NoError(t, err)
				_, err = queries.NewListOrdersQueryHandler(db).Handle(ctx, q)
				return err
			},
		},
		{
			name: "order history",
			run: func() error {
				q, err := queries.NewListOrderHistoryQuery("ORD_20261019_001")
				require.NoError(t, err)
				_, err = queries.NewListOrderHistoryQueryHandler(db).Handle(ctx, q)
				return err
			},
		},
		{
			name: "open jobs",
			run: func() error {
				q, err := queries.NewListOpenJobsQuery(nil, 10)
				require.NoError(t, err)
				_, err = queries.NewListOpenJobsQueryHandler(db).Handle(ctx, q)
				return err
			},
		},
		{
			name: "drivers",
			run: func() error {
				_, err := queries.NewListDriversQueryHandler(db).Handle(ctx, queries.NewListDriversQuery())
				return err
			},
		},
		{
			name: "get driver",
			run: func() error {
				q, err := queries.NewGetDriverQuery(kernel.NewUUID())
				require.NoError(t, err)
				_, err = queries.NewGetDriverQueryHandler(db).Handle(ctx, q)
				return err
			},
		},
		{
			name: "coupons",
			run: func() error {
				_, err := queries.NewListCouponsQueryHandler(db).Handle(ctx, queries.NewListCouponsQuery())
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrServiceUnavailable)

			var unavailable *errs.ServiceUnavailableError
			require.ErrorAs(t, err, &unavailable)
			require.Equal(t, "postgres", unavailable.ServiceName)
		})
	}
}
