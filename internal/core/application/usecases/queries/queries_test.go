package queries_test

import (
	"testing"
	"time"

	"fastereats/internal/core/application/usecases/queries"
	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrderQuery_NotConstructedViaConstructor(t *testing.T) {
	err := queries.GetOrderQuery{}.Validate()
	require.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}

func TestNewGetOrderQuery_EmptyNumber(t *testing.T) {
	_, err := queries.NewGetOrderQuery("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewListOrdersQuery_RequiresAFilter(t *testing.T) {
	_, err := queries.NewListOrdersQuery(nil, nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	customerID := kernel.NewUUID()
	query, err := queries.NewListOrdersQuery(&customerID, nil)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, &customerID, query.CustomerID())
	assert.Nil(t, query.RestaurantID())
}

func TestListOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	err := queries.ListOrdersQuery{}.Validate()
	require.ErrorIs(t, err, queries.ErrListOrdersQueryIsNotConstructed)
}

func TestNewListOrderHistoryQuery(t *testing.T) {
	query, err := queries.NewListOrderHistoryQuery("ORD_20250101_001")
	require.NoError(t, err)
	assert.Equal(t, "ORD_20250101_001", query.OrderNumber())

	err = queries.ListOrderHistoryQuery{}.Validate()
	require.ErrorIs(t, err, queries.ErrListOrderHistoryQueryIsNotConstructed)
}

func TestNewListOpenJobsQuery_Limit(t *testing.T) {
	tests := []struct {
		name    string
		limit   int
		want    int
		wantErr error
	}{
		{"zero uses default", 0, queries.DefaultOpenJobsLimit, nil},
		{"one", 1, 1, nil},
		{"max", queries.MaxOpenJobsLimit, queries.MaxOpenJobsLimit, nil},
		{"negative", -1, 0, errs.ErrValueIsOutOfRange},
		{"above max", queries.MaxOpenJobsLimit + 1, 0, errs.ErrValueIsOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := queries.NewListOpenJobsQuery(nil, tt.limit)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, query.Limit())
		})
	}
}

func TestCursor_EncodeDecode(t *testing.T) {
	c := queries.Cursor{
		CreatedAt: time.Date(2025, 1, 1, 12, 30, 0, 123456000, time.UTC),
		ID:        uuid.New(),
	}

	decoded, err := queries.DecodeCursor(c.Encode())
	require.NoError(t, err)
	assert.True(t, c.CreatedAt.Equal(decoded.CreatedAt))
	assert.Equal(t, c.ID, decoded.ID)
}

func TestDecodeCursor_Garbage(t *testing.T) {
	for _, token := range []string{"%%%", "bm8tc2VwYXJhdG9y", "eHx5"} {
		_, err := queries.DecodeCursor(token)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid, token)
	}
}

func TestListCouponsQuery(t *testing.T) {
	require.NoError(t, queries.NewListCouponsQuery().Validate())
	require.ErrorIs(t, queries.ListCouponsQuery{}.Validate(), queries.ErrListCouponsQueryIsNotConstructed)
}
