package queries

import (
	"context"

	"fastereats/internal/adapters/out/postgres/pgerr"

	"gorm.io/gorm"
)

type ListDriversQueryHandler struct {
	db *gorm.DB
}

func NewListDriversQueryHandler(db *gorm.DB) ListDriversQueryHandler {
	return ListDriversQueryHandler{db: db}
}

func (h ListDriversQueryHandler) Handle(ctx context.Context, query ListDriversQuery) ([]DriverView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + driverViewColumns + `
		FROM drivers
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, pgerr.Classify(err)
	}
	defer rows.Close()

	return scanDriverViews(rows)
}
