package queries

import (
	"context"

	"fastereats/internal/adapters/out/postgres/pgerr"
	"fastereats/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetDriverQueryHandler struct {
	db *gorm.DB
}

func NewGetDriverQueryHandler(db *gorm.DB) GetDriverQueryHandler {
	return GetDriverQueryHandler{db: db}
}

// Handle returns *errs.ObjectNotFoundError for unknown ids.
func (h GetDriverQueryHandler) Handle(ctx context.Context, query GetDriverQuery) (DriverView, error) {
	if err := query.Validate(); err != nil {
		return DriverView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+driverViewColumns+`
		FROM drivers
		WHERE id = ?
	`, query.DriverID().Bytes()).Rows()
	if err != nil {
		return DriverView{}, pgerr.Classify(err)
	}
	defer rows.Close()

	views, err := scanDriverViews(rows)
	if err != nil {
		return DriverView{}, err
	}
	if len(views) == 0 {
		return DriverView{}, errs.NewObjectNotFoundError("driverId", query.DriverID().String())
	}
	return views[0], nil
}
