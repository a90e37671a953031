package http

import (
	"net/http"

	"fastereats/internal/core/application/usecases/commands"
	"fastereats/internal/core/application/usecases/queries"
	"fastereats/internal/core/domain/model/driver"
	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListDrivers handles GET /api/v1/drivers.
func (s *Server) ListDrivers(ctx echo.Context) error {
	views, err := s.queries.ListDrivers.Handle(ctx.Request().Context(), queries.NewListDriversQuery())
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	response := make([]servers.Driver, len(views))
	for i, v := range views {
		response[i] = toDriver(v)
	}
	return ctx.JSON(http.StatusOK, response)
}

// RegisterDriver handles POST /api/v1/drivers. A licence number already on
// file is 400.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	var req servers.DriverRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	profile, err := driverProfileFrom(req)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}
	cmd, err := commands.NewRegisterDriverCommand(profile)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	id, err := s.commands.RegisterDriver.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	view, err := s.readDriver(ctx, id)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}
	return ctx.JSON(http.StatusCreated, toDriver(view))
}

// GetDriver handles GET /api/v1/drivers/{driverId}.
func (s *Server) GetDriver(ctx echo.Context, driverID servers.DriverId) error {
	id, err := uuidParam("driverId", driverID)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	view, err := s.readDriver(ctx, id)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}
	return ctx.JSON(http.StatusOK, toDriver(view))
}

// UpdateDriver handles PUT /api/v1/drivers/{driverId}.
func (s *Server) UpdateDriver(ctx echo.Context, driverID servers.DriverId) error {
	var req servers.DriverRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	id, err := uuidParam("driverId", driverID)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}
	profile, err := driverProfileFrom(req)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}
	cmd, err := commands.NewUpdateDriverCommand(id, profile)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}
	if err = s.commands.UpdateDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, s.logger, err)
	}

	view, err := s.readDriver(ctx, id)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}
	return ctx.JSON(http.StatusOK, toDriver(view))
}

// DeleteDriver handles DELETE /api/v1/drivers/{driverId}.
func (s *Server) DeleteDriver(ctx echo.Context, driverID servers.DriverId) error {
	id, err := uuidParam("driverId", driverID)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}
	cmd, err := commands.NewDeleteDriverCommand(id)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}
	if err = s.commands.DeleteDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, s.logger, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) readDriver(ctx echo.Context, id kernel.UUID) (queries.DriverView, error) {
	query, err := queries.NewGetDriverQuery(id)
	if err != nil {
		return queries.DriverView{}, err
	}
	return s.queries.GetDriver.Handle(ctx.Request().Context(), query)
}

func driverProfileFrom(req servers.DriverRequest) (driver.Profile, error) {
	bank, err := driver.NewBankDetails(req.BankDetails.BankName, req.BankDetails.AccountNumber)
	if err != nil {
		return driver.Profile{}, err
	}
	return driver.Profile{
		Name:          req.Name,
		Phone:         req.Phone,
		LicenseNumber: req.LicenseNumber,
		LicenseExpiry: req.LicenseExpiry,
		VehicleType:   req.VehicleType,
		Bank:          bank,
	}, nil
}

func toDriver(v queries.DriverView) servers.Driver {
	return servers.Driver{
		DriverId:      v.ID,
		Name:          v.Name,
		Phone:         v.Phone,
		LicenseNumber: v.LicenseNumber,
		LicenseExpiry: v.LicenseExpiry,
		VehicleType:   v.VehicleType,
		BankName:      v.BankName,
		AccountNumber: v.MaskedAccountNumber,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}
