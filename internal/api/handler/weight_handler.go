package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/traincore/coaching-api/internal/core/ports"
)

// WeightHandler handles body-weight tracking.
type WeightHandler struct {
	service ports.WeightService
}

func NewWeightHandler(service ports.WeightService) *WeightHandler {
	return &WeightHandler{service: service}
}

type recordWeightRequest struct {
	// ClientID defaults to the caller; only admins may record for others.
	ClientID   string     `json:"client_id"`
	WeightKg   float64    `json:"weight_kg" validate:"required,gt=0"`
	RecordedAt *time.Time `json:"recorded_at"`
}

// Record handles POST /weights (admin or the client themselves).
//
// @Summary      Record a body-weight measurement
// @Tags         weights
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recordWeightRequest  true  "Measurement"
// @Success      201   {object}  domain.WeightRecord
// @Failure      403   {object}  map[string]string
// @Router       /weights [post]
func (h *WeightHandler) Record(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req recordWeightRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.RecordWeightInput{
		ClientID: req.ClientID,
		WeightKg: req.WeightKg,
	}
	if req.RecordedAt != nil {
		in.RecordedAt = *req.RecordedAt
	}

	rec, err := h.service.Record(c.Request().Context(), caller, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, rec)
}

// ListByClient handles GET /weights/client/:clientId (admin or that client).
//
// @Summary      List a client's weight records
// @Tags         weights
// @Produce      json
// @Security     BearerAuth
// @Param        clientId  path      string  true  "Client id"
// @Success      200       {array}   domain.WeightRecord
// @Failure      403       {object}  map[string]string
// @Router       /weights/client/{clientId} [get]
func (h *WeightHandler) ListByClient(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	recs, err := h.service.ListByClient(c.Request().Context(), caller, c.Param("clientId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recs)
}

// Delete handles DELETE /weights/:id (admin or the record's owner).
func (h *WeightHandler) Delete(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
