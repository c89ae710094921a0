package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicalcanvas/practice-api/internal/api/metrics"
	"github.com/clinicalcanvas/practice-api/internal/core/ports"
)

// ClientHandler handles HTTP requests for caseload operations. Domain errors
// propagate to the central error handler for status mapping.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// List handles GET /api/clients.
//
// @Summary      List the caller's clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Client
// @Failure      401  {object}  errorResponse
// @Router       /api/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	therapistID, err := ctxTherapistID(c)
	if err != nil {
		return err
	}

	clients, err := h.service.List(c.Request().Context(), therapistID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

// Get handles GET /api/clients/:id.
//
// @Summary      Get a single client
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  domain.Client
// @Failure      404  {object}  errorResponse
// @Router       /api/clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	therapistID, err := ctxTherapistID(c)
	if err != nil {
		return err
	}

	client, err := h.service.Get(c.Request().Context(), therapistID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// Create handles POST /api/clients.
//
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      clientRequest  true  "Client fields"
// @Success      201   {object}  domain.Client
// @Failure      400   {object}  errorResponse
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	therapistID, err := ctxTherapistID(c)
	if err != nil {
		return err
	}

	var req clientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	client, err := h.service.Create(c.Request().Context(), therapistID, req.toInput())
	if err != nil {
		return err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("client").Inc()
	return c.JSON(http.StatusCreated, client)
}

// Update handles PUT /api/clients/:id. The update replaces every editable
// field; omitted optional fields are cleared.
//
// @Summary      Replace a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Client id"
// @Param        body  body      clientRequest  true  "Client fields"
// @Success      200   {object}  domain.Client
// @Failure      404   {object}  errorResponse
// @Router       /api/clients/{id} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	therapistID, err := ctxTherapistID(c)
	if err != nil {
		return err
	}

	var req clientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	client, err := h.service.Update(c.Request().Context(), therapistID, c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// Delete handles DELETE /api/clients/:id.
//
// @Summary      Delete a client
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  deletedResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	therapistID, err := ctxTherapistID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), therapistID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deletedResponse{Message: "client deleted"})
}
