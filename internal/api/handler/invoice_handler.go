package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicalcanvas/practice-api/internal/api/metrics"
	"github.com/clinicalcanvas/practice-api/internal/core/ports"
)

// InvoiceHandler handles HTTP requests for billing.
type InvoiceHandler struct {
	service ports.InvoiceService
}

func NewInvoiceHandler(service ports.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

// List handles GET /api/invoices.
//
// @Summary      List the caller's invoices
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.InvoiceWithClient
// @Failure      401  {object}  errorResponse
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c echo.Context) error {
	therapistID, err := ctxTherapistID(c)
	if err != nil {
		return err
	}

	invoices, err := h.service.List(c.Request().Context(), therapistID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoices)
}

// Create handles POST /api/invoices. The referenced client must belong to
// the caller.
//
// @Summary      Create an invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      invoiceRequest  true  "Invoice fields"
// @Success      201   {object}  domain.Invoice
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Create(c echo.Context) error {
	therapistID, err := ctxTherapistID(c)
	if err != nil {
		return err
	}

	var req invoiceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	invoice, err := h.service.Create(c.Request().Context(), therapistID, req.toInput())
	if err != nil {
		return err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("invoice").Inc()
	return c.JSON(http.StatusCreated, invoice)
}

// Update handles PUT /api/invoices/:id.
//
// @Summary      Replace an invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Invoice id"
// @Param        body  body      invoiceRequest  true  "Invoice fields"
// @Success      200   {object}  domain.Invoice
// @Failure      404   {object}  errorResponse
// @Router       /api/invoices/{id} [put]
func (h *InvoiceHandler) Update(c echo.Context) error {
	therapistID, err := ctxTherapistID(c)
	if err != nil {
		return err
	}

	var req invoiceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	invoice, err := h.service.Update(c.Request().Context(), therapistID, c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoice)
}
