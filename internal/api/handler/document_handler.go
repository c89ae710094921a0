package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicalcanvas/practice-api/internal/api/metrics"
	"github.com/clinicalcanvas/practice-api/internal/core/ports"
)

// DocumentHandler handles HTTP requests for practice documents.
type DocumentHandler struct {
	service ports.DocumentService
}

func NewDocumentHandler(service ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// List handles GET /api/documents.
//
// @Summary      List the caller's documents
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Document
// @Failure      401  {object}  errorResponse
// @Router       /api/documents [get]
func (h *DocumentHandler) List(c echo.Context) error {
	therapistID, err := ctxTherapistID(c)
	if err != nil {
		return err
	}

	documents, err := h.service.List(c.Request().Context(), therapistID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, documents)
}

// Create handles POST /api/documents.
//
// @Summary      Register a document
// @Tags         documents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      documentRequest  true  "Document fields"
// @Success      201   {object}  domain.Document
// @Failure      400   {object}  errorResponse
// @Router       /api/documents [post]
func (h *DocumentHandler) Create(c echo.Context) error {
	therapistID, err := ctxTherapistID(c)
	if err != nil {
		return err
	}

	var req documentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	document, err := h.service.Create(c.Request().Context(), therapistID, req.toInput())
	if err != nil {
		return err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("document").Inc()
	return c.JSON(http.StatusCreated, document)
}
