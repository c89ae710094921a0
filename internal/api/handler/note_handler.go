package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicalcanvas/practice-api/internal/api/metrics"
	"github.com/clinicalcanvas/practice-api/internal/core/ports"
)

// NoteHandler handles HTTP requests for clinical notes.
type NoteHandler struct {
	service ports.NoteService
}

func NewNoteHandler(service ports.NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

// List handles GET /api/notes. An optional client_id query parameter narrows
// the result to one client's chart.
//
// @Summary      List the caller's notes
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        client_id  query     string  false  "Filter by client"
// @Success      200        {array}   domain.NoteWithClient
// @Failure      401        {object}  errorResponse
// @Router       /api/notes [get]
func (h *NoteHandler) List(c echo.Context) error {
	therapistID, err := ctxTherapistID(c)
	if err != nil {
		return err
	}

	notes, err := h.service.List(c.Request().Context(), therapistID, c.QueryParam("client_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notes)
}

// Create handles POST /api/notes. The client, and the appointment when one
// is referenced, must belong to the caller.
//
// @Summary      Create a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      noteRequest  true  "Note fields"
// @Success      201   {object}  domain.Note
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/notes [post]
func (h *NoteHandler) Create(c echo.Context) error {
	therapistID, err := ctxTherapistID(c)
	if err != nil {
		return err
	}

	var req noteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	note, err := h.service.Create(c.Request().Context(), therapistID, req.toInput())
	if err != nil {
		return err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("note").Inc()
	return c.JSON(http.StatusCreated, note)
}
