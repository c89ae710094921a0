package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxTherapistID extracts the authenticated user id injected by the Auth
// middleware. Its presence proves the middleware ran; a token without it is
// structurally valid but operationally unusable, so reject with 401.
func ctxTherapistID(c echo.Context) (string, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}

// bindAndValidate binds the JSON body into req and runs schema validation,
// converting failures into 400s before any service call.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
