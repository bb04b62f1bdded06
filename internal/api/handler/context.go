package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUserID extracts the verified token subject injected by the Auth
// middleware. Its presence proves the middleware ran; a token without a
// subject is structurally valid but operationally unusable, so reject it
// with 401 before any service call.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "token missing subject")
	}
	return userID, nil
}
