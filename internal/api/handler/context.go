package handler

import "github.com/labstack/echo/v4"

// ctxUserID returns the authenticated user id injected by the OptionalAuth
// middleware, or 0 when the request carried no valid token. Handlers treat
// it as a fallback identity only; the client-supplied ids stay authoritative.
func ctxUserID(c echo.Context) int64 {
	id, _ := c.Get("user_id").(int64)
	return id
}
