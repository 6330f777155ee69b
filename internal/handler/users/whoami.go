package users

import (
	"net/http"

	"planetary-api/internal/api"
	"planetary-api/internal/middleware"

	"github.com/labstack/echo/v4"
)

// WhoAmIHandler 回傳 token 所代表的使用者 email
// @Summary     Current identity
// @Tags        users
// @Produce     json
// @Success     200 {object} api.WhoAmIResponse
// @Failure     401 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /whoami [get]
func WhoAmIHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.ClaimsFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "unauthorized"})
		}
		return c.JSON(http.StatusOK, api.WhoAmIResponse{Email: claims.Subject})
	}
}
