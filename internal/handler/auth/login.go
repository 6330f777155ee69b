package auth

import (
	"errors"
	"net/http"
	"time"

	"planetary-api/internal/api"
	"planetary-api/internal/database"
	"planetary-api/internal/service"
	"planetary-api/internal/store"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var (
	getUserByEmail   = store.GetUserByEmail
	issueAccessToken = service.IssueAccessToken
)

const badCredentials = "Bad email or password"

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 接受 JSON 或表單；成功回傳存取令牌
// @Tags        auth
// @Accept      json,application/x-www-form-urlencoded
// @Produce     json
// @Param       body body api.LoginRequest true "登入資料"
// @Success     201 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /login [post]
func LoginHandler(db database.DB, secret []byte, ttl time.Duration, log *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		// 依 Content-Type 綁定 JSON 或 form
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		ctx := c.Request().Context()

		// 撈使用者資料
		user, err := getUserByEmail(ctx, db, req.Email)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: badCredentials})
		}
		if err != nil {
			log.Error("load user", zap.String("email", req.Email), zap.Error(err))
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load user"})
		}

		// 驗證密碼
		authUser, err := service.AuthenticateUser(ctx, *user, req.Password)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: badCredentials})
		}

		// 發行存取令牌
		token, err := issueAccessToken(secret, authUser.Email, ttl)
		if err != nil {
			log.Error("issue access token", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusCreated, api.LoginResponse{Message: "Login successful!", AccessToken: token})
	}
}
