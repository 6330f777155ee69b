package users

import (
	"errors"
	"net/http"

	"planetary-api/internal/api"
	"planetary-api/internal/database"
	"planetary-api/internal/mailer"
	"planetary-api/internal/store"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const passwordSubject = "Your planetary API password"

// RetrievePasswordHandler 產生臨時密碼並寄送到使用者信箱
// @Summary     Retrieve password
// @Description 密碼以雜湊儲存，無法取回原密碼；改為寄出臨時密碼，原密碼仍可登入
// @Tags        users
// @Produce     json
// @Param       email path string true "Email"
// @Success     200 {object} api.MessageResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /retrieve_password/{email} [get]
func RetrievePasswordHandler(db database.DB, m mailer.Mailer, log *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		email := c.Param("email")
		ctx := c.Request().Context()

		user, err := getUserByEmail(ctx, db, email)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "That email doesn't exist"})
		}
		if err != nil {
			log.Error("load user", zap.String("email", email), zap.Error(err))
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load user"})
		}

		password, err := generatePassword()
		if err != nil {
			log.Error("generate password", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to generate password"})
		}
		hash, err := hashPassword(password)
		if err != nil {
			log.Error("hash password", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		// 寄送成功才寫入臨時密碼；原密碼不受影響
		if err := m.Send(ctx, user.Email, passwordSubject, passwordSubject+" is "+password); err != nil {
			log.Error("send password mail", zap.String("email", user.Email), zap.Error(err))
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to send password"})
		}
		if err := setTempPassword(ctx, db, user.ID, hash); err != nil {
			log.Error("store temp password", zap.Int("user_id", user.ID), zap.Error(err))
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to reset password"})
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Password sent to " + email})
	}
}
