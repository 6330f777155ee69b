package users

import (
	"errors"
	"net/http"

	"planetary-api/internal/api"
	"planetary-api/internal/database"
	"planetary-api/internal/model"
	"planetary-api/internal/service"
	"planetary-api/internal/store"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var (
	createUser       = store.CreateUser
	getUserByEmail   = store.GetUserByEmail
	setTempPassword  = store.SetTempPassword
	hashPassword     = service.HashPassword
	generatePassword = service.GeneratePassword
)

// RegisterHandler 註冊新使用者
// @Summary     Register a user
// @Description 以表單建立帳號；email 已存在時回傳 409
// @Tags        users
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       email      formData string true  "Email"
// @Param       first_name formData string false "名"
// @Param       last_name  formData string false "姓"
// @Param       password   formData string false "密碼"
// @Success     201 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /register [post]
func RegisterHandler(db database.DB, log *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		// 密碼哈希
		hash, err := hashPassword(req.Password)
		if err != nil {
			log.Error("hash password", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		// 唯一性交由資料庫約束判斷
		_, err = createUser(c.Request().Context(), db, &model.User{
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        req.Email,
			PasswordHash: hash,
		})
		if errors.Is(err, store.ErrConflict) {
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "That email already exist!"})
		}
		if err != nil {
			log.Error("register user", zap.String("email", req.Email), zap.Error(err))
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to register user"})
		}

		return c.JSON(http.StatusCreated, api.MessageResponse{Message: "User has been registered!"})
	}
}
