package handler

import (
	"net/http"
	"time"

	"planetary-api/internal/api"
	"planetary-api/internal/cache"
	"planetary-api/internal/database"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const pingKey = "planetary:ping"

// PingHandler 健康檢查
// @Summary     Health Check
// @Description 回傳 pong，並檢查資料庫與快取連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /ping [get]
func PingHandler(db database.DB, cch cache.Cache, log *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.PingContext(ctx); err != nil {
			log.Error("database ping", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "database unhealthy"})
		}
		if err := cch.Set(ctx, pingKey, "1", time.Second).Err(); err != nil {
			log.Error("cache ping", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "cache unhealthy"})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "pong"})
	}
}
