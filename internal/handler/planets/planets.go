package planets

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"planetary-api/internal/api"
	"planetary-api/internal/cache"
	"planetary-api/internal/database"
	"planetary-api/internal/model"
	"planetary-api/internal/store"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var (
	listPlanets   = store.ListPlanets
	getPlanetByID = store.GetPlanetByID
	createPlanet  = store.CreatePlanet
)

// ListPlanetsHandler 列出所有行星，先讀快取
// @Summary     List planets
// @Tags        planets
// @Produce     json
// @Success     200 {object} api.PlanetListResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /planets [get]
func ListPlanetsHandler(db database.DB, cch cache.Cache, ttl time.Duration, log *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		// 世代須在查詢前取得，新增行星後舊世代的清單不再被讀到
		gen, cacheErr := cache.PlanetGeneration(ctx, cch)
		if cacheErr != nil {
			log.Warn("planet cache generation", zap.Error(cacheErr))
		}

		var resp api.PlanetListResponse
		key := cache.PlanetListKey(gen)
		if cacheErr == nil {
			if hit, err := cache.GetJSON(ctx, cch, key, &resp); err != nil {
				log.Warn("planet cache read", zap.String("key", key), zap.Error(err))
			} else if hit {
				return c.JSON(http.StatusOK, resp)
			}
		}

		planets, err := listPlanets(ctx, db)
		if err != nil {
			log.Error("list planets", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to list planets"})
		}
		resp = api.PlanetListResponse{Data: api.NewPlanetResponses(planets)}

		if cacheErr == nil {
			if err := cache.SetJSON(ctx, cch, key, resp, ttl); err != nil {
				log.Warn("planet cache write", zap.String("key", key), zap.Error(err))
			}
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// PlanetDetailsHandler 依 ID 取得單一行星
// @Summary     Planet details
// @Tags        planets
// @Produce     json
// @Param       planet_id path integer true "行星 ID"
// @Success     200 {object} api.PlanetDetailResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /planet_details/{planet_id} [get]
func PlanetDetailsHandler(db database.DB, cch cache.Cache, ttl time.Duration, log *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("planet_id"))
		if err != nil || id < 0 {
			return echo.ErrNotFound
		}
		ctx := c.Request().Context()

		gen, cacheErr := cache.PlanetGeneration(ctx, cch)
		if cacheErr != nil {
			log.Warn("planet cache generation", zap.Error(cacheErr))
		}

		var resp api.PlanetDetailResponse
		key := cache.PlanetKey(gen, id)
		if cacheErr == nil {
			if hit, err := cache.GetJSON(ctx, cch, key, &resp); err != nil {
				log.Warn("planet cache read", zap.String("key", key), zap.Error(err))
			} else if hit {
				return c.JSON(http.StatusOK, resp)
			}
		}

		planet, err := getPlanetByID(ctx, db, id)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "That planet doesn't exist!"})
		}
		if err != nil {
			log.Error("load planet", zap.Int("planet_id", id), zap.Error(err))
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load planet"})
		}
		resp = api.PlanetDetailResponse{Data: api.NewPlanetResponse(*planet)}

		if cacheErr == nil {
			if err := cache.SetJSON(ctx, cch, key, resp, ttl); err != nil {
				log.Warn("planet cache write", zap.String("key", key), zap.Error(err))
			}
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// AddPlanetHandler 新增行星
// @Summary     Add a planet
// @Description 名稱重複回傳 409；數值欄位格式錯誤回傳 400
// @Tags        planets
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       name      formData string true  "行星名稱"
// @Param       type      formData string false "行星類型"
// @Param       home_star formData string false "所屬恆星"
// @Param       mass      formData number false "質量"
// @Param       distance  formData number false "距離"
// @Param       radius    formData number false "半徑"
// @Success     201 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /add_planet [post]
func AddPlanetHandler(db database.DB, cch cache.Cache, log *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.AddPlanetRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		_, err := createPlanet(ctx, db, &model.Planet{
			Name:     req.Name,
			Type:     req.Type,
			HomeStar: req.HomeStar,
			Mass:     req.Mass,
			Radius:   req.Radius,
			Distance: req.Distance,
		})
		if errors.Is(err, store.ErrConflict) {
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "There is already a planet by the name " + req.Name})
		}
		if err != nil {
			log.Error("add planet", zap.String("name", req.Name), zap.Error(err))
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to add planet"})
		}

		// 寫入後才遞增世代，與寫入同時進行的清單讀取只會落在舊世代
		if err := cache.BumpPlanets(ctx, cch); err != nil {
			log.Warn("planet cache invalidate", zap.Error(err))
		}
		return c.JSON(http.StatusCreated, api.MessageResponse{Message: req.Name + " has successfully been added"})
	}
}
