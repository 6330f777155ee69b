package handler

import (
	"net/http"
	"strconv"

	"planetary-api/internal/api"

	"github.com/labstack/echo/v4"
)

// adultAge /parameters 允許的最小年齡
const adultAge = 18

// HelloWorldHandler 純文字問候
// @Summary     Hello world
// @Tags        greeting
// @Produce     plain
// @Success     200 {string} string "Hello World!"
// @Router      / [get]
func HelloWorldHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.String(http.StatusOK, "Hello World!")
	}
}

// SuperSimpleHandler 回傳固定 JSON 訊息
// @Summary     Super simple
// @Tags        greeting
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Router      /super_simple [get]
func SuperSimpleHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Hello from Planetary API."})
	}
}

// NotFoundHandler 永遠回傳 404
// @Summary     Not found demo
// @Tags        greeting
// @Produce     json
// @Failure     404 {object} api.ErrorResponse
// @Router      /not_found [get]
func NotFoundHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "The resource was not found"})
	}
}

// ParametersHandler 依 query 參數 age 判斷是否成年
// @Summary     Age check (query)
// @Description age 小於 18 回傳 401；age 缺少或非整數回傳 400
// @Tags        greeting
// @Produce     json
// @Param       name query string  true "名稱"
// @Param       age  query integer true "年齡"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Router      /parameters [get]
func ParametersHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		name := c.QueryParam("name")
		var age int
		if err := echo.QueryParamsBinder(c).MustInt("age", &age).BindError(); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "age must be an integer"})
		}

		if age < adultAge {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Sorry " + name + ", you are not old enough."})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Welcome " + name + ", you are old enough."})
	}
}

// URLVariablesHandler 依 path 參數判斷是否成年
// @Summary     Age check (path)
// @Description age 大於 18 才歡迎；age 不是非負整數時回傳 404
// @Tags        greeting
// @Produce     json
// @Param       name path string  true "名稱"
// @Param       age  path integer true "年齡"
// @Success     200 {object} api.MessageResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /url_variables/{name}/{age} [get]
func URLVariablesHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		name := c.Param("name")
		age, err := strconv.ParseUint(c.Param("age"), 10, 64)
		if err != nil {
			return echo.ErrNotFound
		}

		if age > adultAge {
			return c.JSON(http.StatusOK, api.MessageResponse{Message: "Welcome " + name + ", you are old enough"})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Sorry " + name + ", you are not old enough"})
	}
}
