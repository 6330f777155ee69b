package router

import (
	"time"

	"planetary-api/internal/cache"
	"planetary-api/internal/database"
	"planetary-api/internal/handler"
	"planetary-api/internal/handler/auth"
	"planetary-api/internal/handler/planets"
	"planetary-api/internal/handler/users"
	"planetary-api/internal/mailer"
	"planetary-api/internal/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Deps 路由所需的共用資源
type Deps struct {
	DB     database.DB
	Cache  cache.Cache
	Mailer mailer.Mailer
	Log    *zap.Logger
	// JWT 簽章金鑰與有效期限
	Secret   []byte
	TokenTTL time.Duration
	CacheTTL time.Duration
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	if d.Cache == nil {
		d.Cache = cache.Nop{}
	}
	if d.Log == nil {
		d.Log = zap.NewNop()
	}

	// 問候與示範
	e.GET("/", handler.HelloWorldHandler())
	e.GET("/super_simple", handler.SuperSimpleHandler())
	e.GET("/not_found", handler.NotFoundHandler())
	e.GET("/parameters", handler.ParametersHandler())
	e.GET("/url_variables/:name/:age", handler.URLVariablesHandler())

	// 健康檢查
	e.GET("/ping", handler.PingHandler(d.DB, d.Cache, d.Log))

	// 行星
	e.GET("/planets", planets.ListPlanetsHandler(d.DB, d.Cache, d.CacheTTL, d.Log))
	e.GET("/planet_details/:planet_id", planets.PlanetDetailsHandler(d.DB, d.Cache, d.CacheTTL, d.Log))
	e.POST("/add_planet", planets.AddPlanetHandler(d.DB, d.Cache, d.Log))

	// 使用者
	e.POST("/register", users.RegisterHandler(d.DB, d.Log))
	e.POST("/login", auth.LoginHandler(d.DB, d.Secret, d.TokenTTL, d.Log))
	e.GET("/retrieve_password/:email", users.RetrievePasswordHandler(d.DB, d.Mailer, d.Log))
	e.GET("/whoami", users.WhoAmIHandler(), middleware.RequireAuth(d.Secret))
}
