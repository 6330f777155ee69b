package api

// swagger:model api.AddPlanetRequest
type AddPlanetRequest struct {
	Name     string  `form:"name" validate:"required" example:"Mars"`
	Type     string  `form:"type" example:"Class K"`
	HomeStar string  `form:"home_star" example:"Sol"`
	Mass     float64 `form:"mass" example:"6.39e23"`
	Distance float64 `form:"distance" example:"141600000"`
	Radius   float64 `form:"radius" example:"2106"`
}
