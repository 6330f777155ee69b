package api

import "planetary-api/internal/model"

// PlanetResponse 對外公開的行星欄位
// swagger:model api.PlanetResponse
type PlanetResponse struct {
	ID       int     `json:"id" example:"1"`
	Name     string  `json:"name" example:"Mercury"`
	Type     string  `json:"type" example:"Class D"`
	HomeStar string  `json:"home_star" example:"Sol"`
	Mass     float64 `json:"mass" example:"3.258e23"`
	Radius   float64 `json:"radius" example:"1516"`
	Distance float64 `json:"distance" example:"35980000"`
}

// swagger:model api.PlanetListResponse
type PlanetListResponse struct {
	Data []PlanetResponse `json:"data"`
}

// swagger:model api.PlanetDetailResponse
type PlanetDetailResponse struct {
	Data PlanetResponse `json:"data"`
}

func NewPlanetResponse(p model.Planet) PlanetResponse {
	return PlanetResponse{
		ID:       p.ID,
		Name:     p.Name,
		Type:     p.Type,
		HomeStar: p.HomeStar,
		Mass:     p.Mass,
		Radius:   p.Radius,
		Distance: p.Distance,
	}
}

// NewPlanetResponses 逐筆轉換並保留順序
func NewPlanetResponses(planets []model.Planet) []PlanetResponse {
	out := make([]PlanetResponse, 0, len(planets))
	for _, p := range planets {
		out = append(out, NewPlanetResponse(p))
	}
	return out
}
