package api

// swagger:model api.WhoAmIResponse
type WhoAmIResponse struct {
	Email string `json:"email" example:"test@user.com"`
}
