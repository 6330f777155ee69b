package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Email     string `form:"email" validate:"required" example:"alice@example.com"`
	FirstName string `form:"first_name" example:"Alice"`
	LastName  string `form:"last_name" example:"Liddell"`
	Password  string `form:"password" example:"Secret123!"`
}
