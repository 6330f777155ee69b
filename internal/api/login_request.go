package api

// LoginRequest 可由 JSON 或 form 綁定
// swagger:model api.LoginRequest
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required" example:"test@user.com"`
	Password string `json:"password" form:"password" example:"p@assword"`
}
