package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Name      string `form:"name" validate:"required,max=150" example:"alice"`
	Email     string `form:"email" validate:"omitempty,email" example:"alice@example.com"`
	Password  string `form:"password" validate:"required,min=8" example:"Secret123!"`
	Password2 string `form:"password2" validate:"required" example:"Secret123!"`
}
