// File: internal/api/update_user_request.go
package api

// swagger:model api.UpdateUserRequest
type UpdateUserRequest struct {
	Name  string `form:"name" validate:"required,max=150" example:"alice"`
	Email string `form:"email" validate:"omitempty,email" example:"alice@example.com"`
}
