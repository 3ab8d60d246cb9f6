package api

import (
	"time"

	"personal-site/internal/model"
)

// swagger:model api.TelegramProfileResponse
type TelegramProfileResponse struct {
	TelegramID int64   `json:"telegram_id" example:"123456789"`
	Username   *string `json:"username,omitempty" example:"alice_tg"`
	FullName   string  `json:"full_name" example:"Alice Liddell"`
	PhotoURL   *string `json:"photo_url,omitempty"`
}

// swagger:model api.UserResponse
type UserResponse struct {
	ID          int                      `json:"id" example:"1"`
	Name        string                   `json:"name" example:"alice"`
	Email       string                   `json:"email" example:"alice@example.com"`
	IsAdmin     bool                     `json:"is_admin" example:"false"`
	HasPassword bool                     `json:"has_password" example:"true"`
	CreatedAt   time.Time                `json:"created_at"`
	Telegram    *TelegramProfileResponse `json:"telegram,omitempty"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		IsAdmin:     u.IsAdmin,
		HasPassword: u.PasswordHash != nil && *u.PasswordHash != "",
		CreatedAt:   u.CreatedAt,
	}
}

func NewTelegramProfileResponse(p *model.TelegramProfile) *TelegramProfileResponse {
	return &TelegramProfileResponse{
		TelegramID: p.TelegramID,
		Username:   p.Username,
		FullName:   p.FullName(),
		PhotoURL:   p.PhotoURL,
	}
}
