// File: internal/model/telegram_profile.go
package model

import "time"

type TelegramProfile struct {
	ID         int       `db:"id" json:"id"`
	UserID     int       `db:"user_id" json:"user_id"`
	TelegramID int64     `db:"telegram_id" json:"telegram_id"`
	Username   *string   `db:"username" json:"username,omitempty"`
	FirstName  string    `db:"first_name" json:"first_name"`
	LastName   *string   `db:"last_name" json:"last_name,omitempty"`
	PhotoURL   *string   `db:"photo_url" json:"photo_url,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// FullName 回傳「名 姓」，沒有姓時只回傳名
func (p TelegramProfile) FullName() string {
	if p.LastName != nil && *p.LastName != "" {
		return p.FirstName + " " + *p.LastName
	}
	return p.FirstName
}
