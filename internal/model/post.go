// File: internal/model/post.go
package model

import "time"

type Post struct {
	ID        int       `db:"id" json:"id"`
	UserID    *int      `db:"user_id" json:"user_id,omitempty"`
	Title     string    `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
