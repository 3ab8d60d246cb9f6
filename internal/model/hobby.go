// File: internal/model/hobby.go
package model

import "time"

type Hobby struct {
	ID          int       `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Slug        string    `db:"slug" json:"slug"`
	Description string    `db:"description" json:"description"`
	Image       *string   `db:"image" json:"image,omitempty"`
	EntryCount  int       `db:"entry_count" json:"entry_count"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

type Entry struct {
	ID        int       `db:"id" json:"id"`
	HobbyID   int       `db:"hobby_id" json:"hobby_id"`
	Title     string    `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// EntryImage 的 Order 越小越前面，相同時以 CreatedAt 排序
type EntryImage struct {
	ID        int       `db:"id" json:"id"`
	EntryID   int       `db:"entry_id" json:"entry_id"`
	Image     string    `db:"image" json:"image"`
	Thumbnail *string   `db:"thumbnail" json:"thumbnail,omitempty"`
	Caption   string    `db:"caption" json:"caption"`
	Order     int       `db:"sort_order" json:"order"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
