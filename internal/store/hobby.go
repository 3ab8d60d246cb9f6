package store

import (
	"context"
	"fmt"

	"personal-site/internal/database"
	"personal-site/internal/model"

	"github.com/jackc/pgx/v5"
)

const hobbyColumns = `h.id, h.title, h.slug, h.description, h.image, h.created_at, h.updated_at`

func scanHobby(row interface{ Scan(...any) error }, h *model.Hobby) error {
	return row.Scan(&h.ID, &h.Title, &h.Slug, &h.Description, &h.Image, &h.CreatedAt, &h.UpdatedAt)
}

// ListHobbies 回傳指定分頁 (新到舊) 與其條目數，以及全部筆數
func ListHobbies(ctx context.Context, db database.DB, limit, offset int) ([]model.Hobby, int, error) {
	var total int
	if err := db.QueryRow(ctx, `SELECT count(*) FROM hobbies`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ListHobbies: %w", err)
	}

	rows, err := db.Query(ctx,
		`SELECT `+hobbyColumns+`, count(e.id)
		 FROM hobbies h
		 LEFT JOIN entries e ON e.hobby_id = h.id
		 GROUP BY h.id
		 ORDER BY h.created_at DESC, h.id DESC
		 LIMIT $1 OFFSET $2`,
		limit,
		offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("ListHobbies: %w", err)
	}
	defer rows.Close()

	var list []model.Hobby
	for rows.Next() {
		var h model.Hobby
		if err := rows.Scan(&h.ID, &h.Title, &h.Slug, &h.Description, &h.Image, &h.CreatedAt, &h.UpdatedAt, &h.EntryCount); err != nil {
			return nil, 0, fmt.Errorf("ListHobbies: %w", err)
		}
		list = append(list, h)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ListHobbies: %w", err)
	}
	return list, total, nil
}

func GetHobbyBySlug(ctx context.Context, db database.DB, slug string) (*model.Hobby, error) {
	h := &model.Hobby{}
	if err := scanHobby(db.QueryRow(ctx, `SELECT `+hobbyColumns+` FROM hobbies h WHERE h.slug = $1`, slug), h); err != nil {
		return nil, fmt.Errorf("GetHobbyBySlug: %w", err)
	}
	return h, nil
}

func CreateHobby(ctx context.Context, db database.DB, h *model.Hobby) (*model.Hobby, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO hobbies (title, slug, description)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		h.Title,
		h.Slug,
		h.Description,
	)
	if err := row.Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateHobby: %w", err)
	}
	return h, nil
}

// UpdateHobby 依 h.ID 更新，slug 也可以修改
func UpdateHobby(ctx context.Context, db database.DB, h *model.Hobby) error {
	row := db.QueryRow(ctx,
		`UPDATE hobbies SET title = $1, slug = $2, description = $3, updated_at = now()
		 WHERE id = $4
		 RETURNING image, created_at, updated_at`,
		h.Title,
		h.Slug,
		h.Description,
		h.ID,
	)
	if err := row.Scan(&h.Image, &h.CreatedAt, &h.UpdatedAt); err != nil {
		return fmt.Errorf("UpdateHobby: %w", err)
	}
	return nil
}

func SetHobbyImage(ctx context.Context, db database.DB, id int, image string) error {
	tag, err := db.Exec(ctx, `UPDATE hobbies SET image = $1, updated_at = now() WHERE id = $2`, image, id)
	if err != nil {
		return fmt.Errorf("SetHobbyImage: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("SetHobbyImage: %w", pgx.ErrNoRows)
	}
	return nil
}

// DeleteHobby 由外鍵連帶刪除條目與圖片
func DeleteHobby(ctx context.Context, db database.DB, id int) error {
	tag, err := db.Exec(ctx, `DELETE FROM hobbies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteHobby: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteHobby: %w", pgx.ErrNoRows)
	}
	return nil
}
