package store

import (
	"context"
	"fmt"
	"strings"

	"personal-site/internal/database"
	"personal-site/internal/model"

	"github.com/jackc/pgx/v5"
)

const postColumns = `id, user_id, title, content, created_at, updated_at`

// likeEscaper 讓搜尋字串中的 % 與 _ 以字面比對
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func scanPost(row interface{ Scan(...any) error }, p *model.Post) error {
	return row.Scan(&p.ID, &p.UserID, &p.Title, &p.Content, &p.CreatedAt, &p.UpdatedAt)
}

// ListPosts 依建立時間新到舊，query 不為空時比對標題或內容 (不分大小寫)
func ListPosts(ctx context.Context, db database.DB, query string) ([]model.Post, error) {
	sql := `SELECT ` + postColumns + ` FROM posts`
	var args []any
	if query != "" {
		sql += ` WHERE title ILIKE $1 ESCAPE '\' OR content ILIKE $1 ESCAPE '\'`
		args = append(args, "%"+likeEscaper.Replace(query)+"%")
	}
	sql += ` ORDER BY created_at DESC, id DESC`

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("ListPosts: %w", err)
	}
	defer rows.Close()

	var list []model.Post
	for rows.Next() {
		var p model.Post
		if err := scanPost(rows, &p); err != nil {
			return nil, fmt.Errorf("ListPosts: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListPosts: %w", err)
	}
	return list, nil
}

func GetPost(ctx context.Context, db database.DB, id int) (*model.Post, error) {
	p := &model.Post{}
	if err := scanPost(db.QueryRow(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1`, id), p); err != nil {
		return nil, fmt.Errorf("GetPost: %w", err)
	}
	return p, nil
}

func CreatePost(ctx context.Context, db database.DB, p *model.Post) (*model.Post, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO posts (user_id, title, content)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		p.UserID,
		p.Title,
		p.Content,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreatePost: %w", err)
	}
	return p, nil
}

// UpdatePost 查無資料時回傳包裝後的 pgx.ErrNoRows
func UpdatePost(ctx context.Context, db database.DB, p *model.Post) error {
	row := db.QueryRow(ctx,
		`UPDATE posts SET title = $1, content = $2, updated_at = now()
		 WHERE id = $3
		 RETURNING user_id, created_at, updated_at`,
		p.Title,
		p.Content,
		p.ID,
	)
	if err := row.Scan(&p.UserID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return fmt.Errorf("UpdatePost: %w", err)
	}
	return nil
}

func DeletePost(ctx context.Context, db database.DB, id int) error {
	tag, err := db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeletePost: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeletePost: %w", pgx.ErrNoRows)
	}
	return nil
}
