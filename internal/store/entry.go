package store

import (
	"context"
	"fmt"

	"personal-site/internal/database"
	"personal-site/internal/model"

	"github.com/jackc/pgx/v5"
)

const entryColumns = `id, hobby_id, title, content, created_at, updated_at`

func scanEntry(row interface{ Scan(...any) error }, e *model.Entry) error {
	return row.Scan(&e.ID, &e.HobbyID, &e.Title, &e.Content, &e.CreatedAt, &e.UpdatedAt)
}

func ListEntriesByHobby(ctx context.Context, db database.DB, hobbyID int) ([]model.Entry, error) {
	rows, err := db.Query(ctx,
		`SELECT `+entryColumns+` FROM entries
		 WHERE hobby_id = $1
		 ORDER BY created_at DESC, id DESC`,
		hobbyID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListEntriesByHobby: %w", err)
	}
	defer rows.Close()

	var list []model.Entry
	for rows.Next() {
		var e model.Entry
		if err := scanEntry(rows, &e); err != nil {
			return nil, fmt.Errorf("ListEntriesByHobby: %w", err)
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListEntriesByHobby: %w", err)
	}
	return list, nil
}

// GetEntryForHobby 條目不屬於該 hobby 時視為查無資料
func GetEntryForHobby(ctx context.Context, db database.DB, hobbyID, entryID int) (*model.Entry, error) {
	e := &model.Entry{}
	row := db.QueryRow(ctx,
		`SELECT `+entryColumns+` FROM entries WHERE id = $1 AND hobby_id = $2`,
		entryID,
		hobbyID,
	)
	if err := scanEntry(row, e); err != nil {
		return nil, fmt.Errorf("GetEntryForHobby: %w", err)
	}
	return e, nil
}

// GetEntryNeighbours 回傳同一 hobby 中較舊 (prev) 與較新 (next) 的條目 ID，不存在時為 nil
func GetEntryNeighbours(ctx context.Context, db database.DB, e *model.Entry) (prev, next *int, err error) {
	row := db.QueryRow(ctx,
		`SELECT
		   (SELECT id FROM entries
		     WHERE hobby_id = $1 AND (created_at, id) < ($2, $3)
		     ORDER BY created_at DESC, id DESC LIMIT 1),
		   (SELECT id FROM entries
		     WHERE hobby_id = $1 AND (created_at, id) > ($2, $3)
		     ORDER BY created_at ASC, id ASC LIMIT 1)`,
		e.HobbyID,
		e.CreatedAt,
		e.ID,
	)
	if err := row.Scan(&prev, &next); err != nil {
		return nil, nil, fmt.Errorf("GetEntryNeighbours: %w", err)
	}
	return prev, next, nil
}

func CreateEntry(ctx context.Context, db database.DB, e *model.Entry) (*model.Entry, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO entries (hobby_id, title, content)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		e.HobbyID,
		e.Title,
		e.Content,
	)
	if err := row.Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateEntry: %w", err)
	}
	return e, nil
}

func UpdateEntry(ctx context.Context, db database.DB, e *model.Entry) error {
	row := db.QueryRow(ctx,
		`UPDATE entries SET title = $1, content = $2, updated_at = now()
		 WHERE id = $3 AND hobby_id = $4
		 RETURNING created_at, updated_at`,
		e.Title,
		e.Content,
		e.ID,
		e.HobbyID,
	)
	if err := row.Scan(&e.CreatedAt, &e.UpdatedAt); err != nil {
		return fmt.Errorf("UpdateEntry: %w", err)
	}
	return nil
}

func DeleteEntry(ctx context.Context, db database.DB, hobbyID, entryID int) error {
	tag, err := db.Exec(ctx, `DELETE FROM entries WHERE id = $1 AND hobby_id = $2`, entryID, hobbyID)
	if err != nil {
		return fmt.Errorf("DeleteEntry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteEntry: %w", pgx.ErrNoRows)
	}
	return nil
}
