package store

import (
	"context"
	"fmt"

	"personal-site/internal/database"
	"personal-site/internal/model"

	"github.com/jackc/pgx/v5"
)

const entryImageColumns = `id, entry_id, image, thumbnail, caption, sort_order, created_at`

func scanEntryImage(row interface{ Scan(...any) error }, img *model.EntryImage) error {
	return row.Scan(&img.ID, &img.EntryID, &img.Image, &img.Thumbnail, &img.Caption, &img.Order, &img.CreatedAt)
}

// ListEntryImages 以 entry ID 分組，組內依 (sort_order, created_at) 排序
func ListEntryImages(ctx context.Context, db database.DB, entryIDs []int) (map[int][]model.EntryImage, error) {
	out := make(map[int][]model.EntryImage, len(entryIDs))
	if len(entryIDs) == 0 {
		return out, nil
	}
	rows, err := db.Query(ctx,
		`SELECT `+entryImageColumns+` FROM entry_images
		 WHERE entry_id = ANY($1)
		 ORDER BY entry_id, sort_order, created_at, id`,
		entryIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("ListEntryImages: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var img model.EntryImage
		if err := scanEntryImage(rows, &img); err != nil {
			return nil, fmt.Errorf("ListEntryImages: %w", err)
		}
		out[img.EntryID] = append(out[img.EntryID], img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListEntryImages: %w", err)
	}
	return out, nil
}

func CreateEntryImage(ctx context.Context, db database.DB, img *model.EntryImage) (*model.EntryImage, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO entry_images (entry_id, image, caption, sort_order)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		img.EntryID,
		img.Image,
		img.Caption,
		img.Order,
	)
	if err := row.Scan(&img.ID, &img.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateEntryImage: %w", err)
	}
	return img, nil
}

// SetEntryImageThumbnail 由背景縮圖工作回寫；圖片已被刪除時回傳 pgx.ErrNoRows
func SetEntryImageThumbnail(ctx context.Context, db database.DB, id int, thumbnail string) error {
	tag, err := db.Exec(ctx, `UPDATE entry_images SET thumbnail = $1 WHERE id = $2`, thumbnail, id)
	if err != nil {
		return fmt.Errorf("SetEntryImageThumbnail: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("SetEntryImageThumbnail: %w", pgx.ErrNoRows)
	}
	return nil
}

// DeleteEntryImage 回傳被刪除的圖片以便移除檔案
func DeleteEntryImage(ctx context.Context, db database.DB, entryID, imageID int) (*model.EntryImage, error) {
	img := &model.EntryImage{}
	row := db.QueryRow(ctx,
		`DELETE FROM entry_images WHERE id = $1 AND entry_id = $2
		 RETURNING `+entryImageColumns,
		imageID,
		entryID,
	)
	if err := scanEntryImage(row, img); err != nil {
		return nil, fmt.Errorf("DeleteEntryImage: %w", err)
	}
	return img, nil
}
