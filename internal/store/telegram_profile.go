package store

import (
	"context"
	"fmt"

	"personal-site/internal/database"
	"personal-site/internal/model"
)

const telegramProfileColumns = `id, user_id, telegram_id, username, first_name, last_name, photo_url, created_at, updated_at`

func scanTelegramProfile(row interface{ Scan(...any) error }, p *model.TelegramProfile) error {
	return row.Scan(
		&p.ID,
		&p.UserID,
		&p.TelegramID,
		&p.Username,
		&p.FirstName,
		&p.LastName,
		&p.PhotoURL,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}

func GetTelegramProfileByTelegramID(ctx context.Context, db database.DB, telegramID int64) (*model.TelegramProfile, error) {
	p := &model.TelegramProfile{}
	row := db.QueryRow(ctx, `SELECT `+telegramProfileColumns+` FROM telegram_profiles WHERE telegram_id = $1`, telegramID)
	if err := scanTelegramProfile(row, p); err != nil {
		return nil, fmt.Errorf("GetTelegramProfileByTelegramID: %w", err)
	}
	return p, nil
}

func GetTelegramProfileByUserID(ctx context.Context, db database.DB, userID int) (*model.TelegramProfile, error) {
	p := &model.TelegramProfile{}
	row := db.QueryRow(ctx, `SELECT `+telegramProfileColumns+` FROM telegram_profiles WHERE user_id = $1`, userID)
	if err := scanTelegramProfile(row, p); err != nil {
		return nil, fmt.Errorf("GetTelegramProfileByUserID: %w", err)
	}
	return p, nil
}

// CreateTelegramUser 在同一交易中建立使用者與其 Telegram 資料
func CreateTelegramUser(ctx context.Context, db database.DB, u *model.User, p *model.TelegramProfile) (err error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("CreateTelegramUser: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if err = tx.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, is_admin)
		 VALUES ($1, $2, NULL, FALSE)
		 RETURNING id, created_at`,
		u.Name,
		u.Email,
	).Scan(&u.ID, &u.CreatedAt); err != nil {
		return fmt.Errorf("CreateTelegramUser: %w", err)
	}

	p.UserID = u.ID
	if err = tx.QueryRow(ctx,
		`INSERT INTO telegram_profiles (user_id, telegram_id, username, first_name, last_name, photo_url)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		p.UserID,
		p.TelegramID,
		p.Username,
		p.FirstName,
		p.LastName,
		p.PhotoURL,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return fmt.Errorf("CreateTelegramUser: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("CreateTelegramUser: %w", err)
	}
	return nil
}

// UpdateTelegramProfile 以最新的登入資料覆寫名稱與頭像
func UpdateTelegramProfile(ctx context.Context, db database.DB, p *model.TelegramProfile) error {
	row := db.QueryRow(ctx,
		`UPDATE telegram_profiles
		 SET username = $1, first_name = $2, last_name = $3, photo_url = $4, updated_at = now()
		 WHERE telegram_id = $5
		 RETURNING updated_at`,
		p.Username,
		p.FirstName,
		p.LastName,
		p.PhotoURL,
		p.TelegramID,
	)
	if err := row.Scan(&p.UpdatedAt); err != nil {
		return fmt.Errorf("UpdateTelegramProfile: %w", err)
	}
	return nil
}
