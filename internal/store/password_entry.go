package store

import (
	"context"
	"fmt"

	"personal-site/internal/database"
	"personal-site/internal/model"

	"github.com/jackc/pgx/v5"
)

const passwordEntryColumns = `id, service, login, email, password_encrypted, created_at, updated_at`

func scanPasswordEntry(row interface{ Scan(...any) error }, e *model.PasswordEntry) error {
	return row.Scan(&e.ID, &e.Service, &e.Login, &e.Email, &e.PasswordEncrypted, &e.CreatedAt, &e.UpdatedAt)
}

func CountPasswordEntries(ctx context.Context, db database.DB) (int, error) {
	var n int
	if err := db.QueryRow(ctx, `SELECT count(*) FROM password_entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("CountPasswordEntries: %w", err)
	}
	return n, nil
}

// ListPasswordEntries 依建立時間新到舊
func ListPasswordEntries(ctx context.Context, db database.DB) ([]model.PasswordEntry, error) {
	rows, err := db.Query(ctx,
		`SELECT `+passwordEntryColumns+` FROM password_entries ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListPasswordEntries: %w", err)
	}
	list, err := collectPasswordEntries(rows)
	if err != nil {
		return nil, fmt.Errorf("ListPasswordEntries: %w", err)
	}
	return list, nil
}

func collectPasswordEntries(rows pgx.Rows) ([]model.PasswordEntry, error) {
	defer rows.Close()

	var list []model.PasswordEntry
	for rows.Next() {
		var e model.PasswordEntry
		if err := scanPasswordEntry(rows, &e); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// FirstPasswordEntry 回傳最早建立的一筆，舊保險庫用來驗證主密碼；沒有資料時回傳 nil
func FirstPasswordEntry(ctx context.Context, db database.DB) (*model.PasswordEntry, error) {
	e := &model.PasswordEntry{}
	row := db.QueryRow(ctx,
		`SELECT `+passwordEntryColumns+` FROM password_entries ORDER BY created_at, id LIMIT 1`,
	)
	if err := scanPasswordEntry(row, e); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("FirstPasswordEntry: %w", err)
	}
	return e, nil
}

func GetPasswordEntry(ctx context.Context, db database.DB, id int) (*model.PasswordEntry, error) {
	e := &model.PasswordEntry{}
	if err := scanPasswordEntry(db.QueryRow(ctx, `SELECT `+passwordEntryColumns+` FROM password_entries WHERE id = $1`, id), e); err != nil {
		return nil, fmt.Errorf("GetPasswordEntry: %w", err)
	}
	return e, nil
}

// CreatePasswordEntry 的 generation 是加密所用金鑰的世代，與目前設定不符時回傳 ErrVaultRotated
func CreatePasswordEntry(ctx context.Context, db database.DB, e *model.PasswordEntry, generation string) (_ *model.PasswordEntry, err error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("CreatePasswordEntry: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	row := tx.QueryRow(ctx,
		`INSERT INTO password_entries (service, login, email, password_encrypted)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		e.Service,
		e.Login,
		e.Email,
		e.PasswordEncrypted,
	)
	if err = row.Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreatePasswordEntry: %w", err)
	}
	if err = checkVaultGeneration(ctx, tx, generation); err != nil {
		return nil, fmt.Errorf("CreatePasswordEntry: %w", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("CreatePasswordEntry: %w", err)
	}
	return e, nil
}

// UpdatePasswordEntry 會覆寫 PasswordEncrypted，呼叫端需先帶入舊密文以保留原密碼
func UpdatePasswordEntry(ctx context.Context, db database.DB, e *model.PasswordEntry, generation string) (err error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("UpdatePasswordEntry: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	row := tx.QueryRow(ctx,
		`UPDATE password_entries
		 SET service = $1, login = $2, email = $3, password_encrypted = $4, updated_at = now()
		 WHERE id = $5
		 RETURNING created_at, updated_at`,
		e.Service,
		e.Login,
		e.Email,
		e.PasswordEncrypted,
		e.ID,
	)
	if err = row.Scan(&e.CreatedAt, &e.UpdatedAt); err != nil {
		return fmt.Errorf("UpdatePasswordEntry: %w", err)
	}
	if err = checkVaultGeneration(ctx, tx, generation); err != nil {
		return fmt.Errorf("UpdatePasswordEntry: %w", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("UpdatePasswordEntry: %w", err)
	}
	return nil
}

func DeletePasswordEntry(ctx context.Context, db database.DB, id int) error {
	tag, err := db.Exec(ctx, `DELETE FROM password_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeletePasswordEntry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeletePasswordEntry: %w", pgx.ErrNoRows)
	}
	return nil
}
