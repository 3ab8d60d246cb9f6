package store

import (
	"context"
	"errors"
	"fmt"

	"personal-site/internal/database"
	"personal-site/internal/model"

	"github.com/jackc/pgx/v5"
)

// GetVaultSettings 尚未設定主密碼 (或為舊資料) 時回傳 nil
func GetVaultSettings(ctx context.Context, db database.DB) (*model.VaultSettings, error) {
	s := &model.VaultSettings{}
	row := db.QueryRow(ctx,
		`SELECT kdf, salt, check_token, created_at, updated_at FROM vault_settings WHERE id = 1`,
	)
	if err := row.Scan(&s.KDF, &s.Salt, &s.CheckToken, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("GetVaultSettings: %w", err)
	}
	return s, nil
}

// CreateVaultSettings 已存在設定列時違反主鍵限制 (IsUniqueViolation)
func CreateVaultSettings(ctx context.Context, db database.DB, s *model.VaultSettings) error {
	row := db.QueryRow(ctx,
		`INSERT INTO vault_settings (id, kdf, salt, check_token)
		 VALUES (1, $1, $2, $3)
		 RETURNING created_at, updated_at`,
		s.KDF,
		s.Salt,
		s.CheckToken,
	)
	if err := row.Scan(&s.CreatedAt, &s.UpdatedAt); err != nil {
		return fmt.Errorf("CreateVaultSettings: %w", err)
	}
	return nil
}

// ErrVaultRotated 表示呼叫端持有的金鑰已不是目前的世代
var ErrVaultRotated = errors.New("the master password has changed, unlock the vault again")

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func vaultGeneration(ctx context.Context, q rowQuerier) (string, error) {
	var salt []byte
	if err := q.QueryRow(ctx, `SELECT salt FROM vault_settings WHERE id = 1`).Scan(&salt); err != nil {
		if IsNotFound(err) {
			return model.LegacyVaultGeneration, nil
		}
		return "", err
	}
	return (&model.VaultSettings{Salt: salt}).Generation(), nil
}

// checkVaultGeneration 必須在同一交易內、寫入 password_entries 之後呼叫；
// 寫入取得的鎖會等待進行中的 RotateVault 結束
func checkVaultGeneration(ctx context.Context, q rowQuerier, generation string) error {
	current, err := vaultGeneration(ctx, q)
	if err != nil {
		return err
	}
	if current != generation {
		return ErrVaultRotated
	}
	return nil
}

// RotateVault 在同一交易內鎖定全部項目、交給 reencrypt 產生新密文並替換設定；
// generation 為呼叫端驗證過的舊世代，不符時回傳 ErrVaultRotated。任一步失敗即全部回滾
func RotateVault(
	ctx context.Context,
	db database.DB,
	generation string,
	s *model.VaultSettings,
	reencrypt func([]model.PasswordEntry) (map[int]string, error),
) (err error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("RotateVault: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	// 擋下並行的新增與修改，一般查詢不受影響
	if _, err = tx.Exec(ctx, `LOCK TABLE password_entries IN EXCLUSIVE MODE`); err != nil {
		return fmt.Errorf("RotateVault: %w", err)
	}
	if err = checkVaultGeneration(ctx, tx, generation); err != nil {
		return fmt.Errorf("RotateVault: %w", err)
	}

	rows, err := tx.Query(ctx,
		`SELECT `+passwordEntryColumns+` FROM password_entries ORDER BY id FOR UPDATE`,
	)
	if err != nil {
		return fmt.Errorf("RotateVault: %w", err)
	}
	entries, err := collectPasswordEntries(rows)
	if err != nil {
		return fmt.Errorf("RotateVault: %w", err)
	}

	reencrypted, err := reencrypt(entries)
	if err != nil {
		return fmt.Errorf("RotateVault: %w", err)
	}
	for id, enc := range reencrypted {
		if _, err = tx.Exec(ctx,
			`UPDATE password_entries SET password_encrypted = $1, updated_at = now() WHERE id = $2`,
			enc,
			id,
		); err != nil {
			return fmt.Errorf("RotateVault: %w", err)
		}
	}

	if _, err = tx.Exec(ctx,
		`INSERT INTO vault_settings (id, kdf, salt, check_token)
		 VALUES (1, $1, $2, $3)
		 ON CONFLICT (id) DO UPDATE
		 SET kdf = EXCLUDED.kdf, salt = EXCLUDED.salt, check_token = EXCLUDED.check_token, updated_at = now()`,
		s.KDF,
		s.Salt,
		s.CheckToken,
	); err != nil {
		return fmt.Errorf("RotateVault: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("RotateVault: %w", err)
	}
	return nil
}
