// File: internal/model/password_entry.go
package model

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// LegacyVaultGeneration 是沒有設定列的舊保險庫
const LegacyVaultGeneration = "legacy"

type PasswordEntry struct {
	ID                int       `db:"id" json:"id"`
	Service           string    `db:"service" json:"service"`
	Login             string    `db:"login" json:"login"`
	Email             *string   `db:"email" json:"email,omitempty"`
	PasswordEncrypted string    `db:"password_encrypted" json:"-"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

// VaultSettings 記錄主密碼的金鑰推導方式，CheckToken 用來驗證主密碼
type VaultSettings struct {
	KDF        string    `db:"kdf" json:"kdf"`
	Salt       []byte    `db:"salt" json:"-"`
	CheckToken string    `db:"check_token" json:"-"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// Generation 以 salt 指紋識別目前的金鑰世代，更換主密碼會換新 salt
func (s *VaultSettings) Generation() string {
	if s == nil {
		return LegacyVaultGeneration
	}
	sum := sha256.Sum256(s.Salt)
	return hex.EncodeToString(sum[:8])
}
