// File: internal/service/vault.go
package service

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"

	"personal-site/internal/model"

	"github.com/fernet/fernet-go"
	"golang.org/x/crypto/argon2"
)

const (
	// KDFSHA256 是舊資料使用的推導方式：key = SHA-256(master password)，無 salt
	KDFSHA256 = "sha256"
	// KDFArgon2id 為新建保險庫的預設推導方式
	KDFArgon2id = "argon2id"

	vaultSaltSize  = 16
	vaultCheckText = "personal-site vault check"

	argon2Time    = 1
	argon2Memory  = 64 * 1024
	argon2Threads = 4
)

// fernet token 不檢查存活時間
const fernetNoTTL = -1

var (
	ErrDecrypt         = errors.New("unable to decrypt password, check the master password")
	ErrUnknownKDF      = errors.New("unknown key derivation scheme")
	ErrWrongMaster     = errors.New("invalid master password")
	ErrEmptyMaster     = errors.New("master password is required")
	ErrVaultNotCreated = errors.New("vault is not initialized")
)

var randRead = rand.Read

// DeriveKey 由主密碼推導出 Fernet 金鑰
func DeriveKey(kdf, masterPassword string, salt []byte) (*fernet.Key, error) {
	if masterPassword == "" {
		return nil, ErrEmptyMaster
	}
	var key fernet.Key
	switch kdf {
	case KDFSHA256:
		key = fernet.Key(sha256.Sum256([]byte(masterPassword)))
	case KDFArgon2id:
		if len(salt) == 0 {
			return nil, fmt.Errorf("argon2id requires a salt")
		}
		copy(key[:], argon2.IDKey([]byte(masterPassword), salt, argon2Time, argon2Memory, argon2Threads, uint32(len(key))))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKDF, kdf)
	}
	return &key, nil
}

// NewVaultSalt 產生隨機 salt
func NewVaultSalt() ([]byte, error) {
	salt := make([]byte, vaultSaltSize)
	if _, err := randRead(salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// EncryptPassword 以 Fernet 加密明文密碼
func EncryptPassword(password string, key *fernet.Key) (string, error) {
	tok, err := fernet.EncryptAndSign([]byte(password), key)
	if err != nil {
		return "", err
	}
	return string(tok), nil
}

// DecryptPassword 解密失敗或內容為空時回傳 ErrDecrypt
func DecryptPassword(encrypted string, key *fernet.Key) (string, error) {
	msg := fernet.VerifyAndDecrypt([]byte(encrypted), fernetNoTTL, []*fernet.Key{key})
	if len(msg) == 0 {
		return "", ErrDecrypt
	}
	return string(msg), nil
}

// NewVaultSettings 建立 argon2id 設定並回傳對應的金鑰
func NewVaultSettings(masterPassword string) (*model.VaultSettings, *fernet.Key, error) {
	salt, err := NewVaultSalt()
	if err != nil {
		return nil, nil, err
	}
	key, err := DeriveKey(KDFArgon2id, masterPassword, salt)
	if err != nil {
		return nil, nil, err
	}
	check, err := EncryptPassword(vaultCheckText, key)
	if err != nil {
		return nil, nil, err
	}
	return &model.VaultSettings{KDF: KDFArgon2id, Salt: salt, CheckToken: check}, key, nil
}

// UnlockVault 驗證主密碼
// settings 為 nil 代表舊資料 (無設定列)，改用 sha256 推導並以 sample 這筆密文驗證
func UnlockVault(settings *model.VaultSettings, sample *model.PasswordEntry, masterPassword string) (*fernet.Key, error) {
	if settings == nil {
		if sample == nil {
			return nil, ErrVaultNotCreated
		}
		key, err := DeriveKey(KDFSHA256, masterPassword, nil)
		if err != nil {
			return nil, err
		}
		if _, err := DecryptPassword(sample.PasswordEncrypted, key); err != nil {
			return nil, ErrWrongMaster
		}
		return key, nil
	}

	key, err := DeriveKey(settings.KDF, masterPassword, settings.Salt)
	if err != nil {
		return nil, err
	}
	text, err := DecryptPassword(settings.CheckToken, key)
	if err != nil || text != vaultCheckText {
		return nil, ErrWrongMaster
	}
	return key, nil
}

// ReencryptEntries 以舊金鑰解密、新金鑰加密；無法解密的項目計入 failed 並保留原密文
func ReencryptEntries(entries []model.PasswordEntry, oldKey, newKey *fernet.Key) (map[int]string, int, error) {
	updated := make(map[int]string, len(entries))
	failed := 0
	for _, e := range entries {
		plain, err := DecryptPassword(e.PasswordEncrypted, oldKey)
		if err != nil {
			failed++
			continue
		}
		enc, err := EncryptPassword(plain, newKey)
		if err != nil {
			return nil, 0, err
		}
		updated[e.ID] = enc
	}
	return updated, failed, nil
}
