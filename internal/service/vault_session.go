// File: internal/service/vault_session.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"personal-site/internal/cache"

	"github.com/fernet/fernet-go"
	"github.com/redis/go-redis/v9"
)

const vaultSessionPrefix = "vault:session:"

// ErrVaultLocked 表示目前工作階段尚未輸入主密碼或已過期
var ErrVaultLocked = errors.New("vault is locked, enter the master password first")

// OpenVaultSession 將推導出的金鑰與其世代 (VaultSettings.Generation) 存入 Redis，回傳工作階段 ID
func OpenVaultSession(ctx context.Context, c cache.Cache, key *fernet.Key, generation string, ttl time.Duration) (string, error) {
	id := newUUID()
	if err := c.Set(ctx, vaultSessionPrefix+id, generation+":"+key.Encode(), ttl).Err(); err != nil {
		return "", err
	}
	return id, nil
}

// LoadVaultSession 取回工作階段的金鑰；主密碼更換後世代不同，視同未解鎖
func LoadVaultSession(ctx context.Context, c cache.Cache, sessionID, generation string) (*fernet.Key, error) {
	if sessionID == "" {
		return nil, ErrVaultLocked
	}
	value, err := c.Get(ctx, vaultSessionPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrVaultLocked
	}
	if err != nil {
		return nil, err
	}
	stored, encoded, ok := strings.Cut(value, ":")
	if !ok || stored != generation {
		return nil, ErrVaultLocked
	}
	key, err := fernet.DecodeKey(encoded)
	if err != nil {
		return nil, ErrVaultLocked
	}
	return key, nil
}

// CloseVaultSession 忘記主密碼
func CloseVaultSession(ctx context.Context, c cache.Cache, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return c.Del(ctx, vaultSessionPrefix+sessionID).Err()
}
