// File: internal/service/telegram.go
package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"personal-site/internal/cache"
)

// TelegramAuthMaxAge 為 Login Widget 資料的有效期限
const TelegramAuthMaxAge = 86400 * time.Second

const telegramReplayPrefix = "auth:telegram:hash:"

var (
	ErrTelegramHashMissing  = errors.New("telegram hash is missing")
	ErrInvalidTelegramHash  = errors.New("telegram hash mismatch")
	ErrTelegramAuthExpired  = errors.New("telegram auth data is outdated")
	ErrTelegramAuthReplayed = errors.New("telegram auth data already used")
)

// TelegramAuthData 是驗證通過後的 Login Widget 使用者資料
type TelegramAuthData struct {
	ID        int64
	FirstName string
	LastName  string
	Username  string
	PhotoURL  string
	AuthDate  time.Time
	Hash      string
}

// TelegramDataCheckString 依 key 排序組出 "key=value" 並以 \n 串接，排除 hash
func TelegramDataCheckString(fields url.Values) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k == "hash" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+fields.Get(k))
	}
	return strings.Join(lines, "\n")
}

// TelegramHash 以 SHA-256(bot_token) 為金鑰計算 data-check-string 的 HMAC-SHA256
func TelegramHash(fields url.Values, botToken string) string {
	secret := sha256.Sum256([]byte(botToken))
	mac := hmac.New(sha256.New, secret[:])
	mac.Write([]byte(TelegramDataCheckString(fields)))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyTelegramLogin 驗證簽章與時效，成功時回傳解析後的使用者資料
func VerifyTelegramLogin(fields url.Values, botToken string, now time.Time) (*TelegramAuthData, error) {
	received := strings.ToLower(fields.Get("hash"))
	if received == "" {
		return nil, ErrTelegramHashMissing
	}

	expected := TelegramHash(fields, botToken)
	if !hmac.Equal([]byte(expected), []byte(received)) {
		return nil, ErrInvalidTelegramHash
	}

	authDate, err := strconv.ParseInt(fields.Get("auth_date"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid auth_date: %w", err)
	}
	if now.Unix()-authDate > int64(TelegramAuthMaxAge/time.Second) {
		return nil, ErrTelegramAuthExpired
	}

	id, err := strconv.ParseInt(fields.Get("id"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid id: %w", err)
	}

	return &TelegramAuthData{
		ID:        id,
		FirstName: fields.Get("first_name"),
		LastName:  fields.Get("last_name"),
		Username:  fields.Get("username"),
		PhotoURL:  fields.Get("photo_url"),
		AuthDate:  time.Unix(authDate, 0).UTC(),
		Hash:      received,
	}, nil
}

// GuardTelegramReplay 同一組簽章在有效期限內只能使用一次
func GuardTelegramReplay(ctx context.Context, c cache.Cache, hash string) error {
	fresh, err := c.SetNX(ctx, telegramReplayPrefix+hash, "1", TelegramAuthMaxAge).Result()
	if err != nil {
		return err
	}
	if !fresh {
		return ErrTelegramAuthReplayed
	}
	return nil
}
