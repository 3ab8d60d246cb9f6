// File: internal/service/authentication.go
package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"personal-site/internal/cache"
	"personal-site/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const revokedTokenPrefix = "auth:revoked:"

var ErrInvalidCredentials = errors.New("invalid credentials")

var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
	newUUID         = func() string { return uuid.NewString() }
)

// CustomClaims 定義 JWT 負載內容，RegisteredClaims.ID 作為撤銷用的 jti
type CustomClaims struct {
	UserID  int  `json:"user_id"`
	IsAdmin bool `json:"is_admin"`
	jwt.RegisteredClaims
}

// AuthenticateUser 根據使用者結構和明文密碼驗證
// 沒有本地密碼的帳號 (Telegram 建立) 一律拒絕
func AuthenticateUser(ctx context.Context, user model.User, password string) error {
	if user.PasswordHash == nil || *user.PasswordHash == "" {
		return ErrInvalidCredentials
	}
	if err := ComparePassword(*user.PasswordHash, password); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// IssueAccessToken 依據使用者資訊與 TTL 產生 JWT
func IssueAccessToken(user model.User, ttl time.Duration) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET not set")
	}

	now := timeNow()
	claims := CustomClaims{
		UserID:  user.ID,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        newUUID(),
			Subject:   fmt.Sprint(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyAccessToken 驗證並解析 JWT 令牌
func VerifyAccessToken(tokenString string) (*CustomClaims, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}

	token, err := parseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// RevokeAccessToken 將 jti 寫入 Redis 直到令牌原本的到期時間
func RevokeAccessToken(ctx context.Context, c cache.Cache, claims *CustomClaims) error {
	if claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}
	ttl := claims.ExpiresAt.Sub(timeNow())
	if ttl <= 0 {
		return nil
	}
	return c.Set(ctx, revokedTokenPrefix+claims.ID, "1", ttl).Err()
}

// IsAccessTokenRevoked 檢查 jti 是否已被登出
func IsAccessTokenRevoked(ctx context.Context, c cache.Cache, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}
	err := c.Get(ctx, revokedTokenPrefix+jti).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
