package service

import (
	"context"
	"crypto/rand"
	"errors"
	"os"
	"testing"
	"time"

	"personal-site/internal/cache"
	"personal-site/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	randRead = rand.Read
	timeNow = time.Now
	parseWithClaims = jwt.ParseWithClaims
	newUUID = func() string { return uuid.NewString() }
}

func strPtr(s string) *string { return &s }

func TestHashPassword(t *testing.T) {
	t.Cleanup(restoreGlobals)
	pwd := "secret"
	hash, err := HashPassword(pwd)
	require.NoError(t, err)
	require.NotEqual(t, pwd, hash)
	require.NoError(t, ComparePassword(hash, pwd))

	bcryptGenerateFromPassword = func(_ []byte, _ int) ([]byte, error) {
		return nil, errors.New("gen")
	}
	_, err = HashPassword(pwd)
	require.Error(t, err)
}

func TestAuthenticateUser(t *testing.T) {
	t.Cleanup(restoreGlobals)
	hash, _ := HashPassword("pw")
	u := model.User{PasswordHash: &hash}
	require.NoError(t, AuthenticateUser(context.Background(), u, "pw"))
	require.ErrorIs(t, AuthenticateUser(context.Background(), u, "bad"), ErrInvalidCredentials)

	// Telegram 建立的帳號沒有本地密碼
	require.ErrorIs(t, AuthenticateUser(context.Background(), model.User{}, ""), ErrInvalidCredentials)
	require.ErrorIs(t, AuthenticateUser(context.Background(), model.User{PasswordHash: strPtr("")}, ""), ErrInvalidCredentials)
}

func TestIssueAccessToken(t *testing.T) {
	t.Cleanup(restoreGlobals)
	os.Unsetenv("JWT_SECRET")
	_, err := IssueAccessToken(model.User{}, time.Minute)
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "s")
	newUUID = func() string { return "jti-1" }
	tok, err := IssueAccessToken(model.User{ID: 5, IsAdmin: true}, time.Minute)
	require.NoError(t, err)
	claims := &CustomClaims{}
	_, err = jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (any, error) { return []byte("s"), nil })
	require.NoError(t, err)
	require.Equal(t, 5, claims.UserID)
	require.True(t, claims.IsAdmin)
	require.Equal(t, "jti-1", claims.ID)
	require.Equal(t, "5", claims.Subject)
}

func TestVerifyAccessToken(t *testing.T) {
	t.Cleanup(restoreGlobals)
	os.Unsetenv("JWT_SECRET")
	_, err := VerifyAccessToken("abc")
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "s")
	_, err = VerifyAccessToken("invalid")
	require.Error(t, err)

	tokNone, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"foo": "bar"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	_, err = VerifyAccessToken(tokNone)
	require.Error(t, err)

	parseWithClaims = func(s string, c jwt.Claims, k jwt.Keyfunc, opts ...jwt.ParserOption) (*jwt.Token, error) {
		return &jwt.Token{Claims: jwt.MapClaims{}, Valid: false}, nil
	}
	_, err = VerifyAccessToken("whatever")
	require.Error(t, err)

	parseWithClaims = jwt.ParseWithClaims
	tok, _ := IssueAccessToken(model.User{ID: 3}, time.Minute)
	claims, err := VerifyAccessToken(tok)
	require.NoError(t, err)
	require.Equal(t, 3, claims.UserID)

	expired, _ := IssueAccessToken(model.User{ID: 3}, -time.Minute)
	_, err = VerifyAccessToken(expired)
	require.Error(t, err)
}

func TestRevokeAccessToken(t *testing.T) {
	t.Cleanup(restoreGlobals)
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return now }

	// 沒有 jti 或已過期都不需寫入
	require.NoError(t, RevokeAccessToken(ctx, &cache.FakeCache{}, &CustomClaims{}))
	past := &CustomClaims{RegisteredClaims: jwt.RegisteredClaims{ID: "a", ExpiresAt: jwt.NewNumericDate(now.Add(-time.Second))}}
	require.NoError(t, RevokeAccessToken(ctx, &cache.FakeCache{}, past))

	var gotKey string
	var gotTTL time.Duration
	c := &cache.FakeCache{SetFn: func(_ context.Context, key string, _ any, ttl time.Duration) *redis.StatusCmd {
		gotKey, gotTTL = key, ttl
		return redis.NewStatusResult("OK", nil)
	}}
	live := &CustomClaims{RegisteredClaims: jwt.RegisteredClaims{ID: "b", ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))}}
	require.NoError(t, RevokeAccessToken(ctx, c, live))
	require.Equal(t, "auth:revoked:b", gotKey)
	require.Equal(t, time.Hour, gotTTL)

	c.SetFn = func(context.Context, string, any, time.Duration) *redis.StatusCmd {
		return redis.NewStatusResult("", errors.New("set"))
	}
	require.Error(t, RevokeAccessToken(ctx, c, live))
}

func TestIsAccessTokenRevoked(t *testing.T) {
	ctx := context.Background()
	revoked, err := IsAccessTokenRevoked(ctx, &cache.FakeCache{}, "")
	require.NoError(t, err)
	require.False(t, revoked)

	c := &cache.FakeCache{GetFn: func(context.Context, string) *redis.StringCmd {
		return redis.NewStringResult("", redis.Nil)
	}}
	revoked, err = IsAccessTokenRevoked(ctx, c, "x")
	require.NoError(t, err)
	require.False(t, revoked)

	c.GetFn = func(context.Context, string) *redis.StringCmd { return redis.NewStringResult("", errors.New("down")) }
	_, err = IsAccessTokenRevoked(ctx, c, "x")
	require.Error(t, err)

	c.GetFn = func(_ context.Context, key string) *redis.StringCmd {
		require.Equal(t, "auth:revoked:x", key)
		return redis.NewStringResult("1", nil)
	}
	revoked, err = IsAccessTokenRevoked(ctx, c, "x")
	require.NoError(t, err)
	require.True(t, revoked)
}
