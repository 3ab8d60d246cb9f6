package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"personal-site/internal/cache"
	"personal-site/internal/database"
	"personal-site/internal/service"
	"personal-site/internal/store"

	"github.com/labstack/echo/v4"
)

const (
	ContextUserKey  = "user"
	ContextVaultKey = "vault_key"
	// ContextVaultGeneration 是金鑰所屬的世代，寫入項目時交給 store 比對
	ContextVaultGeneration = "vault_generation"
	// VaultSessionCookie 保存保險庫工作階段 ID
	VaultSessionCookie = "vault_session"
)

var (
	verifyAccessToken    = service.VerifyAccessToken
	isAccessTokenRevoked = service.IsAccessTokenRevoked
	loadVaultSession     = service.LoadVaultSession
	getVaultSettings     = store.GetVaultSettings
)

func extractClaims(c echo.Context) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	tokenString := parts[1]
	claims, err := verifyAccessToken(tokenString)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
	}
	return claims, nil
}

// RequireAuth 驗證 Bearer token 並拒絕已登出 (撤銷) 的 token
func RequireAuth(rdb cache.Cache) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c)
			if err != nil {
				return err
			}
			revoked, err := isAccessTokenRevoked(c.Request().Context(), rdb, claims.ID)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "unable to check token state")
			}
			if revoked {
				return echo.NewHTTPError(http.StatusUnauthorized, "token has been revoked")
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

func RequireAdmin(rdb cache.Cache) echo.MiddlewareFunc {
	auth := RequireAuth(rdb)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return auth(func(c echo.Context) error {
			claims := c.Get(ContextUserKey).(*service.CustomClaims)
			if !claims.IsAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "admin privileges required")
			}
			return next(c)
		})
	}
}

// RequireVaultSession 由 cookie 取出已解鎖的保險庫金鑰，須放在 RequireAdmin 之後；
// 主密碼更換前開啟的工作階段一律視為鎖定
func RequireVaultSession(db database.DB, rdb cache.Cache) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var sessionID string
			if cookie, err := c.Cookie(VaultSessionCookie); err == nil {
				sessionID = cookie.Value
			}
			ctx := c.Request().Context()
			settings, err := getVaultSettings(ctx, db)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "unable to load vault settings")
			}
			generation := settings.Generation()
			key, err := loadVaultSession(ctx, rdb, sessionID, generation)
			if errors.Is(err, service.ErrVaultLocked) {
				return echo.NewHTTPError(http.StatusForbidden, err.Error())
			}
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "unable to load vault session")
			}
			c.Set(ContextVaultKey, key)
			c.Set(ContextVaultGeneration, generation)
			return next(c)
		}
	}
}
