package auth

import (
	"net/http"

	"personal-site/internal/api"
	"personal-site/internal/cache"
	"personal-site/internal/middleware"
	"personal-site/internal/service"

	"github.com/labstack/echo/v4"
)

// LogoutHandler 撤銷目前的存取令牌並清除保險庫工作階段
// @Summary     Logout
// @Description 令牌 jti 會寫入 Redis 直到原本的到期時間
// @Tags        auth
// @Success     204 "No Content"
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /auth/logout [post]
func LogoutHandler(rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		ctx := c.Request().Context()
		if err := revokeAccessToken(ctx, rdb, claims); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to revoke token"})
		}

		if cookie, err := c.Cookie(middleware.VaultSessionCookie); err == nil && cookie.Value != "" {
			if err := closeVaultSession(ctx, rdb, cookie.Value); err != nil {
				c.Logger().Warnf("logout: clear vault session: %v", err)
			}
			c.SetCookie(&http.Cookie{
				Name:     middleware.VaultSessionCookie,
				Path:     "/",
				MaxAge:   -1,
				HttpOnly: true,
			})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
