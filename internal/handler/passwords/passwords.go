// Package passwords 提供以主密碼保護的密碼保險庫，所有路由限管理員使用
package passwords

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"personal-site/internal/api"
	"personal-site/internal/middleware"
	"personal-site/internal/service"
	"personal-site/internal/store"

	"github.com/fernet/fernet-go"
	"github.com/labstack/echo/v4"
)

var (
	timeNow = time.Now

	newVaultSettings  = service.NewVaultSettings
	unlockVault       = service.UnlockVault
	encryptPassword   = service.EncryptPassword
	decryptPassword   = service.DecryptPassword
	reencryptEntries  = service.ReencryptEntries
	openVaultSession  = service.OpenVaultSession
	loadVaultSession  = service.LoadVaultSession
	closeVaultSession = service.CloseVaultSession

	getVaultSettings     = store.GetVaultSettings
	createVaultSettings  = store.CreateVaultSettings
	rotateVault          = store.RotateVault
	countPasswordEntries = store.CountPasswordEntries
	listPasswordEntries  = store.ListPasswordEntries
	firstPasswordEntry   = store.FirstPasswordEntry
	getPasswordEntry     = store.GetPasswordEntry
	createPasswordEntry  = store.CreatePasswordEntry
	updatePasswordEntry  = store.UpdatePasswordEntry
	deletePasswordEntry  = store.DeletePasswordEntry
)

func sessionID(c echo.Context) string {
	if cookie, err := c.Cookie(middleware.VaultSessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}

func setSessionCookie(c echo.Context, id string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.VaultSessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.VaultSessionCookie,
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// vaultKey 取出 RequireVaultSession 放入的金鑰與其世代
func vaultKey(c echo.Context) (*fernet.Key, string, bool) {
	key, ok := c.Get(middleware.ContextVaultKey).(*fernet.Key)
	generation, _ := c.Get(middleware.ContextVaultGeneration).(string)
	return key, generation, ok && key != nil
}

func entryID(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("entry_id"))
	return id, err == nil && id > 0
}

func optional(s string) *string {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return &s
}

func lockedResponse(c echo.Context) error {
	return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: service.ErrVaultLocked.Error()})
}

// writeError 把寫入項目時的錯誤轉成回應；金鑰世代過期時順便清掉 cookie
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, store.ErrVaultRotated):
		clearSessionCookie(c)
		return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: store.ErrVaultRotated.Error()})
	case store.IsNotFound(err):
		return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "password entry not found"})
	default:
		return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
	}
}
