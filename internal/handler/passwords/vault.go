package passwords

import (
	"context"
	"errors"
	"net/http"
	"time"

	"personal-site/internal/api"
	"personal-site/internal/cache"
	"personal-site/internal/database"
	"personal-site/internal/model"
	"personal-site/internal/service"
	"personal-site/internal/store"

	"github.com/fernet/fernet-go"
	"github.com/labstack/echo/v4"
)

// @Summary     Vault status
// @Tags        passwords
// @Produce     json
// @Success     200 {object} api.VaultStatusResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /passwords/status [get]
func StatusHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		settings, err := getVaultSettings(ctx, db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		count, err := countPasswordEntries(ctx, db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		unlocked := true
		if _, err := loadVaultSession(ctx, rdb, sessionID(c), settings.Generation()); err != nil {
			if !errors.Is(err, service.ErrVaultLocked) {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "unable to load vault session"})
			}
			unlocked = false
		}

		return c.JSON(http.StatusOK, api.VaultStatusResponse{
			Initialized: settings != nil || count > 0,
			Unlocked:    unlocked,
			EntryCount:  count,
		})
	}
}

// @Summary     Set up the vault
// @Description 建立主密碼並直接解鎖目前的工作階段
// @Tags        passwords
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       master_password  formData string true "主密碼 (至少 8 字元)"
// @Param       master_password2 formData string true "再次輸入主密碼"
// @Success     201 {object} api.VaultUnlockResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /passwords/setup [post]
func SetupHandler(db database.DB, rdb cache.Cache, ttl time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.VaultSetupRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if req.MasterPassword != req.MasterPassword2 {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "master passwords do not match"})
		}

		ctx := c.Request().Context()
		settings, err := getVaultSettings(ctx, db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		count, err := countPasswordEntries(ctx, db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if settings != nil || count > 0 {
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "vault is already initialized"})
		}

		settings, key, err := newVaultSettings(req.MasterPassword)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		err = createVaultSettings(ctx, db, settings)
		if store.IsUniqueViolation(err) {
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "vault is already initialized"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp, err := startSession(c, rdb, key, settings.Generation(), ttl)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "unable to store vault session"})
		}
		return c.JSON(http.StatusCreated, resp)
	}
}

// @Summary     Unlock the vault
// @Description 驗證主密碼後將金鑰保存在 Redis，工作階段 ID 以 vault_session cookie 回傳
// @Tags        passwords
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       master_password formData string true "主密碼"
// @Success     200 {object} api.VaultUnlockResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /passwords/unlock [post]
func UnlockHandler(db database.DB, rdb cache.Cache, ttl time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.VaultUnlockRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		key, generation, errResp := verifyMaster(c, db, req.MasterPassword)
		if errResp != nil {
			return errResp()
		}
		resp, err := startSession(c, rdb, key, generation, ttl)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "unable to store vault session"})
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Lock the vault
// @Description 清除目前工作階段保存的金鑰
// @Tags        passwords
// @Success     204 "No Content"
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /passwords/session/clear [post]
func ClearSessionHandler(rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := closeVaultSession(c.Request().Context(), rdb, sessionID(c)); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "unable to clear vault session"})
		}
		clearSessionCookie(c)
		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary     Change the master password
// @Description 以舊主密碼解密、新主密碼重新加密全部項目並更換 salt；無法解密的項目保留原密文並計入 failed
// @Tags        passwords
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       old_master_password formData string true "目前的主密碼"
// @Param       new_master_password formData string true "新的主密碼 (至少 8 字元)"
// @Success     200 {object} api.ChangeMasterPasswordResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /passwords/master [post]
func ChangeMasterHandler(db database.DB, rdb cache.Cache, ttl time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ChangeMasterPasswordRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		oldKey, generation, errResp := verifyMaster(c, db, req.OldMasterPassword)
		if errResp != nil {
			return errResp()
		}

		ctx := c.Request().Context()
		settings, newKey, err := newVaultSettings(req.NewMasterPassword)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		var reencrypted, failed int
		err = rotateVault(ctx, db, generation, settings, func(entries []model.PasswordEntry) (map[int]string, error) {
			updated, n, err := reencryptEntries(entries, oldKey, newKey)
			reencrypted, failed = len(updated), n
			return updated, err
		})
		if errors.Is(err, store.ErrVaultRotated) {
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "master password was changed by another request"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		// 其他工作階段的世代已不同，由 RequireVaultSession 拒絕
		if err := closeVaultSession(ctx, rdb, sessionID(c)); err != nil {
			c.Logger().Warnf("change master password: close old session: %v", err)
		}
		if _, err := startSession(c, rdb, newKey, settings.Generation(), ttl); err != nil {
			c.Logger().Warnf("change master password: open session: %v", err)
			clearSessionCookie(c)
		}

		return c.JSON(http.StatusOK, api.ChangeMasterPasswordResponse{
			Reencrypted: reencrypted,
			Failed:      failed,
		})
	}
}

// verifyMaster 取得保險庫設定 (舊資料則取第一筆項目) 並驗證主密碼，回傳金鑰與其世代
func verifyMaster(c echo.Context, db database.DB, master string) (*fernet.Key, string, func() error) {
	ctx := c.Request().Context()
	settings, sample, err := loadVault(ctx, db)
	if err != nil {
		return nil, "", func() error {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
	}

	key, err := unlockVault(settings, sample, master)
	switch {
	case err == nil:
		return key, settings.Generation(), nil
	case errors.Is(err, service.ErrWrongMaster):
		return nil, "", func() error {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: err.Error()})
		}
	case errors.Is(err, service.ErrVaultNotCreated):
		return nil, "", func() error {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: err.Error()})
		}
	default:
		return nil, "", func() error {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
	}
}

func loadVault(ctx context.Context, db database.DB) (*model.VaultSettings, *model.PasswordEntry, error) {
	settings, err := getVaultSettings(ctx, db)
	if err != nil || settings != nil {
		return settings, nil, err
	}
	sample, err := firstPasswordEntry(ctx, db)
	return nil, sample, err
}

func startSession(c echo.Context, rdb cache.Cache, key *fernet.Key, generation string, ttl time.Duration) (*api.VaultUnlockResponse, error) {
	id, err := openVaultSession(c.Request().Context(), rdb, key, generation, ttl)
	if err != nil {
		return nil, err
	}
	setSessionCookie(c, id, ttl)
	return &api.VaultUnlockResponse{ExpiresAt: timeNow().Add(ttl).UTC()}, nil
}
