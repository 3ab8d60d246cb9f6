package auth

import (
	"errors"
	"fmt"
	"net/http"

	"personal-site/internal/api"
	"personal-site/internal/cache"
	"personal-site/internal/database"
	"personal-site/internal/model"
	"personal-site/internal/service"
	"personal-site/internal/store"

	"github.com/labstack/echo/v4"
)

// TelegramCallbackHandler 驗證 Login Widget 回傳的資料，必要時建立帳號後發行令牌
// @Summary     Telegram login callback
// @Description 驗證 HMAC-SHA256 簽章與 auth_date (86400 秒內)，同一份資料只能使用一次
// @Tags        auth
// @Produce     json
// @Param       id         query string true  "Telegram user id"
// @Param       first_name query string true  "名"
// @Param       last_name  query string false "姓"
// @Param       username   query string false "Telegram username"
// @Param       photo_url  query string false "頭像網址"
// @Param       auth_date  query int    true  "授權時間 (unix)"
// @Param       hash       query string true  "簽章"
// @Success     200 {object} api.LoginResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse
// @Router      /auth/telegram/callback [get]
func TelegramCallbackHandler(db database.DB, rdb cache.Cache, botToken string) echo.HandlerFunc {
	return func(c echo.Context) error {
		if botToken == "" {
			return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "telegram login is not configured"})
		}

		data, err := verifyTelegramLogin(c.QueryParams(), botToken, timeNow())
		switch {
		case errors.Is(err, service.ErrTelegramAuthExpired):
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "telegram authorization expired, please log in again"})
		case err != nil:
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid telegram authorization data"})
		}

		ctx := c.Request().Context()
		if err := guardTelegramReplay(ctx, rdb, data.Hash); err != nil {
			if errors.Is(err, service.ErrTelegramAuthReplayed) {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "telegram authorization already used"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to check telegram authorization"})
		}

		user, err := upsertTelegramUser(c, db, data)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp, err := issueLoginResponse(*user)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: fmt.Sprintf("failed to issue token: %v", err)})
		}
		return c.JSON(http.StatusOK, resp)
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// upsertTelegramUser 已綁定時更新資料，否則以 username (或 tg_<id>) 建立新帳號
func upsertTelegramUser(c echo.Context, db database.DB, data *service.TelegramAuthData) (*model.User, error) {
	ctx := c.Request().Context()
	profile := &model.TelegramProfile{
		TelegramID: data.ID,
		Username:   optional(data.Username),
		FirstName:  data.FirstName,
		LastName:   optional(data.LastName),
		PhotoURL:   optional(data.PhotoURL),
	}

	existing, err := getTelegramProfile(ctx, db, data.ID)
	if err == nil {
		if err := updateTelegramProfile(ctx, db, profile); err != nil {
			return nil, err
		}
		return getUserByID(ctx, db, existing.UserID)
	}
	if !store.IsNotFound(err) {
		return nil, err
	}

	fallback := fmt.Sprintf("tg_%d", data.ID)
	names := []string{fallback}
	if data.Username != "" {
		names = []string{data.Username, fallback}
	}
	for _, name := range names {
		user := &model.User{Name: name}
		err = createTelegramUser(ctx, db, user, profile)
		if err == nil {
			c.Logger().Infof("telegram: created user %q for telegram id %d", name, data.ID)
			return user, nil
		}
		if !store.IsUniqueViolation(err) {
			return nil, err
		}
	}
	return nil, err
}
