package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"personal-site/internal/cache"
	"personal-site/internal/database"
	"personal-site/internal/model"
	"personal-site/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const botToken = "123456:ABC-DEF"

func uniqueErr() error { return &pgconn.PgError{Code: "23505"} }

func newCallbackCtx(q url.Values) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/telegram/callback?"+q.Encode(), nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func signed(now time.Time, username string) url.Values {
	q := url.Values{}
	q.Set("id", "42")
	q.Set("first_name", "Thomas")
	q.Set("last_name", "Anderson")
	if username != "" {
		q.Set("username", username)
	}
	q.Set("auth_date", "1700000000")
	q.Set("hash", service.TelegramHash(q, botToken))
	return q
}

func TestTelegramCallbackHandler(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	now := time.Unix(1700000000+60, 0)
	noReplay := func(context.Context, cache.Cache, string) error { return nil }

	t.Run("not configured", func(t *testing.T) {
		ctx, rec := newCallbackCtx(url.Values{})
		require.NoError(t, TelegramCallbackHandler(nil, nil, "")(ctx))
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("bad hash", func(t *testing.T) {
		t.Cleanup(restore)
		timeNow = func() time.Time { return now }
		q := signed(now, "neo")
		q.Set("first_name", "Agent")
		ctx, rec := newCallbackCtx(q)
		require.NoError(t, TelegramCallbackHandler(nil, nil, botToken)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid telegram")
	})

	t.Run("expired", func(t *testing.T) {
		t.Cleanup(restore)
		timeNow = func() time.Time { return now.Add(48 * time.Hour) }
		ctx, rec := newCallbackCtx(signed(now, "neo"))
		require.NoError(t, TelegramCallbackHandler(nil, nil, botToken)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "expired")
	})

	t.Run("replayed", func(t *testing.T) {
		t.Cleanup(restore)
		timeNow = func() time.Time { return now }
		guardTelegramReplay = func(context.Context, cache.Cache, string) error { return service.ErrTelegramAuthReplayed }
		ctx, rec := newCallbackCtx(signed(now, "neo"))
		require.NoError(t, TelegramCallbackHandler(nil, nil, botToken)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "already used")
	})

	t.Run("replay guard error", func(t *testing.T) {
		t.Cleanup(restore)
		timeNow = func() time.Time { return now }
		guardTelegramReplay = func(context.Context, cache.Cache, string) error { return errors.New("redis") }
		ctx, rec := newCallbackCtx(signed(now, "neo"))
		require.NoError(t, TelegramCallbackHandler(nil, nil, botToken)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("existing profile is refreshed", func(t *testing.T) {
		t.Cleanup(restore)
		timeNow = func() time.Time { return now }
		guardTelegramReplay = noReplay
		getTelegramProfile = func(_ context.Context, _ database.DB, id int64) (*model.TelegramProfile, error) {
			require.EqualValues(t, 42, id)
			return &model.TelegramProfile{UserID: 9, TelegramID: 42}, nil
		}
		var updated *model.TelegramProfile
		updateTelegramProfile = func(_ context.Context, _ database.DB, p *model.TelegramProfile) error {
			updated = p
			return nil
		}
		getUserByID = func(_ context.Context, _ database.DB, id int) (*model.User, error) {
			require.Equal(t, 9, id)
			return &model.User{ID: 9, Name: "neo"}, nil
		}
		ctx, rec := newCallbackCtx(signed(now, "neo"))
		require.NoError(t, TelegramCallbackHandler(nil, nil, botToken)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "access_token")
		require.Equal(t, "Thomas Anderson", updated.FullName())
		require.Nil(t, updated.PhotoURL)
	})

	t.Run("new user falls back to tg_id when username taken", func(t *testing.T) {
		t.Cleanup(restore)
		timeNow = func() time.Time { return now }
		guardTelegramReplay = noReplay
		getTelegramProfile = func(context.Context, database.DB, int64) (*model.TelegramProfile, error) {
			return nil, pgx.ErrNoRows
		}
		var tried []string
		createTelegramUser = func(_ context.Context, _ database.DB, u *model.User, p *model.TelegramProfile) error {
			tried = append(tried, u.Name)
			if u.Name == "neo" {
				return uniqueErr()
			}
			u.ID = 10
			return nil
		}
		ctx, rec := newCallbackCtx(signed(now, "neo"))
		require.NoError(t, TelegramCallbackHandler(nil, nil, botToken)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, []string{"neo", "tg_42"}, tried)
	})

	t.Run("new user without username", func(t *testing.T) {
		t.Cleanup(restore)
		timeNow = func() time.Time { return now }
		guardTelegramReplay = noReplay
		getTelegramProfile = func(context.Context, database.DB, int64) (*model.TelegramProfile, error) {
			return nil, pgx.ErrNoRows
		}
		var name string
		createTelegramUser = func(_ context.Context, _ database.DB, u *model.User, _ *model.TelegramProfile) error {
			name = u.Name
			return nil
		}
		ctx, rec := newCallbackCtx(signed(now, ""))
		require.NoError(t, TelegramCallbackHandler(nil, nil, botToken)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "tg_42", name)
	})

	t.Run("profile lookup error", func(t *testing.T) {
		t.Cleanup(restore)
		timeNow = func() time.Time { return now }
		guardTelegramReplay = noReplay
		getTelegramProfile = func(context.Context, database.DB, int64) (*model.TelegramProfile, error) {
			return nil, errors.New("db")
		}
		ctx, rec := newCallbackCtx(signed(now, "neo"))
		require.NoError(t, TelegramCallbackHandler(nil, nil, botToken)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
