package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"personal-site/internal/cache"
	"personal-site/internal/database"
	"personal-site/internal/model"
	"personal-site/internal/service"
	"personal-site/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func restore() {
	timeNow = time.Now
	hashPassword = service.HashPassword
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
	revokeAccessToken = service.RevokeAccessToken
	closeVaultSession = service.CloseVaultSession
	verifyTelegramLogin = service.VerifyTelegramLogin
	guardTelegramReplay = service.GuardTelegramReplay
	getUserByID = store.GetUserByID
	getUserByName = store.GetUserByName
	createUser = store.CreateUser
	getTelegramProfile = store.GetTelegramProfileByTelegramID
	createTelegramUser = store.CreateTelegramUser
	updateTelegramProfile = store.UpdateTelegramProfile
}

// helper to build echo context
func newFormCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type errBinder struct{}

func (errBinder) Bind(i any, c echo.Context) error { return errors.New("bind") }

type stubValidator struct{ err error }

func (s stubValidator) Validate(i any) error { return s.err }

func strPtr(s string) *string { return &s }

// formValidator 使用真正的 validator 規則
type formValidator struct{ v *validator.Validate }

func (f formValidator) Validate(i any) error { return f.v.Struct(i) }

func TestLoginHandler(t *testing.T) {
	t.Cleanup(restore)
	hash, err := service.HashPassword("b")
	require.NoError(t, err)
	alice := &model.User{ID: 1, Name: "a", PasswordHash: &hash}

	t.Run("bind error", func(t *testing.T) {
		e := echo.New()
		e.Binder = errBinder{}
		ctx, rec := newFormCtx(e, "")
		require.NoError(t, LoginHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validate error", func(t *testing.T) {
		e := echo.New()
		e.Validator = stubValidator{err: errors.New("v")}
		ctx, rec := newFormCtx(e, "username=a&password=b")
		require.NoError(t, LoginHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("user not found", func(t *testing.T) {
		t.Cleanup(restore)
		e := echo.New()
		e.Validator = stubValidator{}
		getUserByName = func(context.Context, database.DB, string) (*model.User, error) { return nil, errors.New("no") }
		ctx, rec := newFormCtx(e, "username=a&password=b")
		require.NoError(t, LoginHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Cleanup(restore)
		e := echo.New()
		e.Validator = stubValidator{}
		getUserByName = func(context.Context, database.DB, string) (*model.User, error) { return alice, nil }
		ctx, rec := newFormCtx(e, "username=a&password=wrong")
		require.NoError(t, LoginHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("telegram-only account", func(t *testing.T) {
		t.Cleanup(restore)
		e := echo.New()
		e.Validator = stubValidator{}
		getUserByName = func(context.Context, database.DB, string) (*model.User, error) {
			return &model.User{ID: 2, Name: "tg_1"}, nil
		}
		ctx, rec := newFormCtx(e, "username=tg_1&password=")
		require.NoError(t, LoginHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("issue token error (JWT_SECRET not set)", func(t *testing.T) {
		t.Cleanup(restore)
		t.Setenv("JWT_SECRET", "")
		e := echo.New()
		e.Validator = stubValidator{}
		getUserByName = func(context.Context, database.DB, string) (*model.User, error) { return alice, nil }
		ctx, rec := newFormCtx(e, "username=a&password=b")
		require.NoError(t, LoginHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		t.Setenv("JWT_SECRET", "s")
		e := echo.New()
		e.Validator = stubValidator{}
		getUserByName = func(_ context.Context, _ database.DB, name string) (*model.User, error) {
			require.Equal(t, "a", name)
			return alice, nil
		}
		ctx, rec := newFormCtx(e, "username=a&password=b")
		require.NoError(t, LoginHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "access_token")
		require.Contains(t, rec.Body.String(), "expires_at")
	})
}

func TestRegisterHandler(t *testing.T) {
	e := echo.New()
	e.Validator = stubValidator{}
	form := "name=alice&email=Alice@Example.com&password=secret123&password2=secret123"

	t.Run("passwords differ", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newFormCtx(e, "name=alice&password=secret123&password2=other")
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "passwords do not match")
	})

	t.Run("blank name", func(t *testing.T) {
		t.Cleanup(restore)
		strict := echo.New()
		strict.Validator = formValidator{v: validator.New()}
		createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
			t.Fatal("user created with a blank name")
			return nil, nil
		}
		ctx, rec := newFormCtx(strict, "name=+++&password=secret123&password2=secret123")
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("hash error", func(t *testing.T) {
		t.Cleanup(restore)
		hashPassword = func(string) (string, error) { return "", errors.New("hash") }
		ctx, rec := newFormCtx(e, form)
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("name taken", func(t *testing.T) {
		t.Cleanup(restore)
		hashPassword = func(string) (string, error) { return "h", nil }
		createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
			return nil, uniqueErr()
		}
		ctx, rec := newFormCtx(e, form)
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		hashPassword = func(string) (string, error) { return "h", nil }
		createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
			return nil, errors.New("db")
		}
		ctx, rec := newFormCtx(e, form)
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		hashPassword = func(p string) (string, error) { require.Equal(t, "secret123", p); return "h", nil }
		var got *model.User
		createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
			got = u
			u.ID = 7
			return u, nil
		}
		ctx, rec := newFormCtx(e, form)
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, "alice@example.com", got.Email)
		require.Equal(t, "h", *got.PasswordHash)
		require.False(t, got.IsAdmin)
		require.Contains(t, rec.Body.String(), `"has_password":true`)
	})
}

func TestLogoutHandler(t *testing.T) {
	e := echo.New()
	claims := &service.CustomClaims{UserID: 1}

	t.Run("missing claims", func(t *testing.T) {
		ctx, rec := newFormCtx(e, "")
		require.NoError(t, LogoutHandler(&cache.FakeCache{})(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("revoke error", func(t *testing.T) {
		t.Cleanup(restore)
		revokeAccessToken = func(context.Context, cache.Cache, *service.CustomClaims) error { return errors.New("redis") }
		ctx, rec := newFormCtx(e, "")
		ctx.Set("user", claims)
		require.NoError(t, LogoutHandler(&cache.FakeCache{})(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("revokes and clears vault session", func(t *testing.T) {
		t.Cleanup(restore)
		revoked := false
		closed := ""
		revokeAccessToken = func(_ context.Context, _ cache.Cache, c *service.CustomClaims) error {
			require.Same(t, claims, c)
			revoked = true
			return nil
		}
		closeVaultSession = func(_ context.Context, _ cache.Cache, id string) error { closed = id; return nil }
		ctx, rec := newFormCtx(e, "")
		ctx.Request().AddCookie(&http.Cookie{Name: "vault_session", Value: "sid"})
		ctx.Set("user", claims)
		require.NoError(t, LogoutHandler(&cache.FakeCache{})(ctx))
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.True(t, revoked)
		require.Equal(t, "sid", closed)
		require.Contains(t, rec.Header().Get("Set-Cookie"), "vault_session=")
	})
}
