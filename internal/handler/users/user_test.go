package users

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"personal-site/internal/database"
	"personal-site/internal/middleware"
	"personal-site/internal/model"
	"personal-site/internal/service"
	"personal-site/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

type formValidator struct{ v *validator.Validate }

func (f formValidator) Validate(i interface{}) error { return f.v.Struct(i) }

func newMeCtx(e *echo.Echo, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/users/me", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func restore() {
	hashPassword = service.HashPassword
	authenticateUser = service.AuthenticateUser
	getUserByID = store.GetUserByID
	getTelegramProfile = store.GetTelegramProfileByUserID
	updateUser = store.UpdateUser
	updateUserPassword = store.UpdateUserPassword
	deleteUser = store.DeleteUser
}

func noTelegram(context.Context, database.DB, int) (*model.TelegramProfile, error) {
	return nil, pgx.ErrNoRows
}

func TestGetMyUserHandler(t *testing.T) {
	e := echo.New()
	now := time.Now().UTC()
	user := func(context.Context, database.DB, int) (*model.User, error) {
		return &model.User{ID: 1, Name: "n", Email: "e", CreatedAt: now}, nil
	}

	t.Run("no claims", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newMeCtx(e, http.MethodGet, "")
		err := GetMyUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByID = func(context.Context, database.DB, int) (*model.User, error) { return nil, pgx.ErrNoRows }
		ctx, rec := newMeCtx(e, http.MethodGet, "")
		ctx.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: 1})
		require.NoError(t, GetMyUserHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("get error", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByID = func(context.Context, database.DB, int) (*model.User, error) { return nil, errors.New("e") }
		ctx, rec := newMeCtx(e, http.MethodGet, "")
		ctx.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: 1})
		err := GetMyUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("telegram lookup error", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByID = user
		getTelegramProfile = func(context.Context, database.DB, int) (*model.TelegramProfile, error) {
			return nil, errors.New("db")
		}
		ctx, rec := newMeCtx(e, http.MethodGet, "")
		ctx.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: 1})
		require.NoError(t, GetMyUserHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByID = user
		getTelegramProfile = noTelegram
		ctx, rec := newMeCtx(e, http.MethodGet, "")
		ctx.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: 1})
		err := GetMyUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "\"id\":1")
		require.NotContains(t, rec.Body.String(), "telegram")
	})

	t.Run("with telegram profile", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByID = user
		last := "Anderson"
		getTelegramProfile = func(context.Context, database.DB, int) (*model.TelegramProfile, error) {
			return &model.TelegramProfile{TelegramID: 42, FirstName: "Thomas", LastName: &last}, nil
		}
		ctx, rec := newMeCtx(e, http.MethodGet, "")
		ctx.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: 1})
		require.NoError(t, GetMyUserHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "\"full_name\":\"Thomas Anderson\"")
		require.Contains(t, rec.Body.String(), "\"has_password\":false")
	})
}

func TestUpdateMyUserHandler(t *testing.T) {
	e := echo.New()
	e.Validator = &stubValidator{}

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newMeCtx(e, http.MethodPut, "%")
		err := UpdateMyUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validate error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{err: errors.New("v")}
		ctx, rec := newMeCtx(e, http.MethodPut, "name=a&email=a@b.com")
		err := UpdateMyUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "v")
	})

	t.Run("blank name", func(t *testing.T) {
		t.Cleanup(restore)
		strict := echo.New()
		strict.Validator = formValidator{v: validator.New()}
		updateUser = func(context.Context, database.DB, *model.User) error {
			t.Fatal("user renamed to a blank name")
			return nil
		}
		ctx, rec := newMeCtx(strict, http.MethodPut, "name=++&email=a@b.com")
		ctx.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: 1})
		require.NoError(t, UpdateMyUserHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no claims", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newMeCtx(e, http.MethodPut, "name=a&email=a@b.com")
		err := UpdateMyUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("name taken", func(t *testing.T) {
		t.Cleanup(restore)
		updateUser = func(context.Context, database.DB, *model.User) error {
			return &pgconn.PgError{Code: "23505"}
		}
		ctx, rec := newMeCtx(e, http.MethodPut, "name=a&email=a@b.com")
		ctx.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: 1})
		require.NoError(t, UpdateMyUserHandler(nil)(ctx))
		require.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("update error", func(t *testing.T) {
		t.Cleanup(restore)
		updateUser = func(context.Context, database.DB, *model.User) error { return errors.New("u") }
		ctx, rec := newMeCtx(e, http.MethodPut, "name=a&email=a@b.com")
		ctx.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: 1})
		err := UpdateMyUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		var got model.User
		updateUser = func(_ context.Context, _ database.DB, u *model.User) error {
			got = *u
			return nil
		}
		ctx, rec := newMeCtx(e, http.MethodPut, "name=A&email=B@Ex.com")
		ctx.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: 5})
		err := UpdateMyUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, 5, got.ID)
		require.Equal(t, "b@ex.com", got.Email)
	})
}

func TestUpdateMyUserPasswordHandler(t *testing.T) {
	e := echo.New()
	e.Validator = &stubValidator{}

	form := "old_password=o&new_password=n"

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newMeCtx(e, http.MethodPatch, "%")
		err := UpdateMyUserPasswordHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validate error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{err: errors.New("v")}
		ctx, rec := newMeCtx(e, http.MethodPatch, form)
		err := UpdateMyUserPasswordHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no claims", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newMeCtx(e, http.MethodPatch, form)
		err := UpdateMyUserPasswordHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("get error", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByID = func(context.Context, database.DB, int) (*model.User, error) { return nil, errors.New("g") }
		ctx, rec := newMeCtx(e, http.MethodPatch, form)
		ctx.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: 1})
		err := UpdateMyUserPasswordHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("auth fail", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByID = func(context.Context, database.DB, int) (*model.User, error) { return &model.User{ID: 1}, nil }
		authenticateUser = func(context.Context, model.User, string) error { return errors.New("bad") }
		ctx, rec := newMeCtx(e, http.MethodPatch, form)
		ctx.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: 1})
		err := UpdateMyUserPasswordHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("hash error", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByID = func(context.Context, database.DB, int) (*model.User, error) { return &model.User{ID: 1}, nil }
		authenticateUser = func(context.Context, model.User, string) error { return nil }
		hashPassword = func(string) (string, error) { return "", errors.New("h") }
		ctx, rec := newMeCtx(e, http.MethodPatch, form)
		ctx.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: 1})
		err := UpdateMyUserPasswordHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("update error", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByID = func(context.Context, database.DB, int) (*model.User, error) { return &model.User{ID: 1}, nil }
		authenticateUser = func(context.Context, model.User, string) error { return nil }
		hashPassword = func(string) (string, error) { return "h", nil }
		updateUserPassword = func(context.Context, database.DB, int, string) error { return errors.New("u") }
		ctx, rec := newMeCtx(e, http.MethodPatch, form)
		ctx.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: 1})
		err := UpdateMyUserPasswordHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		var updatedID int
		getUserByID = func(context.Context, database.DB, int) (*model.User, error) { return &model.User{ID: 1}, nil }
		authenticateUser = func(context.Context, model.User, string) error { return nil }
		hashPassword = func(string) (string, error) { return "h", nil }
		updateUserPassword = func(_ context.Context, _ database.DB, id int, _ string) error {
			updatedID = id
			return nil
		}
		ctx, rec := newMeCtx(e, http.MethodPatch, form)
		ctx.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: 9})
		err := UpdateMyUserPasswordHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, 9, updatedID)
	})
}

func TestDeleteMyUserHandler(t *testing.T) {
	e := echo.New()
	t.Run("no claims", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newMeCtx(e, http.MethodDelete, "")
		err := DeleteMyUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("delete error", func(t *testing.T) {
		t.Cleanup(restore)
		deleteUser = func(context.Context, database.DB, int) error { return errors.New("d") }
		ctx, rec := newMeCtx(e, http.MethodDelete, "")
		ctx.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: 1})
		err := DeleteMyUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		deleteUser = func(context.Context, database.DB, int) error { return nil }
		ctx, rec := newMeCtx(e, http.MethodDelete, "")
		ctx.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: 2})
		err := DeleteMyUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusNoContent, rec.Code)
	})
}
