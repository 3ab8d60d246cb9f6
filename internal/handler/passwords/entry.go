package passwords

import (
	"net/http"
	"strings"

	"personal-site/internal/api"
	"personal-site/internal/database"
	"personal-site/internal/model"
	"personal-site/internal/store"

	"github.com/labstack/echo/v4"
)

// @Summary     List passwords
// @Description 需先解鎖；無法解密的項目以 decrypt_error 標示
// @Tags        passwords
// @Produce     json
// @Success     200 {array}  api.PasswordEntryResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /passwords [get]
func ListHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		key, _, ok := vaultKey(c)
		if !ok {
			return lockedResponse(c)
		}
		entries, err := listPasswordEntries(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		out := make([]api.PasswordEntryResponse, 0, len(entries))
		for i := range entries {
			plain, err := decryptPassword(entries[i].PasswordEncrypted, key)
			out = append(out, api.NewPasswordEntryResponse(&entries[i], plain, err))
		}
		return c.JSON(http.StatusOK, out)
	}
}

// @Summary     Create a password entry
// @Tags        passwords
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       service  formData string true  "服務名稱"
// @Param       login    formData string true  "帳號"
// @Param       email    formData string false "Email"
// @Param       password formData string true  "密碼"
// @Success     201 {object} api.PasswordEntryResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /passwords [post]
func CreateHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		key, generation, ok := vaultKey(c)
		if !ok {
			return lockedResponse(c)
		}
		req, errResp := bindEntry(c)
		if errResp != nil {
			return c.JSON(http.StatusBadRequest, errResp)
		}
		if req.Password == "" {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "password is required"})
		}

		enc, err := encryptPassword(req.Password, key)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		e, err := createPasswordEntry(c.Request().Context(), db, &model.PasswordEntry{
			Service:           req.Service,
			Login:             req.Login,
			Email:             optional(req.Email),
			PasswordEncrypted: enc,
		}, generation)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusCreated, api.NewPasswordEntryResponse(e, req.Password, nil))
	}
}

// @Summary     Update a password entry
// @Description password 留空則保留原本的密碼
// @Tags        passwords
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       entry_id path     int    true  "項目 ID"
// @Param       service  formData string true  "服務名稱"
// @Param       login    formData string true  "帳號"
// @Param       email    formData string false "Email"
// @Param       password formData string false "新密碼"
// @Success     200 {object} api.PasswordEntryResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /passwords/{entry_id} [put]
func UpdateHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		key, generation, ok := vaultKey(c)
		if !ok {
			return lockedResponse(c)
		}
		id, ok := entryID(c)
		if !ok {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid entry ID"})
		}
		req, errResp := bindEntry(c)
		if errResp != nil {
			return c.JSON(http.StatusBadRequest, errResp)
		}

		ctx := c.Request().Context()
		e, err := getPasswordEntry(ctx, db, id)
		if store.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "password entry not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		e.Service = req.Service
		e.Login = req.Login
		e.Email = optional(req.Email)
		plain := req.Password
		var decryptErr error
		if plain != "" {
			if e.PasswordEncrypted, err = encryptPassword(plain, key); err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
			}
		} else {
			plain, decryptErr = decryptPassword(e.PasswordEncrypted, key)
		}

		if err := updatePasswordEntry(ctx, db, e, generation); err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewPasswordEntryResponse(e, plain, decryptErr))
	}
}

// @Summary     Delete a password entry
// @Tags        passwords
// @Param       entry_id path int true "項目 ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /passwords/{entry_id} [delete]
func DeleteHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := entryID(c)
		if !ok {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid entry ID"})
		}
		err := deletePasswordEntry(c.Request().Context(), db, id)
		if store.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "password entry not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// bindEntry 服務名稱與帳號去除空白後不可為空
func bindEntry(c echo.Context) (*api.PasswordEntryRequest, *api.ErrorResponse) {
	var req api.PasswordEntryRequest
	if err := c.Bind(&req); err != nil {
		return nil, &api.ErrorResponse{Message: "invalid form data"}
	}
	req.Service = strings.TrimSpace(req.Service)
	req.Login = strings.TrimSpace(req.Login)
	req.Email = strings.TrimSpace(req.Email)
	if err := c.Validate(&req); err != nil {
		return nil, &api.ErrorResponse{Message: err.Error()}
	}
	return &req, nil
}
