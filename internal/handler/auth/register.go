package auth

import (
	"net/http"
	"strings"

	"personal-site/internal/api"
	"personal-site/internal/database"
	"personal-site/internal/model"
	"personal-site/internal/store"

	"github.com/labstack/echo/v4"
)

// RegisterHandler 建立一般使用者帳號
// @Summary     Register a new account
// @Description 建立帳號，password2 必須與 password 相同 (Email 會自動轉小寫)
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       name      formData string true  "使用者名稱"
// @Param       email     formData string false "使用者 Email"
// @Param       password  formData string true  "密碼"
// @Param       password2 formData string true  "確認密碼"
// @Success     201       {object} api.UserResponse
// @Failure     400       {object} api.ErrorResponse
// @Failure     409       {object} api.ErrorResponse
// @Failure     500       {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		req.Name = strings.TrimSpace(req.Name)
		req.Email = strings.TrimSpace(req.Email)
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if req.Password != req.Password2 {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "passwords do not match"})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Name:         req.Name,
			Email:        strings.ToLower(req.Email),
			PasswordHash: &hash,
		})
		if store.IsUniqueViolation(err) {
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "user name already taken"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, api.NewUserResponse(user))
	}
}
