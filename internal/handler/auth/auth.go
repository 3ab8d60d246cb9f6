// Package auth 處理註冊、登入、登出與 Telegram Login Widget 回呼
package auth

import (
	"time"

	"personal-site/internal/api"
	"personal-site/internal/model"
	"personal-site/internal/service"
	"personal-site/internal/store"
)

// AccessTokenTTL 存取令牌有效期限
const AccessTokenTTL = 24 * time.Hour

var (
	timeNow               = time.Now
	hashPassword          = service.HashPassword
	authenticateUser      = service.AuthenticateUser
	issueAccessToken      = service.IssueAccessToken
	revokeAccessToken     = service.RevokeAccessToken
	closeVaultSession     = service.CloseVaultSession
	verifyTelegramLogin   = service.VerifyTelegramLogin
	guardTelegramReplay   = service.GuardTelegramReplay
	getUserByID           = store.GetUserByID
	getUserByName         = store.GetUserByName
	createUser            = store.CreateUser
	getTelegramProfile    = store.GetTelegramProfileByTelegramID
	createTelegramUser    = store.CreateTelegramUser
	updateTelegramProfile = store.UpdateTelegramProfile
)

func issueLoginResponse(u model.User) (*api.LoginResponse, error) {
	token, err := issueAccessToken(u, AccessTokenTTL)
	if err != nil {
		return nil, err
	}
	return &api.LoginResponse{AccessToken: token, ExpiresAt: timeNow().Add(AccessTokenTTL).UTC()}, nil
}
