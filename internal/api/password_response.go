package api

import (
	"time"

	"personal-site/internal/model"
)

// swagger:model api.VaultStatusResponse
type VaultStatusResponse struct {
	Initialized bool `json:"initialized" example:"true"`
	Unlocked    bool `json:"unlocked" example:"false"`
	EntryCount  int  `json:"entry_count" example:"12"`
}

// swagger:model api.VaultUnlockResponse
type VaultUnlockResponse struct {
	ExpiresAt time.Time `json:"expires_at"`
}

// DecryptError 不為空時 Password 為空字串
// swagger:model api.PasswordEntryResponse
type PasswordEntryResponse struct {
	ID           int       `json:"id" example:"1"`
	Service      string    `json:"service" example:"github.com"`
	Login        string    `json:"login" example:"alice"`
	Email        *string   `json:"email,omitempty" example:"alice@example.com"`
	Password     string    `json:"password,omitempty" example:"hunter2"`
	DecryptError string    `json:"decrypt_error,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewPasswordEntryResponse(e *model.PasswordEntry, password string, decryptErr error) PasswordEntryResponse {
	r := PasswordEntryResponse{
		ID:        e.ID,
		Service:   e.Service,
		Login:     e.Login,
		Email:     e.Email,
		Password:  password,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	if decryptErr != nil {
		r.Password = ""
		r.DecryptError = decryptErr.Error()
	}
	return r
}

// swagger:model api.ChangeMasterPasswordResponse
type ChangeMasterPasswordResponse struct {
	Reencrypted int `json:"reencrypted" example:"11"`
	Failed      int `json:"failed" example:"1"`
}
