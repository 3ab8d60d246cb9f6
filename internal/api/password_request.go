package api

// swagger:model api.VaultSetupRequest
type VaultSetupRequest struct {
	MasterPassword  string `form:"master_password" validate:"required,min=8" example:"correct horse battery"`
	MasterPassword2 string `form:"master_password2" validate:"required" example:"correct horse battery"`
}

// swagger:model api.VaultUnlockRequest
type VaultUnlockRequest struct {
	MasterPassword string `form:"master_password" validate:"required" example:"correct horse battery"`
}

// swagger:model api.ChangeMasterPasswordRequest
type ChangeMasterPasswordRequest struct {
	OldMasterPassword string `form:"old_master_password" validate:"required" example:"correct horse battery"`
	NewMasterPassword string `form:"new_master_password" validate:"required,min=8" example:"staple horse battery"`
}

// Password 在更新時可留空以保留原密碼
// swagger:model api.PasswordEntryRequest
type PasswordEntryRequest struct {
	Service  string `form:"service" validate:"required,max=200" example:"github.com"`
	Login    string `form:"login" validate:"required,max=200" example:"alice"`
	Email    string `form:"email" validate:"omitempty,email,max=200" example:"alice@example.com"`
	Password string `form:"password" example:"hunter2"`
}
