package api

// swagger:model api.HobbyRequest
type HobbyRequest struct {
	Title string `form:"title" validate:"required,max=200" example:"Film photography"`
	// 省略時由標題產生
	Slug        string `form:"slug" validate:"omitempty,max=200,slug" example:"film-photography"`
	Description string `form:"description" example:"Shooting 35mm."`
}

// swagger:model api.EntryRequest
type EntryRequest struct {
	Title   string `form:"title" validate:"required,max=200" example:"First roll"`
	Content string `form:"content" validate:"required" example:"Loaded a roll of Portra. [image:0]"`
}

// swagger:model api.EntryImageRequest
type EntryImageRequest struct {
	Caption string `form:"caption" validate:"max=200" example:"Sunset"`
	Order   int    `form:"order" validate:"min=0" example:"0"`
}
