package api

// swagger:model api.PostRequest
type PostRequest struct {
	Title   string `form:"title" validate:"required,max=200" example:"Hello"`
	Content string `form:"content" validate:"required" example:"First post."`
}
