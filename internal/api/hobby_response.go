package api

import "personal-site/internal/model"

// swagger:model api.HobbyListResponse
type HobbyListResponse struct {
	Items      []model.Hobby `json:"items"`
	Page       int           `json:"page" example:"1"`
	TotalPages int           `json:"total_pages" example:"1"`
	Total      int           `json:"total" example:"3"`
}

// swagger:model api.EntrySummary
type EntrySummary struct {
	model.Entry
	Summary string             `json:"summary"`
	Images  []model.EntryImage `json:"images"`
}

// swagger:model api.HobbyDetailResponse
type HobbyDetailResponse struct {
	model.Hobby
	Entries []EntrySummary `json:"entries"`
}

// swagger:model api.EntryDetailResponse
type EntryDetailResponse struct {
	model.Entry
	HobbySlug   string             `json:"hobby_slug" example:"film-photography"`
	HobbyTitle  string             `json:"hobby_title" example:"Film photography"`
	Images      []model.EntryImage `json:"images"`
	ContentHTML string             `json:"content_html"`
	PrevEntry   *int               `json:"prev_entry"`
	NextEntry   *int               `json:"next_entry"`
}
