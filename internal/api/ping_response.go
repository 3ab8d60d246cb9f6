package api

// swagger:model api.PingResponse
type PingResponse struct {
	// 回應訊息
	Message string `json:"message" example:"pong"`
}
