package model

// ConceiveRequest представляет запрос на создание ссылки со случайным именем.
type ConceiveRequest struct {
	Destination   string `json:"destination"`
	AppName       string `json:"_app_name"`
	SlackUserName string `json:"_slack_user_name"`
}

// ClaimRequest представляет запрос на создание ссылки с заданным именем.
type ClaimRequest struct {
	Token         string `json:"token"`
	Destination   string `json:"destination"`
	AppName       string `json:"_app_name"`
	SlackUserName string `json:"_slack_user_name"`
}

// ShortenResponse представляет успешный ответ API с сокращённым URL.
type ShortenResponse struct {
	ShortURL string `json:"short_url"`
}

// ErrorResponse представляет тело ответа API с кодом 4xx.
type ErrorResponse struct {
	Error string `json:"error"`
}
