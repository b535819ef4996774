package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Totarae/shortenbot/internal/model"
)

const (
	conceivePath = "/v1/conceive"
	claimPath    = "/v1/claim"
	apiKeyHeader = "x-api-key"
)

// Poster отправляет JSON в API сокращателя.
type Poster interface {
	PostJSON(ctx context.Context, url string, header http.Header, payload any) (*http.Response, error)
}

// LinkRepository создаёт короткие ссылки через API go.voteamerica.com.
type LinkRepository struct {
	Client  Poster
	BaseURL string
	APIKey  string
	AppName string
}

// NewLinkRepository создаёт новый экземпляр LinkRepository.
func NewLinkRepository(client Poster, baseURL, apiKey, appName string) *LinkRepository {
	return &LinkRepository{
		Client:  client,
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		APIKey:  apiKey,
		AppName: appName,
	}
}

// Conceive создаёт ссылку со случайным именем и возвращает короткий URL.
func (r *LinkRepository) Conceive(ctx context.Context, destination, userName string) (string, error) {
	return r.post(ctx, conceivePath, model.ConceiveRequest{
		Destination:   destination,
		AppName:       r.AppName,
		SlackUserName: userName,
	})
}

// Claim создаёт ссылку с именем token и возвращает короткий URL.
func (r *LinkRepository) Claim(ctx context.Context, token, destination, userName string) (string, error) {
	return r.post(ctx, claimPath, model.ClaimRequest{
		Token:         token,
		Destination:   destination,
		AppName:       r.AppName,
		SlackUserName: userName,
	})
}

func (r *LinkRepository) post(ctx context.Context, path string, payload any) (string, error) {
	header := http.Header{}
	header.Set(apiKeyHeader, r.APIKey)

	resp, err := r.Client.PostJSON(ctx, r.BaseURL+path, header, payload)
	if err != nil {
		return "", fmt.Errorf("shortener API %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		var e model.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Error == "" {
			e.Error = http.StatusText(resp.StatusCode)
		}
		return "", &model.RejectedError{StatusCode: resp.StatusCode, Message: e.Error}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return "", fmt.Errorf("shortener API %s: %w: %d", path, model.ErrUnexpectedStatus, resp.StatusCode)
	}

	var out model.ShortenResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("shortener API %s: decode response: %w", path, err)
	}
	if out.ShortURL == "" {
		return "", fmt.Errorf("shortener API %s: response has no short_url", path)
	}
	return out.ShortURL, nil
}
