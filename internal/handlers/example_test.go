package handlers_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/Totarae/shortenbot/internal/auth"
	"github.com/Totarae/shortenbot/internal/handlers"
	"github.com/Totarae/shortenbot/internal/httpclient"
	"github.com/Totarae/shortenbot/internal/repositories"
	"github.com/Totarae/shortenbot/internal/service"
)

// ExampleHandler_SlashCommand демонстрирует обработку подписанной слэш-команды.
func ExampleHandler_SlashCommand() {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"short_url":"https://go.voteamerica.com/ab12cd"}`)
	}))
	defer api.Close()

	logger := zap.NewNop()
	verifier := auth.New("example-secret", 0)
	client := httpclient.New(httpclient.Config{MaxRetries: 3}, logger)
	repo := repositories.NewLinkRepository(client, api.URL, "example-key", "slack")
	h := handlers.NewHandler(verifier, service.NewShortenerService(repo, logger), logger)

	body := url.Values{"text": {"https://example.com"}, "user_name": {"alice"}}.Encode()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(auth.TimestampHeader, "1700000000")
	req.Header.Set(auth.SignatureHeader, verifier.Sign("1700000000", []byte(body)))

	rec := httptest.NewRecorder()
	h.SlashCommand(rec, req)

	fmt.Println(rec.Code)
	fmt.Println(rec.Body.String())

	// Output:
	// 200
	// {"response_type":"in_channel","text":"Success! https://go.voteamerica.com/ab12cd now goes to https://example.com"}
}
