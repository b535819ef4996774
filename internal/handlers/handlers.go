package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/Totarae/shortenbot/internal/auth"
	"github.com/Totarae/shortenbot/internal/middleware"
	"github.com/Totarae/shortenbot/internal/model"
)

// слэш-команды Slack намного меньше
const maxBodySize = 1 << 20

// Verifier проверяет подпись Slack.
type Verifier interface {
	VerifyRequest(h http.Header, body []byte) error
}

// Service превращает текст команды в ответ для чата.
type Service interface {
	Reply(ctx context.Context, text, userName string) (string, error)
}

type Handler struct {
	Verifier Verifier
	Service  Service
	Logger   *zap.Logger
}

func NewHandler(verifier Verifier, svc Service, logger *zap.Logger) *Handler {
	return &Handler{
		Verifier: verifier,
		Service:  svc,
		Logger:   logger,
	}
}

// SlashCommand обрабатывает вызов /shorten: проверка подписи, разбор формы,
// запрос к API и ответ в канал.
func (h *Handler) SlashCommand(w http.ResponseWriter, r *http.Request) {
	logger := h.Logger.With(zap.String("request_id", middleware.RequestIDFromContext(r.Context())))

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		logger.Warn("failed to read request body", zap.Error(err))
		http.Error(w, "BadRequest", http.StatusBadRequest)
		return
	}

	if err := h.Verifier.VerifyRequest(r.Header, body); err != nil {
		fields := []zap.Field{zap.Error(err)}
		var mismatch *auth.MismatchError
		if errors.As(err, &mismatch) {
			fields = append(fields,
				zap.String("expected_signature", signaturePrefix(mismatch.Expected)),
				zap.String("slack_signature", mismatch.Received),
			)
		}
		logger.Warn("verification failed", fields...)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mt != "application/x-www-form-urlencoded" {
		logger.Warn("unexpected content type", zap.String("content_type", r.Header.Get("Content-Type")))
		http.Error(w, "Unsupported Media Type", http.StatusUnsupportedMediaType)
		return
	}

	// ParseForm читает тело заново
	r.Body = io.NopCloser(bytes.NewReader(body))
	cmd, err := slack.SlashCommandParse(r)
	if err != nil {
		logger.Warn("failed to parse slash command", zap.Error(err))
		http.Error(w, "BadRequest", http.StatusBadRequest)
		return
	}

	logger = logger.With(zap.String("user_name", cmd.UserName), zap.String("command", cmd.Command))

	text, err := h.Service.Reply(r.Context(), cmd.Text, cmd.UserName)
	if err != nil {
		logger.Error("shortener API request failed", zap.String("text", cmd.Text), zap.Error(err))
		http.Error(w, "Bad Gateway", http.StatusBadGateway)
		return
	}

	writeReply(w, logger, text)
}

// signaturePrefix обрезает подпись для логов: полная ожидаемая подпись
// позволяет повторить запрос.
func signaturePrefix(sig string) string {
	const keep = len("v0=") + 8
	if len(sig) <= keep {
		return sig
	}
	return sig[:keep] + "..."
}

// Ping отвечает 200 OK, пока сервис жив.
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// writeReply отдаёт ответ Slack: всегда 200 и JSON-конверт.
func writeReply(w http.ResponseWriter, logger *zap.Logger, text string) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(model.NewReply(text)); err != nil {
		logger.Error("failed to encode reply", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(bytes.TrimRight(buf.Bytes(), "\n")); err != nil {
		logger.Warn("failed to write reply", zap.Error(err))
	}
}
