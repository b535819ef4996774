package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// После этих кодов запрос повторяется.
var retryableStatuses = map[int]bool{
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// StatusError возвращается, когда попытки закончились, а API всё ещё отвечал повторяемым кодом.
type StatusError struct {
	StatusCode int
	Attempts   uint64
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("giving up after %d attempt(s): status %d", e.Attempts, e.StatusCode)
}

// Config задаёт политику повторов и таймаут одной попытки.
type Config struct {
	MaxRetries uint64        // дополнительные попытки после первой
	RetryWait  time.Duration // первая пауза, дальше удваивается
	Timeout    time.Duration
}

// Client представляет долгоживущий HTTP-клиент с пулом соединений и политикой повторов.
// Создаётся один раз при старте и передаётся явно.
type Client struct {
	http   *http.Client
	cfg    Config
	Logger *zap.Logger
}

// New создаёт клиент с собственным транспортом.
func New(cfg Config, logger *zap.Logger) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = 10
	transport.IdleConnTimeout = 90 * time.Second

	return &Client{
		http: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		cfg:    cfg,
		Logger: logger,
	}
}

// Close закрывает простаивающие соединения пула
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}

func (c *Client) newBackOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.cfg.RetryWait
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxInterval = c.cfg.RetryWait << c.cfg.MaxRetries
	b.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(b, c.cfg.MaxRetries), ctx)
}

// PostJSON отправляет payload как JSON. Сетевые ошибки и коды 429/500/502/503/504
// повторяются с экспоненциальной паузой. Остальные ответы возвращаются как есть,
// закрыть тело должен вызывающий.
func (c *Client) PostJSON(ctx context.Context, url string, header http.Header, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	var attempts uint64
	op := func() (*http.Response, error) {
		attempts++

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		for k, vs := range header {
			for _, v := range vs {
				req.Header.Add(k, v)
			}
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}

		if retryableStatuses[resp.StatusCode] {
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			return nil, &StatusError{StatusCode: resp.StatusCode, Attempts: attempts}
		}
		return resp, nil
	}

	notify := func(err error, wait time.Duration) {
		c.Logger.Warn("retrying request",
			zap.String("url", url),
			zap.Uint64("attempt", attempts),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
	}

	resp, err := backoff.RetryNotifyWithData(op, c.newBackOff(ctx), notify)
	if err != nil {
		return nil, fmt.Errorf("POST %s: %w", url, err)
	}
	return resp, nil
}
