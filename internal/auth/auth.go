package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

const (
	TimestampHeader = "X-Slack-Request-Timestamp"
	SignatureHeader = "X-Slack-Signature"

	// Версия схемы подписи Slack.
	// См. https://api.slack.com/authentication/verifying-requests-from-slack
	sigVersion = "v0"
)

// ErrAuthentication означает, что запрос не прошёл проверку подписи.
// Такой запрос отклоняется без повторных попыток.
var ErrAuthentication = errors.New("invalid Slack signature")

// Verifier проверяет подпись входящих запросов Slack.
type Verifier struct {
	secret []byte
	maxAge time.Duration
	now    func() time.Time
}

// New создаёт Verifier. Если maxAge > 0, запросы с меткой времени,
// отличающейся от текущей больше чем на maxAge, отклоняются.
func New(secret string, maxAge time.Duration) *Verifier {
	return &Verifier{
		secret: []byte(secret),
		maxAge: maxAge,
		now:    time.Now,
	}
}

// Sign возвращает подпись вида v0=<hex> для пары timestamp/body.
func (v *Verifier) Sign(timestamp string, body []byte) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(sigVersion + ":" + timestamp + ":"))
	mac.Write(body)
	return sigVersion + "=" + hex.EncodeToString(mac.Sum(nil))
}

// Verify сравнивает ожидаемую подпись с переданной за постоянное время.
func (v *Verifier) Verify(timestamp string, body []byte, signature string) error {
	if timestamp == "" || signature == "" {
		return fmt.Errorf("%w: missing signature headers", ErrAuthentication)
	}

	if v.maxAge > 0 {
		secs, err := strconv.ParseInt(timestamp, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: malformed timestamp %q", ErrAuthentication, timestamp)
		}
		if d := v.now().Sub(time.Unix(secs, 0)); d.Abs() > v.maxAge {
			return fmt.Errorf("%w: stale timestamp (%s)", ErrAuthentication, d)
		}
	}

	expected := v.Sign(timestamp, body)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return &MismatchError{Expected: expected, Received: signature}
	}
	return nil
}

// VerifyRequest достаёт подпись и метку времени из заголовков запроса.
func (v *Verifier) VerifyRequest(h http.Header, body []byte) error {
	return v.Verify(h.Get(TimestampHeader), body, h.Get(SignatureHeader))
}

// MismatchError возвращается при несовпадении подписи. Хранит обе подписи для логов.
type MismatchError struct {
	Expected string
	Received string
}

func (e *MismatchError) Error() string {
	return ErrAuthentication.Error() + ": signature mismatch"
}

func (e *MismatchError) Unwrap() error {
	return ErrAuthentication
}
