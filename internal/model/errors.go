package model

import (
	"errors"
	"fmt"
)

// ErrUnexpectedStatus возвращается, если API ответил кодом, который мы не умеем обработать.
var ErrUnexpectedStatus = errors.New("unexpected status from shortener API")

// RejectedError описывает отказ API (4xx). Это ошибка пользователя,
// её текст показывается в чате.
type RejectedError struct {
	StatusCode int
	Message    string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("shortener API rejected request (%d): %s", e.StatusCode, e.Message)
}
