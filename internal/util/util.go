package util

import "regexp"

// urlRe принимает http(s)/ftp(s) ссылки на домен, localhost или IPv4,
// с необязательным портом и путём.
var urlRe = regexp.MustCompile(`(?i)^(?:http|ftp)s?://` +
	`(?:(?:[A-Z0-9](?:[A-Z0-9-]{0,61}[A-Z0-9])?\.)+(?:[A-Z]{2,6}\.?|[A-Z0-9-]{2,}\.?)|` + // домен
	`localhost|` +
	`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})` + // или ip
	`(?::\d+)?` + // порт
	`(?:/?|[/?]\S+)$`)

var nameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// IsValidURL проверяет, что строка похожа на абсолютный URL, который можно сократить.
func IsValidURL(s string) bool {
	return urlRe.MatchString(s)
}

// IsValidName проверяет имя короткой ссылки: только латинские буквы, цифры, `_` и `-`.
func IsValidName(s string) bool {
	return nameRe.MatchString(s)
}
