// Package command разбирает текст слэш-команды /shorten.
package command

import "strings"

// Kind определяет форму команды.
type Kind int

const (
	Unrecognized Kind = iota
	Help
	CreateRandom // /shorten <url>
	CreateNamed  // /shorten <url> as <name>
)

func (k Kind) String() string {
	switch k {
	case Help:
		return "help"
	case CreateRandom:
		return "create_random"
	case CreateNamed:
		return "create_named"
	default:
		return "unrecognized"
	}
}

// Command содержит результат разбора. URL и Name здесь не проверяются,
// только раскладываются по полям.
type Command struct {
	Kind   Kind
	URL    string
	Name   string
	Tokens []string
}

// Parse классифицирует текст команды. Проверка на help идёт первой,
// до подсчёта слов.
func Parse(text string) Command {
	// Slack иногда оборачивает ссылки неразрывными пробелами
	text = strings.ReplaceAll(text, "\u00a0", " ")
	tokens := strings.Fields(text)

	if strings.EqualFold(strings.TrimSpace(text), "help") {
		return Command{Kind: Help, Tokens: tokens}
	}

	switch {
	case len(tokens) == 1:
		return Command{Kind: CreateRandom, URL: tokens[0], Tokens: tokens}
	case len(tokens) == 3 && strings.EqualFold(tokens[1], "as"):
		return Command{Kind: CreateNamed, URL: tokens[0], Name: tokens[2], Tokens: tokens}
	default:
		return Command{Kind: Unrecognized, Tokens: tokens}
	}
}
