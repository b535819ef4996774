package service

//go:generate mockgen -source=shortener.go -destination=mocks/mock_repository.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Totarae/shortenbot/internal/command"
	"github.com/Totarae/shortenbot/internal/model"
	"github.com/Totarae/shortenbot/internal/util"
)

// HelpText содержит подсказку по использованию команды.
const HelpText = "\n" +
	"You can type `/shorten https://example.com` to shorten a URL with a random name (e.g. `https://go.voteamerica.com/umd8sj3f`),\n" +
	"or you can type `/shorten https://example.com as some-name` to shorten a URL to a specific name (e.g. `https://go.voteamerica.com/some-name`).\n"

const (
	invalidURLText   = "Sorry, that's not a valid URL.\n\n" + HelpText
	invalidNameText  = "Sorry, short URL names can only contain letters, numbers, `_`, and `-`.\n\n" + HelpText
	unrecognizedText = "Sorry, I don't understand that.\n\n" + HelpText
)

type Repository interface {
	Conceive(ctx context.Context, destination, userName string) (string, error)
	Claim(ctx context.Context, token, destination, userName string) (string, error)
}

type ShortenerService struct {
	Repo   Repository
	Logger *zap.Logger
}

func NewShortenerService(repo Repository, logger *zap.Logger) *ShortenerService {
	return &ShortenerService{
		Repo:   repo,
		Logger: logger,
	}
}

// Reply выполняет команду и возвращает текст ответа для чата.
// Ошибка возвращается только если API недоступен или ответил неожиданно.
func (s *ShortenerService) Reply(ctx context.Context, text, userName string) (string, error) {
	cmd := command.Parse(text)

	switch cmd.Kind {
	case command.Help:
		return HelpText, nil

	case command.CreateRandom:
		if !util.IsValidURL(cmd.URL) {
			return invalidURLText, nil
		}
		short, err := s.Repo.Conceive(ctx, cmd.URL, userName)
		return s.result(cmd, short, err)

	case command.CreateNamed:
		if !util.IsValidURL(cmd.URL) {
			return invalidURLText, nil
		}
		if !util.IsValidName(cmd.Name) {
			return invalidNameText, nil
		}
		short, err := s.Repo.Claim(ctx, cmd.Name, cmd.URL, userName)
		return s.result(cmd, short, err)

	default:
		s.Logger.Debug("unrecognized command", zap.Strings("tokens", cmd.Tokens))
		return unrecognizedText, nil
	}
}

func (s *ShortenerService) result(cmd command.Command, short string, err error) (string, error) {
	if err != nil {
		var rejected *model.RejectedError
		if errors.As(err, &rejected) {
			s.Logger.Info("link rejected by shortener API",
				zap.Stringer("kind", cmd.Kind),
				zap.Int("status", rejected.StatusCode),
				zap.String("reason", rejected.Message),
			)
			return "Uh oh, I couldn't create that link for you: " + rejected.Message, nil
		}
		return "", err
	}

	s.Logger.Info("link created",
		zap.Stringer("kind", cmd.Kind),
		zap.String("short_url", short),
		zap.String("destination", cmd.URL),
	)
	return fmt.Sprintf("Success! %s now goes to %s", short, cmd.URL), nil
}
