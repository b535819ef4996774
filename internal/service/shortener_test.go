package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/Totarae/shortenbot/internal/model"
	"github.com/Totarae/shortenbot/internal/service"
	"github.com/Totarae/shortenbot/internal/service/mocks"
)

func setupService(t *testing.T) (*service.ShortenerService, *mocks.MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	return service.NewShortenerService(repo, zaptest.NewLogger(t)), repo
}

func TestReply_Help(t *testing.T) {
	svc, _ := setupService(t)

	for _, text := range []string{"help", "HELP", "  Help  ", " help"} {
		got, err := svc.Reply(context.Background(), text, "alice")
		require.NoError(t, err)
		assert.Equal(t, service.HelpText, got, "%q", text)
	}
}

func TestReply_CreateRandom(t *testing.T) {
	svc, repo := setupService(t)
	repo.EXPECT().
		Conceive(gomock.Any(), "https://example.com", "alice").
		Return("https://go.voteamerica.com/ab12cd", nil)

	got, err := svc.Reply(context.Background(), "https://example.com", "alice")
	require.NoError(t, err)
	assert.Equal(t, "Success! https://go.voteamerica.com/ab12cd now goes to https://example.com", got)
}

func TestReply_CreateNamed(t *testing.T) {
	for _, as := range []string{"as", "AS", "As"} {
		t.Run(as, func(t *testing.T) {
			svc, repo := setupService(t)
			repo.EXPECT().
				Claim(gomock.Any(), "my-link", "https://example.com", "bob").
				Return("https://go.voteamerica.com/my-link", nil)

			got, err := svc.Reply(context.Background(), "https://example.com "+as+" my-link", "bob")
			require.NoError(t, err)
			assert.Equal(t, "Success! https://go.voteamerica.com/my-link now goes to https://example.com", got)
		})
	}
}

func TestReply_Rejected(t *testing.T) {
	svc, repo := setupService(t)
	repo.EXPECT().
		Claim(gomock.Any(), "my-link", "https://example.com", "bob").
		Return("", &model.RejectedError{StatusCode: 400, Message: "token already claimed"})

	got, err := svc.Reply(context.Background(), "https://example.com as my-link", "bob")
	require.NoError(t, err)
	assert.Equal(t, "Uh oh, I couldn't create that link for you: token already claimed", got)
}

func TestReply_UpstreamFailureIsReturned(t *testing.T) {
	svc, repo := setupService(t)
	boom := errors.New("giving up")
	repo.EXPECT().Conceive(gomock.Any(), gomock.Any(), gomock.Any()).Return("", boom)

	got, err := svc.Reply(context.Background(), "https://example.com", "alice")
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, got)
}

func TestReply_ValidationErrorsSkipAPI(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		prefix string
	}{
		{name: "invalid url", text: "not-a-url", prefix: "Sorry, that's not a valid URL.\n\n"},
		{name: "javascript url", text: "javascript:alert(1)", prefix: "Sorry, that's not a valid URL.\n\n"},
		{name: "invalid url with name", text: "not-a-url as my-link", prefix: "Sorry, that's not a valid URL.\n\n"},
		{name: "invalid name", text: "https://example.com as name!", prefix: "Sorry, short URL names can only contain letters, numbers, `_`, and `-`.\n\n"},
		{name: "four tokens", text: "a b c d", prefix: "Sorry, I don't understand that.\n\n"},
		{name: "two tokens", text: "https://example.com as", prefix: "Sorry, I don't understand that.\n\n"},
		{name: "empty", text: "", prefix: "Sorry, I don't understand that.\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// мок без ожиданий: любой вызов API провалит тест
			svc, _ := setupService(t)

			got, err := svc.Reply(context.Background(), tt.text, "alice")
			require.NoError(t, err)
			assert.Equal(t, tt.prefix+service.HelpText, got)
		})
	}
}
